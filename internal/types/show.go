package types

import (
	"fmt"
	"strings"

	"typecore/internal/symbols"
)

const (
	arrayDisplay = "T::Array"
	hashDisplay  = "T::Hash"
)

// Show renders t in the concise form used by diagnostics.
func (p *Printer) Show(t Type) string {
	var sb strings.Builder
	p.writeShow(&sb, t)
	return sb.String()
}

func (p *Printer) writeShow(sb *strings.Builder, t Type) {
	switch t := t.(type) {
	case *ClassType:
		sb.WriteString(p.symbols.Show(t.symbol))
	case *LiteralType:
		sb.WriteString(p.literalValue(t))
	case *TupleType:
		sb.WriteByte('[')
		for i, e := range t.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.writeShow(sb, e)
		}
		sb.WriteByte(']')
	case *ShapeType:
		sb.WriteByte('{')
		for i, k := range t.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			if k.underlying.symbol == symbols.Builtin.Symbol {
				sb.WriteString(p.names.Show(k.name))
				sb.WriteString(": ")
			} else {
				p.writeShow(sb, k)
				sb.WriteString(" => ")
			}
			p.writeShow(sb, t.values[i])
		}
		sb.WriteByte('}')
	case *AliasType:
		sb.WriteString("<Alias:")
		sb.WriteString(p.symbols.FullName(t.symbol))
		sb.WriteByte('>')
	case *AndType:
		sb.WriteString("all(")
		p.writeShow(sb, t.left)
		sb.WriteString(", ")
		p.writeShow(sb, t.right)
		sb.WriteByte(')')
	case *OrType:
		p.writeShowOr(sb, t)
	case *AppliedType:
		p.writeShowApplied(sb, t)
	case *TypeVar:
		sb.WriteString(p.symbols.Show(t.symbol))
	case *LambdaParam:
		sb.WriteString(p.symbols.Show(t.definition))
	case *SelfTypeParam:
		sb.WriteString(p.symbols.Show(t.definition))
	case *MagicType:
		p.writeShow(sb, t.underlying)
	case nil:
		panic("types: render nil type")
	default:
		panic(fmt.Errorf("types: Show: unhandled variant %T", t))
	}
}

// writeShowOr collapses a union with NilClass on either side of the outermost
// pair into nilable(...). Otherwise nested unions are flattened into a single
// any(...) list; nested pairs are not checked for NilClass.
func (p *Printer) writeShowOr(sb *strings.Builder, t *OrType) {
	if isNilClass(t.left) {
		p.writeNilable(sb, t.right)
		return
	}
	if isNilClass(t.right) {
		p.writeNilable(sb, t.left)
		return
	}
	sb.WriteString("any(")
	p.writeOrMembers(sb, t.left)
	sb.WriteString(", ")
	p.writeOrMembers(sb, t.right)
	sb.WriteByte(')')
}

func (p *Printer) writeNilable(sb *strings.Builder, rest Type) {
	sb.WriteString("nilable(")
	p.writeShow(sb, rest)
	sb.WriteByte(')')
}

func (p *Printer) writeOrMembers(sb *strings.Builder, t Type) {
	if or, ok := t.(*OrType); ok {
		p.writeOrMembers(sb, or.left)
		sb.WriteString(", ")
		p.writeOrMembers(sb, or.right)
		return
	}
	p.writeShow(sb, t)
}

func isNilClass(t Type) bool {
	c, ok := t.(*ClassType)
	return ok && c.symbol == symbols.Builtin.NilClass
}

// writeShowApplied prints Class[args]. Hash omits its trailing default-value
// argument.
func (p *Printer) writeShowApplied(sb *strings.Builder, t *AppliedType) {
	args := t.args
	switch t.class {
	case symbols.Builtin.Array:
		sb.WriteString(arrayDisplay)
	case symbols.Builtin.Hash:
		sb.WriteString(hashDisplay)
		if len(args) > 0 {
			args = args[:len(args)-1]
		}
	default:
		sb.WriteString(p.symbols.Show(t.class))
	}
	sb.WriteByte('[')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		p.writeShow(sb, a)
	}
	sb.WriteByte(']')
}
