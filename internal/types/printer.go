package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"typecore/internal/names"
	"typecore/internal/symbols"
)

// SymbolTable is the symbol lookup the printer renders through.
// *symbols.Table implements it.
type SymbolTable interface {
	FullName(id symbols.SymbolID) string
	Show(id symbols.SymbolID) string
	TypeMembers(id symbols.SymbolID) []symbols.SymbolID
}

// Printer renders type trees. It holds no state between calls and may be
// shared by goroutines as long as its tables are not mutated concurrently.
type Printer struct {
	names   *names.Table
	symbols SymbolTable
}

// NewPrinter returns a printer resolving names in nt and symbols in st.
func NewPrinter(nt *names.Table, st SymbolTable) *Printer {
	if nt == nil || st == nil {
		panic("types: printer needs a names table and a symbol table")
	}
	return &Printer{names: nt, symbols: st}
}

// Debug renders t in the verbose multi-line form used for internal dumps.
func (p *Printer) Debug(t Type) string {
	return p.DebugIndent(t, 0)
}

// DebugIndent renders t as if it were nested tabs levels deep: nested lines
// are indented by tabs+1 levels and closing braces by tabs levels.
func (p *Printer) DebugIndent(t Type, tabs int) string {
	var sb strings.Builder
	p.writeDebug(&sb, t, tabs)
	return sb.String()
}

func printTabs(sb *strings.Builder, count int) {
	for range count {
		sb.WriteString("  ")
	}
}

func (p *Printer) writeDebug(sb *strings.Builder, t Type, tabs int) {
	switch t := t.(type) {
	case *ClassType:
		sb.WriteString(p.symbols.FullName(t.symbol))
	case *LiteralType:
		sb.WriteString(p.literalValue(t))
	case *TupleType:
		sb.WriteString("TupleType {\n")
		for i, e := range t.elems {
			printTabs(sb, tabs+1)
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString(" = ")
			p.writeDebug(sb, e, tabs+1)
			sb.WriteByte('\n')
		}
		printTabs(sb, tabs)
		sb.WriteByte('}')
	case *ShapeType:
		sb.WriteString("ShapeType {\n")
		for i, k := range t.keys {
			printTabs(sb, tabs+1)
			p.writeDebug(sb, k, tabs+1)
			sb.WriteString(" => ")
			p.writeDebug(sb, t.values[i], tabs+1)
			sb.WriteByte('\n')
		}
		printTabs(sb, tabs)
		sb.WriteByte('}')
	case *AliasType:
		sb.WriteString("AliasType { symbol = ")
		sb.WriteString(p.symbols.FullName(t.symbol))
		sb.WriteString(" }")
	case *AndType:
		p.writeDebugPair(sb, "AndType", t.left, t.right, tabs)
	case *OrType:
		p.writeDebugPair(sb, "OrType", t.left, t.right, tabs)
	case *AppliedType:
		members := p.symbols.TypeMembers(t.class)
		if len(members) != len(t.args) {
			panic(fmt.Errorf("types: %s declares %d type members but is applied to %d arguments",
				p.symbols.FullName(t.class), len(members), len(t.args)))
		}
		sb.WriteString("AppliedType {\n")
		printTabs(sb, tabs+1)
		sb.WriteString("klass = ")
		sb.WriteString(p.symbols.FullName(t.class))
		sb.WriteByte('\n')
		printTabs(sb, tabs+1)
		sb.WriteString("targs = [\n")
		for i, arg := range t.args {
			printTabs(sb, tabs+2)
			sb.WriteString(p.symbols.Show(members[i]))
			sb.WriteString(" = ")
			p.writeDebug(sb, arg, tabs+2)
			sb.WriteByte('\n')
		}
		printTabs(sb, tabs+1)
		sb.WriteString("]\n")
		printTabs(sb, tabs)
		sb.WriteByte('}')
	case *TypeVar:
		p.writeWrapped(sb, "TypeVar", t.symbol)
	case *LambdaParam:
		p.writeWrapped(sb, "LambdaParam", t.definition)
	case *SelfTypeParam:
		p.writeWrapped(sb, "SelfTypeParam", t.definition)
	case *MagicType:
		p.writeDebug(sb, t.underlying, tabs)
	case nil:
		panic("types: render nil type")
	default:
		panic(fmt.Errorf("types: Debug: unhandled variant %T", t))
	}
}

func (p *Printer) writeDebugPair(sb *strings.Builder, name string, left, right Type, tabs int) {
	sb.WriteString(name)
	sb.WriteString(" {\n")
	printTabs(sb, tabs+1)
	sb.WriteString("left = ")
	p.writeDebug(sb, left, tabs+1)
	sb.WriteByte('\n')
	printTabs(sb, tabs+1)
	sb.WriteString("right = ")
	p.writeDebug(sb, right, tabs+1)
	sb.WriteByte('\n')
	printTabs(sb, tabs)
	sb.WriteByte('}')
}

func (p *Printer) writeWrapped(sb *strings.Builder, name string, sym symbols.SymbolID) {
	sb.WriteString(name)
	sb.WriteByte('(')
	sb.WriteString(p.symbols.FullName(sym))
	sb.WriteByte(')')
}

// literalValue renders the payload of l according to its underlying class.
func (p *Printer) literalValue(l *LiteralType) string {
	b := symbols.Builtin
	switch l.underlying.symbol {
	case b.String:
		return `"` + p.names.Show(l.name) + `"`
	case b.Symbol:
		return `:"` + p.names.Show(l.name) + `"`
	case b.Integer:
		return strconv.FormatInt(l.Int(), 10)
	case b.Float:
		return formatFloat(l.Float())
	case b.TrueClass:
		return "true"
	case b.FalseClass:
		return "false"
	default:
		panic(fmt.Errorf("types: literal of %s is not renderable", p.symbols.FullName(l.underlying.symbol)))
	}
}

// formatFloat prints the shortest decimal that reads back to exactly f,
// keeping a fractional part so the value still reads as a float.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
