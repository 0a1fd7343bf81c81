package types

import (
	"fmt"
	"slices"

	"typecore/internal/symbols"
)

// TupleType is a positional product type.
type TupleType struct {
	elems []Type
}

// NewTuple returns the tuple of elems. The slice is copied.
func NewTuple(elems ...Type) *TupleType {
	for _, e := range elems {
		mustType("tuple element", e)
	}
	return &TupleType{elems: slices.Clone(elems)}
}

func (*TupleType) Kind() Kind { return KindTuple }
func (*TupleType) isType()    {}

// Len returns the number of elements.
func (t *TupleType) Len() int { return len(t.elems) }

// Elem returns the i-th element.
func (t *TupleType) Elem(i int) Type { return t.elems[i] }

// ShapeType is a record type: literal keys paired positionally with value
// types, kept in declaration order.
type ShapeType struct {
	keys   []*LiteralType
	values []Type
}

// NewShape pairs keys[i] with values[i]. Both slices are copied.
func NewShape(keys []*LiteralType, values []Type) *ShapeType {
	if len(keys) != len(values) {
		panic(fmt.Errorf("types: shape has %d keys and %d values", len(keys), len(values)))
	}
	for i := range keys {
		if keys[i] == nil {
			panic("types: nil shape key")
		}
		mustType("shape value", values[i])
	}
	return &ShapeType{keys: slices.Clone(keys), values: slices.Clone(values)}
}

func (*ShapeType) Kind() Kind { return KindShape }
func (*ShapeType) isType()    {}

// Len returns the number of key/value pairs.
func (s *ShapeType) Len() int { return len(s.keys) }

// Key returns the i-th key.
func (s *ShapeType) Key(i int) *LiteralType { return s.keys[i] }

// Value returns the i-th value.
func (s *ShapeType) Value(i int) Type { return s.values[i] }

// AndType is the intersection of two types.
type AndType struct {
	left, right Type
}

// NewAnd returns left & right.
func NewAnd(left, right Type) *AndType {
	mustType("intersection operand", left)
	mustType("intersection operand", right)
	return &AndType{left: left, right: right}
}

func (*AndType) Kind() Kind    { return KindAnd }
func (*AndType) isType()       {}
func (a *AndType) Left() Type  { return a.left }
func (a *AndType) Right() Type { return a.right }

// OrType is the union of two types.
type OrType struct {
	left, right Type
}

// NewOr returns left | right.
func NewOr(left, right Type) *OrType {
	mustType("union operand", left)
	mustType("union operand", right)
	return &OrType{left: left, right: right}
}

func (*OrType) Kind() Kind    { return KindOr }
func (*OrType) isType()       {}
func (o *OrType) Left() Type  { return o.left }
func (o *OrType) Right() Type { return o.right }

// AppliedType instantiates a generic class. Argument i binds the class's
// i-th declared type member.
type AppliedType struct {
	class symbols.SymbolID
	args  []Type
}

// NewApplied returns class[args...]. The slice is copied.
func NewApplied(class symbols.SymbolID, args ...Type) *AppliedType {
	if !class.IsValid() {
		panic("types: applied type without class")
	}
	for _, a := range args {
		mustType("type argument", a)
	}
	return &AppliedType{class: class, args: slices.Clone(args)}
}

func (*AppliedType) Kind() Kind                { return KindApplied }
func (*AppliedType) isType()                   {}
func (a *AppliedType) Class() symbols.SymbolID { return a.class }
func (a *AppliedType) Len() int                { return len(a.args) }
func (a *AppliedType) Arg(i int) Type          { return a.args[i] }
func (a *AppliedType) Args() []Type            { return slices.Clone(a.args) }

// MagicType wraps a builtin pseudo-type. It is transparent to rendering.
type MagicType struct {
	underlying Type
}

// NewMagic wraps underlying.
func NewMagic(underlying Type) *MagicType {
	mustType("magic underlying type", underlying)
	return &MagicType{underlying: underlying}
}

func (*MagicType) Kind() Kind         { return KindMagic }
func (*MagicType) isType()            {}
func (m *MagicType) Underlying() Type { return m.underlying }
