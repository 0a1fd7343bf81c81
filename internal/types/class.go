package types

import (
	"fmt"
	"math"

	"typecore/internal/names"
	"typecore/internal/symbols"
)

// ClassType is a nominal reference to a class or module.
type ClassType struct {
	symbol symbols.SymbolID
}

// NewClass returns the class type of sym.
func NewClass(sym symbols.SymbolID) *ClassType {
	if !sym.IsValid() {
		panic("types: class type without symbol")
	}
	return &ClassType{symbol: sym}
}

func (*ClassType) Kind() Kind                 { return KindClass }
func (*ClassType) isType()                    {}
func (c *ClassType) Symbol() symbols.SymbolID { return c.symbol }

// LiteralType is a singleton value of a builtin class. The 64-bit payload is
// interpreted according to the underlying class: a name id for String and
// Symbol, the integer for Integer, the IEEE-754 bits for Float, and nothing
// for TrueClass and FalseClass.
type LiteralType struct {
	underlying *ClassType
	value      int64
	name       names.Ref // set for String and Symbol
}

func (*LiteralType) Kind() Kind { return KindLiteral }
func (*LiteralType) isType()    {}

// Underlying returns the class whose value the literal is.
func (l *LiteralType) Underlying() *ClassType { return l.underlying }

// Bits returns the raw payload.
func (l *LiteralType) Bits() uint64 { return uint64(l.value) }

// Int returns the payload of an Integer literal.
func (l *LiteralType) Int() int64 { return l.value }

// Float returns the payload of a Float literal.
func (l *LiteralType) Float() float64 { return math.Float64frombits(uint64(l.value)) }

// Name returns the payload of a String or Symbol literal.
func (l *LiteralType) Name() names.Ref { return l.name }

// NewIntegerLiteral returns the literal type of v.
func NewIntegerLiteral(v int64) *LiteralType {
	return &LiteralType{underlying: NewClass(symbols.Builtin.Integer), value: v}
}

// NewFloatLiteral returns the literal type of v, keeping every bit of v.
func NewFloatLiteral(v float64) *LiteralType {
	return &LiteralType{underlying: NewClass(symbols.Builtin.Float), value: int64(math.Float64bits(v))}
}

// NewStringLiteral returns the literal type of the string named by s.
func NewStringLiteral(s names.Ref) *LiteralType {
	return newNameLiteral(symbols.Builtin.String, s)
}

// NewSymbolLiteral returns the literal type of the symbol named by s.
func NewSymbolLiteral(s names.Ref) *LiteralType {
	return newNameLiteral(symbols.Builtin.Symbol, s)
}

// NewBoolLiteral returns the literal type of b.
func NewBoolLiteral(b bool) *LiteralType {
	if b {
		return &LiteralType{underlying: NewClass(symbols.Builtin.TrueClass), value: 1}
	}
	return &LiteralType{underlying: NewClass(symbols.Builtin.FalseClass)}
}

func newNameLiteral(class symbols.SymbolID, s names.Ref) *LiteralType {
	if !s.Exists() {
		panic("types: name literal without name")
	}
	return &LiteralType{underlying: NewClass(class), value: int64(s.ID()), name: s}
}

// NewLiteral builds a literal from a raw payload. Only the builtin literal
// classes are accepted; String and Symbol payloads must carry their name.
func NewLiteral(underlying *ClassType, bits uint64, name names.Ref) *LiteralType {
	if underlying == nil {
		panic("types: literal without underlying class")
	}
	b := symbols.Builtin
	switch underlying.symbol {
	case b.String, b.Symbol:
		if !name.Exists() || uint64(name.ID()) != bits {
			panic(fmt.Errorf("types: name literal payload %d does not match %v", bits, name))
		}
	case b.Integer, b.Float, b.TrueClass, b.FalseClass:
		name = names.NoName
	default:
		panic(fmt.Errorf("types: symbol %d cannot have literal values", underlying.symbol))
	}
	return &LiteralType{underlying: underlying, value: int64(bits), name: name}
}
