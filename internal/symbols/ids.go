package symbols

// SymbolID identifies a symbol inside a Table.
type SymbolID uint32

// NoSymbolID marks the absence of a symbol reference.
const NoSymbolID SymbolID = 0

// IsValid reports whether the ID refers to an allocated symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// Builtins holds the IDs of the symbols seeded into every Table.
// The values are identical across tables.
type Builtins struct {
	Root        SymbolID
	BasicObject SymbolID
	Object      SymbolID
	NilClass    SymbolID
	TrueClass   SymbolID
	FalseClass  SymbolID
	Integer     SymbolID
	Float       SymbolID
	String      SymbolID
	Symbol      SymbolID
	Array       SymbolID
	Hash        SymbolID

	ArrayElem   SymbolID
	HashKey     SymbolID
	HashValue   SymbolID
	HashDefault SymbolID
}

// Builtin lists the seeded symbols in allocation order.
var Builtin = Builtins{
	Root:        1,
	BasicObject: 2,
	Object:      3,
	NilClass:    4,
	TrueClass:   5,
	FalseClass:  6,
	Integer:     7,
	Float:       8,
	String:      9,
	Symbol:      10,
	Array:       11,
	Hash:        12,
	ArrayElem:   13,
	HashKey:     14,
	HashValue:   15,
	HashDefault: 16,
}
