package symbols

import "typecore/internal/names"

// SymbolKind classifies a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolModule
	SymbolClass
	SymbolTypeMember
	SymbolTypeArgument
	SymbolAlias
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolModule:
		return "module"
	case SymbolClass:
		return "class"
	case SymbolTypeMember:
		return "type_member"
	case SymbolTypeArgument:
		return "type_argument"
	case SymbolAlias:
		return "alias"
	default:
		return "invalid"
	}
}

// Symbol is a named entity owned by another symbol.
type Symbol struct {
	Name        names.Ref
	Kind        SymbolKind
	Owner       SymbolID
	TypeMembers []SymbolID // declared type members, in declaration order
	AliasOf     SymbolID   // target of a SymbolAlias
}
