// Package types is the type algebra: a closed set of immutable type nodes,
// structural equality over them, and their debug and display renderings.
package types

import "fmt"

// Kind is the stable tag of a type variant.
type Kind uint8

const (
	KindClass Kind = iota + 1
	KindLiteral
	KindTuple
	KindShape
	KindAlias
	KindAnd
	KindOr
	KindApplied
	KindTypeVar
	KindLambdaParam
	KindSelfTypeParam
	KindMagic
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "ClassType"
	case KindLiteral:
		return "LiteralType"
	case KindTuple:
		return "TupleType"
	case KindShape:
		return "ShapeType"
	case KindAlias:
		return "AliasType"
	case KindAnd:
		return "AndType"
	case KindOr:
		return "OrType"
	case KindApplied:
		return "AppliedType"
	case KindTypeVar:
		return "TypeVar"
	case KindLambdaParam:
		return "LambdaParam"
	case KindSelfTypeParam:
		return "SelfTypeParam"
	case KindMagic:
		return "MagicType"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is implemented by the pointer types of this package only:
// *ClassType, *LiteralType, *TupleType, *ShapeType, *AliasType, *AndType,
// *OrType, *AppliedType, *TypeVar, *LambdaParam, *SelfTypeParam, *MagicType.
// Nodes never change after construction and may be shared freely.
type Type interface {
	Kind() Kind
	isType()
}

// TypeName returns the variant tag of t, e.g. "OrType".
func TypeName(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.Kind().String()
}

func mustType(what string, t Type) {
	if t == nil {
		panic("types: nil " + what)
	}
}
