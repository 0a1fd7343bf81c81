package types

import "fmt"

// Equal reports whether a and b are structurally equal: same variant and
// recursively equal attributes. Unions and intersections are compared as
// built, so (A|B)|C and A|(B|C) are different.
func Equal(a, b Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case *ClassType:
		return a.symbol == b.(*ClassType).symbol
	case *LiteralType:
		return equalLiteral(a, b.(*LiteralType))
	case *TupleType:
		return equalList(a.elems, b.(*TupleType).elems)
	case *ShapeType:
		bs := b.(*ShapeType)
		if len(a.keys) != len(bs.keys) {
			return false
		}
		for i := range a.keys {
			if !equalLiteral(a.keys[i], bs.keys[i]) {
				return false
			}
		}
		return equalList(a.values, bs.values)
	case *AliasType:
		return a.symbol == b.(*AliasType).symbol
	case *AndType:
		bt := b.(*AndType)
		return Equal(a.left, bt.left) && Equal(a.right, bt.right)
	case *OrType:
		bt := b.(*OrType)
		return Equal(a.left, bt.left) && Equal(a.right, bt.right)
	case *AppliedType:
		bt := b.(*AppliedType)
		return a.class == bt.class && equalList(a.args, bt.args)
	case *TypeVar:
		return a.symbol == b.(*TypeVar).symbol
	case *LambdaParam:
		return a.definition == b.(*LambdaParam).definition
	case *SelfTypeParam:
		return a.definition == b.(*SelfTypeParam).definition
	case *MagicType:
		return Equal(a.underlying, b.(*MagicType).underlying)
	default:
		panic(fmt.Errorf("types: Equal: unhandled variant %T", a))
	}
}

func equalLiteral(a, b *LiteralType) bool {
	if a == b {
		return true
	}
	return a.underlying.symbol == b.underlying.symbol && a.value == b.value
}

func equalList(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
