package types

import "fmt"

// Walk visits t and its descendants in pre-order, children left to right.
// When visit returns false the children of that node are skipped.
func Walk(t Type, visit func(Type) bool) {
	if t == nil || !visit(t) {
		return
	}
	switch t := t.(type) {
	case *ClassType, *AliasType, *TypeVar, *LambdaParam, *SelfTypeParam:
	case *LiteralType:
		Walk(t.underlying, visit)
	case *TupleType:
		for _, e := range t.elems {
			Walk(e, visit)
		}
	case *ShapeType:
		for i := range t.keys {
			Walk(t.keys[i], visit)
			Walk(t.values[i], visit)
		}
	case *AndType:
		Walk(t.left, visit)
		Walk(t.right, visit)
	case *OrType:
		Walk(t.left, visit)
		Walk(t.right, visit)
	case *AppliedType:
		for _, a := range t.args {
			Walk(a, visit)
		}
	case *MagicType:
		Walk(t.underlying, visit)
	default:
		panic(fmt.Errorf("types: Walk: unhandled variant %T", t))
	}
}
