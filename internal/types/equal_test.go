package types

import (
	"testing"

	"typecore/internal/names"
	"typecore/internal/symbols"
)

func sampleTypes(nt *names.Table) []Type {
	b := symbols.Builtin
	x := nt.InternRaw("x")
	return []Type{
		NewClass(b.Integer),
		NewClass(b.String),
		NewIntegerLiteral(1),
		NewIntegerLiteral(2),
		NewFloatLiteral(1),
		NewStringLiteral(x),
		NewSymbolLiteral(x),
		NewBoolLiteral(true),
		NewTuple(NewIntegerLiteral(1), NewClass(b.String)),
		NewTuple(NewClass(b.String), NewIntegerLiteral(1)),
		NewShape([]*LiteralType{NewSymbolLiteral(x)}, []Type{NewClass(b.Integer)}),
		NewAlias(b.Integer),
		NewAnd(NewClass(b.Integer), NewClass(b.String)),
		NewOr(NewClass(b.Integer), NewClass(b.String)),
		NewOr(NewClass(b.String), NewClass(b.Integer)),
		NewApplied(b.Array, NewClass(b.Integer)),
		NewTypeVar(b.ArrayElem),
		NewLambdaParam(b.ArrayElem),
		NewSelfTypeParam(b.ArrayElem),
		NewMagic(NewClass(b.Integer)),
	}
}

func TestEqualReflexiveSymmetric(t *testing.T) {
	nt := names.NewTable()
	all := sampleTypes(nt)
	again := sampleTypes(nt)
	for i, a := range all {
		if !Equal(a, a) {
			t.Errorf("%d: %s not equal to itself", i, TypeName(a))
		}
		if !Equal(a, again[i]) {
			t.Errorf("%d: %s not equal to an identical rebuild", i, TypeName(a))
		}
		for j, b := range all {
			if Equal(a, b) != Equal(b, a) {
				t.Errorf("Equal not symmetric for %d, %d", i, j)
			}
			if i != j && Equal(a, b) {
				t.Errorf("%d (%s) and %d (%s) should differ", i, TypeName(a), j, TypeName(b))
			}
		}
	}
}

func TestEqualNil(t *testing.T) {
	if !Equal(nil, nil) || Equal(NewIntegerLiteral(1), nil) || Equal(nil, NewIntegerLiteral(1)) {
		t.Fatalf("nil handling in Equal")
	}
}

func TestMagicIsNotItsUnderlying(t *testing.T) {
	c := NewClass(symbols.Builtin.Integer)
	if Equal(NewMagic(c), c) {
		t.Fatalf("magic wrapper must be a distinct variant")
	}
}

func TestKindTags(t *testing.T) {
	nt := names.NewTable()
	want := []string{
		"ClassType", "ClassType", "LiteralType", "LiteralType", "LiteralType", "LiteralType",
		"LiteralType", "LiteralType", "TupleType", "TupleType", "ShapeType", "AliasType", "AndType",
		"OrType", "OrType", "AppliedType", "TypeVar", "LambdaParam", "SelfTypeParam", "MagicType",
	}
	for i, typ := range sampleTypes(nt) {
		if got := TypeName(typ); got != want[i] {
			t.Errorf("%d: TypeName = %q, want %q", i, got, want[i])
		}
	}
}

func TestWalkPreOrder(t *testing.T) {
	b := symbols.Builtin
	typ := NewOr(NewTuple(NewIntegerLiteral(1)), NewMagic(NewClass(b.String)))
	var got []Kind
	Walk(typ, func(t Type) bool {
		got = append(got, t.Kind())
		return true
	})
	want := []Kind{KindOr, KindTuple, KindLiteral, KindClass, KindMagic, KindClass}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited %v, want %v", got, want)
		}
	}

	var visited int
	Walk(typ, func(t Type) bool {
		visited++
		return t.Kind() != KindTuple
	})
	if visited != 4 {
		t.Fatalf("pruned walk visited %d nodes, want 4", visited)
	}
}
