package types

import (
	"testing"

	"typecore/internal/names"
	"typecore/internal/symbols"
)

func TestInternerSeedsBuiltins(t *testing.T) {
	in := NewInterner()
	if in.Len() != 8 {
		t.Fatalf("fresh interner holds %d nodes, want 8 builtin classes", in.Len())
	}
	a := in.Intern(NewClass(symbols.Builtin.Integer))
	b := in.Intern(NewClass(symbols.Builtin.Integer))
	if a != b || in.Len() != 8 {
		t.Fatalf("builtin class not shared")
	}
}

func TestInternerDeduplicatesTrees(t *testing.T) {
	in := NewInterner()
	build := func() Type {
		b := symbols.Builtin
		return NewOr(NewTuple(NewIntegerLiteral(1), NewClass(b.String)), NewApplied(b.Array, NewClass(b.Integer)))
	}
	first := in.Intern(build())
	second := in.Intern(build())
	if first != second {
		t.Fatalf("structurally equal trees interned to different nodes")
	}
	if !Equal(first, build()) {
		t.Fatalf("canonical node is not equal to its source")
	}
	or := first.(*OrType)
	tuple := in.Intern(NewTuple(NewIntegerLiteral(1), NewClass(symbols.Builtin.String)))
	if or.Left() != tuple {
		t.Fatalf("subtrees are not shared")
	}
}

func TestInternerKeepsDistinctTreesApart(t *testing.T) {
	in := NewInterner()
	nt := names.NewTable()
	seen := map[Type]int{}
	for i, typ := range sampleTypes(nt) {
		c := in.Intern(typ)
		if j, dup := seen[c]; dup {
			t.Fatalf("sample %d interned onto sample %d", i, j)
		}
		seen[c] = i
	}
	before := in.Len()
	for _, typ := range sampleTypes(nt) {
		in.Intern(typ)
	}
	if in.Len() != before {
		t.Fatalf("re-interning grew the interner from %d to %d", before, in.Len())
	}
}

func TestInternerRetainsOnlyCanonicalNodes(t *testing.T) {
	in := NewInterner()
	build := func() Type {
		return NewOr(NewClass(symbols.Builtin.Integer), NewTuple(NewIntegerLiteral(1)))
	}
	first := in.Intern(build())
	nodes, ids := in.Len(), len(in.ids)
	if ids != nodes {
		t.Fatalf("ids tracks %d nodes, interner holds %d", ids, nodes)
	}
	for range 1000 {
		if got := in.Intern(build()); got != first {
			t.Fatalf("fresh tree interned to a different node")
		}
	}
	if in.Len() != nodes || len(in.ids) != ids {
		t.Fatalf("after re-interning: %d nodes, %d ids; want %d and %d", in.Len(), len(in.ids), nodes, ids)
	}
}
