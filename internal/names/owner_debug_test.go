//go:build typecoredebug

package names

import (
	"strings"
	"testing"
)

func mustPanicWith(t *testing.T, what, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: no panic", what)
			return
		}
		err, ok := r.(error)
		if !ok || !strings.Contains(err.Error(), want) {
			t.Errorf("%s: panic %v, want it to mention %q", what, r, want)
		}
	}()
	fn()
}

func TestForeignRefPanics(t *testing.T) {
	a, b := NewTable(), NewTable()
	ax := a.InternRaw("ax")
	const want = "used with table"

	mustPanicWith(t, "Show", want, func() { b.Show(ax) })
	mustPanicWith(t, "Debug", want, func() { b.Debug(ax) })
	mustPanicWith(t, "Resolve", want, func() { b.Resolve(ax) })
	mustPanicWith(t, "Lookup", want, func() { b.Lookup(ax) })
	mustPanicWith(t, "InternConstant", want, func() { b.InternConstant(ax) })
	mustPanicWith(t, "WithEq", want, func() { b.WithEq(ax) })

	// A recovered panic inside Intern must not leave b locked.
	if r := b.InternRaw("bx"); !r.Exists() {
		t.Fatalf("table unusable after foreign ref panic")
	}
	if got := a.Show(ax); got != "ax" {
		t.Fatalf("owner table Show = %q", got)
	}
}

func TestWellKnownRefsAcceptedEverywhere(t *testing.T) {
	a, b := NewTable(), NewTable()
	for _, r := range []Ref{Initialize, Root, ConstInteger} {
		if a.Show(r) != b.Show(r) {
			t.Fatalf("%v renders differently across tables", r)
		}
		b.Resolve(r)
	}
	if ca, cb := a.InternConstant(Integer), b.InternConstant(Integer); ca != ConstInteger || cb != ConstInteger {
		t.Fatalf("constant of Integer = %v, %v, want %v", ca, cb, ConstInteger)
	}
}

func TestRefsCarryOwner(t *testing.T) {
	a, b := NewTable(), NewTable()
	ra, rb := a.InternRaw("same"), b.InternRaw("same")
	if ra.ID() != rb.ID() {
		t.Fatalf("ids differ: %d vs %d", ra.ID(), rb.ID())
	}
	if ra == rb {
		t.Fatalf("refs from different tables compare equal")
	}
	if got := a.Refs()[len(a.Refs())-1]; got != ra {
		t.Fatalf("Refs() lost the owner tag: %v", got)
	}
}
