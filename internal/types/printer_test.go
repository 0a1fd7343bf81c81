package types

import (
	"strings"
	"testing"

	"typecore/internal/names"
	"typecore/internal/symbols"
)

type env struct {
	names   *names.Table
	symbols *symbols.Table
	p       *Printer
}

func newEnv() *env {
	nt := names.NewTable()
	st := symbols.NewTable(symbols.Hints{}, nt)
	return &env{names: nt, symbols: st, p: NewPrinter(nt, st)}
}

func (e *env) class(name string) symbols.SymbolID {
	return e.symbols.EnterClass(symbols.Builtin.Root, e.names.InternConstant(e.names.InternRaw(name)))
}

func (e *env) member(owner symbols.SymbolID, name string) symbols.SymbolID {
	return e.symbols.EnterTypeMember(owner, e.names.InternConstant(e.names.InternRaw(name)))
}

func builtin(sym symbols.SymbolID) *ClassType { return NewClass(sym) }

func TestShowScalars(t *testing.T) {
	e := newEnv()
	b := symbols.Builtin
	cases := []struct {
		typ  Type
		want string
	}{
		{builtin(b.Integer), "Integer"},
		{NewIntegerLiteral(42), "42"},
		{NewIntegerLiteral(-7), "-7"},
		{NewFloatLiteral(3.14), "3.14"},
		{NewFloatLiteral(2), "2.0"},
		{NewStringLiteral(e.names.InternRaw("hi")), `"hi"`},
		{NewSymbolLiteral(e.names.InternRaw("sym")), `:"sym"`},
		{NewBoolLiteral(true), "true"},
		{NewBoolLiteral(false), "false"},
		{NewAlias(b.Integer), "<Alias:Integer>"},
		{NewMagic(builtin(b.String)), "String"},
		{NewTypeVar(b.ArrayElem), "Elem"},
		{NewLambdaParam(b.HashKey), "K"},
		{NewSelfTypeParam(b.HashValue), "V"},
	}
	for _, tc := range cases {
		if got := e.p.Show(tc.typ); got != tc.want {
			t.Errorf("Show(%s) = %q, want %q", TypeName(tc.typ), got, tc.want)
		}
	}
}

func TestFloatLiteralKeepsEveryBit(t *testing.T) {
	e := newEnv()
	// Summed at run time; the constant expression 0.1 + 0.2 folds to exactly 0.3.
	a, b := 0.1, 0.2
	sum := a + b
	for _, f := range []float64{3.14, sum, 1e300, -2.5e-8} {
		lit := NewFloatLiteral(f)
		if lit.Float() != f {
			t.Fatalf("payload of %v decodes to %v", f, lit.Float())
		}
		back := NewLiteral(builtin(symbols.Builtin.Float), lit.Bits(), names.NoName)
		if !Equal(lit, back) {
			t.Fatalf("literal rebuilt from bits differs for %v", f)
		}
		if got := e.p.Show(lit); got == "" || strings.Contains(got, "...") {
			t.Fatalf("Show(%v) = %q", f, got)
		}
	}
	if got := e.p.Show(NewFloatLiteral(sum)); got != "0.30000000000000004" {
		t.Fatalf("Show(0.1+0.2) = %q", got)
	}
	if got := e.p.Show(NewFloatLiteral(0.3)); got != "0.3" {
		t.Fatalf("Show(0.3) = %q", got)
	}
}

func TestLiteralPayloadAccessors(t *testing.T) {
	for _, v := range []int64{0, -7, 1 << 62} {
		if got := NewIntegerLiteral(v).Int(); got != v {
			t.Fatalf("Int() = %d, want %d", got, v)
		}
	}
	if got := NewBoolLiteral(true).Int(); got != 1 {
		t.Fatalf("true payload = %d", got)
	}
}

func TestTupleRendering(t *testing.T) {
	e := newEnv()
	tuple := NewTuple(NewIntegerLiteral(1), NewIntegerLiteral(2), NewIntegerLiteral(3))
	if got := e.p.Show(tuple); got != "[1, 2, 3]" {
		t.Fatalf("Show = %q", got)
	}
	want := "TupleType {\n  0 = 1\n  1 = 2\n  2 = 3\n}"
	if got := e.p.Debug(tuple); got != want {
		t.Fatalf("Debug =\n%s\nwant\n%s", got, want)
	}
	nested := NewTuple(NewTuple(NewIntegerLiteral(1)))
	want = "TupleType {\n  0 = TupleType {\n    0 = 1\n  }\n}"
	if got := e.p.Debug(nested); got != want {
		t.Fatalf("nested Debug =\n%s\nwant\n%s", got, want)
	}
	if got := e.p.Show(NewTuple()); got != "[]" {
		t.Fatalf("empty tuple Show = %q", got)
	}
}

func TestShapeRendering(t *testing.T) {
	e := newEnv()
	x := NewSymbolLiteral(e.names.InternRaw("x"))
	shape := NewShape([]*LiteralType{x}, []Type{NewIntegerLiteral(5)})
	if got := e.p.Show(shape); got != "{x: 5}" {
		t.Fatalf("Show = %q", got)
	}
	k := NewStringLiteral(e.names.InternRaw("k"))
	mixed := NewShape([]*LiteralType{k, x}, []Type{builtin(symbols.Builtin.String), NewBoolLiteral(true)})
	if got := e.p.Show(mixed); got != `{"k" => String, x: true}` {
		t.Fatalf("mixed Show = %q", got)
	}
	want := "ShapeType {\n  \"k\" => String\n  :\"x\" => true\n}"
	if got := e.p.Debug(mixed); got != want {
		t.Fatalf("Debug =\n%s\nwant\n%s", got, want)
	}
}

func TestShapeLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewShape([]*LiteralType{NewIntegerLiteral(1)}, nil)
}

func TestOrNilable(t *testing.T) {
	e := newEnv()
	nilClass := builtin(symbols.Builtin.NilClass)
	for _, x := range []Type{
		builtin(symbols.Builtin.Integer),
		NewTuple(NewIntegerLiteral(1)),
		NewOr(builtin(symbols.Builtin.String), builtin(symbols.Builtin.Symbol)),
	} {
		want := "nilable(" + e.p.Show(x) + ")"
		if got := e.p.Show(NewOr(nilClass, x)); got != want {
			t.Errorf("Show(Or(Nil, X)) = %q, want %q", got, want)
		}
		if got := e.p.Show(NewOr(x, nilClass)); got != want {
			t.Errorf("Show(Or(X, Nil)) = %q, want %q", got, want)
		}
	}
}

func TestOrFlattening(t *testing.T) {
	e := newEnv()
	b := symbols.Builtin
	a, bb, c := builtin(b.Integer), builtin(b.String), builtin(b.Symbol)
	left := NewOr(NewOr(a, bb), c)
	right := NewOr(a, NewOr(bb, c))
	want := "any(Integer, String, Symbol)"
	if got := e.p.Show(left); got != want {
		t.Fatalf("Show(left-assoc) = %q", got)
	}
	if got := e.p.Show(right); got != want {
		t.Fatalf("Show(right-assoc) = %q", got)
	}
	if Equal(left, right) {
		t.Fatalf("differently associated unions must not be structurally equal")
	}
	four := NewOr(NewOr(a, bb), NewOr(c, builtin(b.Float)))
	if got := e.p.Show(four); got != "any(Integer, String, Symbol, Float)" {
		t.Fatalf("Show(four) = %q", got)
	}
}

func TestNestedNilIsNotCollapsed(t *testing.T) {
	e := newEnv()
	b := symbols.Builtin
	typ := NewOr(NewOr(builtin(b.NilClass), builtin(b.Integer)), builtin(b.String))
	if got := e.p.Show(typ); got != "any(NilClass, Integer, String)" {
		t.Fatalf("Show = %q", got)
	}
}

func TestAndRendering(t *testing.T) {
	e := newEnv()
	b := symbols.Builtin
	and := NewAnd(builtin(b.Integer), NewOr(builtin(b.String), builtin(b.Symbol)))
	if got := e.p.Show(and); got != "all(Integer, any(String, Symbol))" {
		t.Fatalf("Show = %q", got)
	}
	want := "AndType {\n  left = Integer\n  right = OrType {\n    left = String\n    right = Symbol\n  }\n}"
	if got := e.p.Debug(and); got != want {
		t.Fatalf("Debug =\n%s\nwant\n%s", got, want)
	}
}

func TestAppliedRendering(t *testing.T) {
	e := newEnv()
	b := symbols.Builtin
	hash := NewApplied(b.Hash, builtin(b.Symbol), builtin(b.Integer), builtin(b.NilClass))
	if got := e.p.Show(hash); got != "T::Hash[Symbol, Integer]" {
		t.Fatalf("Show(hash) = %q", got)
	}
	want := "AppliedType {\n  klass = Hash\n  targs = [\n    K = Symbol\n    V = Integer\n    Default = NilClass\n  ]\n}"
	if got := e.p.Debug(hash); got != want {
		t.Fatalf("Debug(hash) =\n%s\nwant\n%s", got, want)
	}
	array := NewApplied(b.Array, NewOr(builtin(b.Integer), builtin(b.NilClass)))
	if got := e.p.Show(array); got != "T::Array[nilable(Integer)]" {
		t.Fatalf("Show(array) = %q", got)
	}
	box := e.class("Box")
	e.member(box, "T")
	if got := e.p.Show(NewApplied(box, builtin(b.String))); got != "Box[String]" {
		t.Fatalf("Show(box) = %q", got)
	}
}

func TestAppliedArityMismatchPanicsInDebug(t *testing.T) {
	e := newEnv()
	typ := NewApplied(symbols.Builtin.Hash, builtin(symbols.Builtin.Integer))
	if got := e.p.Show(typ); got != "T::Hash[]" {
		t.Fatalf("Show = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	e.p.Debug(typ)
}

func TestParamAndAliasDebug(t *testing.T) {
	e := newEnv()
	b := symbols.Builtin
	cases := []struct {
		typ  Type
		want string
	}{
		{NewTypeVar(b.ArrayElem), "TypeVar(Array::Elem)"},
		{NewLambdaParam(b.HashKey), "LambdaParam(Hash::K)"},
		{NewSelfTypeParam(b.HashValue), "SelfTypeParam(Hash::V)"},
		{NewAlias(b.Integer), "AliasType { symbol = Integer }"},
		{NewMagic(NewIntegerLiteral(3)), "3"},
	}
	for _, tc := range cases {
		if got := e.p.Debug(tc.typ); got != tc.want {
			t.Errorf("Debug(%s) = %q, want %q", TypeName(tc.typ), got, tc.want)
		}
	}
}

func TestDebugIndent(t *testing.T) {
	e := newEnv()
	tuple := NewTuple(NewIntegerLiteral(1))
	want := "TupleType {\n    0 = 1\n  }"
	if got := e.p.DebugIndent(tuple, 1); got != want {
		t.Fatalf("DebugIndent =\n%s\nwant\n%s", got, want)
	}
}

func TestLiteralOfUnsupportedClassPanics(t *testing.T) {
	e := newEnv()
	lit := &LiteralType{underlying: builtin(symbols.Builtin.Object), value: 1}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	e.p.Show(lit)
}
