package symbols

import (
	"fmt"
	"slices"
	"strings"

	"fortio.org/safecast"

	"typecore/internal/names"
)

// Hints provide optional capacity suggestions for the table arenas.
type Hints struct{ Symbols uint }

type memberKey struct {
	owner SymbolID
	name  names.Ref
}

// Table owns the symbols of one session. It is not safe for concurrent
// mutation; read-only use after construction may be shared.
type Table struct {
	Symbols *Symbols
	Names   *names.Table
	members map[memberKey]SymbolID
}

// NewTable builds a table seeded with the builtin symbols.
// If nt is nil, a fresh names table is allocated.
func NewTable(h Hints, nt *names.Table) *Table {
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if nt == nil {
		nt = names.NewTable()
	}
	t := &Table{
		Symbols: NewSymbols(symCap),
		Names:   nt,
		members: make(map[memberKey]SymbolID),
	}
	t.seed()
	return t
}

func (t *Table) seed() {
	b := Builtin
	mustBe := func(got, want SymbolID) {
		if got != want {
			panic(fmt.Errorf("symbols: builtin seeded at %d, expected %d", got, want))
		}
	}
	mustBe(t.Symbols.New(&Symbol{Name: names.Root, Kind: SymbolModule}), b.Root)
	mustBe(t.EnterClass(b.Root, names.ConstBasicObject), b.BasicObject)
	mustBe(t.EnterClass(b.Root, names.ConstObject), b.Object)
	mustBe(t.EnterClass(b.Root, names.ConstNilClass), b.NilClass)
	mustBe(t.EnterClass(b.Root, names.ConstTrueClass), b.TrueClass)
	mustBe(t.EnterClass(b.Root, names.ConstFalseClass), b.FalseClass)
	mustBe(t.EnterClass(b.Root, names.ConstInteger), b.Integer)
	mustBe(t.EnterClass(b.Root, names.ConstFloat), b.Float)
	mustBe(t.EnterClass(b.Root, names.ConstString), b.String)
	mustBe(t.EnterClass(b.Root, names.ConstSymbol), b.Symbol)
	mustBe(t.EnterClass(b.Root, names.ConstArray), b.Array)
	mustBe(t.EnterClass(b.Root, names.ConstHash), b.Hash)
	mustBe(t.EnterTypeMember(b.Array, names.ConstElem), b.ArrayElem)
	mustBe(t.EnterTypeMember(b.Hash, names.ConstKey), b.HashKey)
	mustBe(t.EnterTypeMember(b.Hash, names.ConstValue), b.HashValue)
	mustBe(t.EnterTypeMember(b.Hash, names.ConstDefault), b.HashDefault)
}

// Enter returns the member of owner called name, creating it with kind on first use.
// Re-entering an existing member with a different kind is a caller bug.
func (t *Table) Enter(owner SymbolID, name names.Ref, kind SymbolKind) SymbolID {
	if t.Get(owner) == nil {
		panic(fmt.Errorf("symbols: enter %s under missing owner %d", t.Names.Debug(name), owner))
	}
	if !name.Exists() {
		panic("symbols: enter with NoName")
	}
	key := memberKey{owner: owner, name: name}
	if id, ok := t.members[key]; ok {
		if got := t.Symbols.Get(id).Kind; got != kind {
			panic(fmt.Errorf("symbols: %s already entered as %s, not %s", t.FullName(id), got, kind))
		}
		return id
	}
	id := t.Symbols.New(&Symbol{Name: name, Kind: kind, Owner: owner})
	t.members[key] = id
	return id
}

// EnterClass enters a class member of owner.
func (t *Table) EnterClass(owner SymbolID, name names.Ref) SymbolID {
	return t.Enter(owner, name, SymbolClass)
}

// EnterTypeMember enters a type member of class and appends it to the
// class's declared type members.
func (t *Table) EnterTypeMember(class SymbolID, name names.Ref) SymbolID {
	before := t.Symbols.Len()
	id := t.Enter(class, name, SymbolTypeMember)
	if t.Symbols.Len() != before {
		owner := t.Symbols.Get(class)
		owner.TypeMembers = append(owner.TypeMembers, id)
	}
	return id
}

// EnterAlias enters an alias member of owner that points at target.
func (t *Table) EnterAlias(owner SymbolID, name names.Ref, target SymbolID) SymbolID {
	if t.Get(target) == nil {
		panic(fmt.Errorf("symbols: alias %s targets missing symbol %d", t.Names.Debug(name), target))
	}
	id := t.Enter(owner, name, SymbolAlias)
	t.Symbols.Get(id).AliasOf = target
	return id
}

// Get returns the symbol or nil for an invalid ID.
func (t *Table) Get(id SymbolID) *Symbol { return t.Symbols.Get(id) }

// Member finds the member of owner called name.
func (t *Table) Member(owner SymbolID, name names.Ref) (SymbolID, bool) {
	id, ok := t.members[memberKey{owner: owner, name: name}]
	return id, ok
}

// must returns the symbol for id or panics; every caller passes IDs taken
// from this table.
func (t *Table) must(id SymbolID) *Symbol {
	sym := t.Symbols.Get(id)
	if sym == nil {
		panic(fmt.Errorf("symbols: invalid symbol %d", id))
	}
	return sym
}

// FullName returns the `::`-joined path from the root to id, e.g. `Outer::Inner`.
func (t *Table) FullName(id SymbolID) string {
	var parts []string
	for cur := id; cur.IsValid() && cur != Builtin.Root; {
		sym := t.must(cur)
		parts = append(parts, t.Names.Show(sym.Name))
		cur = sym.Owner
	}
	if len(parts) == 0 {
		return t.Names.Show(t.must(id).Name)
	}
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
		if i > 0 {
			sb.WriteString("::")
		}
	}
	return sb.String()
}

// Show returns the user-facing form of id. Classes show their full path,
// type members and type arguments only their own name.
func (t *Table) Show(id SymbolID) string {
	sym := t.must(id)
	switch sym.Kind {
	case SymbolTypeMember, SymbolTypeArgument:
		return t.Names.Show(sym.Name)
	default:
		return t.FullName(id)
	}
}

// TypeMembers returns a copy of the declared type members of a class.
func (t *Table) TypeMembers(id SymbolID) []SymbolID {
	return slices.Clone(t.must(id).TypeMembers)
}

// Validate checks that every owner link and type member refers to a live symbol.
func (t *Table) Validate() error {
	for i := 1; i <= t.Symbols.Len(); i++ {
		id := SymbolID(i) //nolint:gosec // bounded by arena length
		sym := t.Symbols.Get(id)
		if sym.Owner.IsValid() && (t.Get(sym.Owner) == nil || sym.Owner >= id) {
			return fmt.Errorf("symbols: %d has invalid owner %d", id, sym.Owner)
		}
		if !sym.Owner.IsValid() && id != Builtin.Root {
			return fmt.Errorf("symbols: %d has no owner", id)
		}
		for _, m := range sym.TypeMembers {
			member := t.Get(m)
			if member == nil || member.Kind != SymbolTypeMember || member.Owner != id {
				return fmt.Errorf("symbols: %d lists invalid type member %d", id, m)
			}
		}
		if sym.Kind == SymbolAlias && t.Get(sym.AliasOf) == nil {
			return fmt.Errorf("symbols: alias %d has no target", id)
		}
	}
	return nil
}
