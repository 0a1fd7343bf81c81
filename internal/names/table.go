package names

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"fortio.org/safecast"
)

const (
	// setterNum and ivarNum are reserved counters for WithEq and WithAt.
	setterNum   uint16 = math.MaxUint16
	ivarNum     uint16 = math.MaxUint16 - 1
	maxFreshNum        = ivarNum - 1
)

// Table interns names for one compilation session.
// Lookups by Ref may run concurrently with interning.
type Table struct {
	mu       sync.RWMutex
	owner    ownerTag
	byID     []Name          // byID[0] = nil for NoName
	index    map[Name]uint32 // canonical name -> id
	counters map[UniqueName]uint16
}

// NewTable returns a table seeded with the well-known names.
func NewTable() *Table {
	t := &Table{
		owner:    newOwnerTag(),
		byID:     make([]Name, 1, len(wellKnown)+64),
		index:    make(map[Name]uint32, len(wellKnown)+64),
		counters: make(map[UniqueName]uint16),
	}
	for _, n := range wellKnown[1:] {
		t.insertLocked(n)
	}
	return t
}

// Len returns the number of stored names, NoName included.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}

// Refs returns every stored ref in insertion order, NoName excluded.
func (t *Table) Refs() []Ref {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Ref, 0, len(t.byID)-1)
	for id := uint32(1); int(id) < len(t.byID); id++ {
		out = append(out, t.ref(id))
	}
	return out
}

// Intern returns the unique ref for n, storing it on first use.
// Unique and constant names must wrap a ref that already exists in t.
func (t *Table) Intern(n Name) Ref {
	key, id, ok := t.find(n)
	if ok {
		return t.ref(id)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.index[key]; ok {
		return t.ref(id)
	}
	return t.ref(t.insertLocked(key))
}

func (t *Table) find(n Name) (Name, uint32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	key := t.canonicalLocked(n)
	id, ok := t.index[key]
	return key, id, ok
}

// InternRaw interns verbatim source text.
func (t *Table) InternRaw(text string) Ref {
	return t.Intern(RawName{Text: text})
}

// InternBytes interns verbatim source bytes.
func (t *Table) InternBytes(b []byte) Ref {
	return t.Intern(RawName{Text: string(b)})
}

// InternUnique interns a unique name derived from original.
func (t *Table) InternUnique(kind UniqueKind, original Ref, num uint16) Ref {
	return t.Intern(UniqueName{Original: original, Unique: kind, Num: num})
}

// InternConstant interns the constant-context variant of original.
func (t *Table) InternConstant(original Ref) Ref {
	return t.Intern(ConstantName{Original: original})
}

// WithEq returns the setter-method derivation of r.
func (t *Table) WithEq(r Ref) Ref {
	return t.InternUnique(UniqueNamer, r, setterNum)
}

// WithAt returns the instance-variable derivation of r.
func (t *Table) WithAt(r Ref) Ref {
	return t.InternUnique(UniqueNamer, r, ivarNum)
}

// FreshUnique mints a unique name for original that has not been interned before.
func (t *Table) FreshUnique(kind UniqueKind, original Ref) Ref {
	t.mu.Lock()
	defer t.mu.Unlock()
	base := t.canonicalLocked(UniqueName{Original: original, Unique: kind}).(UniqueName)
	for num := t.counters[base] + 1; ; num++ {
		if num > maxFreshNum {
			panic(fmt.Errorf("names: unique counter exhausted for %s", t.debugLocked(base.Original)))
		}
		key := UniqueName{Original: base.Original, Unique: kind, Num: num}
		if _, taken := t.index[key]; taken {
			continue
		}
		t.counters[base] = num
		return t.ref(t.insertLocked(key))
	}
}

// Resolve returns the record behind r. It panics when r is not a valid ref of t.
func (t *Table) Resolve(r Ref) Name {
	n, ok := t.Lookup(r)
	if !ok {
		panic(fmt.Errorf("names: cannot resolve %v (table has %d names)", r, t.Len()))
	}
	return n
}

// Lookup returns the record behind r, or false when r does not exist in t.
func (t *Table) Lookup(r Ref) (Name, bool) {
	t.checkOwner(r)
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.hasLocked(r.id) {
		return nil, false
	}
	return t.exportLocked(t.byID[r.id]), true
}

// Validate checks the internal consistency of the table.
func (t *Table) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.byID) < len(wellKnown) {
		return errors.New("names: well-known names missing")
	}
	for id := 1; id < len(t.byID); id++ {
		n := t.byID[id]
		if id < len(wellKnown) && n != wellKnown[id] {
			return fmt.Errorf("names: well-known id %d holds %v", id, n)
		}
		if got, ok := t.index[n]; !ok || int(got) != id {
			return fmt.Errorf("names: index mismatch for id %d", id)
		}
		var original Ref
		switch n := n.(type) {
		case RawName:
			continue
		case UniqueName:
			original = n.Original
		case ConstantName:
			original = n.Original
		default:
			return fmt.Errorf("names: unknown record %T at id %d", n, id)
		}
		if !original.Exists() || int(original.id) >= id {
			return fmt.Errorf("names: id %d wraps %v, which is not an earlier name", id, original)
		}
	}
	return nil
}

// canonicalLocked validates n and strips owner tags from embedded refs.
func (t *Table) canonicalLocked(n Name) Name {
	switch n := n.(type) {
	case RawName:
		return n
	case UniqueName:
		if !n.Unique.valid() {
			panic(fmt.Errorf("names: invalid unique kind %d", n.Unique))
		}
		n.Original = t.originalLocked(n.Original)
		return n
	case ConstantName:
		n.Original = t.originalLocked(n.Original)
		return n
	case nil:
		panic("names: nil name")
	default:
		panic(fmt.Errorf("names: unknown name variant %T", n))
	}
}

func (t *Table) originalLocked(r Ref) Ref {
	t.checkOwner(r)
	if !t.hasLocked(r.id) {
		panic(fmt.Errorf("names: derived name wraps missing %v", r))
	}
	return Ref{id: r.id}
}

// exportLocked re-attaches the table's owner tag to embedded refs.
func (t *Table) exportLocked(n Name) Name {
	switch n := n.(type) {
	case UniqueName:
		n.Original = t.ref(n.Original.id)
		return n
	case ConstantName:
		n.Original = t.ref(n.Original.id)
		return n
	default:
		return n
	}
}

func (t *Table) insertLocked(n Name) uint32 {
	id, err := safecast.Conv[uint32](len(t.byID))
	if err != nil {
		panic(fmt.Errorf("names: table overflow: %w", err))
	}
	t.byID = append(t.byID, n)
	t.index[n] = id
	return id
}

func (t *Table) hasLocked(id uint32) bool {
	return id != 0 && int(id) < len(t.byID)
}

func (t *Table) ref(id uint32) Ref {
	if int(id) < len(wellKnown) {
		return Ref{id: id}
	}
	return Ref{id: id, owner: t.owner}
}
