package names

import (
	"fmt"
	"strings"
)

// Debug renders r in the verbose form used by internal dumps, e.g. `<C <U Foo>>`.
func (t *Table) Debug(r Ref) string {
	t.checkOwner(r)
	t.mu.RLock()
	defer t.mu.RUnlock()
	var sb strings.Builder
	t.writeDebugLocked(&sb, r.id)
	return sb.String()
}

// Show renders r the way it reads in source and diagnostics.
func (t *Table) Show(r Ref) string {
	t.checkOwner(r)
	t.mu.RLock()
	defer t.mu.RUnlock()
	var sb strings.Builder
	t.writeShowLocked(&sb, r.id)
	return sb.String()
}

func (t *Table) debugLocked(r Ref) string {
	var sb strings.Builder
	t.writeDebugLocked(&sb, r.id)
	return sb.String()
}

func (t *Table) writeDebugLocked(sb *strings.Builder, id uint32) {
	if id == 0 {
		sb.WriteString("<none>")
		return
	}
	if !t.hasLocked(id) {
		panic(fmt.Errorf("names: cannot render Ref(%d)", id))
	}
	switch n := t.byID[id].(type) {
	case RawName:
		sb.WriteString("<U ")
		sb.WriteString(n.Text)
		sb.WriteByte('>')
	case UniqueName:
		sb.WriteByte('<')
		sb.WriteString(n.Unique.String())
		sb.WriteByte(' ')
		t.writeDebugLocked(sb, n.Original.id)
		fmt.Fprintf(sb, " $%d>", n.Num)
	case ConstantName:
		sb.WriteString("<C ")
		t.writeDebugLocked(sb, n.Original.id)
		sb.WriteByte('>')
	default:
		panic(fmt.Errorf("names: unknown name variant %T", n))
	}
}

func (t *Table) writeShowLocked(sb *strings.Builder, id uint32) {
	if id == 0 {
		return
	}
	if !t.hasLocked(id) {
		panic(fmt.Errorf("names: cannot render Ref(%d)", id))
	}
	switch n := t.byID[id].(type) {
	case RawName:
		sb.WriteString(n.Text)
	case UniqueName:
		switch {
		case n.Unique == UniqueSingleton:
			sb.WriteString("<Class:")
			t.writeShowLocked(sb, n.Original.id)
			sb.WriteByte('>')
		case n.Unique == UniqueNamer && n.Num == setterNum:
			t.writeShowLocked(sb, n.Original.id)
			sb.WriteByte('=')
		case n.Unique == UniqueNamer && n.Num == ivarNum:
			sb.WriteByte('@')
			t.writeShowLocked(sb, n.Original.id)
		default:
			t.writeShowLocked(sb, n.Original.id)
		}
	case ConstantName:
		t.writeShowLocked(sb, n.Original.id)
	default:
		panic(fmt.Errorf("names: unknown name variant %T", n))
	}
}
