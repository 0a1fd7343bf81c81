package names

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	"typecore/internal/trace"
)

// snapshotSchema must be bumped whenever snapshotPayload changes shape.
const snapshotSchema uint16 = 1

// ErrSnapshotSchema reports a snapshot written with an incompatible schema.
var ErrSnapshotSchema = errors.New("names: unsupported snapshot schema")

type snapshotEntry struct {
	Kind     Kind       `msgpack:"k"`
	Text     string     `msgpack:"t,omitempty"`
	Original uint32     `msgpack:"o,omitempty"`
	Unique   UniqueKind `msgpack:"u,omitempty"`
	Num      uint16     `msgpack:"n,omitempty"`
}

type snapshotPayload struct {
	Schema uint16          `msgpack:"schema"`
	Names  []snapshotEntry `msgpack:"names"`
}

// WriteSnapshot serializes every name in t, in id order.
func (t *Table) WriteSnapshot(ctx context.Context, w io.Writer) error {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "names.snapshot.write", trace.CurrentSpan(ctx).SpanID)

	t.mu.RLock()
	payload := snapshotPayload{
		Schema: snapshotSchema,
		Names:  make([]snapshotEntry, 0, len(t.byID)-1),
	}
	for _, n := range t.byID[1:] {
		switch n := n.(type) {
		case RawName:
			payload.Names = append(payload.Names, snapshotEntry{Kind: KindRaw, Text: n.Text})
		case UniqueName:
			payload.Names = append(payload.Names, snapshotEntry{Kind: KindUnique, Original: n.Original.id, Unique: n.Unique, Num: n.Num})
		case ConstantName:
			payload.Names = append(payload.Names, snapshotEntry{Kind: KindConstant, Original: n.Original.id})
		}
	}
	t.mu.RUnlock()

	err := msgpack.NewEncoder(w).Encode(&payload)
	span.WithExtra("names", strconv.Itoa(len(payload.Names))).End("")
	if err != nil {
		return fmt.Errorf("names: encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot builds a new table holding exactly the names of a snapshot,
// under the same ids they had when it was written.
func ReadSnapshot(ctx context.Context, r io.Reader) (*Table, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "names.snapshot.read", trace.CurrentSpan(ctx).SpanID)
	defer span.End("")

	var payload snapshotPayload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("names: decode snapshot: %w", err)
	}
	if payload.Schema != snapshotSchema {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSnapshotSchema, payload.Schema, snapshotSchema)
	}
	if len(payload.Names) < len(wellKnown)-1 {
		return nil, fmt.Errorf("names: snapshot holds %d names, fewer than the well-known set", len(payload.Names))
	}

	t := NewTable()
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, e := range payload.Names {
		id := i + 1
		var n Name
		switch e.Kind {
		case KindRaw:
			n = RawName{Text: e.Text}
		case KindUnique:
			n = UniqueName{Original: Ref{id: e.Original}, Unique: e.Unique, Num: e.Num}
		case KindConstant:
			n = ConstantName{Original: Ref{id: e.Original}}
		default:
			return nil, fmt.Errorf("names: snapshot entry %d has unknown kind %d", id, e.Kind)
		}
		if e.Kind != KindRaw && (e.Original == 0 || int(e.Original) >= id) {
			return nil, fmt.Errorf("names: snapshot entry %d wraps Ref(%d)", id, e.Original)
		}
		if u, ok := n.(UniqueName); ok && !u.Unique.valid() {
			return nil, fmt.Errorf("names: snapshot entry %d has unknown unique kind %d", id, u.Unique)
		}
		if id < len(wellKnown) {
			if n != wellKnown[id] {
				return nil, fmt.Errorf("names: snapshot entry %d does not match the well-known name", id)
			}
			continue
		}
		if _, dup := t.index[n]; dup {
			return nil, fmt.Errorf("names: snapshot entry %d duplicates an earlier name", id)
		}
		t.insertLocked(n)
		if u, ok := n.(UniqueName); ok && u.Num <= maxFreshNum {
			base := UniqueName{Original: u.Original, Unique: u.Unique}
			if t.counters[base] < u.Num {
				t.counters[base] = u.Num
			}
		}
	}
	return t, nil
}
