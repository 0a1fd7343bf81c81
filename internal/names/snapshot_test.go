package names

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"typecore/internal/trace"
)

func TestSnapshotRoundTrip(t *testing.T) {
	tab := NewTable()
	foo := tab.InternRaw("foo")
	cfoo := tab.InternConstant(foo)
	eq := tab.WithEq(foo)
	fresh := tab.FreshUnique(UniqueNamer, foo)

	var buf bytes.Buffer
	if err := tab.WriteSnapshot(context.Background(), &buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	restored, err := ReadSnapshot(context.Background(), &buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if restored.Len() != tab.Len() {
		t.Fatalf("Len = %d, want %d", restored.Len(), tab.Len())
	}
	for _, r := range []Ref{foo, cfoo, eq, fresh} {
		if got, want := restored.Debug(Ref{id: r.ID()}), tab.Debug(r); got != want {
			t.Errorf("Ref(%d): restored %q, original %q", r.ID(), got, want)
		}
	}
	if got := restored.InternRaw("foo").ID(); got != foo.ID() {
		t.Fatalf("restored table re-interned foo at %d, want %d", got, foo.ID())
	}
	next := restored.FreshUnique(UniqueNamer, restored.InternRaw("foo"))
	if next.ID() == fresh.ID() {
		t.Fatalf("restored table reissued fresh name %d", fresh.ID())
	}
	if err := restored.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestSnapshotSchemaMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(&snapshotPayload{Schema: snapshotSchema + 1}); err != nil {
		t.Fatal(err)
	}
	_, err := ReadSnapshot(context.Background(), &buf)
	if !errors.Is(err, ErrSnapshotSchema) {
		t.Fatalf("err = %v, want ErrSnapshotSchema", err)
	}
}

func TestSnapshotRejectsForwardReference(t *testing.T) {
	tab := NewTable()
	var buf bytes.Buffer
	if err := tab.WriteSnapshot(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	var payload snapshotPayload
	if err := msgpack.NewDecoder(&buf).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	payload.Names = append(payload.Names, snapshotEntry{Kind: KindConstant, Original: 5000})
	buf.Reset()
	if err := msgpack.NewEncoder(&buf).Encode(&payload); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSnapshot(context.Background(), &buf); err == nil {
		t.Fatalf("expected error for dangling original")
	}
}

func TestSnapshotEmitsTraceSpans(t *testing.T) {
	var out bytes.Buffer
	tracer := trace.NewStreamTracer(&out, trace.LevelPhase, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tracer)
	if err := NewTable().WriteSnapshot(ctx, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out.Bytes(), []byte("names.snapshot.write")) {
		t.Fatalf("missing snapshot span in trace output:\n%s", out.String())
	}
}
