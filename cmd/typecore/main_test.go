package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"typecore/internal/names"
)

func writeFixture(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestLoadFixturesKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.toml", "[[type]]\nname = \"one\"\nexpr = \"Integer\"\n")
	b := writeFixture(t, dir, "b.toml", "[[type]]\nname = \"two\"\nexpr = \"tuple(1, :x)\"\n")

	files, err := loadFixtures(context.Background(), []string{b, a}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if files[0].Path != b || files[1].Path != a {
		t.Fatalf("files out of order: %s, %s", files[0].Path, files[1].Path)
	}
	if files[0].Session == files[1].Session {
		t.Fatalf("fixtures share a session")
	}

	rows := renderFiles(files, true)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Show != `[1, :"x"]` || rows[1].Show != "Integer" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if !strings.Contains(rows[0].Debug, "TupleType") {
		t.Fatalf("debug form missing: %q", rows[0].Debug)
	}
}

func TestLoadFixturesReportsErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, dir, "good.toml", "")
	bad := writeFixture(t, dir, "bad.toml", "[[type]]\nname = \"x\"\nexpr = \"Nope\"\n")
	_, err := loadFixtures(context.Background(), []string{good, bad}, 0)
	if err == nil || !strings.Contains(err.Error(), "unknown symbol") {
		t.Fatalf("err = %v", err)
	}
}

func TestPrintRenderPretty(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	printRenderPretty(&buf, []renderedType{
		{File: "a.toml", Name: "x", Show: "Integer"},
		{File: "a.toml", Name: "longer", Show: "String"},
		{File: "b.toml", Name: "y", Show: "Float"},
	}, false)
	want := "a.toml\n  x       Integer\n  longer  String\n\nb.toml\n  y       Float\n"
	if buf.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestNameRowsAndListing(t *testing.T) {
	noColor(t)
	tab := names.NewTable()
	foo := tab.InternRaw("foo")
	tab.InternConstant(foo)

	rows := nameRows(tab, false)
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[1].Kind != "constant" || rows[1].Debug != "<C <U foo>>" || rows[1].Show != "foo" {
		t.Fatalf("constant row = %+v", rows[1])
	}
	if all := nameRows(tab, true); len(all) != tab.Len()-1 {
		t.Fatalf("all rows = %d, want %d", len(all), tab.Len()-1)
	}

	var buf bytes.Buffer
	printNamesPretty(&buf, rows)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("listing:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[0], "id") || !strings.Contains(lines[2], "<C <U foo>>") {
		t.Fatalf("listing:\n%s", buf.String())
	}
}

func TestSnapshotRoundTripThroughCommand(t *testing.T) {
	dir := t.TempDir()
	tab := names.NewTable()
	tab.InternConstant(tab.InternRaw("Box"))
	path := filepath.Join(dir, "names.msgpack")
	if err := saveSnapshot(context.Background(), tab, path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	back, err := names.ReadSnapshot(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != tab.Len() {
		t.Fatalf("snapshot has %d names, want %d", back.Len(), tab.Len())
	}
}
