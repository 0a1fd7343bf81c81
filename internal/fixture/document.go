package fixture

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"

	"typecore/internal/symbols"
	"typecore/internal/trace"
	"typecore/internal/types"
)

type document struct {
	Classes []classDecl `toml:"class"`
	Aliases []aliasDecl `toml:"alias"`
	Types   []typeDecl  `toml:"type"`
}

type classDecl struct {
	Name        string   `toml:"name"`
	Owner       string   `toml:"owner"`
	TypeMembers []string `toml:"type_members"`
}

type aliasDecl struct {
	Name   string `toml:"name"`
	Target string `toml:"target"`
}

type typeDecl struct {
	Name string `toml:"name"`
	Expr string `toml:"expr"`
}

// Decl is one named type expression of a fixture.
type Decl struct {
	Name string
	Expr string
	Type types.Type
}

// File is a loaded fixture together with the session it was built in.
type File struct {
	Path    string
	Session *Session
	Decls   []Decl
}

// Load reads and builds the fixture at path in a new session.
func Load(ctx context.Context, path string) (*File, error) {
	var doc document
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return build(ctx, path, &doc, meta)
}

// Parse builds a fixture from in-memory TOML; name labels errors.
func Parse(ctx context.Context, name, data string) (*File, error) {
	var doc document
	meta, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	return build(ctx, name, &doc, meta)
}

func build(ctx context.Context, path string, doc *document, meta toml.MetaData) (*File, error) {
	ctx, span := trace.Start(ctx, trace.ScopeFile, "fixture:"+path)
	defer span.End("")

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	s := NewSession()
	for i, c := range doc.Classes {
		if err := s.declareClass(c); err != nil {
			return nil, fmt.Errorf("%s: class #%d: %w", path, i+1, err)
		}
	}
	for i, a := range doc.Aliases {
		if err := s.declareAlias(a); err != nil {
			return nil, fmt.Errorf("%s: alias #%d: %w", path, i+1, err)
		}
	}

	f := &File{Path: path, Session: s, Decls: make([]Decl, 0, len(doc.Types))}
	seen := make(map[string]bool, len(doc.Types))
	tracer := trace.FromContext(ctx)
	for i, d := range doc.Types {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: type #%d: missing name", path, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%s: type %q declared twice", path, name)
		}
		seen[name] = true
		typ, err := s.ParseExpr(d.Expr)
		if err != nil {
			return nil, fmt.Errorf("%s: type %q: %w", path, name, err)
		}
		trace.Point(tracer, trace.ScopeNode, "decl:"+name, types.TypeName(typ), trace.CurrentSpan(ctx).SpanID)
		f.Decls = append(f.Decls, Decl{Name: name, Expr: d.Expr, Type: typ})
	}
	span.WithExtra("classes", strconv.Itoa(len(doc.Classes))).WithExtra("types", strconv.Itoa(len(f.Decls)))
	return f, nil
}

func (s *Session) declareClass(c classDecl) error {
	name, err := identifier(c.Name)
	if err != nil {
		return err
	}
	owner := symbols.Builtin.Root
	if strings.TrimSpace(c.Owner) != "" {
		if owner, err = s.resolvePath(c.Owner); err != nil {
			return err
		}
	}
	if err := s.checkKind(owner, name, symbols.SymbolClass); err != nil {
		return err
	}
	class := s.Symbols.EnterClass(owner, s.constant(name))
	for _, m := range c.TypeMembers {
		member, err := identifier(m)
		if err != nil {
			return fmt.Errorf("type member of %s: %w", name, err)
		}
		if err := s.checkKind(class, member, symbols.SymbolTypeMember); err != nil {
			return err
		}
		s.Symbols.EnterTypeMember(class, s.constant(member))
	}
	return nil
}

func (s *Session) declareAlias(a aliasDecl) error {
	name, err := identifier(a.Name)
	if err != nil {
		return err
	}
	target, err := s.resolvePath(a.Target)
	if err != nil {
		return err
	}
	if err := s.checkKind(symbols.Builtin.Root, name, symbols.SymbolAlias); err != nil {
		return err
	}
	s.Symbols.EnterAlias(symbols.Builtin.Root, s.constant(name), target)
	return nil
}

// checkKind reports an error when owner already has a member called name
// of a different kind.
func (s *Session) checkKind(owner symbols.SymbolID, name string, kind symbols.SymbolKind) error {
	id, ok := s.Symbols.Member(owner, s.constant(name))
	if !ok {
		return nil
	}
	if got := s.Symbols.Get(id).Kind; got != kind {
		return fmt.Errorf("%s is already declared as a %s", s.Symbols.FullName(id), got)
	}
	if kind == symbols.SymbolAlias {
		return fmt.Errorf("alias %s declared twice", s.Symbols.FullName(id))
	}
	return nil
}

// identifier validates and NFC-normalizes a declared identifier.
func identifier(raw string) (string, error) {
	name := norm.NFC.String(strings.TrimSpace(raw))
	if name == "" {
		return "", fmt.Errorf("missing name")
	}
	if strings.Contains(name, "::") {
		return "", fmt.Errorf("name %q must not contain '::'", name)
	}
	for _, r := range name {
		if !isIdentRune(r) {
			return "", fmt.Errorf("name %q contains %q", name, r)
		}
	}
	return name, nil
}
