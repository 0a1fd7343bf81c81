package fixture

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"typecore/internal/names"
	"typecore/internal/symbols"
	"typecore/internal/types"
)

// SyntaxError is a malformed type expression.
type SyntaxError struct {
	Offset int // byte offset into the expression
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokFloat
	tokString
	tokSymbol
	tokLParen
	tokRParen
	tokComma
	tokArrow
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case r == ',':
			toks = append(toks, token{tokComma, ",", i})
			i++
		case strings.HasPrefix(src[i:], "=>"):
			toks = append(toks, token{tokArrow, "=>", i})
			i += 2
		case r == '"':
			end := strings.IndexByte(src[i+1:], '"')
			if end < 0 {
				return nil, &SyntaxError{i, "unterminated string"}
			}
			toks = append(toks, token{tokString, src[i+1 : i+1+end], i})
			i += end + 2
		case r == ':' && !strings.HasPrefix(src[i:], "::"):
			j := scanIdent(src, i+1)
			if j == i+1 {
				return nil, &SyntaxError{i, "expected symbol name after ':'"}
			}
			toks = append(toks, token{tokSymbol, src[i+1 : j], i})
			i = j
		case r == '-' || unicode.IsDigit(r):
			j := i + 1
			for j < len(src) && (src[j] >= '0' && src[j] <= '9' || strings.IndexByte(".eE+-_", src[j]) >= 0) {
				if (src[j] == '+' || src[j] == '-') && src[j-1] != 'e' && src[j-1] != 'E' {
					break
				}
				j++
			}
			kind := tokInt
			if strings.ContainsAny(src[i:j], ".eE") {
				kind = tokFloat
			}
			toks = append(toks, token{kind, src[i:j], i})
			i = j
		case isIdentRune(r):
			j := i
			for {
				j = scanIdent(src, j)
				if !strings.HasPrefix(src[j:], "::") {
					break
				}
				j += 2
			}
			toks = append(toks, token{tokIdent, src[i:j], i})
			i = j
		default:
			return nil, &SyntaxError{i, fmt.Sprintf("unexpected %q", r)}
		}
	}
	return append(toks, token{tokEOF, "", len(src)}), nil
}

func scanIdent(src string, i int) int {
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if !isIdentRune(r) {
			break
		}
		i += size
	}
	return i
}

type parser struct {
	s    *Session
	toks []token
	pos  int
}

// ParseExpr parses a type expression and interns the result in s.Types.
func (s *Session) ParseExpr(src string) (types.Type, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{s: s, toks: toks}
	t, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &SyntaxError{tok.pos, fmt.Sprintf("unexpected %q after expression", tok.text)}
	}
	return s.Types.Intern(t), nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	tok := p.next()
	if tok.kind != kind {
		return tok, &SyntaxError{tok.pos, "expected " + what}
	}
	return tok, nil
}

func (p *parser) expr() (types.Type, error) {
	tok := p.peek()
	switch tok.kind {
	case tokInt, tokFloat, tokString, tokSymbol:
		return p.literal()
	case tokIdent:
		p.next()
		switch tok.text {
		case "true":
			return types.NewBoolLiteral(true), nil
		case "false":
			return types.NewBoolLiteral(false), nil
		}
		if p.peek().kind == tokLParen {
			return p.call(tok)
		}
		sym, err := p.s.resolvePath(tok.text)
		if err != nil {
			return nil, &SyntaxError{tok.pos, err.Error()}
		}
		if kind := p.s.Symbols.Get(sym).Kind; kind != symbols.SymbolClass && kind != symbols.SymbolModule {
			return nil, &SyntaxError{tok.pos, fmt.Sprintf("%s is a %s, not a class", tok.text, kind)}
		}
		return types.NewClass(sym), nil
	default:
		return nil, &SyntaxError{tok.pos, "expected type expression"}
	}
}

func (p *parser) literal() (*types.LiteralType, error) {
	tok := p.next()
	switch tok.kind {
	case tokInt:
		v, err := strconv.ParseInt(strings.ReplaceAll(tok.text, "_", ""), 10, 64)
		if err != nil {
			return nil, &SyntaxError{tok.pos, fmt.Sprintf("bad integer %q", tok.text)}
		}
		return types.NewIntegerLiteral(v), nil
	case tokFloat:
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok.text, "_", ""), 64)
		if err != nil {
			return nil, &SyntaxError{tok.pos, fmt.Sprintf("bad float %q", tok.text)}
		}
		return types.NewFloatLiteral(v), nil
	case tokString:
		return types.NewStringLiteral(p.s.Names.InternRaw(tok.text)), nil
	case tokSymbol:
		return types.NewSymbolLiteral(p.s.Names.InternRaw(norm.NFC.String(tok.text))), nil
	case tokIdent:
		switch tok.text {
		case "true":
			return types.NewBoolLiteral(true), nil
		case "false":
			return types.NewBoolLiteral(false), nil
		}
	}
	return nil, &SyntaxError{tok.pos, "expected literal"}
}

func (p *parser) call(head token) (types.Type, error) {
	p.next() // (
	switch head.text {
	case "tuple":
		args, err := p.list()
		if err != nil {
			return nil, err
		}
		return types.NewTuple(args...), nil
	case "shape":
		return p.shape()
	case "or", "and":
		args, err := p.list()
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, &SyntaxError{head.pos, fmt.Sprintf("%s takes 2 arguments, got %d", head.text, len(args))}
		}
		if head.text == "or" {
			return types.NewOr(args[0], args[1]), nil
		}
		return types.NewAnd(args[0], args[1]), nil
	case "magic":
		args, err := p.list()
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, &SyntaxError{head.pos, "magic takes 1 argument"}
		}
		return types.NewMagic(args[0]), nil
	case "applied":
		class, err := p.symbolArg()
		if err != nil {
			return nil, err
		}
		var args []types.Type
		if p.peek().kind == tokComma {
			p.next()
			if args, err = p.list(); err != nil {
				return nil, err
			}
		} else if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		if want := len(p.s.Symbols.TypeMembers(class)); want != len(args) {
			return nil, &SyntaxError{head.pos, fmt.Sprintf("%s takes %d type arguments, got %d", p.s.Symbols.FullName(class), want, len(args))}
		}
		return types.NewApplied(class, args...), nil
	case "alias", "tvar", "lambda", "selftype":
		sym, err := p.symbolArg()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		switch head.text {
		case "alias":
			return types.NewAlias(sym), nil
		case "tvar":
			return types.NewTypeVar(sym), nil
		case "lambda":
			return types.NewLambdaParam(sym), nil
		default:
			return types.NewSelfTypeParam(sym), nil
		}
	default:
		return nil, &SyntaxError{head.pos, fmt.Sprintf("unknown constructor %q", head.text)}
	}
}

// list parses `e, e, ...)` after an opening parenthesis.
func (p *parser) list() ([]types.Type, error) {
	var out []types.Type
	if p.peek().kind == tokRParen {
		p.next()
		return out, nil
	}
	for {
		t, err := p.expr()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		tok := p.next()
		switch tok.kind {
		case tokComma:
		case tokRParen:
			return out, nil
		default:
			return nil, &SyntaxError{tok.pos, "expected ',' or ')'"}
		}
	}
}

func (p *parser) shape() (types.Type, error) {
	var keys []*types.LiteralType
	var values []types.Type
	if p.peek().kind == tokRParen {
		p.next()
		return types.NewShape(nil, nil), nil
	}
	for {
		key, err := p.literal()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokArrow, "'=>'"); err != nil {
			return nil, err
		}
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		values = append(values, value)
		tok := p.next()
		switch tok.kind {
		case tokComma:
		case tokRParen:
			return types.NewShape(keys, values), nil
		default:
			return nil, &SyntaxError{tok.pos, "expected ',' or ')'"}
		}
	}
}

func (p *parser) symbolArg() (symbols.SymbolID, error) {
	tok, err := p.expect(tokIdent, "symbol path")
	if err != nil {
		return symbols.NoSymbolID, err
	}
	sym, err := p.s.resolvePath(tok.text)
	if err != nil {
		return symbols.NoSymbolID, &SyntaxError{tok.pos, err.Error()}
	}
	return sym, nil
}

// resolvePath finds the symbol named by a `A::B::C` path from the root.
func (s *Session) resolvePath(path string) (symbols.SymbolID, error) {
	cur := symbols.Builtin.Root
	for _, part := range strings.Split(strings.TrimSpace(path), "::") {
		name, err := identifier(part)
		if err != nil {
			return symbols.NoSymbolID, fmt.Errorf("bad path %q: %w", path, err)
		}
		next, ok := s.Symbols.Member(cur, s.constant(name))
		if !ok {
			return symbols.NoSymbolID, fmt.Errorf("unknown symbol %q", path)
		}
		cur = next
	}
	return cur, nil
}

func (s *Session) constant(name string) names.Ref {
	return s.Names.InternConstant(s.Names.InternRaw(name))
}
