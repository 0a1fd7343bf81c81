// Package fixture loads TOML documents that declare classes and named type
// expressions, building them into a fresh session of names, symbols and types.
package fixture

import (
	"typecore/internal/names"
	"typecore/internal/symbols"
	"typecore/internal/types"
)

// Session bundles the tables of one compilation session.
type Session struct {
	Names   *names.Table
	Symbols *symbols.Table
	Types   *types.Interner
	Printer *types.Printer
}

// NewSession returns a session seeded with the builtin names and symbols.
func NewSession() *Session {
	nt := names.NewTable()
	st := symbols.NewTable(symbols.Hints{}, nt)
	return &Session{
		Names:   nt,
		Symbols: st,
		Types:   types.NewInterner(),
		Printer: types.NewPrinter(nt, st),
	}
}
