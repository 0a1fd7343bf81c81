// Package testkit holds consistency checks shared by package tests.
package testkit

import (
	"errors"
	"fmt"

	"typecore/internal/names"
	"typecore/internal/symbols"
	"typecore/internal/types"
)

// CheckInvariants validates both tables and then checks that every type in ts
// only refers to symbols of st and names of nt:
//  1. class, alias and parameter symbols exist in st
//  2. string and symbol literals carry a name that resolves in nt
//  3. applied types have one argument per declared type member
func CheckInvariants(nt *names.Table, st *symbols.Table, ts ...types.Type) error {
	if nt == nil || st == nil {
		return fmt.Errorf("nil names or symbols table")
	}
	if err := nt.Validate(); err != nil {
		return err
	}
	if err := st.Validate(); err != nil {
		return err
	}
	var errs []error
	for i, t := range ts {
		if t == nil {
			errs = append(errs, fmt.Errorf("type #%d is nil", i))
			continue
		}
		types.Walk(t, func(node types.Type) bool {
			if err := checkNode(nt, st, node); err != nil {
				errs = append(errs, fmt.Errorf("type #%d: %w", i, err))
			}
			return true
		})
	}
	return errors.Join(errs...)
}

func checkNode(nt *names.Table, st *symbols.Table, node types.Type) error {
	switch n := node.(type) {
	case *types.ClassType:
		return checkSymbol(st, "class", n.Symbol())
	case *types.AliasType:
		return checkSymbol(st, "alias", n.Symbol())
	case *types.TypeVar:
		return checkSymbol(st, "type variable", n.Symbol())
	case *types.LambdaParam:
		return checkSymbol(st, "lambda param", n.Definition())
	case *types.SelfTypeParam:
		return checkSymbol(st, "self type param", n.Definition())
	case *types.LiteralType:
		if ref := n.Name(); ref.Exists() {
			if _, ok := nt.Lookup(ref); !ok {
				return fmt.Errorf("literal name %v not in table", ref)
			}
		}
	case *types.AppliedType:
		if err := checkSymbol(st, "applied class", n.Class()); err != nil {
			return err
		}
		if want := len(st.TypeMembers(n.Class())); want != n.Len() {
			return fmt.Errorf("%s applied to %d arguments, declares %d type members", st.FullName(n.Class()), n.Len(), want)
		}
	}
	return nil
}

func checkSymbol(st *symbols.Table, what string, id symbols.SymbolID) error {
	if !id.IsValid() || st.Get(id) == nil {
		return fmt.Errorf("%s symbol %d not in table", what, id)
	}
	return nil
}
