package types

import "typecore/internal/symbols"

// AliasType refers to the type of another symbol.
type AliasType struct {
	symbol symbols.SymbolID
}

// NewAlias returns an alias of sym.
func NewAlias(sym symbols.SymbolID) *AliasType {
	mustSymbol("alias", sym)
	return &AliasType{symbol: sym}
}

func (*AliasType) Kind() Kind                 { return KindAlias }
func (*AliasType) isType()                    {}
func (a *AliasType) Symbol() symbols.SymbolID { return a.symbol }

// TypeVar is an unresolved placeholder bound to sym.
type TypeVar struct {
	symbol symbols.SymbolID
}

// NewTypeVar returns a type variable bound to sym.
func NewTypeVar(sym symbols.SymbolID) *TypeVar {
	mustSymbol("type variable", sym)
	return &TypeVar{symbol: sym}
}

func (*TypeVar) Kind() Kind                 { return KindTypeVar }
func (*TypeVar) isType()                    {}
func (v *TypeVar) Symbol() symbols.SymbolID { return v.symbol }

// LambdaParam is a bound parameter of a type lambda.
type LambdaParam struct {
	definition symbols.SymbolID
}

// NewLambdaParam returns the parameter defined by def.
func NewLambdaParam(def symbols.SymbolID) *LambdaParam {
	mustSymbol("lambda parameter", def)
	return &LambdaParam{definition: def}
}

func (*LambdaParam) Kind() Kind                     { return KindLambdaParam }
func (*LambdaParam) isType()                        {}
func (p *LambdaParam) Definition() symbols.SymbolID { return p.definition }

// SelfTypeParam is the self-type parameter defined by a symbol.
type SelfTypeParam struct {
	definition symbols.SymbolID
}

// NewSelfTypeParam returns the self-type parameter defined by def.
func NewSelfTypeParam(def symbols.SymbolID) *SelfTypeParam {
	mustSymbol("self type parameter", def)
	return &SelfTypeParam{definition: def}
}

func (*SelfTypeParam) Kind() Kind                     { return KindSelfTypeParam }
func (*SelfTypeParam) isType()                        {}
func (p *SelfTypeParam) Definition() symbols.SymbolID { return p.definition }

func mustSymbol(what string, sym symbols.SymbolID) {
	if !sym.IsValid() {
		panic("types: " + what + " without symbol")
	}
}
