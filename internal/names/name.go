package names

import "fmt"

// Kind tags the variant of a Name.
type Kind uint8

const (
	KindRaw Kind = iota + 1
	KindUnique
	KindConstant
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindUnique:
		return "unique"
	case KindConstant:
		return "constant"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// UniqueKind records which pass minted a unique name.
type UniqueKind uint8

const (
	UniqueParser UniqueKind = iota
	UniqueDesugar
	UniqueNamer
	UniqueSingleton
	UniqueOverload
	UniqueTypeVarName
)

func (k UniqueKind) String() string {
	switch k {
	case UniqueParser:
		return "P"
	case UniqueDesugar:
		return "D"
	case UniqueNamer:
		return "N"
	case UniqueSingleton:
		return "S"
	case UniqueOverload:
		return "O"
	case UniqueTypeVarName:
		return "T"
	default:
		return fmt.Sprintf("UniqueKind(%d)", k)
	}
}

func (k UniqueKind) valid() bool { return k <= UniqueTypeVarName }

// Name is the stored record behind a Ref. The concrete type is one of
// RawName, UniqueName or ConstantName; all of them are comparable and serve
// directly as interning keys.
type Name interface {
	Kind() Kind
	isName()
}

// RawName is verbatim source text.
type RawName struct {
	Text string
}

// UniqueName is a name derived from Original and disambiguated by Num.
type UniqueName struct {
	Original Ref
	Unique   UniqueKind
	Num      uint16
}

// ConstantName marks Original as used in a constant-lookup context.
type ConstantName struct {
	Original Ref
}

func (RawName) Kind() Kind      { return KindRaw }
func (UniqueName) Kind() Kind   { return KindUnique }
func (ConstantName) Kind() Kind { return KindConstant }

func (RawName) isName()      {}
func (UniqueName) isName()   {}
func (ConstantName) isName() {}
