package names

import "strconv"

// Ref is a handle to an interned name. Two refs from the same Table are equal
// exactly when they denote the same logical name.
type Ref struct {
	id    uint32
	owner ownerTag
}

// NoName is the reserved "no name" handle.
var NoName = Ref{}

// Exists reports whether the ref denotes an interned name.
func (r Ref) Exists() bool { return r.id != 0 }

// ID returns the raw integer value of the handle.
func (r Ref) ID() uint32 { return r.id }

// IsWellKnown reports whether the ref is one of the names seeded into every table.
func (r Ref) IsWellKnown() bool { return r.id != 0 && int(r.id) < len(wellKnown) }

func (r Ref) String() string {
	return "Ref(" + strconv.FormatUint(uint64(r.id), 10) + ")"
}
