//go:build typecoredebug

package names

import (
	"fmt"
	"sync/atomic"
)

// ownerTag identifies the Table that minted a Ref. Zero marks well-known refs,
// which are valid against every table.
type ownerTag uint32

var lastOwner atomic.Uint32

func newOwnerTag() ownerTag { return ownerTag(lastOwner.Add(1)) }

func (t *Table) checkOwner(r Ref) {
	if r.owner != 0 && r.owner != t.owner {
		panic(fmt.Errorf("names: %v belongs to table %d, used with table %d", r, r.owner, t.owner))
	}
}
