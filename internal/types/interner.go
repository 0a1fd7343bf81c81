package types

import (
	"fmt"
	"strconv"
	"sync"

	"fortio.org/safecast"

	"typecore/internal/symbols"
)

// Interner hash-conses type trees: structurally equal trees intern to the
// same node, so equal subtrees are stored once and compare by identity.
type Interner struct {
	mu    sync.Mutex
	nodes []Type            // id -> canonical node
	index map[string]uint32 // structural key -> id
	ids   map[Type]uint32   // canonical node -> id; other inputs go through index
}

// NewInterner constructs an interner seeded with the builtin class types, so
// they hold the lowest ids.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[string]uint32, 64),
		ids:   make(map[Type]uint32, 64),
	}
	b := symbols.Builtin
	for _, sym := range []symbols.SymbolID{
		b.Object, b.NilClass, b.TrueClass, b.FalseClass, b.Integer, b.Float, b.String, b.Symbol,
	} {
		in.Intern(NewClass(sym))
	}
	return in
}

// Len returns the number of distinct trees interned so far.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.nodes)
}

// Intern returns the canonical node structurally equal to t.
func (in *Interner) Intern(t Type) Type {
	in.mu.Lock()
	defer in.mu.Unlock()
	_, canon := in.internLocked(t)
	return canon
}

func (in *Interner) internLocked(t Type) (uint32, Type) {
	if t == nil {
		panic("types: intern nil type")
	}
	if id, ok := in.ids[t]; ok {
		return id, in.nodes[id]
	}

	key := []byte{byte(t.Kind()), ':'}
	var build func() Type
	switch t := t.(type) {
	case *ClassType:
		key = appendID(key, uint64(t.symbol))
		build = func() Type { return t }
	case *LiteralType:
		_, u := in.internLocked(t.underlying)
		key = appendID(key, uint64(u.(*ClassType).symbol))
		key = appendID(key, uint64(t.value))
		build = func() Type { return &LiteralType{underlying: u.(*ClassType), value: t.value, name: t.name} }
	case *TupleType:
		var elems []Type
		key, elems = in.appendList(key, t.elems)
		build = func() Type { return &TupleType{elems: elems} }
	case *ShapeType:
		keys := make([]*LiteralType, len(t.keys))
		for i, k := range t.keys {
			var id uint32
			var c Type
			id, c = in.internLocked(k)
			keys[i] = c.(*LiteralType)
			key = appendID(key, uint64(id))
		}
		key = append(key, '|')
		var values []Type
		key, values = in.appendList(key, t.values)
		build = func() Type { return &ShapeType{keys: keys, values: values} }
	case *AliasType:
		key = appendID(key, uint64(t.symbol))
		build = func() Type { return t }
	case *AndType:
		var pair []Type
		key, pair = in.appendList(key, []Type{t.left, t.right})
		build = func() Type { return &AndType{left: pair[0], right: pair[1]} }
	case *OrType:
		var pair []Type
		key, pair = in.appendList(key, []Type{t.left, t.right})
		build = func() Type { return &OrType{left: pair[0], right: pair[1]} }
	case *AppliedType:
		key = appendID(key, uint64(t.class))
		key = append(key, '|')
		var args []Type
		key, args = in.appendList(key, t.args)
		build = func() Type { return &AppliedType{class: t.class, args: args} }
	case *TypeVar:
		key = appendID(key, uint64(t.symbol))
		build = func() Type { return t }
	case *LambdaParam:
		key = appendID(key, uint64(t.definition))
		build = func() Type { return t }
	case *SelfTypeParam:
		key = appendID(key, uint64(t.definition))
		build = func() Type { return t }
	case *MagicType:
		id, u := in.internLocked(t.underlying)
		key = appendID(key, uint64(id))
		build = func() Type { return &MagicType{underlying: u} }
	default:
		panic(fmt.Errorf("types: Intern: unhandled variant %T", t))
	}

	if id, ok := in.index[string(key)]; ok {
		return id, in.nodes[id]
	}
	canon := build()
	id, err := safecast.Conv[uint32](len(in.nodes))
	if err != nil {
		panic(fmt.Errorf("types: interner overflow: %w", err))
	}
	in.nodes = append(in.nodes, canon)
	in.index[string(key)] = id
	in.ids[canon] = id
	return id, canon
}

func (in *Interner) appendList(key []byte, list []Type) ([]byte, []Type) {
	out := make([]Type, len(list))
	for i, e := range list {
		id, c := in.internLocked(e)
		out[i] = c
		key = appendID(key, uint64(id))
	}
	return key, out
}

func appendID(key []byte, v uint64) []byte {
	key = strconv.AppendUint(key, v, 36)
	return append(key, ',')
}
