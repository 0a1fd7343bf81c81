package names

// Well-known names occupy the same ids in every Table.
var (
	Initialize     = Ref{id: 1}
	New            = Ref{id: 2}
	Call           = Ref{id: 3}
	SquareBrackets = Ref{id: 4}
	Nil            = Ref{id: 5}
	Self           = Ref{id: 6}
	Root           = Ref{id: 7}

	BasicObject = Ref{id: 8}
	Object      = Ref{id: 9}
	NilClass    = Ref{id: 10}
	TrueClass   = Ref{id: 11}
	FalseClass  = Ref{id: 12}
	Integer     = Ref{id: 13}
	Float       = Ref{id: 14}
	String      = Ref{id: 15}
	Symbol      = Ref{id: 16}
	Array       = Ref{id: 17}
	Hash        = Ref{id: 18}

	Elem    = Ref{id: 19}
	Key     = Ref{id: 20}
	Value   = Ref{id: 21}
	Default = Ref{id: 22}

	ConstBasicObject = Ref{id: 23}
	ConstObject      = Ref{id: 24}
	ConstNilClass    = Ref{id: 25}
	ConstTrueClass   = Ref{id: 26}
	ConstFalseClass  = Ref{id: 27}
	ConstInteger     = Ref{id: 28}
	ConstFloat       = Ref{id: 29}
	ConstString      = Ref{id: 30}
	ConstSymbol      = Ref{id: 31}
	ConstArray       = Ref{id: 32}
	ConstHash        = Ref{id: 33}
	ConstElem        = Ref{id: 34}
	ConstKey         = Ref{id: 35}
	ConstValue       = Ref{id: 36}
	ConstDefault     = Ref{id: 37}
)

// wellKnown lists the seeded names by id; index 0 is NoName.
var wellKnown = []Name{
	nil,
	RawName{Text: "initialize"},
	RawName{Text: "new"},
	RawName{Text: "call"},
	RawName{Text: "[]"},
	RawName{Text: "nil"},
	RawName{Text: "self"},
	RawName{Text: "<root>"},

	RawName{Text: "BasicObject"},
	RawName{Text: "Object"},
	RawName{Text: "NilClass"},
	RawName{Text: "TrueClass"},
	RawName{Text: "FalseClass"},
	RawName{Text: "Integer"},
	RawName{Text: "Float"},
	RawName{Text: "String"},
	RawName{Text: "Symbol"},
	RawName{Text: "Array"},
	RawName{Text: "Hash"},

	RawName{Text: "Elem"},
	RawName{Text: "K"},
	RawName{Text: "V"},
	RawName{Text: "Default"},

	ConstantName{Original: BasicObject},
	ConstantName{Original: Object},
	ConstantName{Original: NilClass},
	ConstantName{Original: TrueClass},
	ConstantName{Original: FalseClass},
	ConstantName{Original: Integer},
	ConstantName{Original: Float},
	ConstantName{Original: String},
	ConstantName{Original: Symbol},
	ConstantName{Original: Array},
	ConstantName{Original: Hash},
	ConstantName{Original: Elem},
	ConstantName{Original: Key},
	ConstantName{Original: Value},
	ConstantName{Original: Default},
}
