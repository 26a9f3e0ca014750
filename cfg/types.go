// Package cfg parses the game's configuration grammar — the shared
// Section/Entry/Value tiers produced by both the BINI binary container and
// the game's own lenient textual dialect — and unifies the two behind one
// load entry point.
package cfg

// ValueKind discriminates a decoded Value.
type ValueKind int

// Possible ValueKind values, in the precedence order the textual parser
// tries them.
const (
	KindInt ValueKind = iota
	KindFloat
	KindBool
	KindString
)

// Value is a single typed token from an entry's comma-separated value list.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Bool  bool
	Str   string
}

// Entry is a lowercased key paired with an ordered list of values.
type Entry struct {
	Name   string
	Values []Value
}

// Section is a named, ordered list of entries. A config file is a sequence
// of sections; both decoders (BINI and textual) produce the same shape.
type Section struct {
	Name    string
	Entries []Entry
}
