package cfg

import "github.com/flint-project/flint/binfmt/bini"

// fromBINI adapts a decoded BINI file into the same Section stream the
// textual parser produces.
func fromBINI(f *bini.File) []Section {
	sections := make([]Section, len(f.Sections))
	for i, s := range f.Sections {
		sections[i] = Section{
			Name:    s.Name,
			Entries: make([]Entry, len(s.Entries)),
		}
		for j, e := range s.Entries {
			entry := Entry{Name: e.Name, Values: make([]Value, len(e.Values))}
			for k, v := range e.Values {
				entry.Values[k] = fromBINIValue(v)
			}
			sections[i].Entries[j] = entry
		}
	}
	return sections
}

func fromBINIValue(v bini.Value) Value {
	switch v.Kind {
	case bini.KindInt:
		return Value{Kind: KindInt, Int: int64(v.Int)}
	case bini.KindFloat:
		return Value{Kind: KindFloat, Float: float64(v.Float)}
	default:
		return Value{Kind: KindString, Str: v.Str}
	}
}
