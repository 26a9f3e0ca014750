package universe

import (
	"strconv"

	"github.com/flint-project/flint/cfg"
)

// findEntry returns the first entry named key within sec, case-sensitively
// matching cfg's own lowercasing of identifiers during parse.
func findEntry(sec cfg.Section, key string) (cfg.Entry, bool) {
	for _, e := range sec.Entries {
		if e.Name == key {
			return e, true
		}
	}
	return cfg.Entry{}, false
}

func entryString(sec cfg.Section, key string) (string, bool) {
	e, ok := findEntry(sec, key)
	if !ok || len(e.Values) == 0 {
		return "", false
	}
	return valueString(e.Values[0]), true
}

func valueString(v cfg.Value) string {
	switch v.Kind {
	case cfg.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case cfg.KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case cfg.KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return v.Str
	}
}

func entryInt64(sec cfg.Section, key string, def int64) int64 {
	e, ok := findEntry(sec, key)
	if !ok || len(e.Values) == 0 {
		return def
	}
	v := e.Values[0]
	switch v.Kind {
	case cfg.KindInt:
		return v.Int
	case cfg.KindFloat:
		return int64(v.Float)
	default:
		return def
	}
}

func entryFloat64(sec cfg.Section, key string, def float64) float64 {
	e, ok := findEntry(sec, key)
	if !ok || len(e.Values) == 0 {
		return def
	}
	v := e.Values[0]
	switch v.Kind {
	case cfg.KindFloat:
		return v.Float
	case cfg.KindInt:
		return float64(v.Int)
	default:
		return def
	}
}

func entryBool(sec cfg.Section, key string, def bool) bool {
	e, ok := findEntry(sec, key)
	if !ok || len(e.Values) == 0 {
		return def
	}
	v := e.Values[0]
	if v.Kind == cfg.KindBool {
		return v.Bool
	}
	return def
}

// entryVec3 reads a three-float comma list entry, e.g. "pos = 1, 2, 3".
func entryVec3(sec cfg.Section, key string) [3]float64 {
	var out [3]float64
	e, ok := findEntry(sec, key)
	if !ok {
		return out
	}
	for i := 0; i < 3 && i < len(e.Values); i++ {
		v := e.Values[i]
		if v.Kind == cfg.KindFloat {
			out[i] = v.Float
		} else if v.Kind == cfg.KindInt {
			out[i] = float64(v.Int)
		}
	}
	return out
}

