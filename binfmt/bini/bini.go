// Package bini decodes the BINI container, the compressed tabular
// representation of a configuration file used by the game's data tree.
//
// Layout: a 4-byte magic "BINI", a little-endian uint32 version, a
// little-endian uint32 offset to the string pool, then a sequence of
// sections running up to the string pool. Each section is a 2-byte name
// offset, a 2-byte entry count, then that many entries; each entry is a
// 2-byte name offset, a 1-byte value count, then that many 5-byte values
// (1 type byte, 4 little-endian payload bytes).
package bini

import (
	"errors"
	"fmt"

	"github.com/flint-project/flint/binfmt"
)

// Errors returned by Decode.
var (
	ErrInvalidMagic       = errors.New("bini: invalid magic")
	ErrUnsupportedVersion = errors.New("bini: unsupported version")
	ErrTruncated          = errors.New("bini: truncated")
	ErrOffsetOutOfBounds  = errors.New("bini: offset out of bounds")
	ErrUnknownValueType   = errors.New("bini: unknown value type")
)

const (
	magic          = "BINI"
	supportedMajor = 1

	valueTypeInt       = 1
	valueTypeFloat     = 2
	valueTypeStringRef = 3
)

// ValueKind discriminates a decoded Value.
type ValueKind int

// Possible ValueKind values.
const (
	KindInt ValueKind = iota
	KindFloat
	KindString
)

// Value is a single decoded BINI value: exactly one of the three fields
// indicated by Kind is meaningful.
type Value struct {
	Kind  ValueKind
	Int   int32
	Float float32
	Str   string
}

// Entry is a key with an ordered tuple of values.
type Entry struct {
	Name   string
	Values []Value
}

// Section is a named, ordered list of entries. Duplicate section names and
// duplicate entry names within a section are both permitted; the game's
// own format relies on repeated [Object] blocks.
type Section struct {
	Name    string
	Entries []Entry
}

// File is the fully decoded contents of a BINI byte stream.
type File struct {
	Version  uint32
	Sections []Section
}

// Decode parses a byte slice known to start with the BINI magic. It never
// panics: malformed input is reported as an error, never an index panic.
func Decode(data []byte) (f *File, err error) {
	defer func() {
		if p := recover(); p != nil {
			f, err = nil, fmt.Errorf("bini: %w (%v)", ErrTruncated, p)
		}
	}()

	r := binfmt.NewReader(data)

	magicBytes, err := r.Bytes(4)
	if err != nil {
		return nil, ErrTruncated
	}
	if string(magicBytes) != magic {
		return nil, ErrInvalidMagic
	}

	version, err := r.Uint32()
	if err != nil {
		return nil, ErrTruncated
	}
	if version&0xff != supportedMajor {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	poolOffset, err := r.Uint32()
	if err != nil {
		return nil, ErrTruncated
	}
	if int(poolOffset) > len(data) {
		return nil, ErrOffsetOutOfBounds
	}
	pool := data[poolOffset:]

	f = &File{Version: version}

	for r.Pos() < poolOffset {
		sec, err := decodeSection(r, pool, poolOffset)
		if err != nil {
			return nil, err
		}
		f.Sections = append(f.Sections, sec)
	}

	return f, nil
}

func decodeSection(r *binfmt.Reader, pool []byte, poolOffset uint32) (Section, error) {
	nameOff, err := r.Uint16()
	if err != nil {
		return Section{}, ErrTruncated
	}
	name, err := lookupString(pool, uint32(nameOff))
	if err != nil {
		return Section{}, err
	}

	count, err := r.Uint16()
	if err != nil {
		return Section{}, ErrTruncated
	}

	sec := Section{Name: name}
	for i := uint16(0); i < count; i++ {
		e, err := decodeEntry(r, pool)
		if err != nil {
			return Section{}, err
		}
		sec.Entries = append(sec.Entries, e)
	}

	_ = poolOffset
	return sec, nil
}

func decodeEntry(r *binfmt.Reader, pool []byte) (Entry, error) {
	nameOff, err := r.Uint16()
	if err != nil {
		return Entry{}, ErrTruncated
	}
	name, err := lookupString(pool, uint32(nameOff))
	if err != nil {
		return Entry{}, err
	}

	valCount, err := r.Uint8()
	if err != nil {
		return Entry{}, ErrTruncated
	}

	e := Entry{Name: name}
	for i := byte(0); i < valCount; i++ {
		v, err := decodeValue(r, pool)
		if err != nil {
			return Entry{}, err
		}
		e.Values = append(e.Values, v)
	}
	return e, nil
}

func decodeValue(r *binfmt.Reader, pool []byte) (Value, error) {
	typ, err := r.Uint8()
	if err != nil {
		return Value{}, ErrTruncated
	}

	switch typ {
	case valueTypeInt:
		n, err := r.Int32()
		if err != nil {
			return Value{}, ErrTruncated
		}
		return Value{Kind: KindInt, Int: n}, nil
	case valueTypeFloat:
		f, err := r.Float32()
		if err != nil {
			return Value{}, ErrTruncated
		}
		return Value{Kind: KindFloat, Float: f}, nil
	case valueTypeStringRef:
		off, err := r.Uint32()
		if err != nil {
			return Value{}, ErrTruncated
		}
		s, err := lookupString(pool, off)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindString, Str: s}, nil
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrUnknownValueType, typ)
	}
}

// lookupString resolves a null-terminated string at offset off within the
// string pool. Every offset must land within the pool and at the start of
// a string (immediately after a null terminator, or at offset 0).
func lookupString(pool []byte, off uint32) (string, error) {
	if int(off) > len(pool) {
		return "", ErrOffsetOutOfBounds
	}
	if off > 0 && pool[off-1] != 0 {
		return "", ErrOffsetOutOfBounds
	}
	s, err := binfmt.CStringAt(pool, off)
	if err != nil {
		return "", ErrOffsetOutOfBounds
	}
	return s, nil
}
