// Package binfmt holds the bounds-checked byte cursor shared by the
// container decoders (BINI, the resource container, UTF).
package binfmt

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrTruncated is returned whenever a read would run past the end of the
// underlying byte slice.
var ErrTruncated = errors.New("binfmt: truncated")

// Reader is a bounds-checked cursor over a byte slice. Unlike a cursor that
// panics on overrun, every accessor reports an error so the decoders built
// on top of it can satisfy "never panics on malformed input" (spec'd for
// the BINI and UTF decoders in particular).
type Reader struct {
	b   []byte
	pos uint32
}

// NewReader wraps b for bounds-checked reading starting at offset 0.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	if int(r.pos) >= len(r.b) {
		return 0
	}
	return len(r.b) - int(r.pos)
}

// Pos returns the current cursor offset.
func (r *Reader) Pos() uint32 {
	return r.pos
}

// Seek moves the cursor to an absolute offset. It is an error to seek past
// the end of the slice.
func (r *Reader) Seek(pos uint32) error {
	if int(pos) > len(r.b) {
		return ErrTruncated
	}
	r.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n uint32) error {
	return r.Seek(r.pos + n)
}

func (r *Reader) require(n uint32) error {
	if uint64(r.pos)+uint64(n) > uint64(len(r.b)) {
		return ErrTruncated
	}
	return nil
}

// Uint8 reads the next byte.
func (r *Reader) Uint8() (byte, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.b[r.pos]
	r.pos++
	return v, nil
}

// Uint16 reads the next 2 bytes as a little-endian uint16.
func (r *Reader) Uint16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.b[r.pos:])
	r.pos += 2
	return v, nil
}

// Uint32 reads the next 4 bytes as a little-endian uint32.
func (r *Reader) Uint32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.b[r.pos:])
	r.pos += 4
	return v, nil
}

// Int32 reads the next 4 bytes as a little-endian int32.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// Float32 reads the next 4 bytes as a little-endian IEEE-754 float32.
func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Bytes reads the next n bytes as a freshly allocated copy.
func (r *Reader) Bytes(n uint32) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.b[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// Slice returns a borrowed (non-copied) view of the next n bytes.
func (r *Reader) Slice(n uint32) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	out := r.b[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// CStringAt returns the null-terminated string starting at byte offset off
// in the underlying slice, without moving the cursor. It is used for
// resolving offsets into a separate string pool (BINI, UTF name pools).
func CStringAt(b []byte, off uint32) (string, error) {
	if int(off) > len(b) {
		return "", ErrTruncated
	}
	for i := int(off); i < len(b); i++ {
		if b[i] == 0 {
			return string(b[off:i]), nil
		}
	}
	return "", ErrTruncated
}
