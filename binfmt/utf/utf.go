// Package utf decodes the UTF (Universal Tree Format) container, the
// hierarchical binary blob tree used for the game's 3-D models, textures,
// sound banks, and other non-tabular assets. The format is a header, a node
// table addressed by absolute file offsets, a name pool, and a data blob
// region.
package utf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flint-project/flint/binfmt"
)

// Errors returned by Decode.
var (
	ErrInvalidMagic      = errors.New("utf: invalid magic")
	ErrTruncated         = errors.New("utf: truncated")
	ErrCycleInNodeTable  = errors.New("utf: cycle in node table")
	ErrOffsetOutOfBounds = errors.New("utf: offset out of bounds")
)

const (
	magic = "UTF "

	headerSize = 32
	nodeSize   = 24

	flagDirectory = 0x80000000
	noPeer        = 0xffffffff
)

// header mirrors the on-disk UTF header.
type header struct {
	version         uint32
	nodeTableOffset uint32
	nodeTableSize   uint32
	namePoolOffset  uint32
	namePoolSize    uint32
	dataOffset      uint32
}

// Tree is a decoded, read-only UTF blob tree. The zero value is not usable;
// construct one with Decode.
type Tree struct {
	paths map[string][]byte
}

// Find looks up a `/`-delimited path. Lookups are case-insensitive; a
// leading slash is optional. The returned slice is owned by the Tree and
// must not be mutated.
func (t *Tree) Find(path string) ([]byte, bool) {
	b, ok := t.paths[normalizePath(path)]
	return b, ok
}

// Paths returns every path present in the tree, in no particular order.
func (t *Tree) Paths() []string {
	out := make([]string, 0, len(t.paths))
	for p := range t.paths {
		out = append(out, p)
	}
	return out
}

func normalizePath(path string) string {
	path = strings.TrimPrefix(path, "/")
	return strings.ToLower(path)
}

// Decode parses data as a UTF tree, walking the node table once and
// building the path index eagerly so Find is a plain map lookup.
func Decode(data []byte) (t *Tree, err error) {
	defer func() {
		if p := recover(); p != nil {
			t, err = nil, fmt.Errorf("utf: %w (%v)", ErrTruncated, p)
		}
	}()

	if len(data) < 4 {
		return nil, ErrTruncated
	}
	if string(data[0:4]) != magic {
		return nil, ErrInvalidMagic
	}
	if len(data) < headerSize {
		return nil, ErrTruncated
	}

	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	tableEnd := uint64(h.nodeTableOffset) + uint64(h.nodeTableSize)
	if tableEnd > uint64(len(data)) {
		return nil, ErrOffsetOutOfBounds
	}
	namePoolEnd := uint64(h.namePoolOffset) + uint64(h.namePoolSize)
	if namePoolEnd > uint64(len(data)) {
		return nil, ErrOffsetOutOfBounds
	}
	namePool := data[h.namePoolOffset:namePoolEnd]

	t = &Tree{paths: map[string][]byte{}}

	visited := map[uint32]bool{}
	if err := walk(data, namePool, h, h.nodeTableOffset, "", visited, t); err != nil {
		return nil, err
	}

	return t, nil
}

func parseHeader(data []byte) (header, error) {
	r := binfmt.NewReader(data)
	if err := r.Skip(4); err != nil { // magic, already validated
		return header{}, ErrTruncated
	}

	var h header
	var err error
	if h.version, err = r.Uint32(); err != nil {
		return header{}, ErrTruncated
	}
	if h.nodeTableOffset, err = r.Uint32(); err != nil {
		return header{}, ErrTruncated
	}
	if h.nodeTableSize, err = r.Uint32(); err != nil {
		return header{}, ErrTruncated
	}
	if h.namePoolOffset, err = r.Uint32(); err != nil {
		return header{}, ErrTruncated
	}
	if h.namePoolSize, err = r.Uint32(); err != nil {
		return header{}, ErrTruncated
	}
	if h.dataOffset, err = r.Uint32(); err != nil {
		return header{}, ErrTruncated
	}
	return h, nil
}

// node is one decoded IMAGE_RESOURCE_DIRECTORY-style table record: an
// interior node carries a valid childFirst pointing at its first child (the
// rest of the children are reached by following peer pointers); a leaf
// carries a valid dataOffset/size into the data block.
type node struct {
	peer        uint32
	nameOffset  uint32
	isDirectory bool
	child       uint32 // valid when isDirectory
	dataOffset  uint32 // valid when !isDirectory
	size        uint32
}

func readNode(data []byte, off uint32) (node, error) {
	if uint64(off)+uint64(nodeSize) > uint64(len(data)) {
		return node{}, ErrTruncated
	}
	r := binfmt.NewReader(data[off:])

	peer, err := r.Uint32()
	if err != nil {
		return node{}, ErrTruncated
	}
	nameOff, err := r.Uint32()
	if err != nil {
		return node{}, ErrTruncated
	}
	flags, err := r.Uint32()
	if err != nil {
		return node{}, ErrTruncated
	}
	ptr, err := r.Uint32()
	if err != nil {
		return node{}, ErrTruncated
	}
	size, err := r.Uint32()
	if err != nil {
		return node{}, ErrTruncated
	}
	// allocatedSize follows but is unused by the decoder.

	n := node{peer: peer, nameOffset: nameOff, size: size}
	if flags&flagDirectory != 0 {
		n.isDirectory = true
		n.child = ptr
	} else {
		n.dataOffset = ptr
	}
	return n, nil
}

// walk visits nodeOff and its subtree, recording every leaf under prefix.
// Each node offset is visited at most once; a repeat visit means the table
// encodes a cycle.
func walk(data, namePool []byte, h header, nodeOff uint32, prefix string, visited map[uint32]bool, t *Tree) error {
	for cur := nodeOff; ; {
		if visited[cur] {
			return ErrCycleInNodeTable
		}
		visited[cur] = true

		n, err := readNode(data, cur)
		if err != nil {
			return err
		}

		name := ""
		if cur != h.nodeTableOffset { // root is unnamed
			name, err = binfmt.CStringAt(namePool, n.nameOffset)
			if err != nil {
				return ErrOffsetOutOfBounds
			}
		}
		path := prefix
		if name != "" {
			if path == "" {
				path = name
			} else {
				path = path + "/" + name
			}
		}

		if n.isDirectory {
			if err := walk(data, namePool, h, n.child, path, visited, t); err != nil {
				return err
			}
		} else {
			end := uint64(n.dataOffset) + uint64(n.size)
			if end > uint64(len(data)) {
				return ErrOffsetOutOfBounds
			}
			blob := make([]byte, n.size)
			copy(blob, data[n.dataOffset:end])
			t.paths[normalizePath(path)] = blob
		}

		if n.peer == noPeer {
			return nil
		}
		cur = n.peer
	}
}
