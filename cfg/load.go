package cfg

import (
	"os"

	"github.com/flint-project/flint/binfmt/bini"
)

// binaryMagic is the 4-byte prefix that selects the BINI decoder; any other
// (or shorter) prefix is handed to the textual parser.
const binaryMagic = "BINI"

// Load inspects the first four bytes of data and dispatches to the BINI
// decoder or the textual parser, returning the same Section stream either
// way. A caller never branches on format.
func Load(data []byte) ([]Section, []*Diagnostic, error) {
	if len(data) >= 4 && string(data[:4]) == binaryMagic {
		f, err := bini.Decode(data)
		if err != nil {
			diag := &Diagnostic{Kind: KindMalformedBinary, Cause: err}
			return nil, []*Diagnostic{diag}, err
		}
		return fromBINI(f), nil, nil
	}
	sections, diags := ParseText(data)
	return sections, diags, nil
}

// LoadFile reads path and calls Load on its contents.
func LoadFile(path string) ([]Section, []*Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Load(data)
}
