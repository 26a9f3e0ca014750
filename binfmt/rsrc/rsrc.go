// Package rsrc decodes the subset of the Portable Executable (PE) format
// needed to reach the resource directory of a desktop-OS resource DLL: the
// DOS stub, PE/COFF headers, the optional header (32- or 64-bit), the
// section table, and the three-level Type/Name/Language resource tree
// inside ".rsrc". Two resource kinds are recognized: the standard Windows
// string table (RT_STRING, 16 length-prefixed strings per bundle) and the game's custom rich-text resource type.
package rsrc

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Errors returned by Decode.
var (
	ErrNotAnImage         = errors.New("rsrc: not a PE image")
	ErrNoResourceSection  = errors.New("rsrc: no resource section")
	ErrMalformedDirectory = errors.New("rsrc: malformed resource directory")
)

// TypeInfocard is the game's custom resource type number used for
// rich-text infocard payloads. The number sits inside the range of the
// standard Windows RT_* constants, next to RT_RCDATA (10). Treated
// as data, not a magic constant buried in decode logic, so a caller linking
// against a mod with a different build can override it.
var TypeInfocard uint32 = 9

const (
	typeString = 6 // RT_STRING

	peOffsetPtr = 0x3C
	peSignature = "PE\x00\x00"

	coffHeaderSize    = 20
	sectionHeaderSize = 40

	optMagicPE32  = 0x10b
	optMagicPE32P = 0x20b

	dataDirOffset32 = 0x60
	dataDirOffset64 = 0x70
	resourceDirIdx  = 2

	resourceDirEntrySize  = 8
	resourceDataEntrySize = 16
)

// Module holds the decoded string and infocard tables of a resource
// container.
type Module struct {
	// Strings maps a reconstructed string-table ID to its decoded text.
	Strings map[uint32]string

	// Infocards maps a raw resource name to its decoded rich-text markup.
	Infocards map[uint32]string
}

// Decode parses data as a PE image and extracts its string table and
// infocard resources.
func Decode(data []byte) (m *Module, err error) {
	defer func() {
		if p := recover(); p != nil {
			m, err = nil, fmt.Errorf("rsrc: %w (%v)", ErrMalformedDirectory, p)
		}
	}()

	if len(data) < 0x40 || data[0] != 'M' || data[1] != 'Z' {
		return nil, ErrNotAnImage
	}

	peOff := u32(data, peOffsetPtr)
	if err := need(data, peOff, 4); err != nil {
		return nil, ErrNotAnImage
	}
	if string(data[peOff:peOff+4]) != peSignature {
		return nil, ErrNotAnImage
	}

	coffOff := peOff + 4
	if err := need(data, coffOff, coffHeaderSize); err != nil {
		return nil, ErrNotAnImage
	}
	numSections := int(u16(data, coffOff+2))
	optHeaderSize := int(u16(data, coffOff+16))

	optOff := coffOff + coffHeaderSize
	if err := need(data, optOff, 2); err != nil {
		return nil, ErrNotAnImage
	}
	optMagic := u16(data, optOff)

	var ddOff uint32
	switch optMagic {
	case optMagicPE32:
		ddOff = optOff + dataDirOffset32
	case optMagicPE32P:
		ddOff = optOff + dataDirOffset64
	default:
		return nil, ErrNotAnImage
	}

	resourceDDOff := ddOff + resourceDirIdx*8
	if err := need(data, resourceDDOff, 8); err != nil {
		return nil, ErrNoResourceSection
	}
	resourceRVA := u32(data, resourceDDOff)
	resourceSize := u32(data, resourceDDOff+4)
	if resourceRVA == 0 || resourceSize == 0 {
		return nil, ErrNoResourceSection
	}

	sectionsOff := optOff + uint32(optHeaderSize)
	var rsrcFileOff, rsrcVA uint32
	found := false
	for i := 0; i < numSections; i++ {
		so := sectionsOff + uint32(i*sectionHeaderSize)
		if err := need(data, so, sectionHeaderSize); err != nil {
			return nil, ErrNoResourceSection
		}
		va := u32(data, so+12)
		rawSize := u32(data, so+16)
		rawPtr := u32(data, so+20)
		if resourceRVA >= va && resourceRVA < va+rawSize {
			rsrcFileOff, rsrcVA = rawPtr, va
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNoResourceSection
	}

	rsrcStart := rsrcFileOff + (resourceRVA - rsrcVA)

	m = &Module{
		Strings:   map[uint32]string{},
		Infocards: map[uint32]string{},
	}

	typeEntries, err := readDirEntries(data, rsrcStart, rsrcStart)
	if err != nil {
		return nil, err
	}

	for _, te := range typeEntries {
		switch te.id {
		case typeString:
			if err := decodeStringType(data, rsrcStart, resourceRVA, te, m); err != nil {
				return nil, err
			}
		default:
			if uint32(te.id) == TypeInfocard {
				if err := decodeInfocardType(data, rsrcStart, resourceRVA, te, m); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

// dirEntry is one IMAGE_RESOURCE_DIRECTORY_ENTRY, resolved to either a
// numeric id (the common case for this format) and a subdirectory/data
// offset. The offset is stored as an absolute file offset: the on-disk
// value, relative to the start of .rsrc, plus rsrcStart.
type dirEntry struct {
	id        uint32
	isNamed   bool
	subdirOff uint32 // valid when isSubdir
	isSubdir  bool
	dataOff   uint32 // valid when !isSubdir
}

// readDirEntries reads all entries of the IMAGE_RESOURCE_DIRECTORY at the
// absolute file offset dirAbsOff; rsrcStart is the file offset of .rsrc.
func readDirEntries(data []byte, rsrcStart, dirAbsOff uint32) ([]dirEntry, error) {
	if err := need(data, dirAbsOff, 16); err != nil {
		return nil, ErrMalformedDirectory
	}
	named := u16(data, dirAbsOff+12)
	ids := u16(data, dirAbsOff+14)
	total := int(named) + int(ids)

	entries := make([]dirEntry, 0, total)
	base := dirAbsOff + 16
	for i := 0; i < total; i++ {
		eo := base + uint32(i*resourceDirEntrySize)
		if err := need(data, eo, resourceDirEntrySize); err != nil {
			return nil, ErrMalformedDirectory
		}
		nameField := u32(data, eo)
		offField := u32(data, eo+4)

		e := dirEntry{}
		if nameField&0x80000000 != 0 {
			e.isNamed = true
			e.id = nameField & 0x7fffffff // offset into the name table; not resolved to a string ID
		} else {
			e.id = nameField
		}
		if offField&0x80000000 != 0 {
			e.isSubdir = true
			e.subdirOff = rsrcStart + (offField & 0x7fffffff)
		} else {
			e.dataOff = rsrcStart + offField
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func decodeStringType(data []byte, rsrcStart, dirRVA uint32, typeEntry dirEntry, m *Module) error {
	if !typeEntry.isSubdir {
		return ErrMalformedDirectory
	}
	nameEntries, err := readDirEntries(data, rsrcStart, typeEntry.subdirOff)
	if err != nil {
		return err
	}
	for _, ne := range nameEntries {
		bundleID := ne.id
		if !ne.isSubdir {
			continue
		}
		langEntries, err := readDirEntries(data, rsrcStart, ne.subdirOff)
		if err != nil {
			return err
		}
		for _, le := range langEntries {
			if le.isSubdir {
				continue
			}
			raw, err := dataEntryBytes(data, rsrcStart, dirRVA, le.dataOff)
			if err != nil {
				return err
			}
			strs, err := decodeStringBundle(raw)
			if err != nil {
				return err
			}
			for idx, s := range strs {
				if s == "" {
					continue
				}
				id := (bundleID-1)*16 + uint32(idx)
				m.Strings[id] = s
			}
		}
	}
	return nil
}

func decodeInfocardType(data []byte, rsrcStart, dirRVA uint32, typeEntry dirEntry, m *Module) error {
	if !typeEntry.isSubdir {
		return ErrMalformedDirectory
	}
	nameEntries, err := readDirEntries(data, rsrcStart, typeEntry.subdirOff)
	if err != nil {
		return err
	}
	for _, ne := range nameEntries {
		id := ne.id
		if !ne.isSubdir {
			continue
		}
		langEntries, err := readDirEntries(data, rsrcStart, ne.subdirOff)
		if err != nil {
			return err
		}
		for _, le := range langEntries {
			if le.isSubdir {
				continue
			}
			raw, err := dataEntryBytes(data, rsrcStart, dirRVA, le.dataOff)
			if err != nil {
				return err
			}
			text, err := decodeUTF16(raw)
			if err != nil {
				text = "" // recovered by replacement, per spec
			}
			m.Infocards[id] = text
		}
	}
	return nil
}

// dataEntryBytes resolves an IMAGE_RESOURCE_DATA_ENTRY. Unlike directory
// entries (whose OffsetToData is relative to the start of the resource
// directory, i.e. to dirRVA), a data entry's OffsetToData is an absolute
// RVA, so it converts to a file offset via rsrcStart + (rva - dirRVA)
// rather than rsrcStart + rva.
func dataEntryBytes(data []byte, rsrcStart, dirRVA, dataEntryAbsOff uint32) ([]byte, error) {
	if err := need(data, dataEntryAbsOff, resourceDataEntrySize); err != nil {
		return nil, ErrMalformedDirectory
	}
	rva := u32(data, dataEntryAbsOff)
	size := u32(data, dataEntryAbsOff+4)

	off := rsrcStart + (rva - dirRVA)
	if err := need(data, off, size); err != nil {
		return nil, ErrMalformedDirectory
	}
	out := make([]byte, size)
	copy(out, data[off:off+size])
	return out, nil
}

// decodeStringBundle splits a 16-string RT_STRING bundle, each string
// prefixed by a 16-bit length (in UTF-16 code units).
func decodeStringBundle(raw []byte) ([16]string, error) {
	var out [16]string
	pos := 0
	for i := 0; i < 16; i++ {
		if pos+2 > len(raw) {
			return out, ErrMalformedDirectory
		}
		length := int(binary.LittleEndian.Uint16(raw[pos:]))
		pos += 2
		if length == 0 {
			continue
		}
		end := pos + length*2
		if end > len(raw) {
			return out, ErrMalformedDirectory
		}
		s, err := decodeUTF16(raw[pos:end])
		if err != nil {
			s = ""
		}
		out[i] = s
		pos = end
	}
	return out, nil
}

// decodeUTF16 decodes a little-endian UTF-16 byte blob to a Go string,
// replacing invalid sequences rather than failing.
func decodeUTF16(raw []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.ReplacementBOM).NewDecoder()
	out, err := dec.Bytes(raw)
	if err != nil {
		return string(out), err
	}
	return string(out), nil
}

func u16(data []byte, off uint32) uint16 {
	return binary.LittleEndian.Uint16(data[off:])
}

func u32(data []byte, off uint32) uint32 {
	return binary.LittleEndian.Uint32(data[off:])
}

func need(data []byte, off uint32, n uint32) error {
	if uint64(off)+uint64(n) > uint64(len(data)) {
		return ErrMalformedDirectory
	}
	return nil
}

// NameString returns the sentinel used when a string resource ID can't be
// resolved, per spec.md §4.2.
func NameString(id uint32) string {
	return fmt.Sprintf("<ids_name: %d>", id)
}

// InfoString returns the sentinel used when an infocard resource ID can't
// be resolved, per spec.md §4.2.
func InfoString(id uint32) string {
	return fmt.Sprintf("<ids_info: %d>", id)
}
