package universe

import (
	"os"

	"github.com/flint-project/flint/binfmt/rsrc"
	"github.com/flint-project/flint/internal/diag"
)

// resourcesOnce/resources hold the merged string and infocard tables
// across the resource containers listed in resourceFiles (resources.dll
// when none are configured). Later files in
// resourceFiles win on key collisions, resolved in the order they're
// listed (spec.md §4.6 step 5's "last-loader-wins" tie-break).
type resourceTables struct {
	strings   map[uint32]string
	infocards map[uint32]string
}

func (r *Registry) resourceTables() *resourceTables {
	r.resourcesOnce.Do(r.buildResources)
	return r.resources
}

func (r *Registry) buildResources() {
	merged := &resourceTables{strings: map[uint32]string{}, infocards: map[uint32]string{}}
	files := r.resourceFiles
	if len(files) == 0 {
		files = []string{defaultResourceFile}
	}
	for _, rel := range files {
		data, err := os.ReadFile(r.path(rel))
		if err != nil {
			diag.Warn("universe: failed to read resource file", diag.F("path", rel), diag.F("error", err.Error()))
			continue
		}
		mod, err := rsrc.Decode(data)
		if err != nil {
			diag.Warn("universe: failed to decode resource file", diag.F("path", rel), diag.F("error", err.Error()))
			continue
		}
		for id, s := range mod.Strings {
			merged.strings[id] = s
		}
		for id, s := range mod.Infocards {
			merged.infocards[id] = s
		}
	}
	r.resources = merged
}

// Resolver resolves ResourceIDs carried by entities into display strings,
// with a choice of markup rendering.
type Resolver struct {
	registry *Registry
}

// Resolve returns a Resolver bound to this Registry's merged resource
// tables.
func (r *Registry) Resolve() *Resolver { return &Resolver{registry: r} }

// Name returns the display name for id, or a deterministic sentinel if
// id is zero or unresolved.
func (res *Resolver) Name(id ResourceID) string {
	if s, ok := res.registry.resourceTables().strings[uint32(id)]; ok {
		return s
	}
	return rsrc.NameString(uint32(id))
}

// MarkupMode selects how Infocard renders an entity's rich-text
// description.
type MarkupMode int

// Possible MarkupMode values.
const (
	// MarkupPlain strips all markup tags, yielding bare text.
	MarkupPlain MarkupMode = iota
	// MarkupHTML substitutes markup tags for a whitelisted HTML subset.
	MarkupHTML
	// MarkupRDL returns the raw UTF-16-decoded markup unmodified.
	MarkupRDL
)

// Infocard returns id's infocard rendered per mode, or a deterministic
// sentinel if id is zero or unresolved. Output is idempotent: calling
// Infocard twice with the same arguments, against an unchanged Registry,
// returns identical strings.
func (res *Resolver) Infocard(id ResourceID, mode MarkupMode) string {
	raw, ok := res.registry.resourceTables().infocards[uint32(id)]
	if !ok {
		return rsrc.InfoString(uint32(id))
	}
	switch mode {
	case MarkupRDL:
		return raw
	case MarkupHTML:
		return markupToHTML(raw)
	default:
		return markupToPlain(raw)
	}
}
