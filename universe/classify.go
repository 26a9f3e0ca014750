package universe

import "strings"

// archetypeRule maps an archetype-string prefix to the Solar subtype it
// should construct. Rules are tried longest-prefix-first, so a specific
// rule like "solar_wreck" can override a more general "solar_" fallback
// without either needing to be an exact match.
type archetypeRule struct {
	prefix string
	kind   solarKind
}

type solarKind int

const (
	kindObject solarKind = iota
	kindStar
	kindPlanet
	kindPlanetaryBase
	kindBaseSolar
	kindJump
	kindTradeLaneRing
)

// archetypeTable is ordered by decreasing prefix length at init time so
// classifySolar can do a simple linear scan.
var archetypeTable = sortedArchetypeTable([]archetypeRule{
	{"sun", kindStar},
	{"planet_habitable_station", kindPlanetaryBase},
	{"planet", kindPlanet},
	{"station", kindBaseSolar},
	{"jumphole", kindJump},
	{"jumpgate", kindJump},
	{"tradelane_ring", kindTradeLaneRing},
	{"weapons_platform", kindBaseSolar},
})

func sortedArchetypeTable(rules []archetypeRule) []archetypeRule {
	out := append([]archetypeRule(nil), rules...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j].prefix) > len(out[j-1].prefix); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// classifySolar returns the solarKind an archetype string should be
// constructed as, falling back to kindObject when nothing matches
// (spec.md §4.6).
func classifySolar(archetype string) solarKind {
	lower := strings.ToLower(archetype)
	for _, rule := range archetypeTable {
		if strings.HasPrefix(lower, rule.prefix) {
			return rule.kind
		}
	}
	return kindObject
}
