package universe

// SolarCommon holds the fields shared by every member of the Solar
// hierarchy: the owning system (stored as a stable nickname plus a
// back-pointer to the Registry that can resolve it, since cyclic ownership
// isn't expressible as a plain Go value graph — spec.md §9) and the raw
// archetype string used for classification.
type SolarCommon struct {
	*Common
	archetype  string
	systemNick string
	registry   *Registry
}

// SolarCommon returns the receiver, mirroring the teacher's
// Cmd.BaseCmd()-style accessor: every concrete Solar type embeds
// SolarCommon by value and gets this identity accessor for free.
func (s *SolarCommon) SolarCommon() *SolarCommon { return s }

// Archetype returns the raw archetype string the entity was classified
// from.
func (s *SolarCommon) Archetype() string { return s.archetype }

// SystemNickname returns the nickname of the owning System.
func (s *SolarCommon) SystemNickname() string { return s.systemNick }

// System resolves the owning System. It reports false if the reference is
// dangling. After Registry.Reset the lookup runs against the new root,
// through the same Registry.
func (s *SolarCommon) System() (*System, bool) {
	if s.registry == nil {
		return nil, false
	}
	return s.registry.Systems().Get(s.systemNick)
}

// Solar is implemented by every member of the System/Base/Faction
// sibling hierarchy's Solar† branch: Object, BaseSolar, Jump,
// TradeLaneRing, Star, Planet, and PlanetaryBase.
type Solar interface {
	Entity
	SolarCommon() *SolarCommon
	Archetype() string
	SystemNickname() string
	System() (*System, bool)
}

// Object is the fallback concrete type for a solar whose archetype doesn't
// match any known subtype (spec.md §4.6: "unknown archetypes fall back to
// Object").
type Object struct {
	SolarCommon
}
