package universe

// BaseSolar is a solar object that's also a docking point for a Base
// station: a standalone station or a weapons platform. It carries the nickname of the Base it hosts rather
// than embedding one, for the same stable-nickname-plus-registry reason
// SolarCommon resolves its owning System (spec.md §9).
type BaseSolar struct {
	SolarCommon
	baseNick  string
	ownerNick string
}

// BaseNickname returns the nickname of the hosted Base.
func (b *BaseSolar) BaseNickname() string { return b.baseNick }

// Base resolves the hosted Base entity.
func (b *BaseSolar) Base() (*Base, bool) {
	if b.registry == nil {
		return nil, false
	}
	return b.registry.Bases().Get(b.baseNick)
}

// Owner resolves the faction this docking point's reputation is filed
// under — set from the solar's own "reputation" field, independently of
// whatever faction the hosted Base itself declares.
func (b *BaseSolar) Owner() (*Faction, bool) {
	if b.registry == nil {
		return nil, false
	}
	return b.registry.Factions().Get(b.ownerNick)
}

// IsBase is implemented by every Solar that hosts a Base: BaseSolar
// itself and, via embedding, PlanetaryBase.
type IsBase interface {
	Solar
	BaseNickname() string
	Base() (*Base, bool)
}
