package universe

// TradeLaneRing is one ring of a trade lane: a chain of solars a ship can
// autopilot through. The data only ever names a ring's next link; the
// previous link is reconstructed at registry-build time (spec.md §4.6) so
// the ring can be walked in either direction.
type TradeLaneRing struct {
	SolarCommon
	nextNick string
	prevNick string
}

// NextNickname returns the nickname of the next ring in the lane, or ""
// at the lane's end.
func (r *TradeLaneRing) NextNickname() string { return r.nextNick }

// PrevNickname returns the nickname of the previous ring in the lane, or
// "" at the lane's start. Populated by Registry during the build, never
// read from source data.
func (r *TradeLaneRing) PrevNickname() string { return r.prevNick }

// Next resolves the next ring in the lane.
func (r *TradeLaneRing) Next() (*TradeLaneRing, bool) {
	if r.nextNick == "" || r.registry == nil {
		return nil, false
	}
	return r.registry.tradeLaneRings().Get(r.nextNick)
}

// Prev resolves the previous ring in the lane.
func (r *TradeLaneRing) Prev() (*TradeLaneRing, bool) {
	if r.prevNick == "" || r.registry == nil {
		return nil, false
	}
	return r.registry.tradeLaneRings().Get(r.prevNick)
}
