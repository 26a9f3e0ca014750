package universe

// Ship is a flyable hull. Ships are never tradeable at a Base counter in
// the way commodities are; they're purchased through the dedicated ship
// dealer listing, which this package doesn't model (spec.md Non-goals).
type Ship struct {
	GoodCommon
	hull    int64
	holdSize int64
}

// Hull returns the ship's base hit points.
func (s *Ship) Hull() int64 { return s.hull }

// HoldSize returns the number of cargo slots the hull provides.
func (s *Ship) HoldSize() int64 { return s.holdSize }

// Commodity is a tradeable bulk good: ore, food, weapons shipments, and
// the like.
type Commodity struct {
	GoodCommon
	volume int64
}

// Volume returns how many cargo-hold units one unit of the commodity
// occupies.
func (c *Commodity) Volume() int64 { return c.volume }

// Equipment is mountable hardware: weapons, shields, thrusters, and
// other non-commodity, non-hull goods.
type Equipment struct {
	GoodCommon
	class string
}

// Class returns the equipment's hardpoint class, e.g. "gun" or "shield".
func (e *Equipment) Class() string { return e.class }
