package universe

// GoodCommon holds the fields shared by every member of the Good
// hierarchy: the price and whether the good is tradeable at all (a
// "_market" boolean rather than a separate type, since tradeability is an
// orthogonal flag the data sets independently of archetype — see
// DESIGN.md's Open Question decision).
type GoodCommon struct {
	*Common
	price   int64
	market  bool
	archetype string
}

// GoodCommon returns the receiver, mirroring SolarCommon's identity
// accessor.
func (g *GoodCommon) GoodCommon() *GoodCommon { return g }

// Price returns the good's base credit price.
func (g *GoodCommon) Price() int64 { return g.price }

// Tradeable reports the good's "market" flag, false when the entry is
// absent. The flag is read the same way for ships, commodities and
// equipment.
func (g *GoodCommon) Tradeable() bool { return g.market }

// Archetype returns the name of the section the good was read from
// ("ship", "equipment", "commodity", ...), which decides its concrete type.
func (g *GoodCommon) Archetype() string { return g.archetype }

// Good is implemented by Ship, Commodity, and Equipment.
type Good interface {
	Entity
	GoodCommon() *GoodCommon
	Price() int64
	Tradeable() bool
}
