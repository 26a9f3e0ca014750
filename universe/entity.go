// Package universe builds the typed entity graph — systems, bases,
// factions, goods, ships, commodities, equipment, and the solar hierarchy —
// on top of the cfg section/entry stream, and resolves the resource IDs
// entities carry against the decoded string/markup tables.
package universe

// ResourceID identifies a localized string inside a resource container.
// Zero is the sentinel for "no resource assigned."
type ResourceID uint32

// Entity is implemented by every concrete entity type. Nickname is the
// identity; uniqueness is scoped per concrete type, enforced by the
// registry that constructs the EntitySet.
type Entity interface {
	Nickname() string
	IDsName() ResourceID
	IDsInfo() ResourceID
}

// Common holds the fields every concrete entity shares. Concrete types
// embed Common and get Entity for free. Named Common rather than Base to
// avoid colliding with the game's own Base entity (a space station).
type Common struct {
	nickname string
	idsName  ResourceID
	idsInfo  ResourceID
}

// Nickname returns the entity's unique identifier within its concrete type.
func (c Common) Nickname() string { return c.nickname }

// IDsName returns the resource ID of the entity's display name, or 0 if
// none was declared.
func (c Common) IDsName() ResourceID { return c.idsName }

// IDsInfo returns the resource ID of the entity's infocard, or 0 if none
// was declared.
func (c Common) IDsInfo() ResourceID { return c.idsInfo }
