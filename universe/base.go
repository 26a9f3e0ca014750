package universe

import "github.com/flint-project/flint/internal/diag"

// Base is a station: a faction-owned place that hosts NPCs, sells and
// buys goods, and optionally dockable via a Solar (most Bases are; a few
// data-only "virtual" bases used for mission bookkeeping have no
// physical presence, hence HasSolar rather than a required field).
type Base struct {
	*Common
	solarNick   string
	factionNick string
	sells       []marketLine
	buys        []marketLine
	registry    *Registry
}

type marketLine struct {
	goodNick string
	price    int64
}

// HasSolar reports whether this Base is docked at a physical Solar.
func (b *Base) HasSolar() bool { return b.solarNick != "" }

// Solar resolves the Base's docking point.
func (b *Base) Solar() (IsBase, bool) {
	if !b.HasSolar() || b.registry == nil {
		return nil, false
	}
	return b.registry.baseSolarByBase(b.nickname)
}

// FactionNickname returns the nickname of the owning Faction.
func (b *Base) FactionNickname() string { return b.factionNick }

// Faction resolves the owning Faction.
func (b *Base) Faction() (*Faction, bool) {
	if b.registry == nil {
		return nil, false
	}
	return b.registry.Factions().Get(b.factionNick)
}

// Sells returns the goods this Base sells, in inventory order. A good
// nickname with no matching entry in the Goods set (a dangling
// reference, logged each time the list is resolved) is omitted.
func (b *Base) Sells() []Good { return b.resolveMarket(b.sells) }

// Buys returns the goods this Base buys, in inventory order.
func (b *Base) Buys() []Good { return b.resolveMarket(b.buys) }

func (b *Base) resolveMarket(lines []marketLine) []Good {
	if b.registry == nil {
		return nil
	}
	var out []Good
	for _, l := range lines {
		if g, ok := b.registry.goodByNickname(l.goodNick); ok {
			out = append(out, g)
		} else {
			diag.Warn("universe: dangling good reference",
				diag.F("base", b.nickname), diag.F("good", l.goodNick))
		}
	}
	return out
}
