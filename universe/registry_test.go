package universe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mustWrite(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// newTestRegistry builds a small two-system install tree exercising
// scenarios 3, 4, and 6 from spec.md §8 plus the Jump-containment and
// Base/BaseSolar back-reference invariants.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	dir := t.TempDir()

	mustWrite(t, dir, "universe.ini", `
[System]
nickname = li01
ids_name = 100
file = li01.ini

[System]
nickname = li02
ids_name = 200
`)

	mustWrite(t, dir, "factions.ini", `
[Faction]
nickname = li_n_grp
ids_name = 300
`)

	mustWrite(t, dir, "bases.ini", `
[Base]
nickname = li01_01_base
system = li01
solar = li01_01_base
faction = li_n_grp
sell = commodity_ore, 10
`)

	mustWrite(t, dir, "li01.ini", `
[Object]
nickname = li01_01
archetype = station
base = li01_01_base
reputation = li_n_grp

[Object]
nickname = li01_planet
archetype = planet
spin = 1, 0, 0

[Object]
nickname = li01_sun
archetype = sun
radius = 500

[Object]
nickname = li01_to_li02
archetype = jumpgate
goto = li02

[Object]
nickname = r1
archetype = tradelane_ring
next_ring = r2

[Object]
nickname = r2
archetype = tradelane_ring
`)

	mustWrite(t, dir, "goods.ini", `
[commodity]
nickname = commodity_ore
price = 10
market = true

[ship]
nickname = li_fighter
price = 50000
hull = 5000
hold_size = 10

[equipment]
nickname = li_shield_01
price = 2000
class = shield
`)

	reg, err := NewRegistry(dir)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestNewRegistryMissingRoot(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected an error for a missing install root")
	}
	var uerr *Error
	if !errors.As(err, &uerr) || uerr.Kind != KindInstallPathMissing {
		t.Fatalf("expected KindInstallPathMissing, got %v", err)
	}
}

// Scenario 3: a system with a planet archetype and spin=1,0,0.
func TestScenario3PlanetSpin(t *testing.T) {
	reg := newTestRegistry(t)
	sys, ok := reg.Systems().Get("li01")
	if !ok {
		t.Fatal("expected system li01")
	}
	planets := sys.Planets()
	if len(planets) != 1 {
		t.Fatalf("expected 1 planet, got %d", len(planets))
	}
	spin := planets[0].Spin()
	if spin != [3]float64{1, 0, 0} {
		t.Fatalf("expected spin (1,0,0), got %v", spin)
	}
}

// Scenario 4: a Base's hosted BaseSolar resolves an owning faction.
func TestScenario4BaseSolarOwner(t *testing.T) {
	reg := newTestRegistry(t)
	base, ok := reg.Bases().Get("li01_01_base")
	if !ok {
		t.Fatal("expected base li01_01_base")
	}
	solar, ok := base.Solar()
	if !ok {
		t.Fatal("expected base to resolve its solar")
	}
	bs, ok := solar.(*BaseSolar)
	if !ok {
		t.Fatalf("expected *BaseSolar, got %T", solar)
	}
	owner, ok := bs.Owner()
	if !ok {
		t.Fatal("expected solar to resolve an owner faction")
	}
	if owner.Nickname() != "li_n_grp" {
		t.Fatalf("expected owner li_n_grp, got %s", owner.Nickname())
	}
}

// spec.md §8 invariant: b.has_solar() implies b.solar().base == b.nickname.
func TestBaseSolarBackReference(t *testing.T) {
	reg := newTestRegistry(t)
	base, _ := reg.Bases().Get("li01_01_base")
	if !base.HasSolar() {
		t.Fatal("expected base to have a solar")
	}
	solar, ok := base.Solar()
	if !ok {
		t.Fatal("expected solar to resolve")
	}
	if solar.BaseNickname() != base.Nickname() {
		t.Fatalf("solar.BaseNickname() = %q, want %q", solar.BaseNickname(), base.Nickname())
	}
}

// spec.md §8 invariant: a Jump appears in its origin system's contents.
func TestJumpAppearsInOriginSystemContents(t *testing.T) {
	reg := newTestRegistry(t)
	sys, _ := reg.Systems().Get("li01")
	jumps := sys.Jumps()
	if len(jumps) != 1 {
		t.Fatalf("expected 1 jump, got %d", len(jumps))
	}
	found := false
	for _, sol := range sys.Contents() {
		if sol.Nickname() == jumps[0].Nickname() {
			found = true
		}
	}
	if !found {
		t.Fatal("expected jump to appear in system Contents()")
	}
	target, ok := jumps[0].Target()
	if !ok || target.Nickname() != "li02" {
		t.Fatalf("expected jump target li02, got %v ok=%v", target, ok)
	}
}

// Scenario 6: two rings with only next_ring set reconstruct to a single
// two-element lane via backfilled prev links.
func TestScenario6TradeLaneReconstruction(t *testing.T) {
	reg := newTestRegistry(t)
	rings := reg.tradeLaneRings()
	r1, ok := rings.Get("r1")
	if !ok {
		t.Fatal("expected ring r1")
	}
	r2, ok := rings.Get("r2")
	if !ok {
		t.Fatal("expected ring r2")
	}
	if r1.PrevNickname() != "" {
		t.Fatalf("expected r1 to have no previous ring, got %q", r1.PrevNickname())
	}
	if r1.NextNickname() != "r2" {
		t.Fatalf("expected r1.next == r2, got %q", r1.NextNickname())
	}
	if r2.PrevNickname() != "r1" {
		t.Fatalf("expected r2.prev == r1 (backfilled), got %q", r2.PrevNickname())
	}
	if r2.NextNickname() != "" {
		t.Fatalf("expected r2 to be the lane's end, got %q", r2.NextNickname())
	}
	next, ok := r1.Next()
	if !ok || next.Nickname() != "r2" {
		t.Fatalf("expected r1.Next() == r2, got %v ok=%v", next, ok)
	}
	prev, ok := r2.Prev()
	if !ok || prev.Nickname() != "r1" {
		t.Fatalf("expected r2.Prev() == r1, got %v ok=%v", prev, ok)
	}
}

// spec.md §8 invariant: for every EntitySet the registry produces,
// set.Get(e.Nickname()) is e.
func TestEntitySetGetIsIdentity(t *testing.T) {
	reg := newTestRegistry(t)
	for _, sys := range reg.Systems().All() {
		got, ok := reg.Systems().Get(sys.Nickname())
		if !ok || got != sys {
			t.Fatalf("Systems().Get(%q) did not return the same value", sys.Nickname())
		}
	}
	for _, b := range reg.Bases().All() {
		got, ok := reg.Bases().Get(b.Nickname())
		if !ok || got != b {
			t.Fatalf("Bases().Get(%q) did not return the same value", b.Nickname())
		}
	}
}

func TestGoodsSubsetAccessors(t *testing.T) {
	reg := newTestRegistry(t)

	ships := reg.Ships()
	if ships.Len() != 1 {
		t.Fatalf("expected 1 ship, got %d", ships.Len())
	}
	ship, ok := ships.Get("li_fighter")
	if !ok {
		t.Fatal("expected ship li_fighter")
	}
	if ship.Hull() != 5000 || ship.HoldSize() != 10 {
		t.Fatalf("unexpected ship fields: %+v", ship)
	}

	commodities := reg.Commodities()
	if commodities.Len() != 1 {
		t.Fatalf("expected 1 commodity, got %d", commodities.Len())
	}
	if _, ok := commodities.Get("commodity_ore"); !ok {
		t.Fatal("expected commodity commodity_ore")
	}

	equipment := reg.Equipment()
	if equipment.Len() != 1 {
		t.Fatalf("expected 1 equipment, got %d", equipment.Len())
	}
	equip, ok := equipment.Get("li_shield_01")
	if !ok {
		t.Fatal("expected equipment li_shield_01")
	}
	if equip.Class() != "shield" {
		t.Fatalf("expected class shield, got %q", equip.Class())
	}

	// The subset views and the unified Goods() view agree on membership.
	if reg.Goods().Len() != ships.Len()+commodities.Len()+equipment.Len() {
		t.Fatalf("Goods() length %d doesn't match subset totals", reg.Goods().Len())
	}
	if _, ok := reg.Goods().Get("li_fighter"); !ok {
		t.Fatal("expected li_fighter to also appear in the unified Goods() set")
	}
}

func TestBaseSells(t *testing.T) {
	reg := newTestRegistry(t)
	base, _ := reg.Bases().Get("li01_01_base")
	sells := base.Sells()
	if len(sells) != 1 || sells[0].Nickname() != "commodity_ore" {
		t.Fatalf("expected base to sell commodity_ore, got %v", sells)
	}
}

func TestStarRadius(t *testing.T) {
	reg := newTestRegistry(t)
	sys, _ := reg.Systems().Get("li01")
	stars := sys.Stars()
	if len(stars) != 1 || stars[0].Radius() != 500 {
		t.Fatalf("expected one star of radius 500, got %v", stars)
	}
}

func TestResetRebuilds(t *testing.T) {
	reg := newTestRegistry(t)
	_ = reg.Systems()
	other := t.TempDir()
	mustWrite(t, other, "universe.ini", `
[System]
nickname = ku01
`)
	if err := reg.Reset(other); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, ok := reg.Systems().Get("li01"); ok {
		t.Fatal("expected li01 to be gone after Reset")
	}
	if _, ok := reg.Systems().Get("ku01"); !ok {
		t.Fatal("expected ku01 to be present after Reset")
	}
}
