package universe

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/flint-project/flint/cfg"
	"github.com/flint-project/flint/internal/diag"
)

// Default relative paths within an install root. Override with the With*
// Options below for installs that lay files out differently.
const (
	defaultSystemsFile  = "universe.ini"
	defaultFactionsFile = "factions.ini"
	defaultGoodsFile    = "goods.ini"
	defaultBasesFile    = "bases.ini"
	defaultResourceFile = "resources.dll"
)

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithSystemsFile overrides the universe-wide system list's path, relative
// to the install root.
func WithSystemsFile(path string) Option { return func(r *Registry) { r.systemsFile = path } }

// WithFactionsFile overrides the faction list's path.
func WithFactionsFile(path string) Option { return func(r *Registry) { r.factionsFile = path } }

// WithGoodsFile overrides the goods catalog's path.
func WithGoodsFile(path string) Option { return func(r *Registry) { r.goodsFile = path } }

// WithBasesFile overrides the base list's path.
func WithBasesFile(path string) Option { return func(r *Registry) { r.basesFile = path } }

// WithResourceFiles overrides the list of resource containers merged for
// string/infocard lookups. Later entries win on ID collisions.
func WithResourceFiles(paths ...string) Option {
	return func(r *Registry) { r.resourceFiles = paths }
}

// Registry owns an install tree and lazily builds the typed entity graph
// from it. Every exported collection is built at most once, on first
// access, behind its own sync.Once (spec.md §5) — so asking only for
// Factions() never pays the cost of walking every system's solar file.
type Registry struct {
	root string

	systemsFile   string
	factionsFile  string
	goodsFile     string
	basesFile     string
	resourceFiles []string

	systemsOnce sync.Once
	systems     *EntitySet[*System]
	systemFiles map[string]string

	factionsOnce sync.Once
	factions     *EntitySet[*Faction]

	goodsOnce    sync.Once
	goods        *EntitySet[Good]
	ships        *EntitySet[*Ship]
	commodities  *EntitySet[*Commodity]
	equipment    *EntitySet[*Equipment]

	basesOnce sync.Once
	bases     *EntitySet[*Base]

	solarsOnce       sync.Once
	solarsBySystem   map[string][]Solar
	zonesBySystem    map[string][]*Zone
	baseSolars       map[string]IsBase
	tradeLaneRingSet *EntitySet[*TradeLaneRing]

	resourcesOnce sync.Once
	resources     *resourceTables
}

// NewRegistry opens an install root. It fails fast only if the root
// itself doesn't exist; missing or malformed individual files surface as
// logged diagnostics and empty collections, since a partial install is
// still useful to query (spec.md §7 KindInstallPathMissing is the one
// error NewRegistry itself returns).
func NewRegistry(root string, opts ...Option) (*Registry, error) {
	r := &Registry{
		root:         root,
		systemsFile:  defaultSystemsFile,
		factionsFile: defaultFactionsFile,
		goodsFile:    defaultGoodsFile,
		basesFile:    defaultBasesFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	if _, err := os.Stat(root); err != nil {
		return nil, newError(KindInstallPathMissing, err).WithContext("root", root)
	}
	return r, nil
}

// Reset points the Registry at a new install root, discarding every
// cached collection so the next access rebuilds from scratch.
func (r *Registry) Reset(root string) error {
	if _, err := os.Stat(root); err != nil {
		return newError(KindInstallPathMissing, err).WithContext("root", root)
	}
	*r = Registry{
		root:          root,
		systemsFile:   r.systemsFile,
		factionsFile:  r.factionsFile,
		goodsFile:     r.goodsFile,
		basesFile:     r.basesFile,
		resourceFiles: r.resourceFiles,
	}
	return nil
}

func (r *Registry) path(rel string) string { return filepath.Join(r.root, rel) }

func (r *Registry) loadSections(rel string) []cfg.Section {
	sections, diags, err := cfg.LoadFile(r.path(rel))
	if err != nil {
		diag.Warn("universe: failed to load file", diag.F("path", rel), diag.F("error", err.Error()))
		return nil
	}
	for _, d := range diags {
		diag.Warn("universe: malformed config line", diag.F("path", rel), diag.F("diagnostic", d.Error()))
	}
	return sections
}

// Systems returns the universe-wide system list.
func (r *Registry) Systems() *EntitySet[*System] {
	r.systemsOnce.Do(r.buildSystems)
	return r.systems
}

func (r *Registry) buildSystems() {
	sections := r.loadSections(r.systemsFile)
	r.systemFiles = make(map[string]string)
	var items []*System
	for _, sec := range sections {
		if sec.Name != "system" {
			continue
		}
		nick, ok := entryString(sec, "nickname")
		if !ok {
			continue
		}
		if file, ok := entryString(sec, "file"); ok {
			r.systemFiles[nick] = file
		}
		items = append(items, &System{
			Common: &Common{
				nickname: nick,
				idsName:  ResourceID(entryInt64(sec, "ids_name", 0)),
				idsInfo:  ResourceID(entryInt64(sec, "ids_info", 0)),
			},
			registry: r,
		})
	}
	r.systems = newEntitySet(items, r.onCollision("system"))
}

// Factions returns the universe-wide faction list.
func (r *Registry) Factions() *EntitySet[*Faction] {
	r.factionsOnce.Do(r.buildFactions)
	return r.factions
}

func (r *Registry) buildFactions() {
	sections := r.loadSections(r.factionsFile)
	var items []*Faction
	for _, sec := range sections {
		if sec.Name != "faction" {
			continue
		}
		nick, ok := entryString(sec, "nickname")
		if !ok {
			continue
		}
		f := &Faction{
			Common: &Common{
				nickname: nick,
				idsName:  ResourceID(entryInt64(sec, "ids_name", 0)),
				idsInfo:  ResourceID(entryInt64(sec, "ids_info", 0)),
			},
			reputation: map[string]float64{},
			registry:   r,
		}
		for _, e := range sec.Entries {
			const prefix = "rep_"
			if len(e.Name) > len(prefix) && e.Name[:len(prefix)] == prefix && len(e.Values) > 0 {
				rep := e.Values[0].Float
				if e.Values[0].Kind == cfg.KindInt {
					rep = float64(e.Values[0].Int)
				}
				f.reputation[e.Name[len(prefix):]] = rep
			}
		}
		items = append(items, f)
	}
	r.factions = newEntitySet(items, r.onCollision("faction"))
}

// Goods returns the universe-wide goods catalog: ships, commodities, and
// equipment alike, queryable uniformly through the Good interface.
func (r *Registry) Goods() *EntitySet[Good] {
	r.goodsOnce.Do(r.buildGoods)
	return r.goods
}

// Ships returns just the Ship subset of the goods catalog.
func (r *Registry) Ships() *EntitySet[*Ship] {
	r.goodsOnce.Do(r.buildGoods)
	return r.ships
}

// Commodities returns just the Commodity subset of the goods catalog.
func (r *Registry) Commodities() *EntitySet[*Commodity] {
	r.goodsOnce.Do(r.buildGoods)
	return r.commodities
}

// Equipment returns just the Equipment subset of the goods catalog.
func (r *Registry) Equipment() *EntitySet[*Equipment] {
	r.goodsOnce.Do(r.buildGoods)
	return r.equipment
}

func (r *Registry) buildGoods() {
	sections := r.loadSections(r.goodsFile)
	var items []Good
	var ships []*Ship
	var commodities []*Commodity
	var equipment []*Equipment
	for _, sec := range sections {
		nick, ok := entryString(sec, "nickname")
		if !ok {
			continue
		}
		common := GoodCommon{
			Common: &Common{
				nickname: nick,
				idsName:  ResourceID(entryInt64(sec, "ids_name", 0)),
				idsInfo:  ResourceID(entryInt64(sec, "ids_info", 0)),
			},
			price:     entryInt64(sec, "price", 0),
			market:    entryBool(sec, "market", false),
			archetype: sec.Name,
		}
		switch sec.Name {
		case "ship":
			ship := &Ship{
				GoodCommon: common,
				hull:       entryInt64(sec, "hull", 0),
				holdSize:   entryInt64(sec, "hold_size", 0),
			}
			items = append(items, ship)
			ships = append(ships, ship)
		case "equipment":
			class, _ := entryString(sec, "class")
			equip := &Equipment{GoodCommon: common, class: class}
			items = append(items, equip)
			equipment = append(equipment, equip)
		default: // "commodity" and anything unrecognized fall back to it
			commodity := &Commodity{
				GoodCommon: common,
				volume:     entryInt64(sec, "volume", 1),
			}
			items = append(items, commodity)
			commodities = append(commodities, commodity)
		}
	}
	r.goods = newEntitySet(items, r.onCollision("good"))
	r.ships = newEntitySet(ships, r.onCollision("ship"))
	r.commodities = newEntitySet(commodities, r.onCollision("commodity"))
	r.equipment = newEntitySet(equipment, r.onCollision("equipment"))
}

func (r *Registry) goodByNickname(nick string) (Good, bool) {
	return r.Goods().Get(nick)
}

// Bases returns the universe-wide base list.
func (r *Registry) Bases() *EntitySet[*Base] {
	r.basesOnce.Do(r.buildBases)
	return r.bases
}

func (r *Registry) buildBases() {
	sections := r.loadSections(r.basesFile)
	var items []*Base
	for _, sec := range sections {
		if sec.Name != "base" {
			continue
		}
		nick, ok := entryString(sec, "nickname")
		if !ok {
			continue
		}
		solarNick, _ := entryString(sec, "solar")
		factionNick, _ := entryString(sec, "faction")
		b := &Base{
			Common: &Common{
				nickname: nick,
				idsName:  ResourceID(entryInt64(sec, "ids_name", 0)),
				idsInfo:  ResourceID(entryInt64(sec, "ids_info", 0)),
			},
			solarNick:   solarNick,
			factionNick: factionNick,
			registry:    r,
		}
		for _, e := range sec.Entries {
			switch e.Name {
			case "sell":
				if line, ok := marketLineFromEntry(e); ok {
					b.sells = append(b.sells, line)
				}
			case "buy":
				if line, ok := marketLineFromEntry(e); ok {
					b.buys = append(b.buys, line)
				}
			}
		}
		items = append(items, b)
	}
	r.bases = newEntitySet(items, r.onCollision("base"))
}

func marketLineFromEntry(e cfg.Entry) (marketLine, bool) {
	if len(e.Values) == 0 || e.Values[0].Kind != cfg.KindString {
		return marketLine{}, false
	}
	price := int64(0)
	if len(e.Values) > 1 && e.Values[1].Kind == cfg.KindInt {
		price = e.Values[1].Int
	}
	return marketLine{goodNick: e.Values[0].Str, price: price}, true
}

func (r *Registry) baseSolarByBase(baseNick string) (IsBase, bool) {
	r.solarsOnce.Do(r.buildSolars)
	b, ok := r.baseSolars[baseNick]
	return b, ok
}

func (r *Registry) tradeLaneRings() *EntitySet[*TradeLaneRing] {
	r.solarsOnce.Do(r.buildSolars)
	return r.tradeLaneRingSet
}

func (r *Registry) solarsIn(systemNick string) []Solar {
	r.solarsOnce.Do(r.buildSolars)
	return r.solarsBySystem[systemNick]
}

func (r *Registry) zonesIn(systemNick string) []*Zone {
	r.solarsOnce.Do(r.buildSolars)
	return r.zonesBySystem[systemNick]
}

// buildSolars walks every system's solar file, constructing each Solar
// per its classified archetype and every Zone, then backfills each
// TradeLaneRing's previous-link (step 5 of spec.md §4.6's build protocol;
// the data only ever names the next link).
func (r *Registry) buildSolars() {
	r.solarsBySystem = make(map[string][]Solar)
	r.zonesBySystem = make(map[string][]*Zone)
	r.baseSolars = make(map[string]IsBase)

	var allRings []*TradeLaneRing
	ringByNick := make(map[string]*TradeLaneRing)

	for _, sys := range r.Systems().All() {
		file, ok := r.systemFiles[sys.nickname]
		if !ok {
			continue
		}
		sections := r.loadSections(file)
		for _, sec := range sections {
			switch sec.Name {
			case "object":
				sol := r.buildSolar(sec, sys.nickname)
				if sol == nil {
					continue
				}
				r.solarsBySystem[sys.nickname] = append(r.solarsBySystem[sys.nickname], sol)
				if ib, ok := sol.(IsBase); ok && ib.BaseNickname() != "" {
					r.baseSolars[ib.BaseNickname()] = ib
				}
				if ring, ok := sol.(*TradeLaneRing); ok {
					allRings = append(allRings, ring)
					ringByNick[ring.nickname] = ring
				}
			case "zone":
				r.zonesBySystem[sys.nickname] = append(r.zonesBySystem[sys.nickname], r.buildZone(sec, sys.nickname))
			}
		}
	}

	for _, ring := range allRings {
		if ring.nextNick == "" {
			continue
		}
		if next, ok := ringByNick[ring.nextNick]; ok {
			next.prevNick = ring.nickname
		} else {
			diag.Warn("universe: dangling trade lane reference",
				diag.F("ring", ring.nickname), diag.F("next", ring.nextNick))
		}
	}

	r.tradeLaneRingSet = newEntitySet(allRings, r.onCollision("solar"))
}

func (r *Registry) buildSolar(sec cfg.Section, systemNick string) Solar {
	nick, ok := entryString(sec, "nickname")
	if !ok {
		return nil
	}
	archetype, _ := entryString(sec, "archetype")
	common := SolarCommon{
		Common: &Common{
			nickname: nick,
			idsName:  ResourceID(entryInt64(sec, "ids_name", 0)),
			idsInfo:  ResourceID(entryInt64(sec, "ids_info", 0)),
		},
		archetype:  archetype,
		systemNick: systemNick,
		registry:   r,
	}
	baseNick, _ := entryString(sec, "base")
	ownerNick, _ := entryString(sec, "reputation")
	radius := entryFloat64(sec, "radius", 0)
	spin := entryVec3(sec, "spin")

	switch classifySolar(archetype) {
	case kindStar:
		return &Star{SolarCommon: common, spheroidCommon: spheroidCommon{radius: radius}}
	case kindPlanet:
		return &Planet{SolarCommon: common, spheroidCommon: spheroidCommon{radius: radius}, spin: spin}
	case kindPlanetaryBase:
		return &PlanetaryBase{
			BaseSolar:      BaseSolar{SolarCommon: common, baseNick: baseNick, ownerNick: ownerNick},
			spheroidCommon: spheroidCommon{radius: radius},
			spin:           spin,
		}
	case kindBaseSolar:
		return &BaseSolar{SolarCommon: common, baseNick: baseNick, ownerNick: ownerNick}
	case kindJump:
		target, _ := entryString(sec, "goto")
		return &Jump{SolarCommon: common, targetNick: target}
	case kindTradeLaneRing:
		next, _ := entryString(sec, "next_ring")
		return &TradeLaneRing{SolarCommon: common, nextNick: next}
	default:
		return &Object{SolarCommon: common}
	}
}

func (r *Registry) buildZone(sec cfg.Section, systemNick string) *Zone {
	nick, _ := entryString(sec, "nickname")
	shape, _ := entryString(sec, "shape")
	return &Zone{
		Common: &Common{
			nickname: nick,
			idsName:  ResourceID(entryInt64(sec, "ids_name", 0)),
			idsInfo:  ResourceID(entryInt64(sec, "ids_info", 0)),
		},
		systemNick: systemNick,
		shape:      shape,
		size:       entryVec3(sec, "size"),
		registry:   r,
	}
}

func (r *Registry) onCollision(kind string) func(string) {
	return func(nickname string) {
		diag.Warn("universe: collision on nickname", diag.F("kind", kind), diag.F("nickname", nickname))
	}
}
