package universe

// System is a single star system: a named container of Solar contents and
// Zones. The contents are resolved lazily from the Registry rather than
// held directly, so that building a System doesn't require its Solars to
// exist yet (they're parsed from a separate per-system file, after the
// universe-wide system list).
type System struct {
	*Common
	registry *Registry
}

// Contents returns every Solar in the system, in inventory order.
func (s *System) Contents() []Solar {
	return s.registry.solarsIn(s.nickname)
}

// Solars is an alias for Contents kept for readability at call sites that
// don't care it returns the same thing.
func (s *System) Solars() []Solar { return s.Contents() }

// Stars returns the system's Spheroid stars.
func (s *System) Stars() []*Star {
	var out []*Star
	for _, sol := range s.Contents() {
		if star, ok := sol.(*Star); ok {
			out = append(out, star)
		}
	}
	return out
}

// Planets returns every IsPlanet in the system: bare Planets and
// PlanetaryBases alike.
func (s *System) Planets() []IsPlanet {
	var out []IsPlanet
	for _, sol := range s.Contents() {
		if p, ok := sol.(IsPlanet); ok {
			out = append(out, p)
		}
	}
	return out
}

// Jumps returns the system's outbound Jump gates and holes.
func (s *System) Jumps() []*Jump {
	var out []*Jump
	for _, sol := range s.Contents() {
		if j, ok := sol.(*Jump); ok {
			out = append(out, j)
		}
	}
	return out
}

// BaseSolars returns every Solar in the system that hosts a Base:
// standalone BaseSolars and PlanetaryBases alike.
func (s *System) BaseSolars() []IsBase {
	var out []IsBase
	for _, sol := range s.Contents() {
		if b, ok := sol.(IsBase); ok {
			out = append(out, b)
		}
	}
	return out
}

// Zones returns the system's zones, in inventory order.
func (s *System) Zones() []*Zone {
	return s.registry.zonesIn(s.nickname)
}
