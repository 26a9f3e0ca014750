package universe

// PlanetaryBase is both a BaseSolar (it hosts a surface Base) and a
// Planet (it rotates and has a radius). Go has no multiple inheritance,
// so rather than duplicating BaseSolar's and Planet's fields, PlanetaryBase
// embeds BaseSolar for its base-hosting half and spheroidCommon plus its
// own spin for its planet half; the promoted methods from both satisfy
// IsBase and IsPlanet without restating any logic (spec.md §9).
type PlanetaryBase struct {
	BaseSolar
	spheroidCommon
	spin [3]float64
}

// Spin returns the planet's axial rotation vector.
func (p *PlanetaryBase) Spin() [3]float64 { return p.spin }
