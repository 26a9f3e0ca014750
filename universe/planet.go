package universe

// Planet is a Spheroid that rotates and, unlike a bare Star, can host a
// surface Base (see PlanetaryBase).
type Planet struct {
	SolarCommon
	spheroidCommon
	spin [3]float64
}

// Spin returns the planet's axial rotation vector.
func (p *Planet) Spin() [3]float64 { return p.spin }

// IsPlanet is implemented by Planet and, via embedding, PlanetaryBase.
type IsPlanet interface {
	Spheroid
	Spin() [3]float64
}
