package universe

// Spheroid is implemented by the celestial-body members of the Solar
// hierarchy: Star and Planet.
type Spheroid interface {
	Solar
	Radius() float64
}

// spheroidCommon holds the fields shared by Star and Planet. It isn't
// itself a full SolarCommon-style hierarchy node with its own identity
// accessor, since nothing ever needs to hold a bare "Spheroid that is
// neither a Star nor a Planet" — the interface exists purely so callers
// can write radius-generic code.
type spheroidCommon struct {
	radius float64
}

func (s spheroidCommon) Radius() float64 { return s.radius }
