package universe

// Star is the Spheroid at a system's gravitational center. A system may
// have more than one (binary systems appear in the data).
type Star struct {
	SolarCommon
	spheroidCommon
	luminosity float64
}

// Luminosity returns the star's relative brightness. Registry does not
// read a luminosity entry, so it is 0 for every Star the Registry builds.
func (s *Star) Luminosity() float64 { return s.luminosity }
