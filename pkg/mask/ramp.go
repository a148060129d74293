package mask

// Ramp maps each mask level to a blend weight toward the bottom color.
// A level marked transparent is not drawn at all.
type Ramp struct {
	Weights     [Levels]float64
	Transparent [Levels]bool
}

// Linear spreads the four levels evenly from the top color to the bottom
// color.
var Linear = Ramp{Weights: [Levels]float64{0, 1.0 / 3, 2.0 / 3, 1}}

// Keyed treats level 0 as a hole and spreads the remaining three levels
// from the top color to the bottom color.
var Keyed = Ramp{
	Weights:     [Levels]float64{0, 0, 0.5, 1},
	Transparent: [Levels]bool{true, false, false, false},
}

// Weight returns the blend weight for level and whether the pixel is drawn.
func (r Ramp) Weight(level uint8) (t float64, draw bool) {
	level &= levelMask
	return r.Weights[level], !r.Transparent[level]
}
