package board

import "math"

// Axial is a hex grid coordinate in axial form. The third cube coordinate is
// derived: s = -q - r.
type Axial struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// neighborDirections are the six axial offsets, starting east and going
// counter-clockwise.
var neighborDirections = [6]Axial{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// S returns the implicit third cube coordinate.
func (a Axial) S() int {
	return -a.Q - a.R
}

// Add returns a + other.
func (a Axial) Add(other Axial) Axial {
	return Axial{Q: a.Q + other.Q, R: a.R + other.R}
}

// Neighbors returns the six adjacent coordinates.
func (a Axial) Neighbors() [6]Axial {
	var out [6]Axial
	for i, d := range neighborDirections {
		out[i] = a.Add(d)
	}
	return out
}

// Distance returns the hex distance between a and other.
func (a Axial) Distance(other Axial) int {
	return max(abs(a.Q-other.Q), abs(a.R-other.R), abs(a.S()-other.S()))
}

// Ring returns the ring index of a, i.e. its distance from the origin.
func (a Axial) Ring() int {
	return a.Distance(Axial{})
}

// PixelToAxial returns the coordinate of the tile whose hexagon contains the
// board-plane point (x, y) for tiles of circumradius tileRadius.
func PixelToAxial(x, y, tileRadius float64) Axial {
	q := (math.Sqrt(3)/3*x - y/3) / tileRadius
	r := (2.0 / 3 * y) / tileRadius
	return axialRound(q, r)
}

// axialRound rounds fractional axial coordinates to the nearest hex by
// rounding in cube space and fixing up the component with the largest error.
func axialRound(fq, fr float64) Axial {
	fs := -fq - fr
	q, r, s := math.Round(fq), math.Round(fr), math.Round(fs)
	dq, dr, ds := math.Abs(q-fq), math.Abs(r-fr), math.Abs(s-fs)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Axial{Q: int(q), R: int(r)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
