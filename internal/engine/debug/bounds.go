// Package debug provides debug visualization and capture utilities.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
)

// BoxLines returns the 12 edges of b as a line list (24 points).
func BoxLines(b geometry.Bounds) []mgl32.Vec3 {
	lo, hi := b.Min, b.Max
	c := [8]mgl32.Vec3{
		{lo[0], lo[1], lo[2]}, {hi[0], lo[1], lo[2]}, {hi[0], lo[1], hi[2]}, {lo[0], lo[1], hi[2]},
		{lo[0], hi[1], lo[2]}, {hi[0], hi[1], lo[2]}, {hi[0], hi[1], hi[2]}, {lo[0], hi[1], hi[2]},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
	}
	pts := make([]mgl32.Vec3, 0, 24)
	for _, e := range edges {
		pts = append(pts, c[e[0]], c[e[1]])
	}
	return pts
}
