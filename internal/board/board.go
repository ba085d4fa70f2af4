// Package board lays out the hexagonal tile board.
//
// Tiles are enumerated in axial coordinates over a hexagonal region of a
// given ring count and mapped to plane positions with the axial-to-pixel
// transform (see https://www.redblobgames.com/grids/hexagons/). Each tile
// gets a kind drawn uniformly from the injected random source.
package board

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// ErrInvalidArgument is returned for geometry that cannot be laid out.
var ErrInvalidArgument = errors.New("board: invalid argument")

// Source supplies the randomness used for kind assignment.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source for the given seed.
// A zero seed is replaced with one derived from the current time.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Position is a tile center in the board plane. Z is 0 until the caller
// applies a board-level transform.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Tile is one laid-out board cell.
type Tile struct {
	Coord    Axial    `json:"coord" yaml:"coord"`
	Position Position `json:"position" yaml:"position"`
	Kind     Kind     `json:"kind" yaml:"kind"`
}

// Board is an immutable, ordered set of tiles.
type Board struct {
	tileRadius float64
	rings      int
	tiles      []Tile
	index      map[Axial]int
}

// MaxRings is the largest ring count Generate accepts (about 3.1M tiles).
const MaxRings = 1024

// TileCount returns the number of tiles in a board of the given ring count,
// or 0 when no board can be generated for it.
func TileCount(rings int) int {
	if rings < 0 || rings > MaxRings {
		return 0
	}
	return 3*rings*rings + 3*rings + 1
}

// Generate lays out a board of circumradius tileRadius with the given number
// of rings around the center tile. Tiles are returned q-major, then r.
func Generate(tileRadius float64, rings int, src Source) (*Board, error) {
	if !(tileRadius > 0) || math.IsInf(tileRadius, 1) {
		return nil, fmt.Errorf("%w: tile radius must be positive and finite, got %v", ErrInvalidArgument, tileRadius)
	}
	if rings < 0 {
		return nil, fmt.Errorf("%w: ring count must be non-negative, got %d", ErrInvalidArgument, rings)
	}
	if rings > MaxRings {
		return nil, fmt.Errorf("%w: ring count %d too large (max %d)", ErrInvalidArgument, rings, MaxRings)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}

	// Apothem, and the side length (equal to the circumradius for a hexagon).
	centerToEdge := tileRadius * math.Sqrt(3) / 2
	edgeLength := tileRadius

	tiles := make([]Tile, 0, TileCount(rings))
	for q := -rings; q <= rings; q++ {
		for r := -rings; r <= rings; r++ {
			coord := Axial{Q: q, R: r}
			if abs(coord.S()) > rings {
				continue
			}
			tiles = append(tiles, Tile{
				Coord: coord,
				Position: Position{
					X: (float64(q) + float64(r)/2) * centerToEdge * 2,
					Y: float64(r) * edgeLength * 1.5,
				},
			})
		}
	}

	for i := range tiles {
		tiles[i].Kind = Kind(src.IntN(KindCount))
	}

	index := make(map[Axial]int, len(tiles))
	for i, t := range tiles {
		index[t.Coord] = i
	}

	return &Board{tileRadius: tileRadius, rings: rings, tiles: tiles, index: index}, nil
}

// TileRadius returns the circumradius the board was laid out with.
func (b *Board) TileRadius() float64 {
	return b.tileRadius
}

// Rings returns the ring count.
func (b *Board) Rings() int {
	return b.rings
}

// Len returns the number of tiles.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Tile returns the i-th tile in enumeration order.
func (b *Board) Tile(i int) Tile {
	return b.tiles[i]
}

// Index returns the enumeration index of the tile at a.
func (b *Board) Index(a Axial) (int, bool) {
	i, ok := b.index[a]
	return i, ok
}

// TileAt returns the tile whose hexagon contains the board-plane point (x, y).
func (b *Board) TileAt(x, y float64) (Tile, int, bool) {
	i, ok := b.Index(PixelToAxial(x, y, b.tileRadius))
	if !ok {
		return Tile{}, -1, false
	}
	return b.tiles[i], i, true
}

// Neighbors returns the on-board tiles adjacent to tile i, in direction order.
// Edge tiles have fewer than six.
func (b *Board) Neighbors(i int) []Tile {
	var out []Tile
	for _, a := range b.tiles[i].Coord.Neighbors() {
		if j, ok := b.index[a]; ok {
			out = append(out, b.tiles[j])
		}
	}
	return out
}

// Tiles returns a copy of the tile sequence.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Histogram counts tiles per kind. Every kind is present in the result.
func (b *Board) Histogram() map[Kind]int {
	counts := make(map[Kind]int, KindCount)
	for _, k := range Kinds() {
		counts[k] = 0
	}
	for _, t := range b.tiles {
		counts[t.Kind]++
	}
	return counts
}

// Bounds returns the smallest and largest tile centers on each axis.
func (b *Board) Bounds() (lo, hi Position) {
	if len(b.tiles) == 0 {
		return Position{}, Position{}
	}
	lo, hi = b.tiles[0].Position, b.tiles[0].Position
	for _, t := range b.tiles[1:] {
		lo.X = min(lo.X, t.Position.X)
		lo.Y = min(lo.Y, t.Position.Y)
		hi.X = max(hi.X, t.Position.X)
		hi.Y = max(hi.Y, t.Position.Y)
	}
	return lo, hi
}
