package board

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRadius = 7.0

func TestGenerate_TileCount(t *testing.T) {
	for rings := 0; rings <= 10; rings++ {
		b, err := Generate(testRadius, rings, NewSource(1))
		require.NoError(t, err)
		assert.Equal(t, 3*rings*rings+3*rings+1, b.Len(), "rings=%d", rings)
		assert.Equal(t, TileCount(rings), b.Len(), "rings=%d", rings)
	}
}

func TestGenerate_AxialInvariant(t *testing.T) {
	const rings = 6
	b, err := Generate(testRadius, rings, NewSource(2))
	require.NoError(t, err)

	seen := make(map[Axial]bool)
	for _, tile := range b.Tiles() {
		c := tile.Coord
		assert.Equal(t, -c.Q-c.R, c.S())
		assert.LessOrEqual(t, max(abs(c.Q), abs(c.R), abs(c.S())), rings, "coord %+v outside region", c)
		assert.False(t, seen[c], "duplicate coord %+v", c)
		seen[c] = true
	}

	// Every coordinate in the region must be present.
	for q := -rings; q <= rings; q++ {
		for r := -rings; r <= rings; r++ {
			c := Axial{Q: q, R: r}
			if c.Ring() <= rings {
				assert.True(t, seen[c], "missing coord %+v", c)
			}
		}
	}
}

func TestGenerate_SingleTile(t *testing.T) {
	b, err := Generate(testRadius, 0, NewSource(3))
	require.NoError(t, err)
	require.Equal(t, 1, b.Len())

	tile := b.Tile(0)
	assert.Equal(t, Axial{}, tile.Coord)
	assert.Equal(t, Position{}, tile.Position)
	assert.True(t, tile.Kind.Valid())
}

func TestGenerate_FirstRing(t *testing.T) {
	b, err := Generate(testRadius, 1, NewSource(4))
	require.NoError(t, err)
	require.Equal(t, 7, b.Len())

	wantOrder := []Axial{
		{Q: -1, R: 0}, {Q: -1, R: 1},
		{Q: 0, R: -1}, {Q: 0, R: 0}, {Q: 0, R: 1},
		{Q: 1, R: -1}, {Q: 1, R: 0},
	}
	apothem := testRadius * math.Sqrt(3) / 2

	for i, tile := range b.Tiles() {
		assert.Equal(t, wantOrder[i], tile.Coord, "index %d", i)
		assert.Zero(t, tile.Position.Z)
		if tile.Coord != (Axial{}) {
			// Adjacent centers are two apothems apart.
			d := math.Hypot(tile.Position.X, tile.Position.Y)
			assert.InDelta(t, 2*apothem, d, 1e-9, "coord %+v", tile.Coord)
		}
	}

	east := b.Tile(6)
	assert.InDelta(t, 7*math.Sqrt(3), east.Position.X, 1e-9)
	assert.InDelta(t, 0, east.Position.Y, 1e-9)

	north := b.Tile(4) // q=0, r=1
	assert.InDelta(t, 3.5*math.Sqrt(3), north.Position.X, 1e-9)
	assert.InDelta(t, 10.5, north.Position.Y, 1e-9)

	south := b.Tile(2) // q=0, r=-1
	assert.InDelta(t, -3.5*math.Sqrt(3), south.Position.X, 1e-9)
	assert.InDelta(t, -10.5, south.Position.Y, 1e-9)
}

func TestGenerate_SecondRingRows(t *testing.T) {
	b, err := Generate(testRadius, 2, NewSource(5))
	require.NoError(t, err)

	rows := make(map[float64]int)
	for _, tile := range b.Tiles() {
		rows[tile.Position.Y]++
	}
	assert.Equal(t, 3, rows[21])
	assert.Equal(t, 3, rows[-21])
	assert.Equal(t, 4, rows[10.5])
	assert.Equal(t, 5, rows[0])
}

func TestGenerate_KindsUniform(t *testing.T) {
	const trials = 200
	counts := make(map[Kind]int)
	total := 0
	for trial := 0; trial < trials; trial++ {
		b, err := Generate(testRadius, 6, NewSource(uint64(trial)+1))
		require.NoError(t, err)
		for _, tile := range b.Tiles() {
			require.True(t, tile.Kind.Valid(), "invalid kind %d", tile.Kind)
			counts[tile.Kind]++
			total++
		}
	}

	require.Equal(t, trials*127, total)
	expected := float64(total) / KindCount
	for _, k := range Kinds() {
		assert.InEpsilon(t, expected, float64(counts[k]), 0.05, "kind %s", k)
	}
}

func TestGenerate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		rings  int
		src    Source
	}{
		{"zero radius", 0, 3, NewSource(1)},
		{"negative radius", -7, 3, NewSource(1)},
		{"nan radius", math.NaN(), 3, NewSource(1)},
		{"infinite radius", math.Inf(1), 3, NewSource(1)},
		{"negative rings", 7, -1, NewSource(1)},
		{"too many rings", 7, MaxRings + 1, NewSource(1)},
		{"overflowing rings", 7, 1 << 31, NewSource(1)},
		{"nil source", 7, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Generate(tt.radius, tt.rings, tt.src)
			assert.Nil(t, b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	a, err := Generate(testRadius, 4, NewSource(42))
	require.NoError(t, err)
	b, err := Generate(testRadius, 4, NewSource(42))
	require.NoError(t, err)
	assert.Equal(t, a.Tiles(), b.Tiles())

	c, err := Generate(testRadius, 4, NewSource(43))
	require.NoError(t, err)
	for i := range a.Tiles() {
		assert.Equal(t, a.Tile(i).Position, c.Tile(i).Position)
		assert.Equal(t, a.Tile(i).Coord, c.Tile(i).Coord)
	}
}

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func TestGenerate_UsesInjectedSource(t *testing.T) {
	b, err := Generate(testRadius, 2, fixedSource(KindBrick))
	require.NoError(t, err)
	for _, tile := range b.Tiles() {
		assert.Equal(t, KindBrick, tile.Kind)
	}
	assert.Equal(t, b.Len(), b.Histogram()[KindBrick])
	assert.Zero(t, b.Histogram()[KindGrass])
}

func TestBoard_TilesReturnsCopy(t *testing.T) {
	b, err := Generate(testRadius, 1, NewSource(7))
	require.NoError(t, err)

	tiles := b.Tiles()
	tiles[0].Position.X = 1000
	assert.NotEqual(t, 1000.0, b.Tile(0).Position.X)
}

func TestBoard_Bounds(t *testing.T) {
	b, err := Generate(testRadius, 3, NewSource(8))
	require.NoError(t, err)

	lo, hi := b.Bounds()
	assert.InDelta(t, -31.5, lo.Y, 1e-9)
	assert.InDelta(t, 31.5, hi.Y, 1e-9)
	assert.InDelta(t, -3*7*math.Sqrt(3), lo.X, 1e-9)
	assert.InDelta(t, 3*7*math.Sqrt(3), hi.X, 1e-9)
	assert.Equal(t, testRadius, b.TileRadius())
	assert.Equal(t, 3, b.Rings())
}

func TestTileCount_OutOfRange(t *testing.T) {
	assert.Zero(t, TileCount(-1))
	assert.Zero(t, TileCount(MaxRings+1))
	assert.Zero(t, TileCount(1<<31))
	assert.Equal(t, 3*MaxRings*MaxRings+3*MaxRings+1, TileCount(MaxRings))
}

func TestPixelToAxial_RoundTrip(t *testing.T) {
	b, err := Generate(testRadius, 4, NewSource(11))
	require.NoError(t, err)

	apothem := testRadius * math.Sqrt(3) / 2
	for _, tile := range b.Tiles() {
		p := tile.Position
		assert.Equal(t, tile.Coord, PixelToAxial(p.X, p.Y, testRadius))

		// Points just inside each edge midpoint stay in the same hexagon.
		for k := 0; k < 6; k++ {
			a := float64(k) * math.Pi / 3
			x := p.X + 0.95*apothem*math.Cos(a)
			y := p.Y + 0.95*apothem*math.Sin(a)
			assert.Equal(t, tile.Coord, PixelToAxial(x, y, testRadius), "tile %v edge %d", tile.Coord, k)
		}
	}
}

func TestBoard_TileAt(t *testing.T) {
	b, err := Generate(testRadius, 2, NewSource(12))
	require.NoError(t, err)

	apothem := testRadius * math.Sqrt(3) / 2
	tile, i, ok := b.TileAt(2*apothem, 0)
	require.True(t, ok)
	assert.Equal(t, Axial{Q: 1, R: 0}, tile.Coord)
	assert.Equal(t, b.Tile(i), tile)

	_, i, ok = b.TileAt(100*testRadius, 0)
	assert.False(t, ok)
	assert.Equal(t, -1, i)

	for want, tile := range b.Tiles() {
		got, ok := b.Index(tile.Coord)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestBoard_Neighbors(t *testing.T) {
	b, err := Generate(testRadius, 2, NewSource(4))
	require.NoError(t, err)

	center, ok := b.Index(Axial{})
	require.True(t, ok)
	assert.Len(t, b.Neighbors(center), 6)

	corner, ok := b.Index(Axial{Q: 2, R: 0})
	require.True(t, ok)
	got := b.Neighbors(corner)
	assert.Len(t, got, 3)
	for _, n := range got {
		assert.Equal(t, 1, n.Coord.Distance(Axial{Q: 2, R: 0}))
	}

	edge, ok := b.Index(Axial{Q: 1, R: 1})
	require.True(t, ok)
	assert.Len(t, b.Neighbors(edge), 4)
}

func TestBoard_Histogram(t *testing.T) {
	b, err := Generate(testRadius, 3, NewSource(21))
	require.NoError(t, err)

	hist := b.Histogram()
	total := 0
	for _, k := range Kinds() {
		total += hist[k]
	}
	assert.Equal(t, b.Len(), total)

	// The result is a snapshot; callers may keep and modify it.
	hist[KindGrass] = -1
	assert.NotEqual(t, -1, b.Histogram()[KindGrass])
}
