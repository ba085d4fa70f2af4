package debug

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/geometry"
)

func TestFromPixelsFlips(t *testing.T) {
	// Two rows: bottom row red, top row blue, as glReadPixels returns them.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 1))

	_, err = FromPixels(pixels, 2, 2)
	assert.Error(t, err)
}

func TestSaveWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "hexboard")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(2, 1, color.RGBA{G: 255, A: 255})

	path, err := sc.Save(img)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hexboard_2024-05-01_12-30-00.000.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	_, g, _, _ := decoded.At(2, 1).RGBA()
	assert.Equal(t, uint32(0xffff), g)
}

type closeFailer struct {
	bytes.Buffer
	closed bool
}

var errDiskFull = errors.New("disk full")

func (c *closeFailer) Close() error {
	c.closed = true
	return errDiskFull
}

func TestWritePNGReportsCloseError(t *testing.T) {
	w := &closeFailer{}
	err := writePNG(w, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.ErrorContains(t, err, "closing file")
	assert.True(t, w.closed)
	assert.NotZero(t, w.Len(), "image encoded before close")
}

func TestSaveFailsWhenOutputDirIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "shots")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	sc := NewScreenshotCapture(blocker, "hexboard")
	path, err := sc.Save(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
	assert.Empty(t, path)
}

func TestBoxLines(t *testing.T) {
	b := geometry.Bounds{Min: mgl32.Vec3{-1, 0, -2}, Max: mgl32.Vec3{1, 3, 2}}
	pts := BoxLines(b)
	require.Len(t, pts, 24)

	for i := 0; i < len(pts); i += 2 {
		d := pts[i+1].Sub(pts[i])
		nonZero := 0
		for _, c := range d {
			if c != 0 {
				nonZero++
			}
		}
		assert.Equal(t, 1, nonZero, "edge %d must be axis aligned", i/2)
	}
}
