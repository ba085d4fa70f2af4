package assets

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/ElliotMtb/battlefield-hexagons/internal/board"
	"github.com/ElliotMtb/battlefield-hexagons/internal/engine/texture"
)

// TexturePaths binds every tile kind to one image path.
type TexturePaths map[board.Kind]string

// DefaultTexturePaths is the one-to-one kind to image table.
func DefaultTexturePaths() TexturePaths {
	return TexturePaths{
		board.KindGrass:  "images/grass.png",
		board.KindForest: "images/forest.png",
		board.KindWheat:  "images/wheat.png",
		board.KindBrick:  "images/brick.png",
		board.KindStone:  "images/stone.png",
	}
}

// ParseTexturePaths overlays a name-keyed table (as found in config files)
// on the defaults.
func ParseTexturePaths(byName map[string]string) (TexturePaths, error) {
	paths := DefaultTexturePaths()
	for name, p := range byName {
		k, err := board.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("texture table: %w", err)
		}
		if p == "" {
			return nil, fmt.Errorf("texture table: empty path for %s", k)
		}
		paths[k] = p
	}
	return paths, nil
}

// fallback colors for missing textures
var (
	checkerA = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	checkerB = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// FallbackTexture returns the checkerboard used when an image is missing.
func FallbackTexture() *image.RGBA {
	return texture.Checker(64, 8, checkerA, checkerB)
}

// LoadTexture reads and decodes one image into upload-ready RGBA.
func (m *Manager) LoadTexture(name string) (*image.RGBA, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	img, _, err := texture.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", name, err)
	}
	return texture.ToRGBA(img, texture.MaxSize), nil
}

// TileTextures loads the image for every kind. A kind whose image cannot be
// read or decoded gets the fallback checkerboard and a warning, so the board
// always renders. The returned count is the number of fallbacks used.
func (m *Manager) TileTextures(paths TexturePaths) (map[board.Kind]*image.RGBA, int) {
	out := make(map[board.Kind]*image.RGBA, board.KindCount)
	fallbacks := 0
	for _, k := range board.Kinds() {
		p, ok := paths[k]
		if !ok {
			m.log.Warn("no texture bound to tile kind", zap.Stringer("kind", k))
			out[k] = FallbackTexture()
			fallbacks++
			continue
		}
		img, err := m.LoadTexture(p)
		if err != nil {
			m.log.Warn("tile texture unavailable, using fallback",
				zap.Stringer("kind", k), zap.String("path", p), zap.Error(err))
			out[k] = FallbackTexture()
			fallbacks++
			continue
		}
		m.log.Debug("tile texture ready", zap.Stringer("kind", k),
			zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
		out[k] = img
	}
	return out, fallbacks
}
