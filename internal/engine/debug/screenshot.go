package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotCapture writes frames to timestamped PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a capture writing prefix_<time>.png files
// into outputDir (the working directory when empty).
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// FromPixels builds a top-down image from bottom-up RGBA rows as returned by
// glReadPixels.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Save encodes img as PNG and returns the file path written.
func (sc *ScreenshotCapture) Save(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := writePNG(file, img); err != nil {
		return "", err
	}
	return filename, nil
}

// writePNG encodes img to w and closes it. A failed close is reported,
// since buffered data may not have reached the disk.
func writePNG(w io.WriteCloser, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		w.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

// Filename returns the path the next capture would be written to.
func (sc *ScreenshotCapture) Filename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.png", sc.prefix, timestamp)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}
