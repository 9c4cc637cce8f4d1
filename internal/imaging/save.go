package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/image-zoom/internal/zoom"
)

// SaveGrid writes g to path as an 8-bit grayscale PNG, creating parent
// directories as needed.
func SaveGrid(path string, g *zoom.Grid) error {
	if g.Empty() {
		return fmt.Errorf("failed to save %s: %w", path, zoom.ErrEmptyGrid)
	}
	return SaveImage(path, g.Image())
}

// SaveImage writes img to path as PNG, creating parent directories as needed.
func SaveImage(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodePNGBase64 encodes img as PNG and returns it base64-encoded, the
// form returned by the server tools.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
