package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-zoom/internal/zoom"
)

// ZoomResult contains a 2x zoomed image encoded as base64 PNG.
type ZoomResult struct {
	Method       string `json:"method"`
	SourceWidth  int    `json:"source_width"`
	SourceHeight int    `json:"source_height"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	ImageBase64  string `json:"image_base64"`
	MimeType     string `json:"mime_type"`
	SavedPath    string `json:"saved_path,omitempty"`
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// CropGray extracts a rectangular region from an image and converts it to a
// grayscale grid ready for zooming.
func CropGray(img image.Image, r Region) (*zoom.Grid, error) {
	bounds := img.Bounds()

	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return toGrid(imaging.Crop(img, image.Rect(r.X1, r.Y1, r.X2, r.Y2))), nil
}

// Zoom applies method to g and packages the result for the server. When
// savePath is non-empty the zoomed grid is also written there as PNG.
func Zoom(g *zoom.Grid, method zoom.Method, savePath string) (*ZoomResult, error) {
	out, err := zoom.Apply(method, g)
	if err != nil {
		return nil, err
	}

	encoded, err := EncodePNGBase64(out.Image())
	if err != nil {
		return nil, fmt.Errorf("failed to encode zoomed image: %w", err)
	}

	if savePath != "" {
		if err := SaveGrid(savePath, out); err != nil {
			return nil, err
		}
	}

	return &ZoomResult{
		Method:       method.String(),
		SourceWidth:  g.Cols(),
		SourceHeight: g.Rows(),
		Width:        out.Cols(),
		Height:       out.Rows(),
		ImageBase64:  encoded,
		MimeType:     "image/png",
		SavedPath:    savePath,
	}, nil
}
