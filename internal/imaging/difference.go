package imaging

import (
	"fmt"
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-zoom/internal/zoom"
)

// Default endpoints of the difference heatmap ramp.
const (
	DefaultDiffLow  = "#0B1E3F" // no difference
	DefaultDiffHigh = "#FDE725" // largest difference in the pair
)

// DifferenceMap renders |a - b| for two equally sized grids as a heatmap.
//
// Each absolute difference is normalised by the largest difference present
// and mapped onto a ramp from lowHex to highHex, blended in HCL space so the
// perceived lightness grows evenly. Identical grids render entirely in
// lowHex. Empty colour strings select DefaultDiffLow and DefaultDiffHigh.
func DifferenceMap(a, b *zoom.Grid, lowHex, highHex string) (*image.NRGBA, error) {
	if a.Empty() || b.Empty() {
		return nil, zoom.ErrEmptyGrid
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, fmt.Errorf("cannot diff %v with %v: sizes differ", a, b)
	}

	if lowHex == "" {
		lowHex = DefaultDiffLow
	}
	if highHex == "" {
		highHex = DefaultDiffHigh
	}
	low, err := colorful.Hex(lowHex)
	if err != nil {
		return nil, fmt.Errorf("invalid low colour %q: %w", lowHex, err)
	}
	high, err := colorful.Hex(highHex)
	if err != nil {
		return nil, fmt.Errorf("invalid high colour %q: %w", highHex, err)
	}

	maxDiff := 0
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if d := absDiff(a.At(i, j), b.At(i, j)); d > maxDiff {
				maxDiff = d
			}
		}
	}

	// One ramp entry per possible difference value.
	ramp := make([]colorful.Color, maxDiff+1)
	ramp[0] = low
	for d := 1; d <= maxDiff; d++ {
		ramp[d] = low.BlendHcl(high, float64(d)/float64(maxDiff)).Clamped()
	}

	img := image.NewNRGBA(image.Rect(0, 0, a.Cols(), a.Rows()))
	for y := 0; y < a.Rows(); y++ {
		for x := 0; x < a.Cols(); x++ {
			cr, cg, cb := ramp[absDiff(a.At(y, x), b.At(y, x))].RGB255()
			off := img.PixOffset(x, y)
			img.Pix[off+0] = cr
			img.Pix[off+1] = cg
			img.Pix[off+2] = cb
			img.Pix[off+3] = 255
		}
	}
	return img, nil
}
