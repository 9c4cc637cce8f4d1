package imaging

import (
	"fmt"

	"github.com/ironsheep/image-zoom/internal/zoom"
)

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
//
// X is the column and Y the row, both 0-based from the top-left corner.
type LabeledPoint struct {
	X     int    // Column (0-based)
	Y     int    // Row (0-based)
	Label string // Optional descriptive label for this point
}

// SampleValue is the intensity found at one sampled point.
type SampleValue struct {
	Label string `json:"label,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Value uint8  `json:"value"`
	Hex   string `json:"hex"` // "#VVVVVV", the gray level as an RGB hex colour
}

// SampleResult contains samples from multiple points, in input order.
type SampleResult struct {
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Samples []SampleValue `json:"samples"`
}

// SampleValues reads the intensity at every requested point of g.
//
// On error no partial results are returned.
//
// # Example
//
//	points := []imaging.LabeledPoint{
//	    {X: 0, Y: 0, Label: "corner"},
//	    {X: 1, Y: 0, Label: "midpoint"},
//	}
//	result, err := imaging.SampleValues(zoomed, points)
func SampleValues(g *zoom.Grid, points []LabeledPoint) (*SampleResult, error) {
	results := make([]SampleValue, 0, len(points))

	for _, p := range points {
		if p.X < 0 || p.X >= g.Cols() || p.Y < 0 || p.Y >= g.Rows() {
			return nil, fmt.Errorf("failed to sample point (%d,%d): outside %dx%d image",
				p.X, p.Y, g.Cols(), g.Rows())
		}
		v := g.At(p.Y, p.X)
		results = append(results, SampleValue{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Value: v,
			Hex:   fmt.Sprintf("#%02X%02X%02X", v, v, v),
		})
	}

	return &SampleResult{
		Width:   g.Cols(),
		Height:  g.Rows(),
		Samples: results,
	}, nil
}
