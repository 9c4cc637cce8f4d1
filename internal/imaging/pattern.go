package imaging

import "github.com/ironsheep/image-zoom/internal/zoom"

// Test pattern geometry. Both squares are centred in a PatternSize grid.
const (
	PatternSize       = 100
	PatternBackground = 0
	PatternOuter      = 128
	PatternInner      = 255
)

// TestPattern returns the synthetic input used when no image file can be
// loaded: a 100x100 black grid with a gray square over [25,75) and a white
// square over [40,60) on both axes.
func TestPattern() *zoom.Grid {
	g := zoom.NewGrid(PatternSize, PatternSize)
	fillSquare(g, 25, 75, PatternOuter)
	fillSquare(g, 40, 60, PatternInner)
	return g
}

func fillSquare(g *zoom.Grid, from, to int, v uint8) {
	for y := from; y < to; y++ {
		for x := from; x < to; x++ {
			g.Set(y, x, v)
		}
	}
}
