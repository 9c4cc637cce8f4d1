package imaging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ironsheep/image-zoom/internal/zoom"
)

// Figure layout: one 5in x 5in panel per grid at 150 DPI.
const (
	FigurePanelWidth = 5 * vg.Inch
	FigureHeight     = 5 * vg.Inch
	FigureDPI        = 150
)

// Panel is one titled grid in a side-by-side figure.
type Panel struct {
	Title string
	Grid  *zoom.Grid
}

// ComparisonPanels returns the three panels of the zoom comparison figure:
// the original followed by the replication and interpolation results.
func ComparisonPanels(original, replicated, interpolated *zoom.Grid) []Panel {
	return []Panel{
		{Title: "Original Image", Grid: original},
		{Title: zoom.Replication.Title(), Grid: replicated},
		{Title: zoom.Interpolation.Title(), Grid: interpolated},
	}
}

// RenderFigure draws panels left to right on a single canvas. Each panel is
// titled "<Title>\n<rows>x<cols>" and drawn in gray without axes.
func RenderFigure(panels []Panel) (*vgimg.Canvas, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("figure needs at least one panel")
	}

	row := make([]*plot.Plot, len(panels))
	for i, p := range panels {
		if p.Grid.Empty() {
			return nil, fmt.Errorf("panel %q: %w", p.Title, zoom.ErrEmptyGrid)
		}
		pl := plot.New()
		pl.Title.Text = fmt.Sprintf("%s\n%dx%d", p.Title, p.Grid.Rows(), p.Grid.Cols())
		pl.HideAxes()
		pl.Add(plotter.NewImage(p.Grid.Image(), 0, 0, float64(p.Grid.Cols()), float64(p.Grid.Rows())))
		row[i] = pl
	}
	plots := [][]*plot.Plot{row}

	c := vgimg.NewWith(
		vgimg.UseWH(FigurePanelWidth*vg.Length(len(panels)), FigureHeight),
		vgimg.UseDPI(FigureDPI),
	)
	dc := draw.New(c)

	t := draw.Tiles{
		Rows:      1,
		Cols:      len(panels),
		PadX:      5 * vg.Millimeter,
		PadY:      5 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}

	canvases := plot.Align(plots, t, dc)
	for j := range row {
		row[j].Draw(canvases[0][j])
	}
	return c, nil
}

// FigurePNG renders panels and returns the PNG bytes.
func FigurePNG(panels []Panel) ([]byte, error) {
	c, err := RenderFigure(panels)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode figure: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFigure renders panels and saves the PNG at path.
func WriteFigure(path string, panels []Panel) error {
	data, err := FigurePNG(panels)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write figure: %w", err)
	}
	return nil
}
