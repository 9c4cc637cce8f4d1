package zoom

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// ErrEmptyGrid is returned when a transform receives a nil grid or a grid
// with zero rows or columns.
var ErrEmptyGrid = errors.New("zoom: grid has zero rows or columns")

// Grid is a 2-D array of 8-bit intensity samples stored row-major.
//
// The zero value is an empty grid. Use NewGrid, FromRows or FromImage to
// build a usable one.
type Grid struct {
	rows int
	cols int
	pix  []uint8
}

// NewGrid allocates a rows x cols grid with every sample set to 0.
//
// Negative dimensions are treated as 0, which yields an empty grid that the
// transforms reject with ErrEmptyGrid.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		rows: rows,
		cols: cols,
		pix:  make([]uint8, rows*cols),
	}
}

// FromRows builds a grid from a slice of rows. All rows must have the same
// length.
//
// Example:
//
//	g, err := zoom.FromRows([][]uint8{
//	    {10, 20},
//	    {30, 40},
//	})
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}
	cols := len(rows[0])
	g := NewGrid(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d samples, want %d", i, len(row), cols)
		}
		copy(g.pix[i*cols:(i+1)*cols], row)
	}
	return g, nil
}

// FromImage converts any image to a grid of grayscale samples.
//
// *image.Gray sources are copied directly. Other images are converted with
// color.GrayModel, which applies ITU-R BT.601 luma weights
// (0.299*R + 0.587*G + 0.114*B). The image origin is mapped to (0, 0).
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dy(), b.Dx())

	gray, ok := img.(*image.Gray)
	if !ok {
		gray = image.NewGray(b)
		draw.Draw(gray, b, img, b.Min, draw.Src)
	}

	for y := 0; y < g.rows; y++ {
		off := gray.PixOffset(b.Min.X, b.Min.Y+y)
		copy(g.pix[y*g.cols:(y+1)*g.cols], gray.Pix[off:off+g.cols])
	}
	return g
}

// Rows returns the number of rows (image height).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (image width).
func (g *Grid) Cols() int { return g.cols }

// Empty reports whether the grid is nil or has no samples.
func (g *Grid) Empty() bool {
	return g == nil || g.rows == 0 || g.cols == 0
}

// At returns the sample at (row, col). It panics if the coordinate is out of
// range.
func (g *Grid) At(row, col int) uint8 {
	g.check(row, col)
	return g.pix[row*g.cols+col]
}

// Set stores v at (row, col). It panics if the coordinate is out of range.
func (g *Grid) Set(row, col int, v uint8) {
	g.check(row, col)
	g.pix[row*g.cols+col] = v
}

func (g *Grid) check(row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("zoom: (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}

// Row returns a copy of row i.
func (g *Grid) Row(i int) []uint8 {
	if i < 0 || i >= g.rows {
		panic(fmt.Sprintf("zoom: row %d outside %dx%d grid", i, g.rows, g.cols))
	}
	out := make([]uint8, g.cols)
	copy(out, g.pix[i*g.cols:(i+1)*g.cols])
	return out
}

// Samples returns a copy of all samples as a slice of rows.
func (g *Grid) Samples() [][]uint8 {
	out := make([][]uint8, g.rows)
	for i := range out {
		out[i] = g.Row(i)
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, pix: make([]uint8, len(g.pix))}
	copy(c.pix, g.pix)
	return c
}

// Equal reports whether two grids have the same dimensions and samples.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Crop returns a copy of the region [row0,row1) x [col0,col1).
func (g *Grid) Crop(row0, col0, row1, col1 int) (*Grid, error) {
	if row0 < 0 || col0 < 0 || row1 > g.rows || col1 > g.cols {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside %dx%d grid",
			row0, col0, row1, col1, g.rows, g.cols)
	}
	if row0 >= row1 || col0 >= col1 {
		return nil, fmt.Errorf("invalid crop region: row0 must be < row1, col0 must be < col1")
	}
	out := NewGrid(row1-row0, col1-col0)
	for i := 0; i < out.rows; i++ {
		src := (row0+i)*g.cols + col0
		copy(out.pix[i*out.cols:(i+1)*out.cols], g.pix[src:src+out.cols])
	}
	return out, nil
}

// Image returns the grid as a new *image.Gray with bounds (0,0)-(cols,rows).
func (g *Grid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.cols, g.rows))
	for y := 0; y < g.rows; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+g.cols], g.pix[y*g.cols:(y+1)*g.cols])
	}
	return img
}

// String returns a short description such as "4x4 grid".
func (g *Grid) String() string {
	if g == nil {
		return "<nil grid>"
	}
	return fmt.Sprintf("%dx%d grid", g.rows, g.cols)
}
