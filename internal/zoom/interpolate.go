package zoom

import (
	"gonum.org/v1/gonum/mat"
)

// Interpolate zooms g by 2x using linear interpolation.
//
// # Algorithm
//
//  1. Horizontal pass: build a rows x 2*cols intermediate. Column 2j holds
//     the original sample; column 2j+1 holds (v[i,j] + v[i,j+1]) / 2 in
//     floating point. The last column has no right neighbour and repeats
//     v[i,cols-1].
//
//  2. Vertical pass: build the 2*rows x 2*cols result from the intermediate.
//     Row 2i holds intermediate row i; row 2i+1 holds the average of
//     intermediate rows i and i+1. The last row repeats.
//
//  3. Every sample is truncated (not rounded) back to uint8.
//
// For the 2x2 input [[10 20] [30 40]] the result is:
//
//	10 15 20 20
//	20 25 30 30
//	30 35 40 40
//	30 35 40 40
//
// g is not modified. Returns ErrEmptyGrid if g is nil or has a zero
// dimension.
func Interpolate(g *Grid) (*Grid, error) {
	if g.Empty() {
		return nil, ErrEmptyGrid
	}

	rowExpanded := expandRows(g)
	zoomed := expandCols(rowExpanded)

	r, c := zoomed.Dims()
	out := NewGrid(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.pix[i*c+j] = truncate(zoomed.At(i, j))
		}
	}
	return out, nil
}

// expandRows performs the horizontal pass, doubling the column count.
func expandRows(g *Grid) *mat.Dense {
	d := mat.NewDense(g.rows, 2*g.cols, nil)
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			v := float64(g.pix[i*g.cols+j])
			d.Set(i, 2*j, v)
			if j < g.cols-1 {
				d.Set(i, 2*j+1, (v+float64(g.pix[i*g.cols+j+1]))/2.0)
			} else {
				d.Set(i, 2*j+1, v)
			}
		}
	}
	return d
}

// expandCols performs the vertical pass over the intermediate matrix,
// doubling the row count.
func expandCols(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()
	d := mat.NewDense(2*rows, cols, nil)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v := m.At(i, j)
			d.Set(2*i, j, v)
			if i < rows-1 {
				d.Set(2*i+1, j, (v+m.At(i+1, j))/2.0)
			} else {
				d.Set(2*i+1, j, v)
			}
		}
	}
	return d
}

// truncate narrows an interpolated value to a sample, dropping the
// fractional part and clamping to [0, 255].
func truncate(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
