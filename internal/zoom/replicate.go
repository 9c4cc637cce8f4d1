package zoom

// Replicate zooms g by 2x using pixel replication.
//
// Every input sample (i, j) is copied into the four output samples
// (2i, 2j), (2i, 2j+1), (2i+1, 2j) and (2i+1, 2j+1), so each 2x2 output
// block is constant. The result is a new 2*rows x 2*cols grid; g is not
// modified.
//
// Returns ErrEmptyGrid if g is nil or has a zero dimension.
func Replicate(g *Grid) (*Grid, error) {
	if g.Empty() {
		return nil, ErrEmptyGrid
	}

	out := NewGrid(2*g.rows, 2*g.cols)
	for i := 0; i < g.rows; i++ {
		top := out.pix[(2*i)*out.cols : (2*i+1)*out.cols]
		for j := 0; j < g.cols; j++ {
			v := g.pix[i*g.cols+j]
			top[2*j] = v
			top[2*j+1] = v
		}
		// The odd output row is identical to the even one above it.
		copy(out.pix[(2*i+1)*out.cols:(2*i+2)*out.cols], top)
	}
	return out, nil
}
