package zoom

import (
	"errors"
	"image"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	xdraw "golang.org/x/image/draw"
)

// mustGrid builds a grid from literal rows, failing the test on ragged input.
func mustGrid(t *testing.T, rows [][]uint8) *Grid {
	t.Helper()
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	return g
}

// randomGrid returns a deterministic pseudo-random grid.
func randomGrid(seed int64, rows, cols int) *Grid {
	r := rand.New(rand.NewSource(seed))
	g := NewGrid(rows, cols)
	for i := range g.pix {
		g.pix[i] = uint8(r.Intn(256))
	}
	return g
}

var sizes = []struct {
	rows, cols int
}{
	{1, 1},
	{1, 5},
	{5, 1},
	{2, 2},
	{3, 7},
	{16, 9},
	{32, 32},
}

func TestReplicate_Example(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{10, 20},
		{30, 40},
	})

	got, err := Replicate(g)
	if err != nil {
		t.Fatalf("Replicate failed: %v", err)
	}

	want := [][]uint8{
		{10, 10, 20, 20},
		{10, 10, 20, 20},
		{30, 30, 40, 40},
		{30, 30, 40, 40},
	}
	if diff := cmp.Diff(want, got.Samples()); diff != "" {
		t.Errorf("Replicate mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpolate_Example(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{10, 20},
		{30, 40},
	})

	got, err := Interpolate(g)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}

	want := [][]uint8{
		{10, 15, 20, 20},
		{20, 25, 30, 30},
		{30, 35, 40, 40},
		{30, 35, 40, 40},
	}
	if diff := cmp.Diff(want, got.Samples()); diff != "" {
		t.Errorf("Interpolate mismatch (-want +got):\n%s", diff)
	}
}

func TestHorizontalPass_Example(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{10, 20},
		{30, 40},
	})

	d := expandRows(g)
	want := [][]float64{
		{10, 15, 20, 20},
		{30, 35, 40, 40},
	}
	for i, row := range want {
		for j, v := range row {
			if got := d.At(i, j); got != v {
				t.Errorf("intermediate (%d,%d): got %v, want %v", i, j, got, v)
			}
		}
	}
}

func TestZoom_DoublesDimensions(t *testing.T) {
	for _, sz := range sizes {
		g := randomGrid(1, sz.rows, sz.cols)
		for _, m := range Methods {
			out, err := Apply(m, g)
			if err != nil {
				t.Fatalf("%v on %v failed: %v", m, g, err)
			}
			if out.Rows() != 2*sz.rows || out.Cols() != 2*sz.cols {
				t.Errorf("%v on %dx%d: got %dx%d, want %dx%d",
					m, sz.rows, sz.cols, out.Rows(), out.Cols(), 2*sz.rows, 2*sz.cols)
			}
		}
	}
}

func TestReplicate_BlockConstancy(t *testing.T) {
	for _, sz := range sizes {
		g := randomGrid(2, sz.rows, sz.cols)
		out, err := Replicate(g)
		if err != nil {
			t.Fatalf("Replicate failed: %v", err)
		}
		for i := 0; i < g.Rows(); i++ {
			for j := 0; j < g.Cols(); j++ {
				v := g.At(i, j)
				for _, p := range [][2]int{{2 * i, 2 * j}, {2 * i, 2*j + 1}, {2*i + 1, 2 * j}, {2*i + 1, 2*j + 1}} {
					if got := out.At(p[0], p[1]); got != v {
						t.Fatalf("%dx%d: output (%d,%d) = %d, want %d from input (%d,%d)",
							sz.rows, sz.cols, p[0], p[1], got, v, i, j)
					}
				}
			}
		}
	}
}

func TestReplicate_MatchesNearestNeighbor(t *testing.T) {
	g := randomGrid(3, 13, 21)
	src := g.Image()

	ref := image.NewGray(image.Rect(0, 0, 2*g.Cols(), 2*g.Rows()))
	xdraw.NearestNeighbor.Scale(ref, ref.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	out, err := Replicate(g)
	if err != nil {
		t.Fatalf("Replicate failed: %v", err)
	}
	if diff := cmp.Diff(FromImage(ref).Samples(), out.Samples()); diff != "" {
		t.Errorf("Replicate differs from nearest-neighbour 2x (-ref +got):\n%s", diff)
	}
}

func TestInterpolate_CornerPreservation(t *testing.T) {
	for _, sz := range sizes {
		g := randomGrid(4, sz.rows, sz.cols)
		out, err := Interpolate(g)
		if err != nil {
			t.Fatalf("Interpolate failed: %v", err)
		}
		for i := 0; i < g.Rows(); i++ {
			for j := 0; j < g.Cols(); j++ {
				if got, want := out.At(2*i, 2*j), g.At(i, j); got != want {
					t.Errorf("%dx%d: output (%d,%d) = %d, want %d", sz.rows, sz.cols, 2*i, 2*j, got, want)
				}
			}
		}
	}
}

func TestInterpolate_MidpointFormula(t *testing.T) {
	g := randomGrid(5, 9, 11)
	out, err := Interpolate(g)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}

	// Horizontal midpoints survive unchanged on even output rows.
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols()-1; j++ {
			want := uint8((int(g.At(i, j)) + int(g.At(i, j+1))) / 2)
			if got := out.At(2*i, 2*j+1); got != want {
				t.Errorf("horizontal midpoint (%d,%d): got %d, want %d", 2*i, 2*j+1, got, want)
			}
		}
	}

	// Vertical midpoints between original samples on even output columns.
	for i := 0; i < g.Rows()-1; i++ {
		for j := 0; j < g.Cols(); j++ {
			want := uint8((int(g.At(i, j)) + int(g.At(i+1, j))) / 2)
			if got := out.At(2*i+1, 2*j); got != want {
				t.Errorf("vertical midpoint (%d,%d): got %d, want %d", 2*i+1, 2*j, got, want)
			}
		}
	}
}

func TestInterpolate_Truncates(t *testing.T) {
	tests := []struct {
		name string
		in   [][]uint8
		want [][]uint8
	}{
		{
			name: "odd horizontal sum",
			in:   [][]uint8{{10, 21}},
			want: [][]uint8{
				{10, 15, 21, 21},
				{10, 15, 21, 21},
			},
		},
		{
			name: "odd vertical sum",
			in:   [][]uint8{{10}, {21}},
			want: [][]uint8{
				{10, 10},
				{15, 15},
				{21, 21},
				{21, 21},
			},
		},
		{
			// The centre sample is 1.5 after both passes; rounding would give 2.
			name: "fraction carried across passes",
			in: [][]uint8{
				{1, 2},
				{2, 1},
			},
			want: [][]uint8{
				{1, 1, 2, 2},
				{1, 1, 1, 1},
				{2, 1, 1, 1},
				{2, 1, 1, 1},
			},
		},
		{
			name: "extremes",
			in:   [][]uint8{{0, 255}, {255, 255}},
			want: [][]uint8{
				{0, 127, 255, 255},
				{127, 191, 255, 255},
				{255, 255, 255, 255},
				{255, 255, 255, 255},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Interpolate(mustGrid(t, tt.in))
			if err != nil {
				t.Fatalf("Interpolate failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, out.Samples()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInterpolate_BoundaryDuplication(t *testing.T) {
	g := randomGrid(6, 6, 8)
	out, err := Interpolate(g)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}

	last := g.Cols() - 1
	for i := 0; i < g.Rows(); i++ {
		if got, want := out.At(2*i, 2*last+1), g.At(i, last); got != want {
			t.Errorf("row %d last column: got %d, want %d", 2*i, got, want)
		}
	}

	lastRow := 2*(g.Rows()-1) + 1
	if diff := cmp.Diff(out.Row(lastRow-1), out.Row(lastRow)); diff != "" {
		t.Errorf("last output row does not duplicate the one above (-want +got):\n%s", diff)
	}
}

func TestZoom_SingleSample(t *testing.T) {
	g := mustGrid(t, [][]uint8{{77}})
	want := [][]uint8{
		{77, 77},
		{77, 77},
	}
	for _, m := range Methods {
		out, err := Apply(m, g)
		if err != nil {
			t.Fatalf("%v failed: %v", m, err)
		}
		if diff := cmp.Diff(want, out.Samples()); diff != "" {
			t.Errorf("%v on 1x1 (-want +got):\n%s", m, diff)
		}
	}
}

func TestZoom_Pure(t *testing.T) {
	g := randomGrid(7, 10, 12)
	before := g.Clone()

	for _, m := range Methods {
		a, err := Apply(m, g)
		if err != nil {
			t.Fatalf("%v failed: %v", m, err)
		}
		b, err := Apply(m, g)
		if err != nil {
			t.Fatalf("%v failed: %v", m, err)
		}
		if !a.Equal(b) {
			t.Errorf("%v: repeated calls produced different output", m)
		}
		if !g.Equal(before) {
			t.Fatalf("%v mutated its input", m)
		}
		// The output must not alias the input.
		a.Set(0, 0, ^a.At(0, 0))
		if !g.Equal(before) {
			t.Fatalf("%v output shares storage with its input", m)
		}
	}
}

func TestZoom_EmptyGrid(t *testing.T) {
	tests := []struct {
		name string
		g    *Grid
	}{
		{"nil", nil},
		{"zero value", &Grid{}},
		{"no rows", NewGrid(0, 4)},
		{"no cols", NewGrid(4, 0)},
		{"negative", NewGrid(-1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, m := range Methods {
				if _, err := Apply(m, tt.g); !errors.Is(err, ErrEmptyGrid) {
					t.Errorf("%v: got err %v, want ErrEmptyGrid", m, err)
				}
			}
		})
	}
}
