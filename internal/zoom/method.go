package zoom

import (
	"fmt"
	"strings"
)

// Method selects a zoom algorithm.
type Method int

const (
	// Replication duplicates each sample into a 2x2 block.
	Replication Method = iota
	// Interpolation inserts averaged samples along rows, then columns.
	Interpolation
)

// Methods lists every supported algorithm in display order.
var Methods = []Method{Replication, Interpolation}

// String returns the lower-case method name used on the command line and in
// tool arguments.
func (m Method) String() string {
	switch m {
	case Replication:
		return "replication"
	case Interpolation:
		return "interpolation"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Title returns the heading used in figures and banners, e.g.
// "Zoom by Replication".
func (m Method) Title() string {
	switch m {
	case Replication:
		return "Zoom by Replication"
	case Interpolation:
		return "Zoom by Interpolation"
	default:
		return m.String()
	}
}

// ParseMethod accepts "replication"/"replicate" and
// "interpolation"/"interpolate" in any case.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replication", "replicate":
		return Replication, nil
	case "interpolation", "interpolate":
		return Interpolation, nil
	default:
		return 0, fmt.Errorf("unknown zoom method: %q", s)
	}
}

// Apply runs the algorithm selected by m on g.
func Apply(m Method, g *Grid) (*Grid, error) {
	switch m {
	case Replication:
		return Replicate(g)
	case Interpolation:
		return Interpolate(g)
	default:
		return nil, fmt.Errorf("unknown zoom method: %v", m)
	}
}
