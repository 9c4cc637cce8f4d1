package demo

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvInput     = "IMAGE_ZOOM_INPUT"      // comma-separated candidate paths
	EnvOutputDir = "IMAGE_ZOOM_OUTPUT_DIR" // directory for all written files
	EnvNoFigure  = "IMAGE_ZOOM_NO_FIGURE"  // any non-empty value skips the figures
	EnvLogLevel  = "IMAGE_ZOOM_LOG_LEVEL"  // "debug" enables diagnostic logging
)

// Output file names, relative to Config.OutputDir.
const (
	ReplicationFile   = "zoom_replication.png"
	InterpolationFile = "zoom_interpolation.png"
	ComparisonFile    = "zoom_comparison.png"
	DifferenceFile    = "zoom_difference.png"
)

// Config controls where the demo reads its input and writes its results.
type Config struct {
	// Primary is the first image tried.
	Primary string

	// Alternatives are tried in order when Primary cannot be loaded.
	Alternatives []string

	// FallbackPath receives the synthesized test pattern when no candidate
	// loads. Relative paths are resolved against OutputDir.
	FallbackPath string

	// OutputDir holds every file the demo writes.
	OutputDir string

	// Figures enables the comparison figure and difference heatmap.
	Figures bool

	// Debug enables diagnostic log lines on stderr.
	Debug bool
}

// DefaultConfig returns the classic experiment setup: cameraman.jpg with
// four alternatives, a synthesized sample_test_image.png as last resort,
// everything written to the working directory.
func DefaultConfig() Config {
	return Config{
		Primary:      "cameraman.jpg",
		Alternatives: []string{"cameraman.png", "lenna.jpg", "lena.jpg", "test_image.jpg"},
		FallbackPath: "sample_test_image.png",
		OutputDir:    ".",
		Figures:      true,
	}
}

// ConfigFromEnv returns DefaultConfig with any IMAGE_ZOOM_* overrides
// applied.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvInput); strings.TrimSpace(v) != "" {
		var paths []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		if len(paths) > 0 {
			cfg.Primary = paths[0]
			cfg.Alternatives = paths[1:]
		}
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if os.Getenv(EnvNoFigure) != "" {
		cfg.Figures = false
	}
	cfg.Debug = strings.EqualFold(os.Getenv(EnvLogLevel), "debug")

	return cfg
}

// Candidates returns Primary followed by Alternatives.
func (c Config) Candidates() []string {
	out := make([]string, 0, 1+len(c.Alternatives))
	if c.Primary != "" {
		out = append(out, c.Primary)
	}
	return append(out, c.Alternatives...)
}

// OutputPath resolves name inside OutputDir. Absolute names are returned
// unchanged.
func (c Config) OutputPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	dir := c.OutputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}
