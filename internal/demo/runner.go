package demo

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ironsheep/image-zoom/internal/imaging"
	"github.com/ironsheep/image-zoom/internal/zoom"
)

const bannerWidth = 60

// Report holds everything a run produced.
type Report struct {
	Source       *imaging.LoadResult
	Original     *zoom.Grid
	Replicated   *zoom.Grid
	Interpolated *zoom.Grid
	Comparison   *imaging.CompareResult

	// Outputs lists the files written, in the order they were saved.
	Outputs []string
}

// Runner executes the zoom experiment: load, replicate, interpolate,
// render, save. Progress banners go to out.
type Runner struct {
	cfg Config
	out io.Writer
}

// NewRunner creates a runner that prints its banners to out.
func NewRunner(cfg Config, out io.Writer) *Runner {
	return &Runner{cfg: cfg, out: out}
}

// Run performs one full experiment.
//
// A missing input is never an error: the loader falls back to the
// synthesized test pattern. Errors are returned only when results cannot be
// rendered or written.
func (r *Runner) Run() (*Report, error) {
	r.rule()
	r.println("Experiment No. 6: Zooming by Interpolation and Replication")
	r.rule()

	src, err := imaging.LoadWithFallback(r.cfg.Candidates(), r.cfg.OutputPath(r.cfg.FallbackPath))
	if err != nil {
		return nil, err
	}
	r.reportSource(src)

	rep := &Report{Source: src, Original: src.Grid}
	r.printf("\nInput image dimensions: %d x %d\n", src.Grid.Cols(), src.Grid.Rows())
	r.println("Input image dtype: uint8")

	r.println("\n[Part A] Performing Zoom by Replication...")
	if rep.Replicated, err = zoom.Replicate(src.Grid); err != nil {
		return nil, fmt.Errorf("replication failed: %w", err)
	}

	r.println("\n[Part B] Performing Zoom by Interpolation...")
	if rep.Interpolated, err = zoom.Interpolate(src.Grid); err != nil {
		return nil, fmt.Errorf("interpolation failed: %w", err)
	}

	if rep.Comparison, err = imaging.CompareGrids(rep.Replicated, rep.Interpolated); err != nil {
		return nil, fmt.Errorf("comparison failed: %w", err)
	}

	if r.cfg.Figures {
		if err := r.writeFigures(rep); err != nil {
			return nil, err
		}
	}
	r.printResults(rep)

	for _, f := range []struct {
		name string
		g    *zoom.Grid
	}{
		{ReplicationFile, rep.Replicated},
		{InterpolationFile, rep.Interpolated},
	} {
		path := r.cfg.OutputPath(f.name)
		if err := imaging.SaveGrid(path, f.g); err != nil {
			return nil, err
		}
		rep.Outputs = append(rep.Outputs, path)
		r.debugf("wrote %s (%v)", path, f.g)
	}

	r.println("\nOutput images saved:")
	r.printf("  - %s\n", r.cfg.OutputPath(ReplicationFile))
	r.printf("  - %s\n", r.cfg.OutputPath(InterpolationFile))
	if r.cfg.Figures {
		r.printf("  - %s (combined view)\n", r.cfg.OutputPath(ComparisonFile))
		r.printf("  - %s (replication vs interpolation)\n", r.cfg.OutputPath(DifferenceFile))
	}

	r.println()
	r.rule()
	r.println("Experiment Complete!")
	r.rule()

	return rep, nil
}

func (r *Runner) reportSource(src *imaging.LoadResult) {
	for _, a := range src.Attempts {
		r.debugf("candidate %q failed: %v", a.Path, a.Err)
	}

	if len(src.Attempts) > 0 && src.Attempts[0].Path != "" {
		r.printf("Error: Could not load image from %s\n", src.Attempts[0].Path)
		r.println("Attempting to load alternative image...")
	}

	if !src.Synthesized {
		r.printf("Successfully loaded: %s\n", src.Path)
		return
	}

	r.println("Error: Could not load any image.")
	if src.Path != "" {
		r.printf("Created %s for testing.\n", src.Path)
	} else {
		r.println("Using synthesized test pattern.")
	}
}

func (r *Runner) writeFigures(rep *Report) error {
	cmpPath := r.cfg.OutputPath(ComparisonFile)
	panels := imaging.ComparisonPanels(rep.Original, rep.Replicated, rep.Interpolated)
	if err := imaging.WriteFigure(cmpPath, panels); err != nil {
		return err
	}
	rep.Outputs = append(rep.Outputs, cmpPath)

	diff, err := imaging.DifferenceMap(rep.Replicated, rep.Interpolated, "", "")
	if err != nil {
		return err
	}
	diffPath := r.cfg.OutputPath(DifferenceFile)
	if err := imaging.SaveImage(diffPath, diff); err != nil {
		return err
	}
	rep.Outputs = append(rep.Outputs, diffPath)

	r.debugf("wrote %s and %s", cmpPath, diffPath)
	return nil
}

func (r *Runner) printResults(rep *Report) {
	size := func(g *zoom.Grid) string {
		return fmt.Sprintf("%d x %d pixels", g.Cols(), g.Rows())
	}

	r.println()
	r.rule()
	r.println("Zoom Comparison Results")
	r.rule()
	r.printf("%-28s%s\n", "Original Image Size:", size(rep.Original))
	r.printf("%-28s%s\n", "Replication Zoom Size:", size(rep.Replicated))
	r.printf("%-28s%s\n", "Interpolation Zoom Size:", size(rep.Interpolated))

	c := rep.Comparison
	if c.Identical {
		r.printf("%-28s%s\n", "Replication vs Interp.:", "identical")
	} else {
		r.printf("%-28s%.2f dB PSNR, mean |diff| %.2f\n", "Replication vs Interp.:", c.PSNR, c.AverageDiff)
	}
	r.rule()
}

func (r *Runner) rule() {
	r.println(strings.Repeat("=", bannerWidth))
}

func (r *Runner) println(a ...interface{}) {
	fmt.Fprintln(r.out, a...)
}

func (r *Runner) printf(format string, a ...interface{}) {
	fmt.Fprintf(r.out, format, a...)
}

func (r *Runner) debugf(format string, a ...interface{}) {
	if r.cfg.Debug {
		log.Printf(format, a...)
	}
}
