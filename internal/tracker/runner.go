package tracker

import (
	"fmt"
	"io"
	"log"

	"github.com/sstent/ftracker/internal/parser"
	"github.com/sstent/ftracker/internal/training"
)

// Runner turns sensor packages into summary lines.
type Runner struct {
	out     io.Writer
	logger  *log.Logger
	verbose bool
}

// NewRunner writes summaries to out. A nil logger discards progress output,
// which is only produced when verbose is set.
func NewRunner(out io.Writer, logger *log.Logger, verbose bool) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{
		out:     out,
		logger:  logger,
		verbose: verbose,
	}
}

// DefaultPackages returns the reference readings used when no input is given.
func DefaultPackages() []parser.Package {
	return []parser.Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// Run processes packages in order and stops at the first one that cannot
// be handled. Lines already written for earlier packages are kept.
func (r *Runner) Run(packages []parser.Package) error {
	for i, pkg := range packages {
		if r.verbose {
			r.logger.Printf("[%d/%d] Processing package %s", i+1, len(packages), pkg)
		}

		line, err := r.process(pkg)
		if err != nil {
			return fmt.Errorf("package %d (%s): %w", i+1, pkg.Code, err)
		}

		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	return nil
}

func (r *Runner) process(pkg parser.Package) (string, error) {
	t, err := parser.ReadPackage(pkg.Code, pkg.Data)
	if err != nil {
		return "", err
	}

	info := training.ShowTrainingInfo(t)
	return info.Message(), nil
}
