// main.go - Entry point
package main

import (
	"log"
	"os"

	"github.com/sstent/ftracker/internal/config"
	"github.com/sstent/ftracker/internal/parser"
	"github.com/sstent/ftracker/internal/tracker"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stderr, "ftracker: ", cfg.LogFlags)

	packages, err := readPackages(os.Args[1:])
	if err != nil {
		logger.Fatalf("Failed to read packages: %v", err)
	}

	runner := tracker.NewRunner(os.Stdout, logger, cfg.Verbose)
	if err := runner.Run(packages); err != nil {
		logger.Fatalf("Training run failed: %v", err)
	}
}

// readPackages parses CODE:v1,v2,... arguments, falling back to the
// reference packages when none are given.
func readPackages(args []string) ([]parser.Package, error) {
	if len(args) == 0 {
		return tracker.DefaultPackages(), nil
	}

	packages := make([]parser.Package, 0, len(args))
	for _, arg := range args {
		pkg, err := parser.ParsePackage(arg)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}
