// Command seed-issues bulk-creates the predefined feature-request backlog
// in the remote issue tracker. It is a one-shot loader: it does not
// deduplicate across runs and does not retry failed submissions.
//
// Flags:
//
//	--catalog  path to an alternate catalog YAML file (default: embedded catalog)
//	--dry-run  validate the catalog and list what would be submitted, without
//	           touching the network
//
// Exit codes: 0 = run completed (even if individual submissions failed),
// 1 = configuration or catalog error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/nikola-golijanin/backlog-seeder/internal/app"
	"github.com/nikola-golijanin/backlog-seeder/internal/catalog"
	"github.com/nikola-golijanin/backlog-seeder/internal/config"
	"github.com/nikola-golijanin/backlog-seeder/internal/report"
	"github.com/nikola-golijanin/backlog-seeder/internal/runner"
	"github.com/nikola-golijanin/backlog-seeder/internal/tracker"
)

// Compile-time interface assertion.
var _ runner.Submitter = (*tracker.Client)(nil)

func main() {
	catalogFlag := flag.String("catalog", "", "path to an alternate catalog YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "list what would be submitted without calling the tracker")
	flag.Parse()

	// A missing or empty token fails here, before any submission attempt.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting backlog seeder",
		slog.String("version", app.BuildVersion()),
		slog.String("repo", cfg.Tracker.Owner+"/"+cfg.Tracker.Repo),
	)

	cat, err := loadCatalog(*catalogFlag)
	if err != nil {
		logger.Error("load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryRunFlag {
		fmt.Printf("dry run: %d issues in %d batches\n", cat.Size(), len(cat.Batches))
		for _, b := range cat.Batches {
			fmt.Printf("Batch %q:\n", b.Name)
			for _, issue := range b.Issues {
				fmt.Printf("  - %s\n", issue.Title)
			}
		}
		return
	}

	client, err := tracker.New(cfg.Tracker, nil)
	if err != nil {
		logger.Error("create tracker client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Run.Timeout)
	defer cancel()

	r := runner.New(logger, client)
	results := r.Run(ctx, cat.Batches)

	report.Write(os.Stdout, cat.Batches, r.Outcomes(), results)

	if r.HasFailures() {
		logger.Warn("run completed with failures")
	} else {
		logger.Info("run completed successfully")
	}
}

// loadCatalog returns the embedded catalog, or a catalog parsed from the
// given file when --catalog is set.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return catalog.Parse(data)
}
