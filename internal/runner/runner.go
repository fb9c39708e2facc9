// Package runner drives the batch submission: every issue in every batch
// is attempted exactly once, in catalog order, and individual failures
// never stop the run.
package runner

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nikola-golijanin/backlog-seeder/internal/catalog"
)

// Submitter performs one issue-creation call against the remote tracker.
type Submitter interface {
	CreateIssue(ctx context.Context, issue catalog.Issue) error
}

// BatchResult holds the aggregate outcome of one batch.
type BatchResult struct {
	Batch     string
	Attempted int
	Succeeded int
}

// Failed returns the number of failed submissions in the batch.
func (r BatchResult) Failed() int { return r.Attempted - r.Succeeded }

// Outcome is the classified result of one submission, in submission order.
type Outcome struct {
	Batch string
	Title string
	Err   error
}

// Succeeded reports whether the submission was accepted by the tracker.
func (o Outcome) Succeeded() bool { return o.Err == nil }

// Runner submits batches sequentially, one issue in flight at a time.
type Runner struct {
	log       *slog.Logger
	submitter Submitter

	outcomes []Outcome
	results  map[string]BatchResult
}

// New creates a Runner. Every run is tagged with a fresh run id in the logs.
func New(log *slog.Logger, submitter Submitter) *Runner {
	return &Runner{
		log:       log.With(slog.String("run_id", uuid.NewString())),
		submitter: submitter,
		results:   make(map[string]BatchResult),
	}
}

// Run processes the batches in order and returns a result for every batch,
// keyed by batch name, regardless of how many items in it failed. A failed
// submission is logged and counted, never propagated.
func (r *Runner) Run(ctx context.Context, batches []catalog.Batch) map[string]BatchResult {
	for _, batch := range batches {
		result := BatchResult{Batch: batch.Name}
		r.log.Info("starting batch",
			slog.String("batch", batch.Name),
			slog.Int("issues", len(batch.Issues)),
		)

		for _, issue := range batch.Issues {
			err := r.submitter.CreateIssue(ctx, issue)
			result.Attempted++
			if err == nil {
				result.Succeeded++
				r.log.Info("issue created",
					slog.String("batch", batch.Name),
					slog.String("title", issue.Title),
				)
			} else {
				r.log.Warn("issue submission failed",
					slog.String("batch", batch.Name),
					slog.String("title", issue.Title),
					slog.String("error", err.Error()),
				)
			}
			r.outcomes = append(r.outcomes, Outcome{Batch: batch.Name, Title: issue.Title, Err: err})
		}

		r.results[batch.Name] = result
		r.log.Info("batch completed",
			slog.String("batch", batch.Name),
			slog.Int("attempted", result.Attempted),
			slog.Int("succeeded", result.Succeeded),
		)
	}

	return r.results
}

// Results returns batch results after Run completes.
func (r *Runner) Results() map[string]BatchResult {
	return r.results
}

// Outcomes returns per-issue outcomes in submission order.
func (r *Runner) Outcomes() []Outcome {
	return r.outcomes
}

// HasFailures returns true if any submission in any batch failed.
func (r *Runner) HasFailures() bool {
	for _, res := range r.results {
		if res.Failed() > 0 {
			return true
		}
	}
	return false
}
