// Package report renders submission outcomes for an operator. It is pure
// presentation: nothing here changes the results it is given.
package report

import (
	"fmt"
	"io"

	"github.com/nikola-golijanin/backlog-seeder/internal/catalog"
	"github.com/nikola-golijanin/backlog-seeder/internal/runner"
)

// Write emits, in submission order, a marker line per issue, a
// succeeded/attempted line per batch, and a combined total.
func Write(w io.Writer, batches []catalog.Batch, outcomes []runner.Outcome, results map[string]runner.BatchResult) {
	byBatch := make(map[string][]runner.Outcome)
	for _, o := range outcomes {
		byBatch[o.Batch] = append(byBatch[o.Batch], o)
	}

	totalAttempted, totalSucceeded := 0, 0
	for _, batch := range batches {
		fmt.Fprintf(w, "Batch %q:\n", batch.Name)
		for _, o := range byBatch[batch.Name] {
			if o.Succeeded() {
				fmt.Fprintf(w, "  ✓ %s\n", o.Title)
			} else {
				fmt.Fprintf(w, "  ✗ %s: %v\n", o.Title, o.Err)
			}
		}

		res := results[batch.Name]
		fmt.Fprintf(w, "  %d/%d succeeded\n\n", res.Succeeded, res.Attempted)
		totalAttempted += res.Attempted
		totalSucceeded += res.Succeeded
	}

	fmt.Fprintf(w, "Total: %d/%d issues created\n", totalSucceeded, totalAttempted)
}
