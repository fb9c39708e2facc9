// Package catalog holds the backlog of issues to submit, as declarative
// data separate from the submission logic. The shipped catalog is embedded
// at build time; tests and operators can supply their own.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Issue is one record to be created remotely.
type Issue struct {
	Title  string   `yaml:"title"`
	Body   string   `yaml:"body"`
	Labels []string `yaml:"labels"`
}

// Batch is a named, ordered group of issues. Ordering matters only for
// deterministic reporting; items are independent.
type Batch struct {
	Name   string  `yaml:"name"`
	Issues []Issue `yaml:"issues"`
}

// Catalog is the full ordered set of batches for one run.
type Catalog struct {
	Batches []Batch `yaml:"batches"`
}

// Load returns the catalog embedded in the binary.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes and validates a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return &c, nil
}

// Size returns the total number of issues across all batches.
func (c *Catalog) Size() int {
	n := 0
	for _, b := range c.Batches {
		n += len(b.Issues)
	}
	return n
}

func (c *Catalog) validate() error {
	if len(c.Batches) == 0 {
		return fmt.Errorf("no batches defined")
	}

	seen := make(map[string]bool, len(c.Batches))
	for _, b := range c.Batches {
		if b.Name == "" {
			return fmt.Errorf("batch without a name")
		}
		if seen[b.Name] {
			return fmt.Errorf("duplicate batch name %q", b.Name)
		}
		seen[b.Name] = true

		if len(b.Issues) == 0 {
			return fmt.Errorf("batch %q has no issues", b.Name)
		}
		for i, issue := range b.Issues {
			if issue.Title == "" {
				return fmt.Errorf("batch %q: issue %d has an empty title", b.Name, i)
			}
		}
	}
	return nil
}
