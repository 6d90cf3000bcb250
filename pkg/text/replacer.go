package text

import (
	"context"
	"io"
)

// Rule defines a single literal substitution
type Rule struct {
	// Old is the exact substring to look for
	Old string `json:"old" yaml:"old" hcl:"old" toml:"old"`

	// New replaces every non-overlapping occurrence of Old
	New string `json:"new" yaml:"new" hcl:"new" toml:"new"`
}

// Table is an ordered list of rules. Each rule sees the output of the rules
// before it, so [A->B, B->C] turns "A" into "C".
type Table []Rule

// Result contains the outcome of applying a table to some content
type Result struct {
	// Changed indicates the final content differs from the original
	Changed bool

	// Count is the number of matches replaced across all rules
	Count int

	// Original is the content before replacements
	Original string

	// Modified is the content after replacements
	Modified string
}

// Replacer defines the interface for text replacement operations
type Replacer interface {
	// ReplaceText applies the table to the content read from r
	ReplaceText(ctx context.Context, r io.Reader, table Table) (*Result, error)

	// ValidateTable checks that every rule can be applied
	ValidateTable(table Table) error
}
