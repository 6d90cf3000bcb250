package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// SimpleReplacer implements Replacer using sequential strings.ReplaceAll
type SimpleReplacer struct{}

var _ Replacer = (*SimpleReplacer)(nil)

// NewSimpleReplacer creates a new SimpleReplacer
func NewSimpleReplacer() *SimpleReplacer {
	return &SimpleReplacer{}
}

// ReplaceText implements Replacer.ReplaceText
func (r *SimpleReplacer) ReplaceText(ctx context.Context, content io.Reader, table Table) (*Result, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	res := table.Apply(string(data))
	return &res, nil
}

// ValidateTable implements Replacer.ValidateTable
func (r *SimpleReplacer) ValidateTable(table Table) error {
	return table.Validate()
}

// Apply runs every rule in order against the working copy. Rules are never
// reordered; a rule whose output contains a later rule's input compounds.
func (t Table) Apply(content string) Result {
	result := Result{
		Original: content,
		Modified: content,
	}

	current := content
	for _, rule := range t {
		// an empty pattern would match between every rune
		if rule.Old == "" {
			continue
		}

		n := strings.Count(current, rule.Old)
		if n == 0 {
			continue
		}

		current = strings.ReplaceAll(current, rule.Old, rule.New)
		result.Count += n
	}

	result.Modified = current
	result.Changed = current != content
	return result
}

// Validate checks that all rules are usable
func (t Table) Validate() error {
	for i, rule := range t {
		if rule.Old == "" {
			return errors.Errorf("rule %d: old is required", i)
		}
	}
	return nil
}

// Chain records that the output of rule From feeds the input of rule To
type Chain struct {
	From int
	To   int
}

// Chains lists rule pairs where one rule's New contains a rule's Old,
// including a rule feeding itself. Tables with chains are order-sensitive
// and may not be idempotent across repeated runs.
func (t Table) Chains() []Chain {
	var chains []Chain
	for i, from := range t {
		for j, to := range t {
			if to.Old == "" || (i == j && from.Old == from.New) {
				continue
			}
			if strings.Contains(from.New, to.Old) {
				chains = append(chains, Chain{From: i, To: j})
			}
		}
	}
	return chains
}
