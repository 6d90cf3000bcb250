// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/retree/pkg/filter"
	"github.com/walteh/retree/pkg/preset"
	"github.com/walteh/retree/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📝 Job is a rewrite job as written in a config file
type Job struct {
	// Preset optionally names a built-in preset to extend
	Preset string `json:"preset,omitempty" yaml:"preset,omitempty" hcl:"preset,optional" toml:"preset"`

	// Extensions is the file suffix allow-list
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional" toml:"extensions"`

	// SkipDirs lists directory names to prune at any depth
	SkipDirs []string `json:"skip_dirs,omitempty" yaml:"skip_dirs,omitempty" hcl:"skip_dirs,optional" toml:"skip_dirs"`

	// Ignore holds doublestar globs matched against root-relative paths
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional" toml:"ignore"`

	// Replacements run in order, after the preset's rules
	Replacements []text.Rule `json:"replacements,omitempty" yaml:"replacements,omitempty" hcl:"replacement,block" toml:"replacements"`

	location string
}

// 🎯 Plan is a job merged with its preset, ready to hand to the rewriter
type Plan struct {
	Name   string
	Table  text.Table
	Filter *filter.Filter
}

// Resolve merges the job with its preset and validates the result
func (j *Job) Resolve() (*Plan, error) {
	plan := &Plan{
		Name:   j.name(),
		Filter: &filter.Filter{},
	}

	var base preset.Preset
	if j.Preset != "" {
		p, err := preset.Lookup(j.Preset)
		if err != nil {
			return nil, err
		}
		base = p
		plan.Filter = p.Filter()
	}

	plan.Table = make(text.Table, 0, len(base.Table)+len(j.Replacements))
	plan.Table = append(plan.Table, base.Table...)
	plan.Table = append(plan.Table, j.Replacements...)

	if len(j.Extensions) > 0 {
		plan.Filter.Extensions = filter.Extensions(j.Extensions)
	}
	if len(j.SkipDirs) > 0 {
		plan.Filter.Skip = filter.NewSkipSet(j.SkipDirs...)
	}
	plan.Filter.Ignore = filter.Ignore(j.Ignore)

	if len(plan.Table) == 0 {
		return nil, errors.New("at least one replacement is required")
	}
	if err := plan.Table.Validate(); err != nil {
		return nil, err
	}
	if len(plan.Filter.Extensions) == 0 {
		return nil, errors.New("at least one extension is required")
	}
	for i, ext := range plan.Filter.Extensions {
		if ext == "" {
			return nil, errors.Errorf("extension %d is empty", i)
		}
	}
	if err := plan.Filter.Ignore.Validate(); err != nil {
		return nil, err
	}

	return plan, nil
}

func (j *Job) name() string {
	if j.location == "" {
		if j.Preset != "" {
			return j.Preset
		}
		return "job"
	}
	base := filepath.Base(j.location)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ✅ Validate checks that the job resolves to something runnable
func Validate(ctx context.Context, job *Job) error {
	plan, err := job.Resolve()
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("config", job.location).
		Str("preset", job.Preset).
		Int("rules", len(plan.Table)).
		Strs("extensions", plan.Filter.Extensions).
		Msg("config validated")

	return nil
}
