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

package rewrite

import (
	"bytes"
	"context"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/retree/pkg/filter"
	"github.com/walteh/retree/pkg/log"
	"github.com/walteh/retree/pkg/text"
	"github.com/walteh/retree/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the rewriter
type Options struct {
	// Table is applied in order to every accepted file
	Table text.Table
	// Filter prunes directories and selects files
	Filter *filter.Filter
	// FS defaults to OSFileSystem
	FS FileSystem
	// Replacer defaults to text.SimpleReplacer
	Replacer text.Replacer
	// Logger prints the per-file diagnostics
	Logger *log.Logger
	// DryRun computes outcomes without writing
	DryRun bool
	// Diff prints the changed lines of every updated file
	Diff bool
}

// 🎮 Rewriter applies a replacement table across a tree
type Rewriter struct {
	table    text.Table
	filter   *filter.Filter
	fs       FileSystem
	replacer text.Replacer
	logger   *log.Logger
	dryRun   bool
	diff     bool
}

// 🏭 New creates a new rewriter with the given options
func New(opts Options) (*Rewriter, error) {
	if opts.Filter == nil {
		return nil, errors.New("filter is required")
	}
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	replacer := opts.Replacer
	if replacer == nil {
		replacer = text.NewSimpleReplacer()
	}
	if err := replacer.ValidateTable(opts.Table); err != nil {
		return nil, errors.Errorf("validating table: %w", err)
	}
	if err := opts.Filter.Ignore.Validate(); err != nil {
		return nil, errors.Errorf("validating filter: %w", err)
	}

	fs := opts.FS
	if fs == nil {
		fs = OSFileSystem{}
	}

	return &Rewriter{
		table:    opts.Table,
		filter:   opts.Filter,
		fs:       fs,
		replacer: replacer,
		logger:   opts.Logger,
		dryRun:   opts.DryRun,
		diff:     opts.Diff,
	}, nil
}

// 🏃 Run walks root and processes every accepted file, one at a time, in
// traversal order. Per-file failures are recorded in the summary and never
// stop the walk. The error is set only when root cannot be listed or ctx is
// done; the summary then holds everything processed so far.
func (r *Rewriter) Run(ctx context.Context, root string) (*Summary, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", root).Int("rules", len(r.table)).Bool("dry_run", r.dryRun).Msg("starting run")

	summary := &Summary{Root: root}

	for entry, err := range walk.Walk(root, r.filter.Prune) {
		if err != nil {
			var lerr *walk.ListError
			if errors.As(err, &lerr) && lerr.Root {
				return summary, errors.Errorf("walking %s: %w", root, lerr.Err)
			}
			summary.add(r.fail(ctx, entry.Dir, err))
			continue
		}

		for _, name := range entry.Files {
			if err := ctx.Err(); err != nil {
				return summary, errors.Errorf("run interrupted: %w", err)
			}

			path := walk.Join(entry.Dir, name)
			if !r.filter.Accept(relative(root, path), name) {
				continue
			}

			summary.add(r.ProcessFile(ctx, path))
		}
	}

	logger.Debug().
		Int("updated", summary.Count(StatusUpdated)).
		Int("unchanged", summary.Count(StatusUnchanged)).
		Int("failed", summary.Count(StatusFailed)).
		Msg("run complete")

	return summary, nil
}

// 📄 ProcessFile makes one pass over path: read, apply the table, and write
// back only if the content changed. Failures are reported and returned as a
// StatusFailed outcome.
func (r *Rewriter) ProcessFile(ctx context.Context, path string) Outcome {
	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return r.fail(ctx, path, errors.Errorf("reading file: %w", err))
	}

	if err := checkUTF8(data); err != nil {
		return r.fail(ctx, path, err)
	}

	result, err := r.replacer.ReplaceText(ctx, bytes.NewReader(data), r.table)
	if err != nil {
		return r.fail(ctx, path, errors.Errorf("replacing text: %w", err))
	}
	if !result.Changed {
		zerolog.Ctx(ctx).Trace().Str("file", path).Msg("no change")
		return Outcome{Path: path, Status: StatusUnchanged, Replacements: result.Count}
	}

	if !r.dryRun {
		if err := r.fs.WriteFile(ctx, path, []byte(result.Modified)); err != nil {
			return r.fail(ctx, path, errors.Errorf("writing file: %w", err))
		}
	}

	out := Outcome{
		Path:         path,
		Status:       StatusUpdated,
		Replacements: result.Count,
		Written:      !r.dryRun,
	}

	r.logger.LogFileOperation(ctx, log.FileOperation{
		Path:         path,
		IsUpdated:    true,
		IsDryRun:     r.dryRun,
		Replacements: result.Count,
	})

	if r.diff {
		r.logger.Diff(path, renderDiff(result.Original, result.Modified))
	}

	return out
}

// fail reports and builds a failed outcome
func (r *Rewriter) fail(ctx context.Context, path string, err error) Outcome {
	r.logger.LogFileOperation(ctx, log.FileOperation{
		Path:     path,
		IsDryRun: r.dryRun,
		Err:      err,
	})
	return Outcome{Path: path, Status: StatusFailed, Err: err}
}

// checkUTF8 rejects content that does not decode as UTF-8
func checkUTF8(data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return errors.Errorf("decoding file: invalid UTF-8 at byte %d", i)
		}
		i += size
	}
	return errors.New("decoding file: invalid UTF-8")
}

func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
