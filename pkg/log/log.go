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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 FileOperation is the result of one file pass, as reported to the user
type FileOperation struct {
	Path         string // File path as joined from the walk root
	IsUpdated    bool   // Content changed
	IsDryRun     bool   // Content changed but was not written
	Err          error  // Read or write failure
	Replacements int    // Number of matches replaced
}

// 🎯 Logger writes the per-file diagnostic lines to the console and mirrors
// everything to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger. Console lines go to console, structured
// events to zlog.
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation renders the console line, or "" for files that
// were left alone
func formatFileOperation(op FileOperation) string {
	switch {
	case op.Err != nil:
		return fmt.Sprintf("%s %s: %s", color.New(color.FgYellow).Sprint("Skipping"), op.Path, op.Err.Error())
	case op.IsUpdated && op.IsDryRun:
		return fmt.Sprintf("%s %s", color.New(color.FgCyan).Sprint("Would update:"), op.Path)
	case op.IsUpdated:
		return fmt.Sprintf("%s %s", color.New(color.FgGreen).Sprint("Updated:"), op.Path)
	default:
		return ""
	}
}

// 📝 LogFileOperation prints the diagnostic for a file, if any
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if line := formatFileOperation(op); line != "" {
		fmt.Fprintln(l.console, line)
	}

	ev := l.zlog.Debug()
	if op.Err != nil {
		ev = l.zlog.Warn().Err(op.Err)
	}
	ev.Str("file", op.Path).
		Bool("updated", op.IsUpdated).
		Bool("dry_run", op.IsDryRun).
		Int("replacements", op.Replacements).
		Msg("file processed")
}

// 📝 Diff prints a rendered diff under the last file line
func (l *Logger) Diff(path string, rendered string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, rendered)
	l.zlog.Trace().Str("file", path).Msg("diff printed")
}
