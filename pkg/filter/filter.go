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

package filter

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🚫 SkipSet holds directory names whose whole subtree is excluded
type SkipSet map[string]bool

// NewSkipSet builds a SkipSet from names
func NewSkipSet(names ...string) SkipSet {
	s := make(SkipSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Prune returns subdirs minus the skipped names, in the original order
func (s SkipSet) Prune(dir string, subdirs []string) []string {
	kept := make([]string, 0, len(subdirs))
	for _, d := range subdirs {
		if s[d] {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

// 📄 Extensions is the allow-list of file name suffixes
type Extensions []string

// Match reports whether name ends with any allowed suffix
func (e Extensions) Match(name string) bool {
	for _, ext := range e {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// 🙈 Ignore holds doublestar patterns matched against slash paths relative
// to the walk root
type Ignore []string

// Validate checks every pattern compiles
func (ig Ignore) Validate() error {
	for _, p := range ig {
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("invalid ignore pattern %q", p)
		}
	}
	return nil
}

// Match reports whether rel matches any pattern
func (ig Ignore) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range ig {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// 🎯 Filter decides which directories are descended into and which files
// are rewritten
type Filter struct {
	Skip       SkipSet
	Extensions Extensions
	Ignore     Ignore
}

// Prune drops skipped directory names. It has the walk.PruneFunc shape.
func (f *Filter) Prune(dir string, subdirs []string) []string {
	return f.Skip.Prune(dir, subdirs)
}

// Accept reports whether a file is eligible. rel is the path relative to
// the walk root, name its base name.
func (f *Filter) Accept(rel, name string) bool {
	if !f.Extensions.Match(name) {
		return false
	}
	return !f.Ignore.Match(rel)
}
