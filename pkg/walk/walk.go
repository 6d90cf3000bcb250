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

// Package walk lazily traverses a directory tree top-down, letting the caller
// prune child directories before they are ever listed.
package walk

import (
	"iter"
	"os"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
)

// 📂 Entry is one visited directory with its immediate children
type Entry struct {
	Dir     string   // Path of the directory, joined from the root
	Subdirs []string // Child directory names that will be visited, after pruning
	Files   []string // Child names that are not directories
}

// ✂️ PruneFunc returns the subset of subdirs to descend into. It runs before
// recursion, so a dropped name is never listed.
type PruneFunc func(dir string, subdirs []string) []string

// ⚠️ ListError reports a directory that could not be listed
type ListError struct {
	Dir  string
	Root bool // the failing directory is the walk root
	Err  error
}

func (e *ListError) Error() string {
	return "listing " + e.Dir + ": " + e.Err.Error()
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// 🚶 Walk yields every reachable directory depth-first, top-down, with children
// in lexical order.
//
// A root that cannot be listed yields a single *ListError with Root set and
// ends the sequence. A nested directory that cannot be listed yields a
// *ListError for that directory and the walk moves on to its siblings.
// Symbolic links to directories are reported in Subdirs but not followed.
func Walk(root string, prune PruneFunc) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		w := &walker{
			prune:   prune,
			scratch: make([]byte, godirwalk.MinimumScratchBufferSize),
		}
		w.walk(root, true, yield)
	}
}

type walker struct {
	prune   PruneFunc
	scratch []byte
}

// walk returns false once the consumer stops ranging or the root fails
func (w *walker) walk(dir string, isRoot bool, yield func(Entry, error) bool) bool {
	entry, links, err := w.list(dir)
	if err != nil {
		return yield(Entry{Dir: dir}, &ListError{Dir: dir, Root: isRoot, Err: err}) && !isRoot
	}

	if w.prune != nil {
		entry.Subdirs = w.prune(dir, entry.Subdirs)
	}

	if !yield(entry, nil) {
		return false
	}

	for _, sub := range entry.Subdirs {
		if links[sub] {
			continue
		}
		if !w.walk(Join(dir, sub), false, yield) {
			return false
		}
	}

	return true
}

// list reads one directory. The returned set names the subdirs that are
// symbolic links.
func (w *walker) list(dir string) (Entry, map[string]bool, error) {
	dirents, err := godirwalk.ReadDirents(dir, w.scratch)
	if err != nil {
		return Entry{}, nil, err
	}
	sort.Sort(dirents)

	entry := Entry{Dir: dir}
	links := map[string]bool{}
	for _, de := range dirents {
		isDir, err := de.IsDirOrSymlinkToDir()
		if err != nil {
			// dangling link, the reader reports it
			isDir = false
		}
		if !isDir {
			entry.Files = append(entry.Files, de.Name())
			continue
		}
		if de.IsSymlink() {
			links[de.Name()] = true
		}
		entry.Subdirs = append(entry.Subdirs, de.Name())
	}

	return entry, links, nil
}

// 🔗 Join appends name to dir with a single separator and no cleaning, so a
// root of "." produces "./app/Main.kt".
func Join(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
