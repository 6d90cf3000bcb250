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

// 📊 FileStatus is the outcome of one pass over one file
type FileStatus int

const (
	StatusUnchanged FileStatus = iota // No rule changed the content, nothing written
	StatusUpdated                     // Content changed and was written (or would be, in a dry run)
	StatusFailed                      // Reading, decoding or writing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusUpdated:
		return "updated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Outcome is the result for one path
type Outcome struct {
	Path         string
	Status       FileStatus
	Replacements int   // Matches replaced across all rules
	Written      bool  // False for dry runs
	Err          error // Set when Status is StatusFailed
}

// 📈 Summary collects the outcomes of one run in traversal order
type Summary struct {
	Root     string
	Outcomes []Outcome
}

func (s *Summary) add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
}

// Count returns the number of outcomes with the given status
func (s *Summary) Count(status FileStatus) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Updated lists the paths whose content changed
func (s *Summary) Updated() []string {
	var paths []string
	for _, o := range s.Outcomes {
		if o.Status == StatusUpdated {
			paths = append(paths, o.Path)
		}
	}
	return paths
}

// Failed lists the outcomes that failed
func (s *Summary) Failed() []Outcome {
	var failed []Outcome
	for _, o := range s.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}
