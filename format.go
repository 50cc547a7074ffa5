// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package linediff

import "fmt"

// Markers prepended to changed lines by [Format]. Unchanged lines have no marker.
const (
	MarkerRemove = "-"
	MarkerAdd    = "+"
)

// Lines compares the lines in x and y and returns the edits necessary to convert from one to the
// other, rendered by [Format].
//
// For example, comparing ["a", "b", "c"] with ["a", "x", "c"] returns ["a", "-b", "+x", "c"].
func Lines(x, y []string) []string {
	return Format(Edits(x, y))
}

// Format renders edits as one line per edit: context lines are returned as is, removed lines are
// prefixed with [MarkerRemove] and added lines with [MarkerAdd]. There are no line numbers or hunk
// headers.
func Format(edits []Edit[string]) []string {
	if len(edits) == 0 {
		return nil
	}
	out := make([]string, len(edits))
	for i, e := range edits {
		switch e.Op {
		case Context:
			out[i] = e.X
		case Remove:
			out[i] = MarkerRemove + e.X
		case Add:
			out[i] = MarkerAdd + e.Y
		default:
			panic(fmt.Sprintf("unknown op: %v", e.Op))
		}
	}
	return out
}
