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

package lcs

import "onepg.dev/linediff/internal/rvecs"

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
func Diff[T comparable](x, y []T) (rx, ry []bool) {
	match := func(i, j int) bool { return x[i] == y[j] }
	return Backtrack(Build(len(x), len(y), match), match)
}

// DiffFunc compares the contents of x and y using eq and returns the changes necessary to convert
// from one to the other.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) (rx, ry []bool) {
	match := func(i, j int) bool { return eq(x[i], y[j]) }
	return Backtrack(Build(len(x), len(y), match), match)
}

// Backtrack reconstructs an edit script from the similarity table t. The match function must be
// the one t was built with.
//
// The walk starts in the last cell and moves towards the origin. A matching pair of elements is
// always kept. Otherwise, the walk adds the current element of y if that doesn't shorten the
// common subsequence, and removes the current element of x if it does. In other words, if
// removing and adding are equally good, adding wins. This tie-break is part of the output
// contract: it selects one of possibly many minimal edit scripts.
//
// The result vectors mark removals in x (rx[s] is true if x[s] is removed) and additions in y
// (ry[t] is true if y[t] is added). They are one element longer than the inputs, the extra
// element is always false (see package rvecs).
//
// The vectors fully determine the order of the edit script: during the walk a removal is never
// directly followed by an addition, so in document order every run of changes consists of all its
// removals followed by all its additions.
func Backtrack(t Table, match func(i, j int) bool) (rx, ry []bool) {
	m, n := t.Dims()
	rx, ry = rvecs.Make(m, n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && match(i-1, j-1):
			i--
			j--
		case j > 0 && (i == 0 || t.At(i, j-1) >= t.At(i-1, j)):
			ry[j-1] = true
			j--
		default:
			rx[i-1] = true
			i--
		}
	}
	return rx, ry
}
