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

// Package rvecs contains functions to work with the result vectors, the internal representation
// that's produced by the table backtracking and is then translated to a user facing API.
//
// For inputs x and y, rx[s] is true if x[s] is removed and ry[t] is true if y[t] is added. Both
// vectors have one extra trailing element that's always false. It lets loops read rx[s] and ry[t]
// without bounds checks when one of the inputs is exhausted.
package rvecs

// Make allocates result vectors for inputs of length n and m in a single allocation.
func Make(n, m int) (rx, ry []bool) {
	r := make([]bool, n+m+2)
	rx = r[: n+1 : n+1]
	ry = r[n+1:]
	return
}

// Count returns the number of removals and additions in rx and ry.
func Count(rx, ry []bool) (removes, adds int) {
	for _, r := range rx {
		if r {
			removes++
		}
	}
	for _, r := range ry {
		if r {
			adds++
		}
	}
	return
}
