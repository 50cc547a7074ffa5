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

// Package lcs implements a line diff based on the classic longest common subsequence dynamic
// program.
//
// The algorithm has two steps. [Build] computes a similarity table holding the length of the
// longest common subsequence for every pair of prefixes of x and y. [Backtrack] walks that table
// from the last cell back to the origin and records which elements of x are removed and which
// elements of y are added.
//
// Both steps are O(NM) in time and space for inputs of length N and M. This is fine for the
// documents we compare (human authored text of a few hundred lines), but it's not suitable for
// large inputs.
package lcs

import "fmt"

// Table is the similarity table for two inputs x and y of length m and n.
//
// Cell (i, j) holds the length of the longest common subsequence of x[:i] and y[:j]. A Table is
// immutable once built.
type Table struct {
	m, n  int
	cells []int // row-major, (m+1) rows of (n+1) cells
}

// Build computes the similarity table for inputs of length m and n. The function match(i, j)
// must report whether x[i] and y[j] are equal.
//
// The table is filled row by row. Every cell only depends on the cells to the left, above, and
// above-left of it.
func Build(m, n int, match func(i, j int) bool) Table {
	if m < 0 || n < 0 {
		panic(fmt.Sprintf("invalid table dimensions %dx%d", m, n))
	}
	stride := n + 1
	cells := make([]int, (m+1)*stride)
	for i := 1; i <= m; i++ {
		row, prev := cells[i*stride:(i+1)*stride], cells[(i-1)*stride:i*stride]
		for j := 1; j <= n; j++ {
			if match(i-1, j-1) {
				row[j] = prev[j-1] + 1
			} else {
				row[j] = max(prev[j], row[j-1])
			}
		}
	}
	return Table{m: m, n: n, cells: cells}
}

// Dims returns the length of the two inputs the table was built for. The table has m+1 rows and
// n+1 columns.
func (t Table) Dims() (m, n int) { return t.m, t.n }

// At returns the length of the longest common subsequence of x[:i] and y[:j].
func (t Table) At(i, j int) int {
	if i < 0 || i > t.m || j < 0 || j > t.n {
		panic(fmt.Sprintf("cell (%d, %d) out of range for %dx%d table", i, j, t.m+1, t.n+1))
	}
	return t.cells[i*(t.n+1)+j]
}

// Len returns the length of the longest common subsequence of x and y.
func (t Table) Len() int { return t.cells[len(t.cells)-1] }
