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

import (
	"slices"

	"onepg.dev/linediff/internal/config"
	"onepg.dev/linediff/internal/lcs"
	"onepg.dev/linediff/internal/rvecs"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Context Op = iota // An element present in both slices
	Remove            // An element of the left slice that's not in the right slice
	Add               // An element of the right slice that's not in the left slice
)

// Edit describes a single edit of a diff.
//
//   - For Context, both X and Y contain the element.
//   - For Remove, X contains the removed element and Y is unset (zero value).
//   - For Add, Y contains the added element and X is unset (zero value).
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Hunk describes a sequence of consecutive edits.
type Hunk[T any] struct {
	PosX, EndX int       // Start and end position in x.
	PosY, EndY int       // Start and end position in y.
	Edits      []Edit[T] // Edits to transform x[PosX:EndX] to y[PosY:EndY]
}

// Edits compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// Edits returns one edit for every element in the input slices, in the order the elements appear
// in x and y. If x and y are identical, the output consists of a context edit for every element.
// The number of removals and additions is minimal. Within a block of changes, removals come
// before additions. See the package documentation for how ties between minimal results are broken.
func Edits[T comparable](x, y []T) []Edit[T] {
	rx, ry := lcs.Diff(x, y)
	return edits(x, y, rx, ry)
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns the
// changes necessary to convert from one to the other.
//
// EditsFunc returns edits for every element in the input. If both x and y are identical, the output
// will consist of a context edit for every input element.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool) []Edit[T] {
	rx, ry := lcs.DiffFunc(x, y, eq)
	return edits(x, y, rx, ry)
}

func edits[T any](x, y []T, rx, ry []bool) []Edit[T] {
	// Every element of x is either removed or kept, so the result has one edit per element of x
	// plus one per added element of y.
	nedits := len(x)
	for _, added := range ry[:len(y)] {
		if added {
			nedits++
		}
	}
	if nedits == 0 {
		return nil
	}
	return appendEdits(make([]Edit[T], 0, nedits), x, y, rx, ry)
}

// appendEdits appends the edits for x and y to eout. The result vectors may be longer than x and
// y, only their first len(x) and len(y) elements are read.
func appendEdits[T any](eout []Edit[T], x, y []T, rx, ry []bool) []Edit[T] {
	n, m := len(x), len(y)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			eout = append(eout, Edit[T]{Op: Remove, X: x[s]})
			s++
		}
		for t < m && ry[t] {
			eout = append(eout, Edit[T]{Op: Add, Y: y[t]})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			eout = append(eout, Edit[T]{Op: Context, X: x[s], Y: y[t]})
			s++
			t++
		}
	}
	return eout
}

// Hunks compares the contents of x and y and returns the changes necessary to convert from one to
// the other, grouped into hunks.
//
// A hunk represents a contiguous block of changes (additions and removals) along with some
// surrounding context. The amount of context can be configured using [ContextLines].
//
// Hunks is based on the same edit script as [Edits]. If x and y are identical, the output has
// length zero.
//
// The following option is supported: [linediff.ContextLines]
func Hunks[T comparable](x, y []T, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context)
	rx, ry := lcs.Diff(x, y)
	return hunks(x, y, rx, ry, cfg)
}

// HunksFunc compares the contents of x and y using the provided equality comparison and returns the
// changes necessary to convert from one to the other, grouped into hunks.
//
// The following option is supported: [linediff.ContextLines]
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context)
	rx, ry := lcs.DiffFunc(x, y, eq)
	return hunks(x, y, rx, ry, cfg)
}

func hunks[T any](x, y []T, rx, ry []bool, cfg config.Config) []Hunk[T] {
	// Counting first is cheap and allows us to preallocate the return values.
	var nhunks, nedits int
	for hunk := range rvecs.Hunks(rx, ry, cfg.Context) {
		nhunks++
		nedits += hunk.Edits
	}
	if nhunks == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, nedits)
	hout := make([]Hunk[T], 0, nhunks)
	for hunk := range rvecs.Hunks(rx, ry, cfg.Context) {
		start := len(eout)
		eout = appendEdits(eout, x[hunk.S0:hunk.S1], y[hunk.T0:hunk.T1], rx[hunk.S0:], ry[hunk.T0:])
		hout = append(hout, Hunk[T]{
			PosX:  hunk.S0,
			EndX:  hunk.S1,
			PosY:  hunk.T0,
			EndY:  hunk.T1,
			Edits: slices.Clip(eout[start:]),
		})
	}
	return hout
}

// Distance returns the number of removals and additions needed to convert x into y. It's equal to
// len(x) + len(y) - 2*L, where L is the length of the longest common subsequence of x and y.
func Distance[T comparable](x, y []T) int {
	removes, adds := rvecs.Count(lcs.Diff(x, y))
	return removes + adds
}
