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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []string
	}{
		{
			name: "one-changed-line",
			x:    []string{"a", "b", "c"},
			y:    []string{"a", "x", "c"},
			want: []string{"a", "-b", "+x", "c"},
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"line1"},
			want: []string{"+line1"},
		},
		{
			name: "y-empty",
			x:    []string{"line1"},
			y:    nil,
			want: []string{"-line1"},
		},
		{
			name: "identical",
			x:    []string{"a", "b"},
			y:    []string{"a", "b"},
			want: []string{"a", "b"},
		},
		{
			name: "swapped-prefers-add",
			x:    []string{"x", "y"},
			y:    []string{"y", "x"},
			want: []string{"-x", "y", "+x"},
		},
		{
			name: "swapped-reverse-direction",
			x:    []string{"y", "x"},
			y:    []string{"x", "y"},
			want: []string{"-y", "x", "+y"},
		},
		{
			name: "disjoint",
			x:    []string{"a", "b"},
			y:    []string{"c", "d"},
			want: []string{"-a", "-b", "+c", "+d"},
		},
		{
			name: "empty-lines-are-lines",
			x:    []string{"", "a", ""},
			y:    []string{"a", ""},
			want: []string{"-", "a", ""},
		},
		{
			name: "no-normalization",
			x:    []string{"a", "b "},
			y:    []string{"a", "b"},
			want: []string{"a", "-b ", "+b"},
		},
		{
			name: "empty",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lines(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestEdits(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []Edit[string]
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: []Edit[string]{
				{Context, "foo", "foo"},
				{Context, "bar", "bar"},
				{Context, "baz", "baz"},
			},
		},
		{
			name: "empty",
		},
		{
			name: "x-empty",
			y:    []string{"foo", "bar", "baz"},
			want: []Edit[string]{
				{Add, "", "foo"},
				{Add, "", "bar"},
				{Add, "", "baz"},
			},
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			want: []Edit[string]{
				{Remove, "foo", ""},
				{Remove, "bar", ""},
				{Remove, "baz", ""},
			},
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []Edit[string]{
				{Remove, "A", ""},
				{Remove, "B", ""},
				{Context, "C", "C"},
				{Remove, "A", ""},
				{Context, "B", "B"},
				{Add, "", "A"},
				{Context, "B", "B"},
				{Context, "A", "A"},
				{Add, "", "C"},
			},
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: []Edit[string]{
				{Context, "foo", "foo"},
				{Remove, "bar", ""},
				{Add, "", "baz"},
			},
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: []Edit[string]{
				{Remove, "foo", ""},
				{Add, "", "loo"},
				{Context, "bar", "bar"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Run("edits", func(t *testing.T) {
				got := Edits(tt.x, tt.y)
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Edits(...) result is different [-want,+got]:\n%s", diff)
				}
			})
			t.Run("edits_func", func(t *testing.T) {
				got := EditsFunc(tt.x, tt.y, func(a, b string) bool { return a == b })
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("EditsFunc(...) result is different [-want,+got]:\n%s", diff)
				}
			})
		})
	}
}

func TestEditsFuncCustomEquality(t *testing.T) {
	x := []string{"Hello", "World"}
	y := []string{"hello", "there", "world"}
	got := EditsFunc(x, y, strings.EqualFold)
	want := []Edit[string]{
		{Context, "Hello", "hello"},
		{Add, "", "there"},
		{Context, "World", "world"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EditsFunc(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestHunks(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		opts []Option
		want []Hunk[string]
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: nil,
		},
		{
			name: "empty",
			want: nil,
		},
		{
			name: "x-empty",
			y:    []string{"foo", "bar"},
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 0,
					PosY: 0,
					EndY: 2,
					Edits: []Edit[string]{
						{Add, "", "foo"},
						{Add, "", "bar"},
					},
				},
			},
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 7,
					PosY: 0,
					EndY: 6,
					Edits: []Edit[string]{
						{Remove, "A", ""},
						{Remove, "B", ""},
						{Context, "C", "C"},
						{Remove, "A", ""},
						{Context, "B", "B"},
						{Add, "", "A"},
						{Context, "B", "B"},
						{Context, "A", "A"},
						{Add, "", "C"},
					},
				},
			},
		},
		{
			name: "ABCABBA_to_CBABAC_no_context",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			opts: []Option{ContextLines(0)},
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 2,
					PosY: 0,
					EndY: 0,
					Edits: []Edit[string]{
						{Remove, "A", ""},
						{Remove, "B", ""},
					},
				},
				{
					PosX: 3,
					EndX: 4,
					PosY: 1,
					EndY: 1,
					Edits: []Edit[string]{
						{Remove, "A", ""},
					},
				},
				{
					PosX: 5,
					EndX: 5,
					PosY: 2,
					EndY: 3,
					Edits: []Edit[string]{
						{Add, "", "A"},
					},
				},
				{
					PosX: 7,
					EndX: 7,
					PosY: 5,
					EndY: 6,
					Edits: []Edit[string]{
						{Add, "", "C"},
					},
				},
			},
		},
		{
			name: "two-hunks",
			x: []string{
				"this paragraph",
				"is not",
				"changed and",
				"barely long",
				"enough to",
				"create a",
				"new hunk",
				"",
				"this paragraph",
				"is going to be",
				"removed",
			},
			y: []string{
				"this is a new paragraph",
				"that is inserted at the top",
				"",
				"this paragraph",
				"is not",
				"changed and",
				"barely long",
				"enough to",
				"create a",
				"new hunk",
			},
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 3,
					PosY: 0,
					EndY: 6,
					Edits: []Edit[string]{
						{Add, "", "this is a new paragraph"},
						{Add, "", "that is inserted at the top"},
						{Add, "", ""},
						{Context, "this paragraph", "this paragraph"},
						{Context, "is not", "is not"},
						{Context, "changed and", "changed and"},
					},
				},
				{
					PosX: 4,
					EndX: 11,
					PosY: 7,
					EndY: 10,
					Edits: []Edit[string]{
						{Context, "enough to", "enough to"},
						{Context, "create a", "create a"},
						{Context, "new hunk", "new hunk"},
						{Remove, "", ""},
						{Remove, "this paragraph", ""},
						{Remove, "is going to be", ""},
						{Remove, "removed", ""},
					},
				},
			},
		},
		{
			name: "overlapping-consecutive-hunks-are-merged",
			x: []string{
				"this paragraph",
				"stays but is",
				"not long enough",
				"to create a",
				"new hunk",
				"",
				"this paragraph",
				"is going to be",
				"removed",
			},
			y: []string{
				"this is a new paragraph",
				"that is inserted at the top",
				"",
				"this paragraph",
				"stays but is",
				"not long enough",
				"to create a",
				"new hunk",
			},
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 9,
					PosY: 0,
					EndY: 8,
					Edits: []Edit[string]{
						{Add, "", "this is a new paragraph"},
						{Add, "", "that is inserted at the top"},
						{Add, "", ""},
						{Context, "this paragraph", "this paragraph"},
						{Context, "stays but is", "stays but is"},
						{Context, "not long enough", "not long enough"},
						{Context, "to create a", "to create a"},
						{Context, "new hunk", "new hunk"},
						{Remove, "", ""},
						{Remove, "this paragraph", ""},
						{Remove, "is going to be", ""},
						{Remove, "removed", ""},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hunks(tt.x, tt.y, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hunks(...) result is different [-want,+got]:\n%s", diff)
			}
			gotFunc := HunksFunc(tt.x, tt.y, func(a, b string) bool { return a == b }, tt.opts...)
			if diff := cmp.Diff(tt.want, gotFunc); diff != "" {
				t.Errorf("HunksFunc(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFormatUnknownOp(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Format(...) did not panic for an unknown op")
		}
	}()
	Format([]Edit[string]{{Op: Op(42), X: "x"}})
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{Context: "Context", Remove: "Remove", Add: "Add", Op(7): "Op(7)"} {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", int(op), got, want)
		}
	}
}

// TestProperties checks the properties every result must have on random inputs.
func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte("linediff"))))
	for i := range 300 {
		x, y := randomDocument(rng, 15), randomDocument(rng, 15)
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			edits := Edits(x, y)

			var gotX, gotY []string
			var changes int
			for _, e := range edits {
				switch e.Op {
				case Context:
					gotX = append(gotX, e.X)
					gotY = append(gotY, e.Y)
				case Remove:
					gotX = append(gotX, e.X)
					changes++
				case Add:
					gotY = append(gotY, e.Y)
					changes++
				}
			}
			if diff := cmp.Diff(x, gotX, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("context and removed lines do not reconstruct x [-want,+got]:\n%s", diff)
			}
			if diff := cmp.Diff(y, gotY, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("context and added lines do not reconstruct y [-want,+got]:\n%s", diff)
			}
			if want := len(x) + len(y) - 2*lcsLen(x, y); changes != want {
				t.Errorf("Edits(%q, %q) has %d changes, want %d", x, y, changes, want)
			}
			if got := Distance(x, y); got != changes {
				t.Errorf("Distance(%q, %q) = %d, want %d", x, y, got, changes)
			}
			if diff := cmp.Diff(Lines(x, y), Lines(x, y)); diff != "" {
				t.Errorf("Lines(...) is not deterministic [-first,+second]:\n%s", diff)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	x := []string{"name: Jane", "", "experience:", "  - acme", ""}
	for i, e := range Edits(x, x) {
		if e.Op != Context || e.X != x[i] || e.Y != x[i] {
			t.Errorf("Edits(x, x)[%d] = %v, want context edit of %q", i, e, x[i])
		}
	}
	if diff := cmp.Diff(x, Lines(x, x)); diff != "" {
		t.Errorf("Lines(x, x) differs from x [-want,+got]:\n%s", diff)
	}
}

// lcsLen computes the length of the longest common subsequence with two rows of memory.
func lcsLen(x, y []string) int {
	prev, cur := make([]int, len(y)+1), make([]int, len(y)+1)
	for i := range x {
		for j := range y {
			if x[i] == y[j] {
				cur[j+1] = prev[j] + 1
			} else {
				cur[j+1] = max(prev[j+1], cur[j])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

func randomDocument(rng *rand.Rand, n int) []string {
	words := []string{"", "summary:", "- led a team", "- shipped it", "skills: go"}
	lines := make([]string, rng.IntN(n+1))
	for i := range lines {
		lines[i] = words[rng.IntN(len(words))]
	}
	return lines
}

func BenchmarkLines(b *testing.B) {
	for _, n := range []int{50, 200, 1000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(fmt.Sprint(n)))))
			x := make([]string, n)
			for i := range x {
				x[i] = fmt.Sprint(rng.IntN(100))
			}
			y := append([]string(nil), x...)
			for range n / 10 {
				y[rng.IntN(n)] = "changed"
			}
			for b.Loop() {
				_ = Lines(x, y)
			}
		})
	}
}
