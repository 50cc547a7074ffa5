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

// Package textdiff compares two versions of a text line by line.
//
// Texts are split into lines with [Split]. Lines are compared exactly, including any trailing
// carriage return.
package textdiff

import (
	"fmt"
	"strings"

	"onepg.dev/linediff"
	"onepg.dev/linediff/internal/config"
	"onepg.dev/linediff/textdiff/color"
)

const (
	prefixContext = " "
	prefixRemove  = "-"
	prefixAdd     = "+"
)

// Split splits text into lines on '\n'.
//
// Empty lines are kept. A text that ends in '\n' has a trailing empty line and the empty text
// consists of a single empty line.
func Split(text string) []string {
	return strings.Split(text, "\n")
}

// Lines compares the lines in x and y and returns the changes necessary to convert from one to the
// other, one string per line. Unchanged lines are returned as is, removed lines are prefixed with
// "-" and added lines with "+".
//
// The result is meant to be joined with "\n" for display.
//
// The following option is supported: [TerminalColors]
func Lines(x, y string, opts ...linediff.Option) []string {
	cfg := config.FromOptions(opts, config.TerminalColors)
	edits := linediff.Edits(Split(x), Split(y))
	out := linediff.Format(edits)
	if !cfg.Colors.Enabled() {
		return out
	}
	for i, e := range edits {
		out[i] = colorize(out[i], code(cfg.Colors, e.Op))
	}
	return out
}

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format: changes are grouped into hunks with a few lines of context and a
// "@@ -l,s +l,s @@" header each. Every line of the result, including the last one, ends in "\n".
//
// Unified is based on the same lines and edits as [Lines]. If x and y are identical, the result is
// empty.
//
// The following options are supported: [linediff.ContextLines], [TerminalColors]
func Unified(x, y string, opts ...linediff.Option) string {
	cfg := config.FromOptions(opts, config.Context|config.TerminalColors)

	var b strings.Builder
	for _, h := range linediff.Hunks(Split(x), Split(y), linediff.ContextLines(cfg.Context)) {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.PosX+1, h.EndX-h.PosX, h.PosY+1, h.EndY-h.PosY)
		b.WriteString(colorize(header, cfg.Colors.HunkHeader))
		b.WriteByte('\n')
		for _, e := range h.Edits {
			var line string
			switch e.Op {
			case linediff.Context:
				line = prefixContext + e.X
			case linediff.Remove:
				line = prefixRemove + e.X
			case linediff.Add:
				line = prefixAdd + e.Y
			default:
				panic("never reached")
			}
			b.WriteString(colorize(line, code(cfg.Colors, e.Op)))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func code(cc config.ColorConfig, op linediff.Op) string {
	switch op {
	case linediff.Context:
		return cc.Context
	case linediff.Remove:
		return cc.Remove
	case linediff.Add:
		return cc.Add
	default:
		panic("never reached")
	}
}

func colorize(line, code string) string {
	if code == "" {
		return line
	}
	return code + line + color.Reset
}
