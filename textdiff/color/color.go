// Package color configures the ANSI colors used by textdiff.TerminalColors.
//
// Colors are given as [Select Graphic Rendition parameters]. For example, the option below
// prints added lines in bold green, which is the escape sequence \033[1;32m:
//
//	Adds(1, 32)
//
// The parameters are not validated. Whether they are supported depends on the terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"strconv"
	"strings"

	"onepg.dev/linediff/internal/config"
)

// Reset is the sequence that ends a colored line.
const Reset = "\033[0m"

// An Option overrides the color of one part of the output.
type Option func(*config.ColorConfig)

// HunkHeaders colors the "@@ -l,s +l,s @@" headers of a unified diff.
func HunkHeaders(params ...int) Option {
	return set(params, func(cc *config.ColorConfig) *string { return &cc.HunkHeader })
}

// Context colors unchanged lines. They are not colored by default.
func Context(params ...int) Option {
	return set(params, func(cc *config.ColorConfig) *string { return &cc.Context })
}

// Removes colors removed lines.
func Removes(params ...int) Option {
	return set(params, func(cc *config.ColorConfig) *string { return &cc.Remove })
}

// Adds colors added lines.
func Adds(params ...int) Option {
	return set(params, func(cc *config.ColorConfig) *string { return &cc.Add })
}

func set(params []int, field func(*config.ColorConfig) *string) Option {
	seq := SGR(params...)
	return func(cc *config.ColorConfig) {
		*field(cc) = seq
	}
}

// SGR returns the escape sequence that selects the graphic rendition params, e.g. SGR(1, 32)
// returns "\033[1;32m". Without params, it returns "\033[m", which resets all attributes.
func SGR(params ...int) string {
	codes := make([]string, len(params))
	for i, p := range params {
		codes[i] = strconv.Itoa(p)
	}
	return "\033[" + strings.Join(codes, ";") + "m"
}
