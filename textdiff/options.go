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

package textdiff

import (
	"onepg.dev/linediff"
	"onepg.dev/linediff/internal/config"
	"onepg.dev/linediff/textdiff/color"
)

// TerminalColors colors the output using ANSI escape sequences.
//
// By default, hunk headers are cyan, removed lines are red, added lines are green and unchanged
// lines are not colored. The options override these defaults.
func TerminalColors(opts ...color.Option) linediff.Option {
	cc := config.ColorConfig{
		HunkHeader: color.SGR(36),
		Remove:     color.SGR(31),
		Add:        color.SGR(32),
	}
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Colors = cc
		return config.TerminalColors
	}
}
