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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// linediff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of unchanged lines to include before and after the changes of a hunk.
	Context int

	// Colors holds the SGR sequences used by textdiff to color its output. The zero value
	// disables coloring.
	Colors ColorConfig
}

// ColorConfig holds ANSI escape sequences for the parts of a rendered diff.
type ColorConfig struct {
	HunkHeader string
	Context    string
	Remove     string
	Add        string
}

// Enabled reports whether any color is configured.
func (cc ColorConfig) Enabled() bool {
	return cc != ColorConfig{}
}

// Default is the default configuration.
var Default = Config{
	Context: 3,
}

// Flag describes a single config entry. It's used to detect options that are passed to functions
// that don't support them.
type Flag int

const (
	Context Flag = 1 << iota
	TerminalColors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options. It panics if an option is not in
// allowed.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "linediff.ContextLines"
	case TerminalColors:
		return "textdiff.TerminalColors"
	default:
		panic("never reached")
	}
}
