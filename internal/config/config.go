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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// linediff.Option.
package config

// Config collects all configurable parameters for comparison and rendering functions in this
// module.
type Config struct {
	// IgnoreWhitespace trims leading and trailing whitespace from comparison keys.
	IgnoreWhitespace bool

	// IgnoreCase lowercases comparison keys. Applied after IgnoreWhitespace.
	IgnoreCase bool

	// Labels identifying the two documents in the unified header.
	LeftLabel, RightLabel string

	// Context is the number of unchanged lines around changes in unified output. A negative value
	// renders every operation without hunk headers.
	Context int

	// Width of the left column in side-by-side output, in display columns.
	Width int

	// Colors for unified output, nil for plain text.
	Colors *ColorConfig
}

// ColorConfig holds the escape sequences used to color unified output.
type ColorConfig struct {
	Header     string
	HunkHeader string
	Unchanged  string
	Removed    string
	Added      string
}

// Reset is the escape sequence that ends a colored section.
const Reset = "\033[0m"

// DefaultColors mirrors the colors git uses for diffs.
var DefaultColors = ColorConfig{
	Header:     "\033[1m",
	HunkHeader: "\033[36m",
	Unchanged:  "",
	Removed:    "\033[31m",
	Added:      "\033[32m",
}

// Default is the default configuration.
var Default = Config{
	IgnoreWhitespace: false,
	IgnoreCase:       false,
	LeftLabel:        "original",
	RightLabel:       "modified",
	Context:          -1,
	Width:            40,
	Colors:           nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	IgnoreWhitespace Flag = 1 << iota
	IgnoreCase
	Labels
	Context
	Width
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
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
	case IgnoreWhitespace:
		return "linediff.IgnoreWhitespace"
	case IgnoreCase:
		return "linediff.IgnoreCase"
	case Labels:
		return "linediff.Labels"
	case Context:
		return "linediff.Context"
	case Width:
		return "linediff.ColumnWidth"
	case Colors:
		return "linediff.Colors"
	default:
		panic("never reached")
	}
}
