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
	"znkr.io/linediff/color"
	"znkr.io/linediff/internal/config"
)

// Option configures the behavior of comparison and rendering functions.
type Option = config.Option

// IgnoreWhitespace compares lines ignoring leading and trailing whitespace. A line that only
// contains whitespace is equal to an empty line.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// IgnoreCase compares lines ignoring case. If [IgnoreWhitespace] is also used, whitespace is
// trimmed before lines are lowercased.
func IgnoreCase() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreCase = true
		return config.IgnoreCase
	}
}

// Labels sets the names of the left and right documents in the header of [Unified]. The defaults
// are "original" and "modified".
func Labels(left, right string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.LeftLabel, cfg.RightLabel = left, right
		return config.Labels
	}
}

// Context makes [Unified] render only hunks of changes with n unchanged lines of context before
// and after, each hunk preceded by a "@@ -l,s +l,s @@" header. Without this option, every
// operation is rendered.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// ColumnWidth sets the width of the left column of [SideBySide] in terminal display columns. The
// default is 40.
func ColumnWidth(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Width = max(0, n)
		return config.Width
	}
}

// Colors makes [Unified] color its output with ANSI escape sequences. Without any color options,
// the header is bold, removed lines are red and added lines are green.
func Colors(opts ...color.Option) Option {
	return func(cfg *config.Config) config.Flag {
		cc := config.DefaultColors
		for _, opt := range opts {
			opt(&cc)
		}
		cfg.Colors = &cc
		return config.Colors
	}
}
