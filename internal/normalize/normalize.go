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

// Package normalize splits documents into lines and maps every line to the key that's used to
// compare it with lines of the other document.
//
// Keys are derived from the raw line text by applying the configured transforms in a fixed
// order: first leading and trailing whitespace is trimmed (IgnoreWhitespace), then the result is
// lowercased (IgnoreCase). With both transforms active, a line that consists only of whitespace
// and an empty line have the same key.
package normalize

import (
	"strings"

	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/config"
)

// Line is a single line of a document.
type Line struct {
	Index int    // 1-based position in the document.
	Text  string // Raw text without the line separator.
}

// Split splits a document into lines. See [byteview.SplitLines] for the rules.
func Split(doc string) []Line {
	views := byteview.SplitLines(byteview.From(doc))
	lines := make([]Line, len(views))
	for i, v := range views {
		lines[i] = Line{Index: i + 1, Text: v.String()}
	}
	return lines
}

// Key returns the comparison key for text.
func Key(text string, cfg config.Config) string {
	if cfg.IgnoreWhitespace {
		text = strings.TrimSpace(text)
	}
	if cfg.IgnoreCase {
		text = strings.ToLower(text)
	}
	return text
}

// Keys returns the comparison keys for lines. The result has the same length as lines and
// keys[i] belongs to lines[i].
func Keys(lines []Line, cfg config.Config) []string {
	keys := make([]string, len(lines))
	for i, l := range lines {
		keys[i] = Key(l.Text, cfg)
	}
	return keys
}
