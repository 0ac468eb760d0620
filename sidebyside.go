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
	"strings"

	"github.com/mattn/go-runewidth"
	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/config"
)

const (
	separator = " | "
	tabWidth  = 8
)

// Column widths don't depend on the locale: East Asian ambiguous characters are one column wide.
var displayWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// SideBySide renders ops in two columns, one line per operation, in order. The left column shows
// the left document and is padded to a fixed width, the right column shows the right document.
// Columns are separated by " | ". Unchanged lines appear in both columns, removed lines only in
// the left one and added lines only in the right one. Every line ends in '\n'.
//
// The column width is measured in terminal display columns, so East Asian wide characters take
// two columns and ambiguous-width characters take one, regardless of the locale. Tabs in the left
// column are expanded to spaces at every eighth column. Lines wider than the column are not
// truncated and push the separator to the right.
//
// The following option is supported: [ColumnWidth]
//
// SideBySide panics if an operation violates the invariants documented on [Operation].
func SideBySide(ops []Operation, opts ...Option) string {
	cfg := config.FromOptions(opts, config.Width)

	var b byteview.Builder[string]
	size := 0
	for _, op := range ops {
		size += cfg.Width + len(separator) + 2*len(op.Content) + 1
	}
	b.Grow(size)

	for _, op := range ops {
		op.check()
		var left, right string
		switch op.Kind {
		case Unchanged:
			left, right = op.Content, op.Content
		case Removed:
			left = op.Content
		case Added:
			right = op.Content
		}
		b.WriteString(displayWidth.FillRight(expandTabs(left), cfg.Width))
		b.WriteString(separator)
		b.WriteString(right)
		b.WriteByte('\n')
	}
	return b.Build()
}

// expandTabs replaces every tab in s with spaces up to the next multiple of tabWidth.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for i, seg := range strings.Split(s, "\t") {
		if i > 0 {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		}
		b.WriteString(seg)
		col += displayWidth.StringWidth(seg)
	}
	return b.String()
}
