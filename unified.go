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
	"fmt"

	"znkr.io/linediff/internal/byteview"
	"znkr.io/linediff/internal/config"
)

const (
	prefixUnchanged = "  "
	prefixRemoved   = "- "
	prefixAdded     = "+ "
)

// Unified renders ops in a unified style: A two line header with the document labels followed by
// one line per operation, in order. Added lines are prefixed with "+ ", removed lines with "- "
// and unchanged lines with two spaces. Every line ends in '\n'.
//
// With [Context], only hunks of changes are rendered, see [Hunks].
//
// The following options are supported: [Labels], [Context], [Colors]
//
// Unified panics if an operation violates the invariants documented on [Operation].
func Unified(ops []Operation, opts ...Option) string {
	cfg := config.FromOptions(opts, config.Labels|config.Context|config.Colors)

	w := unifiedWriter{colors: cfg.Colors}
	size := len(cfg.LeftLabel) + len(cfg.RightLabel) + 10
	for _, op := range ops {
		size += len(op.Content) + len(prefixUnchanged) + 1
	}
	w.b.Grow(size)

	w.header("--- ", cfg.LeftLabel)
	w.header("+++ ", cfg.RightLabel)
	if cfg.Context < 0 {
		for _, op := range ops {
			w.op(op)
		}
		return w.b.Build()
	}
	for _, h := range Hunks(ops, cfg.Context) {
		w.hunkHeader(h)
		for _, op := range h.Operations {
			w.op(op)
		}
	}
	return w.b.Build()
}

type unifiedWriter struct {
	b      byteview.Builder[string]
	colors *config.ColorConfig
}

func (w *unifiedWriter) line(color, prefix, text string) {
	if color != "" {
		w.b.WriteString(color)
	}
	w.b.WriteString(prefix)
	w.b.WriteString(text)
	if color != "" {
		w.b.WriteString(config.Reset)
	}
	w.b.WriteByte('\n')
}

func (w *unifiedWriter) header(prefix, label string) {
	var color string
	if w.colors != nil {
		color = w.colors.Header
	}
	w.line(color, prefix, label)
}

func (w *unifiedWriter) hunkHeader(h Hunk) {
	var color string
	if w.colors != nil {
		color = w.colors.HunkHeader
	}
	hdr := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.PosLeft+1, h.EndLeft-h.PosLeft, h.PosRight+1, h.EndRight-h.PosRight)
	w.line(color, "", hdr)
}

func (w *unifiedWriter) op(op Operation) {
	op.check()
	var color, prefix string
	switch op.Kind {
	case Unchanged:
		prefix = prefixUnchanged
		if w.colors != nil {
			color = w.colors.Unchanged
		}
	case Removed:
		prefix = prefixRemoved
		if w.colors != nil {
			color = w.colors.Removed
		}
	case Added:
		prefix = prefixAdded
		if w.colors != nil {
			color = w.colors.Added
		}
	}
	w.line(color, prefix, op.Content)
}
