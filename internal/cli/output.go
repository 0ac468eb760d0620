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

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"znkr.io/linediff"
)

func (c *comparison) useColor() bool {
	switch c.Color {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := c.stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type output struct {
	stdout                io.Writer
	color                 bool
	leftLabel, rightLabel string
}

func (o *output) unified(ops []linediff.Operation, context int) error {
	opts := []linediff.Option{linediff.Labels(o.leftLabel, o.rightLabel)}
	if context >= 0 {
		opts = append(opts, linediff.Context(context))
	}
	if o.color {
		opts = append(opts, linediff.Colors())
	}
	_, err := io.WriteString(o.stdout, linediff.Unified(ops, opts...))
	return err
}

func (o *output) sideBySide(ops []linediff.Operation, width int) error {
	_, err := io.WriteString(o.stdout, linediff.SideBySide(ops, linediff.ColumnWidth(width)))
	return err
}

type jsonResult struct {
	Left       string               `json:"left"`
	Right      string               `json:"right"`
	Stats      linediff.DiffStats   `json:"stats"`
	Operations []linediff.Operation `json:"operations"`
}

func (o *output) json(ops []linediff.Operation, stats linediff.DiffStats) error {
	if ops == nil {
		ops = []linediff.Operation{}
	}
	enc := json.NewEncoder(o.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{
		Left:       o.leftLabel,
		Right:      o.rightLabel,
		Stats:      stats,
		Operations: ops,
	})
}

type statsStyles struct {
	label, added, removed, unchanged lipgloss.Style
}

func newStatsStyles(r *lipgloss.Renderer) statsStyles {
	base := r.NewStyle()
	return statsStyles{
		label:     base.Bold(true),
		added:     base.Foreground(lipgloss.Color("2")),
		removed:   base.Foreground(lipgloss.Color("1")),
		unchanged: base.Faint(true),
	}
}

// stats prints a one line summary, e.g. "a.txt → b.txt: +1 -2 =10 (13 lines)".
func (o *output) stats(stats linediff.DiffStats) error {
	r := lipgloss.NewRenderer(o.stdout)
	if o.color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	st := newStatsStyles(r)
	_, err := fmt.Fprintf(o.stdout, "%s: %s %s %s (%d lines)\n",
		st.label.Render(o.leftLabel+" → "+o.rightLabel),
		st.added.Render(fmt.Sprintf("+%d", stats.Added)),
		st.removed.Render(fmt.Sprintf("-%d", stats.Removed)),
		st.unchanged.Render(fmt.Sprintf("=%d", stats.Unchanged)),
		stats.Total,
	)
	return err
}
