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

// Package benchmarks compares linediff with other diff libraries.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	"github.com/pmezard/go-difflib/difflib"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/diff/textdiff"
	"znkr.io/linediff"
)

// Impl is a diff implementation. Diff returns a diff of x and y where every added line starts
// with '+' and every removed line starts with '-'.
type Impl struct {
	Name    string
	Minimal bool // Diff always returns a diff with the minimal number of changes.
	Diff    func(x, y string) string
}

var Impls = []Impl{
	{
		Name:    "linediff",
		Minimal: true,
		Diff: func(x, y string) string {
			return linediff.Unified(linediff.Diff(x, y), linediff.Context(3))
		},
	},
	{
		Name: "znkr",
		Diff: func(x, y string) string {
			return textdiff.Unified(x, y)
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y string) string {
			return string(gointernal.Diff("x", []byte(x), "y", []byte(y)))
		},
	},
	{
		Name:    "diffmatchpatch",
		Minimal: true,
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			dmp := diffmatchpatch.New()
			dmp.DiffTimeout = 0
			rx, ry, lines := dmp.DiffLinesToRunes(x, y)
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var sb strings.Builder
			for _, d := range diffs {
				prefix := " "
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				}
				for _, line := range strings.SplitAfter(d.Text, "\n") {
					if line == "" {
						continue
					}
					sb.WriteString(prefix)
					sb.WriteString(line)
				}
			}
			return sb.String()
		},
	},
	{
		Name: "difflib",
		Diff: func(x, y string) string {
			out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(x),
				B:        difflib.SplitLines(y),
				FromFile: "x",
				ToFile:   "y",
				Context:  3,
			})
			if err != nil {
				panic(err)
			}
			return out
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			return godebug.Diff(x, y)
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			d := mb0lines{
				x: bytes.SplitAfter([]byte(x), []byte("\n")),
				y: bytes.SplitAfter([]byte(y), []byte("\n")),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var buf bytes.Buffer
			a := 0
			for _, ch := range changes {
				for a < ch.A {
					buf.WriteString(" ")
					buf.Write(d.x[a])
					a++
				}
				for i := range ch.Del {
					buf.WriteString("-")
					buf.Write(d.x[ch.A+i])
					a++
				}
				for i := range ch.Ins {
					buf.WriteString("+")
					buf.Write(d.y[ch.B+i])
				}
			}
			for a < len(d.x) {
				buf.WriteString(" ")
				buf.Write(d.x[a])
				a++
			}
			return buf.String()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y string) string {
			return udiff.Unified("x", "y", x, y)
		},
	},
}

// Lookup returns the implementation with the given name.
func Lookup(name string) (Impl, bool) {
	for _, impl := range Impls {
		if impl.Name == name {
			return impl, true
		}
	}
	return Impl{}, false
}

// CountEdits counts the added and removed lines in the output of an Impl. Header lines of unified
// diffs are not counted.
func CountEdits(out string) int {
	n := 0
	for line := range strings.Lines(out) {
		if strings.HasPrefix(line, "+++ ") || strings.HasPrefix(line, "--- ") {
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			n++
		}
	}
	return n
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
