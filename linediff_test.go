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
	"crypto/sha256"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/linediff/internal/config"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		opts        []Option
		want        []Operation
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name:  "removed-line",
			left:  "x\ny\nz",
			right: "x\nz",
			want: []Operation{
				{Unchanged, "x", 1, 1},
				{Removed, "y", 2, 0},
				{Unchanged, "z", 3, 2},
			},
		},
		{
			name:  "left-empty",
			right: "hello",
			want: []Operation{
				{Added, "hello", 0, 1},
			},
		},
		{
			name: "right-empty",
			left: "hello\nworld",
			want: []Operation{
				{Removed, "hello", 1, 0},
				{Removed, "world", 2, 0},
			},
		},
		{
			name:  "case-sensitive",
			left:  "Foo",
			right: "foo",
			want: []Operation{
				{Added, "foo", 0, 1},
				{Removed, "Foo", 1, 0},
			},
		},
		{
			name:  "ignore-case",
			left:  "Foo",
			right: "foo",
			opts:  []Option{IgnoreCase()},
			want: []Operation{
				{Unchanged, "Foo", 1, 1},
			},
		},
		{
			name:  "swapped",
			left:  "a\nb",
			right: "b\na",
			want: []Operation{
				{Added, "b", 0, 1},
				{Unchanged, "a", 1, 2},
				{Removed, "b", 2, 0},
			},
		},
		{
			name:  "ignore-whitespace",
			left:  "  foo\nbar\t",
			right: "foo  \n\tbar",
			opts:  []Option{IgnoreWhitespace()},
			want: []Operation{
				{Unchanged, "  foo", 1, 1},
				{Unchanged, "bar\t", 2, 2},
			},
		},
		{
			name:  "whitespace-only-is-empty",
			left:  "a\n \t\nb",
			right: "a\n\nb",
			opts:  []Option{IgnoreWhitespace()},
			want: []Operation{
				{Unchanged, "a", 1, 1},
				{Unchanged, " \t", 2, 2},
				{Unchanged, "b", 3, 3},
			},
		},
		{
			name:  "whitespace-only-is-empty-ignoring-case",
			left:  "A\n   ",
			right: "a\n",
			opts:  []Option{IgnoreWhitespace(), IgnoreCase()},
			want: []Operation{
				{Unchanged, "A", 1, 1},
				{Unchanged, "   ", 2, 2},
			},
		},
		{
			name:  "trailing-newline",
			left:  "a",
			right: "a\n",
			want: []Operation{
				{Unchanged, "a", 1, 1},
				{Added, "", 0, 2},
			},
		},
		{
			name:  "inner-whitespace-matters",
			left:  "a  b",
			right: "a b",
			opts:  []Option{IgnoreWhitespace(), IgnoreCase()},
			want: []Operation{
				{Added, "a b", 0, 1},
				{Removed, "a  b", 1, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.left, tt.right, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(...) result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

func TestDiffDisallowedOption(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Diff(..., Context(3)) didn't panic")
		}
	}()
	Diff("a", "b", Context(3))
}

func TestOperationJSON(t *testing.T) {
	ops := Diff("x\ny", "y\nz")
	got, err := json.Marshal(ops)
	if err != nil {
		t.Fatalf("json.Marshal(...) failed: %v", err)
	}
	want := `[{"kind":"removed","content":"x","left_line":1},{"kind":"unchanged","content":"y","left_line":2,"right_line":1},{"kind":"added","content":"z","right_line":2}]`
	if string(got) != want {
		t.Errorf("json.Marshal(...) = %s, want %s", got, want)
	}

	var back []Operation
	if err := json.Unmarshal(got, &back); err != nil {
		t.Fatalf("json.Unmarshal(...) failed: %v", err)
	}
	if diff := cmp.Diff(ops, back); diff != "" {
		t.Errorf("operations are different after a JSON round trip [-want, +got]:\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`[{"kind":"moved"}]`), &back); err == nil {
		t.Errorf("json.Unmarshal(...) accepted an unknown kind")
	}
}

func TestMalformedOperation(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
	}{
		{"unchanged-without-right-line", Operation{Kind: Unchanged, LeftLine: 1}},
		{"removed-with-right-line", Operation{Kind: Removed, LeftLine: 1, RightLine: 1}},
		{"added-without-line", Operation{Kind: Added}},
		{"unknown-kind", Operation{Kind: Kind(7), LeftLine: 1, RightLine: 1}},
	}
	renderers := map[string]func([]Operation){
		"Stats":      func(ops []Operation) { Stats(ops) },
		"Unified":    func(ops []Operation) { Unified(ops) },
		"SideBySide": func(ops []Operation) { SideBySide(ops) },
		"Hunks":      func(ops []Operation) { Hunks(ops, 3) },
	}
	for _, tt := range tests {
		for name, render := range renderers {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				defer func() {
					if recover() == nil {
						t.Errorf("%s(...) didn't panic for %+v", name, tt.op)
					}
				}()
				render([]Operation{tt.op})
			})
		}
	}
}

// randomDocument returns a document with n lines drawn from a small alphabet, so that the
// documents share lines, and with random case and surrounding whitespace.
func randomDocument(rng *rand.Rand, n int) string {
	words := []string{"alpha", "beta", "gamma", "delta", "", "epsilon"}
	lines := make([]string, n)
	for i := range lines {
		w := words[rng.IntN(len(words))]
		if rng.IntN(4) == 0 {
			w = strings.ToUpper(w)
		}
		if rng.IntN(4) == 0 {
			w = " " + w + "\t"
		}
		lines[i] = w
	}
	return strings.Join(lines, "\n")
}

var optionVariants = map[string][]Option{
	"default":                nil,
	"ignore-whitespace":      {IgnoreWhitespace()},
	"ignore-case":            {IgnoreCase()},
	"ignore-whitespace+case": {IgnoreWhitespace(), IgnoreCase()},
}

// TestDiffProperties checks properties that hold for every result of Diff: every line of both
// documents is accounted for exactly once and in order, operations are well formed, and the
// number of unchanged lines is the LCS length, which is compared with an independent
// implementation.
func TestDiffProperties(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	for range 200 {
		left := randomDocument(rng, rng.IntN(25))
		right := randomDocument(rng, rng.IntN(25))
		for name, opts := range optionVariants {
			ops := Diff(left, right, opts...)
			leftLines, rightLines := splitLines(left), splitLines(right)

			// Reconstruct both documents from the operations.
			var gotLeft, gotRight []string
			for _, op := range ops {
				op.check()
				switch op.Kind {
				case Unchanged:
					if op.LeftLine != len(gotLeft)+1 || op.RightLine != len(gotRight)+1 {
						t.Fatalf("%s: Diff(%q, %q): out of order operation %+v", name, left, right, op)
					}
					if op.Content != leftLines[op.LeftLine-1] {
						t.Fatalf("%s: Diff(%q, %q): unchanged operation %+v doesn't use left text", name, left, right, op)
					}
					gotLeft = append(gotLeft, op.Content)
					gotRight = append(gotRight, rightLines[op.RightLine-1])
				case Removed:
					if op.LeftLine != len(gotLeft)+1 {
						t.Fatalf("%s: Diff(%q, %q): out of order operation %+v", name, left, right, op)
					}
					gotLeft = append(gotLeft, op.Content)
				case Added:
					if op.RightLine != len(gotRight)+1 {
						t.Fatalf("%s: Diff(%q, %q): out of order operation %+v", name, left, right, op)
					}
					gotRight = append(gotRight, op.Content)
				}
			}
			if diff := cmp.Diff(leftLines, gotLeft); diff != "" {
				t.Fatalf("%s: Diff(%q, %q) doesn't reconstruct the left document [-want, +got]:\n%s", name, left, right, diff)
			}
			if diff := cmp.Diff(rightLines, gotRight); diff != "" {
				t.Fatalf("%s: Diff(%q, %q) doesn't reconstruct the right document [-want, +got]:\n%s", name, left, right, diff)
			}

			stats := Stats(ops)
			if stats.Total != len(ops) {
				t.Fatalf("%s: Stats(...).Total = %d, want %d", name, stats.Total, len(ops))
			}
			if want := minimalUnchanged(left, right, opts); stats.Unchanged != want {
				t.Fatalf("%s: Diff(%q, %q) has %d unchanged lines, want %d", name, left, right, stats.Unchanged, want)
			}
		}
	}
}

func TestDiffIdentical(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	for range 50 {
		doc := randomDocument(rng, rng.IntN(40))
		for name, opts := range optionVariants {
			for _, op := range Diff(doc, doc, opts...) {
				if op.Kind != Unchanged || op.LeftLine != op.RightLine {
					t.Fatalf("%s: Diff(%q, %q) contains %+v", name, doc, doc, op)
				}
			}
		}
	}
}

func splitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}

// minimalUnchanged computes the number of unchanged lines in a minimal diff using
// diffmatchpatch's line mode.
func minimalUnchanged(left, right string, opts []Option) int {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace|config.IgnoreCase)
	keys := func(doc string) string {
		var b strings.Builder
		for _, line := range splitLines(doc) {
			if cfg.IgnoreWhitespace {
				line = strings.TrimSpace(line)
			}
			if cfg.IgnoreCase {
				line = strings.ToLower(line)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		return b.String()
	}
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // Without a timeout the result is minimal.
	l, r, lines := dmp.DiffLinesToRunes(keys(left), keys(right))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(l, r, false), lines)
	n := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			n += strings.Count(d.Text, "\n")
		}
	}
	return n
}
