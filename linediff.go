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

	"znkr.io/linediff/internal/config"
	"znkr.io/linediff/internal/lcs"
	"znkr.io/linediff/internal/normalize"
)

// Kind classifies an operation.
type Kind int

const (
	Unchanged Kind = iota // The line exists in both documents
	Removed               // The line only exists in the left document
	Added                 // The line only exists in the right document
)

func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Unchanged, Removed, Added:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("invalid kind %d", int(k))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unchanged":
		*k = Unchanged
	case "removed":
		*k = Removed
	case "added":
		*k = Added
	default:
		return fmt.Errorf("invalid kind %q", text)
	}
	return nil
}

// Operation describes a single line of the comparison result.
//
// Line numbers are 1-based, 0 means the operation has no line on that side:
//
//   - For Unchanged, both LeftLine and RightLine are set and Content is the left line.
//   - For Removed, only LeftLine is set and Content is the left line.
//   - For Added, only RightLine is set and Content is the right line.
//
// Content is always the original line text without the line separator, even if lines were
// compared ignoring whitespace or case.
type Operation struct {
	Kind      Kind   `json:"kind"`
	Content   string `json:"content"`
	LeftLine  int    `json:"left_line,omitempty"`
	RightLine int    `json:"right_line,omitempty"`
}

// check panics if op violates the invariants documented on [Operation]. Operations created by
// [Diff] always satisfy them, violations are programming errors.
func (op Operation) check() {
	var ok bool
	switch op.Kind {
	case Unchanged:
		ok = op.LeftLine > 0 && op.RightLine > 0
	case Removed:
		ok = op.LeftLine > 0 && op.RightLine == 0
	case Added:
		ok = op.LeftLine == 0 && op.RightLine > 0
	}
	if !ok {
		panic(fmt.Sprintf("malformed operation: %+v", op))
	}
}

// Diff compares the lines in left and right and returns the operations that transform left into
// right.
//
// Both documents are split strictly on '\n'. Empty lines are preserved, a trailing '\n' results
// in a trailing empty line, and an empty document has no lines.
//
// The result has one operation for every line of left and every line of right, except that a
// pair of matching lines is represented by a single Unchanged operation. The number of Unchanged
// operations is maximal. If there are several alignments with that property, the one produced by
// preferring removals over additions while tracing back from the end of both documents is
// returned, this choice is stable and won't change. If left and right are identical, every
// operation is Unchanged. If both are empty, the result is nil.
//
// The following options are supported: [IgnoreWhitespace], [IgnoreCase]
//
// Diff takes O(m·n) time and memory for documents with m and n lines, see [CheckSize].
func Diff(left, right string, opts ...Option) []Operation {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace|config.IgnoreCase)

	llines, rlines := normalize.Split(left), normalize.Split(right)
	steps := lcs.Align(normalize.Keys(llines, cfg), normalize.Keys(rlines, cfg))
	if len(steps) == 0 {
		return nil
	}

	ops := make([]Operation, len(steps))
	for i, st := range steps {
		switch st.Op {
		case lcs.Match:
			l, r := llines[st.S], rlines[st.T]
			ops[i] = Operation{Kind: Unchanged, Content: l.Text, LeftLine: l.Index, RightLine: r.Index}
		case lcs.Delete:
			l := llines[st.S]
			ops[i] = Operation{Kind: Removed, Content: l.Text, LeftLine: l.Index}
		case lcs.Insert:
			r := rlines[st.T]
			ops[i] = Operation{Kind: Added, Content: r.Text, RightLine: r.Index}
		default:
			panic("never reached")
		}
	}
	return ops
}
