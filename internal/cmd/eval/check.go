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

package main

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/linediff"
)

func splitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}

// check validates that ops accounts for every line of left and right exactly once and in order.
// If exact is true, unchanged lines must also be identical on both sides.
func check(left, right string, ops []linediff.Operation, exact bool) error {
	leftLines, rightLines := splitLines(left), splitLines(right)
	l, r := 0, 0
	for i, op := range ops {
		switch op.Kind {
		case linediff.Unchanged:
			if op.LeftLine != l+1 || op.RightLine != r+1 {
				return fmt.Errorf("operation %d: got lines %d/%d, want %d/%d", i, op.LeftLine, op.RightLine, l+1, r+1)
			}
			if op.LeftLine > len(leftLines) || op.RightLine > len(rightLines) {
				return fmt.Errorf("operation %d: line out of range", i)
			}
			if op.Content != leftLines[l] {
				return fmt.Errorf("operation %d: content %q doesn't match left line %q", i, op.Content, leftLines[l])
			}
			if exact && op.Content != rightLines[r] {
				return fmt.Errorf("operation %d: content %q doesn't match right line %q", i, op.Content, rightLines[r])
			}
			l++
			r++
		case linediff.Removed:
			if op.LeftLine != l+1 || op.RightLine != 0 {
				return fmt.Errorf("operation %d: got lines %d/%d, want %d/0", i, op.LeftLine, op.RightLine, l+1)
			}
			if op.LeftLine > len(leftLines) || op.Content != leftLines[l] {
				return fmt.Errorf("operation %d: removed line doesn't match left document", i)
			}
			l++
		case linediff.Added:
			if op.LeftLine != 0 || op.RightLine != r+1 {
				return fmt.Errorf("operation %d: got lines %d/%d, want 0/%d", i, op.LeftLine, op.RightLine, r+1)
			}
			if op.RightLine > len(rightLines) || op.Content != rightLines[r] {
				return fmt.Errorf("operation %d: added line doesn't match right document", i)
			}
			r++
		default:
			return fmt.Errorf("operation %d: unknown kind %v", i, op.Kind)
		}
	}
	if l != len(leftLines) || r != len(rightLines) {
		return fmt.Errorf("operations cover %d/%d left and %d/%d right lines", l, len(leftLines), r, len(rightLines))
	}
	return nil
}

// minimalUnchanged returns the number of unchanged lines of a minimal line diff of the comparison
// keys of left and right, computed with diffmatchpatch.
func minimalUnchanged(left, right string, key func(string) string) int {
	keys := func(doc string) string {
		var b strings.Builder
		for _, line := range splitLines(doc) {
			b.WriteString(key(line))
			b.WriteByte('\n')
		}
		return b.String()
	}
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	l, r, lines := dmp.DiffLinesToRunes(keys(left), keys(right))
	n := 0
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMainRunes(l, r, false), lines) {
		if d.Type == diffmatchpatch.DiffEqual {
			n += strings.Count(d.Text, "\n")
		}
	}
	return n
}
