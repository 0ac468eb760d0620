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

// Package lcs aligns two sequences using the longest common subsequence.
//
// The alignment is computed with the textbook dynamic programming algorithm: a table
// dp[0..m][0..n] where dp[i][j] is the length of the LCS of x[:i] and y[:j], followed by a
// backtrack from dp[m][n] to dp[0][0]. The result is always minimal, i.e., the number of
// deletions and insertions is len(x) + len(y) - 2*LCS(x, y).
//
// Performance: O(m·n) time and O(m·n) space with 4 bytes per table cell. There is no heuristic
// and no early exit. Comparing two documents with 10,000 lines each needs ~400 MB of memory.
// Callers must bound m·n before calling [Align].
//
// Ties: When both dp[i-1][j] and dp[i][j-1] are candidates with the same LCS length, the backtrack
// always prefers the deletion (dp[i-1][j] >= dp[i][j-1]). This is a fixed policy, output
// expectations in this module depend on it.
package lcs

import (
	"fmt"
	"slices"
)

// Op describes an alignment step.
type Op int

const (
	Match  Op = iota // x[S] and y[T] are aligned
	Delete           // x[S] has no counterpart in y
	Insert           // y[T] has no counterpart in x
)

func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Step is a single alignment step. S and T are 0-based indices into x and y respectively, or -1
// if the step doesn't refer to an element of that sequence.
type Step struct {
	Op   Op
	S, T int
}

// Align computes a minimal alignment of x and y and returns one step for every element in x and
// y, in order.
func Align[T comparable](x, y []T) []Step {
	steps := make([]Step, 0, len(x)+len(y))

	// A common suffix is always matched by the backtrack, because it starts at the end and
	// prefers matches. Trimming it doesn't change the result. This is not true for a common
	// prefix: the tie-break can align an element of the prefix with a later duplicate.
	m, n := len(x), len(y)
	for m > 0 && n > 0 && x[m-1] == y[n-1] {
		m--
		n--
	}

	switch {
	case m == 0:
		for t := range n {
			steps = append(steps, Step{Insert, -1, t})
		}
	case n == 0:
		for s := range m {
			steps = append(steps, Step{Delete, s, -1})
		}
	default:
		x0, y0 := intern(x[:m], y[:n])
		tab := build(x0, y0)
		steps = tab.backtrack(x0, y0, steps)
	}

	for i := range len(x) - m {
		steps = append(steps, Step{Match, m + i, n + i})
	}
	return steps
}

// LCS returns the length of the longest common subsequence of x and y.
func LCS[T comparable](x, y []T) int {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	x0, y0 := intern(x, y)
	tab := build(x0, y0)
	return int(tab.at(len(x0), len(y0)))
}

// intern assigns a dense integer ID to every distinct element in x and y, so that the inner loop
// of the table construction compares integers instead of Ts.
func intern[T comparable](x, y []T) (x0, y0 []int) {
	idx := make(map[T]int, len(x))
	buf := make([]int, len(x)+len(y))
	x0, y0 = buf[:len(x):len(x)], buf[len(x):]
	for i, e := range x {
		id, ok := idx[e]
		if !ok {
			id = len(idx)
			idx[e] = id
		}
		x0[i] = id
	}
	for i, e := range y {
		id, ok := idx[e]
		if !ok {
			id = len(idx)
			idx[e] = id
		}
		y0[i] = id
	}
	return x0, y0
}

// table is the LCS length table dp[0..m][0..n] stored in a flat buffer, dp[i][j] is at
// cells[i*(n+1)+j].
type table struct {
	m, n  int
	cells []int32
}

func (tab *table) at(i, j int) int32 { return tab.cells[i*(tab.n+1)+j] }

func build(x, y []int) *table {
	m, n := len(x), len(y)
	stride := n + 1
	tab := &table{
		m:     m,
		n:     n,
		cells: make([]int32, (m+1)*stride), // row 0 and column 0 stay 0
	}
	cells := tab.cells
	for i := 1; i <= m; i++ {
		prev := cells[(i-1)*stride : i*stride]
		row := cells[i*stride : (i+1)*stride]
		xi := x[i-1]
		for j := 1; j <= n; j++ {
			switch {
			case xi == y[j-1]:
				row[j] = prev[j-1] + 1
			case prev[j] >= row[j-1]:
				row[j] = prev[j]
			default:
				row[j] = row[j-1]
			}
		}
	}
	return tab
}

// backtrack walks the table from (m, n) to (0, 0) and appends the steps to out in order.
func (tab *table) backtrack(x, y []int, out []Step) []Step {
	start := len(out)
	i, j := tab.m, tab.n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && x[i-1] == y[j-1]:
			out = append(out, Step{Match, i - 1, j - 1})
			i--
			j--
		case i > 0 && (j == 0 || tab.at(i-1, j) >= tab.at(i, j-1)):
			out = append(out, Step{Delete, i - 1, -1})
			i--
		default:
			out = append(out, Step{Insert, -1, j - 1})
			j--
		}
	}
	slices.Reverse(out[start:])
	return out
}
