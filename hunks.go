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

// Hunk describes a sequence of consecutive operations with some surrounding context.
type Hunk struct {
	PosLeft, EndLeft   int         // Start and end of the hunk in the left document, 0-based.
	PosRight, EndRight int         // Start and end of the hunk in the right document, 0-based.
	Operations         []Operation // Subslice of the operations passed to Hunks.
}

// Hunks groups the changes in ops into hunks. A hunk contains a number of consecutive changes
// together with up to context unchanged operations before and after them. Hunks whose context
// would touch or overlap are merged.
//
// If ops contains no changes, the result is nil.
//
// Hunks panics if an operation violates the invariants documented on [Operation].
func Hunks(ops []Operation, context int) []Hunk {
	context = max(0, context)

	// posLeft[i] and posRight[i] are the number of left and right lines before ops[i].
	pos := make([]int, 2*(len(ops)+1))
	posLeft, posRight := pos[:len(ops)+1], pos[len(ops)+1:]
	for i, op := range ops {
		op.check()
		posLeft[i+1], posRight[i+1] = posLeft[i], posRight[i]
		if op.Kind != Added {
			posLeft[i+1]++
		}
		if op.Kind != Removed {
			posRight[i+1]++
		}
	}

	var hunks []Hunk
	lo, hi := -1, -1 // ops[lo:hi] is the hunk in progress
	flush := func() {
		hunks = append(hunks, Hunk{
			PosLeft:    posLeft[lo],
			EndLeft:    posLeft[hi],
			PosRight:   posRight[lo],
			EndRight:   posRight[hi],
			Operations: ops[lo:hi:hi],
		})
	}
	for i, op := range ops {
		if op.Kind == Unchanged {
			continue
		}
		l, h := max(0, i-context), min(len(ops), i+context+1)
		switch {
		case lo < 0:
			lo, hi = l, h
		case l <= hi:
			hi = h
		default:
			flush()
			lo, hi = l, h
		}
	}
	if lo >= 0 {
		flush()
	}
	return hunks
}
