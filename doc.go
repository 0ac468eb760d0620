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

// Package linediff compares two text documents line by line.
//
// [Diff] splits both documents on '\n' and computes a minimal alignment of their lines: every
// line is either unchanged (present in both documents), removed (only in the left document) or
// added (only in the right document). The result is a slice of [Operation] values in reading
// order that keeps the original line numbers of both documents. [Stats] summarizes such a slice
// and [Unified] and [SideBySide] render it as text. None of these functions re-run the comparison.
//
// Lines can be compared ignoring leading and trailing whitespace ([IgnoreWhitespace]) and ignoring
// case ([IgnoreCase]). These options only affect which lines are considered equal, operations
// always carry the original text.
//
// Performance: The comparison uses the classic longest common subsequence algorithm which takes
// O(m·n) time and O(m·n) space for documents with m and n lines. Memory use is 4 bytes per pair of
// lines. There is no heuristic to limit the cost. Programs that compare untrusted or potentially
// large inputs must bound m·n before calling [Diff], [CheckSize] does this.
//
// All functions are safe for concurrent use, they don't share any state.
package linediff
