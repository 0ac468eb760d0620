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
	"errors"
	"fmt"

	"znkr.io/linediff/internal/byteview"
)

// ErrSizeLimitExceeded is returned (wrapped in a [*SizeLimitError]) by [CheckSize] when a
// comparison would be too expensive.
var ErrSizeLimitExceeded = errors.New("size limit exceeded")

// SizeLimitError describes a comparison that was refused by [CheckSize].
type SizeLimitError struct {
	LeftLines, RightLines int // Number of lines in the left and right document.
	Limit                 int // The limit for LeftLines·RightLines.
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("comparing %d with %d lines exceeds the limit of %d line pairs", e.LeftLines, e.RightLines, e.Limit)
}

func (e *SizeLimitError) Unwrap() error { return ErrSizeLimitExceeded }

// CheckSize returns a [*SizeLimitError] if comparing left with right would need more than limit
// pairs of lines to be compared, i.e., if m·n > limit for documents with m and n lines. Time and
// memory used by [Diff] are proportional to m·n, at 4 bytes per pair.
//
// A limit <= 0 disables the check.
func CheckSize(left, right string, limit int) error {
	if limit <= 0 {
		return nil
	}
	m := byteview.CountLines(byteview.From(left))
	n := byteview.CountLines(byteview.From(right))
	if uint64(m)*uint64(n) > uint64(limit) {
		return &SizeLimitError{LeftLines: m, RightLines: n, Limit: limit}
	}
	return nil
}
