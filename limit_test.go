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
	"strings"
	"testing"
)

func TestCheckSize(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		limit       int
		wantErr     bool
	}{
		{"no-limit", strings.Repeat("a\n", 1000), strings.Repeat("b\n", 1000), 0, false},
		{"negative-limit", "a\nb", "c\nd", -1, false},
		{"empty", "", "", 1, false},
		{"left-empty", "", strings.Repeat("a\n", 100), 1, false},
		{"at-limit", "a\nb", "c\nd\ne", 6, false},
		{"above-limit", "a\nb", "c\nd\ne", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSize(tt.left, tt.right, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckSize(...) = %v, want error: %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrSizeLimitExceeded) {
				t.Errorf("errors.Is(%v, ErrSizeLimitExceeded) = false, want true", err)
			}
			var sizeErr *SizeLimitError
			if !errors.As(err, &sizeErr) {
				t.Fatalf("errors.As(%v, *SizeLimitError) = false, want true", err)
			}
			if sizeErr.LeftLines != 2 || sizeErr.RightLines != 3 || sizeErr.Limit != tt.limit {
				t.Errorf("CheckSize(...) = %+v, want 2 and 3 lines with limit %d", sizeErr, tt.limit)
			}
		})
	}
}

func TestCheckSizeLargeProduct(t *testing.T) {
	// 2^17+1 lines on both sides.
	doc := strings.Repeat("\n", 1<<17)
	if err := CheckSize(doc, doc, 1<<35); err != nil {
		t.Errorf("CheckSize(...) = %v, want nil", err)
	}
	if err := CheckSize(doc, doc, 1<<34); err == nil {
		t.Errorf("CheckSize(...) = nil, want an error")
	}
}
