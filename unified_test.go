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
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/linediff/color"
)

func TestUnifiedEdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		opts        []Option
		want        string
	}{
		{
			name: "empty",
			want: "--- original\n+++ modified\n",
		},
		{
			name:  "identical-with-context",
			left:  "a\nb",
			right: "a\nb",
			opts:  []Option{Context(3)},
			want:  "--- original\n+++ modified\n",
		},
		{
			name:  "identical",
			left:  "a\nb",
			right: "a\nb",
			want:  "--- original\n+++ modified\n  a\n  b\n",
		},
		{
			name:  "labels",
			left:  "a",
			right: "b",
			opts:  []Option{Labels("x.txt", "y.txt")},
			want:  "--- x.txt\n+++ y.txt\n+ b\n- a\n",
		},
		{
			name:  "empty-lines",
			left:  "\n",
			right: "",
			want:  "--- original\n+++ modified\n- \n- \n",
		},
		{
			name:  "left-empty-with-context",
			right: "one-line",
			opts:  []Option{Context(3)},
			want:  "--- original\n+++ modified\n@@ -1,0 +1,1 @@\n+ one-line\n",
		},
		{
			name:  "default-colors",
			left:  "a\nb",
			right: "a\nc",
			opts:  []Option{Colors(), Context(0)},
			want: "\033[1m--- original\033[0m\n" +
				"\033[1m+++ modified\033[0m\n" +
				"\033[36m@@ -2,1 +2,1 @@\033[0m\n" +
				"\033[32m+ c\033[0m\n" +
				"\033[31m- b\033[0m\n",
		},
		{
			name:  "custom-colors",
			left:  "a\nb",
			right: "a\nc",
			opts:  []Option{Colors(color.Header(), color.Unchanged(2), color.Added(1, 32))},
			want: "--- original\n" +
				"+++ modified\n" +
				"\033[2m  a\033[0m\n" +
				"\033[1;32m+ c\033[0m\n" +
				"\033[31m- b\033[0m\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unified(Diff(tt.left, tt.right), tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Unified(...) result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

func TestSideBySideEdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		opts        []Option
		want        string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name:  "default-width",
			left:  "a",
			right: "a",
			want:  "a                                        | a\n",
		},
		{
			name:  "zero-width",
			left:  "abc",
			right: "abd",
			opts:  []Option{ColumnWidth(0)},
			want:  " | abd\nabc | \n",
		},
		{
			name:  "longer-than-width",
			left:  "abcdef\nx",
			right: "abcdef",
			opts:  []Option{ColumnWidth(3)},
			want:  "abcdef | abcdef\nx   | \n",
		},
		{
			name: "ambiguous-width",
			left: "α─…",
			opts: []Option{ColumnWidth(6)},
			want: "α─…    | \n",
		},
		{
			name: "tab-in-left-column",
			left: "\tfoo()",
			opts: []Option{ColumnWidth(16)},
			want: "        foo()    | \n",
		},
		{
			name:  "tab-after-text",
			left:  "ab\tc\nx",
			right: "x",
			opts:  []Option{ColumnWidth(10)},
			want:  "ab      c  | \nx          | x\n",
		},
		{
			name:  "tab-in-right-column",
			right: "\tx",
			opts:  []Option{ColumnWidth(2)},
			want:  "   | \tx\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SideBySide(Diff(tt.left, tt.right), tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SideBySide(...) result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

func TestRenderersDisallowedOptions(t *testing.T) {
	tests := []struct {
		name   string
		render func()
	}{
		{"Unified/IgnoreCase", func() { Unified(nil, IgnoreCase()) }},
		{"Unified/ColumnWidth", func() { Unified(nil, ColumnWidth(3)) }},
		{"SideBySide/Context", func() { SideBySide(nil, Context(3)) }},
		{"SideBySide/Colors", func() { SideBySide(nil, Colors()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s didn't panic", tt.name)
				}
			}()
			tt.render()
		})
	}
}
