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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
package byteview

import (
	"slices"
	"strings"
	"sync"
	"unsafe"
)

type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

// String returns the view as a string. It doesn't copy, the caller must not modify the []byte a
// view was created from while the string is in use.
func (v ByteView) String() string { return v.data }

// SplitLines splits the input strictly on '\n' and returns the lines without the newline
// character. Empty lines are preserved, a trailing '\n' results in a trailing empty line. An empty
// input has no lines.
func SplitLines(v ByteView) []ByteView {
	s := v.data
	if len(s) == 0 {
		return []ByteView{}
	}
	n := strings.Count(s, "\n") + 1
	a := make([]ByteView, n)
	for i := range n - 1 {
		m := strings.IndexByte(s, '\n')
		a[i] = ByteView{s[:m]}
		s = s[m+1:]
	}
	a[n-1] = ByteView{s}
	return a
}

// CountLines returns len(SplitLines(v)) without allocating.
func CountLines(v ByteView) int {
	if len(v.data) == 0 {
		return 0
	}
	return strings.Count(v.data, "\n") + 1
}

type Builder[T string | []byte] struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

func (b *Builder[T]) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

func (b *Builder[T]) Write(v []byte) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Builder[T]) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

func (b *Builder[T]) WriteByteView(v ByteView) (n int, err error) {
	b.buf = append(b.buf, v.data...)
	return len(v.data), nil
}

func (b *Builder[T]) WriteString(v string) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Builder[T]) Build() T {
	defer func() {
		b.buf = nil
	}()
	switch any((*T)(nil)).(type) {
	case *string:
		return T(unsafe.String(unsafe.SliceData(b.buf), len(b.buf)))
	case *[]byte:
		return T(b.buf)
	}
	panic("never reached")
}
