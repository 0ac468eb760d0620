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

// DiffStats counts the operations of a comparison by kind.
type DiffStats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
	Total     int `json:"total"` // Added + Removed + Unchanged
}

// HasChanges reports whether any line was added or removed.
func (s DiffStats) HasChanges() bool { return s.Added > 0 || s.Removed > 0 }

// Stats counts the operations in ops. Total is always len(ops).
func Stats(ops []Operation) DiffStats {
	var s DiffStats
	for _, op := range ops {
		op.check()
		switch op.Kind {
		case Unchanged:
			s.Unchanged++
		case Removed:
			s.Removed++
		case Added:
			s.Added++
		}
	}
	s.Total = s.Added + s.Removed + s.Unchanged
	return s
}
