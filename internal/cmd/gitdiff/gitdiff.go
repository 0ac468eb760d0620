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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
// It renders every changed file with linediff.Unified using three lines of context, e.g.
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff HEAD~1
//
// Files where the number of line pairs exceeds the size limit are reported but not compared.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"znkr.io/linediff"
)

// Roughly 100 MB for the alignment table.
const maxLinePairs = 25_000_000

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, _, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]

	old, err := readFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %w", err)
	}
	new, err := readFile(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %w", err)
	}

	fmt.Fprintf(w, "diff --git a/%s b/%s\n", path, path)
	fmt.Fprintf(w, "index %s..%s %s\n", abbrev(oldHex), abbrev(newHex), newMode)

	if err := linediff.CheckSize(old, new, maxLinePairs); err != nil {
		if errors.Is(err, linediff.ErrSizeLimitExceeded) {
			fmt.Fprintf(w, "# not compared: %v\n", err)
			return nil
		}
		return err
	}

	ops := linediff.Diff(old, new)
	_, err = io.WriteString(w, linediff.Unified(ops, linediff.Labels("a/"+path, "b/"+path), linediff.Context(3)))
	return err
}

func readFile(name string) (string, error) {
	if name == "/dev/null" {
		return "", nil
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

func abbrev(hex string) string {
	if len(hex) > 10 {
		return hex[:10]
	}
	return hex
}
