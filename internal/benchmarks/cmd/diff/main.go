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

// diff prints the diff of two files produced by one of the benchmarked libraries.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/txtar"
	"znkr.io/linediff/internal/benchmarks"
)

type config struct {
	lib   string
	x, y  string
	txtar string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "linediff", "library to use for diffing")
	flag.StringVar(&cfg.txtar, "txtar", "", "use the left and right files of a txtar archive instead of two input files")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: diff <x> <y>\n")
			os.Exit(1)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	lib, ok := benchmarks.Lookup(cfg.lib)
	if !ok {
		var names []string
		for _, impl := range benchmarks.Impls {
			names = append(names, impl.Name)
		}
		return fmt.Errorf("lib not found %q, available: %s", cfg.lib, strings.Join(names, ", "))
	}

	var x, y string
	if cfg.txtar != "" {
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return err
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "left", "x":
				x = string(f.Data)
			case "right", "y":
				y = string(f.Data)
			}
		}
	} else {
		b, err := os.ReadFile(cfg.x)
		if err != nil {
			return err
		}
		x = string(b)
		b, err = os.ReadFile(cfg.y)
		if err != nil {
			return err
		}
		y = string(b)
	}

	out := lib.Diff(x, y)
	fmt.Fprintf(os.Stderr, "%s: %d edits\n", lib.Name, benchmarks.CountEdits(out))
	_, err := os.Stdout.WriteString(out)
	return err
}
