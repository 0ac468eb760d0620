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

// eval validates linediff against the history of a git repository: every file changed by a
// commit is compared with every option variant, and the result is checked for completeness and
// minimality.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"znkr.io/linediff"
	"znkr.io/linediff/internal/cmd/eval/internal/git"
)

type config struct {
	repo         string
	sample       int
	parallel     int
	stats        string
	oracle       bool
	maxLinePairs int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.BoolVar(&cfg.oracle, "oracle", true, "if the LCS length should be compared with diffmatchpatch")
	flag.IntVar(&cfg.maxLinePairs, "max-line-pairs", 4_000_000, "skip files with more line pairs")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type variant struct {
	name string
	opts []linediff.Option
	key  func(string) string
}

var variants = []variant{
	{
		name: "default",
		key:  func(s string) string { return s },
	},
	{
		name: "ignore-whitespace",
		opts: []linediff.Option{linediff.IgnoreWhitespace()},
		key:  strings.TrimSpace,
	},
	{
		name: "ignore-case",
		opts: []linediff.Option{linediff.IgnoreCase()},
		key:  strings.ToLower,
	},
	{
		name: "ignore-whitespace+case",
		opts: []linediff.Option{linediff.IgnoreWhitespace(), linediff.IgnoreCase()},
		key:  func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
	},
}

type note struct {
	prefix string
	msg    string
}

type change struct {
	commitID string
	filename string
	old, new string
}

type result struct {
	commitID string
	file     string
	variant  string
	N, M     int
	D        int
	duration time.Duration
}

// evaluate compares a change with every variant and reports problems to notes.
func evaluate(cfg *config, c change, notes chan<- note, results chan<- result) {
	prefix := c.commitID + ":" + c.filename
	if err := linediff.CheckSize(c.old, c.new, cfg.maxLinePairs); err != nil {
		if !errors.Is(err, linediff.ErrSizeLimitExceeded) {
			notes <- note{prefix, fmt.Sprintf("unexpected error: %v", err)}
		}
		return
	}

	for _, v := range variants {
		start := time.Now()
		ops := linediff.Diff(c.old, c.new, v.opts...)
		duration := time.Since(start)
		stats := linediff.Stats(ops)

		if err := check(c.old, c.new, ops, v.name == "default"); err != nil {
			notes <- note{prefix + ":" + v.name, fmt.Sprintf("invalid operations: %v", err)}
		}
		if cfg.oracle {
			if want := minimalUnchanged(c.old, c.new, v.key); stats.Unchanged != want {
				notes <- note{prefix + ":" + v.name, fmt.Sprintf("found %d unchanged lines, diffmatchpatch found %d", stats.Unchanged, want)}
			}
		}
		if results != nil {
			results <- result{
				commitID: c.commitID,
				file:     c.filename,
				variant:  v.name,
				N:        stats.Removed + stats.Unchanged,
				M:        stats.Added + stats.Unchanged,
				D:        stats.Added + stats.Removed,
				duration: duration,
			}
		}
	}
}

func run(cfg *config) error {
	start := time.Now()
	notes := make(chan note)
	done := make(chan struct{})
	var commitsDone atomic.Int64
	var processed atomic.Int64

	var stats *os.File
	if cfg.stats != "" {
		var err error
		stats, err = os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %w", err)
		}
		defer stats.Close()
	}

	repo, err := git.Open(cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %w", err)
	}
	defer repo.Close()

	commitIDs, err := repo.RevList()
	if err != nil {
		return fmt.Errorf("reading rev-list: %w", err)
	}
	if len(commitIDs) == 0 {
		return errors.New("no commits found")
	}

	// Sample commits
	if cfg.sample > 0 && cfg.sample < len(commitIDs) {
		perm := rand.Perm(len(commitIDs))[:cfg.sample]
		sample := make([]string, len(perm))
		for i, p := range perm {
			sample[i] = commitIDs[p]
		}
		commitIDs = sample
	}

	// Read changes.
	changes := make(chan change)
	var changesWG sync.WaitGroup
	chunkSize := max(1, len(commitIDs)/(4*runtime.GOMAXPROCS(0)))
	for chunk := range slices.Chunk(commitIDs, chunkSize) {
		changesWG.Add(1)
		go func() {
			defer changesWG.Done()
			for _, commitID := range chunk {
				files, err := repo.DiffTree(commitID)
				if err != nil {
					notes <- note{commitID, fmt.Sprintf("error processing commit: %v", err)}
				}
				for _, file := range files {
					old, err := repo.Blob(file.OldID)
					if err != nil {
						notes <- note{commitID + ":" + file.Name, fmt.Sprintf("error reading blob: %v", err)}
						continue
					}
					new, err := repo.Blob(file.NewID)
					if err != nil {
						notes <- note{commitID + ":" + file.Name, fmt.Sprintf("error reading blob: %v", err)}
						continue
					}
					changes <- change{commitID: commitID, filename: file.Name, old: old, new: new}
				}
				commitsDone.Add(1)
			}
		}()
	}

	// Evaluate changes.
	var processWG sync.WaitGroup
	var results chan result
	if cfg.stats != "" {
		results = make(chan result)
	}
	for range max(1, cfg.parallel) {
		processWG.Add(1)
		go func() {
			defer processWG.Done()
			for c := range changes {
				evaluate(cfg, c, notes, results)
				processed.Add(1)
			}
		}()
	}

	// Render progress
	var ioWG sync.WaitGroup
	render := func() {
		const width = 60
		commits := commitsDone.Load()
		processed := processed.Load()
		progress := float64(commits) / float64(len(commitIDs))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		elapsed := time.Since(start)
		commitsPerSec := int(float64(commits) / elapsed.Seconds())
		procPerSec := int(float64(processed) / elapsed.Seconds())
		fmt.Printf("\r[%-*s] % 3.1f%% (%d commits/s, %d files/s) ", width, bar, 100*progress, commitsPerSec, procPerSec)
	}
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Printf("\r%s: %s\n", note.prefix, note.msg)
				render()

			case <-ticker.C:
				render()

			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()
	var statsErr error
	var statsWG sync.WaitGroup
	if results != nil {
		statsWG.Add(1)
		go func() {
			defer statsWG.Done()
			w := bufio.NewWriter(stats)
			w.WriteString("commit_id,file,variant,N,M,D,duration_ns\n")
			for r := range results {
				if statsErr != nil {
					continue
				}
				_, statsErr = fmt.Fprintf(w, "%s,%s,%s,%d,%d,%d,%d\n", r.commitID, r.file, r.variant, r.N, r.M, r.D, r.duration.Nanoseconds())
			}
			if statsErr == nil {
				statsErr = w.Flush()
			}
		}()
	}

	// Shutdown
	changesWG.Wait()
	close(changes)
	processWG.Wait()
	if results != nil {
		close(results)
		statsWG.Wait()
	}
	close(done)
	ioWG.Wait()

	if err := repo.Close(); err != nil {
		return err
	}
	if statsErr != nil {
		return fmt.Errorf("writing stats: %w", statsErr)
	}
	return nil
}
