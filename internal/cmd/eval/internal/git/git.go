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

// Package git provides a simplified git interface for reading the history of a repository.
package git

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// NullID is the object ID git uses for a missing side of a change.
const NullID = "0000000000000000000000000000000000000000"

// Repo reads commits and blobs from a repository. It's safe for concurrent use.
type Repo struct {
	dir string

	mu     sync.Mutex // guards the cat-file process
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	stderr bytes.Buffer
	closed bool
}

// Open starts a long running "git cat-file --batch" process for dir.
func Open(dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	r := &Repo{dir: dir}
	r.cmd = exec.Command("git", "-C", dir, "cat-file", "--batch")
	in, err := r.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdin: %w", err)
	}
	out, err := r.cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdout: %w", err)
	}
	r.cmd.Stderr = &r.stderr
	if err := r.cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting git cat-file: %w", err)
	}
	r.stdin, r.stdout = in, bufio.NewReader(out)
	return r, nil
}

// Close stops the cat-file process. Calling Close more than once has no effect.
func (r *Repo) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.stdin.Close(); err != nil {
		return err
	}
	if err := r.cmd.Wait(); err != nil {
		return fmt.Errorf("git cat-file: %w\n%s", err, r.stderr.String())
	}
	return nil
}

// RevList returns the IDs of all non-merge commits reachable from HEAD, newest first.
func (r *Repo) RevList() ([]string, error) {
	out, err := r.git("rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// Change is a file modified by a commit.
type Change struct {
	Name  string
	OldID string // NullID if the file was added
	NewID string // NullID if the file was deleted
}

// DiffTree returns the files changed by commit compared to its first parent.
func (r *Repo) DiffTree(commit string) ([]Change, error) {
	out, err := r.git("diff-tree", "-r", "--no-commit-id", "--root", commit)
	if err != nil {
		return nil, err
	}
	var ret []Change
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}
		// :<old mode> <new mode> <old id> <new id> <status>\t<path>
		meta, name, ok := strings.Cut(line, "\t")
		if !ok || meta == "" || meta[0] != ':' {
			return nil, fmt.Errorf("unexpected diff-tree line: %q", line)
		}
		fields := strings.Fields(meta[1:])
		if len(fields) != 5 {
			return nil, fmt.Errorf("unexpected diff-tree line: %q", line)
		}
		ret = append(ret, Change{
			Name:  name,
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return ret, nil
}

// Blob returns the contents of the blob with the given ID. The NullID blob is empty.
func (r *Repo) Blob(id string) (string, error) {
	if id == NullID {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintf(r.stdin, "%s\n", id); err != nil {
		return "", fmt.Errorf("writing to git cat-file: %w", err)
	}
	// <id> <type> <size>\n<contents>\n or <id> missing\n
	header, err := r.stdout.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading from git cat-file: %w", err)
	}
	fields := strings.Fields(header)
	switch {
	case len(fields) == 2 && fields[1] == "missing":
		return "", fmt.Errorf("blob %s not found", id)
	case len(fields) != 3:
		return "", fmt.Errorf("unexpected git cat-file header: %q", header)
	case fields[1] != "blob":
		return "", fmt.Errorf("object %s is a %s, not a blob", id, fields[1])
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", fmt.Errorf("unexpected git cat-file header: %q", header)
	}
	buf := make([]byte, n+1)
	if _, err := io.ReadFull(r.stdout, buf); err != nil {
		return "", fmt.Errorf("reading from git cat-file: %w", err)
	}
	if buf[n] != '\n' {
		return "", errors.New("git cat-file output is missing a trailing newline")
	}
	return string(buf[:n]), nil
}

func (r *Repo) git(args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.Command("git", append([]string{"-C", r.dir}, args...)...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %w\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}
