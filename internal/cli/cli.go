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

// Package cli implements the linediff command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"znkr.io/linediff"
)

// Exit codes, following diff(1).
const (
	ExitSame      = 0
	ExitDifferent = 1
	ExitTrouble   = 2
)

// Run executes the command with args (without the program name) and returns the exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var different bool
	cmd := newCommand(stdin, stdout, stderr, &different)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitTrouble
	}
	if different {
		return ExitDifferent
	}
	return ExitSame
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer, different *bool) *cobra.Command {
	var (
		flags      = defaultSettings
		configFile string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "linediff [flags] LEFT RIGHT",
		Short: "Compare two text files line by line.",
		Long: `Compare two text files line by line and print the differences.

Either file can be "-" to read from stdin. The exit status is 0 if the files are the same, 1 if
they are different and 2 if there was trouble.

Defaults for all flags can be set in a YAML file, see --config.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			s, err := resolveSettings(cmd.Flags(), flags, configFile, logger)
			if err != nil {
				return err
			}
			if err := s.validate(); err != nil {
				return err
			}

			c := comparison{settings: s, stdin: stdin, stdout: stdout, logger: logger}
			*different, err = c.run(args[0], args[1])
			return err
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.BoolVarP(&flags.IgnoreWhitespace, "ignore-whitespace", "w", flags.IgnoreWhitespace, "Ignore leading and trailing whitespace")
	fs.BoolVarP(&flags.IgnoreCase, "ignore-case", "i", flags.IgnoreCase, "Ignore case differences")
	fs.StringVarP(&flags.Format, "format", "f", flags.Format, "Output format: unified, side-by-side, json or stats")
	fs.IntVarP(&flags.Context, "context", "U", flags.Context, "Lines of context around changes, -1 prints the whole file")
	fs.IntVar(&flags.Width, "width", flags.Width, "Width of the left column in side-by-side output")
	fs.IntVar(&flags.MaxLinePairs, "max-line-pairs", flags.MaxLinePairs, "Refuse to compare files with more line pairs, 0 disables the limit")
	fs.StringArrayVarP(&flags.Labels, "label", "L", nil, "Use label instead of the file name, can be repeated for the right file")
	fs.StringVar(&flags.Color, "color", flags.Color, "Color output: auto, always or never")
	fs.StringVar(&configFile, "config", "", "YAML file with flag defaults (default "+defaultConfigFile+" if it exists)")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	return cmd
}

type comparison struct {
	settings
	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
}

// run compares the files and reports whether they are different.
func (c *comparison) run(leftName, rightName string) (bool, error) {
	if leftName == "-" && rightName == "-" {
		return false, errors.New("only one file can be read from stdin")
	}
	left, err := c.read(leftName)
	if err != nil {
		return false, err
	}
	right, err := c.read(rightName)
	if err != nil {
		return false, err
	}
	c.logger.Debug("read input", "left", leftName, "left_bytes", len(left), "right", rightName, "right_bytes", len(right))

	if err := linediff.CheckSize(left, right, c.MaxLinePairs); err != nil {
		var sizeErr *linediff.SizeLimitError
		if errors.As(err, &sizeErr) {
			c.logger.Debug("size guard rejected comparison", "left_lines", sizeErr.LeftLines, "right_lines", sizeErr.RightLines, "limit", sizeErr.Limit)
		}
		return false, fmt.Errorf("comparing %s and %s: %w", leftName, rightName, err)
	}

	var opts []linediff.Option
	if c.IgnoreWhitespace {
		opts = append(opts, linediff.IgnoreWhitespace())
	}
	if c.IgnoreCase {
		opts = append(opts, linediff.IgnoreCase())
	}
	start := time.Now()
	ops := linediff.Diff(left, right, opts...)
	stats := linediff.Stats(ops)
	c.logger.Debug("compared", "operations", len(ops), "added", stats.Added, "removed", stats.Removed, "duration", time.Since(start))

	leftLabel, rightLabel := c.labels(leftName, rightName)
	out := output{
		stdout:     c.stdout,
		color:      c.useColor(),
		leftLabel:  leftLabel,
		rightLabel: rightLabel,
	}
	switch c.Format {
	case formatUnified:
		err = out.unified(ops, c.Context)
	case formatSideBySide:
		err = out.sideBySide(ops, c.Width)
	case formatJSON:
		err = out.json(ops, stats)
	case formatStats:
		err = out.stats(stats)
	}
	if err != nil {
		return false, fmt.Errorf("writing output: %w", err)
	}
	return stats.HasChanges(), nil
}

func (c *comparison) read(name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(c.stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(b), nil
}

func (c *comparison) labels(leftName, rightName string) (string, string) {
	left, right := leftName, rightName
	switch len(c.Labels) {
	case 0:
	case 1:
		left = c.Labels[0]
	default:
		left, right = c.Labels[0], c.Labels[1]
	}
	return left, right
}
