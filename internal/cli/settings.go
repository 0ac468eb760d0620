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

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".linediff.yaml"

const (
	formatUnified    = "unified"
	formatSideBySide = "side-by-side"
	formatJSON       = "json"
	formatStats      = "stats"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// settings are the options of a single comparison. They are read from the config file and
// overridden by flags that are set explicitly.
type settings struct {
	IgnoreWhitespace bool     `yaml:"ignore_whitespace"`
	IgnoreCase       bool     `yaml:"ignore_case"`
	Format           string   `yaml:"format"`
	Context          int      `yaml:"context"`
	Width            int      `yaml:"width"`
	MaxLinePairs     int      `yaml:"max_line_pairs"`
	Labels           []string `yaml:"labels"`
	Color            string   `yaml:"color"`
}

var defaultSettings = settings{
	Format:       formatUnified,
	Context:      -1,
	Width:        40,
	MaxLinePairs: 25_000_000, // ~100 MB for the alignment table
	Color:        colorAuto,
}

func (s settings) validate() error {
	if !slices.Contains([]string{formatUnified, formatSideBySide, formatJSON, formatStats}, s.Format) {
		return fmt.Errorf("invalid format %q", s.Format)
	}
	if !slices.Contains([]string{colorAuto, colorAlways, colorNever}, s.Color) {
		return fmt.Errorf("invalid color mode %q", s.Color)
	}
	if s.Context < -1 {
		return fmt.Errorf("invalid context %d", s.Context)
	}
	if s.Width < 0 {
		return fmt.Errorf("invalid width %d", s.Width)
	}
	if len(s.Labels) > 2 {
		return fmt.Errorf("at most two labels are allowed, got %d", len(s.Labels))
	}
	return nil
}

// overrides copies a flag value into the settings loaded from the config file.
var overrides = map[string]func(dst *settings, src settings){
	"ignore-whitespace": func(dst *settings, src settings) { dst.IgnoreWhitespace = src.IgnoreWhitespace },
	"ignore-case":       func(dst *settings, src settings) { dst.IgnoreCase = src.IgnoreCase },
	"format":            func(dst *settings, src settings) { dst.Format = src.Format },
	"context":           func(dst *settings, src settings) { dst.Context = src.Context },
	"width":             func(dst *settings, src settings) { dst.Width = src.Width },
	"max-line-pairs":    func(dst *settings, src settings) { dst.MaxLinePairs = src.MaxLinePairs },
	"label":             func(dst *settings, src settings) { dst.Labels = src.Labels },
	"color":             func(dst *settings, src settings) { dst.Color = src.Color },
}

// resolveSettings layers the explicitly set flags over the config file over the defaults. An
// empty configFile uses the default config file if it exists.
func resolveSettings(flags *pflag.FlagSet, fromFlags settings, configFile string, logger *slog.Logger) (settings, error) {
	s := defaultSettings
	path, explicit := configFile, configFile != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeSettings(data, &s); err != nil {
			return settings{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		logger.Debug("loaded config file", "path", path)
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// No config file, that's fine.
	default:
		return settings{}, fmt.Errorf("reading config file: %w", err)
	}

	flags.Visit(func(f *pflag.Flag) {
		if set, ok := overrides[f.Name]; ok {
			set(&s, fromFlags)
		}
	})
	return s, nil
}

func decodeSettings(data []byte, s *settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
