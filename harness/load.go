// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a case file with an unrecognized extension.
var ErrUnknownFormat = errors.New("unknown case file format")

// Format is the encoding of a case file.
type Format int

const (
	// TOML is a TOML case file (.toml).
	TOML Format = iota

	// YAML is a YAML case file (.yaml or .yml).
	YAML
)

// File is the top-level structure of a case file.
type File struct {
	Cases []Case `toml:"cases" yaml:"cases"`
}

// FormatFromPath returns the [Format] for the extension of the given path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads the cases in the given TOML or YAML file.
func Load(path string) ([]Case, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cases, nil
}

// Decode decodes and validates the cases in data in the given format.
func Decode(data []byte, format Format) ([]Case, error) {
	var f File
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &f)
	case YAML:
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	for i := range f.Cases {
		if err := f.Cases[i].Validate(); err != nil {
			return nil, err
		}
	}
	return f.Cases, nil
}
