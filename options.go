// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Validate reports option values that can never be valid.
func (opts Options) Validate() error {
	if opts.MaxLength < 0 {
		return fmt.Errorf("%w: maxLength must not be negative, got %d", ErrInvalidOptions, opts.MaxLength)
	}

	if opts.MatchTimeout < 0 {
		return fmt.Errorf("%w: matchTimeout must not be negative, got %s", ErrInvalidOptions, opts.MatchTimeout)
	}

	return nil
}

// DecodeOptions reads an options document in YAML or JSON form.
//
// Keys use the field tags of Options ("dot", "strictSlashes", ...).
// Unknown keys are rejected. An empty document yields the zero Options.
func DecodeOptions(r io.Reader) (Options, error) {
	var opts Options

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}

		return Options{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

// LoadOptionsFile reads and decodes an options document from a file.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("open options file: %w", err)
	}
	defer func() { _ = f.Close() }()

	opts, err := DecodeOptions(f)
	if err != nil {
		return Options{}, fmt.Errorf("decode options file: %w", err)
	}

	return opts, nil
}
