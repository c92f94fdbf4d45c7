// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadPatterns reads one glob per line.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - "\#" escapes a leading comment token
// - trailing spaces are trimmed unless escaped by "\"
// - a leading "!" is kept, so the line stays a negated glob
func ReadPatterns(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	globs := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		line = trimTrailingSpaces(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		globs = append(globs, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}

	return globs, nil
}

// ReadPatternsString reads globs from string input.
func ReadPatternsString(src string) ([]string, error) {
	return ReadPatterns(strings.NewReader(src))
}

// LoadPatternsFile reads globs from a file.
func LoadPatternsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patterns file: %w", err)
	}
	defer func() { _ = f.Close() }()

	globs, err := ReadPatterns(f)
	if err != nil {
		return nil, fmt.Errorf("read patterns file: %w", err)
	}

	return globs, nil
}

// LoadPatternsFiles reads globs from files in the given order and merges
// them with MergePatterns, so a glob repeated by a later file takes its
// later position.
func LoadPatternsFiles(paths ...string) ([]string, error) {
	sets := make([][]string, 0, len(paths))
	for _, path := range paths {
		globs, err := LoadPatternsFile(path)
		if err != nil {
			return nil, err
		}

		sets = append(sets, globs)
	}

	return MergePatterns(sets...), nil
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
