// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

// guard enforces the configured length limit before any parsing.
func guard(pattern string, opts *Options) error {
	if limit := opts.maxLength(); len(pattern) > limit {
		return &PatternTooLongError{Length: len(pattern), Max: limit}
	}

	return nil
}

// CheckLength reports whether pattern fits the length limit of opts.
//
// It is the same check every compile entry point runs first.
func CheckLength(pattern string, opts Options) error {
	return guard(pattern, &opts)
}
