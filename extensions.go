// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "strings"

// ExtensionPatterns converts an extension list to globs matching those
// extensions at any depth.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values are skipped. Returned globs are lower-case "**/*.ext" and
// preserve input order; pair them with Options.NoCase for case-insensitive
// selection.
func ExtensionPatterns(exts []string) []string {
	globs := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = strings.ToLower(ext)
		if ext == "" {
			continue
		}

		globs = append(globs, "**/*."+ext)
	}

	return globs
}
