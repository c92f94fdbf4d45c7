// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

// MergePatterns combines glob lists into one list for ordered evaluation.
//
// Empty globs are dropped. A glob repeated later moves to its last
// position, so a "!x" that follows "x" (or the reverse) keeps the order
// that decides the outcome. The result never aliases an input slice.
func MergePatterns(sets ...[]string) []string {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	last := make(map[string]int, total)
	i := 0
	for _, set := range sets {
		for _, glob := range set {
			if glob != "" {
				last[glob] = i
			}
			i++
		}
	}

	out := make([]string, 0, len(last))
	i = 0
	for _, set := range sets {
		for _, glob := range set {
			if glob != "" && last[glob] == i {
				out = append(out, glob)
			}
			i++
		}
	}

	return out
}
