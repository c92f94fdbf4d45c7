// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "strings"

// isRegexSpecial reports whether c has meaning in regex source outside a class.
func isRegexSpecial(c byte) bool {
	switch c {
	case '-', '*', '+', '?', '.', '^', '$', '{', '}', '(', '|', ')', '[', ']':
		return true
	default:
		return false
	}
}

// hasRegexChars reports whether s contains any regex special character.
func hasRegexChars(s string) bool {
	for i := 0; i < len(s); i++ {
		if isRegexSpecial(s[i]) {
			return true
		}
	}

	return false
}

// escapeRegex escapes every regex special character in s.
func escapeRegex(s string) string {
	if !hasRegexChars(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if isRegexSpecial(s[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

// isWordByte reports whether c is an ASCII word character or part of a
// multi-byte rune. Non-ASCII bytes never need escaping.
func isWordByte(c byte) bool {
	return c == '_' || c >= 0x80 || isAlnum(c)
}

// isAlnum reports whether c is an ASCII letter or digit.
func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// toPosixSlashes converts backslashes to forward slashes unless they escape
// a glob or regex metacharacter.
func toPosixSlashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	b := []byte(s)
	for i := range b {
		if b[i] != '\\' {
			continue
		}

		if i+1 < len(b) {
			switch b[i+1] {
			case '*', '+', '?', '^', '$', '{', '}', '(', '|', ')', '[', ']':
				continue
			}
		}

		b[i] = '/'
	}

	return string(b)
}

// removeBackslashes drops escaping backslashes outside bracket expressions.
func removeBackslashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '[' {
			if end := bracketEnd(s, i); end > 0 {
				b.WriteString(s[i : end+1])
				i = end
				continue
			}
		}

		if s[i] == '\\' && i+1 < len(s) && s[i+1] != '\n' {
			i++
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

// bracketEnd finds the first "]" after start that is not escaped and not
// directly after "[". It returns -1 when there is none on the same line.
func bracketEnd(s string, start int) int {
	for k := start + 2; k < len(s); k++ {
		if s[k] == '\n' || s[k-1] == '\n' {
			return -1
		}

		if s[k] == ']' && s[k-1] != '\\' {
			return k
		}
	}

	return -1
}

// escapeUnescaped escapes regex special characters in s that are not
// already preceded by a backslash.
func escapeUnescaped(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
			continue
		}

		if isRegexSpecial(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}

	return b.String()
}

// removePrefix strips a leading "./" and reports what was removed.
func removePrefix(s string) (string, string) {
	if rest, ok := strings.CutPrefix(s, "./"); ok {
		return rest, "./"
	}

	return s, ""
}

// wrapOutput anchors a regex body unless contains is set.
func wrapOutput(body string, contains bool) string {
	if contains {
		return "(?:" + body + ")"
	}

	return "^(?:" + body + `)\z`
}

// basename returns the final path component, skipping one trailing separator.
func basename(path string, windows bool) string {
	isSep := func(c byte) bool {
		return c == '/' || (windows && c == '\\')
	}

	end := len(path)
	if end > 0 && isSep(path[end-1]) {
		end--
	}

	for i := end - 1; i >= 0; i-- {
		if isSep(path[i]) {
			return path[i+1 : end]
		}
	}

	return path[:end]
}

// normalizeCandidate applies the candidate formatter selected by opts and
// drops a leading "./".
func normalizeCandidate(input string, opts *Options) string {
	if opts.Format != nil {
		return opts.Format(input)
	}

	if opts.Windows || opts.Unixify {
		input = toPosixSlashes(input)
	}

	if rest, ok := strings.CutPrefix(input, "./"); ok && rest != "" {
		return rest
	}

	return input
}

// isClassEscape reports whether `\c` names a shorthand class valid inside
// a bracket expression.
func isClassEscape(c byte) bool {
	switch c {
	case 'd', 'D', 'w', 'W', 's', 'S':
		return true
	default:
		return false
	}
}
