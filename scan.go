// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

// ScanOptions controls Scan.
type ScanOptions struct {
	// NoExtglob stops treating "@(", "!(", "*(", "+(" and "?(" as extglobs.
	NoExtglob bool `json:"noextglob,omitempty" yaml:"noextglob,omitempty"`
	// NoNegate keeps a leading "!" as part of the base.
	NoNegate bool `json:"nonegate,omitempty" yaml:"nonegate,omitempty"`
	// NoParen stops treating a bare "(" as glob syntax.
	NoParen bool `json:"noparen,omitempty" yaml:"noparen,omitempty"`
	// Unescape removes escaping backslashes from Base and Glob.
	Unescape bool `json:"unescape,omitempty" yaml:"unescape,omitempty"`
	// ScanToEnd keeps scanning after the first glob character so that every
	// flag reflects the whole pattern.
	ScanToEnd bool `json:"scanToEnd,omitempty" yaml:"scanToEnd,omitempty"`
	// Parts fills ScanResult.Parts and ScanResult.Slashes. Implies ScanToEnd.
	Parts bool `json:"parts,omitempty" yaml:"parts,omitempty"`
	// Tokens fills ScanResult.Tokens and ScanResult.MaxDepth.
	Tokens bool `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// ScanResult is the base/glob split of one pattern.
type ScanResult struct {
	// Prefix holds a stripped leading "!" and "./" sequence.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	// Input is the pattern as given.
	Input string `json:"input" yaml:"input"`
	// Start is the offset where the pattern proper begins, after Prefix.
	Start int `json:"start" yaml:"start"`
	// Base is the static leading path without glob characters.
	Base string `json:"base" yaml:"base"`
	// Glob is the remainder that needs pattern matching.
	Glob string `json:"glob" yaml:"glob"`

	IsBrace        bool `json:"isBrace,omitempty" yaml:"isBrace,omitempty"`
	IsBracket      bool `json:"isBracket,omitempty" yaml:"isBracket,omitempty"`
	IsGlob         bool `json:"isGlob,omitempty" yaml:"isGlob,omitempty"`
	IsExtglob      bool `json:"isExtglob,omitempty" yaml:"isExtglob,omitempty"`
	IsGlobstar     bool `json:"isGlobstar,omitempty" yaml:"isGlobstar,omitempty"`
	Negated        bool `json:"negated,omitempty" yaml:"negated,omitempty"`
	NegatedExtglob bool `json:"negatedExtglob,omitempty" yaml:"negatedExtglob,omitempty"`

	// Parts are the path segments, without an empty leading root segment.
	Parts []string `json:"parts,omitempty" yaml:"parts,omitempty"`
	// Slashes are the offsets of every "/" seen by the scan.
	Slashes []int `json:"slashes,omitempty" yaml:"slashes,omitempty"`
	// Tokens describe each segment when ScanOptions.Tokens is set.
	Tokens []ScanToken `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	// MaxDepth is the number of directory levels the pattern can descend,
	// or -1 when a globstar makes it unbounded.
	MaxDepth int `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`
}

// ScanToken describes one path segment of a scanned pattern.
type ScanToken struct {
	Value string `json:"value" yaml:"value"`
	// Depth is 1 for a plain segment, -1 for a globstar and 0 for a prefix.
	Depth       int  `json:"depth" yaml:"depth"`
	IsPrefix    bool `json:"isPrefix,omitempty" yaml:"isPrefix,omitempty"`
	IsGlob      bool `json:"isGlob,omitempty" yaml:"isGlob,omitempty"`
	IsBrace     bool `json:"isBrace,omitempty" yaml:"isBrace,omitempty"`
	IsBracket   bool `json:"isBracket,omitempty" yaml:"isBracket,omitempty"`
	IsExtglob   bool `json:"isExtglob,omitempty" yaml:"isExtglob,omitempty"`
	IsGlobstar  bool `json:"isGlobstar,omitempty" yaml:"isGlobstar,omitempty"`
	Negated     bool `json:"negated,omitempty" yaml:"negated,omitempty"`
	Backslashes bool `json:"backslashes,omitempty" yaml:"backslashes,omitempty"`
}

// scanner is the cursor of one Scan call.
type scanner struct {
	input string
	index int
	code  byte
	prev  byte
	tok   *ScanToken

	backslashes bool
}

// eos reports whether the last byte was consumed.
func (s *scanner) eos() bool { return s.index >= len(s.input)-1 }

// peek returns the next byte without consuming it.
func (s *scanner) peek() byte {
	if s.index+1 < len(s.input) {
		return s.input[s.index+1]
	}

	return 0
}

// advance consumes and returns the next byte.
func (s *scanner) advance() byte {
	s.prev = s.code
	s.index++
	if s.index < len(s.input) {
		s.code = s.input[s.index]
	} else {
		s.code = 0
	}

	return s.code
}

// escape consumes the character after a backslash.
func (s *scanner) escape() {
	s.backslashes = true
	s.tok.Backslashes = true
	s.advance()
}

// Scan splits pattern into its static base path and its glob remainder.
//
// It does not compile anything and never fails. A pattern without glob
// characters is all base.
func Scan(pattern string, opts ScanOptions) ScanResult {
	scanToEnd := opts.Parts || opts.ScanToEnd
	s := &scanner{input: pattern, index: -1, tok: &ScanToken{}}

	var (
		slashes []int
		tokens  []*ScanToken
		res     = ScanResult{Input: pattern}

		start, lastIndex, braces int
		braceEscaped, finished   bool
	)

	markGlob := func() {
		res.IsGlob = true
		s.tok.IsGlob = true
		finished = true
	}

scan:
	for s.index < len(pattern)-1 {
		code := s.advance()

		if code == '\\' {
			s.escape()
			if s.code == '{' {
				braceEscaped = true
			}
			continue
		}

		if braceEscaped || code == '{' {
			braces++
			for !s.eos() && s.advance() != 0 {
				switch s.code {
				case '\\':
					s.escape()
					continue
				case '{':
					braces++
					continue
				}

				if !braceEscaped && s.code == '.' && s.advance() == '.' {
					res.IsBrace, s.tok.IsBrace = true, true
					markGlob()
					if scanToEnd {
						continue
					}
					break
				}

				if !braceEscaped && s.code == ',' {
					res.IsBrace, s.tok.IsBrace = true, true
					markGlob()
					if scanToEnd {
						continue
					}
					break
				}

				if s.code == '}' {
					braces--
					if braces == 0 {
						braceEscaped = false
						res.IsBrace, s.tok.IsBrace = true, true
						finished = true
						break
					}
				}
			}

			if scanToEnd {
				continue
			}
			break
		}

		if code == '/' {
			slashes = append(slashes, s.index)
			tokens = append(tokens, s.tok)
			s.tok = &ScanToken{}
			if finished {
				continue
			}

			if s.prev == '.' && s.index == start+1 {
				start += 2
				continue
			}

			lastIndex = s.index + 1
			continue
		}

		if !opts.NoExtglob && isExtglobOperator(code) && s.peek() == '(' {
			res.IsExtglob, s.tok.IsExtglob = true, true
			markGlob()
			if code == '!' && s.index == start {
				res.NegatedExtglob = true
			}

			if !scanToEnd {
				break
			}

			s.skipGroup()
			continue
		}

		switch code {
		case '*':
			if s.prev == '*' {
				res.IsGlobstar, s.tok.IsGlobstar = true, true
			}
			markGlob()
			if scanToEnd {
				continue
			}
			break scan
		case '?', '+':
			markGlob()
			if scanToEnd {
				continue
			}
			break scan
		case '[':
			for !s.eos() && s.advance() != 0 {
				if s.code == '\\' {
					s.escape()
					continue
				}

				if s.code == ']' {
					res.IsBracket, s.tok.IsBracket = true, true
					markGlob()
					break
				}
			}

			if scanToEnd {
				continue
			}
			break scan
		}

		if !opts.NoNegate && code == '!' && s.index == start {
			res.Negated, s.tok.Negated = true, true
			start++
			continue
		}

		if !opts.NoParen && code == '(' {
			res.IsGlob, s.tok.IsGlob = true, true
			if !scanToEnd {
				break
			}

			if s.skipGroup() {
				finished = true
			}
			continue
		}

		if res.IsGlob {
			finished = true
			if scanToEnd {
				continue
			}
			break
		}
	}

	if opts.NoExtglob {
		res.IsExtglob = false
		res.IsGlob = false
	}

	str := pattern
	if start > 0 {
		res.Prefix = str[:start]
		str = str[start:]
		lastIndex -= start
	}

	switch {
	case res.IsGlob && lastIndex > 0:
		res.Base = str[:lastIndex]
		res.Glob = str[lastIndex:]
	case res.IsGlob:
		res.Glob = str
	default:
		res.Base = str
	}

	if res.Base != "" && res.Base != "/" && res.Base != str && isPathSeparator(res.Base[len(res.Base)-1]) {
		res.Base = res.Base[:len(res.Base)-1]
	}

	if opts.Unescape {
		res.Glob = removeBackslashes(res.Glob)
		if s.backslashes {
			res.Base = removeBackslashes(res.Base)
		}
	}

	res.Start = start

	if opts.Tokens && !isPathSeparator(s.code) {
		tokens = append(tokens, s.tok)
	}

	if opts.Parts || opts.Tokens {
		res.Parts, res.MaxDepth = splitParts(pattern, start, slashes, tokens, opts.Tokens)
		res.Slashes = slashes
	}

	if opts.Tokens {
		res.Tokens = make([]ScanToken, len(tokens))
		for i, t := range tokens {
			res.Tokens[i] = *t
		}
	}

	return res
}

// skipGroup advances to the next unescaped ")" and reports whether it was
// found.
func (s *scanner) skipGroup() bool {
	for !s.eos() && s.advance() != 0 {
		if s.code == '\\' {
			s.escape()
			continue
		}

		if s.code == ')' {
			return true
		}
	}

	return false
}

// splitParts cuts pattern at the recorded slashes and fills segment tokens.
func splitParts(pattern string, start int, slashes []int, tokens []*ScanToken, withTokens bool) ([]string, int) {
	var parts []string
	maxDepth := 0
	prevIndex := -1

	addDepth := func(t *ScanToken) {
		if !t.IsPrefix {
			t.Depth = 1
			if t.IsGlobstar {
				t.Depth = -1
			}
		}

		if maxDepth < 0 || t.Depth < 0 {
			maxDepth = -1
			return
		}
		maxDepth += t.Depth
	}

	if len(slashes) == 0 {
		value := pattern[start:]
		if value != "" {
			parts = append(parts, value)
		}
		if withTokens && len(tokens) > 0 {
			tokens[0].Value = value
			addDepth(tokens[0])
		}

		return parts, maxDepth
	}

	for idx, i := range slashes {
		n := start
		if prevIndex >= 0 {
			n = prevIndex + 1
		}

		value := ""
		if n <= i {
			value = pattern[n:i]
		}

		if withTokens && idx < len(tokens) {
			if idx == 0 && start != 0 {
				tokens[idx].IsPrefix = true
				tokens[idx].Value = pattern[:start]
			} else {
				tokens[idx].Value = value
			}
			addDepth(tokens[idx])
		}

		if idx != 0 || value != "" {
			parts = append(parts, value)
		}
		prevIndex = i
	}

	if prevIndex+1 < len(pattern) {
		value := pattern[prevIndex+1:]
		parts = append(parts, value)
		if withTokens && len(tokens) > len(slashes) {
			last := tokens[len(tokens)-1]
			last.Value = value
			addDepth(last)
		}
	}

	return parts, maxDepth
}

// isExtglobOperator reports whether c may open an extglob before "(".
func isExtglobOperator(c byte) bool {
	switch c {
	case '+', '@', '*', '?', '!':
		return true
	default:
		return false
	}
}

// isPathSeparator reports whether c is "/" or "\".
func isPathSeparator(c byte) bool {
	return c == '/' || c == '\\'
}
