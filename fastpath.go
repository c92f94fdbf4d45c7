// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "strings"

// fastPath returns tuned regex bodies for the most common whole-pattern
// shapes ("*", "*.js", "**/*", ...). It reports false for anything else.
func fastPath(input string, opts *Options) (*State, bool) {
	if r, ok := replacements[input]; ok {
		input = r
	}

	chars := charsFor(opts.Windows)
	f := &fastShapes{opts: opts, chars: chars, capture: "?:"}
	if opts.Capture {
		f.capture = ""
	}

	f.nodot, f.slashDot = chars.noDot, chars.noDot
	if opts.Dot {
		f.nodot, f.slashDot = chars.noDots, chars.noDotsSlash
	}

	f.star = chars.star
	if opts.Bash {
		f.star = ".*?"
	}
	if opts.Capture {
		f.star = "(" + f.star + ")"
	}

	body, prefix := removePrefix(input)
	source, ok := f.create(body)
	if !ok {
		return nil, false
	}

	if !opts.StrictSlashes {
		source += chars.slashLiteral + "?"
	}

	return &State{
		Input:      input,
		Prefix:     prefix,
		Output:     source,
		Globstar:   strings.Contains(body, "**") && !opts.NoGlobstar,
		LeadingDot: strings.HasPrefix(body, "."),
		FastPath:   true,
	}, true
}

// fastShapes holds the fragments used by the whole-pattern fast paths.
type fastShapes struct {
	opts     *Options
	chars    *globChars
	capture  string
	nodot    string
	slashDot string
	star     string
}

// globstar returns the "**" fragment, or a plain star with NoGlobstar.
func (f *fastShapes) globstar() string {
	if f.opts.NoGlobstar {
		return f.star
	}

	guard := f.chars.dotLiteral
	if f.opts.Dot {
		guard = f.chars.dotsSlash
	}

	return "(" + f.capture + "(?:(?!" + f.chars.startAnchor + guard + ").)*?)"
}

// create returns the regex body for a known shape of s.
func (f *fastShapes) create(s string) (string, bool) {
	c := f.chars
	switch s {
	case "*":
		return f.nodot + c.oneChar + f.star, true
	case ".*":
		return c.dotLiteral + c.oneChar + f.star, true
	case "*.*":
		return f.nodot + f.star + c.dotLiteral + c.oneChar + f.star, true
	case "*/*":
		return f.nodot + f.star + c.slashLiteral + c.oneChar + f.slashDot + f.star, true
	case "**":
		return f.nodot + f.globstar(), true
	case "**/*":
		return "(?:" + f.nodot + f.globstar() + c.slashLiteral + ")?" + f.slashDot + c.oneChar + f.star, true
	case "**/*.*":
		return "(?:" + f.nodot + f.globstar() + c.slashLiteral + ")?" + f.slashDot + f.star + c.dotLiteral + c.oneChar + f.star, true
	case "**/.*":
		return "(?:" + f.nodot + f.globstar() + c.slashLiteral + ")?" + c.dotLiteral + c.oneChar + f.star, true
	}

	// "<shape>.<ext>" with a plain word extension
	dot := strings.LastIndexByte(s, '.')
	if dot < 0 || dot == len(s)-1 {
		return "", false
	}

	ext := s[dot+1:]
	for i := 0; i < len(ext); i++ {
		if !isAlnum(ext[i]) && ext[i] != '_' {
			return "", false
		}
	}

	source, ok := f.create(s[:dot])
	if !ok {
		return "", false
	}

	return source + c.dotLiteral + ext, true
}
