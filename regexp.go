// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Pattern is a compiled glob: the emitted regular expression plus the
// parser state it came from. It is immutable and safe for concurrent use.
type Pattern struct {
	re     *regexp2.Regexp
	state  *State
	glob   string
	source string
}

// String returns the regular expression source.
func (p *Pattern) String() string { return p.source }

// Glob returns the glob the pattern was compiled from.
func (p *Pattern) Glob() string { return p.glob }

// State returns the parser state of the glob.
func (p *Pattern) State() *State { return p.state }

// Regexp returns the underlying compiled expression.
func (p *Pattern) Regexp() *regexp2.Regexp { return p.re }

// Negated reports whether the pattern inverts its match.
func (p *Pattern) Negated() bool {
	return p.state != nil && (p.state.Negated || p.state.NegatedExtglob)
}

// MatchString reports whether s matches. A match that hits the configured
// timeout counts as no match.
func (p *Pattern) MatchString(s string) bool {
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}

// FindStringSubmatch returns the match and its capture groups, or nil.
func (p *Pattern) FindStringSubmatch(s string) []string {
	m, err := p.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	groups := m.Groups()
	out := make([]string, len(groups))
	for i := range groups {
		out[i] = groups[i].String()
	}

	return out
}

// MakeRe compiles glob into a Pattern.
func MakeRe(glob string, opts Options) (*Pattern, error) {
	if glob == "" {
		return nil, fmt.Errorf("%w: expected a non-empty pattern", ErrInvalidInput)
	}

	if err := guard(glob, &opts); err != nil {
		return nil, err
	}

	var state *State
	if !opts.NoFastPaths && (glob[0] == '.' || glob[0] == '*') {
		state, _ = fastPath(glob, &opts)
	}

	if state == nil {
		var err error
		state, err = parse(glob, &opts)
		if err != nil {
			return nil, err
		}
	}

	return CompileRe(state, opts)
}

// MustMakeRe is like MakeRe but panics on error.
func MustMakeRe(glob string, opts Options) *Pattern {
	re, err := MakeRe(glob, opts)
	if err != nil {
		panic(err)
	}

	return re
}

// Parse runs the full parser over glob and returns its state, including
// tokens. Fast paths are never taken.
func Parse(glob string, opts Options) (*State, error) {
	opts.NoFastPaths = true
	return parse(glob, &opts)
}

// CompileRe anchors the output of state and compiles it.
func CompileRe(state *State, opts Options) (*Pattern, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: nil parser state", ErrInvalidInput)
	}

	source := wrapOutput(state.Output, opts.Contains)
	if state.Negated {
		source = "^(?!" + source + `)(?s:.*)\z`
	}

	flags := regexp2.None
	if opts.NoCase {
		flags |= regexp2.IgnoreCase
	}

	re, err := regexp2.Compile(source, flags)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, state.Input, err)
	}

	if opts.MatchTimeout > 0 {
		re.MatchTimeout = opts.MatchTimeout
	}

	if opts.Logger != nil {
		opts.Logger.Debug("compiled glob",
			"glob", state.Input,
			"regex", source,
			"negated", state.Negated,
			"globstar", state.Globstar,
			"fast_path", state.FastPath)
	}

	return &Pattern{re: re, state: state, glob: state.Input, source: source}, nil
}
