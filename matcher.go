// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"errors"
	"fmt"
)

// Matcher tests candidate paths against one compiled glob.
type Matcher struct {
	pattern *Pattern
	ignore  AnyMatcher
	opts    Options
}

// Compile compiles glob into a Matcher. It does not use the pattern cache.
func Compile(glob string, opts Options) (*Matcher, error) {
	return newMatcher(glob, opts, MakeRe)
}

// newMatcher builds a matcher with makeRe used for glob and every ignore
// pattern.
func newMatcher(glob string, opts Options, makeRe func(string, Options) (*Pattern, error)) (*Matcher, error) {
	re, err := makeRe(glob, opts)
	if err != nil {
		return nil, err
	}

	m := &Matcher{pattern: re, opts: opts}
	ignore := MergePatterns(opts.Ignore)
	if len(ignore) == 0 {
		return m, nil
	}

	ignoreOpts := opts
	ignoreOpts.Ignore = nil
	ignoreOpts.OnMatch = nil
	ignoreOpts.OnResult = nil

	for _, ig := range ignore {
		im, err := newMatcher(ig, ignoreOpts, makeRe)
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", ig, err)
		}

		m.ignore = append(m.ignore, im)
	}

	return m, nil
}

// Pattern returns the compiled pattern.
func (m *Matcher) Pattern() *Pattern { return m.pattern }

// State returns the parser state of the glob.
func (m *Matcher) State() *State { return m.pattern.state }

// Negated reports whether the glob is negated by a leading "!" or "!(".
func (m *Matcher) Negated() bool { return m.pattern.Negated() }

// Match reports whether candidate matches.
func (m *Matcher) Match(candidate string) bool {
	return m.Test(candidate).IsMatch
}

// Test matches candidate and returns the full decision.
//
// OnResult sees every decision. A positive decision that an ignore pattern
// also matches is flipped to false and reported to OnIgnore instead of
// OnMatch.
func (m *Matcher) Test(candidate string) Result {
	res := Test(candidate, m.pattern, m.opts)

	if m.opts.OnResult != nil {
		m.opts.OnResult(res)
	}

	if !res.IsMatch {
		return res
	}

	if m.ignore.Match(candidate) {
		if m.opts.OnIgnore != nil {
			m.opts.OnIgnore(res)
		}
		res.IsMatch = false
		return res
	}

	if m.opts.OnMatch != nil {
		m.opts.OnMatch(res)
	}

	return res
}

// AnyMatcher matches when any of its matchers does.
type AnyMatcher []*Matcher

// CompileAll compiles every glob. A glob that fails to compile is left out
// and its error is joined into the returned error, so callers may keep
// using the rest.
func CompileAll(globs []string, opts Options) (AnyMatcher, error) {
	return compileAll(globs, opts, Compile)
}

// compileAll compiles globs with compile, joining per-glob failures.
func compileAll(globs []string, opts Options, compile func(string, Options) (*Matcher, error)) (AnyMatcher, error) {
	out := make(AnyMatcher, 0, len(globs))
	var errs []error
	for _, glob := range globs {
		m, err := compile(glob, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("pattern %q: %w", glob, err))
			continue
		}

		out = append(out, m)
	}

	return out, errors.Join(errs...)
}

// Match reports whether any matcher matches candidate.
func (a AnyMatcher) Match(candidate string) bool {
	for _, m := range a {
		if m.Match(candidate) {
			return true
		}
	}

	return false
}

// Test returns the first positive decision, or the last negative one.
func (a AnyMatcher) Test(candidate string) Result {
	res := Result{Input: candidate}
	for _, m := range a {
		res = m.Test(candidate)
		if res.IsMatch {
			return res
		}
	}

	return res
}

// Test matches input against a compiled pattern without running hooks or
// ignore patterns.
//
// An empty input never matches. A non-negated glob equal to the input (as
// given or after normalization) matches without running the regex, unless
// Capture asks for groups.
func Test(input string, re *Pattern, opts Options) Result {
	res := Result{Glob: re.glob, Input: input, Regex: re, State: re.state}
	if input == "" {
		return res
	}

	output := normalizeCandidate(input, &opts)
	res.Output = output

	match := !re.Negated() && (input == re.glob || output == re.glob)
	if !match || opts.Capture {
		switch {
		case opts.MatchBase:
			match = re.MatchString(basename(output, opts.Windows))
		case opts.Capture:
			res.Groups = re.FindStringSubmatch(output)
			match = res.Groups != nil
		default:
			match = re.MatchString(output)
		}
	}

	res.IsMatch = match
	return res
}
