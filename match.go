// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"errors"
	"fmt"
	"strings"
)

// IsMatch reports whether candidate matches glob. Patterns compiled with
// default options come from the process-wide cache.
func IsMatch(candidate, glob string, opts Options) (bool, error) {
	m, err := defaultCache.Compile(glob, opts)
	if err != nil {
		return false, err
	}

	return m.Match(candidate), nil
}

// IsMatchAny reports whether candidate matches any of globs. A glob that
// fails to compile is skipped and reported in the error.
func IsMatchAny(candidate string, globs []string, opts Options) (bool, error) {
	ms, err := defaultCache.CompileAll(globs, opts)
	return ms.Match(candidate), err
}

// MatchBase reports whether the basename of candidate matches glob.
func MatchBase(candidate, glob string, opts Options) (bool, error) {
	re, err := defaultCache.MakeRe(glob, opts)
	if err != nil {
		return false, err
	}

	return re.MatchString(basename(candidate, opts.Windows)), nil
}

// Contains reports whether any of globs matches anywhere inside candidate.
// A glob that occurs literally in candidate matches without compiling.
func Contains(candidate string, globs []string, opts Options) (bool, error) {
	if candidate == "" {
		return false, nil
	}

	opts.Contains = true
	var errs []error
	for _, glob := range globs {
		if glob == "" {
			continue
		}

		if strings.Contains(candidate, glob) {
			return true, nil
		}

		if rest, ok := strings.CutPrefix(candidate, "./"); ok && strings.Contains(rest, glob) {
			return true, nil
		}

		ok, err := IsMatch(candidate, glob, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("pattern %q: %w", glob, err))
			continue
		}

		if ok {
			return true, nil
		}
	}

	return false, errors.Join(errs...)
}

// Match returns the items of list that match glob, in list order.
func Match(list []string, glob string, opts Options) ([]string, error) {
	return MatchPatterns(list, []string{glob}, opts)
}

// MatchPatterns filters list by several globs with set semantics.
//
// Items matched by any positive glob are kept and items matched by a
// negated glob ("!x") are removed. When every glob is negated the
// starting set is the whole list. Returned items are the normalized
// candidates, deduplicated, in first-seen order. Globs that fail to compile
// are skipped and reported in the error.
func MatchPatterns(list []string, globs []string, opts Options) ([]string, error) {
	var (
		items, keep orderedSet
		omit        = make(map[string]struct{})
		negatives   int
		compiled    int
		errs        []error
	)

	onResult := opts.OnResult
	opts.OnResult = func(r Result) {
		items.add(r.Output)
		if onResult != nil {
			onResult(r)
		}
	}

	for _, glob := range globs {
		m, err := defaultCache.Compile(glob, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("pattern %q: %w", glob, err))
			continue
		}

		compiled++
		negated := m.Negated()
		if negated {
			negatives++
		}

		for _, item := range list {
			res := m.Test(item)
			if res.IsMatch == negated {
				continue
			}

			if negated {
				omit[res.Output] = struct{}{}
				continue
			}

			delete(omit, res.Output)
			keep.add(res.Output)
		}
	}

	source := keep.list
	if compiled > 0 && negatives == compiled {
		source = items.list
	}

	out := make([]string, 0, len(source))
	for _, item := range source {
		if _, ok := omit[item]; !ok {
			out = append(out, item)
		}
	}

	return out, errors.Join(errs...)
}

// Not returns the items of list that do not match globs.
func Not(list []string, globs []string, opts Options) ([]string, error) {
	var items []string
	onResult := opts.OnResult
	opts.OnResult = func(r Result) {
		items = append(items, r.Output)
		if onResult != nil {
			onResult(r)
		}
	}

	matched, err := MatchPatterns(list, globs, opts)

	skip := make(map[string]struct{}, len(matched))
	for _, m := range matched {
		skip[m] = struct{}{}
	}

	var out orderedSet
	for _, item := range items {
		if _, ok := skip[item]; !ok {
			out.add(item)
		}
	}

	return out.list, err
}

// orderedSet keeps unique strings in insertion order.
type orderedSet struct {
	seen map[string]struct{}
	list []string
}

// add appends v unless it is already present.
func (s *orderedSet) add(v string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}

	if _, ok := s.seen[v]; ok {
		return
	}

	s.seen[v] = struct{}{}
	s.list = append(s.list, v)
}
