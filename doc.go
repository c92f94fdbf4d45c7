// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

// Package pathglob compiles shell-style glob patterns into regular expressions
// and matches path strings against them without touching a filesystem.
//
// Supported syntax: "*", "?", "**" globstars, bracket expressions with POSIX
// classes, brace lists and ranges, extglobs ("!()", "@()", "*()", "+()",
// "?()"), leading "!" negation, backslash escapes and double-quoted literals.
// By default wildcards do not match names beginning with "." (see
// Options.Dot).
//
// Basic flow:
//   - compile a glob (`MakeRe` for the regex, `Compile` for a matcher)
//   - ask for decisions (`Matcher.Match` / `Matcher.Test`)
//   - or use one-shot helpers backed by a bounded LRU cache
//     (`IsMatch`, `Match`, `MatchPatterns`, `Not`, `Contains`)
//
// To split a glob into its static directory and the part that needs
// matching, use `Scan`:
//   - `Scan("src/**/*.go", ScanOptions{}).Base` is "src"
//   - `Scan("src/**/*.go", ScanOptions{}).Glob` is "**/*.go"
//
// Options can be loaded from YAML or JSON documents with `DecodeOptions`, and
// glob lists from files with `LoadPatternsFile`.
//
// Compiled patterns use github.com/dlclark/regexp2 because the emitted
// expressions rely on lookahead, which the standard regexp package lacks.
package pathglob
