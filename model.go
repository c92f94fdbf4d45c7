// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"log/slog"
	"time"
)

// Options controls compilation and matching.
//
// The zero value is the default configuration. Only zero-valued compile
// options are served from the pattern cache.
type Options struct {
	// Dot lets wildcards match names beginning with ".".
	Dot bool `json:"dot,omitempty" yaml:"dot,omitempty"`
	// NoNegate disables leading "!" negation.
	NoNegate bool `json:"nonegate,omitempty" yaml:"nonegate,omitempty"`
	// NoExtglob disables "!()", "@()", "*()", "+()" and "?()" groups.
	NoExtglob bool `json:"noextglob,omitempty" yaml:"noextglob,omitempty"`
	// NoGlobstar makes "**" behave like "*".
	NoGlobstar bool `json:"noglobstar,omitempty" yaml:"noglobstar,omitempty"`
	// NoBrace treats "{" and "}" as literals.
	NoBrace bool `json:"nobrace,omitempty" yaml:"nobrace,omitempty"`
	// NoBracket treats "[" and "]" as literals.
	NoBracket bool `json:"nobracket,omitempty" yaml:"nobracket,omitempty"`
	// NoCase enables case-insensitive matching.
	NoCase bool `json:"nocase,omitempty" yaml:"nocase,omitempty"`
	// Windows treats backslash as an additional path separator and
	// normalizes candidate backslashes before testing.
	Windows bool `json:"windows,omitempty" yaml:"windows,omitempty"`
	// Unixify normalizes candidate backslashes to forward slashes before testing.
	Unixify bool `json:"unixify,omitempty" yaml:"unixify,omitempty"`
	// StrictSlashes disables the implicit optional trailing slash.
	StrictSlashes bool `json:"strictSlashes,omitempty" yaml:"strictSlashes,omitempty"`
	// StrictBrackets turns unbalanced group delimiters into errors.
	StrictBrackets bool `json:"strictBrackets,omitempty" yaml:"strictBrackets,omitempty"`
	// MaxLength lowers the length guard. Zero means DefaultMaxLength.
	MaxLength int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	// Capture wraps wildcard fragments in capturing groups.
	Capture bool `json:"capture,omitempty" yaml:"capture,omitempty"`
	// Contains drops the start/end anchors so the pattern may match anywhere.
	Contains bool `json:"contains,omitempty" yaml:"contains,omitempty"`
	// MatchBase matches patterns against the basename of the candidate.
	MatchBase bool `json:"matchBase,omitempty" yaml:"matchBase,omitempty"`
	// KeepQuotes keeps double quotes in the emitted regex.
	KeepQuotes bool `json:"keepQuotes,omitempty" yaml:"keepQuotes,omitempty"`
	// Unescape removes escaping backslashes instead of keeping them.
	Unescape bool `json:"unescape,omitempty" yaml:"unescape,omitempty"`
	// Bash makes a single "*" match across separators, like bash without globstar.
	Bash bool `json:"bash,omitempty" yaml:"bash,omitempty"`
	// NoFastPaths always runs the full parser.
	NoFastPaths bool `json:"noFastPaths,omitempty" yaml:"noFastPaths,omitempty"`
	// LiteralBrackets selects how bracket expressions without regex
	// characters are read: nil tries class and literal, true only literal,
	// false only class.
	LiteralBrackets *bool `json:"literalBrackets,omitempty" yaml:"literalBrackets,omitempty"`
	// Prepend is a regex fragment emitted before the compiled body.
	Prepend string `json:"prepend,omitempty" yaml:"prepend,omitempty"`
	// Ignore lists patterns whose matches are rejected.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	// MatchTimeout bounds one regex evaluation. Zero means no timeout.
	MatchTimeout time.Duration `json:"matchTimeout,omitempty" yaml:"matchTimeout,omitempty"`

	// ExpandRange expands "{a..b}" brace ranges into a regex fragment.
	ExpandRange func(args []string, opts Options) string `json:"-" yaml:"-"`
	// Format rewrites candidates before testing. It replaces the
	// Windows/Unixify normalization.
	Format func(string) string `json:"-" yaml:"-"`
	// OnResult observes every match decision.
	OnResult func(Result) `json:"-" yaml:"-"`
	// OnMatch observes positive decisions.
	OnMatch func(Result) `json:"-" yaml:"-"`
	// OnIgnore observes decisions flipped by Ignore patterns.
	OnIgnore func(Result) `json:"-" yaml:"-"`
	// Logger receives debug records about compilation. Nil disables logging.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// maxLength returns the effective length guard.
func (opts *Options) maxLength() int {
	if opts.MaxLength > 0 && opts.MaxLength < DefaultMaxLength {
		return opts.MaxLength
	}

	return DefaultMaxLength
}

// cacheable reports whether compiled output for opts equals the default
// configuration, which is the only configuration kept in the cache.
func (opts *Options) cacheable() bool {
	return !opts.Dot && !opts.NoNegate && !opts.NoExtglob && !opts.NoGlobstar &&
		!opts.NoBrace && !opts.NoBracket && !opts.NoCase && !opts.Windows &&
		!opts.StrictSlashes && !opts.StrictBrackets && opts.MaxLength == 0 &&
		!opts.Capture && !opts.Contains && !opts.KeepQuotes && !opts.Unescape &&
		!opts.Bash && !opts.NoFastPaths && opts.LiteralBrackets == nil &&
		opts.Prepend == "" && opts.MatchTimeout == 0 && opts.ExpandRange == nil
}

// State is the parser result for one pattern. It is immutable once returned.
type State struct {
	// Input is the pattern as given.
	Input string `json:"input" yaml:"input"`
	// Prefix is a stripped leading "./".
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	// Output is the regex body without anchors.
	Output string `json:"output" yaml:"output"`
	// Negated reports a leading "!" negation.
	Negated bool `json:"negated,omitempty" yaml:"negated,omitempty"`
	// NegatedExtglob reports a pattern starting with "!(".
	NegatedExtglob bool `json:"negatedExtglob,omitempty" yaml:"negatedExtglob,omitempty"`
	// Globstar reports that "**" was used.
	Globstar bool `json:"globstar,omitempty" yaml:"globstar,omitempty"`
	// LeadingDot reports that a segment explicitly started with ".".
	LeadingDot bool `json:"leadingDot,omitempty" yaml:"leadingDot,omitempty"`
	// FastPath reports that the output came from a precomputed shape.
	FastPath bool `json:"fastPath,omitempty" yaml:"fastPath,omitempty"`
	// Tokens are the classified output units, empty for fast paths.
	Tokens []Token `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// TokenType classifies one parser token.
type TokenType string

// Token types emitted by the parser.
const (
	TokenBOS        TokenType = "bos"
	TokenText       TokenType = "text"
	TokenSlash      TokenType = "slash"
	TokenDot        TokenType = "dot"
	TokenDots       TokenType = "dots"
	TokenStar       TokenType = "star"
	TokenGlobstar   TokenType = "globstar"
	TokenQmark      TokenType = "qmark"
	TokenPlus       TokenType = "plus"
	TokenAt         TokenType = "at"
	TokenNegate     TokenType = "negate"
	TokenParen      TokenType = "paren"
	TokenBracket    TokenType = "bracket"
	TokenBrace      TokenType = "brace"
	TokenComma      TokenType = "comma"
	TokenMaybeSlash TokenType = "maybe_slash"
)

// Token is one classified unit of parser output.
type Token struct {
	// Type classifies the token.
	Type TokenType `json:"type" yaml:"type"`
	// Value is the consumed pattern text.
	Value string `json:"value" yaml:"value"`
	// Output is the regex fragment emitted for the token.
	Output string `json:"output" yaml:"output"`
	// Extglob marks tokens that open or close an extglob group.
	Extglob bool `json:"extglob,omitempty" yaml:"extglob,omitempty"`
	// Posix marks bracket tokens holding a POSIX class.
	Posix bool `json:"posix,omitempty" yaml:"posix,omitempty"`
}

// Result describes one match decision.
type Result struct {
	// Glob is the pattern source.
	Glob string
	// Input is the candidate as given.
	Input string
	// Output is the candidate after separator normalization.
	Output string
	// IsMatch is the final decision.
	IsMatch bool
	// Regex is the compiled pattern that was tested.
	Regex *Pattern
	// State is the parser state of Glob.
	State *State
	// Groups holds capture group texts when Capture is enabled.
	Groups []string
}
