// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"errors"
	"fmt"
)

// Sentinel errors for pathglob operations.
var (
	// ErrInvalidInput indicates an empty or otherwise unusable pattern.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnbalancedGroup indicates a group delimiter without its counterpart.
	ErrUnbalancedGroup = errors.New("unbalanced group")
	// ErrPatternTooLong indicates a pattern longer than the configured limit.
	ErrPatternTooLong = errors.New("pattern too long")
	// ErrInvalidPattern indicates that the emitted regular expression was rejected.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidOptions indicates a malformed options document.
	ErrInvalidOptions = errors.New("invalid options")
)

// GroupKind identifies one bracket family tracked by the parser.
type GroupKind uint8

const (
	// GroupParen is "(" ... ")".
	GroupParen GroupKind = iota
	// GroupBracket is "[" ... "]".
	GroupBracket
	// GroupBrace is "{" ... "}".
	GroupBrace
	// GroupQuote is a double-quoted literal section.
	GroupQuote
)

// String returns the opening delimiter of the family.
func (k GroupKind) String() string {
	switch k {
	case GroupParen:
		return "("
	case GroupBracket:
		return "["
	case GroupBrace:
		return "{"
	case GroupQuote:
		return `"`
	default:
		return "?"
	}
}

// closer returns the closing delimiter of the family.
func (k GroupKind) closer() string {
	switch k {
	case GroupParen:
		return ")"
	case GroupBracket:
		return "]"
	case GroupBrace:
		return "}"
	case GroupQuote:
		return `"`
	default:
		return "?"
	}
}

// PatternTooLongError reports a pattern rejected by the length guard.
type PatternTooLongError struct {
	// Length is the measured pattern length in bytes.
	Length int
	// Max is the limit in effect.
	Max int
}

// Error implements error.
func (e *PatternTooLongError) Error() string {
	return fmt.Sprintf("%v: input length %d exceeds maximum allowed length %d", ErrPatternTooLong, e.Length, e.Max)
}

// Unwrap lets errors.Is match ErrPatternTooLong.
func (e *PatternTooLongError) Unwrap() error { return ErrPatternTooLong }

// UnbalancedGroupError reports a delimiter whose counterpart is missing.
type UnbalancedGroupError struct {
	// Family is the bracket family of the offending delimiter.
	Family GroupKind
	// Position is the byte offset of the offending delimiter in the pattern.
	Position int
	// Missing is "opening" when a closer had no opener and "closing" when an
	// opener was never closed.
	Missing string
}

// Error implements error.
func (e *UnbalancedGroupError) Error() string {
	missing, offending := e.Family.closer(), e.Family.String()
	if e.Missing == "opening" {
		missing, offending = offending, missing
	}

	return fmt.Sprintf("%v: missing %s %q at offset %d - use %q to match literal characters",
		ErrUnbalancedGroup, e.Missing, missing, e.Position, `\`+offending)
}

// Unwrap lets errors.Is match ErrUnbalancedGroup.
func (e *UnbalancedGroupError) Unwrap() error { return ErrUnbalancedGroup }
