// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

// DefaultMaxLength is the default length guard for patterns, in bytes.
const DefaultMaxLength = 1024 * 64

// globChars holds the regex fragments that differ between POSIX and Windows
// separators.
type globChars struct {
	dotLiteral   string
	plusLiteral  string
	slashLiteral string
	oneChar      string
	qmark        string
	dotsSlash    string
	noDot        string
	noDots       string
	noDotSlash   string
	noDotsSlash  string
	qmarkNoDot   string
	star         string
	startAnchor  string
}

const (
	winSlash    = `\\/`
	winNoSlash  = `[^` + winSlash + `]`
	dotLiteral  = `\.`
	slashLitRaw = `\/`
	startAnchor = `(?:^|` + slashLitRaw + `)`
	endAnchor   = `(?:` + slashLitRaw + `|\z)`
	dotsSlash   = dotLiteral + `{1,2}` + endAnchor
)

var posixChars = globChars{
	dotLiteral:   dotLiteral,
	plusLiteral:  `\+`,
	slashLiteral: slashLitRaw,
	oneChar:      `(?=.)`,
	qmark:        `[^/]`,
	dotsSlash:    dotsSlash,
	noDot:        `(?!` + dotLiteral + `)`,
	noDots:       `(?!` + startAnchor + dotsSlash + `)`,
	noDotSlash:   `(?!` + dotLiteral + `{0,1}` + endAnchor + `)`,
	noDotsSlash:  `(?!` + dotsSlash + `)`,
	qmarkNoDot:   `[^.` + slashLitRaw + `]`,
	star:         `[^/]*?`,
	startAnchor:  startAnchor,
}

var windowsChars = globChars{
	dotLiteral:   dotLiteral,
	plusLiteral:  `\+`,
	slashLiteral: `[` + winSlash + `]`,
	oneChar:      `(?=.)`,
	qmark:        winNoSlash,
	dotsSlash:    dotLiteral + `{1,2}(?:[` + winSlash + `]|\z)`,
	noDot:        `(?!` + dotLiteral + `)`,
	noDots:       `(?!(?:^|[` + winSlash + `])` + dotLiteral + `{1,2}(?:[` + winSlash + `]|\z))`,
	noDotSlash:   `(?!` + dotLiteral + `{0,1}(?:[` + winSlash + `]|\z))`,
	noDotsSlash:  `(?!` + dotLiteral + `{1,2}(?:[` + winSlash + `]|\z))`,
	qmarkNoDot:   `[^.` + winSlash + `]`,
	star:         winNoSlash + `*?`,
	startAnchor:  `(?:^|[` + winSlash + `])`,
}

// charsFor returns the separator fragments for the platform selected by opts.
func charsFor(windows bool) *globChars {
	if windows {
		return &windowsChars
	}

	return &posixChars
}

// extglobKind is the operator that opened an extglob group.
type extglobKind uint8

const (
	extglobNegate extglobKind = iota
	extglobQmark
	extglobPlus
	extglobStar
	extglobAt
)

// extglobChars describes how one extglob operator opens and closes.
type extglobChars struct {
	kind  extglobKind
	open  string
	close string
}

// extglobFor returns the open/close fragments for operator op.
func extglobFor(op byte, chars *globChars) (extglobChars, bool) {
	switch op {
	case '!':
		return extglobChars{kind: extglobNegate, open: `(?:(?!(?:`, close: `))` + chars.star + `)`}, true
	case '?':
		return extglobChars{kind: extglobQmark, open: `(?:`, close: `)?`}, true
	case '+':
		return extglobChars{kind: extglobPlus, open: `(?:`, close: `)+`}, true
	case '*':
		return extglobChars{kind: extglobStar, open: `(?:`, close: `)*`}, true
	case '@':
		return extglobChars{kind: extglobAt, open: `(?:`, close: `)`}, true
	default:
		return extglobChars{}, false
	}
}

// posixClasses maps POSIX bracket class names to regex class bodies.
var posixClasses = map[string]string{
	"alnum":  `a-zA-Z0-9`,
	"alpha":  `a-zA-Z`,
	"ascii":  `\x00-\x7F`,
	"blank":  ` \t`,
	"cntrl":  `\x00-\x1F\x7F`,
	"digit":  `0-9`,
	"graph":  `\x21-\x7E`,
	"lower":  `a-z`,
	"print":  `\x20-\x7E `,
	"punct":  `\-!"#$%&'()\*+,./:;<=>?@[\]^_` + "`" + `{|}~`,
	"space":  ` \t\r\n\v\f`,
	"upper":  `A-Z`,
	"word":   `A-Za-z0-9_`,
	"xdigit": `A-Fa-f0-9`,
}

// replacements collapse redundant star sequences before parsing.
var replacements = map[string]string{
	"***":      "*",
	"**/**":    "**",
	"**/**/**": "**",
}
