// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeReSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		glob string
		want string
	}{
		{glob: "*", want: `^(?:(?!\.)(?=.)[^/]*?\/?)\z`},
		{glob: "foo/*", want: `^(?:foo\/(?!\.)(?=.)[^/]*?\/?)\z`},
		{glob: "a/**/c", want: `^(?:a(?:\/(?!\.)(?:(?:(?!(?:^|\/)\.).)*?)\/|\/|\z)c)\z`},
		{glob: "!*.md", want: `^(?!^(?:(?!\.)(?=.)[^/]*?\.md)\z)(?s:.*)\z`},
		{glob: "*.js", want: `^(?:(?!\.)(?=.)[^/]*?\.js\/?)\z`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.glob, func(t *testing.T) {
			t.Parallel()

			re, err := MakeRe(tt.glob, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.String())
			assert.Equal(t, tt.glob, re.Glob())
		})
	}
}

func TestMakeReIdempotent(t *testing.T) {
	t.Parallel()

	for _, glob := range []string{"*", "a/**/b", "!(foo).js", "{a,b}/[0-9]*", "src/**/*.{go,mod}"} {
		first, err := MakeRe(glob, Options{})
		require.NoError(t, err, glob)

		second, err := MakeRe(glob, Options{})
		require.NoError(t, err, glob)

		assert.Equal(t, first.String(), second.String(), glob)
	}
}

func TestMatchGrammar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		glob      string
		candidate string
		opts      Options
		want      bool
	}{
		{name: "star", glob: "*.js", candidate: "a.js", want: true},
		{name: "star stays in segment", glob: "*.js", candidate: "a/b.js"},
		{name: "star skips dotfiles", glob: "*.js", candidate: ".a.js"},
		{name: "star with dot", glob: "*.js", candidate: ".a.js", opts: Options{Dot: true}, want: true},
		{name: "segment star", glob: "foo/*", candidate: "foo/bar", want: true},
		{name: "segment star depth", glob: "foo/*", candidate: "foo/bar/baz"},
		{name: "segment star dotfile", glob: "foo/*", candidate: "foo/.bar"},
		{name: "bare star dotfile", glob: "*", candidate: ".bar"},
		{name: "bare star dot option", glob: "*", candidate: ".bar", opts: Options{Dot: true}, want: true},
		{name: "globstar zero segments", glob: "a/**/c", candidate: "a/c", want: true},
		{name: "globstar one segment", glob: "a/**/c", candidate: "a/b/c", want: true},
		{name: "globstar many segments", glob: "a/**/c", candidate: "a/b/d/c", want: true},
		{name: "globstar dot segment", glob: "a/**/c", candidate: "a/.b/c"},
		{name: "bare globstar", glob: "**", candidate: "a/b/c", want: true},
		{name: "bare globstar dotfile", glob: "**", candidate: "a/.b"},
		{name: "trailing globstar self", glob: "a/**", candidate: "a", want: true},
		{name: "trailing globstar nested", glob: "a/**", candidate: "a/b/c", want: true},
		{name: "trailing globstar prefix only", glob: "a/**", candidate: "ab"},
		{name: "leading globstar", glob: "**/*.js", candidate: "a/b/c.js", want: true},
		{name: "leading globstar top level", glob: "**/*.js", candidate: "c.js", want: true},
		{name: "leading globstar dot dir", glob: "**/*.js", candidate: "a/.b/c.js"},
		{name: "qmark", glob: "?.txt", candidate: "a.txt", want: true},
		{name: "qmark one char", glob: "?.txt", candidate: "ab.txt"},
		{name: "qmark segment", glob: "a/?/c", candidate: "a/b/c", want: true},
		{name: "qmark dotfile", glob: "??", candidate: ".x"},
		{name: "bracket range", glob: "file[0-9].txt", candidate: "file3.txt", want: true},
		{name: "bracket range miss", glob: "file[0-9].txt", candidate: "filex.txt"},
		{name: "bracket class", glob: "[abc].js", candidate: "a.js", want: true},
		{name: "bracket class miss", glob: "[abc].js", candidate: "d.js"},
		{name: "bracket negation", glob: "[!a]*", candidate: "bcd", want: true},
		{name: "bracket negation miss", glob: "[!a]*", candidate: "abc"},
		{name: "bracket leading dot", glob: "[!a]*", candidate: ".x"},
		{name: "posix class", glob: "[[:digit:]]x", candidate: "1x", want: true},
		{name: "posix class miss", glob: "[[:digit:]]x", candidate: "ax"},
		{name: "brace list", glob: "*.{js,ts}", candidate: "a.ts", want: true},
		{name: "brace list miss", glob: "*.{js,ts}", candidate: "a.md"},
		{name: "brace range", glob: "{1..3}", candidate: "2", want: true},
		{name: "brace range miss", glob: "{1..3}", candidate: "4"},
		{name: "brace letter range", glob: "{a..c}", candidate: "b", want: true},
		{name: "plus extglob", glob: "+(a|b).js", candidate: "ab.js", want: true},
		{name: "plus extglob miss", glob: "+(a|b).js", candidate: "c.js"},
		{name: "at extglob", glob: "@(a|b)", candidate: "a", want: true},
		{name: "at extglob once", glob: "@(a|b)", candidate: "ab"},
		{name: "star extglob", glob: "*(a)", candidate: "aaa", want: true},
		{name: "star extglob miss", glob: "*(a)", candidate: "b"},
		{name: "qmark extglob empty", glob: "?(a)b", candidate: "b", want: true},
		{name: "qmark extglob one", glob: "?(a)b", candidate: "ab", want: true},
		{name: "negated extglob", glob: "!(foo)", candidate: "bar", want: true},
		{name: "negated extglob miss", glob: "!(foo)", candidate: "foo"},
		{name: "negated extglob longer", glob: "!(foo)", candidate: "foobar", want: true},
		{name: "negated extglob ext", glob: "!(foo).js", candidate: "bar.js", want: true},
		{name: "negated extglob ext miss", glob: "!(foo).js", candidate: "foo.js"},
		{name: "negation", glob: "!*.md", candidate: "a.js", want: true},
		{name: "negation miss", glob: "!*.md", candidate: "b.md"},
		{name: "double negation", glob: "!!*.md", candidate: "b.md", want: true},
		{name: "nocase", glob: "*.JS", candidate: "a.js", opts: Options{NoCase: true}, want: true},
		{name: "case sensitive", glob: "*.JS", candidate: "a.js"},
		{name: "windows separators", glob: "a/*", candidate: `a\b`, opts: Options{Windows: true}, want: true},
		{name: "unixify", glob: "a/*/c", candidate: `a\b\c`, opts: Options{Unixify: true}, want: true},
		{name: "nobrace literal", glob: "{a,b}", candidate: "a", opts: Options{NoBrace: true}},
		{name: "noextglob literal", glob: "+(a)", candidate: "+a", opts: Options{NoExtglob: true}, want: true},
		{name: "noextglob no group", glob: "+(a)", candidate: "a", opts: Options{NoExtglob: true}},
		{name: "noglobstar", glob: "a/**", candidate: "a/b", opts: Options{NoGlobstar: true}, want: true},
		{name: "noglobstar depth", glob: "a/**", candidate: "a/b/c", opts: Options{NoGlobstar: true}},
		{name: "trailing slash", glob: "a/*", candidate: "a/b/", want: true},
		{name: "strict slashes", glob: "a/*", candidate: "a/b/", opts: Options{StrictSlashes: true}},
		{name: "quoted literal", glob: `"*.js"`, candidate: "a.js"},
		{name: "match base", glob: "*.js", candidate: "a/b/c.js", opts: Options{MatchBase: true}, want: true},
		{name: "contains", glob: "b*", candidate: "abc", opts: Options{Contains: true}, want: true},
		{name: "leading dot slash", glob: "*.js", candidate: "./a.js", want: true},
		{name: "equal literal", glob: "foo", candidate: "foo", want: true},
		{name: "empty candidate", glob: "*", candidate: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := Compile(tt.glob, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Match(tt.candidate), "glob %q candidate %q regex %s", tt.glob, tt.candidate, m.Pattern())
		})
	}
}

func TestMakeReEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		glob string
		in   string
		want bool
	}{
		{name: "escaped star", glob: `a\*b`, in: "a*b", want: true},
		{name: "escaped star is literal", glob: `a\*b`, in: "axb"},
		{name: "quoted star", glob: `"*.js"`, in: "*.js", want: true},
		{name: "unclosed brace", glob: "a{b", in: "a{b", want: true},
		{name: "unclosed brace literal", glob: "a{b", in: "ab"},
		{name: "unclosed brace list", glob: "a{b,c", in: "a{b,c", want: true},
		{name: "unclosed paren", glob: "a(b", in: "a(b", want: true},
		{name: "unclosed extglob", glob: "+(a", in: "+(a", want: true},
		{name: "stray closing paren", glob: "a)", in: "a)", want: true},
		{name: "single brace word", glob: "{a}", in: "{a}", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			re, err := MakeRe(tt.glob, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.MatchString(tt.in), "regex %s", re)
		})
	}
}

func TestMakeReErrors(t *testing.T) {
	t.Parallel()

	_, err := MakeRe("", Options{})
	require.ErrorIs(t, err, ErrInvalidInput)

	strict := Options{StrictBrackets: true}
	for _, glob := range []string{"*)", "*(", "foo/(bar", "a]", "a}", "a}b", "{a(}", "{a", "[a", `"abc`} {
		_, err := MakeRe(glob, strict)
		require.ErrorIs(t, err, ErrUnbalancedGroup, glob)
	}

	for _, glob := range []string{"*)", "*(", "foo/(bar", "a]", "a}", "a}b", "{a(}", "{a", "[a", `"abc`} {
		_, err := MakeRe(glob, Options{})
		require.NoError(t, err, glob)
	}
}

func TestMixedGroupRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		glob string
		in   string
		want bool
	}{
		{name: "paren inside brace list", glob: "a/{b,(c}", in: "a/b", want: true},
		{name: "paren inside brace list literal", glob: "a/{b,(c}", in: "a/(c", want: true},
		{name: "paren inside brace list no brace text", glob: "a/{b,(c}", in: "a/{b,c"},
		{name: "brace inside paren", glob: "a/(b{c)/d", in: "a/b{c/d", want: true},
		{name: "brace inside paren not a group", glob: "a/(b{c)/d", in: "a/bc/d"},
		{name: "paren inside single brace", glob: "a/{b(c}/d", in: "a/{b(c}/d", want: true},
		{name: "paren inside single brace not alternation", glob: "a/{b(c}/d", in: "a/b(c}/d"},
		{name: "comma after inner paren", glob: "{a(,b}", in: "{a(,b}", want: true},
		{name: "extglob inside brace list", glob: "{a,@(b}", in: "@(b", want: true},
		{name: "extglob inside brace list not group", glob: "{a,@(b}", in: "b"},
		{name: "brace inside extglob", glob: "@(a{b)", in: "a{b", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			re, err := MakeRe(tt.glob, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.MatchString(tt.in), "regex %s", re)
		})
	}

	ok, err := IsMatch("a/{b(c}/d", "a/{b(c}/d", Options{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUnbalancedGroupError(t *testing.T) {
	t.Parallel()

	_, err := MakeRe("foo/(bar", Options{StrictBrackets: true})

	var ug *UnbalancedGroupError
	require.True(t, errors.As(err, &ug))
	assert.Equal(t, GroupParen, ug.Family)
	assert.Equal(t, 4, ug.Position)
	assert.Equal(t, "closing", ug.Missing)
	assert.Contains(t, err.Error(), `missing closing ")"`)

	_, err = MakeRe("a]", Options{StrictBrackets: true})
	require.True(t, errors.As(err, &ug))
	assert.Equal(t, GroupBracket, ug.Family)
	assert.Equal(t, 1, ug.Position)
	assert.Equal(t, "opening", ug.Missing)
	assert.Contains(t, err.Error(), `missing opening "["`)

	_, err = MakeRe(`"abc`, Options{StrictBrackets: true})
	require.True(t, errors.As(err, &ug))
	assert.Equal(t, GroupQuote, ug.Family)
	assert.Equal(t, 0, ug.Position)
}

func TestLengthGuard(t *testing.T) {
	t.Parallel()

	opts := Options{MaxLength: 10}

	_, err := MakeRe(strings.Repeat("*", 11), opts)
	require.ErrorIs(t, err, ErrPatternTooLong)

	var tooLong *PatternTooLongError
	require.True(t, errors.As(err, &tooLong))
	assert.Equal(t, 11, tooLong.Length)
	assert.Equal(t, 10, tooLong.Max)

	_, err = MakeRe(strings.Repeat("*", 9), opts)
	require.NoError(t, err)

	_, err = IsMatch("x", strings.Repeat("*", 11), opts)
	require.ErrorIs(t, err, ErrPatternTooLong)

	require.NoError(t, CheckLength(strings.Repeat("a", 10), opts))
	require.ErrorIs(t, CheckLength(strings.Repeat("a", DefaultMaxLength+1), Options{MaxLength: DefaultMaxLength * 2}), ErrPatternTooLong)
}

func TestParseTokens(t *testing.T) {
	t.Parallel()

	state, err := Parse("a/*.js", Options{})
	require.NoError(t, err)

	types := make([]TokenType, 0, len(state.Tokens))
	for _, tok := range state.Tokens {
		types = append(types, tok.Type)
	}

	assert.Equal(t, []TokenType{TokenBOS, TokenText, TokenSlash, TokenStar, TokenText}, types)
	assert.Equal(t, ".js", state.Tokens[4].Value)
	assert.Equal(t, `a\/(?!\.)(?=.)[^/]*?\.js`, state.Output)
	assert.False(t, state.Globstar)
	assert.False(t, state.FastPath)
}

func TestParseGlobstarState(t *testing.T) {
	t.Parallel()

	state, err := Parse("**/*.js", Options{})
	require.NoError(t, err)
	assert.True(t, state.Globstar)

	require.Len(t, state.Tokens, 5)
	assert.Equal(t, TokenGlobstar, state.Tokens[1].Type)
	assert.Equal(t, TokenSlash, state.Tokens[2].Type)
}

func TestParseNegationState(t *testing.T) {
	t.Parallel()

	state, err := Parse("!foo/*", Options{})
	require.NoError(t, err)
	assert.True(t, state.Negated)

	state, err = Parse("!(foo)", Options{})
	require.NoError(t, err)
	assert.False(t, state.Negated)
	assert.True(t, state.NegatedExtglob)

	state, err = Parse("!foo", Options{NoNegate: true})
	require.NoError(t, err)
	assert.False(t, state.Negated)
}

func TestCompileReFromState(t *testing.T) {
	t.Parallel()

	state, err := Parse("src/*.go", Options{})
	require.NoError(t, err)

	re, err := CompileRe(state, Options{})
	require.NoError(t, err)
	assert.True(t, re.MatchString("src/main.go"))
	assert.False(t, re.MatchString("src/cmd/main.go"))
	assert.Same(t, state, re.State())

	_, err = CompileRe(nil, Options{})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = CompileRe(&State{Input: "bad", Output: "("}, Options{})
	require.ErrorIs(t, err, ErrInvalidPattern)
}

func TestCaptureGroups(t *testing.T) {
	t.Parallel()

	m, err := Compile("*.js", Options{Capture: true})
	require.NoError(t, err)

	res := m.Test("abc.js")
	require.True(t, res.IsMatch)
	assert.Equal(t, []string{"abc.js", "abc"}, res.Groups)
}

func TestExpandRangeHook(t *testing.T) {
	t.Parallel()

	var got []string
	opts := Options{
		ExpandRange: func(args []string, _ Options) string {
			got = append([]string(nil), args...)
			return "(?:1|2|3)"
		},
	}

	re, err := MakeRe("v{1..3}", opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, got)
	assert.True(t, re.MatchString("v2"))
	assert.False(t, re.MatchString("v4"))
}

func TestLiteralBrackets(t *testing.T) {
	t.Parallel()

	literal, class := true, false

	re, err := MakeRe("[abc].js", Options{LiteralBrackets: &literal})
	require.NoError(t, err)
	assert.True(t, re.MatchString("[abc].js"))
	assert.False(t, re.MatchString("a.js"))

	re, err = MakeRe("[abc].js", Options{LiteralBrackets: &class})
	require.NoError(t, err)
	assert.True(t, re.MatchString("a.js"))
	assert.False(t, re.MatchString("[abc].js"))

	re, err = MakeRe("[abc].js", Options{})
	require.NoError(t, err)
	assert.True(t, re.MatchString("a.js"))
	assert.True(t, re.MatchString("[abc].js"))
}

func TestDotfileDefault(t *testing.T) {
	t.Parallel()

	for _, glob := range []string{"*", "??", "*x", "?x", "[a-z]*"} {
		ok, err := IsMatch(".x", glob, Options{})
		require.NoError(t, err, glob)
		assert.False(t, ok, glob)
	}

	// leading groups
	for _, glob := range []string{"@(*)", "+(*)", "*(x|*)", "!(foo)", "(*)", "{a,*}"} {
		ok, err := IsMatch(".x", glob, Options{})
		require.NoError(t, err, glob)
		assert.False(t, ok, glob)

		ok, err = IsMatch(".x", glob, Options{Dot: true})
		require.NoError(t, err, glob)
		assert.True(t, ok, glob)
	}

	for _, glob := range []string{"+(.x)", "@(.x|y)", "{.x,y}", "{y,.x}"} {
		ok, err := IsMatch(".x", glob, Options{})
		require.NoError(t, err, glob)
		assert.True(t, ok, glob)
	}
}

func TestEndAnchorIgnoresTrailingNewline(t *testing.T) {
	t.Parallel()

	for _, glob := range []string{"a.js", "*.js", "docs/**", "{a,b}.js"} {
		ok, err := IsMatch("a.js\n", glob, Options{})
		require.NoError(t, err, glob)
		assert.False(t, ok, glob)
	}

	ok, err := IsMatch("a.js\n", "!a.js", Options{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNegationDoubleApplication(t *testing.T) {
	t.Parallel()

	globs := []string{"*.js", "a/*", "a/**/c", "?.txt", "[ab]*", "src/*.{go,mod}"}
	candidates := []string{"a.js", "a/b", "a/b/c", "a/c", "x.txt", "ab", "b", "src/go.mod", "src/a.go", "z"}

	for _, glob := range globs {
		for _, c := range candidates {
			ok, err := IsMatch(c, glob, Options{})
			require.NoError(t, err)
			if !ok {
				continue
			}

			neg, err := IsMatch(c, "!"+glob, Options{})
			require.NoError(t, err)
			assert.False(t, neg, "%q matches %q so it must not match its negation", c, glob)
		}
	}
}

func TestGlobstarSuperset(t *testing.T) {
	t.Parallel()

	candidates := []string{"a/x/b", "a/yy/b", "a/b", "a/x/y/b", "a/.x/b", "b/x/a"}
	for _, c := range candidates {
		single, err := IsMatch(c, "a/*/b", Options{})
		require.NoError(t, err)
		if !single {
			continue
		}

		double, err := IsMatch(c, "a/**/b", Options{})
		require.NoError(t, err)
		assert.True(t, double, c)
	}
}
