// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
)

// token is the parser-internal mutable form of Token.
type token struct {
	prev      *token
	typ       TokenType
	value     string
	output    string
	hasOutput bool
	// star marks a run of three or more stars collapsed to one.
	star    bool
	posix   bool
	extglob bool
	// brace bookkeeping, only set on opening brace tokens
	commas      []*token
	comma       bool
	dots        bool
	outputIndex int
	tokensIndex int
}

// out returns the emitted text of the token.
func (t *token) out() string {
	if t.hasOutput {
		return t.output
	}

	return t.value
}

// setOutput replaces the emitted text of the token.
func (t *token) setOutput(s string) {
	t.output = s
	t.hasOutput = true
}

// appendOutput extends the emitted text of the token.
func (t *token) appendOutput(s string) {
	t.setOutput(t.out() + s)
}

// groupFrame is one open group on the parser stack.
type groupFrame struct {
	// open is the token that opened the group.
	open *token
	// op is the extglob operator before "(", if any.
	op   *token
	kind GroupKind
	pos  int
}

// extglobFrame tracks one open extglob group until its ")" arrives.
type extglobFrame struct {
	extglobChars
	prev   *token
	inner  string
	parens int
}

// parser holds all state of one pattern walk.
type parser struct {
	opts  *Options
	chars *globChars

	input  string
	offset int
	index  int
	start  int
	out    []byte

	bos  *token
	prev *token

	tokens   []*token
	stack    []groupFrame
	counts   [4]int
	extglobs []*extglobFrame
	braces   []*token

	star       string
	capture    string
	nodot      string
	qmarkNoDot string

	quoteAt        int
	backtrack      bool
	negated        bool
	negatedExtglob bool
	globstar       bool
	leadingDot     bool
}

// parse compiles input into parser state. It never returns partial state.
func parse(input string, opts *Options) (*State, error) {
	if err := guard(input, opts); err != nil {
		return nil, err
	}

	if r, ok := replacements[input]; ok {
		input = r
	}

	chars := charsFor(opts.Windows)
	p := &parser{
		opts:    opts,
		chars:   chars,
		index:   -1,
		quoteAt: -1,
		capture: "?:",
	}

	if opts.Capture {
		p.capture = ""
	}

	p.star = chars.star
	if opts.Bash {
		p.star = p.globstarOutput()
	}

	if opts.Capture {
		p.star = "(" + p.star + ")"
	}

	p.nodot = chars.noDot
	p.qmarkNoDot = chars.qmarkNoDot
	if opts.Dot {
		p.nodot = ""
		p.qmarkNoDot = chars.qmark
	}

	state := &State{Input: input}
	p.input, state.Prefix = removePrefix(input)
	p.offset = len(state.Prefix)

	p.bos = &token{typ: TokenBOS}
	p.bos.setOutput(opts.Prepend)
	p.tokens = []*token{p.bos}
	p.prev = p.bos
	p.out = append(p.out, opts.Prepend...)

	if !opts.NoFastPaths && !needsFullParse(p.input) {
		state.Output = p.fastOutput()
		state.FastPath = true
		state.LeadingDot = strings.HasPrefix(p.input, ".")
		return state, nil
	}

	if err := p.run(); err != nil {
		return nil, err
	}

	state.Output = string(p.out)
	state.Negated = p.negated
	state.NegatedExtglob = p.negatedExtglob
	state.Globstar = p.globstar
	state.LeadingDot = p.leadingDot
	state.Tokens = make([]Token, 0, len(p.tokens))
	for _, t := range p.tokens {
		state.Tokens = append(state.Tokens, Token{
			Type:    t.typ,
			Value:   t.value,
			Output:  t.out(),
			Extglob: t.extglob,
			Posix:   t.posix,
		})
	}

	return state, nil
}

// needsFullParse reports whether input has syntax the character-run fast
// path cannot express.
func needsFullParse(input string) bool {
	if input == "" {
		return true
	}

	if input[0] == '*' || input[0] == '!' {
		return true
	}

	return strings.ContainsAny(input, `/()[]{}"`)
}

// fastOutput translates patterns made only of text, "?", "*" and "." runs.
func (p *parser) fastOutput() string {
	in := p.input
	var b strings.Builder
	b.Grow(len(in) * 2)
	backslashes := false

	for i := 0; i < len(in); {
		c := in[i]
		esc := false
		if c == '\\' && i+1 < len(in) && !isWordByte(in[i+1]) {
			esc = true
			c = in[i+1]
		}

		if !esc && isWordByte(c) {
			b.WriteByte(c)
			i++
			continue
		}

		head := i
		if esc {
			head++
		}

		end := head + 1
		for end < len(in) && in[end] == c {
			end++
		}

		run := end - head
		rest := run - 1

		switch {
		case c == '\\':
			backslashes = true
			if !esc && end < len(in) {
				// escaped word characters are plain literals
				break
			}
			b.WriteString(in[i:end])
			if end == len(in) && (end-i)%2 == 1 {
				b.WriteByte('\\')
			}
		case c == '?':
			switch {
			case esc:
				b.WriteString(`\?` + strings.Repeat(p.chars.qmark, rest))
			case i == 0:
				b.WriteString(p.qmarkNoDot + strings.Repeat(p.chars.qmark, rest))
			default:
				b.WriteString(strings.Repeat(p.chars.qmark, run))
			}
		case c == '.':
			if esc {
				b.WriteString(`\.`)
				run--
			}
			b.WriteString(strings.Repeat(p.chars.dotLiteral, run))
		case c == '*':
			if esc {
				b.WriteString(`\*`)
				if rest > 0 {
					b.WriteString(p.star)
				}
				break
			}
			b.WriteString(p.star)
		default:
			for k := head; k < end; k++ {
				b.WriteByte('\\')
				b.WriteByte(in[k])
			}
		}

		i = end
	}

	output := b.String()
	if backslashes {
		output = collapseBackslashes(output, p.opts.Unescape)
	}

	if output == p.input && p.opts.Contains {
		return output
	}

	return wrapOutput(output, p.opts.Contains)
}

// collapseBackslashes rewrites backslash runs in fast-path output: even runs
// become one escaped backslash and odd runs one escape.
func collapseBackslashes(s string, unescape bool) string {
	if unescape {
		return strings.ReplaceAll(s, `\`, "")
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}

		j := i
		for j < len(s) && s[j] == '\\' {
			j++
		}

		if (j-i)%2 == 0 {
			b.WriteString(`\\`)
		} else {
			b.WriteByte('\\')
		}
		i = j
	}

	return b.String()
}

// globstarOutput returns the fragment matching any run of path segments.
func (p *parser) globstarOutput() string {
	guard := p.chars.dotLiteral
	if p.opts.Dot {
		guard = p.chars.dotsSlash
	}

	return "(" + p.capture + "(?:(?!" + p.chars.startAnchor + guard + ").)*?)"
}

// eos reports whether the last character was consumed.
func (p *parser) eos() bool { return p.index >= len(p.input)-1 }

// peek returns the character n positions ahead, or 0 past the end.
func (p *parser) peek(n int) byte {
	if i := p.index + n; i >= 0 && i < len(p.input) {
		return p.input[i]
	}

	return 0
}

// advance consumes and returns the next character.
func (p *parser) advance() string {
	p.index++
	if p.index < len(p.input) {
		return p.input[p.index : p.index+1]
	}

	return ""
}

// remaining returns the unconsumed input.
func (p *parser) remaining() string {
	if p.index+1 >= len(p.input) {
		return ""
	}

	return p.input[p.index+1:]
}

// pos converts the current index to an offset in the original pattern.
func (p *parser) pos() int { return p.index + p.offset }

// emit appends the output of t to the buffer.
func (p *parser) emit(t *token) {
	p.out = append(p.out, t.out()...)
}

// truncate drops the last n output bytes.
func (p *parser) truncate(n int) {
	if n > len(p.out) {
		n = len(p.out)
	}
	p.out = p.out[:len(p.out)-n]
}

// increment opens a group of kind at source position pos.
func (p *parser) increment(kind GroupKind, pos int, open, op *token) {
	p.counts[kind]++
	p.stack = append(p.stack, groupFrame{open: open, op: op, kind: kind, pos: pos})
}

// decrement closes the newest group of kind. Groups of other families
// opened after it can no longer close and turn into literal text.
func (p *parser) decrement(kind GroupKind) error {
	i := len(p.stack) - 1
	for i >= 0 && p.stack[i].kind != kind {
		i--
	}

	if i < 0 {
		return nil
	}

	if top := p.stack[len(p.stack)-1]; top.kind != kind && p.opts.StrictBrackets {
		return &UnbalancedGroupError{Family: top.kind, Position: top.pos, Missing: "closing"}
	}

	for j := len(p.stack) - 1; j > i; j-- {
		p.dropGroup(p.stack[j])
	}

	p.counts[kind]--
	p.stack = p.stack[:i]
	return nil
}

// dropGroup literalizes an inner group left open when its outer group
// closed, and rebuilds the output from tokens.
func (p *parser) dropGroup(f groupFrame) {
	p.literalGroup(f)
	p.counts[f.kind]--

	switch {
	case f.kind == GroupParen && f.op != nil && len(p.extglobs) > 0:
		p.extglobs = p.extglobs[:len(p.extglobs)-1]
	case f.kind == GroupBrace && len(p.braces) > 0:
		p.braces = p.braces[:len(p.braces)-1]
	}

	p.rebuild()
}

// rebuild replaces the output buffer with the concatenated token output.
func (p *parser) rebuild() {
	p.out = p.out[:0]
	for _, t := range p.tokens {
		p.out = append(p.out, t.out()...)
	}
}

// topIs reports whether the innermost open group is of kind.
func (p *parser) topIs(kind GroupKind) bool {
	return len(p.stack) > 0 && p.stack[len(p.stack)-1].kind == kind
}

// push appends a token, merging consecutive text and demoting a globstar
// that turned out not to stand alone in its segment.
func (p *parser) push(tok *token) {
	if p.prev.typ == TokenGlobstar {
		isBrace := p.counts[GroupBrace] > 0 && (tok.typ == TokenComma || tok.typ == TokenBrace)
		isExtglob := tok.extglob || (len(p.extglobs) > 0 && tok.typ == TokenParen)

		if tok.typ != TokenSlash && tok.typ != TokenParen && !isBrace && !isExtglob {
			p.truncate(len(p.prev.out()))
			p.prev.typ = TokenStar
			p.prev.value = "*"
			p.prev.setOutput(p.star)
			p.out = append(p.out, p.star...)
		}
	}

	if len(p.extglobs) > 0 && tok.typ != TokenParen {
		p.extglobs[len(p.extglobs)-1].inner += tok.value
	}

	if tok.value != "" || tok.out() != "" {
		p.emit(tok)
	}

	if p.prev.typ == TokenText && tok.typ == TokenText {
		base := p.prev.out()
		if base == "" {
			base = p.prev.value
		}
		p.prev.setOutput(base + tok.out())
		p.prev.value += tok.value
		return
	}

	tok.prev = p.prev
	p.tokens = append(p.tokens, tok)
	p.prev = tok
}

// pushText pushes a literal text token.
func (p *parser) pushText(value string) {
	p.push(&token{typ: TokenText, value: value})
}

// pushOut pushes a token with explicit output and returns it.
func (p *parser) pushOut(typ TokenType, value, output string) *token {
	t := &token{typ: typ, value: value}
	t.setOutput(output)
	p.push(t)
	return t
}

// negate consumes a run of leading "!" and reports whether the count is odd.
func (p *parser) negate() bool {
	count := 1
	for p.peek(1) == '!' && (p.peek(2) != '(' || p.peek(3) == '?') {
		p.advance()
		p.start++
		count++
	}

	if count%2 == 0 {
		return false
	}

	p.negated = true
	p.start++
	return true
}

// extglobOpen consumes an extglob operator and its "(".
func (p *parser) extglobOpen(typ TokenType, value string) {
	chars, _ := extglobFor(value[0], p.chars)
	frame := &extglobFrame{
		extglobChars: chars,
		prev:         p.prev,
		parens:       p.counts[GroupParen],
	}

	open := chars.open
	if p.opts.Capture {
		open = "(" + open
	}

	lead := ""
	if len(p.out) == 0 {
		lead = p.chars.oneChar
	}

	op := &token{typ: typ, value: value}
	op.setOutput(lead)
	paren := &token{typ: TokenParen, extglob: true}
	paren.setOutput(open)

	p.increment(GroupParen, p.pos()+1, paren, op)
	p.push(op)
	paren.value = p.advance()
	p.push(paren)
	p.extglobs = append(p.extglobs, frame)
}

// extglobClose emits the closing fragment for the operator of frame.
func (p *parser) extglobClose(frame *extglobFrame, value string) error {
	output := frame.close
	if p.opts.Capture {
		output += ")"
	}

	if frame.kind == extglobNegate {
		extglobStar := p.star
		if len(frame.inner) > 1 && strings.Contains(frame.inner, "/") {
			extglobStar = p.globstarOutput()
		}

		rest := p.remaining()
		if extglobStar != p.star || p.eos() || onlyClosingParens(rest) {
			output = `)\z))` + extglobStar
		}

		if strings.Contains(frame.inner, "*") && isDotExtension(rest) {
			sub := *p.opts
			sub.NoFastPaths = true
			state, err := parse(rest, &sub)
			if err != nil {
				return err
			}

			output = ")" + state.Output + ")" + extglobStar + ")"
		}

		if frame.prev.typ == TokenBOS {
			p.negatedExtglob = true
		}
	}

	t := &token{typ: TokenParen, extglob: true, value: value}
	t.setOutput(output)
	p.push(t)
	return p.decrement(GroupParen)
}

// onlyClosingParens reports whether s is a non-empty run of ")".
func onlyClosingParens(s string) bool {
	return s != "" && strings.Trim(s, ")") == ""
}

// isDotExtension reports whether s looks like ".ext" with no separators or dots.
func isDotExtension(s string) bool {
	if len(s) < 2 || s[0] != '.' {
		return false
	}

	return !strings.ContainsAny(s[1:], `\/.`)
}

// run walks the input one character at a time.
func (p *parser) run() error {
	for !p.eos() {
		value := p.advance()
		if value == "\x00" {
			continue
		}

		if value == `\` {
			next := p.peek(1)
			if next == '/' && !p.opts.Bash {
				continue
			}

			if next == '.' || next == ';' {
				continue
			}

			if next == 0 {
				p.pushText(`\\`)
				continue
			}

			// collapse long backslash runs
			rest := p.remaining()
			slashes := len(rest) - len(strings.TrimLeft(rest, `\`))
			if slashes > 2 {
				p.index += slashes
				if slashes%2 != 0 {
					value += `\`
				}
			}

			escaped := p.advance()
			switch {
			case p.opts.Unescape:
				value = escaped
			case value == `\` && escaped != "" && isWordByte(escaped[0]) &&
				(p.counts[GroupBracket] == 0 || !isClassEscape(escaped[0])):
				value = escaped
			default:
				value += escaped
			}

			if p.counts[GroupBracket] == 0 {
				p.pushText(value)
				continue
			}
		}

		if p.counts[GroupBracket] > 0 && (value != "]" || p.prev.value == "[" || p.prev.value == "[^") {
			if value == ":" && p.posixClass() {
				continue
			}

			if (value == "[" && p.peek(1) != ':') || (value == "-" && p.peek(1) == ']') {
				value = `\` + value
			}

			if value == "]" && (p.prev.value == "[" || p.prev.value == "[^") {
				value = `\` + value
			}

			if value == "!" && p.prev.value == "[" {
				value = "^"
			}

			p.prev.value += value
			p.out = append(p.out, value...)
			continue
		}

		if p.quoteAt >= 0 && value != `"` {
			value = escapeRegex(value)
			p.prev.value += value
			if p.prev.hasOutput {
				p.prev.appendOutput(value)
			}
			p.out = append(p.out, value...)
			continue
		}

		if value == `"` {
			if p.quoteAt >= 0 {
				p.quoteAt = -1
			} else {
				p.quoteAt = p.pos()
			}

			if p.opts.KeepQuotes {
				p.pushText(value)
			}
			continue
		}

		var err error
		switch value {
		case "(":
			open := &token{typ: TokenParen, value: value}
			p.increment(GroupParen, p.pos(), open, nil)
			p.push(open)
		case ")":
			err = p.closeParen(value)
		case "[":
			err = p.openBracket(value)
		case "]":
			err = p.closeBracket(value)
		case "{":
			if p.opts.NoBrace {
				p.pushText(`\{`)
				break
			}
			p.openBrace(value)
		case "}":
			err = p.closeBrace(value)
		case "|":
			p.pushText(value)
		case ",":
			comma := &token{typ: TokenComma, value: value}
			comma.setOutput(value)
			if n := len(p.braces); n > 0 && p.topIs(GroupBrace) {
				brace := p.braces[n-1]
				brace.comma = true
				brace.commas = append(brace.commas, comma)
				comma.setOutput("|")
			}
			p.push(comma)
		case "/":
			p.slash(value)
		case ".":
			p.dot(value)
		case "?":
			p.qmark(value)
		case "!":
			p.bang(value)
		case "+":
			p.plus(value)
		case "@":
			if !p.opts.NoExtglob && p.peek(1) == '(' && p.peek(2) != '?' {
				p.extglobOpen(TokenAt, value)
				break
			}
			p.pushText(value)
		case "*":
			p.starToken(value)
		default:
			p.text(value)
		}

		if err != nil {
			return err
		}
	}

	return p.finish()
}

// posixClass rewrites "[:name:" inside a bracket into the class body.
func (p *parser) posixClass() bool {
	if len(p.prev.value) < 2 {
		return false
	}

	inner := p.prev.value[1:]
	if !strings.Contains(inner, "[") {
		return false
	}

	p.prev.posix = true
	if !strings.Contains(inner, ":") {
		return false
	}

	idx := strings.LastIndex(p.prev.value, "[")
	name := p.prev.value[idx+2:]
	body, ok := posixClasses[name]
	if !ok {
		return false
	}

	p.prev.value = p.prev.value[:idx] + body
	p.backtrack = true
	p.advance()

	if p.bos.out() == "" && len(p.tokens) > 1 && p.tokens[1] == p.prev {
		p.bos.setOutput(p.chars.oneChar)
	}

	return true
}

// closeParen closes an extglob or a plain group.
func (p *parser) closeParen(value string) error {
	if p.counts[GroupParen] == 0 {
		if p.opts.StrictBrackets {
			return &UnbalancedGroupError{Family: GroupParen, Position: p.pos(), Missing: "opening"}
		}

		p.pushOut(TokenParen, value, `\)`)
		return nil
	}

	if n := len(p.extglobs); n > 0 && p.counts[GroupParen] == p.extglobs[n-1].parens+1 {
		frame := p.extglobs[n-1]
		p.extglobs = p.extglobs[:n-1]
		return p.extglobClose(frame, value)
	}

	p.pushOut(TokenParen, value, ")")
	return p.decrement(GroupParen)
}

// openBracket starts a bracket expression, or a literal "[" when no "]" follows.
func (p *parser) openBracket(value string) error {
	if p.opts.NoBracket || !strings.Contains(p.remaining(), "]") {
		if !p.opts.NoBracket && p.opts.StrictBrackets {
			return &UnbalancedGroupError{Family: GroupBracket, Position: p.pos(), Missing: "closing"}
		}

		p.push(&token{typ: TokenBracket, value: `\` + value})
		return nil
	}

	open := &token{typ: TokenBracket, value: value}
	p.increment(GroupBracket, p.pos(), open, nil)
	p.push(open)
	return nil
}

// closeBracket ends a bracket expression, adding the literal fallback.
func (p *parser) closeBracket(value string) error {
	if p.opts.NoBracket || (p.prev.typ == TokenBracket && len(p.prev.value) == 1) {
		p.pushOut(TokenText, value, `\`+value)
		return nil
	}

	if p.counts[GroupBracket] == 0 {
		if p.opts.StrictBrackets {
			return &UnbalancedGroupError{Family: GroupBracket, Position: p.pos(), Missing: "opening"}
		}

		p.pushOut(TokenText, value, `\`+value)
		return nil
	}

	if err := p.decrement(GroupBracket); err != nil {
		return err
	}

	prevValue := p.prev.value[1:]
	if !p.prev.posix && strings.HasPrefix(prevValue, "^") && !strings.Contains(prevValue, "/") {
		// negated classes never match a separator
		if p.opts.Windows {
			value = `\\/` + value
		} else {
			value = "/" + value
		}
	}

	p.prev.value += value
	p.out = append(p.out, value...)

	literal := p.opts.LiteralBrackets
	if (literal != nil && !*literal) || hasRegexChars(prevValue) {
		return nil
	}

	escaped := escapeRegex(p.prev.value)
	p.truncate(len(p.prev.value))

	if literal != nil && *literal {
		p.prev.value = escaped
		p.out = append(p.out, escaped...)
		return nil
	}

	p.prev.value = "(" + p.capture + escaped + "|" + p.prev.value + ")"
	p.out = append(p.out, p.prev.value...)
	return nil
}

// openBrace starts a brace group.
func (p *parser) openBrace(value string) {
	open := &token{
		typ:         TokenBrace,
		value:       value,
		outputIndex: len(p.out),
		tokensIndex: len(p.tokens),
	}
	open.setOutput("(")

	p.increment(GroupBrace, p.pos(), open, nil)
	p.braces = append(p.braces, open)
	p.push(open)
}

// closeBrace closes the newest brace group as an alternation, a range or,
// when it holds neither, as literal text.
func (p *parser) closeBrace(value string) error {
	n := len(p.braces)
	if p.opts.NoBrace || n == 0 {
		if p.opts.NoBrace {
			value = `\}`
		} else if p.opts.StrictBrackets {
			return &UnbalancedGroupError{Family: GroupBrace, Position: p.pos(), Missing: "opening"}
		}
		p.pushOut(TokenText, value, value)
		return nil
	}

	if err := p.decrement(GroupBrace); err != nil {
		return err
	}

	brace := p.braces[n-1]
	output := ")"

	if brace.dots {
		var args []string
		for i := len(p.tokens) - 1; i >= 0; i-- {
			t := p.tokens[i]
			p.tokens = p.tokens[:i]
			if t.typ == TokenBrace {
				break
			}

			if t.typ != TokenDots {
				args = append([]string{t.value}, args...)
			}
		}

		output = p.expandRange(args)
		p.backtrack = true
	}

	if !brace.comma && !brace.dots {
		toks := p.tokens[brace.tokensIndex:]
		brace.value = `\{`
		brace.setOutput(`\{`)
		value = `\}`
		output = `\}`

		p.out = p.out[:min(brace.outputIndex, len(p.out))]
		for _, t := range toks {
			p.out = append(p.out, t.out()...)
		}
	}

	p.pushOut(TokenBrace, value, output)
	p.braces = p.braces[:n-1]
	return nil
}

// expandRange renders "{a..b}" through the configured hook or as a class.
func (p *parser) expandRange(args []string) string {
	if p.opts.ExpandRange != nil {
		return p.opts.ExpandRange(args, *p.opts)
	}

	sorted := append([]string(nil), args...)
	sort.Strings(sorted)
	value := "[" + strings.Join(sorted, "-") + "]"

	if _, err := regexp2.Compile(value, regexp2.None); err != nil {
		escaped := make([]string, len(sorted))
		for i, v := range sorted {
			escaped[i] = escapeRegex(v)
		}

		return strings.Join(escaped, "..")
	}

	return value
}

// slash emits a separator.
func (p *parser) slash(value string) {
	// a "./" right after a negation is dropped like a leading one
	if p.prev.typ == TokenDot && p.index == p.start+1 {
		p.start = p.index + 1
		p.out = append(p.out[:0], p.bos.out()...)
		p.tokens = p.tokens[:len(p.tokens)-1]
		p.prev = p.bos
		p.leadingDot = false
		return
	}

	p.pushOut(TokenSlash, value, p.chars.slashLiteral)
}

// dot emits a literal dot and tracks brace ranges and leading dots.
func (p *parser) dot(value string) {
	if p.counts[GroupBrace] > 0 && p.prev.typ == TokenDot && len(p.braces) > 0 {
		// output is rebuilt from tokens once the brace closes
		p.prev.typ = TokenDots
		p.prev.value += value
		p.prev.setOutput(strings.Repeat(p.chars.dotLiteral, len(p.prev.value)))
		p.braces[len(p.braces)-1].dots = true
		p.backtrack = true
		return
	}

	segmentStart := p.prev.typ == TokenBOS || p.prev.typ == TokenSlash
	if p.counts[GroupBrace]+p.counts[GroupParen] == 0 && !segmentStart {
		p.pushOut(TokenText, value, p.chars.dotLiteral)
		return
	}

	if segmentStart || p.opensSegmentGroup() {
		p.leadingDot = true
	}

	p.pushOut(TokenDot, value, p.chars.dotLiteral)
}

// opensSegmentGroup reports whether the previous token opens a group or a
// brace alternative that itself starts a path segment.
func (p *parser) opensSegmentGroup() bool {
	n := len(p.stack)
	if n == 0 {
		return false
	}

	f := p.stack[n-1]
	if p.prev != f.open && !(p.prev.typ == TokenComma && f.kind == GroupBrace) {
		return false
	}

	before := f.open.prev
	if f.op != nil {
		before = f.op.prev
	}

	return before != nil && (before.typ == TokenBOS || before.typ == TokenSlash)
}

// qmark emits a single-character wildcard or a regex group modifier.
func (p *parser) qmark(value string) {
	isGroup := p.prev.value == "("
	if !isGroup && !p.opts.NoExtglob && p.peek(1) == '(' && p.peek(2) != '?' {
		p.extglobOpen(TokenQmark, value)
		return
	}

	if p.prev.typ == TokenParen {
		next := p.peek(1)
		output := value
		lookaround := next != 0 && strings.IndexByte("!=<:", next) >= 0
		if (p.prev.value == "(" && !lookaround) || (next == '<' && !isLookbehindOrName(p.remaining())) {
			output = `\` + value
		}

		p.pushOut(TokenText, value, output)
		return
	}

	if !p.opts.Dot && (p.prev.typ == TokenSlash || p.prev.typ == TokenBOS) {
		p.pushOut(TokenQmark, value, p.chars.qmarkNoDot)
		return
	}

	p.pushOut(TokenQmark, value, p.chars.qmark)
}

// isLookbehindOrName reports whether s starts with "<=", "<!" or "<name>".
func isLookbehindOrName(s string) bool {
	if len(s) < 2 || s[0] != '<' {
		return false
	}

	if s[1] == '=' || s[1] == '!' {
		return true
	}

	end := strings.IndexByte(s, '>')
	if end < 2 {
		return false
	}

	for i := 1; i < end; i++ {
		if !isWordByte(s[i]) || s[i] >= 0x80 {
			return false
		}
	}

	return true
}

// bang handles negated extglobs and leading negation.
func (p *parser) bang(value string) {
	if !p.opts.NoExtglob && p.peek(1) == '(' {
		if p.peek(2) != '?' || p.peek(3) == 0 || strings.IndexByte("!=<:", p.peek(3)) < 0 {
			p.extglobOpen(TokenNegate, value)
			return
		}
	}

	if !p.opts.NoNegate && p.index == 0 {
		p.negate()
		return
	}

	p.text(value)
}

// plus handles "+(" extglobs and literal or quantifier plus signs.
func (p *parser) plus(value string) {
	if !p.opts.NoExtglob && p.peek(1) == '(' && p.peek(2) != '?' {
		p.extglobOpen(TokenPlus, value)
		return
	}

	if p.prev.value == "(" {
		p.pushOut(TokenPlus, value, p.chars.plusLiteral)
		return
	}

	switch p.prev.typ {
	case TokenBracket, TokenParen, TokenBrace:
		p.push(&token{typ: TokenPlus, value: value})
		return
	}

	if p.counts[GroupParen] > 0 {
		p.push(&token{typ: TokenPlus, value: value})
		return
	}

	p.push(&token{typ: TokenPlus, value: p.chars.plusLiteral})
}

// text emits a literal character plus the run of plain characters after it.
func (p *parser) text(value string) {
	if value == "$" || value == "^" {
		value = `\` + value
	}

	rest := p.remaining()
	n := 0
	for n < len(rest) && !stopsTextRun(rest[n]) {
		n++
	}

	if n > 0 {
		value += rest[:n]
		p.index += n
	}

	p.pushText(value)
}

// stopsTextRun reports whether c needs its own dispatch in the parser.
func stopsTextRun(c byte) bool {
	switch c {
	case '@', '!', '[', ']', '.', ',', '$', '*', '+', '?', '^', '{', '}', '(', ')', '|', '\\', '/', '"':
		return true
	default:
		return false
	}
}

// starToken emits a star, extending it to a globstar when doubled.
func (p *parser) starToken(value string) {
	if p.prev.typ == TokenGlobstar || p.prev.star {
		p.prev.typ = TokenStar
		p.prev.star = true
		p.prev.value += value
		p.prev.setOutput(p.star)
		p.backtrack = true
		p.globstar = true
		return
	}

	rest := p.remaining()
	if !p.opts.NoExtglob && len(rest) > 1 && rest[0] == '(' && rest[1] != '?' {
		p.extglobOpen(TokenStar, value)
		return
	}

	if p.prev.typ == TokenStar {
		p.doubleStar(value, rest)
		return
	}

	tok := &token{typ: TokenStar, value: value}
	tok.setOutput(p.star)

	if p.opts.Bash {
		out := ".*?"
		if p.prev.typ == TokenBOS || p.prev.typ == TokenSlash {
			out = p.nodot + out
		}
		tok.setOutput(out)
		p.push(tok)
		return
	}

	if p.index == p.start || p.prev.typ == TokenSlash || p.prev.typ == TokenDot {
		guard := p.nodot
		switch {
		case p.prev.typ == TokenDot:
			guard = p.chars.noDotSlash
		case p.opts.Dot:
			guard = p.chars.noDotsSlash
		}

		if p.peek(1) != '*' {
			guard += p.chars.oneChar
		}

		p.out = append(p.out, guard...)
		p.prev.appendOutput(guard)
	}

	p.push(tok)
}

// doubleStar handles the second star of a run, deciding whether the pair
// is a globstar.
func (p *parser) doubleStar(value, rest string) {
	if p.opts.NoGlobstar {
		return
	}

	prev := p.prev
	prior := prev.prev
	before := prior.prev
	isStart := prior.typ == TokenSlash || prior.typ == TokenBOS
	afterStar := before != nil && (before.typ == TokenStar || before.typ == TokenGlobstar)

	if p.opts.Bash && (!isStart || (rest != "" && rest[0] != '/')) {
		p.pushOut(TokenStar, value, "")
		return
	}

	isBrace := p.counts[GroupBrace] > 0 && (prior.typ == TokenComma || prior.typ == TokenBrace)
	isExtglob := len(p.extglobs) > 0 && prior.typ == TokenParen
	if !isStart && prior.typ != TokenParen && !isBrace && !isExtglob {
		p.pushOut(TokenStar, value, "")
		return
	}

	// strip consecutive "/**" segments
	for strings.HasPrefix(rest, "/**") {
		if after := p.peek(4); after != 0 && after != '/' {
			break
		}
		rest = rest[3:]
		p.index += 3
	}

	globstar := p.globstarOutput()

	if prior.typ == TokenBOS && p.eos() {
		prev.typ = TokenGlobstar
		prev.value += value
		prev.setOutput(globstar)
		p.out = append(p.out[:0], globstar...)
		p.globstar = true
		return
	}

	if prior.typ == TokenSlash && prior.prev.typ != TokenBOS && !afterStar && p.eos() {
		p.truncate(len(prior.out()) + len(prev.out()))
		prior.setOutput("(?:" + prior.out())

		tail := `|\z)`
		if p.opts.StrictSlashes {
			tail = ")"
		}

		prev.typ = TokenGlobstar
		prev.setOutput(globstar + tail)
		prev.value += value
		p.globstar = true
		p.out = append(p.out, prior.out()...)
		p.out = append(p.out, prev.out()...)
		return
	}

	if prior.typ == TokenSlash && prior.prev.typ != TokenBOS && rest != "" && rest[0] == '/' {
		end := ""
		if len(rest) > 1 {
			end = `|\z`
		}

		p.truncate(len(prior.out()) + len(prev.out()))
		prior.setOutput("(?:" + prior.out())

		prev.typ = TokenGlobstar
		prev.setOutput(globstar + p.chars.slashLiteral + "|" + p.chars.slashLiteral + end + ")")
		prev.value += value

		p.out = append(p.out, prior.out()...)
		p.out = append(p.out, prev.out()...)
		p.globstar = true

		p.advance()
		p.pushOut(TokenSlash, "/", "")
		return
	}

	if prior.typ == TokenBOS && rest != "" && rest[0] == '/' {
		prev.typ = TokenGlobstar
		prev.value += value
		prev.setOutput("(?:^|" + p.chars.slashLiteral + "|" + globstar + p.chars.slashLiteral + ")")
		p.out = append(p.out[:0], prev.out()...)
		p.globstar = true
		p.advance()
		p.pushOut(TokenSlash, "/", "")
		return
	}

	p.truncate(len(prev.out()))
	prev.typ = TokenGlobstar
	prev.setOutput(globstar)
	prev.value += value
	p.out = append(p.out, globstar...)
	p.globstar = true
}

// finish closes or rejects unbalanced groups and assembles the output.
func (p *parser) finish() error {
	if p.opts.StrictBrackets {
		if n := len(p.stack); n > 0 {
			f := p.stack[n-1]
			return &UnbalancedGroupError{Family: f.kind, Position: f.pos, Missing: "closing"}
		}

		if p.quoteAt >= 0 {
			return &UnbalancedGroupError{Family: GroupQuote, Position: p.quoteAt, Missing: "closing"}
		}
	}

	for i := len(p.stack) - 1; i >= 0; i-- {
		p.literalGroup(p.stack[i])
	}
	p.stack = p.stack[:0]
	p.counts = [4]int{}

	if !p.opts.StrictSlashes && (p.prev.typ == TokenStar || p.prev.typ == TokenBracket) {
		p.pushOut(TokenMaybeSlash, "", p.chars.slashLiteral+"?")
	}

	p.guardLeadingGroup()

	if p.backtrack {
		p.rebuild()
	}

	return nil
}

// literalGroup turns a group that was never closed back into literal text.
func (p *parser) literalGroup(f groupFrame) {
	switch f.kind {
	case GroupBracket:
		f.open.value = `\[` + escapeUnescaped(f.open.value[1:])
	case GroupParen:
		f.open.setOutput(`\(`)
		if f.op != nil {
			f.op.setOutput(f.op.out() + escapeRegex(f.op.value))
		}
	case GroupBrace:
		f.open.value = `\{`
		f.open.setOutput(`\{`)
		for _, c := range f.open.commas {
			c.setOutput(",")
		}
	}

	p.backtrack = true
}

// guardLeadingGroup keeps a leading bracket expression, brace or paren
// group from matching a dotfile unless dots are allowed or the pattern
// names the dot itself.
func (p *parser) guardLeadingGroup() {
	if p.negated || p.opts.Dot || p.leadingDot || len(p.tokens) < 2 {
		return
	}

	first := p.tokens[1]
	switch first.typ {
	case TokenBracket:
		if strings.HasPrefix(first.value, `\`) || strings.Contains(first.value, ".") {
			return
		}
	case TokenParen, TokenBrace:
	default:
		// extglob operator followed by its paren
		if len(p.tokens) < 3 || p.tokens[2].typ != TokenParen || !p.tokens[2].extglob {
			return
		}
	}

	p.bos.setOutput(p.chars.noDot + p.bos.out())
	p.backtrack = true
}
