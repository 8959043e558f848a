package toml

import "fmt"

// parser is a hand-rolled recursive-descent recognizer over lexer
// tokens. It drives the treeBuilder as it goes and never stops at the
// first problem: after an error inside a statement it advances to the
// next newline and resumes, so one document can surface several
// diagnostics (§4.2).
type parser struct {
	lex     *lexer
	version Version
	builder *treeBuilder
	scope   *Table
	errors  []*Error
}

func newParser(src []rune, version Version) *parser {
	b := newTreeBuilder()
	return &parser{
		lex:     newLexer(src),
		version: version,
		builder: b,
		scope:   b.root,
	}
}

func (p *parser) addError(err *Error) {
	if err != nil {
		p.errors = append(p.errors, err)
	}
}

// run consumes the whole document, one line at a time.
func (p *parser) run() {
	for {
		p.lex.skipSpacesAndTabs()
		switch p.lex.peek() {
		case runeEOF:
			return
		case '\n':
			p.lex.advance()
			continue
		case '\r':
			if _, err := p.lex.consumeNewline(); err != nil {
				p.addError(err)
				p.recover()
			}
			continue
		case '#':
			if err := p.lex.skipComment(); err != nil {
				p.addError(err)
				p.recover()
				continue
			}
			p.finishLine()
			continue
		case '[':
			if err := p.parseHeaderLine(); err != nil {
				p.addError(err)
				p.recover()
				continue
			}
			p.finishLine()
		default:
			if err := p.parseAssignmentLine(); err != nil {
				p.addError(err)
				p.recover()
				continue
			}
			p.finishLine()
		}
	}
}

// finishLine consumes trailing whitespace/comment and the line's
// terminating newline (or end-of-input), reporting an error if
// anything else is found there.
func (p *parser) finishLine() {
	p.lex.skipSpacesAndTabs()
	if p.lex.peek() == '#' {
		if err := p.lex.skipComment(); err != nil {
			p.addError(err)
			p.recover()
			return
		}
	}
	switch p.lex.peek() {
	case runeEOF:
		return
	case '\n':
		p.lex.advance()
		return
	case '\r':
		if _, err := p.lex.consumeNewline(); err != nil {
			p.addError(err)
			p.recover()
		}
		return
	default:
		pos := p.lex.position()
		p.addError(errAt(pos, "Unexpected %s, expected %s", describeToken(p.peekToken()), expectedList("a newline", "end-of-input")))
		p.recover()
	}
}

// peekToken renders whatever is at the current position as a token,
// for error messages only. When the offending rune starts a bare-key
// run, the whole run is captured so the diagnostic names the full
// offending word rather than its first character.
func (p *parser) peekToken() token {
	r := p.lex.peek()
	if r == runeEOF {
		return token{kind: tokEOF}
	}
	if isBareKeyRune(r) {
		return token{kind: tokError, text: p.lex.peekBareKeyRun()}
	}
	return token{kind: tokError, text: string(r)}
}

// describeOffending renders the token at the lexer's current position
// for an "Unexpected ..." diagnostic, the same way peekToken does,
// already quoted for display.
func (p *parser) describeOffending() string {
	r := p.lex.peek()
	if r == runeEOF {
		return "end-of-input"
	}
	if isBareKeyRune(r) {
		return quoteForDiagnostic(p.lex.peekBareKeyRun())
	}
	return quoteForDiagnostic(runeOrEOF(r))
}

// recover advances to the next newline (consuming it) or end-of-input,
// so the parser can resume with the next statement after an error.
func (p *parser) recover() {
	for {
		r := p.lex.peek()
		if r == runeEOF {
			return
		}
		if r == '\n' {
			p.lex.advance()
			return
		}
		if r == '\r' && p.lex.peekAt(1) == '\n' {
			p.lex.advance()
			p.lex.advance()
			return
		}
		p.lex.advance()
	}
}

// parseKey reads a key production: one or more bare/quoted segments
// joined by dots, tolerating whitespace around each dot. Dotted keys
// are rejected (per version gating) at the position of the second
// segment.
func (p *parser) parseKey() ([]keySegment, *Error) {
	first, err := p.parseKeySegment()
	if err != nil {
		return nil, err
	}
	segments := []keySegment{first}
	for {
		save, saveLine, saveCol := p.lex.pos, p.lex.line, p.lex.col
		p.lex.skipSpacesAndTabs()
		if p.lex.peek() != '.' {
			p.lex.pos, p.lex.line, p.lex.col = save, saveLine, saveCol
			return segments, nil
		}
		p.lex.advance()
		p.lex.skipSpacesAndTabs()
		if !p.version.supportsDottedKeys() {
			pos := p.lex.position()
			return nil, errAt(pos, "Dotted keys are not supported")
		}
		seg, err := p.parseKeySegment()
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
}

func (p *parser) parseKeySegment() (keySegment, *Error) {
	pos := p.lex.position()
	switch p.lex.peek() {
	case '"', '\'':
		tok, err := p.lex.scanQuotedKey(p.version)
		if err != nil {
			return keySegment{}, err
		}
		return keySegment{name: tok.val.(string), pos: pos}, nil
	default:
		if !isBareKeyRune(p.lex.peek()) {
			return keySegment{}, errAt(pos, "Unexpected %s, expected a key", p.describeOffending())
		}
		tok := p.lex.scanBareKey()
		return keySegment{name: tok.val.(string), pos: pos}, nil
	}
}

func runeOrEOF(r rune) string {
	if r == runeEOF {
		return ""
	}
	return string(r)
}

// parseAssignmentLine parses `key = value`.
func (p *parser) parseAssignmentLine() *Error {
	path, err := p.parseKey()
	if err != nil {
		return err
	}
	p.lex.skipSpacesAndTabs()
	if p.lex.peek() != '=' {
		pos := p.lex.position()
		return errAt(pos, "Unexpected %s, expected %s", p.describeOffending(), quoteForDiagnostic("="))
	}
	p.lex.advance()
	p.lex.skipSpacesAndTabs()
	value, err := p.parseValue()
	if err != nil {
		return err
	}
	if len(path) == 1 {
		return p.builder.setValue(p.scope, path, value)
	}
	return p.builder.defineDotted(p.scope, path, value)
}

// parseHeaderLine parses `[key]` or `[[key]]`.
func (p *parser) parseHeaderLine() *Error {
	headerPos := p.lex.position()
	p.lex.advance() // '['
	isArray := false
	if p.lex.peek() == '[' {
		isArray = true
		p.lex.advance()
	}
	p.lex.skipSpacesAndTabs()
	if p.lex.peek() == ']' {
		return errAt(headerPos, "Empty table key")
	}
	path, err := p.parseKey()
	if err != nil {
		return err
	}
	p.lex.skipSpacesAndTabs()
	if p.lex.peek() != ']' {
		return errAt(p.lex.position(), "Unexpected %s, expected %s", p.describeOffending(), quoteForDiagnostic("]"))
	}
	p.lex.advance()
	if isArray {
		if p.lex.peek() != ']' {
			return errAt(p.lex.position(), "Unexpected %s, expected %s", p.describeOffending(), quoteForDiagnostic("]]"))
		}
		p.lex.advance()
		scope, err := p.builder.defineArrayTable(path, headerPos)
		if err != nil {
			return err
		}
		p.scope = scope
		return nil
	}
	scope, err := p.builder.defineTable(path, headerPos)
	if err != nil {
		return err
	}
	p.scope = scope
	return nil
}

// parseValue parses a single value production: string, number, bool,
// datetime, array, or inline table.
func (p *parser) parseValue() (Value, *Error) {
	switch p.lex.peek() {
	case runeEOF:
		return nil, errAt(p.lex.position(), "Unexpected end-of-input, expected a value")
	case '"', '\'':
		return p.lex.scanValueString(p.version)
	case '[':
		return p.parseArray()
	case '{':
		return p.parseInlineTable()
	default:
		return p.lex.scanScalar()
	}
}

// parseArray parses `[ value (','|newline)* ... ]`, allowing newlines
// and comments freely between elements and a trailing comma before
// the closing bracket.
func (p *parser) parseArray() (Value, *Error) {
	p.lex.advance() // '['
	arr := &Array{LiteralArray: true}
	if err := p.skipArrayInsignificant(); err != nil {
		return nil, err
	}
	for p.lex.peek() != ']' {
		if p.lex.peek() == runeEOF {
			return nil, errAt(p.lex.position(), "Unexpected end-of-input, expected %s", expectedList("a value", "']'"))
		}
		elemPos := p.lex.position()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if len(arr.Elems) > 0 && !p.version.supportsHeterogeneousArrays() {
			if existingKind := arr.Elems[0].Kind(); existingKind != val.Kind() {
				return nil, errAt(elemPos, "Cannot add %s to an array containing %s",
					kindWithArticle(val.Kind()), kindPlural(existingKind))
			}
		}
		arr.Elems = append(arr.Elems, val)
		if err := p.skipArrayInsignificant(); err != nil {
			return nil, err
		}
		if p.lex.peek() == ',' {
			p.lex.advance()
			if err := p.skipArrayInsignificant(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if p.lex.peek() != ']' {
		return nil, errAt(p.lex.position(), "Unexpected %s, expected %s", p.describeOffending(), expectedList("','", "']'"))
	}
	p.lex.advance()
	return arr, nil
}

// skipArrayInsignificant skips whitespace, newlines, and comments,
// all of which are insignificant between array elements.
func (p *parser) skipArrayInsignificant() *Error {
	for {
		p.lex.skipSpacesAndTabs()
		switch p.lex.peek() {
		case '\n':
			p.lex.advance()
		case '\r':
			if _, err := p.lex.consumeNewline(); err != nil {
				return err
			}
		case '#':
			if err := p.lex.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// parseInlineTable parses `{ key = value, ... }`. Unlike arrays, an
// inline table's contents may not span a newline.
func (p *parser) parseInlineTable() (Value, *Error) {
	p.lex.advance() // '{'
	tbl := newTable(stateInline)
	p.lex.skipSpacesAndTabs()
	if p.lex.peek() == '}' {
		p.lex.advance()
		return tbl, nil
	}
	for {
		p.lex.skipSpacesAndTabs()
		path, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.lex.skipSpacesAndTabs()
		if p.lex.peek() != '=' {
			return nil, errAt(p.lex.position(), "Unexpected %s, expected %s", p.describeOffending(), quoteForDiagnostic("="))
		}
		p.lex.advance()
		p.lex.skipSpacesAndTabs()
		val, verr := p.parseValue()
		if verr != nil {
			return nil, verr
		}
		if berr := p.builder.defineDotted(tbl, path, val); berr != nil {
			return nil, berr
		}
		p.lex.skipSpacesAndTabs()
		switch p.lex.peek() {
		case ',':
			p.lex.advance()
			continue
		case '}':
			p.lex.advance()
			return tbl, nil
		default:
			return nil, errAt(p.lex.position(), "Unexpected %s, expected %s", p.describeOffending(), expectedList("','", "'}'"))
		}
	}
}

func kindWithArticle(k Kind) string {
	switch k {
	case KindInteger, KindOffsetDateTime, KindArray:
		return "an " + k.String()
	default:
		return "a " + k.String()
	}
}

func kindPlural(k Kind) string {
	return fmt.Sprintf("%ss", k.String())
}
