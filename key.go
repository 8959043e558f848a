package toml

import "fmt"

// ParseKey splits a dotted-path lookup string into its key segments,
// honoring TOML's bare/quoted/dotted key syntax and tolerating
// whitespace around the dots. It is the public façade's key
// micro-grammar (§4.4): unlike the document parser, it fails with a
// single error rather than collecting a list, since it has exactly
// one caller-observable outcome.
func ParseKey(s string) ([]string, error) {
	p := &keyGrammarParser{src: []rune(s)}
	return p.parse()
}

type keyGrammarParser struct {
	src []rune
	pos int
}

func (p *keyGrammarParser) peek() rune {
	if p.pos >= len(p.src) {
		return runeEOF
	}
	return p.src[p.pos]
}

func (p *keyGrammarParser) advance() rune {
	if p.pos >= len(p.src) {
		return runeEOF
	}
	r := p.src[p.pos]
	p.pos++
	return r
}

func (p *keyGrammarParser) skipSpace() {
	for p.peek() == ' ' || p.peek() == '\t' {
		p.advance()
	}
}

func (p *keyGrammarParser) parse() ([]string, error) {
	var segments []string
	p.skipSpace()
	for {
		seg, err := p.segment()
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
		p.skipSpace()
		if p.peek() == '.' {
			p.advance()
			p.skipSpace()
			continue
		}
		if p.peek() == runeEOF {
			return segments, nil
		}
		return nil, p.invalid()
	}
}

func (p *keyGrammarParser) invalid() error {
	r := p.peek()
	what := "end-of-input"
	if r != runeEOF {
		what = quoteForDiagnostic(string(r))
	}
	return fmt.Errorf("Invalid key: Unexpected %s, expected . or end-of-input", what)
}

func (p *keyGrammarParser) segment() (string, error) {
	switch p.peek() {
	case '"':
		return p.quoted('"', true)
	case '\'':
		return p.quoted('\'', false)
	default:
		return p.bare()
	}
}

func (p *keyGrammarParser) bare() (string, error) {
	start := p.pos
	for isBareKeyRune(p.peek()) {
		p.advance()
	}
	if p.pos == start {
		return "", p.invalid()
	}
	return string(p.src[start:p.pos]), nil
}

func (p *keyGrammarParser) quoted(quote rune, escapes bool) (string, error) {
	l := &lexer{src: p.src, pos: p.pos}
	var text string
	var err *Error
	if escapes {
		text, err = l.scanBasicStringBody(V1_0_0)
	} else {
		text, err = l.scanLiteralStringBody(false)
	}
	if err != nil {
		return "", fmt.Errorf("Invalid key: %s", err.Message)
	}
	p.pos = l.pos
	return text, nil
}
