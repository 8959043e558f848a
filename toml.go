package toml

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Parse parses source as a TOML document and returns a Result
// carrying whatever tree it managed to build together with every
// diagnostic raised along the way. Parse never returns a Go error:
// malformed TOML is reported through Result.Errors, since a partial
// tree is still often useful to a caller (§4.2).
func Parse(source string, opts ...Option) *Result {
	cfg := newConfig(opts)
	runes, err := decodeUTF8(source)
	if err != nil {
		return &Result{root: newTable(stateExplicit), errors: []*Error{err}}
	}
	p := newParser(runes, cfg.version)
	p.run()
	return &Result{root: p.builder.root, errors: p.errors}
}

// ParseReader reads r to completion and parses it as a TOML document.
// It returns a Go error only for the read itself failing; once the
// bytes are in hand, parsing follows Parse's error-collecting
// behavior.
func ParseReader(r io.Reader, opts ...Option) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("toml: reading document: %w", err)
	}
	return Parse(string(data), opts...), nil
}

// decodeUTF8 validates source and returns it as a rune slice, or an
// Error positioned at the first invalid byte's line and column.
func decodeUTF8(s string) ([]rune, *Error) {
	runes := make([]rune, 0, len(s))
	line, col := 1, 1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, errAt(Position{Line: line, Column: col}, "Invalid UTF-8 sequence")
		}
		runes = append(runes, r)
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i += size
	}
	return runes, nil
}
