package toml

import "fmt"

// Error is a single diagnostic produced while lexing or parsing a
// document. A parse never stops at the first Error: the parser
// recovers to the next statement boundary and keeps going, so a
// Result can carry more than one.
type Error struct {
	Message  string
	Position Position
}

func (e *Error) String() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

func (e *Error) Error() string {
	return e.String()
}

func errAt(pos Position, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Position: pos}
}
