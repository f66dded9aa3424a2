package parser

import (
	"fmt"

	"icelang/sourcerange"
)

// ErrorKind distinguishes the parser's two static-error shapes.
type ErrorKind int

const (
	// UnexpectedToken means a token was present but did not fit the
	// grammar rule being parsed.
	UnexpectedToken ErrorKind = iota
	// UnexpectedEof means input ended where more tokens were required.
	UnexpectedEof
)

// ParseError is the parser's structured static error. Parsing halts at
// the first ParseError, mirroring the lexer's fail-fast behavior.
type ParseError struct {
	Kind    ErrorKind
	Pos     sourcerange.SourceRange
	Why     string // only meaningful for UnexpectedEof
	Message string
}

func (e *ParseError) Error() string {
	if e.Kind == UnexpectedEof {
		return fmt.Sprintf("unexpected end of input: %s", e.Why)
	}
	return e.Message
}
