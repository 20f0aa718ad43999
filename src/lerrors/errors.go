// Package lerrors is a unified errors package for lexing, parsing and checking
// so that front end errors can be formatted and handled in a uniform way.
package lerrors

import (
	"fmt"
)

type (
	// ErrorKind is an enum to describe where the error originates from.
	ErrorKind int
	// Error captures a failure in one phase of processing a source. It
	// distinguishes between lexer, parser and checker errors and formats them
	// accordingly. Checker errors are wrapped only to attach a filename, the
	// original error is still reachable with errors.As.
	Error struct {
		Line     int64
		Column   int64
		Kind     ErrorKind
		Err      error
		Filename string
	}
)

const (
	// ParserErr is an error that originates from the parser.
	ParserErr ErrorKind = iota
	// LexerErr is an error that originates from the lexer.
	LexerErr
	// CheckErr is an error that originates from the type checker.
	CheckErr
)

func (err *Error) Error() string {
	switch err.Kind {
	case ParserErr:
		return fmt.Sprintf(`Parse Error: %s:%v:%v %v`, err.Filename, err.Line, err.Column, err.Err)
	case LexerErr:
		return fmt.Sprintf("Lex Error: %s:%v:%v %v", err.Filename, err.Line, err.Column, err.Err)
	case CheckErr:
		return fmt.Sprintf("Type Error: %s: %v", err.Filename, err.Err)
	default:
		return err.Err.Error()
	}
}

func (err *Error) Unwrap() error { return err.Err }
