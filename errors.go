// errors.go — error taxonomies and caret-snippet rendering.
//
// Each compilation stage owns an independent error type, never conflated:
//
//   - *LexicalError: an invalid character run or malformed number. The scanner
//     recovers by itself and resumes after the bad span; consumers see the
//     error as an item in the token sequence.
//   - *SyntacticalError: NoMatch (the current token does not satisfy the rule)
//     or Incomplete (the input ended where a token was required). Both abort
//     the parse. Incomplete is distinguished so an interactive consumer can
//     treat it as "needs more input" via IsIncomplete.
//   - *RuntimeError: undefined name, no matching clause, operand type
//     mismatch, or division/modulo by zero. All abort the current run.
//
// WrapErrorWithSource turns any of the three into a readable snippet with a
// caret under the offending column:
//
//	SYNTAX ERROR at 1:8: expected ")" but found "]" at 1:8
//
//	  1 | (2 + 2 ]
//	    |        ^
//
// Errors without a source location (and unrelated errors) pass through
// unchanged.
package tortuga

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEndOfInput terminates the scanner's token sequence. It is a sentinel,
// not a diagnostic: reaching the end of input is not an error condition.
var ErrEndOfInput = errors.New("end of input")

/* ===========================
   Lexical errors
   =========================== */

// LexicalErrorKind classifies a lexical error.
type LexicalErrorKind int

const (
	// Invalid is a maximal run of characters that start no token.
	Invalid LexicalErrorKind = iota
	// NumberFormat is a fractional point with no digits around it.
	NumberFormat
)

func (k LexicalErrorKind) String() string {
	switch k {
	case NumberFormat:
		return "NUMBER"
	default:
		return "INVALID"
	}
}

// LexicalError is an error on a specific lexeme. The scanner has already
// resumed past the lexeme when the error is returned.
type LexicalError struct {
	lexeme Lexeme
	kind   LexicalErrorKind
}

// NewLexicalError creates a lexical error for the given span.
func NewLexicalError(lexeme Lexeme, kind LexicalErrorKind) *LexicalError {
	return &LexicalError{lexeme: lexeme, kind: kind}
}

// Lexeme returns the offending span.
func (e *LexicalError) Lexeme() Lexeme { return e.lexeme }

// Kind returns the error's classification.
func (e *LexicalError) Kind() LexicalErrorKind { return e.kind }

func (e *LexicalError) Error() string {
	return fmt.Sprintf("encountered a %s error during lexical analysis on %s", e.kind, e.lexeme)
}

/* ===========================
   Syntactical errors
   =========================== */

// SyntacticalErrorKind classifies a parse error.
type SyntacticalErrorKind int

const (
	// NoMatch means the current token does not satisfy the expected rule.
	NoMatch SyntacticalErrorKind = iota
	// Incomplete means the input ended where a token was required.
	Incomplete
)

// SyntacticalError aborts a parse. Found is nil for Incomplete errors.
type SyntacticalError struct {
	kind     SyntacticalErrorKind
	expected string
	found    *Token
}

// NewNoMatchError reports that found does not satisfy the expected rule.
func NewNoMatchError(expected string, found Token) *SyntacticalError {
	return &SyntacticalError{kind: NoMatch, expected: expected, found: &found}
}

// NewIncompleteError reports that the input ended while expecting more.
func NewIncompleteError(expected string) *SyntacticalError {
	return &SyntacticalError{kind: Incomplete, expected: expected}
}

// Kind returns the error's classification.
func (e *SyntacticalError) Kind() SyntacticalErrorKind { return e.kind }

// Expected describes the token or rule the parser required.
func (e *SyntacticalError) Expected() string { return e.expected }

// Found returns the offending token, or nil for Incomplete errors.
func (e *SyntacticalError) Found() *Token { return e.found }

func (e *SyntacticalError) Error() string {
	if e.kind == Incomplete {
		return fmt.Sprintf("expected %s but reached the end of the input", e.expected)
	}
	return fmt.Sprintf("expected %s but found %s", e.expected, e.found)
}

// IsIncomplete reports whether err is a syntax error caused by running out of
// input. Interactive consumers treat it as "needs more input" rather than a
// hard failure.
func IsIncomplete(err error) bool {
	var syntactical *SyntacticalError
	return errors.As(err, &syntactical) && syntactical.kind == Incomplete
}

/* ===========================
   Runtime errors
   =========================== */

// RuntimeErrorKind classifies an evaluation error.
type RuntimeErrorKind int

const (
	// UndefinedName means a referenced name has no binding in scope.
	UndefinedName RuntimeErrorKind = iota
	// NoMatchingDefinition means a function group exists but no clause's
	// patterns accept the argument values.
	NoMatchingDefinition
	// TypeMismatch means an operator received operands it cannot combine.
	TypeMismatch
	// DivideByZero is a division or modulo with a zero divisor.
	DivideByZero
)

// RuntimeError aborts evaluation of the current program.
type RuntimeError struct {
	kind RuntimeErrorKind
	name string
}

// NewRuntimeError creates a runtime error; name is the relevant binding or
// operator, when one exists.
func NewRuntimeError(kind RuntimeErrorKind, name string) *RuntimeError {
	return &RuntimeError{kind: kind, name: name}
}

// Kind returns the error's classification.
func (e *RuntimeError) Kind() RuntimeErrorKind { return e.kind }

func (e *RuntimeError) Error() string {
	switch e.kind {
	case UndefinedName:
		return fmt.Sprintf("the name %q is not defined", e.name)
	case NoMatchingDefinition:
		return fmt.Sprintf("no definition of %q matches the arguments", e.name)
	case TypeMismatch:
		return fmt.Sprintf("the operands of %q have mismatched types", e.name)
	case DivideByZero:
		return fmt.Sprintf("cannot apply %q with a zero divisor", e.name)
	default:
		return "unknown runtime error"
	}
}

/* ===========================
   Caret-snippet rendering
   =========================== */

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src when err carries a source location. Runtime errors (no location) gain a
// header only; unrelated errors are returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexicalError:
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", e.lexeme.Start, e.Error()))
	case *SyntacticalError:
		if e.found != nil {
			return fmt.Errorf("%s", snippet(src, "SYNTAX ERROR", e.found.Lexeme.Start, e.Error()))
		}
		return fmt.Errorf("SYNTAX ERROR: %s", e.Error())
	case *RuntimeError:
		return fmt.Errorf("RUNTIME ERROR: %s", e.Error())
	default:
		return err
	}
}

// snippet builds the caret rendering: header, the offending line with one
// line of context on each side, and a caret under the column.
func snippet(src, header string, at Location, msg string) string {
	lines := strings.Split(src, "\n")
	line, column := at.Line, at.Column
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if column < 1 {
		column = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, column, msg)

	width := len(fmt.Sprintf("%d", min(line+1, len(lines))))
	writeLine := func(n int) {
		fmt.Fprintf(&b, "  %*d | %s\n", width, n, lines[n-1])
	}

	if line > 1 {
		writeLine(line - 1)
	}
	writeLine(line)
	fmt.Fprintf(&b, "  %*s | %s^\n", width, "", strings.Repeat(" ", column-1))
	if line < len(lines) {
		writeLine(line + 1)
	}

	return strings.TrimRight(b.String(), "\n")
}
