// lexeme.go — source spans shared by every compilation stage.
//
// A Lexeme is a slice of the original source text plus the Location where it
// starts. Scanners attach a Lexeme to every token and lexical error, parsers
// carry them into syntax errors, and the caret renderer in errors.go uses the
// Location to point at the offending column. Lexemes compare by text content
// only; two tokens with the same spelling are equal no matter where they
// appeared.
package tortuga

import "fmt"

// Location is a position in the source text. Line and Column are 1-based and
// counted in runes; Offset is the byte offset from the start of the source.
type Location struct {
	Line   int
	Column int
	Offset int
}

// StartOfInput is the location of the first rune of any source text.
func StartOfInput() Location {
	return Location{Line: 1, Column: 1}
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// advance moves the location past r. Newlines reset the column.
func (l Location) advance(r rune, size int) Location {
	l.Offset += size
	if r == '\n' {
		l.Line++
		l.Column = 1
	} else {
		l.Column++
	}
	return l
}

// Lexeme is a span of source text and the location where it begins.
type Lexeme struct {
	Text  string
	Start Location
}

// NewLexeme creates a lexeme for the given text starting at start.
func NewLexeme(text string, start Location) Lexeme {
	return Lexeme{Text: text, Start: start}
}

// Equal reports whether both lexemes spell the same text, ignoring position.
func (l Lexeme) Equal(other Lexeme) bool {
	return l.Text == other.Text
}

func (l Lexeme) String() string {
	return fmt.Sprintf("%q at %s", l.Text, l.Start)
}
