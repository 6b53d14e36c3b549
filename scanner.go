// scanner.go — lexical analysis.
//
// The Scanner converts source text into a forward-only sequence of tokens with
// one rune of lookahead. Call Next repeatedly: each call returns a Token, a
// *LexicalError for an invalid span, or ErrEndOfInput once the source is
// exhausted. Lexical errors are items in the sequence, not fatal: the scanner
// resumes immediately after the offending run, and a maximal run of invalid
// characters coalesces into a single error so one bad paste produces one
// diagnostic.
//
// Blank space (the Unicode Pattern_White_Space class) is skipped before every
// token. Line comments start at ';' and extend to the end of the line; they
// are discarded entirely and never surface as tokens.
package tortuga

import (
	"unicode"
	"unicode/utf8"
)

// Scanner is a lexical analyzer with one rune of lookahead. Construct a new
// Scanner per source text; the token sequence is consumed once, forward-only.
type Scanner struct {
	source  string
	start   Location // start of the token being scanned
	current Location
}

// NewScanner creates a scanner positioned at the start of source.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source:  source,
		start:   StartOfInput(),
		current: StartOfInput(),
	}
}

// Next scans the next token. It returns ErrEndOfInput when the source is
// exhausted, or a *LexicalError for an invalid character run. After a lexical
// error the scanner has already skipped the run and may be called again.
func (s *Scanner) Next() (Token, error) {
	for {
		s.skipBlankSpace()
		s.start = s.current

		r, ok := s.advance()
		if !ok {
			return Token{}, ErrEndOfInput
		}

		switch r {
		case '+':
			return s.token(PLUS), nil
		case '-':
			return s.token(MINUS), nil
		case '*':
			return s.token(STAR), nil
		case '/':
			return s.token(SLASH), nil
		case '^':
			return s.token(CARET), nil
		case '%':
			return s.token(PERCENT), nil
		case '~':
			return s.token(TILDE), nil
		case '=':
			return s.token(EQUAL), nil
		case ',':
			return s.token(COMMA), nil
		case '_':
			return s.token(UNDERSCORE), nil
		case '@':
			return s.token(AT), nil
		case '(':
			return s.token(LROUND), nil
		case ')':
			return s.token(RROUND), nil
		case '[':
			return s.token(LSQUARE), nil
		case ']':
			return s.token(RSQUARE), nil
		case '{':
			return s.token(LCURLY), nil
		case '}':
			return s.token(RCURLY), nil
		case ';':
			s.skipComment()
			continue
		case '<':
			return s.scanLess(), nil
		case '>':
			return s.scanGreater(), nil
		}

		switch {
		case r == '.' || isDigit(r):
			return s.scanNumber(r)
		case isIdentifierStart(r):
			return s.token(s.scanIdentifier()), nil
		}

		return Token{}, s.scanInvalid()
	}
}

// ----- lookahead primitives -----

func (s *Scanner) peek() (rune, bool) {
	if s.current.Offset >= len(s.source) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current.Offset:])
	return r, true
}

func (s *Scanner) advance() (rune, bool) {
	if s.current.Offset >= len(s.source) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.source[s.current.Offset:])
	s.current = s.current.advance(r, size)
	return r, true
}

func (s *Scanner) advanceIf(predicate func(rune) bool) bool {
	r, ok := s.peek()
	if !ok || !predicate(r) {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) advanceIfEq(expected rune) bool {
	return s.advanceIf(func(r rune) bool { return r == expected })
}

func (s *Scanner) lexeme() Lexeme {
	return NewLexeme(s.source[s.start.Offset:s.current.Offset], s.start)
}

func (s *Scanner) token(kind Kind) Token {
	return NewToken(s.lexeme(), kind)
}

// ----- scanners -----

func (s *Scanner) skipBlankSpace() {
	for s.advanceIf(isBlankSpace) {
	}
}

func (s *Scanner) skipComment() {
	for {
		r, ok := s.peek()
		if !ok || r == '\n' {
			return
		}
		s.advance()
	}
}

func (s *Scanner) scanLess() Token {
	if s.advanceIfEq('=') {
		return s.token(LESS_EQ)
	}
	if s.advanceIfEq('>') {
		return s.token(NOT_EQUAL)
	}
	return s.token(LESS)
}

func (s *Scanner) scanGreater() Token {
	if s.advanceIfEq('=') {
		return s.token(GREATER_EQ)
	}
	return s.token(GREATER)
}

// scanNumber consumes a digit run with at most one fractional point. The
// leading rune (a digit or '.') has already been consumed. A '.' with no
// digits on either side is a NumberFormat lexical error.
func (s *Scanner) scanNumber(first rune) (Token, error) {
	digits := isDigit(first)

	for s.advanceIf(isDigit) {
		digits = true
	}
	if first != '.' && s.advanceIfEq('.') {
		for s.advanceIf(isDigit) {
		}
	}

	if !digits {
		return Token{}, NewLexicalError(s.lexeme(), NumberFormat)
	}
	return s.token(NUMBER), nil
}

func (s *Scanner) scanIdentifier() Kind {
	for s.advanceIf(isIdentifierContinue) {
	}
	return IDENT
}

// scanInvalid coalesces a maximal run of characters that start no token. The
// first offending rune has already been consumed; the run extends over every
// following rune that is not punctuation, a digit, an identifier start, or
// blank space.
func (s *Scanner) scanInvalid() *LexicalError {
	for s.advanceIf(func(r rune) bool {
		return !isASCIIPunctuation(r) && !isDigit(r) && !isIdentifierStart(r) && !isBlankSpace(r)
	}) {
	}
	return NewLexicalError(s.lexeme(), Invalid)
}

// ----- character classes -----

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isBlankSpace(r rune) bool { return unicode.Is(unicode.Pattern_White_Space, r) }

func isASCIIPunctuation(r rune) bool {
	switch {
	case '!' <= r && r <= '/':
		return true
	case ':' <= r && r <= '@':
		return true
	case '[' <= r && r <= '`':
		return true
	case '{' <= r && r <= '~':
		return true
	}
	return false
}

// isIdentifierStart approximates the Unicode XID_Start property with the
// stdlib range tables: letters and Other_ID_Start, minus pattern syntax.
// A bare '_' is not an identifier start; the scanner emits UNDERSCORE for it.
func isIdentifierStart(r rune) bool {
	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_ID_Start)
}

// isIdentifierContinue approximates XID_Continue: identifier starts plus
// digits, combining marks, connector punctuation ('_' included), and
// Other_ID_Continue.
func isIdentifierContinue(r rune) bool {
	return isIdentifierStart(r) ||
		unicode.In(r, unicode.Nd, unicode.Mn, unicode.Mc, unicode.Pc, unicode.Other_ID_Continue)
}
