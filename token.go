// token.go — token kinds and the Token type produced by the scanner.
package tortuga

// Kind identifies the lexical class of a token.
type Kind int

const (
	// Operators
	PLUS    Kind = iota // "+"
	MINUS               // "-"
	STAR                // "*"
	SLASH               // "/"
	CARET               // "^"
	PERCENT             // "%"
	TILDE               // "~"

	// Relational set; EQUAL doubles as the definition sign in assignments.
	EQUAL      // "="
	NOT_EQUAL  // "<>"
	LESS       // "<"
	LESS_EQ    // "<="
	GREATER    // ">"
	GREATER_EQ // ">="

	// Punctuation
	COMMA      // ","
	UNDERSCORE // "_" with no identifier-continue characters after it
	AT         // "@"
	LROUND     // "("
	RROUND     // ")"
	LSQUARE    // "["
	RSQUARE    // "]"
	LCURLY     // "{"
	RCURLY     // "}"

	// Literal classes
	NUMBER // digit run with an optional fractional point
	IDENT  // Unicode identifier
)

var kindNames = map[Kind]string{
	PLUS:       "+",
	MINUS:      "-",
	STAR:       "*",
	SLASH:      "/",
	CARET:      "^",
	PERCENT:    "%",
	TILDE:      "~",
	EQUAL:      "=",
	NOT_EQUAL:  "<>",
	LESS:       "<",
	LESS_EQ:    "<=",
	GREATER:    ">",
	GREATER_EQ: ">=",
	COMMA:      ",",
	UNDERSCORE: "_",
	AT:         "@",
	LROUND:     "(",
	RROUND:     ")",
	LSQUARE:    "[",
	RSQUARE:    "]",
	LCURLY:     "{",
	RCURLY:     "}",
	NUMBER:     "NUMBER",
	IDENT:      "IDENTIFIER",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is a lexeme tagged with its kind. Tokens are immutable and compare by
// kind and text content, independent of source position.
type Token struct {
	Lexeme Lexeme
	Kind   Kind
}

// NewToken creates a token for the given lexeme and kind.
func NewToken(lexeme Lexeme, kind Kind) Token {
	return Token{Lexeme: lexeme, Kind: kind}
}

// Equal reports whether both tokens have the same kind and spelling.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Lexeme.Equal(other.Lexeme)
}

func (t Token) String() string {
	return t.Lexeme.String()
}
