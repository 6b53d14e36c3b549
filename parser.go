// parser.go — recursive descent LL(1) parser.
//
// The parser consumes the scanner's token sequence with one token of
// lookahead and produces a Program. Each grammar rule in grammar.go has a
// one-to-one parsing routine; precedence is encoded by the call graph
// (expression → epsilon → modulo → sum → product → power → primary), not by
// an operator table, so binding strength and left-associativity are fixed
// structurally.
//
// Error policy: the first error aborts the whole parse. NoMatch carries the
// offending token; Incomplete means the input ended mid-rule, which REPLs
// probe with IsIncomplete to keep reading lines. A lexical error in the token
// sequence aborts the parse and is returned as-is.
package tortuga

// Parse builds the syntax tree for a complete source text. The returned
// error is a *SyntacticalError or, for invalid input spans, a *LexicalError.
func Parse(source string) (Program, error) {
	p := &parser{scanner: NewScanner(source)}
	return p.parse()
}

var comparisonKinds = []Kind{LESS, GREATER, LESS_EQ, GREATER_EQ, EQUAL, NOT_EQUAL}

var inequalityKinds = []Kind{LESS, GREATER, LESS_EQ, GREATER_EQ}

type parser struct {
	scanner *Scanner
	peeked  *Token
	err     error // pending ErrEndOfInput or *LexicalError
}

// ----- token stream helpers -----

func (p *parser) fill() {
	if p.peeked != nil || p.err != nil {
		return
	}
	token, err := p.scanner.Next()
	if err != nil {
		p.err = err
		return
	}
	p.peeked = &token
}

// hasNext reports whether another token (or a pending lexical error, which
// the next read surfaces) remains.
func (p *parser) hasNext() bool {
	p.fill()
	return p.peeked != nil || (p.err != nil && p.err != ErrEndOfInput)
}

func (p *parser) peekIs(kinds ...Kind) bool {
	p.fill()
	if p.peeked == nil {
		return false
	}
	for _, kind := range kinds {
		if p.peeked.Kind == kind {
			return true
		}
	}
	return false
}

func (p *parser) nextIf(kinds ...Kind) (Token, bool) {
	if !p.peekIs(kinds...) {
		return Token{}, false
	}
	token := *p.peeked
	p.peeked = nil
	return token, true
}

// expect consumes the next token if its kind is one of kinds. It returns
// Incomplete at end of input, the pending *LexicalError for invalid input,
// and NoMatch otherwise.
func (p *parser) expect(expected string, kinds ...Kind) (Token, error) {
	p.fill()
	if p.peeked == nil {
		if p.err == ErrEndOfInput {
			return Token{}, NewIncompleteError(expected)
		}
		return Token{}, p.err
	}
	if token, ok := p.nextIf(kinds...); ok {
		return token, nil
	}
	return Token{}, NewNoMatchError(expected, *p.peeked)
}

// ----- grammar rules -----

func (p *parser) parse() (Program, error) {
	expression, err := p.expression()
	if err != nil {
		return nil, err
	}

	if p.peekIs(comparisonKinds...) {
		return p.comparisons(expression)
	}
	return p.expressions(expression)
}

func (p *parser) expressions(head Expression) (Program, error) {
	var tail []Expression

	for p.hasNext() {
		expression, err := p.expression()
		if err != nil {
			return nil, err
		}
		tail = append(tail, expression)
	}

	return NewExpressions(head, tail), nil
}

func (p *parser) comparisons(lhs Expression) (Program, error) {
	head, err := p.comparison()
	if err != nil {
		return nil, err
	}

	var tail []Comparison
	for p.hasNext() {
		comparison, err := p.comparison()
		if err != nil {
			return nil, err
		}
		tail = append(tail, comparison)
	}

	return NewComparisons(lhs, NewList(head, tail)), nil
}

func (p *parser) comparison() (Comparison, error) {
	comparator, _, err := p.comparator()
	if err != nil {
		return Comparison{}, err
	}

	rhs, err := p.expression()
	if err != nil {
		return Comparison{}, err
	}

	return NewComparison(comparator, rhs), nil
}

func (p *parser) comparator() (Comparator, Token, error) {
	token, err := p.expect("a comparison operator", comparisonKinds...)
	if err != nil {
		return 0, Token{}, err
	}

	switch token.Kind {
	case LESS:
		return LessThan, token, nil
	case LESS_EQ:
		return LessThanOrEqualTo, token, nil
	case GREATER:
		return GreaterThan, token, nil
	case GREATER_EQ:
		return GreaterThanOrEqualTo, token, nil
	case NOT_EQUAL:
		return NotEqualTo, token, nil
	default:
		return EqualTo, token, nil
	}
}

// expression parses an assignment (led by '@', or by '_' for an anonymous
// function value) or an arithmetic cascade.
func (p *parser) expression() (Expression, error) {
	if _, ok := p.nextIf(AT); ok {
		return p.assignment()
	}
	if p.peekIs(UNDERSCORE) {
		return p.assignment()
	}

	epsilon, err := p.epsilon()
	if err != nil {
		return nil, err
	}
	return NewArithmetic(epsilon), nil
}

func (p *parser) epsilon() (Epsilon, error) {
	lhs, err := p.modulo()
	if err != nil {
		return Epsilon{}, err
	}

	if _, ok := p.nextIf(TILDE); ok {
		rhs, err := p.modulo()
		if err != nil {
			return Epsilon{}, err
		}
		return NewEpsilon(lhs, &rhs), nil
	}

	return NewEpsilon(lhs, nil), nil
}

func (p *parser) modulo() (Modulo, error) {
	head, err := p.sum()
	if err != nil {
		return Modulo{}, err
	}

	var tail []Sum
	for {
		if _, ok := p.nextIf(PERCENT); !ok {
			break
		}
		sum, err := p.sum()
		if err != nil {
			return Modulo{}, err
		}
		tail = append(tail, sum)
	}

	return NewList(head, tail), nil
}

func (p *parser) sum() (Sum, error) {
	head, err := p.product()
	if err != nil {
		return Sum{}, err
	}

	var tail []AddOrSubtract
	for {
		var operator Operator
		if _, ok := p.nextIf(PLUS); ok {
			operator = Add
		} else if _, ok := p.nextIf(MINUS); ok {
			operator = Subtract
		} else {
			break
		}

		rhs, err := p.product()
		if err != nil {
			return Sum{}, err
		}
		tail = append(tail, NewAddOrSubtract(operator, rhs))
	}

	return NewList(head, tail), nil
}

func (p *parser) product() (Product, error) {
	head, err := p.power()
	if err != nil {
		return Product{}, err
	}

	var tail []MultiplyOrDivide
	for {
		var operator Operator
		if _, ok := p.nextIf(STAR); ok {
			operator = Multiply
		} else if _, ok := p.nextIf(SLASH); ok {
			operator = Divide
		} else {
			break
		}

		rhs, err := p.power()
		if err != nil {
			return Product{}, err
		}
		tail = append(tail, NewMultiplyOrDivide(operator, rhs))
	}

	return NewList(head, tail), nil
}

func (p *parser) power() (Power, error) {
	head, err := p.primary()
	if err != nil {
		return Power{}, err
	}

	var tail []Primary
	for {
		if _, ok := p.nextIf(CARET); !ok {
			break
		}
		primary, err := p.primary()
		if err != nil {
			return Power{}, err
		}
		tail = append(tail, primary)
	}

	return NewList(head, tail), nil
}

func (p *parser) primary() (Primary, error) {
	p.fill()
	if p.peeked == nil {
		if p.err == ErrEndOfInput {
			return nil, NewIncompleteError("an expression")
		}
		return nil, p.err
	}

	switch p.peeked.Kind {
	case MINUS, NUMBER:
		return p.number()
	case IDENT:
		return p.call()
	case LROUND:
		return p.grouping()
	default:
		return nil, NewNoMatchError("an expression", *p.peeked)
	}
}

func (p *parser) number() (*NumberLiteral, error) {
	_, negative := p.nextIf(MINUS)

	token, err := p.expect("a number", NUMBER)
	if err != nil {
		return nil, err
	}

	return NewNumberLiteral(negative, token.Lexeme), nil
}

// call parses an identifier with zero or more parenthesized argument lists.
// A call with no lists is a bare value reference; every list requires at
// least one argument.
func (p *parser) call() (*Call, error) {
	token, err := p.expect("an identifier", IDENT)
	if err != nil {
		return nil, err
	}

	var lists []Arguments
	for {
		if _, ok := p.nextIf(LROUND); !ok {
			break
		}

		arguments, err := p.arguments()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(`")"`, RROUND); err != nil {
			return nil, err
		}

		lists = append(lists, arguments)
	}

	return NewCall(token.Lexeme, lists), nil
}

func (p *parser) arguments() (Arguments, error) {
	head, err := p.expression()
	if err != nil {
		return Arguments{}, err
	}

	var tail []Expression
	for {
		if _, ok := p.nextIf(COMMA); !ok {
			break
		}
		expression, err := p.expression()
		if err != nil {
			return Arguments{}, err
		}
		tail = append(tail, expression)
	}

	return NewList(head, tail), nil
}

func (p *parser) grouping() (*Grouping, error) {
	if _, err := p.expect(`"("`, LROUND); err != nil {
		return nil, err
	}

	expression, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(`")"`, RROUND); err != nil {
		return nil, err
	}

	return NewGrouping(expression), nil
}

// assignment parses "function = block"; the caller has consumed a leading
// '@' for identified definitions (anonymous ones start at '_' directly).
func (p *parser) assignment() (*Assignment, error) {
	function, err := p.function()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(`"="`, EQUAL); err != nil {
		return nil, err
	}

	block, err := p.block()
	if err != nil {
		return nil, err
	}

	return NewAssignment(function, block), nil
}

func (p *parser) function() (*Function, error) {
	name, err := p.name()
	if err != nil {
		return nil, err
	}

	var parameters *Parameters
	if _, ok := p.nextIf(LROUND); ok {
		list, err := p.parameters()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(`")"`, RROUND); err != nil {
			return nil, err
		}
		parameters = &list
	}

	return NewFunction(name, parameters), nil
}

func (p *parser) name() (Name, error) {
	if _, ok := p.nextIf(UNDERSCORE); ok {
		return Anonymous(), nil
	}

	token, err := p.expect("a name", IDENT)
	if err != nil {
		return Name{}, err
	}
	return Identified(token.Lexeme.Text), nil
}

func (p *parser) parameters() (Parameters, error) {
	head, err := p.pattern()
	if err != nil {
		return Parameters{}, err
	}

	var tail []Pattern
	for {
		if _, ok := p.nextIf(COMMA); !ok {
			break
		}
		pattern, err := p.pattern()
		if err != nil {
			return Parameters{}, err
		}
		tail = append(tail, pattern)
	}

	return NewList(head, tail), nil
}

// pattern parses one parameter guard:
//
//	"@" function            nested function shape (bind-only when bare)
//	name comparator expr    refinement
//	name                    wildcard (always matches, only binds)
//	expr cmp name           refinement with the comparator flipped
//	expr ineq name ineq expr  two-sided bounds
func (p *parser) pattern() (Pattern, error) {
	if _, ok := p.nextIf(AT); ok {
		return p.function()
	}

	if p.peekIs(UNDERSCORE, IDENT) {
		name, err := p.name()
		if err != nil {
			return nil, err
		}

		if p.peekIs(comparisonKinds...) {
			comparator, _, err := p.comparator()
			if err != nil {
				return nil, err
			}
			constraint, err := p.constraint()
			if err != nil {
				return nil, err
			}
			return NewRefinement(name, comparator, constraint), nil
		}

		return NewFunction(name, nil), nil
	}

	return p.boundedPattern()
}

// boundedPattern parses the constraint-first forms: a refinement written with
// the constraint on the left, or a two-sided bounds test.
func (p *parser) boundedPattern() (Pattern, error) {
	left, err := p.constraint()
	if err != nil {
		return nil, err
	}

	comparator, token, err := p.comparator()
	if err != nil {
		return nil, err
	}

	name, err := p.name()
	if err != nil {
		return nil, err
	}

	if p.peekIs(inequalityKinds...) {
		if !comparator.isInequality() {
			return nil, NewNoMatchError("an inequality", token)
		}

		inequality, _, err := p.comparator()
		if err != nil {
			return nil, err
		}
		right, err := p.constraint()
		if err != nil {
			return nil, err
		}

		return NewBounds(NewBound(left, comparator), name, NewBound(right, inequality)), nil
	}

	return NewRefinement(name, comparator.flip(), left), nil
}

// constraint parses an arithmetic expression used inside a pattern. The
// cascade enters below the comparison level so relational operators stay
// available to the pattern grammar itself.
func (p *parser) constraint() (Expression, error) {
	epsilon, err := p.epsilon()
	if err != nil {
		return nil, err
	}
	return NewArithmetic(epsilon), nil
}

// block parses a single expression or a bracketed sequence; the last
// expression's value is the block's result.
func (p *parser) block() (Block, error) {
	if _, ok := p.nextIf(LSQUARE); !ok {
		expression, err := p.expression()
		if err != nil {
			return Block{}, err
		}
		return NewList(expression, []Expression(nil)), nil
	}

	head, err := p.expression()
	if err != nil {
		return Block{}, err
	}

	var tail []Expression
	for {
		if _, ok := p.nextIf(RSQUARE); ok {
			break
		}
		if !p.hasNext() {
			return Block{}, NewIncompleteError(`"]"`)
		}

		expression, err := p.expression()
		if err != nil {
			return Block{}, err
		}
		tail = append(tail, expression)
	}

	return NewList(head, tail), nil
}
