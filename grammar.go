// grammar.go — the abstract syntax tree.
//
// The grammar is pure data: nodes carry no behavior beyond accessors, and all
// evaluation lives in interpreter_exec.go. Precedence is encoded structurally
// as a cascade of node types, tightest binding last:
//
//	program    → expression+ | expression comparison+
//	expression → assignment | arithmetic
//	arithmetic → epsilon
//	epsilon    → modulo ( "~" modulo )?
//	modulo     → sum ( "%" sum )*
//	sum        → product ( ("+"|"-") product )*
//	product    → power ( ("*"|"/") power )*
//	power      → primary ( "^" primary )*
//	primary    → number | call | grouping
//	assignment → "@" function "=" block
//	function   → name ( "(" pattern ( "," pattern )* ")" )?
//	block      → expression | "[" expression+ "]"
//
// Every left-associative operator chain and every comma-separated list reuses
// the generic List node, so iteration logic is written once.
package tortuga

// List is a non-empty ordered sequence: one head plus zero or more tail
// elements. The head and tail may have different element types so that
// operator chains can tag each tail element with its operator.
type List[H, T any] struct {
	head H
	tail []T
}

// NewList creates a non-empty list from a head and an optional tail.
func NewList[H, T any](head H, tail []T) List[H, T] {
	return List[H, T]{head: head, tail: tail}
}

// Head returns the first element of the list.
func (l List[H, T]) Head() H { return l.head }

// Tail returns the rest of the list; it may be empty.
func (l List[H, T]) Tail() []T { return l.tail }

// Len returns the total number of elements, head included.
func (l List[H, T]) Len() int { return 1 + len(l.tail) }

// Instantiations of List used throughout the grammar.
type (
	// Modulo folds sums with "%".
	Modulo = List[Sum, Sum]
	// Sum folds products with "+" and "-".
	Sum = List[Product, AddOrSubtract]
	// Product folds powers with "*" and "/".
	Product = List[Power, MultiplyOrDivide]
	// Power folds primaries with "^".
	Power = List[Primary, Primary]
	// Arguments is a comma-separated argument list of a call.
	Arguments = List[Expression, Expression]
	// Parameters is a comma-separated parameter pattern list.
	Parameters = List[Pattern, Pattern]
	// Block is a sequence of expressions whose last value is the result.
	Block = List[Expression, Expression]
)

// Program is the root of the syntax tree: either a sequence of expressions or
// an expression followed by a chain of comparisons.
type Program interface {
	program()
}

// Expressions is a program of one or more expressions; the program's value is
// the value of the last expression.
type Expressions struct {
	List[Expression, Expression]
}

// NewExpressions creates an expression-sequence program.
func NewExpressions(head Expression, tail []Expression) *Expressions {
	return &Expressions{NewList(head, tail)}
}

func (*Expressions) program() {}

// Comparisons is a program of an expression followed by one or more
// relational comparisons, evaluated left-to-right with short-circuiting.
type Comparisons struct {
	lhs         Expression
	comparisons List[Comparison, Comparison]
}

// NewComparisons creates a comparison-chain program.
func NewComparisons(lhs Expression, comparisons List[Comparison, Comparison]) *Comparisons {
	return &Comparisons{lhs: lhs, comparisons: comparisons}
}

func (*Comparisons) program() {}

// Lhs returns the expression compared by the first comparison.
func (c *Comparisons) Lhs() Expression { return c.lhs }

// Comparisons returns the chain of comparisons, in source order.
func (c *Comparisons) Comparisons() List[Comparison, Comparison] { return c.comparisons }

// Comparison is one relational operator and its right-hand side.
type Comparison struct {
	comparator Comparator
	rhs        Expression
}

// NewComparison creates a comparison from an operator and a right-hand side.
func NewComparison(comparator Comparator, rhs Expression) Comparison {
	return Comparison{comparator: comparator, rhs: rhs}
}

// Comparator returns the relational operator of this comparison.
func (c Comparison) Comparator() Comparator { return c.comparator }

// Rhs returns the right-hand side of this comparison.
func (c Comparison) Rhs() Expression { return c.rhs }

// Comparator is a relational operator.
type Comparator int

const (
	EqualTo Comparator = iota
	NotEqualTo
	LessThan
	LessThanOrEqualTo
	GreaterThan
	GreaterThanOrEqualTo
)

func (c Comparator) String() string {
	switch c {
	case EqualTo:
		return "="
	case NotEqualTo:
		return "<>"
	case LessThan:
		return "<"
	case LessThanOrEqualTo:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqualTo:
		return ">="
	default:
		return "?"
	}
}

// flip mirrors the comparator so that "a op b" and "b flip(op) a" agree.
func (c Comparator) flip() Comparator {
	switch c {
	case LessThan:
		return GreaterThan
	case LessThanOrEqualTo:
		return GreaterThanOrEqualTo
	case GreaterThan:
		return LessThan
	case GreaterThanOrEqualTo:
		return LessThanOrEqualTo
	default:
		return c
	}
}

// isInequality reports whether the comparator is one of < <= > >=.
func (c Comparator) isInequality() bool {
	switch c {
	case LessThan, LessThanOrEqualTo, GreaterThan, GreaterThanOrEqualTo:
		return true
	default:
		return false
	}
}

// Expression is either an arithmetic cascade or an assignment.
type Expression interface {
	expression()
}

// Arithmetic wraps the top of the operator precedence cascade.
type Arithmetic struct {
	epsilon Epsilon
}

// NewArithmetic creates an arithmetic expression from its epsilon rule.
func NewArithmetic(epsilon Epsilon) *Arithmetic { return &Arithmetic{epsilon: epsilon} }

func (*Arithmetic) expression() {}

// Epsilon returns the wrapped epsilon rule.
func (a *Arithmetic) Epsilon() Epsilon { return a.epsilon }

// Epsilon is the approximate-equality rule: "lhs ~ rhs" attaches the
// tolerance rhs to the value lhs; without rhs it is just lhs.
type Epsilon struct {
	lhs Modulo
	rhs *Modulo
}

// NewEpsilon creates an epsilon rule; rhs may be nil.
func NewEpsilon(lhs Modulo, rhs *Modulo) Epsilon {
	return Epsilon{lhs: lhs, rhs: rhs}
}

// Lhs returns the value operand.
func (e Epsilon) Lhs() Modulo { return e.lhs }

// Rhs returns the tolerance operand, or nil when absent.
func (e Epsilon) Rhs() *Modulo { return e.rhs }

// Operator tags a tail element of a sum or product with its operator.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// AddOrSubtract is the operator and right-hand side of one sum step.
type AddOrSubtract struct {
	operator Operator
	rhs      Product
}

// NewAddOrSubtract creates a sum step; operator must be Add or Subtract.
func NewAddOrSubtract(operator Operator, rhs Product) AddOrSubtract {
	return AddOrSubtract{operator: operator, rhs: rhs}
}

// Operator returns Add or Subtract.
func (a AddOrSubtract) Operator() Operator { return a.operator }

// Rhs returns the right-hand side of this step.
func (a AddOrSubtract) Rhs() Product { return a.rhs }

// MultiplyOrDivide is the operator and right-hand side of one product step.
type MultiplyOrDivide struct {
	operator Operator
	rhs      Power
}

// NewMultiplyOrDivide creates a product step; operator must be Multiply or Divide.
func NewMultiplyOrDivide(operator Operator, rhs Power) MultiplyOrDivide {
	return MultiplyOrDivide{operator: operator, rhs: rhs}
}

// Operator returns Multiply or Divide.
func (m MultiplyOrDivide) Operator() Operator { return m.operator }

// Rhs returns the right-hand side of this step.
func (m MultiplyOrDivide) Rhs() Power { return m.rhs }

// Primary is a number literal, a call (or bare reference), or a grouping.
type Primary interface {
	primary()
}

// NumberLiteral is a numeric literal with an optional leading minus.
type NumberLiteral struct {
	negative bool
	number   Lexeme
}

// NewNumberLiteral creates a number literal from its sign and digits.
func NewNumberLiteral(negative bool, number Lexeme) *NumberLiteral {
	return &NumberLiteral{negative: negative, number: number}
}

func (*NumberLiteral) primary() {}

// IsNegative reports whether the literal carries a leading minus.
func (n *NumberLiteral) IsNegative() bool { return n.negative }

// Number returns the digit lexeme, sign excluded.
func (n *NumberLiteral) Number() Lexeme { return n.number }

// Call is a named reference with zero or more argument lists. With no
// argument lists it is a bare value reference; each parenthesized list
// invokes the value produced so far.
type Call struct {
	identifier Lexeme
	arguments  []Arguments
}

// NewCall creates a call node.
func NewCall(identifier Lexeme, arguments []Arguments) *Call {
	return &Call{identifier: identifier, arguments: arguments}
}

func (*Call) primary() {}

// Identifier returns the lexeme of the called name.
func (c *Call) Identifier() Lexeme { return c.identifier }

// Arguments returns the argument lists, in invocation order.
func (c *Call) Arguments() []Arguments { return c.arguments }

// Grouping is a parenthesized expression; it exists only for precedence.
type Grouping struct {
	inner Expression
}

// NewGrouping wraps an expression in a grouping.
func NewGrouping(inner Expression) *Grouping { return &Grouping{inner: inner} }

func (*Grouping) primary() {}

// Inner returns the grouped expression.
func (g *Grouping) Inner() Expression { return g.inner }

// Assignment defines a value binding or a function clause: "@ function = block".
type Assignment struct {
	function *Function
	block    Block
}

// NewAssignment creates an assignment from a signature and a block.
func NewAssignment(function *Function, block Block) *Assignment {
	return &Assignment{function: function, block: block}
}

func (*Assignment) expression() {}

// Function returns the signature defined by this assignment.
func (a *Assignment) Function() *Function { return a.function }

// Block returns the body evaluated on a call (or once, for value bindings).
func (a *Assignment) Block() Block { return a.block }

// Function is a signature: a name and optional parameter patterns. Without
// parameters it defines (or, as a pattern, merely binds) a plain value. It
// doubles as the nested function-shape pattern.
type Function struct {
	name       Name
	parameters *Parameters
}

// NewFunction creates a signature; parameters may be nil.
func NewFunction(name Name, parameters *Parameters) *Function {
	return &Function{name: name, parameters: parameters}
}

func (*Function) pattern() {}

// Name returns the signature's name.
func (f *Function) Name() Name { return f.name }

// Parameters returns the parameter patterns, or nil when the signature has none.
func (f *Function) Parameters() *Parameters { return f.parameters }

// Binding returns the name bound when this signature is used as a pattern.
func (f *Function) Binding() Name { return f.name }

// Name is an anonymous marker ("_") or an identifier.
type Name struct {
	identifier string
}

// Anonymous returns the anonymous name.
func Anonymous() Name { return Name{} }

// Identified returns a name for the given identifier.
func Identified(identifier string) Name { return Name{identifier: identifier} }

// IsAnonymous reports whether the name is the anonymous marker.
func (n Name) IsAnonymous() bool { return n.identifier == "" }

// Identifier returns the identifier text; ok is false for anonymous names.
func (n Name) Identifier() (string, bool) { return n.identifier, !n.IsAnonymous() }

func (n Name) String() string {
	if n.IsAnonymous() {
		return "_"
	}
	return n.identifier
}

// Pattern guards one parameter of a function clause. A parameterless Function
// pattern is the wildcard: it always matches and only binds its name.
type Pattern interface {
	pattern()
	// Binding is the name bound to the argument when the pattern matches.
	Binding() Name
}

// Refinement constrains a parameter with a single relational comparison:
// the argument must satisfy "argument comparator constraint".
type Refinement struct {
	name       Name
	comparator Comparator
	constraint Expression
}

// NewRefinement creates a refinement pattern.
func NewRefinement(name Name, comparator Comparator, constraint Expression) *Refinement {
	return &Refinement{name: name, comparator: comparator, constraint: constraint}
}

func (*Refinement) pattern() {}

// Binding returns the refined parameter's name.
func (r *Refinement) Binding() Name { return r.name }

// Comparator returns the relational operator of the refinement.
func (r *Refinement) Comparator() Comparator { return r.comparator }

// Constraint returns the expression the argument is compared against.
func (r *Refinement) Constraint() Expression { return r.constraint }

// Bound is one side of a two-sided range test.
type Bound struct {
	constraint Expression
	inequality Comparator
}

// NewBound creates a bound; inequality must be one of < <= > >=.
func NewBound(constraint Expression, inequality Comparator) Bound {
	return Bound{constraint: constraint, inequality: inequality}
}

// Constraint returns the bounding expression.
func (b Bound) Constraint() Expression { return b.constraint }

// Inequality returns the bound's relational operator.
func (b Bound) Inequality() Comparator { return b.inequality }

// Bounds is a two-sided range pattern: "left.constraint left.inequality name
// right.inequality right.constraint". Both sides must hold.
type Bounds struct {
	left  Bound
	name  Name
	right Bound
}

// NewBounds creates a bounds pattern.
func NewBounds(left Bound, name Name, right Bound) *Bounds {
	return &Bounds{left: left, name: name, right: right}
}

func (*Bounds) pattern() {}

// Binding returns the bounded parameter's name.
func (b *Bounds) Binding() Name { return b.name }

// Left returns the lower-side bound (tested as "constraint inequality value").
func (b *Bounds) Left() Bound { return b.left }

// Right returns the upper-side bound (tested as "value inequality constraint").
func (b *Bounds) Right() Bound { return b.right }
