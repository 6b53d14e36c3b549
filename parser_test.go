package tortuga

import (
	"errors"
	"testing"
)

func parseOK(t *testing.T, src string) Program {
	t.Helper()

	program, err := Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v\nsrc:\n%s", err, src)
	}
	return program
}

// firstExpression unwraps a single-expression program.
func firstExpression(t *testing.T, src string) Expression {
	t.Helper()

	expressions, ok := parseOK(t, src).(*Expressions)
	if !ok {
		t.Fatalf("want an expression program\nsrc:\n%s", src)
	}
	return expressions.Head()
}

func TestParsePrecedence(t *testing.T) {
	arithmetic, ok := firstExpression(t, "1 + 2 * 3 ^ 4 % 5").(*Arithmetic)
	if !ok {
		t.Fatal("want an arithmetic expression")
	}

	// One modulo step, whose left side is a sum with one addition step.
	modulo := arithmetic.Epsilon().Lhs()
	if modulo.Len() != 2 {
		t.Fatalf("want 2 modulo operands, got %d", modulo.Len())
	}
	sum := modulo.Head()
	if sum.Len() != 2 {
		t.Fatalf("want 2 sum operands, got %d", sum.Len())
	}
	if sum.Tail()[0].Operator() != Add {
		t.Fatalf("want +, got %s", sum.Tail()[0].Operator())
	}

	// The multiplication folds the power chain, not the other way around.
	product := sum.Tail()[0].Rhs()
	if product.Len() != 2 || product.Tail()[0].Operator() != Multiply {
		t.Fatal("want the addition's right side to be a product")
	}
	if product.Tail()[0].Rhs().Len() != 2 {
		t.Fatal("want the product's right side to be a power chain")
	}
}

func TestParseEpsilon(t *testing.T) {
	arithmetic := firstExpression(t, "0.3 ~ 0.001").(*Arithmetic)
	if arithmetic.Epsilon().Rhs() == nil {
		t.Fatal("want a tolerance operand")
	}

	arithmetic = firstExpression(t, "0.3").(*Arithmetic)
	if arithmetic.Epsilon().Rhs() != nil {
		t.Fatal("want no tolerance operand")
	}
}

func TestParseComparisonChain(t *testing.T) {
	comparisons, ok := parseOK(t, "1 < 2 <= 3 <> 4").(*Comparisons)
	if !ok {
		t.Fatal("want a comparison program")
	}

	chain := comparisons.Comparisons()
	if chain.Len() != 3 {
		t.Fatalf("want 3 comparisons, got %d", chain.Len())
	}
	if chain.Head().Comparator() != LessThan {
		t.Fatalf("want <, got %s", chain.Head().Comparator())
	}
	if chain.Tail()[1].Comparator() != NotEqualTo {
		t.Fatalf("want <>, got %s", chain.Tail()[1].Comparator())
	}
}

func TestParseExpressionSequence(t *testing.T) {
	expressions := parseOK(t, "@x = 2 x + 1").(*Expressions)
	if expressions.Len() != 2 {
		t.Fatalf("want 2 expressions, got %d", expressions.Len())
	}
	if _, ok := expressions.Head().(*Assignment); !ok {
		t.Fatal("want the first expression to be an assignment")
	}
}

func TestParseValueAssignment(t *testing.T) {
	assignment := firstExpression(t, "@x = 2").(*Assignment)

	identifier, ok := assignment.Function().Name().Identifier()
	if !ok || identifier != "x" {
		t.Fatalf("want the name x, got %s", assignment.Function().Name())
	}
	if assignment.Function().Parameters() != nil {
		t.Fatal("want a value binding without parameters")
	}
}

func TestParseFunctionAssignment(t *testing.T) {
	assignment := firstExpression(t, "@f(a, b) = a + b").(*Assignment)

	parameters := assignment.Function().Parameters()
	if parameters == nil || parameters.Len() != 2 {
		t.Fatal("want 2 parameters")
	}
	if _, ok := parameters.Head().(*Function); !ok {
		t.Fatal("want a bare name parameter")
	}
}

func TestParseAnonymousFunctionValue(t *testing.T) {
	assignment := firstExpression(t, "@f = _(@a, @b) = (a^2 + b^2)^.5").(*Assignment)
	if assignment.Function().Parameters() != nil {
		t.Fatal("want the outer assignment to be a value binding")
	}

	inner, ok := assignment.Block().Head().(*Assignment)
	if !ok {
		t.Fatal("want the block to hold an anonymous function")
	}
	if !inner.Function().Name().IsAnonymous() {
		t.Fatal("want an anonymous name")
	}
	if inner.Function().Parameters().Len() != 2 {
		t.Fatalf("want 2 parameters, got %d", inner.Function().Parameters().Len())
	}
}

func TestParseRefinementPattern(t *testing.T) {
	assignment := firstExpression(t, "@f(_ > 3) = 42").(*Assignment)

	refinement, ok := assignment.Function().Parameters().Head().(*Refinement)
	if !ok {
		t.Fatal("want a refinement pattern")
	}
	if !refinement.Binding().IsAnonymous() {
		t.Fatal("want an anonymous binding")
	}
	if refinement.Comparator() != GreaterThan {
		t.Fatalf("want >, got %s", refinement.Comparator())
	}
}

func TestParseFlippedRefinementPattern(t *testing.T) {
	// The constraint-first spelling flips the comparator so the test still
	// reads "argument comparator constraint".
	assignment := firstExpression(t, "@f(3 < x) = x").(*Assignment)

	refinement, ok := assignment.Function().Parameters().Head().(*Refinement)
	if !ok {
		t.Fatal("want a refinement pattern")
	}
	if refinement.Comparator() != GreaterThan {
		t.Fatalf("want the flipped >, got %s", refinement.Comparator())
	}
}

func TestParseBoundsPattern(t *testing.T) {
	assignment := firstExpression(t, "@f(1 < x <= 10) = x").(*Assignment)

	bounds, ok := assignment.Function().Parameters().Head().(*Bounds)
	if !ok {
		t.Fatal("want a bounds pattern")
	}
	if bounds.Left().Inequality() != LessThan {
		t.Fatalf("want <, got %s", bounds.Left().Inequality())
	}
	if bounds.Right().Inequality() != LessThanOrEqualTo {
		t.Fatalf("want <=, got %s", bounds.Right().Inequality())
	}
	if identifier, ok := bounds.Binding().Identifier(); !ok || identifier != "x" {
		t.Fatalf("want the binding x, got %s", bounds.Binding())
	}
}

func TestParseNestedFunctionPattern(t *testing.T) {
	assignment := firstExpression(t, "@apply(@op(_, _), x) = op(x, x)").(*Assignment)

	shape, ok := assignment.Function().Parameters().Head().(*Function)
	if !ok {
		t.Fatal("want a function-shape pattern")
	}
	if shape.Parameters() == nil || shape.Parameters().Len() != 2 {
		t.Fatal("want a two-parameter shape")
	}
}

func TestParseCallChains(t *testing.T) {
	call := firstExpression(t, "f(2)(3, 4)").(*Arithmetic).
		Epsilon().Lhs().Head().Head().Head().Head().(*Call)

	if call.Identifier().Text != "f" {
		t.Fatalf("want f, got %q", call.Identifier().Text)
	}
	if len(call.Arguments()) != 2 {
		t.Fatalf("want 2 argument lists, got %d", len(call.Arguments()))
	}
	if call.Arguments()[1].Len() != 2 {
		t.Fatalf("want 2 arguments in the second list, got %d", call.Arguments()[1].Len())
	}
}

func TestParseBareReference(t *testing.T) {
	call := firstExpression(t, "x").(*Arithmetic).
		Epsilon().Lhs().Head().Head().Head().Head().(*Call)
	if len(call.Arguments()) != 0 {
		t.Fatal("want a bare reference without argument lists")
	}
}

func TestParseBracketedBlock(t *testing.T) {
	assignment := firstExpression(t, "@f(x) = [ @y = x + 1 y * 2 ]").(*Assignment)
	if assignment.Block().Len() != 2 {
		t.Fatalf("want 2 block expressions, got %d", assignment.Block().Len())
	}
}

func TestParseIncomplete(t *testing.T) {
	for _, src := range []string{"(2 +", "@f =", "2 +", "1 <", "@f(x) = [ x", "@f(1 < x"} {
		_, err := Parse(src)
		if !IsIncomplete(err) {
			t.Fatalf("want an incomplete error, got %v\nsrc:\n%s", err, src)
		}
	}
}

func TestParseNoMatch(t *testing.T) {
	for _, src := range []string{"2 + )", "@f(,) = 1", "@3 = 1", "* 2"} {
		_, err := Parse(src)

		var syntactical *SyntacticalError
		if !errors.As(err, &syntactical) {
			t.Fatalf("want a syntax error, got %v\nsrc:\n%s", err, src)
		}
		if syntactical.Kind() != NoMatch {
			t.Fatalf("want NoMatch, got %v\nsrc:\n%s", syntactical.Kind(), src)
		}
	}
}

func TestParseSurfacesLexicalErrors(t *testing.T) {
	_, err := Parse("2 + \x01\x02")

	var lexical *LexicalError
	if !errors.As(err, &lexical) {
		t.Fatalf("want a lexical error, got %v", err)
	}
}
