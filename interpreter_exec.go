// interpreter_exec.go — tree-walking evaluation.
//
// Each syntax node evaluates by structural recursion over the grammar. The
// operator chains fold left to right; a non-Number operand reaching an
// arithmetic operator is a TypeMismatch carrying the operator's spelling.
//
// Calls dispatch over a clause group: clauses are tried in definition order,
// a clause is eligible when its arity equals the argument count and every
// parameter pattern accepts its argument, and the first eligible clause wins.
// Pattern constraints are evaluated in the clause's fresh scope with all
// parameter names already bound, so a constraint may refer to a sibling
// argument.
package tortuga

import "fmt"

func (i *Interpreter) runProgram(program Program, env *Environment) (Value, error) {
	switch p := program.(type) {
	case *Expressions:
		value, err := i.evalExpression(p.Head(), env)
		if err != nil {
			return nil, err
		}
		for _, expression := range p.Tail() {
			value, err = i.evalExpression(expression, env)
			if err != nil {
				return nil, err
			}
		}
		return value, nil
	case *Comparisons:
		return i.evalComparisons(p, env)
	default:
		panic(fmt.Sprintf("unhandled program node %T", program))
	}
}

// evalComparisons folds a comparison chain left to right. Each link compares
// the previous right-hand side against the next one; the chain short-circuits
// to false without evaluating the expressions after the failing link.
func (i *Interpreter) evalComparisons(program *Comparisons, env *Environment) (Value, error) {
	previous, err := i.evalNumber(program.Lhs(), env, program.Comparisons().Head().Comparator().String())
	if err != nil {
		return nil, err
	}

	chain := program.Comparisons()
	comparisons := append([]Comparison{chain.Head()}, chain.Tail()...)
	for _, comparison := range comparisons {
		rhs, err := i.evalNumber(comparison.Rhs(), env, comparison.Comparator().String())
		if err != nil {
			return nil, err
		}
		if !previous.Compare(comparison.Comparator(), rhs) {
			return Boolean(false), nil
		}
		previous = rhs
	}

	return Boolean(true), nil
}

func (i *Interpreter) evalExpression(expression Expression, env *Environment) (Value, error) {
	switch e := expression.(type) {
	case *Assignment:
		return i.evalAssignment(e, env)
	case *Arithmetic:
		return i.evalEpsilon(e.Epsilon(), env)
	default:
		panic(fmt.Sprintf("unhandled expression node %T", expression))
	}
}

// evalAssignment defines either a function clause or a value binding. A
// signature with parameters becomes a clause closing over the current scope
// and yields the group's reference; without parameters the block is evaluated
// immediately and its value bound (anonymous value bindings bind nothing).
func (i *Interpreter) evalAssignment(assignment *Assignment, env *Environment) (Value, error) {
	function := assignment.Function()

	if function.Parameters() != nil {
		return env.DefineFunction(function.Name(), function.Parameters(), assignment.Block(), env), nil
	}

	value, err := i.evalBlock(assignment.Block(), env.Child())
	if err != nil {
		return nil, err
	}
	if identifier, ok := function.Name().Identifier(); ok {
		env.DefineValue(identifier, value)
	}
	return value, nil
}

// evalBlock evaluates the expressions in order and returns the last value.
func (i *Interpreter) evalBlock(block Block, env *Environment) (Value, error) {
	value, err := i.evalExpression(block.Head(), env)
	if err != nil {
		return nil, err
	}
	for _, expression := range block.Tail() {
		value, err = i.evalExpression(expression, env)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

func (i *Interpreter) evalEpsilon(epsilon Epsilon, env *Environment) (Value, error) {
	value, err := i.evalModulo(epsilon.Lhs(), env)
	if err != nil || epsilon.Rhs() == nil {
		return value, err
	}

	number, ok := value.(Number)
	if !ok {
		return nil, NewRuntimeError(TypeMismatch, "~")
	}

	tolerance, err := i.evalModulo(*epsilon.Rhs(), env)
	if err != nil {
		return nil, err
	}
	t, ok := tolerance.(Number)
	if !ok {
		return nil, NewRuntimeError(TypeMismatch, "~")
	}

	return number.Epsilon(t), nil
}

func (i *Interpreter) evalModulo(modulo Modulo, env *Environment) (Value, error) {
	value, err := i.evalSum(modulo.Head(), env)
	if err != nil {
		return nil, err
	}

	for _, sum := range modulo.Tail() {
		lhs, ok := value.(Number)
		if !ok {
			return nil, NewRuntimeError(TypeMismatch, "%")
		}
		operand, err := i.evalSum(sum, env)
		if err != nil {
			return nil, err
		}
		rhs, ok := operand.(Number)
		if !ok {
			return nil, NewRuntimeError(TypeMismatch, "%")
		}
		value, err = lhs.Modulo(rhs)
		if err != nil {
			return nil, err
		}
	}

	return value, nil
}

func (i *Interpreter) evalSum(sum Sum, env *Environment) (Value, error) {
	value, err := i.evalProduct(sum.Head(), env)
	if err != nil {
		return nil, err
	}

	for _, step := range sum.Tail() {
		lhs, ok := value.(Number)
		if !ok {
			return nil, NewRuntimeError(TypeMismatch, step.Operator().String())
		}
		operand, err := i.evalProduct(step.Rhs(), env)
		if err != nil {
			return nil, err
		}
		rhs, ok := operand.(Number)
		if !ok {
			return nil, NewRuntimeError(TypeMismatch, step.Operator().String())
		}

		if step.Operator() == Add {
			value = lhs.Add(rhs)
		} else {
			value = lhs.Subtract(rhs)
		}
	}

	return value, nil
}

func (i *Interpreter) evalProduct(product Product, env *Environment) (Value, error) {
	value, err := i.evalPower(product.Head(), env)
	if err != nil {
		return nil, err
	}

	for _, step := range product.Tail() {
		lhs, ok := value.(Number)
		if !ok {
			return nil, NewRuntimeError(TypeMismatch, step.Operator().String())
		}
		operand, err := i.evalPower(step.Rhs(), env)
		if err != nil {
			return nil, err
		}
		rhs, ok := operand.(Number)
		if !ok {
			return nil, NewRuntimeError(TypeMismatch, step.Operator().String())
		}

		if step.Operator() == Multiply {
			value = lhs.Multiply(rhs)
		} else {
			value, err = lhs.Divide(rhs)
			if err != nil {
				return nil, err
			}
		}
	}

	return value, nil
}

func (i *Interpreter) evalPower(power Power, env *Environment) (Value, error) {
	value, err := i.evalPrimary(power.Head(), env)
	if err != nil {
		return nil, err
	}

	for _, primary := range power.Tail() {
		lhs, ok := value.(Number)
		if !ok {
			return nil, NewRuntimeError(TypeMismatch, "^")
		}
		operand, err := i.evalPrimary(primary, env)
		if err != nil {
			return nil, err
		}
		rhs, ok := operand.(Number)
		if !ok {
			return nil, NewRuntimeError(TypeMismatch, "^")
		}
		value = lhs.Power(rhs)
	}

	return value, nil
}

func (i *Interpreter) evalPrimary(primary Primary, env *Environment) (Value, error) {
	switch p := primary.(type) {
	case *NumberLiteral:
		number, err := ParseNumber(p.Number().Text)
		if err != nil {
			return nil, err
		}
		if p.IsNegative() {
			number = number.Negate()
		}
		return number, nil
	case *Grouping:
		return i.evalExpression(p.Inner(), env)
	case *Call:
		return i.evalCall(p, env)
	default:
		panic(fmt.Sprintf("unhandled primary node %T", primary))
	}
}

// evalCall resolves the identifier and applies each argument list in turn to
// the value produced so far. With no argument lists it is a bare reference.
func (i *Interpreter) evalCall(call *Call, env *Environment) (Value, error) {
	value, ok := env.Value(call.Identifier().Text)
	if !ok {
		return nil, NewRuntimeError(UndefinedName, call.Identifier().Text)
	}

	for _, list := range call.Arguments() {
		reference, isFunction := value.(FunctionReference)
		if !isFunction {
			return nil, NewRuntimeError(TypeMismatch, call.Identifier().Text)
		}

		arguments, err := i.evalArguments(list, env)
		if err != nil {
			return nil, err
		}

		value, err = i.dispatch(reference, arguments, env)
		if err != nil {
			return nil, err
		}
	}

	return value, nil
}

func (i *Interpreter) evalArguments(list Arguments, env *Environment) ([]Value, error) {
	expressions := append([]Expression{list.Head()}, list.Tail()...)
	arguments := make([]Value, 0, len(expressions))

	for _, expression := range expressions {
		value, err := i.evalExpression(expression, env)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, value)
	}

	return arguments, nil
}

// dispatch selects the first clause whose arity and patterns accept the
// arguments, then evaluates its body in a fresh scope on the clause's
// closure.
func (i *Interpreter) dispatch(reference FunctionReference, arguments []Value, env *Environment) (Value, error) {
	group := env.group(reference)

	for _, c := range group.clauses {
		if c.parameters.Len() != len(arguments) {
			continue
		}

		scope := c.closure.Child()
		matched, err := i.matchClause(c, arguments, scope)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}

		return i.evalBlock(c.block, scope)
	}

	return nil, NewRuntimeError(NoMatchingDefinition, group.name.String())
}

// matchClause binds every parameter name first, then tests the patterns, so
// a pattern's constraint can refer to any sibling argument by name.
func (i *Interpreter) matchClause(c clause, arguments []Value, scope *Environment) (bool, error) {
	patterns := append([]Pattern{c.parameters.Head()}, c.parameters.Tail()...)

	for index, pattern := range patterns {
		if identifier, ok := pattern.Binding().Identifier(); ok {
			scope.DefineValue(identifier, arguments[index])
		}
	}

	for index, pattern := range patterns {
		matched, err := i.matchPattern(pattern, arguments[index], scope)
		if err != nil || !matched {
			return false, err
		}
	}

	return true, nil
}

func (i *Interpreter) matchPattern(pattern Pattern, argument Value, scope *Environment) (bool, error) {
	switch p := pattern.(type) {
	case *Function:
		// A bare name matches anything; a parenthesized shape requires a
		// function whose group has a clause of the same arity.
		if p.Parameters() == nil {
			return true, nil
		}
		reference, ok := argument.(FunctionReference)
		if !ok {
			return false, nil
		}
		for _, c := range scope.group(reference).clauses {
			if c.parameters.Len() == p.Parameters().Len() {
				return true, nil
			}
		}
		return false, nil
	case *Refinement:
		number, ok := argument.(Number)
		if !ok {
			return false, nil
		}
		constraint, err := i.evalNumber(p.Constraint(), scope, p.Comparator().String())
		if err != nil {
			return false, err
		}
		return number.Compare(p.Comparator(), constraint), nil
	case *Bounds:
		number, ok := argument.(Number)
		if !ok {
			return false, nil
		}
		left, err := i.evalNumber(p.Left().Constraint(), scope, p.Left().Inequality().String())
		if err != nil {
			return false, err
		}
		if !left.Compare(p.Left().Inequality(), number) {
			return false, nil
		}
		right, err := i.evalNumber(p.Right().Constraint(), scope, p.Right().Inequality().String())
		if err != nil {
			return false, err
		}
		return number.Compare(p.Right().Inequality(), right), nil
	default:
		panic(fmt.Sprintf("unhandled pattern node %T", pattern))
	}
}

// evalNumber evaluates an expression that must produce a Number; operator
// names the construct for the TypeMismatch diagnostic otherwise.
func (i *Interpreter) evalNumber(expression Expression, env *Environment, operator string) (Number, error) {
	value, err := i.evalExpression(expression, env)
	if err != nil {
		return Number{}, err
	}

	number, ok := value.(Number)
	if !ok {
		return Number{}, NewRuntimeError(TypeMismatch, operator)
	}
	return number, nil
}
