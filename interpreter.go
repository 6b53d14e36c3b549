// interpreter.go — the public evaluation API.
//
// An Interpreter owns a persistent root environment, so definitions made by
// one Run survive into the next. That is what a REPL needs: each submitted
// line is parsed and run against the same interpreter. Evaluation itself
// lives in interpreter_exec.go.
package tortuga

// Interpreter evaluates programs against a persistent environment.
type Interpreter struct {
	environment *Environment
}

// NewInterpreter creates an interpreter with an empty environment.
func NewInterpreter() *Interpreter {
	return &Interpreter{environment: NewEnvironment()}
}

// Run evaluates a parsed program. The result is the value of the last
// expression, or the Boolean outcome of a comparison chain.
func (i *Interpreter) Run(program Program) (Value, error) {
	return i.runProgram(program, i.environment)
}

// BuildThenRun parses and evaluates source in one step.
func (i *Interpreter) BuildThenRun(source string) (Value, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return i.Run(program)
}
