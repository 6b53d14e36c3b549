// value.go — runtime values.
//
// Evaluation produces one of three value shapes: a Number, a Boolean (the
// result of a comparison chain), or a FunctionReference pointing at a group
// of function clauses owned by the environment. Values are immutable.
package tortuga

// Value is the result of evaluating a program or expression.
type Value interface {
	isValue()
	String() string
}

func (Number) isValue() {}

// Boolean is the value of a comparison chain.
type Boolean bool

func (Boolean) isValue() {}

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// FunctionReference identifies a group of function clauses in the
// environment. References are opaque handles: calling one dispatches over the
// group's clauses, and passing one around shares the same group.
type FunctionReference struct {
	name  Name
	index int
}

func (FunctionReference) isValue() {}

// Name returns the name the group was defined under; anonymous for function
// values created without one.
func (f FunctionReference) Name() Name { return f.name }

func (f FunctionReference) String() string {
	return "<function " + f.name.String() + ">"
}
