// environment.go — lexically scoped bindings and function clause groups.
//
// An Environment is a chain of scopes. Name lookup walks from the innermost
// scope outward; definitions always land in the innermost scope, so an inner
// definition shadows an outer one without mutating it.
//
// Function clauses live outside the scope chain in a group arena owned by the
// root environment. A FunctionReference value indexes into that arena, which
// keeps clause groups shared: defining another clause for a name adds to the
// group every holder of the reference already sees.
package tortuga

// Environment is one scope in a lexical chain.
type Environment struct {
	parent *Environment
	values map[string]Value
	groups []*functionGroup // populated only on the root
}

// functionGroup is an ordered list of clauses defined under one name.
// Dispatch tries clauses in definition order and the first match wins.
type functionGroup struct {
	name    Name
	clauses []clause
}

// clause is a single function definition: its parameter patterns, its body,
// and the environment it closed over at definition time.
type clause struct {
	parameters *Parameters
	block      Block
	closure    *Environment
}

// NewEnvironment creates an empty root environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Child creates a scope nested inside e.
func (e *Environment) Child() *Environment {
	return &Environment{parent: e, values: make(map[string]Value)}
}

func (e *Environment) root() *Environment {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Value resolves a name, walking from the innermost scope outward.
func (e *Environment) Value(name string) (Value, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if value, ok := scope.values[name]; ok {
			return value, true
		}
	}
	return nil, false
}

// DefineValue binds a name in the innermost scope, shadowing any outer
// binding and replacing a previous one in the same scope.
func (e *Environment) DefineValue(name string, value Value) {
	e.values[name] = value
}

// DefineFunction adds a function clause. When the name already resolves to a
// function reference the clause joins the existing group; otherwise a new
// group is created and, for identified names, bound in the innermost scope.
// Anonymous definitions always create a fresh unbound group.
func (e *Environment) DefineFunction(name Name, parameters *Parameters, block Block, closure *Environment) FunctionReference {
	c := clause{parameters: parameters, block: block, closure: closure}

	if identifier, ok := name.Identifier(); ok {
		if existing, found := e.Value(identifier); found {
			if reference, isFunction := existing.(FunctionReference); isFunction {
				group := e.group(reference)
				group.clauses = append(group.clauses, c)
				return reference
			}
		}

		reference := e.addGroup(name, c)
		e.values[identifier] = reference
		return reference
	}

	return e.addGroup(name, c)
}

func (e *Environment) addGroup(name Name, c clause) FunctionReference {
	r := e.root()
	r.groups = append(r.groups, &functionGroup{name: name, clauses: []clause{c}})
	return FunctionReference{name: name, index: len(r.groups) - 1}
}

func (e *Environment) group(reference FunctionReference) *functionGroup {
	return e.root().groups[reference.index]
}
