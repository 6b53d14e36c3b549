package tortuga

import "testing"

// Every value shape satisfies the Value interface.
var (
	_ Value = Number{}
	_ Value = Boolean(true)
	_ Value = FunctionReference{}
)

func TestBooleanStrings(t *testing.T) {
	if got := Boolean(true).String(); got != "true" {
		t.Fatalf("want true, got %q", got)
	}
	if got := Boolean(false).String(); got != "false" {
		t.Fatalf("want false, got %q", got)
	}
}

func TestFunctionReferenceStrings(t *testing.T) {
	value := evalValue(t, "@f(x) = x f")

	reference, ok := value.(FunctionReference)
	if !ok {
		t.Fatalf("want a function reference, got %s", value)
	}
	if got := reference.String(); got != "<function f>" {
		t.Fatalf("want <function f>, got %q", got)
	}

	anonymous := evalValue(t, "_(x) = x").(FunctionReference)
	if got := anonymous.String(); got != "<function _>" {
		t.Fatalf("want <function _>, got %q", got)
	}
}
