package tortuga

import (
	"strings"
	"testing"
)

func TestIsIncomplete(t *testing.T) {
	if IsIncomplete(nil) {
		t.Fatal("nil is not incomplete")
	}
	if IsIncomplete(ErrEndOfInput) {
		t.Fatal("the scanner sentinel is not a syntax error")
	}
	if !IsIncomplete(NewIncompleteError("a number")) {
		t.Fatal("want an incomplete error to report true")
	}
	if IsIncomplete(NewNoMatchError("a number", Token{})) {
		t.Fatal("a no-match error is not incomplete")
	}
}

func TestWrapSyntaxErrorWithSource(t *testing.T) {
	src := "@f(x) =\n(2 + ]\nf(1)"

	_, err := Parse(src)
	if err == nil {
		t.Fatal("want a parse error")
	}

	rendered := WrapErrorWithSource(err, src).Error()
	if !strings.Contains(rendered, "SYNTAX ERROR at 2:6") {
		t.Fatalf("want the header to carry the location, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "2 | (2 + ]") {
		t.Fatalf("want the offending line, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "|      ^") {
		t.Fatalf("want the caret under the offending column, got:\n%s", rendered)
	}
}

func TestWrapLexicalErrorWithSource(t *testing.T) {
	src := "2 + \x01"

	_, err := Parse(src)
	rendered := WrapErrorWithSource(err, src).Error()
	if !strings.Contains(rendered, "LEXICAL ERROR at 1:5") {
		t.Fatalf("want a lexical header, got:\n%s", rendered)
	}
}

func TestWrapIncompleteErrorHasNoLocation(t *testing.T) {
	src := "(2 +"

	_, err := Parse(src)
	rendered := WrapErrorWithSource(err, src).Error()
	if !strings.HasPrefix(rendered, "SYNTAX ERROR: ") {
		t.Fatalf("want a plain header, got:\n%s", rendered)
	}
}

func TestWrapRuntimeError(t *testing.T) {
	src := "1 / 0"

	_, err := NewInterpreter().BuildThenRun(src)
	rendered := WrapErrorWithSource(err, src).Error()
	if !strings.HasPrefix(rendered, "RUNTIME ERROR: ") {
		t.Fatalf("want a runtime header, got:\n%s", rendered)
	}
}

func TestWrapUnrelatedErrorsPassThrough(t *testing.T) {
	if got := WrapErrorWithSource(ErrEndOfInput, ""); got != ErrEndOfInput {
		t.Fatalf("want the error unchanged, got %v", got)
	}
}
