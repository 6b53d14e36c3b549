package tortuga

import "testing"

func TestParseNumberLexemes(t *testing.T) {
	cases := map[string]float64{
		"42":   42,
		"3.14": 3.14,
		".5":   0.5,
		"5.":   5,
		"0":    0,
	}

	for text, want := range cases {
		number, err := ParseNumber(text)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if number.Float() != want {
			t.Fatalf("%q: want %v, got %v", text, want, number.Float())
		}
	}
}

func TestEpsilonTakesTheToleranceMagnitude(t *testing.T) {
	number := NewNumber(2).Epsilon(NewNumber(-0.5))
	if number.Tolerance() != 0.5 {
		t.Fatalf("want 0.5, got %v", number.Tolerance())
	}
}

func TestCompareWithinTolerance(t *testing.T) {
	a := NewNumber(1).Epsilon(NewNumber(0.1))
	b := NewNumber(1.05)

	if !a.Compare(EqualTo, b) {
		t.Fatal("want 1±0.1 = 1.05")
	}
	if a.Compare(NotEqualTo, b) {
		t.Fatal("want 1±0.1 <> 1.05 to fail")
	}
	if a.Compare(LessThan, b) {
		t.Fatal("a strict order must exceed the tolerance")
	}
	if !a.Compare(LessThanOrEqualTo, b) {
		t.Fatal("a non-strict order holds within the tolerance")
	}
}

func TestCompareCombinesBothTolerances(t *testing.T) {
	a := NewNumber(1).Epsilon(NewNumber(0.1))
	b := NewNumber(1.15).Epsilon(NewNumber(0.1))

	if !a.Compare(EqualTo, b) {
		t.Fatal("want the tolerances to combine")
	}
	if a.Compare(EqualTo, NewNumber(1.15)) {
		t.Fatal("want a single tolerance to be too narrow")
	}
}

func TestPowerHalfExponents(t *testing.T) {
	// The square-root shortcut in math.Pow lands one ULP below the general
	// path here; the contract is the general path's value.
	if got := NewNumber(41).Power(NewNumber(0.5)).Float(); got != 6.403124237432849 {
		t.Fatalf("want 6.403124237432849, got %v", got)
	}
	if got := NewNumber(41).Power(NewNumber(-0.5)).Float(); got != 1/6.403124237432849 {
		t.Fatalf("want the reciprocal of 41^0.5, got %v", got)
	}
	if got := NewNumber(4).Power(NewNumber(0.5)).Float(); got != 2 {
		t.Fatalf("want 2, got %v", got)
	}
	if got := NewNumber(2).Power(NewNumber(10)).Float(); got != 1024 {
		t.Fatalf("want 1024, got %v", got)
	}
	if got := NewNumber(2).Power(NewNumber(-1)).Float(); got != 0.5 {
		t.Fatalf("want 0.5, got %v", got)
	}
}

func TestNumberStrings(t *testing.T) {
	if got := NewNumber(2.5).String(); got != "2.5" {
		t.Fatalf("want 2.5, got %q", got)
	}
	if got := NewNumber(2).Epsilon(NewNumber(0.5)).String(); got != "2~0.5" {
		t.Fatalf("want 2~0.5, got %q", got)
	}
}
