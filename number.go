// number.go — the numeric value algebra.
//
// Every Number carries a tolerance alongside its value. Plain literals have a
// tolerance of zero; "a ~ t" produces a copy of a whose tolerance is |t|.
// Comparisons honor the combined tolerance of both operands: two numbers are
// equal when they differ by no more than the sum of their tolerances, and a
// strict order holds only when the difference exceeds it. Addition and
// subtraction accumulate tolerances; the remaining operators discard them, as
// scaling a tolerance has no single defensible meaning.
package tortuga

import (
	"math"
	"strconv"
)

// Number is an immutable floating point quantity with a comparison tolerance.
type Number struct {
	value     float64
	tolerance float64
}

// NewNumber creates a number with a zero tolerance.
func NewNumber(value float64) Number {
	return Number{value: value}
}

// ParseNumber converts a scanned numeric lexeme into a Number.
func ParseNumber(text string) (Number, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Number{}, err
	}
	return Number{value: value}, nil
}

// Float returns the numeric value.
func (n Number) Float() float64 { return n.value }

// Tolerance returns the comparison tolerance; zero unless set with Epsilon.
func (n Number) Tolerance() float64 { return n.tolerance }

// Negate flips the sign; the tolerance is unchanged.
func (n Number) Negate() Number {
	return Number{value: -n.value, tolerance: n.tolerance}
}

// Epsilon returns n with its tolerance replaced by |t|.
func (n Number) Epsilon(t Number) Number {
	return Number{value: n.value, tolerance: math.Abs(t.value)}
}

// Add sums the values and the tolerances.
func (n Number) Add(o Number) Number {
	return Number{value: n.value + o.value, tolerance: n.tolerance + o.tolerance}
}

// Subtract subtracts the values; the tolerances still sum, since the
// uncertainty of a difference is as wide as that of a sum.
func (n Number) Subtract(o Number) Number {
	return Number{value: n.value - o.value, tolerance: n.tolerance + o.tolerance}
}

// Multiply multiplies the values and drops the tolerance.
func (n Number) Multiply(o Number) Number {
	return Number{value: n.value * o.value}
}

// Divide divides the values; a zero divisor is a runtime error.
func (n Number) Divide(o Number) (Number, error) {
	if o.value == 0 {
		return Number{}, NewRuntimeError(DivideByZero, "/")
	}
	return Number{value: n.value / o.value}, nil
}

// Modulo takes the remainder with the sign of the dividend; a zero divisor is
// a runtime error.
func (n Number) Modulo(o Number) (Number, error) {
	if o.value == 0 {
		return Number{}, NewRuntimeError(DivideByZero, "%")
	}
	return Number{value: math.Mod(n.value, o.value)}, nil
}

// Power raises n to o and drops the tolerance.
func (n Number) Power(o Number) Number {
	return Number{value: power(n.value, o.value)}
}

// power computes x^y. math.Pow shortcuts x^±0.5 to a square root, which can
// differ in the last ULP from the general exponential path; the half
// exponents go through the general path so 41^0.5 is 6.403124237432849.
func power(x, y float64) float64 {
	switch y {
	case 0.5:
		return math.Exp(0.5 * math.Log(x))
	case -0.5:
		return 1 / math.Exp(0.5*math.Log(x))
	}
	return math.Pow(x, y)
}

// Compare tests the relation between n and o under their combined tolerance.
// Equality holds within the tolerance; a strict order requires the difference
// to exceed it, and the non-strict orders are the union of the two.
func (n Number) Compare(comparator Comparator, o Number) bool {
	difference := n.value - o.value
	tolerance := n.tolerance + o.tolerance

	switch comparator {
	case EqualTo:
		return math.Abs(difference) <= tolerance
	case NotEqualTo:
		return math.Abs(difference) > tolerance
	case LessThan:
		return difference < 0 && -difference > tolerance
	case LessThanOrEqualTo:
		return difference < 0 || math.Abs(difference) <= tolerance
	case GreaterThan:
		return difference > 0 && difference > tolerance
	case GreaterThanOrEqualTo:
		return difference > 0 || math.Abs(difference) <= tolerance
	default:
		return false
	}
}

func (n Number) String() string {
	text := strconv.FormatFloat(n.value, 'g', -1, 64)
	if n.tolerance != 0 {
		text += "~" + strconv.FormatFloat(n.tolerance, 'g', -1, 64)
	}
	return text
}
