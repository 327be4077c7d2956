package gpoint

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// Float is an immutable wrapper around a float64 that renders exactly as
// C's printf does with the %g conversion.
type Float struct {
	value float64
}

// New returns a Float wrapping the given value.
func New(value float64) Float {
	return Float{value: value}
}

// New32 returns a Float wrapping the given 32-bit value.
// The value is widened to float64 before formatting, matching C's
// default argument promotion.
func New32(value float32) Float {
	return Float{value: float64(value)}
}

// NewFromDecimal converts a decimal to a (possibly rounded) Float.
// See also method [Float.Decimal].
func NewFromDecimal(d decimal.Decimal) (Float, error) {
	f, ok := d.Float64()
	if !ok {
		return Float{}, fmt.Errorf("converting decimal: %v", d)
	}
	return Float{value: f}, nil
}

// Float64 returns the underlying value.
func (f Float) Float64() float64 {
	return f.value
}

// Decimal converts the Float to an exact decimal.
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if:
//   - the value is NaN or Infinity;
//   - the value does not fit [decimal.MaxPrec] digits.
func (f Float) Decimal() (decimal.Decimal, error) {
	if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
		return decimal.Decimal{}, fmt.Errorf("converting float: special value %v", f)
	}
	s := strconv.FormatFloat(f.value, 'f', -1, 64)
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting float: %w", err)
	}
	return d, nil
}

// IsNaN reports whether the value is a "not-a-number".
func (f Float) IsNaN() bool {
	return math.IsNaN(f.value)
}

// IsInf reports whether the value is positive or negative infinity.
func (f Float) IsInf() bool {
	return math.IsInf(f.value, 0)
}

// IsZero reports whether the value is positive or negative zero.
func (f Float) IsZero() bool {
	return f.value == 0
}

// IsNeg reports whether the value is less than zero.
func (f Float) IsNeg() bool {
	return f.value < 0
}

// IsPos reports whether the value is greater than zero.
func (f Float) IsPos() bool {
	return f.value > 0
}

// String implements the [fmt.Stringer] interface and renders the value
// with default directives, like C's printf("%g").
// See also method [Float.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Float) String() string {
	text, err := render(f.value, Directives{}, false)
	if err != nil {
		return "" // unreachable without a width
	}
	return string(text)
}

// Text renders the value according to the given directives.
//
// Text returns an error if the composed token, including padding,
// would exceed 200 bytes.
func (f Float) Text(d Directives) (string, error) {
	text, err := render(f.value, d, false)
	if err != nil {
		return "", fmt.Errorf("formatting %g: %w", f.value, err)
	}
	return string(text), nil
}

// Render writes the %g rendering of value to w.
// The whole token is written with a single Write call; when an error
// occurs nothing is written.
//
// Render returns an error if the composed token, including padding,
// would exceed 200 bytes, or if the write fails.
func Render(w io.Writer, value float64, d Directives) error {
	text, err := render(value, d, false)
	if err != nil {
		return fmt.Errorf("formatting %g: %w", value, err)
	}
	if _, err = w.Write(text); err != nil {
		return fmt.Errorf("writing formatted value: %w", err)
	}
	return nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example   | Description   |
//	| ------ | --------- | ------------- |
//	| %v, %s | 1.01235   | Number        |
//	| %g     | 1.01235   | Number        |
//	| %q     | "1.01235" | Quoted number |
//
// The '-', '+', ' ', '0', and '#' format flags can be used with all
// verbs and carry their printf %g meaning: '-' left-justifies, '+' and
// ' ' force a sign character, '0' pads with zeros after the sign, and
// '#' keeps the trailing zeros and the decimal point.
//
// Width sets the minimum length of the output, precision the number of
// significant digits. A zero precision is read as one significant
// digit; the default is [DefaultPrec]. Renderings longer than 200
// bytes are suppressed entirely.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Float) Format(state fmt.State, verb rune) {
	d := Directives{
		ZeroPad:   state.Flag('0'),
		LeftAlign: state.Flag('-'),
		PlusSign:  state.Flag('+'),
		SpaceSign: state.Flag(' '),
		AltForm:   state.Flag('#'),
	}
	if w, ok := state.Width(); ok {
		d.Width = w
	}
	if p, ok := state.Precision(); ok {
		d.Prec = p
		if d.Prec == 0 {
			d.Prec = 1 // %.0g behaves as %.1g
		}
	}

	text, err := render(f.value, d, verb == 'q')
	if err != nil {
		return
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'g', 's', 'v', 'q':
		state.Write(text)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(gpoint.Float="))
		state.Write([]byte(f.String()))
		state.Write([]byte(")"))
	}
}
