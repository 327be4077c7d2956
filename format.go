package gpoint

import (
	"bytes"
	"errors"
	"math"
	"strconv"
)

// DefaultPrec is the number of significant digits used when no precision
// is given, matching the default of printf's %g conversion.
const DefaultPrec = 6

const (
	// maxWidth is the maximum length of a single formatted token,
	// matching the 200-byte conversion buffer of classic printf
	// wrappers. Longer renderings fail instead of growing the buffer.
	maxWidth = 200

	// maxDigits is the longest exact decimal mantissa of a float64.
	// Digits requested beyond it are always zeros.
	maxDigits = 767
)

var (
	errFormatOverflow = errors.New("formatted output overflow")
	errDigitEncoding  = errors.New("malformed digit string")
)

// Directives describes a single %g formatting request.
// The zero value renders like plain "%g".
type Directives struct {
	// Width is the minimum length of the formatted token.
	// A non-positive width imposes no minimum.
	Width int

	// Prec is the number of significant digits.
	// A non-positive precision means [DefaultPrec].
	// printf reads a zero precision as one significant digit,
	// so request 1 to render "%.0g".
	Prec int

	// ZeroPad pads with '0' instead of ' ' when the token is shorter
	// than Width. The zeros are placed between the sign and the first
	// digit. Ignored for nan and inf and when LeftAlign is set.
	ZeroPad bool

	// LeftAlign places the padding after the token instead of before it.
	LeftAlign bool

	// PlusSign emits a '+' before non-negative values.
	PlusSign bool

	// SpaceSign emits a ' ' before non-negative values.
	// PlusSign takes precedence when both are set.
	SpaceSign bool

	// AltForm keeps the trailing fractional zeros and the decimal
	// point that are otherwise trimmed.
	AltForm bool
}

// mantissa returns the significant decimal digits of |value| rounded to
// prec digits, together with the decimal exponent of the leading digit.
// The exponent is read from the rounded form, as rounding can carry into
// a new leading digit (9.9996 rounded to 3 digits is 10.0), so it cannot
// be derived from a logarithm of the unrounded value.
func mantissa(value float64, prec int) (digs []byte, exp int, err error) {
	if prec > maxDigits {
		// The remaining digits are zeros and cannot affect rounding.
		prec = maxDigits
	}
	buf := strconv.AppendFloat(make([]byte, 0, prec+8), math.Abs(value), 'e', prec-1, 64)
	e := bytes.IndexByte(buf, 'e')
	if e < 0 {
		return nil, 0, errDigitEncoding
	}
	exp, err = strconv.Atoi(string(buf[e+1:]))
	if err != nil {
		return nil, 0, errDigitEncoding
	}
	digs = buf[:1]
	if e > 1 {
		digs = append(digs, buf[2:e]...)
	}
	return digs, exp, nil
}

// render composes the %g rendering of value, including sign, padding,
// and optional quoting. It returns the whole token or an error, never
// a partial result.
//
//gocyclo:ignore
func render(value float64, d Directives, quoted bool) ([]byte, error) {
	// Precision
	prec := d.Prec
	if prec <= 0 {
		prec = DefaultPrec
	}

	// Significant digits and notation
	var digs []byte
	neg := math.Signbit(value)
	exp := 0
	sci, special := false, false
	switch {
	case math.IsNaN(value):
		digs, neg, special = []byte("nan"), false, true
	case math.IsInf(value, 0):
		digs, special = []byte("inf"), true
	default:
		var err error
		digs, exp, err = mantissa(value, prec)
		if err != nil {
			return nil, err
		}
		sci = exp < -4 || exp >= prec
	}

	// Last significant digit, ignoring trailing zeros
	last := len(digs) - 1
	if !special && !d.AltForm {
		for last >= 0 && digs[last] == '0' {
			last--
		}
	}

	// Integer and fractional digits
	intdigs, izeros := 0, 0             // digits and completing zeros before the point
	lzeros, fracdigs, tzeros := 0, 0, 0 // zeros and digits after the point
	switch {
	case special:
		intdigs = len(digs)
	case sci:
		intdigs = 1
		if d.AltForm {
			fracdigs = len(digs) - 1
			tzeros = prec - len(digs)
		} else if last > 0 {
			fracdigs = last
		}
	case exp >= 0:
		intdigs = min(len(digs), exp+1)
		izeros = exp + 1 - intdigs
		if d.AltForm {
			fracdigs = len(digs) - intdigs
			tzeros = prec - 1 - exp - fracdigs
		} else if last >= intdigs {
			fracdigs = last + 1 - intdigs
		}
	default:
		izeros = 1 // leading 0
		lzeros = -exp - 1
		if d.AltForm {
			fracdigs = len(digs)
			tzeros = prec - 1 - exp - lzeros - fracdigs
		} else {
			fracdigs = last + 1
		}
	}

	// Decimal point
	dpoint := 0
	if lzeros+fracdigs+tzeros > 0 || (d.AltForm && !special) {
		dpoint = 1
	}

	// Exponent suffix
	esect := 0
	if sci {
		esect = len("e+00")
		for e := exp; e >= 100 || e <= -100; e /= 10 {
			esect++
		}
	}

	// Arithmetic sign
	rsign := 0
	if neg || d.PlusSign || d.SpaceSign {
		rsign = 1
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if quoted {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + rsign + intdigs + izeros + dpoint + lzeros + fracdigs + tzeros + esect + tquote
	lspaces, fzeros, tspaces := 0, 0, 0
	if d.Width > width {
		switch {
		case d.LeftAlign:
			tspaces = d.Width - width
		case d.ZeroPad && !special:
			fzeros = d.Width - width
		default:
			lspaces = d.Width - width
		}
		width = d.Width
	}
	if width > maxWidth {
		return nil, errFormatOverflow
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for range tspaces {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Exponent suffix
	if sci {
		e, esign := exp, byte('+')
		if e < 0 {
			e, esign = -e, '-'
		}
		for range esect - 2 {
			buf[pos] = byte(e%10) + '0'
			pos--
			e /= 10
		}
		buf[pos] = esign
		pos--
		buf[pos] = 'e'
		pos--
	}

	// Trailing fractional zeros
	for range tzeros {
		buf[pos] = '0'
		pos--
	}

	// Fractional digits
	for i := fracdigs; i > 0; i-- {
		buf[pos] = digs[intdigs+i-1]
		pos--
	}

	// Zeros between the decimal point and the first fractional digit
	for range lzeros {
		buf[pos] = '0'
		pos--
	}

	// Decimal point
	if dpoint > 0 {
		buf[pos] = '.'
		pos--
	}

	// Zeros completing the integer part
	for range izeros {
		buf[pos] = '0'
		pos--
	}

	// Integer digits
	for i := intdigs; i > 0; i-- {
		buf[pos] = digs[i-1]
		pos--
	}

	// Field zeros
	for range fzeros {
		buf[pos] = '0'
		pos--
	}

	// Arithmetic sign
	if rsign > 0 {
		switch {
		case neg:
			buf[pos] = '-'
		case d.PlusSign:
			buf[pos] = '+'
		default:
			buf[pos] = ' '
		}
		pos--
	}

	// Opening quote
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for range lspaces {
		buf[pos] = ' '
		pos--
	}

	return buf, nil
}
