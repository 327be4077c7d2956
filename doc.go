/*
Package gpoint renders floating-point numbers exactly as C's printf
does with the %g conversion, without calling into a platform C runtime.
It is intended for programs that must match C output character for
character, such as test oracles, golden files, and ports of C tools.

# Features

  - Bit-for-bit compatibility with printf's %g, including field width,
    zero padding, sign control, left justification, and the alternate form
  - Immutable values, ensuring safe usage across multiple goroutines
  - No cgo and no dependency on the host's C library
  - Conversion to and from the [decimal] package's Decimal type

# Representation

A Float wraps a single float64. 32-bit values are widened to 64 bits
before formatting, matching C's default argument promotion, so a
float32 renders the way C would render it after promotion.

# Formatting

The %g conversion is a decision procedure, not a plain number-to-string
routine. A value is first rounded to the requested number of
significant digits (six by default). If the decimal exponent of the
rounded value is less than -4 or not less than the precision, the value
is rendered in scientific notation with a two-or-more digit signed
exponent; otherwise it is rendered in fixed notation. Trailing
fractional zeros, and a then-dangling decimal point, are trimmed unless
the alternate form is requested. The exponent is determined after
rounding, because rounding can carry into a new leading digit and
change the chosen notation.

Special values render as the fixed literals "nan", "inf", and "-inf".
They honor the sign and width directives but are never zero-padded.

Formatting is available through the [fmt.Formatter] interface on Float,
through [Float.Text], and through [Render], which writes the whole
token to an [io.Writer] with a single write.

# Errors

Formatting is total: every float64 has a well-defined %g rendering for
every directive combination. The only failure mode is a bounded-buffer
overflow, reported when a width or precision request would compose a
token longer than 200 bytes. A failed call writes nothing; no partial
token is ever emitted. Conversions to and from Decimal return errors
for values a decimal cannot represent.

[fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
[io.Writer]: https://pkg.go.dev/io#Writer
[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package gpoint
