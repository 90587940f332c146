package streamout

import (
	"math"

	"github.com/tinywasm/streamout/internal/argval"
)

const (
	quietNaNBit  = uint64(1) << 51
	maxDecDigits = 17 // streamout_double's cap on base-10 significant digits
	maxHexDigits = 14 // same cap, base-16 math for %a/%A
)

// nonFiniteMarker is the fractional-digit text streamout_double substitutes
// for NaN/Inf, in place of real digits — the integer part is forced to 1
// for the layout math, matching spec.md §4.4's non-finite rule.
func nonFiniteMarker(bits uint64, isNaN bool) string {
	if !isNaN {
		return "#INF"
	}
	if bits&quietNaNBit != 0 {
		return "#QNAN"
	}
	return "#SNAN"
}

// itoaFixed renders v as exactly width decimal digits, left-padded with
// zeros. v must be non-negative and fit in width digits.
func itoaFixed(v int64, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = digitTable(false)[v%10]
		v /= 10
	}
	return string(buf)
}

// getExponent mirrors streamout.c's get_exponent: floor(log_base(af)), or 0
// for af == 0. af must be non-negative.
func getExponent(af float64, base int) int {
	if af == 0 {
		return 0
	}
	if base == 16 {
		return int(math.Floor(math.Log(af) / math.Log(16)))
	}
	return int(math.Floor(math.Log10(af)))
}

// getDblDigits is streamout.c's get_dbl_digits: it scales af so that exactly
// numDigits significant digits (base 10 or 16) land in an integer, rounds,
// and re-derives exponent if the rounding carried into one extra digit than
// the initial shift accounted for. af must be non-negative and finite;
// exponent is af's pre-computed get_exponent result.
//
// The shift is computed from max(exponent, 0), not exponent itself — for
// af < 1 this deliberately leaves leading zeros in the returned buffer
// rather than shifting the first significant digit to index 0. The caller's
// digits-before-dot/digits-after-dot split (mirroring streamout_double)
// relies on exactly that: the leading zeros become part of the fraction.
func getDblDigits(af float64, base, exponent, numDigits int) (digits []byte, newExponent int) {
	shiftExp := exponent
	if shiftExp < 0 {
		shiftExp = 0
	}
	shift := numDigits - shiftExp - 1
	multiplier := math.Pow(float64(base), float64(shift))
	scaled := math.Round(af * multiplier)

	if getExponent(scaled, base) > numDigits-1 {
		exponent++
		multiplier = math.Pow(float64(base), float64(shift-1))
		scaled = math.Round(af * multiplier)
	}

	intVal := int64(scaled)
	buf := make([]byte, numDigits)
	for i := numDigits - 1; i >= 0; i-- {
		buf[i] = byte(intVal % int64(base))
		intVal /= int64(base)
	}
	return buf, exponent
}

// signOf resolves the sign string for a float conversion (spec.md §4.4
// step order: the sign is emitted before anything else, finite or not).
func signOf(spec *ConvSpec, neg bool) string {
	switch {
	case neg:
		return "-"
	case spec.forceSign():
		return "+"
	case spec.signSpace():
		return " "
	default:
		return ""
	}
}

func effectivePrecision(spec *ConvSpec, def int) int {
	if spec.Precision >= 0 {
		return spec.Precision
	}
	return def
}

// useExpForm decides exponent-vs-plain form the way streamout_double does:
// f/F never use it, e/E/a/A always do, g/G compare the two rendered widths
// (the exponent field is a fixed 5 columns: letter, sign, three digits) and
// take whichever is narrower.
func useExpForm(conv byte, widthNoExp, widthWithExp int) bool {
	switch conv {
	case 'f', 'F':
		return false
	case 'g', 'G':
		return widthWithExp < widthNoExp
	default:
		return true
	}
}

// digitChar maps a raw 0..15 digit value (as stored in getDblDigits's
// buffer) to its printable form in the requested case and base, via the
// same digit table integer.go's hex/octal rendering uses.
func digitChar(v byte, upper bool) byte {
	return digitTable(upper)[v]
}

// expField renders the "eSDDD" exponent tail: a digit-table letter, a sign,
// and exactly three decimal digits — streamout_double's trailing block
// (dig_chars[0xe], then exponent/100, %100/10, %10) always emits three
// digits regardless of magnitude, unlike glibc's two-digit minimum.
func expField(exp int, letter byte) string {
	sign := byte('+')
	abs := exp
	if abs < 0 {
		sign = '-'
		abs = -abs
	}
	return string(letter) + string(sign) + itoaFixed(int64(abs), 3)
}

// renderFloatBody implements spec.md §4.4's streamout_double body: width
// comparison to pick plain-vs-exponent form, digit extraction via
// getDblDigits, and the digits-before-dot/digits-after-dot split, for one
// already-classified operand. For non-finite values the caller passes
// af=1, exponent=0 (matching streamout_double forcing fpval to 1.0), and a
// marker string that stands in for the absent digit buffer.
func renderFloatBody(spec *ConvSpec, af float64, marker string) string {
	conv := spec.Conv
	base := 10
	upper := conv == 'E' || conv == 'F' || conv == 'G' || conv == 'A'
	if conv == 'a' || conv == 'A' {
		base = 16
	}

	precision := effectivePrecision(spec, 6)
	widthDot := 0
	if precision > 0 {
		widthDot = 1
	}

	exponent := getExponent(af, base)
	digitsBeforeDotNoExp := exponent + 1
	if digitsBeforeDotNoExp < 1 {
		digitsBeforeDotNoExp = 1
	}
	digitsNoExp := digitsBeforeDotNoExp + precision
	digitsWithExp := 1 + precision
	widthNoExp := digitsNoExp + widthDot
	widthWithExp := digitsWithExp + widthDot + 5

	useExp := useExpForm(conv, widthNoExp, widthWithExp)

	numDigits := digitsNoExp
	if useExp {
		numDigits = digitsWithExp
	}

	digitCap := maxDecDigits
	if base == 16 {
		digitCap = maxHexDigits
	}
	numRealDigits := numDigits
	if numRealDigits > digitCap {
		numRealDigits = digitCap
	}
	if numRealDigits < 1 {
		numRealDigits = 1
	}

	var buf []byte
	if marker != "" {
		buf = make([]byte, numRealDigits)
		// buf[0] stands for the forced leading "1"; streamout_double
		// still walks this through the same digits-before-dot split.
		buf[0] = 1
		for i := 1; i < numRealDigits; i++ {
			buf[i] = 0
		}
	} else {
		buf, exponent = getDblDigits(af, base, exponent, numRealDigits)
	}

	var out []byte
	realDigitsBeforeDot := 1

	if useExp {
		out = append(out, digitChar(buf[0], upper))
	} else {
		digitsBeforeDot := digitsBeforeDotNoExp
		realDigitsBeforeDot = digitsBeforeDot
		if realDigitsBeforeDot > numRealDigits {
			realDigitsBeforeDot = numRealDigits
		}
		for i := 0; i < realDigitsBeforeDot; i++ {
			out = append(out, digitChar(buf[i], upper))
		}
		for i := 0; i < digitsBeforeDot-realDigitsBeforeDot; i++ {
			out = append(out, '0')
		}
	}

	out = renderFraction(out, spec, precision, marker, buf, realDigitsBeforeDot, numRealDigits)
	return string(out) + exponentSuffix(conv, useExp, exponent)
}

// renderFraction appends the "." plus fraction digits (real digit-buffer
// remainder, or the non-finite marker, zero-padded or truncated to
// precision), matching streamout_double's precision>0 gate: when precision
// is 0 no fraction follows, and the dot appears only if '#' is set.
func renderFraction(out []byte, spec *ConvSpec, precision int, marker string, buf []byte, realDigitsBeforeDot, numRealDigits int) []byte {
	if precision == 0 {
		if spec.alt() {
			out = append(out, '.')
		}
		return out
	}
	out = append(out, '.')
	if marker != "" {
		n := len(marker)
		if n > precision {
			n = precision
		}
		out = append(out, marker[:n]...)
		for i := n; i < precision; i++ {
			out = append(out, '0')
		}
		return out
	}
	upper := spec.Conv == 'E' || spec.Conv == 'F' || spec.Conv == 'G' || spec.Conv == 'A'
	realAfter := 0
	for i := realDigitsBeforeDot; i < numRealDigits; i++ {
		out = append(out, digitChar(buf[i], upper))
		realAfter++
	}
	for i := realAfter; i < precision; i++ {
		out = append(out, '0')
	}
	return out
}

func exponentSuffix(conv byte, useExp bool, exponent int) string {
	if !useExp {
		return ""
	}
	e := byte('e')
	if conv == 'E' || conv == 'G' || conv == 'A' {
		e = 'E'
	}
	return expField(exponent, e)
}

// renderFloat implements spec.md §4.4 end to end: NaN/Inf substitution,
// form selection per conversion letter, and the shared composeNumeric
// tail for field width and padding.
func renderFloat[U Unit](sink Sink[U], spec *ConvSpec, cur *argval.Cursor) (int, PutResult, error) {
	f, err := cur.Float64()
	if err != nil {
		return 0, PutError, err
	}

	bits := math.Float64bits(f)
	neg := bits>>63 != 0
	af := math.Abs(f)
	sign := signOf(spec, neg)

	var body string
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		marker := nonFiniteMarker(bits, math.IsNaN(f))
		body = renderFloatBody(spec, 1, marker)
	default:
		body = renderFloatBody(spec, af, "")
	}

	n, r := composeNumeric[U](sink, spec, sign, "", body, -1)
	return n, r, nil
}
