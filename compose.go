package streamout

// composeNumeric is the single padding/prefix/precision engine shared by
// every conversion kind (integer, string/char, and pre-rendered float
// bodies), grounded on streamout.c's shared case_number/case_string tail:
// the same "if the field isn't left-aligned, fold the zero-pad width
// into the precision" trick applies whether the body came from digit
// generation, a string copy, or streamout_double's rendering.
//
// sign is "", "-", "+", or " " (already resolved by the caller). prefix
// is an alternate-form prefix ("0x"/"0X") that sits between the sign and
// the zero-padding, so "-0x00ff" zero-pads after the "0x", not before it.
// minDigits is the precision-derived minimum digit count; digits shorter
// than that are left-zero-padded. Pass minDigits <= len(digits) (or -1)
// to disable precision zero-padding, as for strings and pre-rendered
// float bodies that already carry their own precision handling.
func composeNumeric[U Unit](sink Sink[U], spec *ConvSpec, sign, prefix, digits string, minDigits int) (int, PutResult) {
	precisionZeros := 0
	if minDigits > len(digits) {
		precisionZeros = minDigits - len(digits)
	}

	bodyLen := len(sign) + len(prefix) + precisionZeros + len(digits)
	width := 0
	if spec.HasWidth {
		width = spec.Width
	}
	pad := width - bodyLen
	if pad < 0 {
		pad = 0
	}

	leftSpacePad, rightSpacePad, fieldZeros := 0, 0, 0
	switch {
	case spec.leftAlign():
		rightSpacePad = pad
	case spec.padZero() && minDigits < 0:
		// Zero-fill applies only to conversions without an explicit
		// precision; streamout.c clears FLAG_PAD_ZERO once a precision
		// is present for integer/string conversions.
		fieldZeros = pad
	default:
		leftSpacePad = pad
	}

	n := 0
	putN := func(b byte, count int) PutResult {
		for i := 0; i < count; i++ {
			if r := sink.Put(widenByte[U](b)); r != PutOK {
				return r
			}
			n++
		}
		return PutOK
	}
	putStr := func(s string) PutResult {
		units := widen[U](s)
		for _, u := range units {
			if r := sink.Put(u); r != PutOK {
				return r
			}
			n++
		}
		return PutOK
	}

	if r := putN(' ', leftSpacePad); r != PutOK {
		return n, r
	}
	if r := putStr(sign); r != PutOK {
		return n, r
	}
	if r := putStr(prefix); r != PutOK {
		return n, r
	}
	if r := putN('0', fieldZeros); r != PutOK {
		return n, r
	}
	if r := putN('0', precisionZeros); r != PutOK {
		return n, r
	}
	if r := putStr(digits); r != PutOK {
		return n, r
	}
	if r := putN(' ', rightSpacePad); r != PutOK {
		return n, r
	}
	return n, PutOK
}

// putString writes s to sink via widen, so plain-ASCII bodies (signs,
// digit strings, prefixes) and arbitrary-text bodies (%s/%c content) are
// both handled correctly for either engine width. It returns the number
// of code units successfully written alongside the Sink's result.
func putString[U Unit](sink Sink[U], s string) (int, PutResult) {
	n := 0
	for _, u := range widen[U](s) {
		if r := sink.Put(u); r != PutOK {
			return n, r
		}
		n++
	}
	return n, PutOK
}
