package streamout

import "github.com/tinywasm/streamout/internal/argval"

// truncateSigned applies the length modifier's width to a pulled int64,
// matching streamout.c's va_arg_f macro picking short/long/int64 out of
// the va_list according to the accumulated FLAG_SHORT/LONG/INT64 bits.
func truncateSigned(v int64, length Length) int64 {
	switch length {
	case LenShort:
		return int64(int16(v))
	case LenLongLong, LenIntPtr, LenSizeT:
		return v
	default:
		return int64(int32(v))
	}
}

// truncateUnsigned is truncateSigned's unsigned counterpart (va_arg_fu).
func truncateUnsigned(v uint64, length Length) uint64 {
	switch length {
	case LenShort:
		return uint64(uint16(v))
	case LenLongLong, LenIntPtr, LenSizeT:
		return v
	default:
		return uint64(uint32(v))
	}
}

// genDigits renders value in base (8, 10, or 16) using the shared digit
// tables, most significant digit first, with no leading zeros beyond a
// bare "0" for a zero value.
func genDigits(value uint64, base int, upper bool) string {
	if value == 0 {
		return "0"
	}
	table := digitTable(upper)
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for value > 0 {
		i--
		buf[i] = table[value%b]
		value /= b
	}
	return string(buf[i:])
}

// intptrHexDigits is the fixed digit count %p renders: streamout.c sets
// precision = 2 * sizeof(void*) before falling into the %X case.
const intptrHexDigits = 16

// renderInteger implements spec.md §4.3: the integer conversion pipeline
// for d/i/u/o/x/X/p, sharing composeNumeric for the field-layout tail.
func renderInteger[U Unit](sink Sink[U], spec *ConvSpec, cur *argval.Cursor) (int, PutResult, error) {
	conv := spec.Conv
	base := 10
	upper := false
	signed := conv == 'd' || conv == 'i'

	// %o's '#' flag borrows a digit from precision to guarantee the "0"
	// prefix actually shows up in the digit count, matching streamout.c's
	// "if (flags & FLAG_SPECIAL) { prefix = "0"; if (precision > 0)
	// precision--; }" — unlike %x/%X, the prefix isn't a separate field.
	if conv == 'o' && spec.alt() && spec.Precision > 0 {
		spec.Precision--
	}

	switch conv {
	case 'o':
		base = 8
	case 'x':
		base = 16
	case 'X':
		base = 16
		upper = true
	case 'p':
		base = 16
		upper = true
	}

	// %p forces fixed-width uppercase hex, clears zero-padding, and uses
	// the full pointer width regardless of any length modifier the
	// caller happened to write — it falls straight into the %X
	// rendering path in streamout.c.
	if conv == 'p' {
		spec.Flags &^= FlagPadZero
		spec.Precision = intptrHexDigits
		spec.Length = LenIntPtr
	}

	var digits string
	var sign string

	if signed {
		raw, err := cur.Int64()
		if err != nil {
			return 0, PutError, err
		}
		v := truncateSigned(raw, spec.Length)
		neg := v < 0
		mag := uint64(v)
		if neg {
			mag = uint64(-v)
		}
		if spec.Precision == 0 && mag == 0 {
			digits = ""
		} else {
			digits = genDigits(mag, base, upper)
		}
		switch {
		case neg:
			sign = "-"
		case spec.forceSign():
			sign = "+"
		case spec.signSpace():
			sign = " "
		}
	} else {
		raw, err := cur.Uint64()
		if err != nil {
			return 0, PutError, err
		}
		v := truncateUnsigned(raw, spec.Length)
		if spec.Precision == 0 && v == 0 {
			digits = ""
		} else {
			digits = genDigits(v, base, upper)
		}
	}

	// %p shows the "0x"/"0X" prefix only when the caller also passed '#'
	// — like a bare %x/%X, %p does not imply alternate form on its own.
	//
	// The octal "0" prefix is unconditional once '#' is set — it's the
	// digit borrowed from precision above, not a leading-digit check — so
	// it still shows up even when digits is empty (value 0, precision 0).
	// The hex "0x"/"0X" prefix, by contrast, is only added when there are
	// digits to prefix at all.
	prefix := ""
	if spec.alt() {
		switch base {
		case 8:
			prefix = "0"
		case 16:
			if digits != "" {
				prefix = altPrefix(base, upper)
			}
		}
	}

	minDigits := -1
	if spec.Precision >= 0 {
		minDigits = spec.Precision
	}

	n, r := composeNumeric[U](sink, spec, sign, prefix, digits, minDigits)
	return n, r, nil
}
