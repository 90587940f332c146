package streamout

import "github.com/tinywasm/streamout/internal/argval"

// resultError turns a non-OK PutResult into the sentinel error api.go's
// entry points surface, matching spec.md §7's "in-band only" rule: the
// int return already carries the C-visible signal (-1), the error is
// the idiomatic-Go way to learn *why*.
func resultError(r PutResult) error {
	switch r {
	case PutFull:
		return ErrSinkFull
	case PutError:
		return ErrTransport
	default:
		return nil
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func atoiRunes(rs []rune) int {
	n := 0
	for _, r := range rs {
		n = n*10 + int(r-'0')
	}
	return n
}

// parseLength consumes the length modifier at *i, following
// streamout.c's lookahead-before-consume discipline for I/I32/I64: a
// bare "I" is only a length modifier when immediately followed by one of
// x X d i u o; otherwise it is left for the conversion-letter position
// (and this engine, with no "wide Windows integer" conversion letter of
// its own, simply leaves the default length in that case).
func parseLength(runes []rune, i *int) Length {
	if *i >= len(runes) {
		return LenDefault
	}
	switch runes[*i] {
	case 'h':
		*i++
		return LenShort
	case 'l':
		*i++
		if *i < len(runes) && runes[*i] == 'l' {
			*i++
			return LenLongLong
		}
		return LenLong
	case 'L':
		*i++
		return LenLongDouble
	case 'w':
		*i++
		return LenWide
	case 'z':
		// streamout.c: `chr == 'z' && *format && strchr("udxXion", *format)`
		// — z is only a length modifier when immediately followed by one
		// of udxXion; otherwise it's left unconsumed for the conversion
		// letter slot, same lookahead-before-consume discipline as I.
		if *i+1 < len(runes) && isZFollowChar(runes[*i+1]) {
			*i++
			return LenSizeT
		}
		return LenDefault
	case 'I':
		if *i+2 < len(runes) && runes[*i+1] == '6' && runes[*i+2] == '4' {
			*i += 3
			return LenLongLong
		}
		if *i+2 < len(runes) && runes[*i+1] == '3' && runes[*i+2] == '2' {
			*i += 3
			return LenDefault
		}
		if *i+1 < len(runes) && isConvLetter(runes[*i+1]) {
			*i++
			return LenIntPtr
		}
		return LenDefault
	default:
		return LenDefault
	}
}

func isConvLetter(r rune) bool {
	switch r {
	case 'd', 'i', 'o', 'u', 'x', 'X':
		return true
	}
	return false
}

// isZFollowChar is the "udxXion" lookahead set streamout.c checks before
// consuming a bare 'z' as the size_t length modifier — one letter wider
// than isConvLetter's set because it also admits 'n' (%zn is legal).
func isZFollowChar(r rune) bool {
	switch r {
	case 'u', 'd', 'x', 'X', 'i', 'o', 'n':
		return true
	}
	return false
}

func isKnownConv(r rune) bool {
	switch r {
	case 'd', 'i', 'o', 'u', 'x', 'X', 'p', 'c', 'C', 's', 'S', 'Z', 'n',
		'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		return true
	}
	return false
}

// Run parses format against args, writing the rendered output to sink.
// It implements spec.md §4.2's state machine (NORMAL -> PERCENT -> FLAGS
// -> WIDTH -> DOT -> PRECISION -> LENGTH -> CONV) and returns the number
// of code units written, or -1 with a non-nil error on the first Sink
// failure — mirroring streamout.c's own int return, plus a Go error for
// callers who want to know why.
func Run[U Unit](sink Sink[U], format string, args []any) (int, error) {
	cur := argval.NewCursor(args)
	runes := []rune(format)
	written := 0
	i := 0

	for i < len(runes) {
		if runes[i] != '%' {
			j := i
			for j < len(runes) && runes[j] != '%' {
				j++
			}
			n, r := putString[U](sink, string(runes[i:j]))
			written += n
			if r != PutOK {
				return -1, resultError(r)
			}
			i = j
			continue
		}

		// runes[i] == '%'
		if i+1 < len(runes) && runes[i+1] == '%' {
			n, r := putString[U](sink, "%")
			written += n
			if r != PutOK {
				return -1, resultError(r)
			}
			i += 2
			continue
		}

		i++ // consume '%'
		spec := &ConvSpec{Precision: -1}

	flagsLoop:
		for i < len(runes) {
			switch runes[i] {
			case '-':
				spec.Flags |= FlagLeftAlign
			case '+':
				spec.Flags |= FlagForceSign
			case ' ':
				spec.Flags |= FlagForceSignSpace
			case '0':
				spec.Flags |= FlagPadZero
			case '#':
				spec.Flags |= FlagAlt
			default:
				break flagsLoop
			}
			i++
		}

		if i < len(runes) && runes[i] == '*' {
			w, err := cur.Int64()
			if err != nil {
				return -1, err
			}
			iw := int(w)
			if iw < 0 {
				spec.Flags |= FlagLeftAlign
				iw = -iw
			}
			spec.Width = iw
			spec.HasWidth = true
			i++
		} else {
			start := i
			for i < len(runes) && isDigit(runes[i]) {
				i++
			}
			if i > start {
				spec.Width = atoiRunes(runes[start:i])
				spec.HasWidth = true
			}
		}

		if i < len(runes) && runes[i] == '.' {
			i++
			if i < len(runes) && runes[i] == '*' {
				p, err := cur.Int64()
				if err != nil {
					return -1, err
				}
				if p < 0 {
					spec.Precision = -1
				} else {
					spec.Precision = int(p)
				}
				i++
			} else {
				start := i
				for i < len(runes) && isDigit(runes[i]) {
					i++
				}
				spec.Precision = atoiRunes(runes[start:i])
			}
		}

		spec.Length = parseLength(runes, &i)

		if i >= len(runes) {
			// Malformed trailing '%': nothing follows to back up to;
			// the '%' and anything consumed as flags/width/precision/
			// length produce no output, and the run ends here.
			break
		}

		conv := runes[i]
		i++

		if !isKnownConv(conv) {
			// streamout.c's "default: format--; continue;": drop the
			// '%' entirely, the unexpected letter is the only literal
			// output.
			n, r := putString[U](sink, string(conv))
			written += n
			if r != PutOK {
				return -1, resultError(r)
			}
			continue
		}

		spec.Conv = byte(conv)

		var n int
		var res PutResult
		var err error

		switch conv {
		case 'd', 'i', 'o', 'u', 'x', 'X', 'p':
			n, res, err = renderInteger[U](sink, spec, cur)
		case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
			n, res, err = renderFloat[U](sink, spec, cur)
		case 'c', 'C':
			n, res, err = renderChar[U](sink, spec, cur)
		case 's', 'S', 'Z':
			n, res, err = renderString[U](sink, spec, cur)
		case 'n':
			err = renderN(cur, written)
			res = PutOK
		}

		written += n
		if err != nil {
			return -1, err
		}
		if res != PutOK {
			return -1, resultError(res)
		}
	}

	return written, nil
}
