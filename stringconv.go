package streamout

import (
	"unicode/utf16"

	"github.com/tinywasm/streamout/internal/argval"
)

// nullLiteral is what streamout.c's case_string substitutes for a NULL
// string pointer argument.
const nullLiteral = "(null)"

// CountedString is the narrow counted-string value this port uses in
// place of the NT STRING the original %Z conversion dereferences: Go has
// no analogous struct-pointer argument, so callers pass this value type
// directly as the %Z argument.
type CountedString struct {
	Data []byte
}

// CountedStringW is CountedString's wide (UTF-16) counterpart, standing
// in for UNICODE_STRING.
type CountedStringW struct {
	Data []uint16
}

// renderString implements %s/%S/%Z per spec.md §4.5: a precision bounds
// how many characters are copied (not how many bytes), a NULL argument
// renders as "(null)", and the '0' flag is never honored for strings. A
// real va_list would pick wchar_t* vs. char* for %s/%S by length
// modifier; this port instead dispatches on the argument's own Go type
// (CountedString/CountedStringW/plain value), so no separate wideness
// check is needed here.
func renderString[U Unit](sink Sink[U], spec *ConvSpec, cur *argval.Cursor) (int, PutResult, error) {
	v, err := cur.Any()
	if err != nil {
		return 0, PutError, err
	}

	var text string
	if v == nil {
		text = nullLiteral
	} else if cs, ok := v.(*CountedString); ok {
		if cs == nil {
			text = nullLiteral
		} else {
			text = string(cs.Data)
		}
	} else if cs, ok := v.(CountedString); ok {
		text = string(cs.Data)
	} else if cs, ok := v.(*CountedStringW); ok {
		if cs == nil {
			text = nullLiteral
		} else {
			text = string(utf16ToRunes(cs.Data))
		}
	} else if cs, ok := v.(CountedStringW); ok {
		text = string(utf16ToRunes(cs.Data))
	} else {
		cur2 := argval.NewCursor([]any{v})
		s, err := cur2.String()
		if err != nil {
			return 0, PutError, err
		}
		text = s
	}

	if spec.Precision >= 0 {
		runes := []rune(text)
		if len(runes) > spec.Precision {
			text = string(runes[:spec.Precision])
		}
	}

	noZero := *spec
	noZero.Flags &^= FlagPadZero
	n, res := composeNumeric[U](sink, &noZero, "", "", text, -1)
	return n, res, nil
}

func utf16ToRunes(units []uint16) []rune {
	return utf16.Decode(units)
}
