package streamout

import "github.com/tinywasm/streamout/internal/argval"

// charIsWide resolves %c/%C's narrow/wide dispatch exactly as
// original_source/streamout.c's case_char: _T('C') sets FLAG_WIDECHAR
// only in that source's "#ifndef _UNICODE" (narrow-build) half, and
// _T('c') sets it only in the "#ifdef _UNICODE" (wide-build) half — the
// macro-duplicated narrow/wide builds collapse into one check against
// the engine's own unit width here. FLAG_SHORT ('h') skips that default
// entirely (forces narrow); FLAG_LONG/FLAG_WIDECHAR ('l'/'w' — the same
// bit in the source) force it on regardless of build or conversion
// letter.
func charIsWide(conv byte, length Length, engineWide bool) bool {
	wide := (conv == 'C' && !engineWide) || (conv == 'c' && engineWide)
	switch length {
	case LenShort:
		wide = false
	case LenLong, LenWide:
		wide = true
	}
	return wide
}

// renderChar implements %c/%C: spec.md §4.5's single-character
// conversion, padded like any other field but never precision-truncated.
//
// streamout.c stores the pulled int argument into a single TCHAR-sized
// buffer slot — a wchar_t slot when FLAG_WIDECHAR is set, a char slot
// otherwise — then always streams back exactly one TCHAR of the
// *engine's own* compiled width. On a narrow engine that slot is read
// back as one byte regardless of FLAG_WIDECHAR (the wide write's upper
// byte is simply never read), so c/C/h/l/w only change the rendered
// value on a wide engine: there, a wide conversion keeps the argument's
// low 16 bits, a narrow one keeps its low byte zero-extended.
func renderChar[U Unit](sink Sink[U], spec *ConvSpec, cur *argval.Cursor) (int, PutResult, error) {
	r, err := cur.Rune()
	if err != nil {
		return 0, PutError, err
	}

	engineWide := isWide[U]()
	wide := charIsWide(spec.Conv, spec.Length, engineWide)

	// widen[U]'s narrow path copies a string's raw bytes verbatim, so the
	// single-byte body here must be built via a []byte conversion, not a
	// bare string(byte(...)) — converting an integer kind straight to
	// string encodes it as a rune (UTF-8), which is wrong for values >=
	// 0x80. The wide path instead goes through widen[U]'s rune-decode/
	// utf16-encode round trip, so a rune conversion is correct there.
	var body string
	switch {
	case !engineWide:
		body = string([]byte{byte(r)})
	case wide:
		body = string(rune(uint16(r)))
	default:
		body = string(rune(byte(r)))
	}

	n, res := composeNumeric[U](sink, spec, "", "", body, -1)
	return n, res, nil
}
