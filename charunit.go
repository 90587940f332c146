package streamout

import "unicode/utf16"

// Unit is the engine's native code-unit width: byte for the narrow (ANSI)
// engine, uint16 for the wide (UTF-16) engine. One engine implementation is
// parameterized over both instead of being recompiled per width, per the
// redesign note in spec.md §9 ("dual narrow/wide builds via recompilation").
type Unit interface {
	byte | uint16
}

// isWide reports whether U is the wide (uint16) code unit.
func isWide[U Unit]() bool {
	var zero U
	_, ok := any(zero).(uint16)
	return ok
}

// widen encodes text (a Go string, already decoded from whatever the
// caller supplied) into the sink's native code-unit sequence. For the
// narrow engine the UTF-8 bytes of text are emitted as-is — matching the
// C engine, where the format string and narrow arguments are already in
// the target byte encoding and are never reinterpreted. For the wide
// engine each rune is encoded to UTF-16, including surrogate pairs.
func widen[U Unit](text string) []U {
	if !isWide[U]() {
		out := make([]U, len(text))
		for i := 0; i < len(text); i++ {
			out[i] = U(text[i])
		}
		return out
	}
	units := utf16.Encode([]rune(text))
	out := make([]U, len(units))
	for i, u := range units {
		out[i] = U(u)
	}
	return out
}

// widenByte converts a single ASCII byte (a digit, sign, punctuation
// character produced by the composer) to the sink's native unit type.
func widenByte[U Unit](b byte) U {
	return U(b)
}
