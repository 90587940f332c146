package streamout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/streamout"
)

// %c/%C produce the same byte on a narrow engine, even when the argument
// doesn't fit in a byte — the narrow engine always reads back just the
// low byte of whatever was written
// (original_source/streamout.c's case_char writes into a TCHAR-sized
// slot, and TCHAR is byte-sized on a narrow build regardless of
// FLAG_WIDECHAR), so this only exercises the raw-byte path, not the
// rune-encoding bug string(byte(r)) used to have for values >= 0x80.
func TestCharNarrowHighByteIsNotUTF8Encoded(t *testing.T) {
	got, err := streamout.Sprintf("%c", rune(200))
	require.NoError(t, err)
	require.Len(t, got, 1, "a narrow %%c must emit exactly one raw byte, not a multi-byte UTF-8 encoding of the rune")
	assert.Equal(t, byte(200), got[0])
}

// On a wide engine, %c/%C and the h/l/w length modifiers genuinely
// change the rendered code unit: the default depends on which letter
// was used (C defaults wide on a narrow engine, c defaults wide on a
// wide engine — see charIsWide in char.go), and h forces narrow / l,w
// force wide regardless of that default.
func TestCharWideDispatch(t *testing.T) {
	const pi = rune(960) // U+03C0, doesn't fit in a byte

	cases := []struct {
		name   string
		format string
		want   uint16
	}{
		{"lower-c-defaults-wide-on-wide-engine", "%c", uint16(pi)},
		{"upper-C-defaults-narrow-on-wide-engine", "%C", uint16(byte(pi))},
		{"h-forces-narrow-even-for-lower-c", "%hc", uint16(byte(pi))},
		{"l-forces-wide-even-for-upper-C", "%lC", uint16(pi)},
		{"w-forces-wide-even-for-upper-C", "%wC", uint16(pi)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			units, err := streamout.SprintfW(tc.format, pi)
			require.NoError(t, err)
			require.Len(t, units, 1)
			assert.Equal(t, tc.want, units[0])
		})
	}
}
