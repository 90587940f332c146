package streamout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/streamout"
)

// A bare 'z' is only a length modifier when immediately followed by one
// of udxXion (original_source/streamout.c:761). 's' isn't in that set,
// so the whole "%zs" group must collapse to literal text and consume no
// argument at all — not be treated as "%s" with a stray leading 'z'.
func TestLengthModifierZRequiresLookahead(t *testing.T) {
	got, err := streamout.Sprintf("%zs", "should not be consumed as a string")
	require.NoError(t, err)
	assert.Equal(t, "zs", got)
}

func TestLengthModifierZBeforeIntConversion(t *testing.T) {
	got, err := streamout.Sprintf("%zd", int64(123))
	require.NoError(t, err)
	assert.Equal(t, "123", got)
}

// 'n' is in streamout.c's lookahead set for 'z' even though it isn't a
// valid conversion letter on its own terms for most length modifiers.
func TestLengthModifierZBeforeNConversion(t *testing.T) {
	var n int
	got, err := streamout.Sprintf("abc%zn", &n)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, 3, n)
}

// An unconsumed 'z' must not desync argument indexing for a later
// conversion in the same call: since "%zs" renders as literal text and
// pulls no argument, the following "%d" must still bind to the first
// (not second) element of args.
func TestLengthModifierZUnconsumedDoesNotDesyncArguments(t *testing.T) {
	got, err := streamout.Sprintf("%zs%d", 99, 42)
	require.NoError(t, err)
	assert.Equal(t, "zs99", got)
}
