// Package argval pulls conversion arguments from a Go variadic slice and
// coerces them to the magnitude the engine's integer/float pipelines
// consume. The C engine walks a va_list typed by the format string; Go
// has no va_list, so the engine indexes sequentially into a []any and
// this package does the per-conversion type coercion, the same job
// tinywasm-mcp/internal/tfmt/cast.go (and the real spf13/cast it mirrors)
// do for that package's own %d/%f-style verbs.
package argval

import (
	"fmt"

	"github.com/spf13/cast"
)

// Cursor walks a fixed argument list the way streamout.c's format scanner
// walks a va_list: strictly left to right, one conversion at a time.
type Cursor struct {
	args []any
	pos  int
}

// NewCursor starts a cursor over args.
func NewCursor(args []any) *Cursor {
	return &Cursor{args: args}
}

// ErrMissingArg is returned when a conversion needs an argument and the
// list is already exhausted.
var ErrMissingArg = fmt.Errorf("streamout: missing argument")

// Next returns the next argument and advances the cursor, or
// ErrMissingArg if the list is exhausted.
func (c *Cursor) Next() (any, error) {
	if c.pos >= len(c.args) {
		return nil, ErrMissingArg
	}
	v := c.args[c.pos]
	c.pos++
	return v, nil
}

// Int64 pulls the next argument and coerces it to a signed 64-bit
// magnitude, for %d/%i and for '*' width/precision values.
func (c *Cursor) Int64() (int64, error) {
	v, err := c.Next()
	if err != nil {
		return 0, err
	}
	return cast.ToInt64E(v)
}

// Uint64 pulls the next argument and coerces it to an unsigned 64-bit
// magnitude, for %u/%o/%x/%X/%p.
func (c *Cursor) Uint64() (uint64, error) {
	v, err := c.Next()
	if err != nil {
		return 0, err
	}
	return cast.ToUint64E(v)
}

// Float64 pulls the next argument and coerces it to a double, for
// %f/%e/%g/%a.
func (c *Cursor) Float64() (float64, error) {
	v, err := c.Next()
	if err != nil {
		return 0, err
	}
	return cast.ToFloat64E(v)
}

// String pulls the next argument and coerces it to a string, for %s/%S.
func (c *Cursor) String() (string, error) {
	v, err := c.Next()
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return cast.ToStringE(v)
}

// Rune pulls the next argument and coerces it to a single code point,
// for %c/%C. Accepts any integer type or a one-rune string.
func (c *Cursor) Rune() (rune, error) {
	v, err := c.Next()
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case rune:
		return t, nil
	case string:
		for _, r := range t {
			return r, nil
		}
		return 0, nil
	default:
		i, err := cast.ToInt64E(v)
		if err != nil {
			return 0, err
		}
		return rune(i), nil
	}
}

// Any pulls the next argument unconverted, for %n (which needs the
// caller's pointer, not a coerced value) and %Z (counted strings).
func (c *Cursor) Any() (any, error) {
	return c.Next()
}
