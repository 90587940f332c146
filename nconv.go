package streamout

import (
	"fmt"

	"github.com/tinywasm/streamout/internal/argval"
)

// ErrBadNArg is returned when %n's argument isn't a pointer to an
// integer type this port knows how to write through.
var ErrBadNArg = fmt.Errorf("streamout: %%n argument is not a supported integer pointer")

// renderN implements %n: it writes no output and instead stores the
// number of units written so far (written) into the pointee of the
// conversion's argument, matching streamout.c's "case 'n'" branch
// (`*written_all = chars_written`). Go has no va_list int* the way C
// does; the argument is expected to be one of *int, *int32, *int64,
// *int16, or *uint variants.
func renderN(cur *argval.Cursor, written int) error {
	v, err := cur.Any()
	if err != nil {
		return err
	}
	switch p := v.(type) {
	case *int:
		*p = written
	case *int8:
		*p = int8(written)
	case *int16:
		*p = int16(written)
	case *int32:
		*p = int32(written)
	case *int64:
		*p = int64(written)
	case *uint:
		*p = uint(written)
	case *uint8:
		*p = uint8(written)
	case *uint16:
		*p = uint16(written)
	case *uint32:
		*p = uint32(written)
	case *uint64:
		*p = uint64(written)
	default:
		return ErrBadNArg
	}
	return nil
}
