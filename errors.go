package streamout

import "errors"

// ErrSinkFull is returned when a bounded Sink (CountedSink) ran out of
// room before the conversion finished, the Go-idiomatic counterpart of
// streamout.c returning -1 from a full destination buffer.
var ErrSinkFull = errors.New("streamout: destination buffer is full")

// ErrTransport is returned when an unbounded Sink's underlying transport
// (an io.Writer, a Uint16Writer) failed.
var ErrTransport = errors.New("streamout: sink transport failed")
