package streamout

import "io"

// Sprintf renders format against args entirely in memory and returns the
// resulting string, the narrow (byte) engine's equivalent of
// tinywasm-mcp/internal/tfmt's Sprintf.
func Sprintf(format string, args ...any) (string, error) {
	sink := &StreamSink[byte]{}
	if _, err := Run[byte](sink, format, args); err != nil {
		return string(sink.Data), err
	}
	return string(sink.Data), nil
}

// Fprintf renders format against args to w, flushing through a
// WriterSink so partial output survives a later error.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	sink := &WriterSink{W: w}
	n, err := Run[byte](sink, format, args)
	if ferr := sink.Flush(); err == nil {
		err = ferr
	}
	return n, err
}

// Snprintf renders format against args into dst, stopping and reporting
// ErrSinkFull if the rendered output would not fit — the Go surface over
// streamout.c's bounded "counted buffer" destination.
func Snprintf(dst []byte, format string, args ...any) (int, error) {
	sink := NewCountedSink[byte](dst)
	n, err := Run[byte](sink, format, args)
	return n, err
}

// SprintfW is Sprintf's wide (UTF-16) counterpart.
func SprintfW(format string, args ...any) ([]uint16, error) {
	sink := &StreamSink[uint16]{}
	if _, err := Run[uint16](sink, format, args); err != nil {
		return sink.Data, err
	}
	return sink.Data, nil
}

// FprintfW is Fprintf's wide (UTF-16) counterpart.
func FprintfW(w Uint16Writer, format string, args ...any) (int, error) {
	sink := &WideWriterSink{W: w}
	n, err := Run[uint16](sink, format, args)
	if ferr := sink.Flush(); err == nil {
		err = ferr
	}
	return n, err
}

// SnprintfW is Snprintf's wide (UTF-16) counterpart.
func SnprintfW(dst []uint16, format string, args ...any) (int, error) {
	sink := NewCountedSink[uint16](dst)
	return Run[uint16](sink, format, args)
}
