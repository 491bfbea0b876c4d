package errchain

import (
	"runtime"
	"strconv"

	"braces.dev/errchain/internal/pc"
)

// Location is a position in source code
// at which an error was created or wrapped.
//
// Locations are plain values.
// They are never modified after they're captured.
type Location struct {
	// File is the path to the source file.
	File string

	// Line is the 1-based line number inside File.
	Line int

	// Column is the 1-based column inside Line,
	// or 0 if the column is not known.
	//
	// Locations captured at runtime never carry a column
	// because the Go runtime does not record one.
	Column int

	// Func is the fully qualified name of the function
	// containing the location, if known.
	// It is not part of the rendered location.
	Func string
}

// Here returns the location of its caller.
//
//go:noinline so the caller's frame is not folded into ours.
func Here() Location {
	return locationForPC(pc.GetCaller(0))
}

// Caller returns the location of a caller further up the stack.
// Caller(0) is equivalent to [Here].
// Caller(1) is the location of the function that called
// the function calling Caller, and so on.
//
// This is intended for error helpers that want errors
// to be attributed to their own callers:
//
//	func notFound(name string) error {
//		return errchain.Caller(1).New(name + " not found")
//	}
//
//go:noinline due to pc.GetCaller (see [Here] for details).
func Caller(skip int) Location {
	return locationForPC(pc.GetCaller(skip))
}

func locationForPC(callerPC uintptr) Location {
	if callerPC == 0 {
		return Location{}
	}

	frames := runtime.CallersFrames([]uintptr{callerPC})
	f, _ := frames.Next()
	if f == (runtime.Frame{}) {
		// Unlikely, but if the PC didn't yield a frame,
		// there is nothing to record.
		return Location{}
	}

	return Location{
		File: f.File,
		Line: f.Line,
		Func: f.Function,
	}
}

// IsZero reports whether l holds no position.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

// String formats the location as file:line:column,
// or file:line if the column is not known.
func (l Location) String() string {
	b := make([]byte, 0, len(l.File)+16)
	b = append(b, l.File...)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(l.Line), 10)
	if l.Column > 0 {
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(l.Column), 10)
	}
	return string(b)
}

// New returns a leaf error with the given text,
// attributed to l instead of the caller.
func (l Location) New(text string) error {
	return newNode(text, nil, l)
}

// Wrap returns an error wrapping cause with the given text,
// attributed to l instead of the caller.
// If cause is nil, Wrap returns nil.
func (l Location) Wrap(cause error, text string) error {
	if cause == nil {
		return nil
	}
	return newNode(text, cause, l)
}
