package errchain

import (
	"fmt"

	"braces.dev/errchain/internal/pc"
)

// New returns a leaf error with the given text,
// similar to `errors.New`.
// The error records the location of the caller of New.
//
//go:noinline so the caller's frame is not folded into ours.
func New(text string) error {
	return newNode(text, nil, locationForPC(pc.GetCaller(0)))
}

// Errorf returns a leaf error with text formatted
// according to a format specifier, similar to `fmt.Sprintf`.
// The error records the location of the caller of Errorf.
//
// Errorf does not wrap errors passed with %w.
// Use [Wrapf] to attach a cause.
//
//go:noinline due to pc.GetCaller (see [New] for details).
func Errorf(format string, args ...any) error {
	return newNode(fmt.Sprintf(format, args...), nil, locationForPC(pc.GetCaller(0)))
}

// Wrap returns an error with the given text whose cause is err.
// The error records the location of the caller of Wrap,
// which is the point at which err was passed upward.
// This is intended to be used at return points of a function:
//
//	if err := load(path); err != nil {
//		return errchain.Wrap(err, "load config")
//	}
//
// If err is nil, Wrap returns nil.
//
//go:noinline due to pc.GetCaller (see [New] for details).
func Wrap(err error, text string) error {
	if err == nil {
		return nil
	}

	return newNode(text, err, locationForPC(pc.GetCaller(0)))
}

// Wrapf is like [Wrap], formatting the text
// according to a format specifier.
//
// If err is nil, Wrapf returns nil.
//
//go:noinline due to pc.GetCaller (see [New] for details).
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return newNode(fmt.Sprintf(format, args...), err, locationForPC(pc.GetCaller(0)))
}
