// Package errchain records where each error in a chain was created
// and renders the chain as a propagation history.
//
// Every error built by this package carries the [Location]
// at which it was constructed: for a leaf error, the site of the failure;
// for a wrapping error, the site at which the failure was passed upward.
// Rendering an error walks its causes from the outermost wrapper
// to the innermost leaf and prints one line per link:
//
//	2: load config, at /app/config.go:41
//	1: open file, at /app/fsutil/open.go:18
//	0: permission denied, at /app/fsutil/open.go:12
//
// The index counts the hops that remain to the root cause,
// so the root cause is always 0.
//
// Custom error types take part in rendering by implementing [Link],
// most easily by embedding a [Site].
package errchain

import "fmt"

// Link is an error that knows where it was created.
//
// The next link in the chain is found through
// an Unwrap() error or Cause() error method.
// A Link may additionally implement
//
//	Message() string
//
// to provide the text for this link alone,
// without the text of its cause.
// Otherwise, Error() is used for display.
type Link interface {
	error

	// Location reports where this error was created.
	// ok is false if no location was recorded.
	Location() (loc Location, ok bool)
}

var _arena = newArena[node](1024)

// node is the error type produced by this package.
// It's immutable once returned from newNode.
type node struct {
	msg   string
	cause error
	loc   Location
}

var (
	_ Link          = (*node)(nil)
	_ fmt.Formatter = (*node)(nil)
)

func newNode(msg string, cause error, loc Location) *node {
	e := _arena.Take()
	e.msg = msg
	e.cause = cause
	e.loc = loc
	return e
}

func (e *node) Error() string {
	switch {
	case e.cause == nil:
		return e.msg
	case e.msg == "":
		return e.cause.Error()
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

// Message returns the text of this error without its cause.
func (e *node) Message() string {
	return e.msg
}

func (e *node) Unwrap() error {
	return e.cause
}

func (e *node) Location() (Location, bool) {
	return e.loc, true
}

// Format implements fmt.Formatter.
// The %+v verb renders the full chain, see [Render].
// All other verbs format the error message as a string.
func (e *node) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_ = Render(s, e)
		return
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), e.Error())
}
