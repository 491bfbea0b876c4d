package errchain

import (
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"
)

// unknownLocation is printed in place of a location
// for links that did not record one.
const unknownLocation = "Unknown"

// errorChain is an error broken down into its links.
type errorChain struct {
	// Links are the consecutive links starting at the error itself,
	// outermost first.
	Links []Link

	// Foreign is the first cause that isn't a Link, if any.
	// The chain is not followed past it.
	Foreign error
}

// buildChain walks the causes of err
// until it reaches one that isn't a Link.
func buildChain(err error) errorChain {
	var c errorChain
	for err != nil {
		// We check for Link directly instead of using errors.As
		// because a wrapper without a location must end the chain
		// rather than be skipped over.
		l, ok := err.(Link)
		if !ok {
			c.Foreign = err
			break
		}

		c.Links = append(c.Links, l)
		err = unwrapOnce(err)
	}
	return c
}

// Len reports the number of consecutive links in the chain of err,
// starting at err itself.
// It stops at the first cause that is not a [Link].
func Len(err error) int {
	var n int
	for ; err != nil; err = unwrapOnce(err) {
		if _, ok := err.(Link); !ok {
			break
		}
		n++
	}
	return n
}

// Links iterates over the links in the chain of err,
// from the outermost to the innermost.
// Each link is yielded with its index:
// the number of links that remain below it,
// so the innermost link has index 0.
func Links(err error) iter.Seq2[int, Link] {
	return func(yield func(int, Link) bool) {
		idx := Len(err) - 1
		for ; idx >= 0; idx-- {
			l := err.(Link) // Len guarantees this
			if !yield(idx, l) {
				return
			}
			err = unwrapOnce(err)
		}
	}
}

// Render writes the chain of err to w, one line per link:
//
//	<index>: <message>, at <location>
//
// Lines are written from the outermost link to the innermost.
// The index counts down to 0 for the innermost link.
// Links without a location print "Unknown" in its place.
//
// If the chain ends in an error that is not a [Link],
// that error's text is written on a final line by itself
// and its causes are not followed.
//
// An error is returned if the writer returns an error.
func Render(w io.Writer, err error) error {
	return (&chainWriter{W: w}).WriteChain(buildChain(err))
}

// RenderString renders the chain of err to a string.
// See [Render] for the format.
func RenderString(err error) string {
	var s strings.Builder
	_ = Render(&s, err)
	return s.String()
}

type chainWriter struct {
	W io.Writer
	e error
}

func (p *chainWriter) WriteChain(c errorChain) error {
	for i, l := range c.Links {
		p.writeLink(len(c.Links)-1-i, l)
	}

	if c.Foreign != nil {
		p.writeString(c.Foreign.Error())
		p.writeString("\n")
	}

	return p.e
}

// Records the error if non-nil.
// Will be returned from WriteChain, ultimately.
func (p *chainWriter) err(err error) {
	p.e = errors.Join(p.e, err)
}

func (p *chainWriter) writeLink(idx int, l Link) {
	p.writeString(strconv.Itoa(idx))
	p.writeString(": ")
	p.writeString(message(l))
	p.writeString(", at ")
	if loc, ok := l.Location(); ok {
		p.writeString(loc.String())
	} else {
		p.writeString(unknownLocation)
	}
	p.writeString("\n")
}

func (p *chainWriter) writeString(s string) {
	_, err := io.WriteString(p.W, s)
	p.err(err)
}

// message returns the text for the link alone.
func message(l Link) string {
	if m, ok := l.(interface{ Message() string }); ok {
		return m.Message()
	}
	return l.Error()
}
