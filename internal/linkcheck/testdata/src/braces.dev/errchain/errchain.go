// Package errchain is the subset of braces.dev/errchain
// that the analyzer looks at.
package errchain

type Location struct {
	File   string
	Line   int
	Column int
}

type Site struct {
	loc Location
}

func NewSite() Site { return Site{} }

func SiteAt(loc Location) Site { return Site{loc: loc} }

func (s Site) Location() (Location, bool) { return s.loc, s.loc != Location{} }
