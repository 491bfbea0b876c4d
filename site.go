package errchain

import "braces.dev/errchain/internal/pc"

// Site records where a custom error was created.
// Embed it in an error type to make that type a [Link]:
//
//	//errchain:link
//	type NotFoundError struct {
//		errchain.Site
//
//		Name string
//	}
//
//	func notFound(name string) *NotFoundError {
//		return &NotFoundError{Site: errchain.NewSite(), Name: name}
//	}
//
// The zero Site has no location and renders as "Unknown".
// The errchaincheck command reports types marked with
// the errchain:link directive that lack a Site,
// and literals that leave the Site unset.
type Site struct {
	loc Location
}

// NewSite returns a Site for the location of its caller.
//
//go:noinline due to pc.GetCaller (see [New] for details).
func NewSite() Site {
	return Site{loc: locationForPC(pc.GetCaller(0))}
}

// SiteAt returns a Site for a previously captured location.
func SiteAt(loc Location) Site {
	return Site{loc: loc}
}

// Location reports the recorded location, if any.
func (s Site) Location() (Location, bool) {
	return s.loc, !s.loc.IsZero()
}
