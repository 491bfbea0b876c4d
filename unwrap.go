package errchain

// UnwrapLocation unwraps the outermost link from the given error,
// returning its location and the inner error.
// If err is not a [Link], or the link has no location,
// UnwrapLocation returns (Location{}, inner, false)
// where inner is the direct cause of err, if any.
//
// You can use this for structured access to chain information.
// For example:
//
//	var locs []errchain.Location
//	for err != nil {
//		loc, inner, ok := errchain.UnwrapLocation(err)
//		if !ok {
//			break
//		}
//		locs = append(locs, loc)
//		err = inner
//	}
func UnwrapLocation(err error) (loc Location, inner error, ok bool) { //nolint:revive // error is intentionally middle return
	l, isLink := err.(Link)
	if !isLink {
		return Location{}, unwrapOnce(err), false
	}

	loc, ok = l.Location()
	return loc, unwrapOnce(err), ok
}

// unwrapOnce accesses the direct cause of the error if any, otherwise
// returns nil.
//
// It supports both errors implementing causer (`Cause()` method, from
// github.com/pkg/errors) and `Wrapper` (`Unwrap()` method, from the
// Go 1.13 error proposal).
// Multi-errors (`Unwrap() []error`) have no single cause
// and end the chain.
func unwrapOnce(err error) error {
	switch e := err.(type) {
	case interface{ Cause() error }:
		return e.Cause()
	case interface{ Unwrap() error }:
		return e.Unwrap()
	}

	return nil
}
