package a

import "braces.dev/errchain"

//errchain:link
type GoodError struct {
	errchain.Site

	Name string
}

func (*GoodError) Error() string { return "good" }

// NamedSiteError holds its Site in a named field.
//
//errchain:link
type NamedSiteError struct {
	At errchain.Site
}

//errchain:link
type MissingError struct { // want `MissingError is marked errchain:link but has no errchain.Site field`
	Name string
}

//errchain:link
type CodeError int // want `errchain:link requires a struct type, CodeError is int`

type (
	//errchain:link
	GroupedError struct { // want `GroupedError is marked errchain:link but has no errchain.Site field`
		Msg string
	}

	// PlainError is not registered, so it is not checked.
	PlainError struct{ Msg string }

	baseError struct {
		errchain.Site
	}

	//errchain:link
	DerivedError struct {
		baseError

		Code int
	}
)

// PtrDerivedError reaches its Site through an embedded pointer.
//
//errchain:link
type PtrDerivedError struct {
	*baseError
}

//errchain:link
type PtrSiteError struct {
	*errchain.Site
}

type siteAlias = errchain.Site

//errchain:link
type AliasError struct {
	siteAlias
}

func construct() []error {
	return []error{
		&GoodError{Site: errchain.NewSite(), Name: "x"},
		&GoodError{errchain.NewSite(), "x"},
		&GoodError{Name: "x"}, // want `GoodError literal does not capture its errchain.Site`
		&GoodError{},          // want `GoodError literal does not capture its errchain.Site`
	}
}

func constructOther() {
	_ = NamedSiteError{At: errchain.SiteAt(errchain.Location{File: "a.go"})}
	_ = NamedSiteError{}          // want `NamedSiteError literal does not capture its errchain.Site`
	_ = []*GoodError{{Name: "y"}} // want `GoodError literal does not capture its errchain.Site`
	_ = PlainError{Msg: "z"}
	_ = DerivedError{Code: 1}
	_ = PtrDerivedError{baseError: &baseError{Site: errchain.NewSite()}}
	_ = PtrSiteError{Site: &errchain.Site{}}
}
