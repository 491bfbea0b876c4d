package b

import "braces.dev/errchain"

type NotFoundError struct {
	errchain.Site

	Key string
}

func (*NotFoundError) Error() string { return "not found" }

//errchain:link
type BadError struct { // want `BadError is marked errchain:link but has no errchain.Site field`
	Key string
}

func lookup(key string) error {
	return &NotFoundError{Key: key}
}
