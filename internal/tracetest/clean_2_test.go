package tracetest

import "braces.dev/errchain"

// Separate file to verify how MustClean handles separate files.

func f1() error {
	return errchain.Wrap(f2(), "f1")
}

func f2() error {
	if err := f3(); err != nil {
		return errchain.Wrapf(err, "f2 attempt %d", 3)
	}

	return nil
}

func f3() error {
	return errchain.New("err")
}
