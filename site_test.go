package errchain_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"braces.dev/errchain"
)

func TestSiteZero(t *testing.T) {
	var s errchain.Site
	if loc, ok := s.Location(); ok {
		t.Errorf("zero Site: want no location, got %v", loc)
	}
}

func TestSiteAt(t *testing.T) {
	want := errchain.Location{File: "x.go", Line: 3, Column: 9}
	got, ok := errchain.SiteAt(want).Location()
	if !ok {
		t.Fatalf("SiteAt: want ok")
	}
	if got != want {
		t.Errorf("SiteAt: want %v, got %v", want, got)
	}
}

// queryError is a custom error type wrapping a driver error.
type queryError struct {
	errchain.Site

	Query string
	Err   error
}

func (e *queryError) Error() string   { return e.Message() + ": " + e.Err.Error() }
func (e *queryError) Message() string { return "query " + e.Query }
func (e *queryError) Unwrap() error   { return e.Err }

var errConnReset = errors.New("connection reset")

func runQuery(q string) error {
	return &queryError{Site: errchain.NewSite(), Query: q, Err: errConnReset}
}

func TestSiteCustomLink(t *testing.T) {
	err := errchain.Wrap(runQuery("select 1"), "list users")

	if !errors.Is(err, errConnReset) {
		t.Errorf("Is(): want true, got false")
	}

	var qe *queryError
	if !errors.As(err, &qe) {
		t.Fatalf("As(): want true, got false")
	}

	got := errchain.RenderString(err)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if want, got := 3, len(lines); want != got {
		t.Fatalf("want %d lines, got %d:\n%s", want, got, strings.Join(lines, "\n"))
	}

	for i, want := range []string{
		"1: list users, at ",
		"0: query select 1, at ",
		"connection reset",
	} {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}

	loc, ok := qe.Location()
	if !ok {
		t.Fatalf("Location(): want ok")
	}
	if want, got := "site_test.go", filepath.Base(loc.File); want != got {
		t.Errorf("Location().File: want %q, got %q", want, got)
	}
	if want, got := "errchain_test.runQuery", filepath.Base(loc.Func); want != got {
		t.Errorf("Location().Func: want %q, got %q", want, got)
	}
}
