// errchaincheck reports error types that are registered
// for errchain location tracking but cannot record a location.
//
// # Installation
//
// Install errchaincheck with:
//
//	go install braces.dev/errchain/cmd/errchaincheck@latest
//
// # Usage
//
//	errchaincheck [options] <packages>
//
// For example, 'errchaincheck ./...' checks the current package
// and all subpackages.
//
// An error type is registered with the errchain:link directive:
//
//	//errchain:link
//	type NotFoundError struct {
//		errchain.Site
//
//		Name string
//	}
//
// errchaincheck reports registered types that don't hold an errchain.Site,
// and keyed literals that leave an errchain.Site unset.
// Use the following flag to control the latter:
//
//	-literals
//	      report keyed literals that leave their errchain.Site unset (default true)
//
// errchaincheck may also be run through go vet:
//
//	go vet -vettool=$(which errchaincheck) ./...
package main

import (
	"braces.dev/errchain/internal/linkcheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(linkcheck.Analyzer)
}
