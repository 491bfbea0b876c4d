// Package tracetest provides utilities for errchain
// to test rendered chains conveniently.
package tracetest

import (
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
)

const _fixedDir = "/path/to/errchain"

// _locationMatcher matches file:line where file starts with the fixedDir.
// Capture groups:
//
//  1. file path
//  2. line number
var _locationMatcher = regexp.MustCompile("(" + regexp.QuoteMeta(_fixedDir) + `[^:\s]+):(\d+)`)

// MustClean makes rendered chains deterministic for tests by:
//
//   - replacing the environment-specific path to errchain
//     with the fixed path /path/to/errchain
//   - replacing line numbers with the lowest values
//     that maintain relative ordering within the file
//
// Line numbers are renumbered from 1 per file,
// with earlier lines getting lower numbers.
// Locations outside errchain are left alone.
func MustClean(chain string) string {
	chain = strings.ReplaceAll(chain, moduleDir(), _fixedDir)

	lines := make(map[string][]int) // file => referenced lines
	for _, m := range _locationMatcher.FindAllStringSubmatch(chain, -1) {
		line, err := strconv.Atoi(m[2])
		if err != nil {
			panic(fmt.Sprintf("matched bad line number in %q: %v", m[0], err))
		}
		lines[m[1]] = append(lines[m[1]], line)
	}

	replacements := make(map[string]string)
	for file, fileLines := range lines {
		slices.Sort(fileLines)
		for idx, line := range slices.Compact(fileLines) {
			replacements[file+":"+strconv.Itoa(line)] = file + ":" + strconv.Itoa(idx+1)
		}
	}

	// Each match is replaced as a whole,
	// so file.go:12 is never rewritten through file.go:1.
	return _locationMatcher.ReplaceAllStringFunc(chain, func(loc string) string {
		if r, ok := replacements[loc]; ok {
			return r
		}
		return loc
	})
}

func moduleDir() string {
	_, file, _, _ := runtime.Caller(0)
	// Strip internal/tracetest/<file>.
	return filepath.Dir(filepath.Dir(filepath.Dir(file)))
}
