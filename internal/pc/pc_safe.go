// Package pc provides access to the program counter
// to determine the caller of a function.
package pc

import "runtime"

// GetCaller returns the program counter of the caller
// of the function that called GetCaller.
// skip is the number of additional frames to skip above that.
//
// A return value of 0 means that no frame was found.
func GetCaller(skip int) uintptr {
	const base = 1 + // frame for runtime.Callers
		1 + // frame for GetCaller
		1 // frame for our caller, e.g. errchain.New

	var callers [1]uintptr
	n := runtime.Callers(base+skip, callers[:])
	if n == 0 {
		return 0
	}
	return callers[0]
}
