// Package mocker provides small substitution helpers for unit tests
package mocker

// Unit tests frequently need to swap a package-level function or state
// variable for a stub. ReplaceItem installs the replacement and returns a
// closure restoring the original; intended use is
//
//	defer mocker.ReplaceItem(&orgVal, newVal)()
//
// - note the extra brackets.
func ReplaceItem[T any](orgVal *T, newVal T) func() {
	saveVal := *orgVal
	*orgVal = newVal
	return func() { *orgVal = saveVal }
}
