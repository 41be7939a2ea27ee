// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a test error but allow the test to continue. The
// Demand functions are fatal and should be used when the tested value is
// needed by the rest of the test.
//
// Success and failure are judged according to the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> always success
//
// The optional tags are printed before the failure message and are useful
// when a test is run inside a loop.
package test
