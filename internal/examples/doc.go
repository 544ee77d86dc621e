// Package examples holds the built-in test suites run by the acunit command.
//
// The passing suites mirror the sample programs shipped with the original C
// ACUnit library. The failing suite demonstrates what failures look like:
// a direct assertion, an assertion with a message, and a failure three
// helpers deep that unwinds only its own test.
package examples
