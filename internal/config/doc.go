// Package config loads acunit configuration files.
//
// A configuration file is YAML (.yaml, .yml) or CUE (.cue). Both forms are
// validated against the embedded CUE schema in schema.cue, so a typo in a key
// or an unknown output format is reported with the file (and, for CUE, the
// position) before any test runs:
//
//	format: json
//	color: never
//	filter: "test_cart_*"
//	suites: [simple_asserts, failing]
//	history:
//	  enabled: true
//	  path: .acunit/history.db
//
// Settings absent from the file keep their Default values. Command-line flags
// override both.
package config
