// Package diagnostic provides structured errors, warnings and notes produced
// while validating declarations and resolving them against Go packages.
//
// Key capabilities:
//   - Coded diagnostics tied to a declared type and field
//   - "did you mean" suggestions for misspelled functions and capabilities
//   - Colored terminal output
package diagnostic
