// Package gen renders a resolved plan into Go source.
//
// One file is produced per declaration file, using text/template and
// formatted with golang.org/x/tools/imports in format-only mode. Every
// declared type gets:
//   - an unexported-field struct wrapping the text
//   - IsValidT, ParseT and MustParseT constructors
//   - String, GoString, Len, IsZero, Equal, Compare, Less and Hash
//   - the derived text, YAML and SQL adapters
//
// Check compares rendered files with the ones on disk for -check runs.
package gen
