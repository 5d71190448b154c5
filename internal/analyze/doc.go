// Package analyze loads the Go package a declaration file belongs to.
//
// It uses golang.org/x/tools/go/packages with go/types to collect the facts
// the generator needs:
//   - FuncInfo: package-level functions and their signatures
//   - the set of top-level names, to detect collisions with generated names
//
// The generator's own output file is parsed with its declarations dropped, so
// a stale or broken generated file never hides the user's functions.
package analyze
