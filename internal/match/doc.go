// Package match provides name normalization, edit distance, function
// signature scoring and candidate ranking used to check declarations and to
// suggest fixes for misspelled references.
//
// Key functions:
//   - Tokens, Normalize and Stem: identifier normalization for fuzzy matching
//   - Distance and NameScore: edit distance and name similarity
//   - ScoreSignature: checks a go/types signature against a predicate or parse shape
//   - Suggest: ranks known names against an unknown one
package match
