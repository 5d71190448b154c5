package plan

import (
	"newstr/internal/decl"
	"newstr/internal/diagnostic"
)

// Plan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// PackageName is the package clause of the generated file.
	PackageName string
	// Output is the generated file name.
	Output string
	// Runtime is the import of the newstr runtime package.
	Runtime Import
	// Types are the resolved declarations, in declaration order.
	Types []ResolvedType
	// Imports is the import set of the generated file.
	Imports []Import
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedType is a declaration ready to be rendered.
type ResolvedType struct {
	Name string
	// Doc holds the type comment, one entry per line, without "// ".
	Doc      []string
	Strategy decl.Strategy
	// Runtime is the qualifier of the runtime package.
	Runtime string

	// Check is a boolean expression over the candidate s (non-parse modes).
	Check string
	// ParseCall is a call over s returning the parsed text and an error.
	ParseCall string
	// ConvertResult is set when the parse result is a defined string type.
	ConvertResult bool

	// MatcherVar and MatcherInit declare the package-level compiled
	// regexp or expression predicate.
	MatcherVar  string
	MatcherInit string

	Capabilities Capabilities

	// FuncImport is the import needed by a qualified function reference.
	FuncImport *Import
}

// Capabilities are the optional method sets requested with derive.
type Capabilities struct {
	Text bool // MarshalText/UnmarshalText, used by encoding/json too
	YAML bool // MarshalYAML/UnmarshalYAML
	SQL  bool // Value/Scan
}

// Import is one import of the generated file.
type Import struct {
	// Name is the identifier the generated code qualifies with.
	Name string
	// Alias is set when Name differs from the imported package's own name.
	Alias string
	Path  string
}
