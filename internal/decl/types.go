package decl

// File is the root of a declaration file.
type File struct {
	// Version is the schema version; only "1" exists.
	Version string `yaml:"version"`
	// Package overrides the package clause of the generated file.
	Package string `yaml:"package,omitempty"`
	// Output is the generated file name, relative to the package directory.
	Output string `yaml:"output,omitempty"`
	// Runtime is the import path of the newstr runtime package.
	Runtime string `yaml:"runtime,omitempty"`
	// Types are generated in declaration order.
	Types []TypeDecl `yaml:"types"`
}

// TypeDecl declares one validated string type.
type TypeDecl struct {
	Name string `yaml:"name"`
	// Doc replaces the generated type comment.
	Doc string `yaml:"doc,omitempty"`

	Predicate string `yaml:"predicate,omitempty"`
	Parse     string `yaml:"parse,omitempty"`
	Regexp    string `yaml:"regexp,omitempty"`
	Expr      string `yaml:"expr,omitempty"`

	Derive StringOrArray `yaml:"derive,omitempty"`
}

// StringOrArray accepts either a single string or a list in YAML.
type StringOrArray []string

// Capability names accepted by derive.
const (
	CapabilityText = "text"
	CapabilityJSON = "json"
	CapabilityYAML = "yaml"
	CapabilitySQL  = "sql"
)

// KnownCapabilities lists every accepted derive name.
var KnownCapabilities = []string{CapabilityText, CapabilityJSON, CapabilityYAML, CapabilitySQL}

// Defaults applied by Parse.
const (
	DefaultVersion = "1"
	DefaultOutput  = "newstr_gen.go"
	DefaultRuntime = "newstr"
)

// Strategy returns the validation strategy selected by the declaration and
// how many strategies are set. A valid declaration sets exactly one.
func (t *TypeDecl) Strategy() (Strategy, int) {
	var (
		s     Strategy
		count int
	)

	if t.Predicate != "" {
		s, count = StrategyPredicate, count+1
	}

	if t.Parse != "" {
		s, count = StrategyParse, count+1
	}

	if t.Regexp != "" {
		s, count = StrategyRegexp, count+1
	}

	if t.Expr != "" {
		s, count = StrategyExpr, count+1
	}

	if count != 1 {
		return StrategyNone, count
	}

	return s, count
}

// Source returns the text of the selected strategy: a function reference,
// a pattern or an expression.
func (t *TypeDecl) Source() string {
	s, _ := t.Strategy()
	switch s {
	case StrategyPredicate:
		return t.Predicate
	case StrategyParse:
		return t.Parse
	case StrategyRegexp:
		return t.Regexp
	case StrategyExpr:
		return t.Expr
	default:
		return ""
	}
}
