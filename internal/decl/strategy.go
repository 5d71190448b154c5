package decl

//go:generate go tool stringer -type=Strategy -trimprefix=Strategy -output=strategy_string.go

// Strategy selects how a declared type validates its input.
type Strategy int

const (
	StrategyNone      Strategy = iota // no or several strategies set
	StrategyPredicate                 // func(string) bool, stored verbatim
	StrategyParse                     // func(string) (string, error), stores the result
	StrategyRegexp                    // regular expression match, stored verbatim
	StrategyExpr                      // expr-lang boolean expression, stored verbatim
)

// IsParseMode reports whether the stored text comes from a parse function.
func (s Strategy) IsParseMode() bool {
	return s == StrategyParse
}

// Field returns the declaration key of the strategy.
func (s Strategy) Field() string {
	switch s {
	case StrategyPredicate:
		return "predicate"
	case StrategyParse:
		return "parse"
	case StrategyRegexp:
		return "regexp"
	case StrategyExpr:
		return "expr"
	default:
		return ""
	}
}
