package newstr

import (
	"fmt"
	"regexp"

	"github.com/expr-lang/expr"
)

// CompileRegexp returns a predicate matching s against the regular expression.
// The expression is not anchored implicitly.
func CompileRegexp(pattern string) (func(string) bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling regexp %q: %w", pattern, err)
	}

	return re.MatchString, nil
}

// MatchRegexp is like CompileRegexp but panics on a bad pattern. It is meant
// for package-level variables.
func MatchRegexp(pattern string) func(string) bool {
	fn, err := CompileRegexp(pattern)
	if err != nil {
		panic(err)
	}

	return fn
}

// CompileExpr returns a predicate evaluating a boolean expr-lang expression.
// The candidate is bound to the variable value, e.g.
//
//	len(value) > 0 && value matches "^[a-z]+$"
//
// An evaluation error counts as rejection.
func CompileExpr(source string) (func(string) bool, error) {
	program, err := expr.Compile(source, expr.Env(map[string]any{"value": ""}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling expression %q: %w", source, err)
	}

	return func(s string) bool {
		out, err := expr.Run(program, map[string]any{"value": s})
		if err != nil {
			return false
		}

		ok, _ := out.(bool)

		return ok
	}, nil
}

// MatchExpr is like CompileExpr but panics on a bad expression.
func MatchExpr(source string) func(string) bool {
	fn, err := CompileExpr(source)
	if err != nil {
		panic(err)
	}

	return fn
}
