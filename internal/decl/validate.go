package decl

import (
	"fmt"
	"go/token"
	"path/filepath"
	"slices"
	"strings"

	"newstr"
	"newstr/internal/common"
	"newstr/internal/diagnostic"
	"newstr/internal/match"
)

// Validate performs structural validation of a declaration file. It does not
// look at Go code; function references are only checked for syntax here and
// resolved later against the analysed package.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	if f.Version != DefaultVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q, want %q", f.Version, DefaultVersion), "", "version")
	}

	if f.Package != "" && (!token.IsIdentifier(f.Package) || f.Package == "_") {
		res.AddError("invalid_package", fmt.Sprintf("package name %q is not an identifier", f.Package), "", "package")
	}

	if filepath.Base(f.Output) != f.Output || !strings.HasSuffix(f.Output, ".go") || strings.HasSuffix(f.Output, "_test.go") {
		res.AddError("invalid_output", fmt.Sprintf("output %q must be a plain non-test .go file name", f.Output), "", "output")
	}

	if len(f.Types) == 0 {
		res.AddError("no_types", "no types declared", "", "types")
	}

	seen := map[string]struct{}{}

	for i := range f.Types {
		t := &f.Types[i]
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("types[%d]", i)
			res.AddError("missing_name", "type has no name", name, "name")
		} else if !common.IsExportedIdent(name) {
			res.AddError("invalid_name", fmt.Sprintf("type name %q must be an exported Go identifier", name), name, "name")
		}

		if _, ok := seen[t.Name]; ok && t.Name != "" {
			res.AddError("duplicate_type", fmt.Sprintf("type %q is declared more than once", t.Name), name, "name")
		}

		seen[t.Name] = struct{}{}

		validateStrategy(res, name, t)
		validateDerive(res, name, t)
	}

	return res
}

func validateStrategy(res *diagnostic.Diagnostics, name string, t *TypeDecl) {
	strategy, count := t.Strategy()

	switch {
	case count == 0:
		res.AddError("missing_strategy", "one of predicate, parse, regexp or expr is required", name, "")
		return
	case count > 1:
		res.AddError("multiple_strategies", "only one of predicate, parse, regexp or expr may be set", name, "")
		return
	}

	switch strategy {
	case StrategyPredicate, StrategyParse:
		if !isFuncRef(t.Source()) {
			res.AddError("invalid_function_ref",
				fmt.Sprintf("%q is neither a function name nor import/path.Func", t.Source()),
				name, strategy.Field())
		}
	case StrategyRegexp:
		if _, err := newstr.CompileRegexp(t.Regexp); err != nil {
			res.AddError("invalid_regexp", err.Error(), name, "regexp")
		} else if !strings.HasPrefix(t.Regexp, "^") || !strings.HasSuffix(t.Regexp, "$") {
			res.AddWarning("unanchored_regexp", "pattern is not anchored with ^...$ and matches substrings", name, "regexp")
		}
	case StrategyExpr:
		if _, err := newstr.CompileExpr(t.Expr); err != nil {
			res.AddError("invalid_expr", err.Error(), name, "expr")
		}
	}
}

func validateDerive(res *diagnostic.Diagnostics, name string, t *TypeDecl) {
	for _, c := range t.Derive {
		if !slices.Contains(KnownCapabilities, c) {
			res.AddError("unknown_capability",
				fmt.Sprintf("unknown capability %q, known: %s", c, strings.Join(KnownCapabilities, ", ")),
				name, "derive", match.SuggestStrings(c, KnownCapabilities, 2)...)
		}
	}

	for _, c := range common.Duplicates(t.Derive) {
		res.AddWarning("duplicate_capability", fmt.Sprintf("capability %q listed more than once", c), name, "derive")
	}

	if t.Derive.Contains(CapabilityJSON) && t.Derive.Contains(CapabilityText) {
		res.AddInfo("capability_implied", "json is implemented through text; listing both is redundant", name, "derive")
	}
}

// isFuncRef accepts "name" and "import/path.Name".
func isFuncRef(ref string) bool {
	pkgPath, fn := common.SplitQualified(ref)
	if !token.IsIdentifier(fn) {
		return false
	}

	if pkgPath == "" {
		return true
	}

	for _, elem := range strings.Split(pkgPath, "/") {
		if elem == "" || strings.ContainsAny(elem, " \t\\:") {
			return false
		}
	}

	return true
}
