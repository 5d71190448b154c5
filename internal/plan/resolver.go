package plan

import (
	"fmt"
	"go/types"
	"strconv"
	"strings"

	"newstr/internal/analyze"
	"newstr/internal/common"
	"newstr/internal/decl"
	"newstr/internal/diagnostic"
	"newstr/internal/match"
)

// ImportLoader loads packages referenced by qualified function names.
type ImportLoader interface {
	LoadImport(path string) (*analyze.PackageInfo, error)
}

// Resolver resolves declarations against an analysed package.
type Resolver struct {
	pkg    *analyze.PackageInfo
	loader ImportLoader
}

// NewResolver creates a Resolver. A nil pkg skips every check that needs Go
// code: function references are then trusted as written.
func NewResolver(pkg *analyze.PackageInfo, loader ImportLoader) *Resolver {
	return &Resolver{pkg: pkg, loader: loader}
}

// Resolve builds the generation plan. The file is expected to have passed
// decl.Validate; problems found here are reported in Plan.Diagnostics.
func (r *Resolver) Resolve(f *decl.File) *Plan {
	p := &Plan{
		Output:  f.Output,
		Runtime: Import{Name: common.PkgAlias(f.Runtime), Path: f.Runtime},
	}

	r.resolvePackageName(p, f)

	if r.pkg == nil {
		p.Diagnostics.AddInfo("analysis_skipped", "function references were not checked", "", "")
	} else if r.pkg.Path == f.Runtime {
		p.Diagnostics.AddError("runtime_self_import",
			fmt.Sprintf("cannot generate into the runtime package %s", f.Runtime), "", "runtime")
	}

	for i := range f.Types {
		rt, ok := r.resolveType(&f.Types[i], p)
		if ok {
			p.Types = append(p.Types, rt)
		}
	}

	p.Imports = RequiredImports(p.Runtime, p.Types)
	for _, name := range conflicts(p.Imports) {
		p.Diagnostics.AddError("import_conflict",
			fmt.Sprintf("two imported packages are named %q", name), "", "")
	}

	return p
}

func (r *Resolver) resolvePackageName(p *Plan, f *decl.File) {
	switch {
	case r.pkg != nil && f.Package != "" && f.Package != r.pkg.Name:
		p.Diagnostics.AddError("package_mismatch",
			fmt.Sprintf("declared package %q but the directory holds package %q", f.Package, r.pkg.Name),
			"", "package")
	case f.Package != "":
		p.PackageName = f.Package
	case r.pkg != nil:
		p.PackageName = r.pkg.Name
	default:
		p.Diagnostics.AddError("package_unknown", "package must be declared when analysis is skipped", "", "package")
	}
}

func (r *Resolver) resolveType(td *decl.TypeDecl, p *Plan) (ResolvedType, bool) {
	strategy, _ := td.Strategy()
	rt := ResolvedType{
		Name:     td.Name,
		Strategy: strategy,
		Runtime:  p.Runtime.Name,
	}

	errorsBefore := len(p.Diagnostics.Errors)

	r.checkCollisions(td.Name, strategy, &p.Diagnostics)

	switch strategy {
	case decl.StrategyPredicate:
		call, ok := r.resolveCall(td, td.Predicate, match.ShapePredicate, &rt, &p.Diagnostics)
		if ok {
			rt.Check = call
		}
	case decl.StrategyParse:
		call, ok := r.resolveCall(td, td.Parse, match.ShapeParse, &rt, &p.Diagnostics)
		if ok {
			rt.ParseCall = call
		}
	case decl.StrategyRegexp:
		rt.MatcherVar = matcherVar(td.Name)
		rt.MatcherInit = fmt.Sprintf("%s.MatchRegexp(%s)", rt.Runtime, quote(td.Regexp))
		rt.Check = rt.MatcherVar + "(s)"
	case decl.StrategyExpr:
		rt.MatcherVar = matcherVar(td.Name)
		rt.MatcherInit = fmt.Sprintf("%s.MatchExpr(%s)", rt.Runtime, quote(td.Expr))
		rt.Check = rt.MatcherVar + "(s)"
	default:
		p.Diagnostics.AddError("missing_strategy", "no single validation strategy", td.Name, "")
	}

	for _, c := range td.Derive {
		switch c {
		case decl.CapabilityText, decl.CapabilityJSON:
			rt.Capabilities.Text = true
		case decl.CapabilityYAML:
			rt.Capabilities.YAML = true
		case decl.CapabilitySQL:
			rt.Capabilities.SQL = true
		}
	}

	rt.Doc = docLines(td, &p.Diagnostics)

	return rt, len(p.Diagnostics.Errors) == errorsBefore
}

// GeneratedNames lists the package-level identifiers emitted for a type.
func GeneratedNames(name string, strategy decl.Strategy) []string {
	names := []string{name, "IsValid" + name, "Parse" + name, "MustParse" + name}
	if strategy == decl.StrategyRegexp || strategy == decl.StrategyExpr {
		names = append(names, matcherVar(name))
	}

	return names
}

func (r *Resolver) checkCollisions(name string, strategy decl.Strategy, diags *diagnostic.Diagnostics) {
	for _, n := range GeneratedNames(name, strategy) {
		if pos, ok := r.pkg.Declares(n); ok {
			diags.AddError("name_collision",
				fmt.Sprintf("generated name %s is already declared at %s", n, pos), name, "name")
		}
	}
}

// resolveCall finds the referenced function, checks its signature and
// returns the call expression over the candidate s.
func (r *Resolver) resolveCall(
	td *decl.TypeDecl,
	ref string,
	shape match.Shape,
	rt *ResolvedType,
	diags *diagnostic.Diagnostics,
) (string, bool) {
	field := rt.Strategy.Field()
	pkgPath, name := common.SplitQualified(ref)

	if r.pkg != nil && pkgPath == r.pkg.Path {
		pkgPath = ""
	}

	if r.pkg == nil {
		callee := name
		if pkgPath != "" {
			imp := Import{Name: common.PkgAlias(pkgPath), Path: pkgPath}
			rt.FuncImport = &imp
			callee = imp.Name + "." + name
		}

		return callee + "(s)", true
	}

	owner := r.pkg
	callee := name

	if pkgPath != "" {
		if r.loader == nil {
			diags.AddError("package_not_found", fmt.Sprintf("cannot load package %s", pkgPath), td.Name, field)
			return "", false
		}

		loaded, err := r.loader.LoadImport(pkgPath)
		if err != nil {
			diags.AddError("package_not_found", err.Error(), td.Name, field)
			return "", false
		}

		owner = loaded

		imp := Import{Name: loaded.Name, Path: pkgPath}
		if loaded.Name != common.PkgAlias(pkgPath) {
			imp.Alias = loaded.Name
		}

		rt.FuncImport = &imp
		callee = loaded.Name + "." + name
	}

	fn := owner.Func(name)
	if fn == nil {
		diags.AddError("function_not_found",
			fmt.Sprintf("function %s not found in package %s", name, owner.Path),
			td.Name, field, match.Suggest(name, owner.FuncCandidates(owner == r.pkg), shape, 3)...)

		return "", false
	}

	if owner != r.pkg && !fn.Exported {
		diags.AddError("function_unexported", fmt.Sprintf("function %s of %s is not exported", name, owner.Path), td.Name, field)
		return "", false
	}

	res := match.ScoreSignature(fn.Signature, shape)
	if res.Compatibility == match.SignatureIncompatible {
		diags.AddError("signature_mismatch",
			fmt.Sprintf("%s has signature %s: %s; want %s", ref, res.Signature, res.Reason, shape),
			td.Name, field)

		return "", false
	}

	arg := "s"
	if !types.Identical(res.ParamType, types.Typ[types.String]) {
		conv, ok := r.spell(res.ParamType, owner, rt.FuncImport)
		if !ok {
			diags.AddError("unsupported_conversion",
				fmt.Sprintf("parameter type %s cannot be named in package %s", res.ParamType, r.pkg.Path),
				td.Name, field)

			return "", false
		}

		arg = conv + "(s)"
	}

	call := callee + "(" + arg + ")"

	if shape == match.ShapePredicate && !types.Identical(res.ResultType, types.Typ[types.Bool]) {
		call = "bool(" + call + ")"
	}

	if shape == match.ShapeParse {
		rt.ConvertResult = !types.Identical(res.ResultType, types.Typ[types.String])
	}

	if res.Compatibility == match.SignatureConvertible {
		diags.AddInfo("signature_converted",
			fmt.Sprintf("%s is called with conversions (%s)", ref, res.Signature), td.Name, field)
	}

	return call, true
}

// spell writes t as seen from the target package. Types of the function's own
// package are qualified with its import name; any other package fails.
func (r *Resolver) spell(t types.Type, owner *analyze.PackageInfo, imp *Import) (string, bool) {
	ok := true
	s := types.TypeString(t, func(p *types.Package) string {
		switch {
		case p.Path() == r.pkg.Path:
			return ""
		case imp != nil && p.Path() == owner.Path:
			return imp.Name
		default:
			ok = false
			return p.Name()
		}
	})

	return s, ok
}

func docLines(td *decl.TypeDecl, diags *diagnostic.Diagnostics) []string {
	if td.Doc != "" {
		if !strings.HasPrefix(td.Doc, td.Name+" ") {
			diags.AddWarning("doc_not_prefixed", "doc comment should start with the type name", td.Name, "doc")
		}

		return strings.Split(td.Doc, "\n")
	}

	switch {
	case td.Predicate != "":
		return []string{td.Name + " is a validated string accepted by " + td.Predicate + "."}
	case td.Parse != "":
		return []string{td.Name + " is a validated string holding the result of " + td.Parse + "."}
	case td.Regexp != "":
		return []string{td.Name + " is a validated string matching the pattern " + oneLine(td.Regexp) + "."}
	case td.Expr != "":
		return []string{td.Name + " is a validated string satisfying " + oneLine(td.Expr) + "."}
	default:
		return []string{td.Name + " is a validated string."}
	}
}

// oneLine collapses whitespace runs, newlines included, into single spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func matcherVar(name string) string {
	return "match" + name
}

// quote returns a Go string literal, raw when possible.
func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}

	return strconv.Quote(s)
}
