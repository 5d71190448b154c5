package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and extracts function facts.
// Loaded imports are cached by path.
type Analyzer struct {
	cache map[string]*PackageInfo
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		cache: make(map[string]*PackageInfo),
	}
}

// LoadDir loads the package in dir. Declarations in files named skipFile are
// ignored; pass the generator's output file name.
//
// Type errors don't fail the load: user code commonly refers to the types the
// generator has not produced yet. Listing and syntax errors do.
func (a *Analyzer) LoadDir(dir, skipFile string) (*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			mode := parser.AllErrors | parser.ParseComments
			if skipFile != "" && filepath.Base(filename) == skipFile {
				mode = parser.PackageClauseOnly
			}

			return parser.ParseFile(fset, filename, src, mode)
		},
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %s: %w", dir, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}

	pkg := pkgs[0]
	if err := fatalErrors(pkg); err != nil {
		return nil, fmt.Errorf("package errors in %s: %w", dir, err)
	}

	info := a.processPackage(pkg, skipFile)
	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	} else {
		info.Dir = dir
	}

	return info, nil
}

// LoadImport loads the package with the given import path, for function
// references qualified with a package path.
func (a *Analyzer) LoadImport(path string) (*PackageInfo, error) {
	if info, ok := a.cache[path]; ok {
		return info, nil
	}

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes}

	pkgs, err := packages.Load(cfg, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", path, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package for %s, found %d", path, len(pkgs))
	}

	if err := fatalErrors(pkgs[0]); err != nil {
		return nil, fmt.Errorf("package errors in %s: %w", path, err)
	}

	if pkgs[0].Types == nil {
		return nil, fmt.Errorf("package %s has no type information", path)
	}

	info := a.processPackage(pkgs[0], "")
	a.cache[path] = info

	return info, nil
}

// fatalErrors joins the package errors that make its facts unreliable.
func fatalErrors(pkg *packages.Package) error {
	var errs []error

	for _, e := range pkg.Errors {
		if e.Kind == packages.TypeError {
			continue
		}

		errs = append(errs, e)
	}

	return errors.Join(errs...)
}

// processPackage extracts top-level names and functions from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package, skipFile string) *PackageInfo {
	info := NewPackageInfo(pkg.PkgPath, pkg.Name)
	info.Types = pkg.Types

	if pkg.Types == nil {
		return info
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		pos := token.Position{}
		if pkg.Fset != nil {
			pos = pkg.Fset.Position(obj.Pos())
		}

		if skipFile != "" && filepath.Base(pos.Filename) == skipFile {
			continue
		}

		info.Names[name] = pos

		fn, ok := obj.(*types.Func)
		if !ok {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			continue
		}

		info.Funcs[name] = &FuncInfo{
			Name:      name,
			PkgPath:   pkg.PkgPath,
			Exported:  fn.Exported(),
			Signature: sig,
			Pos:       pos,
		}
	}

	return info
}
