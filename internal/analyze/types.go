package analyze

import (
	"go/token"
	"go/types"
	"sort"

	"newstr/internal/match"
)

// PackageInfo describes a loaded package.
type PackageInfo struct {
	Path  string // import path, e.g. "newstr/examples/identifiers"
	Name  string // package name
	Dir   string // directory of the package sources, if known
	Funcs map[string]*FuncInfo
	// Names holds every top-level identifier and where it is declared.
	Names map[string]token.Position
	// Types is the type-checked package, used to qualify type names.
	Types *types.Package
}

// FuncInfo describes a package-level function.
type FuncInfo struct {
	Name      string
	PkgPath   string
	Exported  bool
	Signature *types.Signature
	Pos       token.Position
}

// NewPackageInfo creates an empty PackageInfo.
func NewPackageInfo(path, name string) *PackageInfo {
	return &PackageInfo{
		Path:  path,
		Name:  name,
		Funcs: make(map[string]*FuncInfo),
		Names: make(map[string]token.Position),
	}
}

// Func returns the function with the given name or nil.
func (p *PackageInfo) Func(name string) *FuncInfo {
	if p == nil {
		return nil
	}

	return p.Funcs[name]
}

// Declares reports whether name is a top-level identifier of the package.
func (p *PackageInfo) Declares(name string) (token.Position, bool) {
	if p == nil {
		return token.Position{}, false
	}

	pos, ok := p.Names[name]

	return pos, ok
}

// FuncCandidates lists the package functions for suggestions, sorted by name.
// Unexported functions are only listed for the package itself.
func (p *PackageInfo) FuncCandidates(includeUnexported bool) []match.Named {
	if p == nil {
		return nil
	}

	var out []match.Named

	for _, fn := range p.Funcs {
		if !fn.Exported && !includeUnexported {
			continue
		}

		out = append(out, match.Named{Name: fn.Name, Signature: fn.Signature})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
