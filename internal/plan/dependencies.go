package plan

import (
	"sort"
	"strings"

	"newstr/internal/common"
)

// Imports every generated file needs, whatever was declared.
var baseImports = []Import{
	{Name: "fmt", Path: "fmt"},
	{Name: "maphash", Path: "hash/maphash"},
	{Name: "strings", Path: "strings"},
}

// RequiredImports returns the imports a file holding the given types needs:
// the runtime package, the standard packages used by every type, the
// packages used by the requested capabilities and those of qualified
// function references. The result is sorted by Group, then by path.
func RequiredImports(runtime Import, types []ResolvedType) []Import {
	set := map[string]Import{}
	add := func(imp Import) {
		if _, ok := set[imp.Path]; !ok {
			set[imp.Path] = imp
		}
	}

	for _, imp := range baseImports {
		add(imp)
	}

	add(runtime)

	for _, t := range types {
		if t.Capabilities.Text {
			add(Import{Name: "encoding", Path: "encoding"})
		}

		if t.Capabilities.YAML {
			add(Import{Name: "yaml", Path: "gopkg.in/yaml.v3"})
		}

		if t.Capabilities.SQL {
			add(Import{Name: "sql", Path: "database/sql"})
			add(Import{Name: "driver", Path: "database/sql/driver"})
		}

		if t.FuncImport != nil {
			add(*t.FuncImport)
		}
	}

	out := make([]Import, 0, len(set))
	for _, imp := range set {
		out = append(out, imp)
	}

	sort.Slice(out, func(i, j int) bool {
		gi, gj := out[i].Group(), out[j].Group()
		if gi != gj {
			return gi < gj
		}

		return out[i].Path < out[j].Path
	})

	return out
}

// IsStd reports whether the import belongs to the standard library.
func (i Import) IsStd() bool {
	return common.IsStdPkg(i.Path)
}

// Import groups, in the order they appear in an import block.
const (
	GroupStd = iota
	GroupThirdParty
	GroupLocal // dotless module paths such as "newstr"
)

// Group returns the import block group of the import. Dotless non-standard
// paths get a group of their own, the way goimports -local places them.
func (i Import) Group() int {
	first, _, _ := strings.Cut(i.Path, "/")

	switch {
	case i.IsStd():
		return GroupStd
	case strings.Contains(first, "."):
		return GroupThirdParty
	default:
		return GroupLocal
	}
}

// Spec returns the import as written in an import block.
func (i Import) Spec() string {
	if i.Alias != "" {
		return i.Alias + ` "` + i.Path + `"`
	}

	return `"` + i.Path + `"`
}

// conflicts returns the qualifier names used by more than one path.
func conflicts(imports []Import) []string {
	byName := map[string]string{}
	seen := map[string]bool{}

	var out []string

	for _, imp := range imports {
		if prev, ok := byName[imp.Name]; ok && prev != imp.Path && !seen[imp.Name] {
			seen[imp.Name] = true
			out = append(out, imp.Name)
		}

		byName[imp.Name] = imp.Path
	}

	return out
}
