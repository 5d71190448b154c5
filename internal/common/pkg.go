package common

import (
	"go/build"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

var stdPkgs sync.Map // import path -> bool

// IsStdPkg reports whether pkgPath is a standard library package: its first
// element has no dot and the package directory exists under GOROOT/src.
// Dotless module paths such as "newstr" are not standard. Without a known
// GOROOT only the dot rule applies.
func IsStdPkg(pkgPath string) bool {
	first, _, _ := strings.Cut(pkgPath, "/")
	if pkgPath == "" || strings.Contains(first, ".") {
		return false
	}

	if v, ok := stdPkgs.Load(pkgPath); ok {
		return v.(bool)
	}

	std := true
	if goroot := build.Default.GOROOT; goroot != "" {
		fi, err := os.Stat(filepath.Join(goroot, "src", filepath.FromSlash(pkgPath)))
		std = err == nil && fi.IsDir()
	}

	stdPkgs.Store(pkgPath, std)

	return std
}

// SplitQualified splits "import/path.Name" into its import path and name.
// An unqualified name yields an empty path.
func SplitQualified(ref string) (pkgPath, name string) {
	i := strings.LastIndex(ref, ".")
	if i < 0 {
		return "", ref
	}

	// names never contain dots: "gopkg.in/yaml.v3.Marshal" splits at the last one
	return ref[:i], ref[i+1:]
}
