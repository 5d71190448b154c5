package common

import "go/token"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// IsExportedIdent reports whether s is an exported Go identifier.
func IsExportedIdent(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}
