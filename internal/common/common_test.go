package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitQualified(t *testing.T) {
	tests := []struct {
		ref      string
		wantPath string
		wantName string
	}{
		{"isValid", "", "isValid"},
		{"unicode/utf8.ValidString", "unicode/utf8", "ValidString"},
		{"strings.EqualFold", "strings", "EqualFold"},
		{"gopkg.in/yaml.v3.Marshal", "gopkg.in/yaml.v3", "Marshal"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			p, n := SplitQualified(tt.ref)
			assert.Equal(t, tt.wantPath, p)
			assert.Equal(t, tt.wantName, n)
		})
	}
}

func TestIsStdPkg(t *testing.T) {
	assert.True(t, IsStdPkg("fmt"))
	assert.True(t, IsStdPkg("database/sql/driver"))
	assert.False(t, IsStdPkg("gopkg.in/yaml.v3"))
	assert.False(t, IsStdPkg("github.com/google/uuid"))
	assert.False(t, IsStdPkg(""))
	assert.False(t, IsStdPkg("newstr"))
	assert.False(t, IsStdPkg("newstr/internal/common"))
}

func TestIsExportedIdent(t *testing.T) {
	assert.True(t, IsExportedIdent("Identifier"))
	assert.False(t, IsExportedIdent("identifier"))
	assert.False(t, IsExportedIdent("Bad-Name"))
	assert.False(t, IsExportedIdent("type"))
}

func TestDuplicates(t *testing.T) {
	assert.Empty(t, Duplicates([]string{"a", "b"}))
	assert.Equal(t, []string{"b", "a"}, Duplicates([]string{"a", "b", "b", "a", "b"}))
}
