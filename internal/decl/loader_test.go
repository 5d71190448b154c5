package decl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
package: identifiers
types:
  - name: Identifier
    predicate: isIdentifierValue
    derive: [JSON, yaml, " sql "]
    doc: |
      Identifier is an ASCII identifier.
  - name: OnlyUpperCase
    parse: parseUppercaseOnly
  - name: Integer
    regexp: '^[0-9]+$'
    derive: text
  - name: ShortCode
    expr: 'len(value) == 6'
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "identifiers", f.Package)
	assert.Equal(t, DefaultOutput, f.Output)
	assert.Equal(t, DefaultRuntime, f.Runtime)
	require.Len(t, f.Types, 4)

	id := f.Types[0]
	assert.Equal(t, "Identifier", id.Name)
	assert.Equal(t, "Identifier is an ASCII identifier.", id.Doc)
	assert.Equal(t, StringOrArray{"json", "yaml", "sql"}, id.Derive)

	s, n := id.Strategy()
	assert.Equal(t, StrategyPredicate, s)
	assert.Equal(t, 1, n)
	assert.Equal(t, "isIdentifierValue", id.Source())

	s, _ = f.Types[1].Strategy()
	assert.Equal(t, StrategyParse, s)
	assert.True(t, s.IsParseMode())

	assert.Equal(t, StringOrArray{"text"}, f.Types[2].Derive)
	assert.Equal(t, "^[0-9]+$", f.Types[2].Source())

	s, _ = f.Types[3].Strategy()
	assert.Equal(t, StrategyExpr, s)
	assert.Equal(t, "expr", s.Field())
	assert.Empty(t, f.Types[3].Derive)
}

func TestParse_TrimsBlockScalars(t *testing.T) {
	f, err := Parse([]byte(`
types:
  - name: ShortCode
    expr: |
      len(value) == 6
  - name: Digits
    regexp: >
      ^[0-9]+$
`))
	require.NoError(t, err)
	require.Len(t, f.Types, 2)

	assert.Equal(t, "len(value) == 6", f.Types[0].Expr)
	assert.Equal(t, "^[0-9]+$", f.Types[1].Regexp)
	assert.False(t, Validate(f).HasErrors())
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(`
types:
  - name: Identifier
    predicat: isIdentifierValue
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "predicat")
}

func TestParse_BadDerive(t *testing.T) {
	_, err := Parse([]byte(`
types:
  - name: Identifier
    predicate: isIdentifierValue
    derive: {a: b}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string or array")
}

func TestLoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newstr.yaml")

	f := Single(TypeDecl{Name: "Token", Predicate: "isToken", Derive: StringOrArray{"text"}})
	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "derive: text")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestStrategy(t *testing.T) {
	td := TypeDecl{Name: "X"}
	s, n := td.Strategy()
	assert.Equal(t, StrategyNone, s)
	assert.Equal(t, 0, n)
	assert.Empty(t, td.Source())

	td = TypeDecl{Name: "X", Predicate: "a", Regexp: "b"}
	s, n = td.Strategy()
	assert.Equal(t, StrategyNone, s)
	assert.Equal(t, 2, n)

	assert.Equal(t, "Predicate", StrategyPredicate.String())
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}
