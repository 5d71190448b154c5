package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAndCheck(t *testing.T) {
	dir := t.TempDir()
	file := &GeneratedFile{Filename: "newstr_gen.go", Content: []byte("package ids\n\nvar a = 1\n")}

	drift, err := Check(file, dir)
	require.NoError(t, err)
	require.NotNil(t, drift)
	assert.True(t, drift.Missing)
	assert.Contains(t, drift.String(), "missing")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "_newstr_gen.unformatted.go"), []byte("junk"), 0o644))

	path, err := WriteFile(file, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "newstr_gen.go"), path)

	_, err = os.Stat(filepath.Join(dir, "_newstr_gen.unformatted.go"))
	assert.True(t, os.IsNotExist(err), "stale sidecar should be removed")

	drift, err = Check(file, dir)
	require.NoError(t, err)
	assert.Nil(t, drift)

	updated := &GeneratedFile{Filename: file.Filename, Content: []byte("package ids\n\nvar a = 2\n")}

	drift, err = Check(updated, dir)
	require.NoError(t, err)
	require.NotNil(t, drift)
	assert.False(t, drift.Missing)
	assert.Contains(t, drift.Diff, "-var a = 1\n")
	assert.Contains(t, drift.Diff, "+var a = 2\n")
	assert.Contains(t, drift.String(), "out of date")
}

func TestLineDiff(t *testing.T) {
	assert.Equal(t, " ...\n", LineDiff("a\nb\n", "a\nb\n"))

	diff := LineDiff("a\nb\nc\n", "a\nB\nc\n")
	assert.Equal(t, " ...\n-b\n+B\n ...\n", diff)
}
