package newstr_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"newstr"
)

type record struct {
	ID   Identifier `json:"id" yaml:"id"`
	Code OnlyUpper  `json:"code" yaml:"code"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	in := record{
		ID:   newstr.Must[newstr.Checked[identifierRule]]("user_1"),
		Code: newstr.Must[upperOnly]("ABC"),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"user_1","code":"ABC"}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"id":"not valid!","code":"ABC"}`), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, newstr.ErrInvalid)
}

func TestJSON_MapKeys(t *testing.T) {
	t.Parallel()

	in := map[Identifier]int{newstr.Must[newstr.Checked[identifierRule]]("a"): 1}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))

	var out map[Identifier]int
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	in := record{
		ID:   newstr.Must[newstr.Checked[identifierRule]]("user_1"),
		Code: newstr.Must[upperOnly]("ABC"),
	}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "id: user_1\ncode: ABC\n", string(data))

	var out record
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	t.Run("rejects invalid scalar", func(t *testing.T) {
		t.Parallel()

		var r record
		err := yaml.Unmarshal([]byte("id: bad value\n"), &r)
		require.Error(t, err)
		assert.ErrorIs(t, err, newstr.ErrInvalid)
	})

	t.Run("rejects non scalar", func(t *testing.T) {
		t.Parallel()

		var r record
		err := yaml.Unmarshal([]byte("id: [a, b]\n"), &r)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot decode YAML node")
	})
}

func TestSQL(t *testing.T) {
	t.Parallel()

	id := newstr.Must[newstr.Checked[identifierRule]]("row_7")

	v, err := id.Value()
	require.NoError(t, err)
	assert.Equal(t, "row_7", v)

	var scanned Identifier
	require.NoError(t, scanned.Scan("row_7"))
	assert.Equal(t, id, scanned)

	require.NoError(t, scanned.Scan([]byte("row_8")))
	assert.Equal(t, "row_8", scanned.String())

	require.NoError(t, scanned.Scan(nil))
	assert.True(t, scanned.IsZero())

	assert.ErrorIs(t, scanned.Scan("row 9"), newstr.ErrInvalid)
	assert.Error(t, scanned.Scan(42))
}

func TestUnmarshalText_KeepsValueOnError(t *testing.T) {
	t.Parallel()

	id := newstr.Must[newstr.Checked[identifierRule]]("keep")
	require.Error(t, id.UnmarshalText([]byte("not ok")))
	assert.Equal(t, "keep", id.String())
}
