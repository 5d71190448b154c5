package newstr_test

import (
	"errors"
	"hash/maphash"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newstr"
)

func TestIsValid_Identifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"hi!", false},
		{"hello world", false},
		{"9.99", false},
		{"hi", true},
		{"hello_world", true},
		{"_", true},
		{"ünicode", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, newstr.IsValid[newstr.Checked[identifierRule]](tt.input))

			_, err := newstr.New[newstr.Checked[identifierRule]](tt.input)
			assert.Equal(t, tt.want, err == nil, "New must agree with IsValid")
		})
	}
}

func TestNew_PredicateModeKeepsInput(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"hi", "hello_world"} {
		id, err := newstr.New[newstr.Checked[identifierRule]](s)
		require.NoError(t, err)
		assert.Equal(t, s, id.String())
		assert.Equal(t, len(s), id.Len())
		assert.False(t, id.IsZero())
	}
}

func TestNew_Rejection(t *testing.T) {
	t.Parallel()

	t.Run("predicate mode", func(t *testing.T) {
		t.Parallel()

		_, err := newstr.New[newstr.Checked[identifierRule]]("hi!")
		require.Error(t, err)
		assert.ErrorIs(t, err, newstr.ErrInvalid)

		var pe *newstr.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "Identifier", pe.Type)
		assert.Equal(t, "hi!", pe.Input)
		assert.NoError(t, pe.Err)
		assert.Equal(t, `newstr: invalid value "hi!" for type Identifier`, err.Error())
	})

	t.Run("parse mode threads the cause", func(t *testing.T) {
		t.Parallel()

		_, err := newstr.New[upperOnly]("hello")
		require.Error(t, err)
		assert.ErrorIs(t, err, newstr.ErrInvalid)
		assert.ErrorIs(t, err, errNotUpper)
		assert.Contains(t, err.Error(), "for type upperOnly: contains non-uppercase characters")
	})

	t.Run("parse mode returning ErrInvalid carries no cause", func(t *testing.T) {
		t.Parallel()

		_, err := newstr.New[keyword]("   ")

		var pe *newstr.ParseError
		require.ErrorAs(t, err, &pe)
		assert.NoError(t, pe.Err)
	})
}

func TestNew_ParseModeStoresParsedText(t *testing.T) {
	t.Parallel()

	kw, err := newstr.New[keyword]("  SELECT ")
	require.NoError(t, err)
	assert.Equal(t, "select", kw.String())

	again, err := newstr.New[keyword](kw.String())
	require.NoError(t, err)
	assert.Equal(t, kw, again)

	assert.True(t, newstr.IsValid[upperOnly]("HELLO"))
	assert.False(t, newstr.IsValid[upperOnly]("hello"))
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HELLO", newstr.Must[upperOnly]("HELLO").String())
	assert.Panics(t, func() { newstr.Must[upperOnly]("hello") })
}

func TestEqualityOrderingHashing(t *testing.T) {
	t.Parallel()

	a := newstr.Must[newstr.Checked[identifierRule]]("alpha")
	a2 := newstr.Must[newstr.Checked[identifierRule]]("alpha")
	b := newstr.Must[newstr.Checked[identifierRule]]("beta")

	assert.True(t, a == a2)
	assert.True(t, a.Equal(a2))
	assert.False(t, a.Equal(b))

	assert.Equal(t, 0, a.Compare(a2))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))

	seed := maphash.MakeSeed()
	assert.Equal(t, a.Hash(seed), a2.Hash(seed))

	set := map[Identifier]int{a: 1}
	set[a2]++
	assert.Len(t, set, 1)
	assert.Equal(t, 2, set[a])

	ids := []Identifier{b, a, newstr.Must[newstr.Checked[identifierRule]]("Zed")}
	slices.SortFunc(ids, newstr.Compare)
	assert.Equal(t, []string{"Zed", "alpha", "beta"}, []string{ids[0].String(), ids[1].String(), ids[2].String()})
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	id := newstr.Must[newstr.Checked[identifierRule]]("hello_world")
	assert.Equal(t, "hello_world", id.String())
	assert.Equal(t, `Identifier("hello_world")`, id.GoString())

	var up OnlyUpper
	assert.True(t, up.IsZero())
	assert.Equal(t, `upperOnly("")`, up.GoString())
}

func TestRegexpPredicate(t *testing.T) {
	t.Parallel()

	assert.True(t, newstr.IsValid[newstr.Checked[digits]]("0123"))
	assert.False(t, newstr.IsValid[newstr.Checked[digits]]("12a"))

	_, err := newstr.New[newstr.Checked[digits]]("")
	var pe *newstr.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "digits", pe.Type)
}
