package newstr

import (
	"fmt"
	"hash/maphash"
	"strings"
)

// String is a text value accepted by the policy P.
//
// The wrapped text cannot be changed after construction. The zero value holds
// the empty string regardless of P and is reported by IsZero.
type String[P Policy] struct {
	value string
}

// New validates s with P and wraps the resulting text.
func New[P Policy](s string) (String[P], error) {
	var p P

	v, err := p.Parse(s)
	if err != nil {
		return String[P]{}, NewParseError(nameOf[P](), s, err)
	}

	return String[P]{value: v}, nil
}

// Must is like New but panics when s is rejected.
func Must[P Policy](s string) String[P] {
	v, err := New[P](s)
	if err != nil {
		panic(err)
	}

	return v
}

// IsValid reports whether New would accept s.
func IsValid[P Policy](s string) bool {
	var p P
	if pred, ok := any(p).(Predicate); ok {
		return pred.IsValid(s)
	}

	_, err := p.Parse(s)

	return err == nil
}

// Compare orders two values by their text. It fits slices.SortFunc.
func Compare[P Policy](a, b String[P]) int {
	return a.Compare(b)
}

// String returns the wrapped text.
func (s String[P]) String() string {
	return s.value
}

// GoString formats the value as TypeName("text").
func (s String[P]) GoString() string {
	return fmt.Sprintf("%s(%q)", nameOf[P](), s.value)
}

// Len returns the length of the wrapped text in bytes.
func (s String[P]) Len() int {
	return len(s.value)
}

// IsZero reports whether s is the zero value.
func (s String[P]) IsZero() bool {
	return s.value == ""
}

// Equal reports whether s and other wrap the same text.
func (s String[P]) Equal(other String[P]) bool {
	return s.value == other.value
}

// Compare orders values by their wrapped text, like strings.Compare.
func (s String[P]) Compare(other String[P]) int {
	return strings.Compare(s.value, other.value)
}

// Less reports whether s sorts before other.
func (s String[P]) Less(other String[P]) bool {
	return s.value < other.value
}

// Hash returns a hash of the wrapped text. Equal values hash equally for the
// same seed.
func (s String[P]) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, s.value)
}
