package newstr

import (
	"reflect"
)

// Policy validates a candidate and returns the text to store.
// Implementations must be stateless: the zero value of the type is used.
type Policy interface {
	Parse(s string) (string, error)
}

// Predicate reports whether a candidate is acceptable as is.
// Implementations must be stateless: the zero value of the type is used.
type Predicate interface {
	IsValid(s string) bool
}

// Checked turns a Predicate into a Policy that stores accepted text verbatim.
type Checked[P Predicate] struct{}

// Parse returns s unchanged when the predicate accepts it.
func (Checked[P]) Parse(s string) (string, error) {
	var p P
	if !p.IsValid(s) {
		return "", ErrInvalid
	}

	return s, nil
}

// IsValid calls the wrapped predicate directly.
func (Checked[P]) IsValid(s string) bool {
	var p P
	return p.IsValid(s)
}

// TypeName reports the name of the wrapped predicate.
func (Checked[P]) TypeName() string {
	return nameOf[P]()
}

// nameOf returns the name used for T in error messages. A type may choose it
// by implementing TypeName.
func nameOf[T any]() string {
	var v T
	if n, ok := any(v).(interface{ TypeName() string }); ok {
		return n.TypeName()
	}

	t := reflect.TypeFor[T]()
	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}
