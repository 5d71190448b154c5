package newstr_test

import (
	"errors"
	"strings"

	"newstr"
)

type identifierRule struct{}

func (identifierRule) IsValid(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r != '_' && !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			return false
		}
	}

	return true
}

func (identifierRule) TypeName() string { return "Identifier" }

type Identifier = newstr.String[newstr.Checked[identifierRule]]

var errNotUpper = errors.New("contains non-uppercase characters")

type upperOnly struct{}

func (upperOnly) Parse(s string) (string, error) {
	if s == "" || strings.ToUpper(s) != s {
		return "", errNotUpper
	}

	return s, nil
}

type OnlyUpper = newstr.String[upperOnly]

// keyword trims and lowercases its input.
type keyword struct{}

func (keyword) Parse(s string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", newstr.ErrInvalid
	}

	return v, nil
}

type Keyword = newstr.String[keyword]

var isDigits = newstr.MatchRegexp(`^[0-9]+$`)

type digits struct{}

func (digits) IsValid(s string) bool { return isDigits(s) }

type Digits = newstr.String[newstr.Checked[digits]]
