package match

import (
	"slices"
	"strings"
	"unicode"
)

// Prefixes and suffixes validator functions are commonly named with.
// Longer alternatives come first.
var (
	stemPrefixes = []string{"validate", "parse", "check", "valid", "must", "is"}
	stemSuffixes = []string{"value", "string", "str"}
)

// Tokens splits an identifier into lower-case words at underscores, dashes,
// spaces and case changes. Acronyms stay whole: "parseHTTPHeader" gives
// parse, http, header.
func Tokens(s string) []string {
	var (
		tokens []string
		word   []rune
	)

	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' {
			flush()
			continue
		}

		if i > 0 && len(word) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			// "fooBar" splits before B, "HTTPHeader" before H
			if !unicode.IsUpper(prev) || nextLower {
				flush()
			}
		}

		word = append(word, r)
	}

	flush()

	return tokens
}

// Normalize joins the tokens of s, so that "is_identifier" and
// "isIdentifier" compare equal.
func Normalize(s string) string {
	return strings.Join(Tokens(s), "")
}

// Stem is Normalize without one leading verb (is, parse, validate...) and one
// trailing noun (value, string, str), so that "isIdentifierValue" and
// "parseIdentifier" both reduce to "identifier". A single word is kept.
func Stem(s string) string {
	tokens := Tokens(s)

	if len(tokens) > 1 && slices.Contains(stemPrefixes, tokens[0]) {
		tokens = tokens[1:]
	}

	if len(tokens) > 1 && slices.Contains(stemSuffixes, tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}

	return strings.Join(tokens, "")
}
