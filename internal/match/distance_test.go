package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"isIdentifier", "isIdnetifier", 1},
		{"ab", "ba", 1},
		{"ca", "abc", 3},
		{"straße", "strasse", 2},
		{"名前", "名", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "distance is symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.0001)
	assert.InDelta(t, 1.0, Similarity("json", "json"), 0.0001)
	assert.InDelta(t, 0.75, Similarity("jsn", "json"), 0.0001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.0001)
	assert.InDelta(t, 0.5, Similarity("名前", "名"), 0.0001)
}

func TestNameScore(t *testing.T) {
	assert.InDelta(t, 1.0, NameScore("is_identifier", "isIdentifier"), 0.0001)
	assert.InDelta(t, 1.0, NameScore("isIdentifierValue", "parseIdentifier"), 0.0001)
	assert.Greater(t, NameScore("isIdentifer", "isIdentifierValue"), 0.8)
	assert.Less(t, NameScore("parseRequestID", "isIdentifierValue"), 0.5)
}

func BenchmarkNameScore(b *testing.B) {
	for b.Loop() {
		NameScore("validateCustomerIdentifier", "isCustomerIdentifierValue")
	}
}
