package match

import (
	"go/types"
	"sort"
)

// Named is a name that may be suggested, with the function signature behind
// it when the name refers to a function.
type Named struct {
	Name      string
	Signature *types.Signature
}

// Candidate represents a potential replacement for an unknown name.
type Candidate struct {
	Name string

	// Scoring components
	NameScore float64         // NameScore of the two names (0-1)
	SigCompat SignatureResult // Signature fit, when a shape was requested

	// Combined score for ranking (higher is better)
	CombinedScore float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// DefaultSuggestThreshold is the minimum name similarity Suggest reports.
const DefaultSuggestThreshold = 0.5

// RankCandidates scores every name against target and returns them sorted by
// combined score (descending). A zero shape ranks by name only.
func RankCandidates(target string, names []Named, shape Shape) CandidateList {
	var candidates CandidateList

	for _, n := range names {
		if n.Name == target {
			continue
		}

		nameScore := NameScore(target, n.Name)

		c := Candidate{
			Name:          n.Name,
			NameScore:     nameScore,
			CombinedScore: nameScore,
		}

		if shape != 0 {
			c.SigCompat = ScoreSignature(n.Signature, shape)
			c.CombinedScore = calculateCombinedScore(nameScore, c.SigCompat.Compatibility)
		}

		candidates = append(candidates, c)
	}

	// Sort by combined score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit names close to target, best first. A fitting
// signature improves the rank but never makes a dissimilar name a suggestion.
func Suggest(target string, names []Named, shape Shape, limit int) []string {
	var out []string

	for _, c := range RankCandidates(target, names, shape) {
		if len(out) == limit {
			break
		}

		if c.NameScore < DefaultSuggestThreshold {
			continue
		}

		out = append(out, c.Name)
	}

	return out
}

// SuggestStrings is Suggest for plain names.
func SuggestStrings(target string, names []string, limit int) []string {
	named := make([]Named, 0, len(names))
	for _, n := range names {
		named = append(named, Named{Name: n})
	}

	return Suggest(target, named, 0, limit)
}

// calculateCombinedScore computes a combined score from name similarity and
// signature compatibility.
// Weights:
//   - Name similarity: 70% (0.0-0.7)
//   - Signature compatibility: 30% (0.0-0.3)
func calculateCombinedScore(nameScore float64, sigCompat SignatureCompatibility) float64 {
	const (
		nameWeight = 0.7
		sigWeight  = 0.3
	)

	var sigScore float64
	switch sigCompat {
	case SignatureIdentical:
		sigScore = 1.0
	case SignatureConvertible:
		sigScore = 0.7
	case SignatureIncompatible:
		sigScore = 0.0
	}

	return nameScore*nameWeight + sigScore*sigWeight
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by combined score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].CombinedScore != c[j].CombinedScore {
		return c[i].CombinedScore > c[j].CombinedScore
	}

	return c[i].Name < c[j].Name
}
