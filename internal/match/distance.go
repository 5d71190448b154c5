package match

// Distance returns the optimal string alignment distance between a and b:
// the number of rune insertions, deletions, substitutions and adjacent
// transpositions needed to turn one into the other. "isIdnetifier" is one
// edit away from "isIdentifier".
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// three rows: two back for transpositions, previous and current
	back := make([]int, len(rb)+1)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			d := min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)

			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d = min(d, back[j-2]+1)
			}

			curr[j] = d
		}

		back, prev, curr = prev, curr, back
	}

	return prev[len(rb)]
}

// Similarity maps Distance to [0, 1], where 1 means equal.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}

// NameScore compares two identifiers after normalization, and again after
// stripping validator affixes, and returns the better similarity.
func NameScore(a, b string) float64 {
	return max(Similarity(Normalize(a), Normalize(b)), Similarity(Stem(a), Stem(b)))
}
