package common

// Duplicates returns the elements that occur more than once, each reported
// once, in order of their second occurrence.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen := make(map[E]int, len(s))

	var out []E

	for _, v := range s {
		seen[v]++
		if seen[v] == 2 {
			out = append(out, v)
		}
	}

	return out
}
