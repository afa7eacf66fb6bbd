package normalize

// Candidate is anything the fuzzy matcher can compare a query name against.
type Candidate struct {
	Key            string // opaque identifier the caller cares about (e.g. library entry ID)
	NormalizedName string
}

// FuzzyMatch returns the candidate whose normalized name is closest to the
// normalized query by Levenshtein edit distance, provided that distance is
// within maxDistance. An exact match on normalized name short-circuits the
// scan. Complexity is O(N * L1 * L2) per spec.md §4.5, which is acceptable
// for a personal ingredient vocabulary of a few hundred entries.
func FuzzyMatch(query string, candidates []Candidate, maxDistance int) (Candidate, bool) {
	for _, c := range candidates {
		if c.NormalizedName == query {
			return c, true
		}
	}

	best := Candidate{}
	bestDistance := maxDistance + 1
	found := false
	for _, c := range candidates {
		d := levenshtein(query, c.NormalizedName)
		if d < bestDistance {
			bestDistance = d
			best = c
			found = true
		}
	}
	if !found || bestDistance > maxDistance {
		return Candidate{}, false
	}
	return best, true
}

// levenshtein computes the edit distance between two strings using the
// classic single-row dynamic-programming recurrence.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prevRow := make([]int, len(rb)+1)
	currRow := make([]int, len(rb)+1)
	for j := range prevRow {
		prevRow[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		currRow[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			deletion := prevRow[j] + 1
			insertion := currRow[j-1] + 1
			substitution := prevRow[j-1] + cost
			currRow[j] = minInt(deletion, minInt(insertion, substitution))
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[len(rb)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
