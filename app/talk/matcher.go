package talk

import "strings"

// DefaultMatchThreshold is the minimum Jaccard similarity of the token
// sets of two normalized titles for a fuzzy match.
const DefaultMatchThreshold = 0.90

// TitlesMatch reports whether two titles refer to the same talk using
// the default similarity threshold.
func TitlesMatch(a, b string) bool {
	return TitlesMatchThreshold(a, b, DefaultMatchThreshold)
}

// TitlesMatchThreshold compares two titles at three levels: exact match
// after normalization, containment in either direction, then Jaccard
// similarity of the token sets.
func TitlesMatchThreshold(a, b string, threshold float64) bool {
	na, nb := NormalizeTitle(a), NormalizeTitle(b)

	// A title that normalizes to nothing carries no signal; only two
	// such titles match each other, and only if both had content.
	if na == "" || nb == "" {
		return na == "" && nb == "" && a != "" && b != ""
	}

	if na == nb {
		return true
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	return jaccard(tokenSet(na), tokenSet(nb)) >= threshold
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}

	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}
