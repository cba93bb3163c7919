package intent

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// minFuzzyLen is the shortest token or dictionary word considered for fuzzy
// matching.
const minFuzzyLen = 3

// fuzzyTolerance allows roughly one edit per three characters of term.
func fuzzyTolerance(term string) int {
	return utf8.RuneCountInString(term) / 3
}

// fuzzyMatch reports the first (token, term) pair within tolerance.
func fuzzyMatch(tokens, terms []string) (token, term string, ok bool) {
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < minFuzzyLen {
			continue
		}
		if _, stop := fuzzyStopwords[tok]; stop {
			continue
		}
		for _, t := range terms {
			t = strings.TrimSpace(t)
			if utf8.RuneCountInString(t) < minFuzzyLen {
				continue
			}
			if levenshtein.ComputeDistance(tok, t) <= fuzzyTolerance(t) {
				return tok, t, true
			}
		}
	}
	return "", "", false
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(text, t) {
			return true
		}
	}
	return false
}
