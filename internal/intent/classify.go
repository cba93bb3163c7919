package intent

import (
	"strings"
	"unicode"

	"fitlife-assistant/internal/domain"
)

// rule is one entry of the overall priority order: a body part or a
// category, with the keywords that select it.
type rule struct {
	category domain.Category
	part     domain.BodyPart
	terms    []string
}

// rules is the single priority order shared by both matching passes: body
// parts first, then the remaining categories.
var rules = buildRules()

func buildRules() []rule {
	out := make([]rule, 0, len(bodyPartTerms)+len(categoryTermsByPriority))
	for _, pt := range bodyPartTerms {
		out = append(out, rule{category: domain.CategoryBodyPart, part: pt.part, terms: pt.terms})
	}
	for _, ct := range categoryTermsByPriority {
		out = append(out, rule{category: ct.category, terms: ct.terms})
	}
	return out
}

// Classify resolves the single intent governing the reply to message. It is
// pure: the same input always yields the same intent.
//
// Every rule is tried by keyword containment before any rule is tried by
// fuzzy matching, so an exact keyword is never outranked by a misspelling.
func Classify(message string) domain.Intent {
	tokens := tokenize(message)
	text := " " + strings.Join(tokens, " ") + " "

	for _, r := range rules {
		if containsAny(text, r.terms) {
			return r.intent(text)
		}
	}
	for _, r := range rules {
		if _, _, ok := fuzzyMatch(tokens, r.terms); ok {
			return r.intent(text)
		}
	}
	return domain.Intent{Category: domain.CategoryFallback}
}

func (r rule) intent(text string) domain.Intent {
	if r.part != "" {
		return domain.Intent{Category: r.category, BodyPart: r.part}
	}
	return domain.Intent{Category: r.category, Topic: detectTopic(r.category, text)}
}

// tokenize lowercases message and splits it on whitespace, trimming
// punctuation from the ends of each token.
func tokenize(message string) []string {
	fields := strings.Fields(strings.ToLower(message))
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func detectTopic(category domain.Category, text string) string {
	for _, tt := range topicsByCategory[category] {
		if containsAny(text, tt.terms) {
			return tt.topic
		}
	}
	return ""
}
