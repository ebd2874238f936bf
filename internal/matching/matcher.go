package matching

import (
	"sort"
	"strings"

	"github.com/croberts/resume-builder/internal/db"
)

// Filter returns the items whose text contains at least one keyword, compared case-insensitively.
// Input order is preserved. An empty keyword set matches nothing.
func Filter[T any](items []T, text func(T) string, kw Keywords) []T {
	matched := make([]T, 0)
	if kw.Len() == 0 {
		return matched
	}
	for _, item := range items {
		if containsAny(strings.ToLower(text(item)), kw) {
			matched = append(matched, item)
		}
	}
	return matched
}

// MatchAccomplishments filters accomplishments down to those mentioning any keyword
func MatchAccomplishments(accomplishments []db.Accomplishment, kw Keywords) []db.Accomplishment {
	return Filter(accomplishments, func(a db.Accomplishment) string { return a.Content }, kw)
}

// MatchStrings filters plain strings down to those mentioning any keyword
func MatchStrings(texts []string, kw Keywords) []string {
	return Filter(texts, func(s string) string { return s }, kw)
}

// MatchedKeywords returns, in lexical order, the keywords found in text
func MatchedKeywords(text string, kw Keywords) []string {
	lower := strings.ToLower(text)
	hits := []string{}
	for token := range kw {
		if strings.Contains(lower, strings.ToLower(token)) {
			hits = append(hits, token)
		}
	}
	sort.Strings(hits)
	return hits
}

func containsAny(lower string, kw Keywords) bool {
	for token := range kw {
		if strings.Contains(lower, strings.ToLower(token)) {
			return true
		}
	}
	return false
}
