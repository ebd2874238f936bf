// Package matching extracts keywords from job descriptions and filters accomplishments against them.
package matching

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// stopwords are dropped from job descriptions before matching
var stopwords = map[string]struct{}{
	"and": {}, "the": {}, "in": {}, "on": {}, "with": {},
	"an": {}, "a": {}, "to": {}, "for": {}, "we": {},
	"are": {}, "of": {}, "is": {}, "be": {}, "as": {},
}

// minKeywordLength is the shortest token kept as a keyword
const minKeywordLength = 3

// Keywords is a set of unique lowercase tokens
type Keywords map[string]struct{}

// NewKeywords builds a set from the given tokens, lowercasing each
func NewKeywords(tokens ...string) Keywords {
	kw := make(Keywords, len(tokens))
	for _, t := range tokens {
		kw[strings.ToLower(t)] = struct{}{}
	}
	return kw
}

// Len returns the number of keywords
func (k Keywords) Len() int {
	return len(k)
}

// Has reports whether token is in the set
func (k Keywords) Has(token string) bool {
	_, ok := k[token]
	return ok
}

// Sorted returns the keywords in lexical order
func (k Keywords) Sorted() []string {
	out := make([]string, 0, len(k))
	for t := range k {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// IsStopword reports whether token is one of the fixed stopwords
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// ExtractKeywords lowercases text, splits it on whitespace and keeps every token that is
// neither a stopword nor shorter than three characters once trailing '.' and ',' are stripped.
func ExtractKeywords(text string) Keywords {
	kw := make(Keywords)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if IsStopword(word) {
			continue
		}
		token := strings.TrimRight(word, ".,")
		if utf8.RuneCountInString(token) < minKeywordLength || IsStopword(token) {
			continue
		}
		kw[token] = struct{}{}
	}
	return kw
}
