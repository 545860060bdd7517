package catalog

import "strings"

// Tokenize normalizes a free-text search query into match terms:
// lower-cased, hyphens treated as spaces, split on whitespace, empty
// terms dropped. A blank or punctuation-only query yields no terms,
// which the search operation must treat as "no results" — an empty
// disjunction must never be sent to the store, where it would behave
// like "match nothing" or, worse, be misread as "match all".
func Tokenize(query string) []string {
	normalized := strings.ReplaceAll(strings.ToLower(query), "-", " ")
	return strings.Fields(normalized)
}
