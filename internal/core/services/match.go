package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// Search, Highlight and detail focus all match through these helpers, so a
// hit the query engine reports is one the other two can find again.

// foldQuery trims, NFC-normalises and folds a query.
func foldQuery(query string) []rune {
	return foldRunes(norm.NFC.String(strings.TrimSpace(query)))
}

// foldRunes lower-cases s one rune at a time so offsets in the result line
// up with offsets in s.
func foldRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// indexRunes returns the index of the first occurrence of needle in hay, or -1.
func indexRunes(hay, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(hay); i++ {
		if hay[i] != needle[0] {
			continue
		}
		if equalRunes(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// containsFold reports whether text contains query under the query engine's
// matching rules. An empty query matches nothing.
func containsFold(text, query string) bool {
	needle := foldQuery(query)
	if len(needle) == 0 {
		return false
	}
	return indexRunes(foldRunes(norm.NFC.String(text)), needle) >= 0
}

// firstMatch returns the index of the first anchor containing query, or -1.
func firstMatch(anchors []domain.Anchor, query string) int {
	for i, a := range anchors {
		if containsFold(a.Text, query) {
			return i
		}
	}
	return -1
}
