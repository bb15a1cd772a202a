package services

import (
	"sort"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// Search returns the records whose text contains query, ignoring case,
// annotated with a snippet around the first occurrence.
//
// Queries shorter than domain.MinQueryLength characters after trimming
// return nothing. Results are ordered by field tier (title, description,
// section, then the rest) and then by how early the match occurs; ties keep
// index order. At most domain.MaxResults are returned.
func Search(index []domain.SearchRecord, query string) []domain.SearchResult {
	needle := foldQuery(query)
	if len(needle) < domain.MinQueryLength {
		return []domain.SearchResult{}
	}

	matches := make([]domain.SearchResult, 0)
	for i := range index {
		text := []rune(index[i].Text)
		at := indexRunes(foldRunes(index[i].Text), needle)
		if at < 0 {
			continue
		}
		start := max(0, at-domain.SnippetContext)
		end := min(len(text), at+len(needle)+domain.SnippetContext)
		matches = append(matches, domain.SearchResult{
			SearchRecord: index[i],
			Snippet:      string(text[start:end]),
			SnippetIndex: at - start,
			MatchIndex:   at,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		ti, tj := matches[i].Field.Tier(), matches[j].Field.Tier()
		if ti != tj {
			return ti > tj
		}
		return matches[i].MatchIndex < matches[j].MatchIndex
	})

	if len(matches) > domain.MaxResults {
		matches = matches[:domain.MaxResults]
	}
	return matches
}
