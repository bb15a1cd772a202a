package services

import "golang.org/x/text/unicode/norm"

// Highlighted is a snippet split around the first occurrence of a query.
// Before+Match+After always equals the NFC form of the input.
type Highlighted struct {
	Before string
	Match  string
	After  string
	Found  bool
}

// Segment is a run of text that either matches the query or not.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits snippet around the first case-insensitive occurrence of
// query, matching exactly as Search does. The query is matched literally.
func Highlight(snippet, query string) Highlighted {
	text := []rune(norm.NFC.String(snippet))
	needle := foldQuery(query)
	if len(needle) == 0 {
		return Highlighted{Before: string(text)}
	}
	at := indexRunes(foldRunes(string(text)), needle)
	if at < 0 {
		return Highlighted{Before: string(text)}
	}
	end := at + len(needle)
	return Highlighted{
		Before: string(text[:at]),
		Match:  string(text[at:end]),
		After:  string(text[end:]),
		Found:  true,
	}
}

// HighlightAll splits text into alternating segments with every
// non-overlapping case-insensitive occurrence of query marked. Joining the
// segment texts yields the NFC form of text.
func HighlightAll(text, query string) []Segment {
	if text == "" {
		return nil
	}
	runes := []rune(norm.NFC.String(text))
	needle := foldQuery(query)
	if len(needle) == 0 {
		return []Segment{{Text: string(runes)}}
	}

	folded := foldRunes(string(runes))
	var segments []Segment
	last := 0
	for last < len(runes) {
		at := indexRunes(folded[last:], needle)
		if at < 0 {
			break
		}
		at += last
		if at > last {
			segments = append(segments, Segment{Text: string(runes[last:at])})
		}
		end := at + len(needle)
		segments = append(segments, Segment{Text: string(runes[at:end]), Match: true})
		last = end
	}
	if last < len(runes) {
		segments = append(segments, Segment{Text: string(runes[last:])})
	}
	return segments
}
