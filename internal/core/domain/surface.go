package domain

// IndexStatus reports where a search session is in loading its index.
type IndexStatus string

// Index statuses.
const (
	IndexIdle    IndexStatus = "idle"
	IndexLoading IndexStatus = "loading"
	IndexReady   IndexStatus = "ready"
	IndexFailed  IndexStatus = "failed"
)

// String returns the string representation.
func (s IndexStatus) String() string {
	return string(s)
}

// Surface is the state of the search overlay. Transitions return a new
// value and never mutate the receiver.
type Surface struct {
	Open    bool
	Query   string
	Results []SearchResult
	Status  IndexStatus
}

// Opened returns the surface shown and waiting for its index.
// A query carried in from the caller is kept.
func (s Surface) Opened() Surface {
	return Surface{
		Open:   true,
		Query:  s.Query,
		Status: IndexLoading,
	}
}

// Closed returns the surface hidden with its query and results dropped.
func (s Surface) Closed() Surface {
	return Surface{Status: IndexIdle}
}

// Loaded records the outcome of building the index.
func (s Surface) Loaded(status IndexStatus) Surface {
	s.Status = status
	if status != IndexReady {
		s.Results = nil
	}
	return s
}

// Typed records a new query and the results computed for it.
func (s Surface) Typed(query string, results []SearchResult) Surface {
	s.Query = query
	s.Results = results
	return s
}

// Hint returns the message to show in place of results, or "" when
// results should be listed.
func (s Surface) Hint(trimmedLen int) string {
	switch {
	case s.Status == IndexLoading:
		return "Loading data..."
	case s.Status == IndexFailed:
		return "Search is unavailable: the catalog could not be loaded"
	case trimmedLen == 0:
		return "Start typing to search"
	case trimmedLen < MinQueryLength:
		return "Type at least 2 characters"
	case len(s.Results) == 0:
		return "Nothing found"
	default:
		return ""
	}
}
