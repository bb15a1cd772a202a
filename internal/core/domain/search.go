package domain

import (
	"net/url"
	"strings"
)

// RecordType distinguishes menu records from item records.
type RecordType string

// Record types.
const (
	RecordMenu RecordType = "menu"
	RecordDish RecordType = "dish"
)

// ItemKind is the heuristic classification of a catalog item.
// It only affects the result icon and the deep-link path prefix.
type ItemKind string

// Item kinds.
const (
	KindDish ItemKind = "dish"
	KindWine ItemKind = "wine"
	KindBar  ItemKind = "bar"
)

// Search limits.
const (
	// MinQueryLength is the shortest trimmed query that produces results.
	MinQueryLength = 2

	// MaxResults caps the result list. It is a display bound, not an option.
	MaxResults = 50

	// SnippetContext is the number of characters kept on each side of a match.
	SnippetContext = 50
)

// Fallback labels used when a catalog item lacks a value.
const (
	UntitledLabel  = "Untitled"
	NoMenuLabel    = "No menu"
	NoSectionLabel = "No section"
	HomeLabel      = "Home"
)

// SearchRecord is one searchable (item, field, language) triple.
// Records are built once per search session and never mutated.
type SearchRecord struct {
	Type RecordType `json:"type"`

	// Field is the logical field this record represents.
	Field Field `json:"field"`

	// ID is unique per item and language: English twins carry a "-en" suffix.
	ID string `json:"id"`

	// DishID is the unsuffixed source item id used for deep links.
	DishID string `json:"dishId,omitempty"`

	Title    string `json:"title"`
	Text     string `json:"text"`
	Location string `json:"location"`
	Path     string `json:"path"`
	Menu     string `json:"menu,omitempty"`
	Section  string `json:"section,omitempty"`

	IsArchived bool     `json:"isArchived"`
	IsEnglish  bool     `json:"isEnglish"`
	ItemKind   ItemKind `json:"itemKind,omitempty"`
}

// TargetID returns the id a detail page compares against on arrival.
func (r *SearchRecord) TargetID() string {
	if r.DishID != "" {
		return r.DishID
	}
	return r.ID
}

// SearchResult is a SearchRecord annotated for display at query time.
// Offsets count characters, not bytes.
type SearchResult struct {
	SearchRecord

	Snippet      string `json:"snippet"`
	SnippetIndex int    `json:"snippetIndex"`
	MatchIndex   int    `json:"matchIndex"`
}

// Icon returns the material icon name the original catalog UI used for the result.
func (r *SearchResult) Icon() string {
	if r.Type == RecordMenu {
		return "restaurant_menu"
	}
	switch r.ItemKind {
	case KindWine:
		return "wine_bar"
	case KindBar:
		return "local_bar"
	}
	switch r.Field.Base() {
	case FieldTitle:
		return "restaurant"
	case FieldDescription:
		return "description"
	case FieldSection:
		return "category"
	case FieldContains:
		return "menu_book"
	case FieldIngredients:
		return "inventory"
	case FieldComments:
		return "comment"
	case FieldTags:
		return "sell"
	case FieldAllergens:
		return "warning"
	case FieldFeatures:
		return "star"
	case FieldReferenceInfo:
		return "lightbulb"
	default:
		return "search"
	}
}

// ItemPath returns the deep-link path for an item of the given kind.
func ItemPath(kind ItemKind, id string) string {
	switch kind {
	case KindWine:
		return "/wine/" + id
	case KindBar:
		return "/bar/" + id
	default:
		return "/dish/" + id
	}
}

// MenuPath returns the deep-link path for a menu.
func MenuPath(name string) string {
	return "/menu/" + url.PathEscape(name)
}

// Route is a parsed deep-link path.
type Route struct {
	// Kind is set for item routes.
	Kind ItemKind

	// ID is the item id for item routes.
	ID string

	// Menu is the decoded menu name for menu routes.
	Menu string
}

// IsMenu reports whether the route points at a menu listing.
func (r Route) IsMenu() bool {
	return r.Menu != ""
}

// ParsePath parses "/dish/:id", "/bar/:id", "/wine/:id" and "/menu/:name".
// A bare id is treated as a dish route.
func ParsePath(path string) (Route, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Route{}, ErrInvalidPath
	}
	if !strings.HasPrefix(path, "/") {
		return Route{Kind: KindDish, ID: path}, nil
	}

	prefix, rest, ok := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if !ok || rest == "" {
		return Route{}, ErrInvalidPath
	}

	switch prefix {
	case "dish":
		return Route{Kind: KindDish, ID: rest}, nil
	case "bar":
		return Route{Kind: KindBar, ID: rest}, nil
	case "wine":
		return Route{Kind: KindWine, ID: rest}, nil
	case "menu":
		name, err := url.PathUnescape(rest)
		if err != nil || strings.TrimSpace(name) == "" {
			return Route{}, ErrInvalidPath
		}
		return Route{Menu: name}, nil
	default:
		return Route{}, ErrInvalidPath
	}
}
