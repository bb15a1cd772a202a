package domain

// AnchorKey names a scrollable block on a detail page.
type AnchorKey string

// Detail page anchors, in page order.
const (
	AnchorTitle       AnchorKey = "title"
	AnchorDescription AnchorKey = "description"
	AnchorAllergens   AnchorKey = "allergens"
	AnchorFeatures    AnchorKey = "features"
	AnchorComposition AnchorKey = "composition"
	AnchorComments    AnchorKey = "comments"
	AnchorReference   AnchorKey = "reference"
)

// Anchor is one block of a detail page with its rendered plain text.
type Anchor struct {
	Key   AnchorKey
	Label string
	Text  string
}

// Language selects which translation a detail page renders.
type Language string

// Display languages.
const (
	LanguageDefault Language = "default"
	LanguageEnglish Language = "en"
)

// DetailPage is the destination a search result deep-links to.
type DetailPage struct {
	Item SourceItem
	Kind ItemKind

	// Anchors are the non-empty blocks of the page in display order.
	Anchors []Anchor

	// Tags are shown alongside the title and are not a scroll target.
	Tags []string

	// Query is the search query restored from the handoff, or "".
	Query string

	// Focus is the index into Anchors of the first block containing Query,
	// or -1 when nothing matches.
	Focus int

	Language Language
}

// Focused returns the focused anchor.
func (p *DetailPage) Focused() (Anchor, bool) {
	if p.Focus < 0 || p.Focus >= len(p.Anchors) {
		return Anchor{}, false
	}
	return p.Anchors[p.Focus], true
}

// MenuSection groups the items of one section of a menu.
type MenuSection struct {
	Name  string
	Items []SourceItem
}

// MenuLink is one entry of the menu listing.
type MenuLink struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// MenuPage lists the active items of one menu.
type MenuPage struct {
	Name     string
	Sections []MenuSection
}

// Count returns the number of items on the page.
func (p *MenuPage) Count() int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Items)
	}
	return n
}
