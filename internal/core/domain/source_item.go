package domain

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

// ItemStatus is the lifecycle state of a catalog item.
type ItemStatus string

// Known item statuses.
const (
	StatusActive   ItemStatus = "active"
	StatusArchived ItemStatus = "archived"

	// statusArchivedLegacy is the archived marker still found in older catalogs.
	statusArchivedLegacy ItemStatus = "в архиве"
)

// IsArchived reports whether the status hides the item from browse listings.
func (s ItemStatus) IsArchived() bool {
	return s == StatusArchived || s == statusArchivedLegacy
}

// SourceItem is a dish, bar item or wine record as served by the catalog.
// The core only reads it.
type SourceItem struct {
	ID          string
	Title       string
	Description string
	Section     string
	Menu        string
	Status      ItemStatus

	Ingredients []string
	Comments    []string
	Tags        []string
	Allergens   []string

	// Contains, Features and ReferenceInfo may hold HTML.
	Contains      string
	Features      string
	ReferenceInfo string

	// English holds "<field>-en" translations. Nil when the item has none.
	English Translation
}

// Translation maps suffixed field names ("title-en") to their values.
// List-valued translations are kept joined with a single space.
type Translation map[Field]string

// Get returns the translated value for a default-language or suffixed field.
func (t Translation) Get(f Field) string {
	if t == nil {
		return ""
	}
	return t[f.English()]
}

// Value returns the raw value of a default-language field.
// List-valued fields are joined with a single space.
func (it *SourceItem) Value(f Field) string {
	switch f {
	case FieldTitle:
		return it.Title
	case FieldDescription:
		return it.Description
	case FieldSection:
		return it.Section
	case FieldMenu:
		return it.Menu
	case FieldContains:
		return it.Contains
	case FieldFeatures:
		return it.Features
	case FieldReferenceInfo:
		return it.ReferenceInfo
	case FieldIngredients:
		return strings.Join(it.Ingredients, " ")
	case FieldComments:
		return strings.Join(it.Comments, " ")
	case FieldTags:
		return strings.Join(it.Tags, " ")
	case FieldAllergens:
		return strings.Join(it.Allergens, " ")
	}
	if f.IsEnglish() {
		return it.English.Get(f)
	}
	return ""
}

// IsArchived reports whether the item is archived.
func (it *SourceItem) IsArchived() bool {
	return it.Status.IsArchived()
}

// MenusOf returns the distinct non-empty menu names of items, sorted.
func MenusOf(items []SourceItem) []string {
	seen := make(map[string]struct{})
	menus := make([]string, 0)
	for i := range items {
		name := items[i].Menu
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		menus = append(menus, name)
	}
	slices.Sort(menus)
	return menus
}

// wireItem is the catalog's JSON shape.
type wireItem struct {
	ID            string                       `json:"id"`
	Title         string                       `json:"title,omitempty"`
	Description   string                       `json:"description,omitempty"`
	Section       string                       `json:"section,omitempty"`
	Menu          string                       `json:"menu,omitempty"`
	Status        string                       `json:"status,omitempty"`
	Ingredients   []string                     `json:"ingredients,omitempty"`
	Comments      []string                     `json:"comments,omitempty"`
	Tags          []string                     `json:"tags,omitempty"`
	Allergens     []string                     `json:"allergens,omitempty"`
	Contains      string                       `json:"contains,omitempty"`
	Features      string                       `json:"features,omitempty"`
	ReferenceInfo string                       `json:"reference_info,omitempty"`
	I18n          map[string]map[string]string `json:"i18n,omitempty"`
}

// MarshalJSON encodes the item in the catalog's wire shape.
func (it SourceItem) MarshalJSON() ([]byte, error) {
	w := wireItem{
		ID:            it.ID,
		Title:         it.Title,
		Description:   it.Description,
		Section:       it.Section,
		Menu:          it.Menu,
		Status:        string(it.Status),
		Ingredients:   it.Ingredients,
		Comments:      it.Comments,
		Tags:          it.Tags,
		Allergens:     it.Allergens,
		Contains:      it.Contains,
		Features:      it.Features,
		ReferenceInfo: it.ReferenceInfo,
	}
	if len(it.English) > 0 {
		en := make(map[string]string, len(it.English))
		for k, v := range it.English {
			en[string(k)] = v
		}
		w.I18n = map[string]map[string]string{"en": en}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a catalog record leniently. Optional fields that are
// missing, null or of the wrong shape decode as empty; only input that is not
// a JSON object is rejected.
func (it *SourceItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*it = SourceItem{
		ID:            looseString(raw["id"]),
		Title:         looseString(raw["title"]),
		Description:   looseString(raw["description"]),
		Section:       looseString(raw["section"]),
		Menu:          looseString(raw["menu"]),
		Status:        ItemStatus(looseString(raw["status"])),
		Ingredients:   looseList(raw["ingredients"]),
		Comments:      looseList(raw["comments"]),
		Tags:          looseList(raw["tags"]),
		Allergens:     looseList(raw["allergens"]),
		Contains:      looseString(raw["contains"]),
		Features:      looseString(raw["features"]),
		ReferenceInfo: looseString(raw["reference_info"]),
	}

	var i18n map[string]json.RawMessage
	if json.Unmarshal(raw["i18n"], &i18n) != nil {
		return nil
	}
	var en map[string]json.RawMessage
	if json.Unmarshal(i18n["en"], &en) != nil || len(en) == 0 {
		return nil
	}
	it.English = make(Translation, len(en))
	for k, v := range en {
		if text := strings.Join(looseList(v), " "); text != "" {
			it.English[Field(k)] = text
		}
	}
	return nil
}

// looseString reads a string or a number; anything else is empty.
func looseString(data json.RawMessage) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(data, &s) == nil {
		return s
	}
	var n json.Number
	if json.Unmarshal(data, &n) == nil {
		return n.String()
	}
	return ""
}

// looseList reads an array of strings or a single string.
// Non-string array elements are dropped.
func looseList(data json.RawMessage) []string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	var items []json.RawMessage
	if json.Unmarshal(data, &items) == nil {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s := looseString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := looseString(data); s != "" {
		return []string{s}
	}
	return nil
}
