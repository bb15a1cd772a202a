package services

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
)

// Keywords for ClassifyItem. Matching is a lower-case substring test.
var (
	wineKeywords       = []string{"вино", "wine"}
	barMenuKeywords    = []string{"бар", "bar", "напит", "drink"}
	barSectionKeywords = []string{
		"коктейл", "cocktail", "чай", "tea", "пиво", "beer", "кофе", "coffee", "напит", "drink",
	}
)

// ClassifyItem guesses whether an item is a dish, a wine or a bar item from
// its menu and section names. Wine takes precedence over bar.
func ClassifyItem(item *domain.SourceItem) domain.ItemKind {
	menu := strings.ToLower(item.Menu)
	section := strings.ToLower(item.Section)

	if containsAny(menu, wineKeywords) || containsAny(section, wineKeywords) {
		return domain.KindWine
	}
	if containsAny(menu, barMenuKeywords) || containsAny(section, barSectionKeywords) {
		return domain.KindBar
	}
	return domain.KindDish
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// IndexBuilder flattens the catalog into search records.
type IndexBuilder struct {
	extractor driven.TextExtractor
}

// NewIndexBuilder creates an index builder.
// Rich-text fields are passed through extractor; a nil extractor keeps them as-is.
func NewIndexBuilder(extractor driven.TextExtractor) *IndexBuilder {
	return &IndexBuilder{extractor: extractor}
}

// Build returns one record per distinct menu name followed by one record per
// (item, non-empty field, language) in catalog order. It has no side effects:
// the same input always yields the same records.
func (b *IndexBuilder) Build(menus []string, items []domain.SourceItem) []domain.SearchRecord {
	records := make([]domain.SearchRecord, 0, len(menus)+len(items)*len(domain.IndexedFields))

	seen := make(map[string]struct{}, len(menus))
	for _, name := range menus {
		name = norm.NFC.String(name)
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		records = append(records, menuRecord(name))
	}

	for i := range items {
		records = b.appendItem(records, &items[i])
	}
	return records
}

func menuRecord(name string) domain.SearchRecord {
	return domain.SearchRecord{
		Type:     domain.RecordMenu,
		Field:    domain.FieldMenu,
		ID:       "menu-" + name,
		Title:    name,
		Text:     name,
		Location: domain.HomeLabel,
		Path:     domain.MenuPath(name),
		Menu:     name,
	}
}

func (b *IndexBuilder) appendItem(records []domain.SearchRecord, item *domain.SourceItem) []domain.SearchRecord {
	kind := ClassifyItem(item)
	base := domain.SearchRecord{
		Type:       domain.RecordDish,
		ID:         item.ID,
		DishID:     item.ID,
		Title:      orDefault(item.Title, domain.UntitledLabel),
		Location:   location(item.Menu, item.Section),
		Path:       domain.ItemPath(kind, item.ID),
		Menu:       item.Menu,
		Section:    item.Section,
		IsArchived: item.IsArchived(),
		ItemKind:   kind,
	}

	for _, f := range domain.IndexedFields {
		records = b.appendField(records, base, f, item.Value(f))
	}

	if len(item.English) == 0 {
		return records
	}

	en := item.English
	menu := orDefault(en.Get(domain.FieldMenu), item.Menu)
	section := orDefault(en.Get(domain.FieldSection), item.Section)
	base.ID = item.ID + "-en"
	base.Title = orDefault(en.Get(domain.FieldTitle), base.Title)
	base.Location = location(menu, section)
	base.Menu = menu
	base.Section = section
	base.IsEnglish = true

	for _, f := range domain.IndexedFields {
		records = b.appendField(records, base, f.English(), en.Get(f))
	}
	return records
}

func (b *IndexBuilder) appendField(
	records []domain.SearchRecord, base domain.SearchRecord, f domain.Field, value string,
) []domain.SearchRecord {
	if f.IsRichText() && b.extractor != nil {
		value = b.extractor.PlainText(value)
	}
	if strings.TrimSpace(value) == "" {
		return records
	}
	base.Field = f
	base.Text = norm.NFC.String(value)
	return append(records, base)
}

func location(menu, section string) string {
	return orDefault(menu, domain.NoMenuLabel) + " / " + orDefault(section, domain.NoSectionLabel)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
