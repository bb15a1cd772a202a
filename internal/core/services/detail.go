package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driven"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
	"github.com/custodia-labs/menusearch/internal/logger"
)

// Ensure DetailService implements the interface.
var _ driving.DetailService = (*DetailService)(nil)

var detailLog = logger.For("detail")

// DetailService builds the pages that search results deep-link to.
type DetailService struct {
	catalog    driven.Catalog
	navigation driving.NavigationService
	extractor  driven.TextExtractor
}

// NewDetailService creates a detail service.
// navigation may be nil, in which case no handoff is consumed.
func NewDetailService(
	catalog driven.Catalog,
	navigation driving.NavigationService,
	extractor driven.TextExtractor,
) *DetailService {
	return &DetailService{
		catalog:    catalog,
		navigation: navigation,
		extractor:  extractor,
	}
}

// Load opens an item page. A handoff targeting the item supplies the query to
// highlight and, when it came from an English field, the display language.
func (s *DetailService) Load(ctx context.Context, path string, opts driving.DetailOptions) (*domain.DetailPage, error) {
	route, err := domain.ParsePath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, path)
	}
	if route.IsMenu() {
		return nil, fmt.Errorf("%w: %q is a menu", domain.ErrInvalidPath, path)
	}

	item, err := s.catalog.Dish(ctx, route.ID)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", route.ID, err)
	}

	query := strings.TrimSpace(opts.Query)
	english := opts.English
	if s.navigation != nil {
		h, err := s.navigation.Consume(ctx, item.ID)
		if err != nil {
			detailLog.Warn("handoff unavailable: %v", err)
		}
		if h != nil {
			query = h.Query
			english = english || h.Field.IsEnglish()
		}
	}

	page := &domain.DetailPage{
		Item:     *item,
		Kind:     ClassifyItem(item),
		Query:    query,
		Language: domain.LanguageDefault,
	}
	if english {
		page.Language = domain.LanguageEnglish
	}
	page.Anchors = s.anchors(item, english)
	page.Tags = tags(item, english)
	page.Focus = firstMatch(page.Anchors, query)

	detailLog.Debug("loaded %s with query %q, focus %d", item.ID, query, page.Focus)
	return page, nil
}

// LoadMenu lists the active items of a menu grouped by section in catalog order.
func (s *DetailService) LoadMenu(ctx context.Context, path string) (*domain.MenuPage, error) {
	route, err := domain.ParsePath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, path)
	}
	if !route.IsMenu() {
		return nil, fmt.Errorf("%w: %q is not a menu", domain.ErrInvalidPath, path)
	}

	items, err := s.catalog.Dishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	page := &domain.MenuPage{Name: route.Menu}
	sections := make(map[string]int)
	known := false
	for i := range items {
		it := &items[i]
		if it.Menu != route.Menu {
			continue
		}
		known = true
		if it.IsArchived() {
			continue
		}
		idx, ok := sections[it.Section]
		if !ok {
			idx = len(page.Sections)
			sections[it.Section] = idx
			page.Sections = append(page.Sections, domain.MenuSection{Name: it.Section})
		}
		page.Sections[idx].Items = append(page.Sections[idx].Items, *it)
	}

	if !known {
		menus, err := s.catalog.Menus(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
		}
		if !slices.Contains(menus, route.Menu) {
			return nil, fmt.Errorf("menu %q: %w", route.Menu, domain.ErrNotFound)
		}
	}
	return page, nil
}

// Menus lists the catalog's non-blank menus.
func (s *DetailService) Menus(ctx context.Context) ([]domain.MenuLink, error) {
	names, err := s.catalog.Menus(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	links := make([]domain.MenuLink, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		links = append(links, domain.MenuLink{Name: name, Path: domain.MenuPath(name)})
	}
	return links, nil
}

// anchors builds the page blocks in display order, skipping empty ones.
// The title block is always present. Texts are NFC like the index.
func (s *DetailService) anchors(item *domain.SourceItem, english bool) []domain.Anchor {
	get := func(f domain.Field) string {
		v := item.Value(f)
		if english {
			if en := item.English.Get(f); en != "" {
				v = en
			}
		}
		if f.IsRichText() && s.extractor != nil {
			v = s.extractor.PlainText(v)
		}
		return strings.TrimSpace(v)
	}
	list := func(f domain.Field, values []string, sep string) string {
		if english {
			if en := item.English.Get(f); en != "" {
				return en
			}
		}
		return strings.Join(values, sep)
	}

	anchors := []domain.Anchor{{
		Key:   domain.AnchorTitle,
		Label: "Title",
		Text:  orDefault(get(domain.FieldTitle), domain.UntitledLabel),
	}}
	add := func(key domain.AnchorKey, label, text string) {
		if strings.TrimSpace(text) != "" {
			anchors = append(anchors, domain.Anchor{Key: key, Label: label, Text: text})
		}
	}

	add(domain.AnchorDescription, "Description", get(domain.FieldDescription))
	add(domain.AnchorAllergens, "Allergens", list(domain.FieldAllergens, item.Allergens, ", "))
	add(domain.AnchorFeatures, "Features", get(domain.FieldFeatures))
	add(domain.AnchorComposition, "Composition", joinNonEmpty("\n",
		list(domain.FieldIngredients, item.Ingredients, ", "),
		get(domain.FieldContains),
	))
	add(domain.AnchorComments, "Comments", list(domain.FieldComments, item.Comments, "\n"))
	add(domain.AnchorReference, "Reference", get(domain.FieldReferenceInfo))

	for i := range anchors {
		anchors[i].Text = norm.NFC.String(anchors[i].Text)
	}
	return anchors
}

func tags(item *domain.SourceItem, english bool) []string {
	if english {
		if en := item.English.Get(domain.FieldTags); en != "" {
			return strings.Fields(en)
		}
	}
	return item.Tags
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
