package services

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

// sampleItems is a small catalog covering dishes, bar items, wines,
// translations, rich text and an archived item.
func sampleItems() []domain.SourceItem {
	return []domain.SourceItem{
		{
			ID:          "1",
			Title:       "Борщ",
			Description: "Классический борщ со сметаной",
			Section:     "Супы",
			Menu:        "Основное меню",
			Status:      domain.StatusActive,
			Ingredients: []string{"свёкла", "капуста", "сметана"},
			Allergens:   []string{"лактоза"},
			Contains:    "<p>Свёкла, <b>капуста</b></p>",
			English: domain.Translation{
				"title-en":       "Borscht",
				"description-en": "Classic borscht with sour cream",
			},
		},
		{
			ID:      "2",
			Title:   "Мохито",
			Section: "Коктейли",
			Menu:    "Барная карта",
			Status:  domain.StatusActive,
			Tags:    []string{"мята"},
		},
		{
			ID:      "3",
			Title:   "Шабли",
			Section: "Белое вино",
			Menu:    "Винная карта",
			Status:  domain.StatusActive,
		},
		{
			ID:          "4",
			Title:       "Старый салат",
			Description: "   ",
			Section:     "Салаты",
			Menu:        "Основное меню",
			Status:      domain.StatusArchived,
			Comments:    []string{"Сметана отдельно"},
		},
	}
}

func sampleMenus() []string {
	return []string{"Основное меню", "Барная карта", "Винная карта"}
}

// failingCatalog returns err from every call.
type failingCatalog struct {
	err error
}

func (c *failingCatalog) Menus(_ context.Context) ([]string, error) {
	return nil, c.err
}

func (c *failingCatalog) Dishes(_ context.Context) ([]domain.SourceItem, error) {
	return nil, c.err
}

func (c *failingCatalog) Dish(_ context.Context, _ string) (*domain.SourceItem, error) {
	return nil, c.err
}

var errBackendDown = errors.New("backend down")

// testClock is a settable time source.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
