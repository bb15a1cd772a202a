package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearchRecord_TargetID tests deep-link id resolution
func TestSearchRecord_TargetID(t *testing.T) {
	en := SearchRecord{ID: "5-en", DishID: "5"}
	menu := SearchRecord{ID: "menu-Bar"}

	assert.Equal(t, "5", en.TargetID())
	assert.Equal(t, "menu-Bar", menu.TargetID())
}

// TestSearchResult_Icon tests icons by record type, kind and field
func TestSearchResult_Icon(t *testing.T) {
	tests := []struct {
		name     string
		record   SearchRecord
		expected string
	}{
		{"menu", SearchRecord{Type: RecordMenu, Field: FieldMenu}, "restaurant_menu"},
		{"wine wins over field", SearchRecord{Type: RecordDish, ItemKind: KindWine, Field: FieldTitle}, "wine_bar"},
		{"bar", SearchRecord{Type: RecordDish, ItemKind: KindBar, Field: FieldTags}, "local_bar"},
		{"dish title", SearchRecord{Type: RecordDish, ItemKind: KindDish, Field: FieldTitle}, "restaurant"},
		{"dish english comments", SearchRecord{Type: RecordDish, ItemKind: KindDish, Field: "comments-en"}, "comment"},
		{"dish menu field", SearchRecord{Type: RecordDish, ItemKind: KindDish, Field: FieldMenu}, "search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SearchResult{SearchRecord: tt.record}
			assert.Equal(t, tt.expected, r.Icon())
		})
	}
}

// TestPaths tests building deep-link paths
func TestPaths(t *testing.T) {
	assert.Equal(t, "/dish/1", ItemPath(KindDish, "1"))
	assert.Equal(t, "/wine/2", ItemPath(KindWine, "2"))
	assert.Equal(t, "/bar/3", ItemPath(KindBar, "3"))
	assert.Equal(t, "/menu/Wine%20List", MenuPath("Wine List"))
	assert.Equal(t, "/menu/%D0%91%D0%B0%D1%80", MenuPath("Бар"))
}

// TestParsePath tests parsing deep-link paths
func TestParsePath(t *testing.T) {
	tests := []struct {
		path     string
		expected Route
	}{
		{"/dish/1", Route{Kind: KindDish, ID: "1"}},
		{"/bar/abc", Route{Kind: KindBar, ID: "abc"}},
		{"/wine/9", Route{Kind: KindWine, ID: "9"}},
		{"  /dish/1 ", Route{Kind: KindDish, ID: "1"}},
		{"17", Route{Kind: KindDish, ID: "17"}},
		{"/menu/Wine%20List", Route{Menu: "Wine List"}},
		{MenuPath("Бар"), Route{Menu: "Бар"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, err := ParsePath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, route)
		})
	}
}

// TestParsePath_Invalid tests rejected paths
func TestParsePath_Invalid(t *testing.T) {
	for _, path := range []string{"", "   ", "/", "/dish", "/dish/", "/pizza/1", "/menu/%zz", "/menu/%20"} {
		t.Run(path, func(t *testing.T) {
			_, err := ParsePath(path)
			assert.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}

// TestRoute_IsMenu tests route classification
func TestRoute_IsMenu(t *testing.T) {
	assert.True(t, Route{Menu: "Bar"}.IsMenu())
	assert.False(t, Route{Kind: KindDish, ID: "1"}.IsMenu())
}
