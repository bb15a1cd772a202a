package domain

import "strings"

// Field names the logical field a SearchRecord was built from.
type Field string

// Default-language fields, in indexing order.
const (
	FieldTitle         Field = "title"
	FieldDescription   Field = "description"
	FieldSection       Field = "section"
	FieldMenu          Field = "menu"
	FieldContains      Field = "contains"
	FieldFeatures      Field = "features"
	FieldReferenceInfo Field = "reference_info"
	FieldIngredients   Field = "ingredients"
	FieldComments      Field = "comments"
	FieldTags          Field = "tags"
	FieldAllergens     Field = "allergens"
)

// englishSuffix marks the English variant of a field.
const englishSuffix = "-en"

// IndexedFields lists every default-language field the index builder reads.
var IndexedFields = []Field{
	FieldTitle,
	FieldDescription,
	FieldSection,
	FieldMenu,
	FieldContains,
	FieldFeatures,
	FieldReferenceInfo,
	FieldIngredients,
	FieldComments,
	FieldTags,
	FieldAllergens,
}

// English returns the "-en" suffixed variant of the field.
// Calling it on an English field returns the field unchanged.
func (f Field) English() Field {
	if f.IsEnglish() {
		return f
	}
	return f + englishSuffix
}

// Base strips the "-en" suffix.
func (f Field) Base() Field {
	return Field(strings.TrimSuffix(string(f), englishSuffix))
}

// IsEnglish reports whether the field is an English variant.
func (f Field) IsEnglish() bool {
	return strings.HasSuffix(string(f), englishSuffix)
}

// IsRichText reports whether the field holds markup that must be stripped
// before indexing.
func (f Field) IsRichText() bool {
	switch f.Base() {
	case FieldContains, FieldFeatures, FieldReferenceInfo:
		return true
	default:
		return false
	}
}

// Tier returns the ranking weight of the field. Higher tiers rank first.
func (f Field) Tier() int {
	switch f.Base() {
	case FieldTitle:
		return 3
	case FieldDescription:
		return 2
	case FieldSection:
		return 1
	default:
		return 0
	}
}

// Label returns a human-readable name for result rows.
func (f Field) Label() string {
	var label string
	switch f.Base() {
	case FieldTitle:
		label = "Title"
	case FieldDescription:
		label = "Description"
	case FieldSection:
		label = "Section"
	case FieldMenu:
		label = "Menu"
	case FieldContains:
		label = "Contains"
	case FieldFeatures:
		label = "Features"
	case FieldReferenceInfo:
		label = "Reference"
	case FieldIngredients:
		label = "Ingredients"
	case FieldComments:
		label = "Comments"
	case FieldTags:
		label = "Tags"
	case FieldAllergens:
		label = "Allergens"
	default:
		return string(f)
	}
	if f.IsEnglish() {
		label += " (EN)"
	}
	return label
}

// String returns the string representation.
func (f Field) String() string {
	return string(f)
}
