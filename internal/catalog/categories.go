package catalog

import (
	"unicode"
	"unicode/utf8"
)

// categoryNames maps known category ids to display names.
var categoryNames = map[string]string{
	"windows":       "Aluminium Windows",
	"doors":         "Doors & Frames",
	"railings":      "Railings & Balustrades",
	"curtain-walls": "Curtain Walls",
	"roofing":       "Roofing Systems",
}

// BuildCategories derives the category facet list from a product
// snapshot. The synthetic "all" entry comes first and counts every
// product; per-category entries follow in first-seen order. Products
// without a category count toward "all" only.
func BuildCategories(products []Product) []Category {
	out := []Category{{ID: "all", Name: "All Products", Count: len(products)}}
	index := make(map[string]int, len(categoryNames))
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if i, ok := index[p.Category]; ok {
			out[i].Count++
			continue
		}
		index[p.Category] = len(out)
		out = append(out, Category{ID: p.Category, Name: CategoryName(p.Category), Count: 1})
	}
	return out
}

// CategoryName resolves a category id to its display name. Unknown ids
// fall back to the id with its first character capitalized.
func CategoryName(id string) string {
	if name, ok := categoryNames[id]; ok {
		return name
	}
	if id == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(id)
	return string(unicode.ToUpper(r)) + id[size:]
}
