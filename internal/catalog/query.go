package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by the query engine. Anything else falls back to
// SortName.
const (
	SortName   = "name"
	SortRating = "rating"
	SortNewest = "newest"
)

// CategoryAll is the category filter sentinel matching every product.
const CategoryAll = "all"

// Query holds the user-controlled list parameters. The zero value lists
// the whole catalogue sorted by name.
type Query struct {
	Category string
	Search   string
	Sort     string
}

// Apply filters and sorts a product snapshot according to q. The input
// slice is never mutated; the result is a fresh slice, and products with
// equal sort keys keep their input order.
func Apply(products []Product, q Query) []Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, q.Category) || !matchesSearch(p, search) {
			continue
		}
		matched = append(matched, p)
	}

	switch q.Sort {
	case SortRating:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Rating > matched[j].Rating
		})
	case SortNewest:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	default:
		// Collators maintain internal buffers, so build one per call
		// rather than sharing across goroutines.
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(matched, func(i, j int) bool {
			return c.CompareString(matched[i].Name, matched[j].Name) < 0
		})
	}
	return matched
}

func matchesCategory(p Product, category string) bool {
	return category == "" || category == CategoryAll || p.Category == category
}

func matchesSearch(p Product, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.Model), search)
}
