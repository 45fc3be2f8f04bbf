package catalog

import "github.com/glamour-aluminium/catalogue/internal/slug"

// Resolve maps a product-detail URL segment to the product it names. The
// id is the final hyphen-delimited token of the segment; a segment
// without hyphens is treated as a bare id. When duplicate ids exist the
// first match in input order wins.
func Resolve(s string, products []Product) (Product, error) {
	id, ok := slug.ID(s)
	if !ok {
		return Product{}, ErrInvalidSlug
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}
