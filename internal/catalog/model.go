package catalog

import (
	"context"
	"io"
	"time"
)

// Product is one catalogue entry. The document store owns the canonical
// record; the aggregator, query engine and resolver all work on read-only
// snapshots of it. Absent optional fields keep their zero value, which is
// also the value used in comparisons: empty string for text, 0 for
// rating/reviews, the zero time for createdAt.
type Product struct {
	ID             string            `json:"id" firestore:"-"`
	Name           string            `json:"name" firestore:"name"`
	Description    string            `json:"description" firestore:"description"`
	Model          string            `json:"model" firestore:"model"`
	Category       string            `json:"category" firestore:"category"`
	Image          string            `json:"image" firestore:"image"`
	Badge          string            `json:"badge,omitempty" firestore:"badge"`
	Rating         float64           `json:"rating" firestore:"rating"`
	Reviews        int               `json:"reviews" firestore:"reviews"`
	Features       []string          `json:"features" firestore:"features"`
	Applications   []string          `json:"applications" firestore:"applications"`
	Specifications map[string]string `json:"specifications" firestore:"specifications"`
	CreatedAt      time.Time         `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt" firestore:"updatedAt"`

	// Slug is derived from Name and ID after each fetch; it is never
	// persisted.
	Slug string `json:"slug" firestore:"-"`
}

// Category is a derived facet. It is rebuilt from scratch on every
// snapshot change and never persisted.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProductData carries the writable fields of a product document.
type ProductData struct {
	Name           string            `firestore:"name"`
	Description    string            `firestore:"description"`
	Model          string            `firestore:"model"`
	Category       string            `firestore:"category"`
	Image          string            `firestore:"image"`
	Badge          string            `firestore:"badge"`
	Rating         float64           `firestore:"rating"`
	Reviews        int               `firestore:"reviews"`
	Features       []string          `firestore:"features"`
	Applications   []string          `firestore:"applications"`
	Specifications map[string]string `firestore:"specifications"`
}

// ProductStore is the external system of record for products. Listing
// order is store-side: createdAt descending.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, data ProductData) (string, error)
	UpdateProduct(ctx context.Context, id string, data ProductData) error
	DeleteProduct(ctx context.Context, id string) error
}

// MediaObject identifies an uploaded image blob.
type MediaObject struct {
	Key string
	URL string
}

// MediaStore holds product images as opaque blobs. The catalogue never
// inspects their bytes.
type MediaStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (MediaObject, error)
	Delete(ctx context.Context, key string) error
	KeyForURL(url string) (string, bool)
}

// CleanupEnqueuer defers removal of an image blob that no product
// references anymore.
type CleanupEnqueuer interface {
	EnqueueMediaCleanup(ctx context.Context, key string) error
}
