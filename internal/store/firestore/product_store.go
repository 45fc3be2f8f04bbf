// Package firestore implements the product store gateway against Cloud
// Firestore, the catalogue's system of record.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/glamour-aluminium/catalogue/internal/catalog"
)

// ProductStore reads and writes the products collection. Listing order
// is createdAt descending, decided store-side.
type ProductStore struct {
	client     *firestore.Client
	collection string
}

// New constructs a ProductStore over an existing Firestore client.
func New(client *firestore.Client, collection string) *ProductStore {
	return &ProductStore{client: client, collection: collection}
}

// ListProducts returns the full product collection, newest first.
func (s *ProductStore) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	iter := s.client.Collection(s.collection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var products []catalog.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("store/firestore: list products: %w", err)
		}
		var p catalog.Product
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("store/firestore: decode product %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		products = append(products, p)
	}
	return products, nil
}

// CreateProduct adds a new product document. The store assigns the id
// and stamps createdAt/updatedAt server-side.
func (s *ProductStore) CreateProduct(ctx context.Context, data catalog.ProductData) (string, error) {
	fields := docFields(data)
	fields["createdAt"] = firestore.ServerTimestamp

	ref, _, err := s.client.Collection(s.collection).Add(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("store/firestore: create product: %w", err)
	}
	return ref.ID, nil
}

// UpdateProduct rewrites the writable fields of an existing document and
// refreshes updatedAt. Last write wins; the store enforces no locking.
func (s *ProductStore) UpdateProduct(ctx context.Context, id string, data catalog.ProductData) error {
	if _, err := s.client.Collection(s.collection).Doc(id).Set(ctx, docFields(data), firestore.MergeAll); err != nil {
		if status.Code(err) == codes.NotFound {
			return catalog.ErrNotFound
		}
		return fmt.Errorf("store/firestore: update product %s: %w", id, err)
	}
	return nil
}

// DeleteProduct removes a product document.
func (s *ProductStore) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.client.Collection(s.collection).Doc(id).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return catalog.ErrNotFound
		}
		return fmt.Errorf("store/firestore: delete product %s: %w", id, err)
	}
	return nil
}

func docFields(data catalog.ProductData) map[string]any {
	return map[string]any{
		"name":           data.Name,
		"description":    data.Description,
		"model":          data.Model,
		"category":       data.Category,
		"image":          data.Image,
		"badge":          data.Badge,
		"rating":         data.Rating,
		"reviews":        data.Reviews,
		"features":       data.Features,
		"applications":   data.Applications,
		"specifications": data.Specifications,
		"updatedAt":      firestore.ServerTimestamp,
	}
}
