package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/glamour-aluminium/catalogue/internal/slug"
)

// ImageUpload is an admin-submitted image attachment.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SnapshotObserver counts snapshot loads by source ("cache" or
// "store").
type SnapshotObserver interface {
	ObserveSnapshotLoad(source string)
}

// Service sequences snapshot reads and admin writes for the catalogue.
// Reads go through the snapshot cache; writes go straight to the store
// and bump the cache version so the next read refetches. The service
// never patches a snapshot in place.
type Service struct {
	store   ProductStore
	media   MediaStore
	cache   *SnapshotCache
	jobs    CleanupEnqueuer
	logger  *slog.Logger
	metrics SnapshotObserver
	group   singleflight.Group
}

// NewService wires the catalogue service. media, cache and jobs may be
// nil; the service then skips image handling, caching and deferred
// cleanup respectively.
func NewService(store ProductStore, media MediaStore, cache *SnapshotCache, jobs CleanupEnqueuer, metrics SnapshotObserver, logger *slog.Logger) *Service {
	return &Service{store: store, media: media, cache: cache, jobs: jobs, metrics: metrics, logger: logger}
}

// Snapshot returns the full product collection, cached when possible.
// Concurrent cold-cache requests share a single store fetch.
func (s *Service) Snapshot(ctx context.Context) ([]Product, error) {
	if products, ok := s.cache.Get(ctx); ok {
		s.observe("cache")
		return products, nil
	}
	v, err, _ := s.group.Do("snapshot", func() (any, error) {
		products, err := s.store.ListProducts(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		for i := range products {
			products[i].Slug = slug.Make(products[i].Name, products[i].ID)
		}
		if err := s.cache.Set(ctx, products); err != nil {
			s.logger.Warn("cache snapshot", slog.Any("error", err))
		}
		s.observe("store")
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Product), nil
}

func (s *Service) observe(source string) {
	if s.metrics != nil {
		s.metrics.ObserveSnapshotLoad(source)
	}
}

// List returns the products matching q, in display order.
func (s *Service) List(ctx context.Context, q Query) ([]Product, error) {
	products, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(products, q), nil
}

// Categories returns the facet list for the current snapshot.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	products, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCategories(products), nil
}

// GetBySlug resolves a product-detail URL segment against the current
// snapshot.
func (s *Service) GetBySlug(ctx context.Context, seg string) (Product, error) {
	products, err := s.Snapshot(ctx)
	if err != nil {
		return Product{}, err
	}
	return Resolve(seg, products)
}

// Create validates the form, uploads the image when one is attached, and
// writes the new product document. A failed document write removes the
// just-uploaded image so no orphan blob remains.
func (s *Service) Create(ctx context.Context, form ProductForm, image *ImageUpload) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}

	data := form.Data()
	var uploaded MediaObject
	if image != nil && s.media != nil {
		obj, err := s.media.Upload(ctx, image.Filename, image.ContentType, image.Reader, image.Size)
		if err != nil {
			return "", fmt.Errorf("upload image: %w", err)
		}
		uploaded = obj
		data.Image = obj.URL
	}

	id, err := s.store.CreateProduct(ctx, data)
	if err != nil {
		if uploaded.Key != "" {
			if cleanupErr := s.media.Delete(ctx, uploaded.Key); cleanupErr != nil {
				s.logger.Warn("remove orphaned image", slog.String("key", uploaded.Key), slog.Any("error", cleanupErr))
			}
		}
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	s.bump(ctx)
	return id, nil
}

// Update validates the form and rewrites the product document. When a
// new image is attached the previous blob is scheduled for cleanup after
// the write succeeds.
func (s *Service) Update(ctx context.Context, id string, form ProductForm, image *ImageUpload) error {
	if err := form.Validate(); err != nil {
		return err
	}

	existing, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	data := form.Data()
	data.Image = existing.Image
	var uploaded MediaObject
	if image != nil && s.media != nil {
		obj, err := s.media.Upload(ctx, image.Filename, image.ContentType, image.Reader, image.Size)
		if err != nil {
			return fmt.Errorf("upload image: %w", err)
		}
		uploaded = obj
		data.Image = obj.URL
	}

	if err := s.store.UpdateProduct(ctx, id, data); err != nil {
		if uploaded.Key != "" {
			if cleanupErr := s.media.Delete(ctx, uploaded.Key); cleanupErr != nil {
				s.logger.Warn("remove orphaned image", slog.String("key", uploaded.Key), slog.Any("error", cleanupErr))
			}
		}
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if uploaded.Key != "" && existing.Image != "" {
		s.scheduleCleanup(ctx, existing.Image)
	}
	s.bump(ctx)
	return nil
}

// Delete removes the product document and schedules its image blob for
// cleanup. The blob removal is deferred so the admin request does not
// block on the object store.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if existing.Image != "" {
		s.scheduleCleanup(ctx, existing.Image)
	}
	s.bump(ctx)
	return nil
}

func (s *Service) findByID(ctx context.Context, id string) (Product, error) {
	products, err := s.Snapshot(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (s *Service) scheduleCleanup(ctx context.Context, imageURL string) {
	if s.jobs == nil || s.media == nil {
		return
	}
	key, ok := s.media.KeyForURL(imageURL)
	if !ok {
		// External URL, nothing of ours to remove.
		return
	}
	if err := s.jobs.EnqueueMediaCleanup(ctx, key); err != nil {
		s.logger.Warn("enqueue media cleanup", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *Service) bump(ctx context.Context) {
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("bump snapshot cache", slog.Any("error", err))
	}
}
