// Package media stores product images as opaque blobs in an
// S3-compatible object store. Uploaded objects are addressed by a
// store-assigned URL; nothing here inspects image bytes.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/glamour-aluminium/catalogue/internal/catalog"
)

// Store implements the image blob gateway over MinIO.
type Store struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewClient builds a MinIO client for the configured endpoint.
func NewClient(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("media: new client: %w", err)
	}
	return client, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func EnsureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("media: bucket exists: %w", err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("media: make bucket: %w", err)
	}
	return nil
}

// New constructs a Store. baseURL is the public prefix under which
// objects in the bucket are served, without a trailing slash.
func New(client *minio.Client, bucket, baseURL string) *Store {
	return &Store{client: client, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload stores an image under products/<uuid>_<filename> and returns
// its key and public URL.
func (s *Store) Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (catalog.MediaObject, error) {
	key := "products/" + uuid.NewString() + "_" + path.Base(filename)
	info, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return catalog.MediaObject{}, fmt.Errorf("media: upload %s: %w", key, err)
	}
	return catalog.MediaObject{Key: info.Key, URL: s.URL(info.Key)}, nil
}

// Delete removes the object stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("media: delete %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL for an object key.
func (s *Store) URL(key string) string {
	return s.baseURL + "/" + key
}

// KeyForURL maps a stored image URL back to its object key. The second
// return is false for URLs outside this store.
func (s *Store) KeyForURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
