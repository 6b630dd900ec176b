package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"mime"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"image-gallery/pkg/config"
)

// ErrNoBucket is returned when publishing without BUCKET_NAME
var ErrNoBucket = errors.New("BUCKET_NAME environment variable not set")

// ObjectStore is the remote side of a publish
type ObjectStore interface {
	List(ctx context.Context, prefix string) (map[string]bool, error)
	Upload(ctx context.Context, name, contentType string, data []byte) error
}

// GCSStore implements ObjectStore on a Cloud Storage bucket
type GCSStore struct {
	bucket *storage.BucketHandle
}

// NewGCSStore wraps a bucket handle
func NewGCSStore(bucket *storage.BucketHandle) *GCSStore {
	return &GCSStore{bucket: bucket}
}

// List returns the names of all objects under prefix
func (s *GCSStore) List(ctx context.Context, prefix string) (map[string]bool, error) {
	names := make(map[string]bool)
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating objects: %w", err)
		}
		names[obj.Name] = true
	}
	return names, nil
}

// Upload writes data to the named object
func (s *GCSStore) Upload(ctx context.Context, name, contentType string, data []byte) error {
	writer := s.bucket.Object(name).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("Writer.Write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("Writer.Close: %w", err)
	}
	return nil
}

// PublishResult counts what a publish did
type PublishResult struct {
	Uploaded int
	Skipped  int
}

// Publish uploads the rendered page and every artifact under rootDir.
// Artifacts already present remotely are skipped since their random names
// never get reused; the page is always replaced.
func Publish(ctx context.Context, store ObjectStore, rootDir string) (PublishResult, error) {
	var result PublishResult

	prefix := config.ImagesDirName + "/" + config.GeneratedDirName + "/"
	existing, err := store.List(ctx, prefix)
	if err != nil {
		return result, err
	}

	pagePath := filepath.Join(rootDir, config.PageFileName)
	if err := uploadPath(ctx, store, pagePath, config.PageFileName); err != nil {
		return result, err
	}
	result.Uploaded++

	generatedDir := filepath.Join(rootDir, config.ImagesDirName, config.GeneratedDirName)
	err = filepath.WalkDir(generatedDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !IsImageFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if existing[name] {
			result.Skipped++
			return nil
		}

		if err := uploadPath(ctx, store, path, name); err != nil {
			return err
		}
		log.Printf("Uploaded: %s", name)
		result.Uploaded++
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("publish: %w", err)
	}

	return result, nil
}

func uploadPath(ctx context.Context, store ObjectStore, path, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := store.Upload(ctx, name, contentType, data); err != nil {
		return fmt.Errorf("error uploading %s: %w", name, err)
	}
	return nil
}
