package source

import (
	"context"
	"fmt"
	"io"

	"foodfunk/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageSource reads a section from a property file kept in object storage.
type StorageSource struct {
	client  storage.Client
	bucket  string
	object  string
	section string
}

// NewStorageSource creates a storage source for section of bucket/object.
func NewStorageSource(client storage.Client, bucket, object, section string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, object: object, section: section}
}

// Name implements Source.
func (s *StorageSource) Name() string {
	return "storage:" + s.bucket + "/" + s.object
}

// Load implements Source.
func (s *StorageSource) Load(ctx context.Context) (map[string]any, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.object, err)
	}

	entries, err := ParseSection(data, FormatFromPath(s.object), s.section)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.object, err)
	}
	return entries, nil
}
