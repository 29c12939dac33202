package checks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"foodfunk/core/source"
	"foodfunk/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectReport describes the shared property file in the storage bucket.
type ObjectReport struct {
	Bucket   string   `json:"bucket"`
	Object   string   `json:"object"`
	Exists   bool     `json:"exists"`
	Sections []string `json:"sections"`
	// Missing lists required sections the object does not define.
	Missing []string `json:"missing"`
}

// CheckObject verifies that the property object exists and defines every
// required section.
func CheckObject(ctx context.Context, client storage.Client, bucket, object string, required []string) (*ObjectReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	report := &ObjectReport{Bucket: bucket, Object: object, Sections: []string{}, Missing: []string{}}

	data, err := readObject(ctx, client, bucket, object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			report.Missing = append(report.Missing, required...)
			return report, nil
		}
		return nil, err
	}
	report.Exists = true

	doc, err := source.ParseSection(data, source.FormatFromPath(object), "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", object, err)
	}
	for name, raw := range doc {
		if _, ok := raw.(map[string]any); ok {
			report.Sections = append(report.Sections, name)
		}
	}
	sort.Strings(report.Sections)

	for _, name := range required {
		if _, ok := doc[name].(map[string]any); !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	return report, nil
}

// FixObject uploads data as the property object.
func FixObject(ctx context.Context, client storage.Client, bucket, object string, logger *zap.Logger, data []byte) error {
	_, err := client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		logger.Error("Failed to upload property file", zap.String("object", object), zap.Error(err))
		return err
	}
	logger.Info("Uploaded default property file", zap.String("object", object))
	return nil
}

func readObject(ctx context.Context, client storage.Client, bucket, object string) ([]byte, error) {
	obj, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}
