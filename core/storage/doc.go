// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so property files can be shared through AWS S3
// or a self-hosted MinIO instance. The Client interface is small enough to be
// mocked in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves a property file as a stream.
//   - PutObject: Publishes an exported property file.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "foodfunk")
package storage
