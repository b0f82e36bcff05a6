// Package archive provides the object-storage backend for order snapshots.
//
// It wraps the MinIO Go client to provide a simplified interface for the few
// operations the order feature needs: verifying the bucket, writing a JSON
// snapshot after a successful reconciliation, and reading snapshots back.
// The abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock archive interactions for unit testing (see archive/mocks).
//
// # Usage
//
//	client, err := archive.NewClient(cfg.Archive)
//	exists, err := client.BucketExists(ctx, cfg.Archive.Bucket)
package archive
