// Package storage provides the publish targets for static site exports.
//
// This package defines a Storage interface with implementations for:
// - LocalStorage: a directory on disk, served by any static file host
// - R2Storage: a Cloudflare R2 (S3-compatible) bucket
//
// Keys are slash-separated site paths such as "index.html" or
// "static/js/contact.js". Content types are derived from the key when the
// caller does not set one.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// =============================================================================
// Interface Definition
// =============================================================================

// Storage defines the operations an export needs from a publish target.
//
// All methods are context-aware for timeout and cancellation support.
type Storage interface {
	// Put stores data at the specified key. Returns ErrKeyExists if the key
	// already exists and opts.Overwrite is false.
	Put(ctx context.Context, key string, data io.Reader, opts PutOptions) error

	// Get retrieves the data at the specified key. The caller must close
	// the returned reader. Returns ErrNotFound if the key doesn't exist.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)

	// Delete removes the object at the specified key.
	// This operation is idempotent - no error is returned if the key doesn't exist.
	Delete(ctx context.Context, key string) error

	// URL returns the address the object is published at. A zero expires
	// asks for a permanent public URL where the provider has one.
	URL(ctx context.Context, key string, expires time.Duration) (string, error)

	// Exists checks if an object exists at the specified key.
	Exists(ctx context.Context, key string) (bool, error)
}

// =============================================================================
// Data Types
// =============================================================================

// PutOptions configures how an object is stored.
type PutOptions struct {
	// ContentType specifies the MIME type of the object.
	// If empty, it is derived from the key's extension.
	ContentType string

	// CacheControl is sent to browsers by hosts that honor object metadata.
	// If empty, CacheControlFor(key) is used.
	CacheControl string

	// Overwrite allows replacing an existing object at the same key.
	// If false and the key exists, ErrKeyExists is returned.
	Overwrite bool
}

// ObjectInfo contains metadata about a stored object.
type ObjectInfo struct {
	Key          string    // Object key/path
	Size         int64     // Size in bytes
	ContentType  string    // MIME type
	LastModified time.Time // Last modification time
	ETag         string    // Entity tag (if available)
}

// =============================================================================
// Configuration Types
// =============================================================================

// LocalConfig holds configuration for local filesystem storage.
type LocalConfig struct {
	// BasePath is the export directory. Example: "./out"
	BasePath string

	// BaseURL is the public URL the directory is served at, used by URL.
	// Example: "https://example.com"
	BaseURL string
}

// R2Config holds configuration for Cloudflare R2 storage.
type R2Config struct {
	// AccountID is your Cloudflare account ID.
	AccountID string

	// AccessKeyID is the R2 API access key ID.
	AccessKeyID string

	// SecretAccessKey is the R2 API secret key.
	SecretAccessKey string

	// BucketName is the name of the R2 bucket to use.
	BucketName string

	// PublicURL is the public URL for the bucket (custom domain or r2.dev).
	// If empty, presigned URLs are returned by URL.
	PublicURL string

	// Endpoint overrides the account endpoint. Used for S3-compatible
	// stand-ins in tests.
	Endpoint string

	// Region is required by the AWS SDK. R2 ignores it. Default: "auto"
	Region string
}

// =============================================================================
// Provider Constants
// =============================================================================

const (
	// ProviderLocal identifies the local filesystem storage provider.
	ProviderLocal = "local"

	// ProviderR2 identifies the Cloudflare R2 storage provider.
	ProviderR2 = "r2"
)

// New returns the Storage for provider.
func New(provider string, local LocalConfig, r2 R2Config, logger *slog.Logger) (Storage, error) {
	switch provider {
	case ProviderLocal, "":
		return NewLocalStorage(local, logger)
	case ProviderR2:
		return NewR2Storage(r2, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", provider)
	}
}
