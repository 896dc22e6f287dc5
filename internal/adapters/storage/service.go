// Package storage provides a domain-agnostic interface for S3-compatible object storage.
// The lifecycle module reads about-lookup tables from it and archives raw
// bulk-import payloads into it.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when the requested object key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// StorageService defines the object storage operations used by the application.
type StorageService interface {
	// EnsureBucketExists creates the bucket if it doesn't exist.
	EnsureBucketExists(ctx context.Context, bucket string) error

	// DownloadFile reads an object. The caller closes the returned reader.
	DownloadFile(ctx context.Context, bucket, fileKey string) (io.ReadCloser, error)

	// UploadFile stores reader under folder/fileName (with a unique suffix)
	// and returns the full key.
	UploadFile(ctx context.Context, bucket, folder, fileName, contentType string, reader io.Reader, size int64) (string, error)
}

// Config defines the configuration interface for storage.
type Config interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	IsMinIOEnabled() bool
}

// SplitLocation splits "bucket/key/with/slashes" into bucket and key.
func SplitLocation(location string) (bucket, key string, ok bool) {
	for i := 0; i < len(location); i++ {
		if location[i] == '/' {
			if i == 0 || i == len(location)-1 {
				return "", "", false
			}
			return location[:i], location[i+1:], true
		}
	}
	return "", "", false
}
