package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage persists blog HTML bodies and hands back a public URL, keeping
// large content out of the database.
type Storage interface {
	// Upload stores the file under name, overwriting any existing object,
	// and returns its public URL.
	Upload(ctx context.Context, name string, reader io.Reader, contentType string) (string, error)

	// Delete removes the object. Missing objects are not an error.
	Delete(ctx context.Context, name string) error
}

// Config holds storage configuration
type Config struct {
	Driver   string // local or s3
	Bucket   string
	Region   string // for s3
	BaseURL  string // public URL base
	BasePath string // for local storage
}

// NewStorage creates a storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Driver {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
