// Package storage defines the content directory abstraction.
package storage

import "time"

// FileMetadata is a lightweight description returned by list operations.
type FileMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Provider is the interface for content directory file operations.
type Provider interface {
	// List returns metadata for every file under dir (relative to root)
	// whose name ends with one of exts. An empty exts matches every file.
	List(dir string, exts ...string) ([]FileMetadata, error)
	// Read returns the raw bytes of the file at path (relative to root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to root).
	Write(path string, content []byte) error
	// Root returns the absolute directory the provider is rooted at.
	Root() string
}
