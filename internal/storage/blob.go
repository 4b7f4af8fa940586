package storage

import "io"

// BlobStore archives uploaded source documents so a quiz can be
// re-extracted or audited later.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Delete(key string) error
}
