// Package blob stores the raw bytes of uploaded files, on local disk or in an
// S3-compatible bucket.
package blob

import (
	"context"
	"encoding/hex"
	"errors"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ErrNotFound is returned by Get for unknown keys.
var ErrNotFound = errors.New("blob not found")

// Store is the port for raw upload storage.
type Store interface {
	// Put saves data under key and returns a URI describing where it went.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Key returns the content address for data: blake2b-256 in hex plus the
// lower-cased extension of filename.
func Key(data []byte, filename string) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]) + strings.ToLower(filepath.Ext(filename))
}

func validKey(key string) bool {
	return key != "" && !strings.Contains(key, "/") && !strings.Contains(key, `\`) && key != "." && key != ".."
}
