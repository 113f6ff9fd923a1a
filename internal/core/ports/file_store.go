package ports

import (
	"context"
	"io"
)

// FileStore persists uploaded item images and derives a stable reference for
// later retrieval. Implementations generate an opaque name from random bytes
// plus the original extension so uploads never collide or overwrite.
type FileStore interface {
	// Save stores the upload and returns the generated reference.
	Save(ctx context.Context, originalFilename string, content io.Reader) (string, error)
}
