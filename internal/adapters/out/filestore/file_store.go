// Package filestore persists uploaded item images on local disk.
package filestore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"marketplace/internal/core/ports"
)

var _ ports.FileStore = (*DiskFileStore)(nil)

// DiskFileStore writes uploads into a base directory under generated names:
// eight random bytes hex-encoded plus the original extension, so concurrent
// uploads of the same filename never collide or overwrite.
type DiskFileStore struct {
	baseDir string
}

// NewDiskFileStore creates a file store rooted at baseDir, creating the
// directory when missing.
func NewDiskFileStore(baseDir string) (*DiskFileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", baseDir, err)
	}
	return &DiskFileStore{baseDir: baseDir}, nil
}

// Save stores the upload and returns the generated file name.
func (s *DiskFileStore) Save(_ context.Context, originalFilename string, content io.Reader) (string, error) {
	var random [8]byte
	if _, err := rand.Read(random[:]); err != nil {
		return "", fmt.Errorf("generate file name: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	name := hex.EncodeToString(random[:]) + ext

	file, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}
