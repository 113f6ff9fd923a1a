package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marketplace/internal/adapters/out/filestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DiskFileStore_Save_WritesContentUnderGeneratedName(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store, err := filestore.NewDiskFileStore(dir)
	require.NoError(t, err)

	// Act
	name, err := store.Save(context.Background(), "photo.PNG", strings.NewReader("image-bytes"))

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"), "extension should be kept lowercased")
	assert.Len(t, name, 16+len(".png"), "name should be eight random bytes hex encoded plus extension")

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func Test_DiskFileStore_Save_SameFilenameNeverCollides(t *testing.T) {
	// Arrange
	store, err := filestore.NewDiskFileStore(t.TempDir())
	require.NoError(t, err)

	// Act
	first, err := store.Save(context.Background(), "photo.jpg", strings.NewReader("first"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "photo.jpg", strings.NewReader("second"))
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, first, second)
}

func Test_DiskFileStore_Save_FilenameWithoutExtension(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store, err := filestore.NewDiskFileStore(dir)
	require.NoError(t, err)

	// Act
	name, err := store.Save(context.Background(), "upload", strings.NewReader("data"))

	// Assert
	require.NoError(t, err)
	assert.Len(t, name, 16)
	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func Test_NewDiskFileStore_CreatesMissingDirectory(t *testing.T) {
	// Arrange
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	// Act
	_, err := filestore.NewDiskFileStore(dir)

	// Assert
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
