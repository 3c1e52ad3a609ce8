package file_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/aretw0/akinator/internal/adapters/file"
	"github.com/aretw0/akinator/pkg/domain"
	"github.com/aretw0/akinator/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Store implements TreeStore
var _ ports.TreeStore = (*file.Store)(nil)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "nested", "akinator.tree"))
	ports.RunTreeStoreContract(t, store)
}

func TestFileStore_DefaultPath(t *testing.T) {
	assert.Equal(t, file.DefaultPath, file.New("").Path)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akinator.tree")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a tree"), 0644))

	_, err := file.New(path).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorruptTree)
	assert.NotErrorIs(t, err, domain.ErrTreeNotFound)
}

func TestFileStore_UnreadablePath(t *testing.T) {
	// A directory where the file should be cannot be read as a tree.
	dir := t.TempDir()

	_, err := file.New(dir).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTreeNotFound)
}

func TestFileStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store := file.New(filepath.Join(dir, "akinator.tree"))

	require.NoError(t, store.Save(context.Background(), domain.DefaultTree()))
	require.NoError(t, store.Save(context.Background(), domain.DefaultTree()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "akinator.tree", entries[0].Name())
}

func TestFileStore_SaveInvalidTree(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "akinator.tree")
	store := file.New(path)

	err := store.Save(context.Background(), &domain.Node{Content: "Q?", Yes: domain.NewNode("Cat")})
	assert.ErrorIs(t, err, domain.ErrInvalidTree)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "invalid tree must not be written")
}

func TestFileStore_FailedRenameKeepsDestination(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Windows removes the destination before renaming")
	}
	// A directory cannot be replaced by a file, so the rename fails.
	path := filepath.Join(t.TempDir(), "akinator.tree")
	require.NoError(t, os.Mkdir(path, 0755))

	err := file.New(path).Save(context.Background(), domain.DefaultTree())
	require.Error(t, err)

	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
