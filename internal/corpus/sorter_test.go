package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"credence/internal/classify"
)

// sortFixture builds a folder with two trained subfolders and returns their
// paths.
func sortFixture(t *testing.T) (root, spam, ham string) {
	t.Helper()
	root = t.TempDir()
	spam = filepath.Join(root, "spam")
	ham = filepath.Join(root, "ham")
	writeFile(t, filepath.Join(spam, "1.txt"), "buy cheap pills now")
	writeFile(t, filepath.Join(spam, "2.txt"), "cheap offer buy")
	writeFile(t, filepath.Join(ham, "1.txt"), "lunch meeting tomorrow")
	writeFile(t, filepath.Join(ham, "2.txt"), "quarterly report attached")
	return root, spam, ham
}

func newTestSorter(t *testing.T, opts ...SorterOption) *Sorter {
	t.Helper()
	logger := zap.NewNop()
	return NewSorter(NewSource(logger, 0), classify.NewService(logger), logger, opts...)
}

func TestClassifyFile(t *testing.T) {
	root, spam, ham := sortFixture(t)
	loose := filepath.Join(root, "incoming.txt")
	writeFile(t, loose, "buy pills")

	sorter := newTestSorter(t)
	result, err := sorter.ClassifyFile(context.Background(), loose, []string{spam, ham})
	require.NoError(t, err)
	assert.Equal(t, spam, result.Label)
}

func TestSortFolder(t *testing.T) {
	root, spam, ham := sortFixture(t)
	writeFile(t, filepath.Join(root, "offer.txt"), "cheap pills")
	writeFile(t, filepath.Join(root, "agenda.txt"), "meeting report")

	sorter := newTestSorter(t)
	moves, err := sorter.SortFolder(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, moves, 2)

	assert.FileExists(t, filepath.Join(spam, "offer.txt"))
	assert.FileExists(t, filepath.Join(ham, "agenda.txt"))
	assert.NoFileExists(t, filepath.Join(root, "offer.txt"))
	assert.NoFileExists(t, filepath.Join(root, "agenda.txt"))
}

func TestSortFolderKeepsExistingDestination(t *testing.T) {
	root, spam, _ := sortFixture(t)
	writeFile(t, filepath.Join(root, "1.txt"), "cheap pills")
	// Destination name collides with a training file already in spam.

	sorter := newTestSorter(t)
	moves, err := sorter.SortFolder(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.True(t, moves[0].Skipped)
	assert.Equal(t, filepath.Join(spam, "1.txt"), moves[0].Dest)
	assert.FileExists(t, filepath.Join(root, "1.txt"))
}

func TestSortFolderDryRun(t *testing.T) {
	root, _, _ := sortFixture(t)
	writeFile(t, filepath.Join(root, "offer.txt"), "cheap pills")

	sorter := newTestSorter(t, WithDryRun(true))
	moves, err := sorter.SortFolder(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.True(t, moves[0].Skipped)
	assert.FileExists(t, filepath.Join(root, "offer.txt"))
}

func TestSortFolderNoSubfolders(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "loose.txt"), "x")

	sorter := newTestSorter(t)
	_, err := sorter.SortFolder(context.Background(), root)
	assert.ErrorIs(t, err, ErrNoSubfolders)
}

func TestSortFolderCancelled(t *testing.T) {
	root, _, _ := sortFixture(t)
	writeFile(t, filepath.Join(root, "offer.txt"), "cheap pills")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sorter := newTestSorter(t)
	_, err := sorter.SortFolder(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSortFolderEmptyTrainingFolder(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	writeFile(t, filepath.Join(root, "loose.txt"), "anything")

	sorter := newTestSorter(t)
	moves, err := sorter.SortFolder(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	// A single candidate class wins by default and the file is filed there.
	assert.Equal(t, filepath.Join(root, "empty", "loose.txt"), moves[0].Dest)
}
