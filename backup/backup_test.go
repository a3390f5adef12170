package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRun(t *testing.T) {
	loc := time.UTC
	before := time.Date(2025, 9, 8, 1, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 9, 8, 2, 0, 0, 0, loc), NextRun(before, 2, 0))

	at := time.Date(2025, 9, 8, 2, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 9, 9, 2, 0, 0, 0, loc), NextRun(at, 2, 0))
}

func TestSnapshotCopiesTree(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "qr"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "qr", "pay.png"), []byte("png"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "catalog.xlsx"), []byte("xlsx"), 0644))

	backupDir := t.TempDir()
	dest, err := Snapshot(src, backupDir, time.Date(2025, 9, 8, 2, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(backupDir, "2025-09-08_02-00-00"), dest)

	got, err := os.ReadFile(filepath.Join(dest, "qr", "pay.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(got))
}

func TestCleanupRemovesOldSnapshots(t *testing.T) {
	backupDir := t.TempDir()
	old := filepath.Join(backupDir, "old")
	fresh := filepath.Join(backupDir, "fresh")
	require.NoError(t, os.Mkdir(old, 0755))
	require.NoError(t, os.Mkdir(fresh, 0755))

	past := time.Now().Add(-10 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	removed, err := Cleanup(backupDir, time.Now().Add(-4*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{old}, removed)
	assert.DirExists(t, fresh)
	assert.NoDirExists(t, old)
}
