package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartgallery/internal/domain"
)

// setupTestDB creates a temporary BadgerDB instance for testing.
// It returns the repository instance and a cleanup function.
func setupTestDB(t *testing.T) (*BadgerRepository, func()) {
	t.Helper()

	tempDir := t.TempDir()

	testLogger := logrus.New()
	testLogger.SetOutput(os.Stderr)
	testLogger.SetLevel(logrus.ErrorLevel)

	repo, err := NewBadgerRepository(tempDir, testLogger)
	require.NoError(t, err, "Failed to create test BadgerDB repository")

	cleanup := func() {
		err := repo.Close()
		assert.NoError(t, err, "Failed to close test BadgerDB repository")
	}

	return repo, cleanup
}

func TestBadgerRepository_UpsertAndGet(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	photo := domain.Photo{
		ID:          "AP1GczTest01",
		Category:    "CCTV & Security",
		Description: "pole-mounted camera install",
		Hidden:      false,
		UpdatedAt:   time.Now(),
	}

	err := repo.Upsert(ctx, photo)
	require.NoError(t, err, "Failed to upsert photo")

	got, err := repo.Get(ctx, photo.ID)
	require.NoError(t, err, "Failed to get photo")
	assert.Equal(t, photo.ID, got.ID)
	assert.Equal(t, photo.Category, got.Category)
	assert.Equal(t, photo.Description, got.Description)
	assert.False(t, got.Hidden)

	// --- Test overwriting (Upsert should replace) ---
	updated := photo
	updated.Category = "Network & Fiber"
	updated.Description = "reclassified after review"
	err = repo.Upsert(ctx, updated)
	require.NoError(t, err, "Failed to update photo")

	got, err = repo.Get(ctx, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Category("Network & Fiber"), got.Category)
	assert.Equal(t, "reclassified after review", got.Description)

	// --- Test Get for a missing identifier ---
	_, err = repo.Get(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)

	// --- Test Upsert without an identifier ---
	err = repo.Upsert(ctx, domain.Photo{Category: "On-site Work"})
	assert.Error(t, err, "Upsert without an ID must fail")
}

func TestBadgerRepository_List(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	older := domain.Photo{
		ID:        "AP1GczOld001",
		Category:  "On-site Work",
		Hidden:    false,
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	newer := domain.Photo{
		ID:        "AP1GczNew001",
		Category:  "Team & Training",
		Hidden:    false,
		UpdatedAt: time.Now(),
	}
	hidden := domain.Photo{
		ID:        "AP1GczHid001",
		Category:  "Software & AI",
		Hidden:    true,
		UpdatedAt: time.Now().Add(-time.Minute),
	}

	require.NoError(t, repo.Upsert(ctx, older))
	require.NoError(t, repo.Upsert(ctx, newer))
	require.NoError(t, repo.Upsert(ctx, hidden))

	// --- All photos, newest-updated first ---
	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, newer.ID, all[0].ID, "newest update should come first")
	assert.Equal(t, hidden.ID, all[1].ID)
	assert.Equal(t, older.ID, all[2].ID)

	// --- Visible-only filter ---
	visible, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	for _, p := range visible {
		assert.False(t, p.Hidden)
	}

	// --- Empty store ---
	empty, cleanup2 := setupTestDB(t)
	defer cleanup2()
	none, err := empty.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBadgerRepository_SetVisible(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	photo := domain.Photo{
		ID:        "AP1GczVis001",
		Category:  "CCTV & Security",
		Hidden:    true,
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Upsert(ctx, photo))

	// --- Approve the photo ---
	err := repo.SetVisible(ctx, photo.ID, true)
	require.NoError(t, err, "Failed to set photo visible")

	got, err := repo.Get(ctx, photo.ID)
	require.NoError(t, err)
	assert.False(t, got.Hidden)
	assert.True(t, got.UpdatedAt.After(photo.UpdatedAt), "visibility change should bump UpdatedAt")

	// --- Hide it again ---
	require.NoError(t, repo.SetVisible(ctx, photo.ID, false))
	got, err = repo.Get(ctx, photo.ID)
	require.NoError(t, err)
	assert.True(t, got.Hidden)

	// --- Unknown identifier ---
	err = repo.SetVisible(ctx, "does-not-exist", true)
	assert.ErrorIs(t, err, ErrNotFound)
}
