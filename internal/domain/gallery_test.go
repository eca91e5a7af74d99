package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategorySet_AlwaysCarriesFallback(t *testing.T) {
	set := NewCategorySet("A", "B")
	assert.True(t, set.Contains(Uncategorized))

	// Passing Uncategorized explicitly must not duplicate it.
	withFallback := NewCategorySet("A", Uncategorized, "B")
	count := 0
	for _, l := range withFallback.Labels() {
		if l == Uncategorized {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCategorySet_Coerce(t *testing.T) {
	set := DefaultCategories()

	assert.Equal(t, Category("CCTV & Security"), set.Coerce("CCTV & Security"))
	assert.Equal(t, Uncategorized, set.Coerce("Gardening"))
	assert.Equal(t, Uncategorized, set.Coerce(""))
	assert.Equal(t, Uncategorized, set.Coerce("cctv & security"), "labels are case sensitive")
}

func TestDefaultCategories(t *testing.T) {
	labels := DefaultCategories().Labels()
	require.Len(t, labels, 6)
	assert.Equal(t, Uncategorized, labels[len(labels)-1], "fallback label sits last")
}

func TestPhotoMetadataProjection(t *testing.T) {
	photo := Photo{ID: "p1", Category: "On-site Work", Description: "d", Hidden: true}

	meta := photo.Metadata()
	assert.Equal(t, Category("On-site Work"), meta.Category)
	assert.Equal(t, "d", meta.Description)
	assert.False(t, meta.Visible, "hidden photos project as not visible")
}
