package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartgallery/internal/domain"
)

func TestFallback_NonEmptyAndDeterministic(t *testing.T) {
	records := Fallback()
	require.NotEmpty(t, records)
	assert.Equal(t, records, Fallback(), "fallback must be deterministic")
}

func TestFallback_CoversEveryDisplayCategory(t *testing.T) {
	byCategory := make(map[domain.Category]int)
	for _, rec := range Fallback() {
		byCategory[rec.Category]++
	}

	for _, label := range domain.DefaultCategories().Labels() {
		if label == domain.Uncategorized {
			// The fallback set is curated content; nothing in it is
			// uncategorized.
			continue
		}
		assert.NotZero(t, byCategory[label], "no fallback record for category %q", label)
	}
}

func TestFallback_RecordsAreComplete(t *testing.T) {
	categories := domain.DefaultCategories()
	seenIDs := make(map[string]struct{})
	for _, rec := range Fallback() {
		assert.NotEmpty(t, rec.ID)
		assert.NotEmpty(t, rec.URL)
		assert.NotEmpty(t, rec.Description)
		assert.True(t, categories.Contains(rec.Category), "category %q outside the enumeration", rec.Category)

		_, dup := seenIDs[rec.ID]
		assert.False(t, dup, "duplicate fallback id %q", rec.ID)
		seenIDs[rec.ID] = struct{}{}
	}
}
