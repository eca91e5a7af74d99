package gallery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartgallery/internal/domain"
	"smartgallery/internal/resolver"
)

type stubFetcher struct {
	html string
	err  error
}

func (s *stubFetcher) FetchAlbum(ctx context.Context) (string, error) {
	return s.html, s.err
}

func TestService_Rebuild_EndToEnd(t *testing.T) {
	// Album page with one duplicated photo and one unmapped photo.
	html := `
		https://lh3.googleusercontent.com/pw/ABC123
		https://lh3.googleusercontent.com/pw/ABC123
		https://lh3.googleusercontent.com/pw/ABC123
		https://lh3.googleusercontent.com/pw/XYZ789
	`
	table := map[string]resolver.CuratedEntry{
		"ABC123": {Category: "CCTV & Security", Description: "d1"},
	}
	res := resolver.NewStaticResolver(table, domain.DefaultCategories(), testLogger())
	svc := NewService(&stubFetcher{html: html}, res, 10, testLogger())

	records, err := svc.Rebuild(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2, "duplicates collapse to one record")

	assert.Equal(t, "ABC123", records[0].ID)
	assert.Equal(t, domain.Category("CCTV & Security"), records[0].Category)
	assert.Equal(t, "d1", records[0].Description)
	assert.Equal(t, "https://lh3.googleusercontent.com/pw/ABC123=w800", records[0].URL)

	// XYZ789 is unmapped: it gets the positional default for index 1.
	assert.Equal(t, "XYZ789", records[1].ID)
	assert.Equal(t, domain.Category("Network & Fiber"), records[1].Category)
	assert.NotEmpty(t, records[1].Description)
}

func TestService_Rebuild_AlbumFetchFailureAborts(t *testing.T) {
	res := resolver.NewStaticResolver(nil, domain.DefaultCategories(), testLogger())
	svc := NewService(&stubFetcher{err: errors.New("dns failure")}, res, 10, testLogger())

	_, err := svc.Rebuild(context.Background())
	assert.Error(t, err, "nothing is derivable without the album page")
}

func TestService_Rebuild_NoPhotosIsError(t *testing.T) {
	res := resolver.NewStaticResolver(nil, domain.DefaultCategories(), testLogger())
	svc := NewService(&stubFetcher{html: "<html><body>album went private</body></html>"}, res, 10, testLogger())

	_, err := svc.Rebuild(context.Background())
	assert.Error(t, err, "zero extracted photos must push the caller to the fallback path")
}

func TestService_Rebuild_AllHiddenIsError(t *testing.T) {
	hidden := resolver.ResolverFunc(func(ctx context.Context, ref domain.RawPhotoRef, index int) domain.PhotoMetadata {
		return domain.PhotoMetadata{Category: domain.Uncategorized, Visible: false}
	})
	svc := NewService(&stubFetcher{html: "https://lh3.googleusercontent.com/pw/AP1GczHidden1"}, hidden, 10, testLogger())

	_, err := svc.Rebuild(context.Background())
	assert.Error(t, err, "an all-hidden gallery is equivalent to total failure")
}

func TestService_Rebuild_PreservesExtractionOrder(t *testing.T) {
	html := `
		https://lh3.googleusercontent.com/pw/AP1GczNewest1
		https://lh3.googleusercontent.com/pw/AP1GczMiddle1
		https://lh3.googleusercontent.com/pw/AP1GczOldest1
	`
	res := resolver.NewStaticResolver(map[string]resolver.CuratedEntry{}, domain.DefaultCategories(), testLogger())
	svc := NewService(&stubFetcher{html: html}, res, 10, testLogger())

	records, err := svc.Rebuild(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "AP1GczNewest1", records[0].ID, "newest-first source order must survive assembly")
	assert.Equal(t, "AP1GczMiddle1", records[1].ID)
	assert.Equal(t, "AP1GczOldest1", records[2].ID)
}
