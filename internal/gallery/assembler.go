// Package gallery assembles extracted photo refs and resolved metadata into
// the display-ready record list served to the site, behind a TTL cache.
package gallery

import (
	"context"

	"smartgallery/internal/domain"
	"smartgallery/internal/resolver"
)

// displaySuffix is appended to each base URL to produce the rendition the
// gallery UI displays.
const displaySuffix = "=w800"

// Rendered dimensions reported to the UI layout engine.
const (
	displayWidth  = 1200
	displayHeight = 800
)

// Assemble turns extracted refs into display-ready gallery records. The input
// is capped to maxPhotos BEFORE any metadata is resolved: the resolver may be
// rate-limited and expensive, so the cap bounds its cost, not just the
// response size. Records whose metadata is not visible are dropped. An empty
// result is returned as-is; the caller decides whether that means fallback.
func Assemble(ctx context.Context, refs []domain.RawPhotoRef, res resolver.Resolver, maxPhotos int) []domain.GalleryRecord {
	if len(refs) > maxPhotos {
		refs = refs[:maxPhotos]
	}

	var records []domain.GalleryRecord
	for i, ref := range refs {
		meta := res.Resolve(ctx, ref, i)
		if !meta.Visible {
			continue
		}
		records = append(records, domain.GalleryRecord{
			ID:          ref.ID,
			URL:         ref.BaseURL + displaySuffix,
			Width:       displayWidth,
			Height:      displayHeight,
			Category:    meta.Category,
			Description: meta.Description,
		})
	}
	return records
}
