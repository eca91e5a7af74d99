// Package resolver produces category/description metadata for extracted
// photos. Three interchangeable strategies exist; exactly one is active per
// deployment. Every strategy is total: all failure modes degrade to an
// Uncategorized result, never an error to the caller.
package resolver

import (
	"context"

	"smartgallery/internal/domain"
)

// Resolver resolves metadata for one photo. The index is the photo's position
// in extraction order; strategies that want deterministic defaults key off it.
type Resolver interface {
	Resolve(ctx context.Context, ref domain.RawPhotoRef, index int) domain.PhotoMetadata
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ctx context.Context, ref domain.RawPhotoRef, index int) domain.PhotoMetadata

func (f ResolverFunc) Resolve(ctx context.Context, ref domain.RawPhotoRef, index int) domain.PhotoMetadata {
	return f(ctx, ref, index)
}
