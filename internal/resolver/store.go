package resolver

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"smartgallery/internal/domain"
	"smartgallery/internal/storage"
)

// StoreResolver resolves metadata from the durable photo store. Photos
// without a stored record exist but have not been curated yet; they resolve
// as not visible so they stay out of the public gallery until an operator
// approves them.
type StoreResolver struct {
	repo storage.PhotoRepository
	log  logrus.FieldLogger
}

// NewStoreResolver creates a durable-store-backed resolver.
func NewStoreResolver(repo storage.PhotoRepository, logger logrus.FieldLogger) *StoreResolver {
	return &StoreResolver{
		repo: repo,
		log:  logger.WithField("component", "resolver_store"),
	}
}

// Resolve looks the photo up by full identifier. Store errors degrade to a
// hidden Uncategorized result; they never propagate.
func (r *StoreResolver) Resolve(ctx context.Context, ref domain.RawPhotoRef, index int) domain.PhotoMetadata {
	photo, err := r.repo.Get(ctx, ref.ID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.WithError(err).WithField("photo_id", ref.ID).Error("Store lookup failed")
		}
		return domain.PhotoMetadata{Category: domain.Uncategorized, Visible: false}
	}
	return photo.Metadata()
}
