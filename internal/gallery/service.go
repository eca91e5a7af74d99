package gallery

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"smartgallery/internal/album"
	"smartgallery/internal/domain"
	"smartgallery/internal/extractor"
	"smartgallery/internal/resolver"
)

// Service runs the full fetch, extract, resolve, assemble pipeline.
type Service struct {
	fetcher   album.Fetcher
	resolver  resolver.Resolver
	maxPhotos int
	log       logrus.FieldLogger
}

// NewService wires the pipeline stages together.
func NewService(fetcher album.Fetcher, res resolver.Resolver, maxPhotos int, logger logrus.FieldLogger) *Service {
	return &Service{
		fetcher:   fetcher,
		resolver:  res,
		maxPhotos: maxPhotos,
		log:       logger.WithField("component", "gallery_service"),
	}
}

// Rebuild recomputes the gallery from scratch. An album fetch failure aborts
// the whole rebuild (nothing is derivable without the page); an album page
// with no extractable photos, or a batch that resolves to zero visible
// records, is also an error so the caller falls back. With the AI resolver a
// rebuild is a slow blocking operation: sequential rate-limited calls take
// on the order of batch size times the inter-call delay, possibly minutes.
func (s *Service) Rebuild(ctx context.Context) ([]domain.GalleryRecord, error) {
	html, err := s.fetcher.FetchAlbum(ctx)
	if err != nil {
		return nil, fmt.Errorf("album fetch failed: %w", err)
	}

	refs := extractor.Extract(html)
	if len(refs) == 0 {
		s.log.WithField("html_bytes", len(html)).Warn("No photos found in album page")
		return nil, fmt.Errorf("no photos found in album page")
	}

	s.log.WithFields(logrus.Fields{
		"found":      len(refs),
		"max_photos": s.maxPhotos,
	}).Info("Extracted photo refs, resolving metadata")

	records := Assemble(ctx, refs, s.resolver, s.maxPhotos)
	if len(records) == 0 {
		return nil, fmt.Errorf("no visible gallery records after assembly")
	}

	s.log.WithField("records", len(records)).Info("Gallery rebuilt")
	return records, nil
}
