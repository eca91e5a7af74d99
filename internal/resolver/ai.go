package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"smartgallery/internal/classifier"
	"smartgallery/internal/domain"
)

// downloadSuffix selects a rendition small enough to keep classification
// payloads cheap.
const downloadSuffix = "=w512-h512"

// maxAttempts bounds rate-limit retries per photo.
const maxAttempts = 3

// backoffUnit scales the linear backoff: attempt n waits n*backoffUnit.
const backoffUnit = 15 * time.Second

// ImageFetcher downloads the bytes of one rendered photo.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) (data []byte, mimeType string, err error)
}

// AIResolver resolves metadata by downloading each photo and sending it to
// the external classification service.
//
// Calls across a batch MUST stay sequential: the service's request budget
// (5 requests/minute on the free tier) is enforced with a fixed inter-call
// delay, and parallel calls would blow it and trigger cascading rate-limit
// failures.
type AIResolver struct {
	images     ImageFetcher
	classifier classifier.Classifier
	delay      time.Duration
	sleep      func(time.Duration)
	called     bool
	log        logrus.FieldLogger
}

// NewAIResolver creates a classification-backed resolver. delay is the fixed
// spacing between consecutive photos (at least 12s for a 5 RPM budget).
func NewAIResolver(images ImageFetcher, c classifier.Classifier, delay time.Duration, logger logrus.FieldLogger) *AIResolver {
	return &AIResolver{
		images:     images,
		classifier: c,
		delay:      delay,
		sleep:      time.Sleep,
		log:        logger.WithField("component", "resolver_ai"),
	}
}

// Resolve downloads and classifies one photo. Rate-limit responses are
// retried up to maxAttempts with linearly increasing backoff; everything else
// degrades this one photo to Uncategorized. Never returns an error.
func (r *AIResolver) Resolve(ctx context.Context, ref domain.RawPhotoRef, index int) domain.PhotoMetadata {
	log := r.log.WithField("photo_id", ref.ID)

	// Fixed spacing between photos, independent of retry backoff.
	if r.called {
		r.sleep(r.delay)
	}
	r.called = true

	data, mimeType, err := r.images.FetchImage(ctx, ref.BaseURL+downloadSuffix)
	if err != nil {
		log.WithError(err).Warn("Image fetch failed, photo left uncategorized")
		return uncategorized()
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := r.classifier.Classify(ctx, data, mimeType)
		if err == nil {
			return domain.PhotoMetadata{
				Category:    result.Category,
				Description: result.Description,
				Visible:     true,
			}
		}
		if !errors.Is(err, classifier.ErrRateLimited) {
			log.WithError(err).Warn("Classification failed, photo left uncategorized")
			return uncategorized()
		}
		if attempt == maxAttempts {
			log.WithField("attempts", attempt).Warn("Rate limit retries exhausted, photo left uncategorized")
			return uncategorized()
		}

		wait := time.Duration(attempt) * backoffUnit
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"wait":    wait,
		}).Warn("Classification rate limited, backing off")
		r.sleep(wait)
	}

	return uncategorized()
}

func uncategorized() domain.PhotoMetadata {
	return domain.PhotoMetadata{Category: domain.Uncategorized, Visible: true}
}
