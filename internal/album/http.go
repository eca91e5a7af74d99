package album

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// browserUserAgent is sent on album requests; the album host rejects requests
// without a browser-like User-Agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// maxImageBytes caps image downloads so a misbehaving host cannot exhaust
// memory. The classifier requests =w512-h512 renditions, which stay far below
// this.
const maxImageBytes = 10 << 20

// HTTPFetcher fetches the album page with a plain HTTP GET. This is the
// default fetch mode; it works as long as the album host keeps embedding photo
// data in the initial HTML response.
type HTTPFetcher struct {
	albumURL string
	client   *http.Client
	log      logrus.FieldLogger
}

// NewHTTPFetcher creates an HTTP album fetcher for the given public album URL.
func NewHTTPFetcher(albumURL string, timeout time.Duration, logger logrus.FieldLogger) *HTTPFetcher {
	return &HTTPFetcher{
		albumURL: albumURL,
		client:   &http.Client{Timeout: timeout},
		log:      logger.WithField("component", "album_fetcher"),
	}
}

// FetchAlbum performs the album page GET and returns the response body text.
func (f *HTTPFetcher) FetchAlbum(ctx context.Context) (string, error) {
	log := f.log.WithField("url", f.albumURL)
	log.Info("Fetching album page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.albumURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build album request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", "th-TH,th;q=0.9,en-US;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Album fetch failed")
		return "", fmt.Errorf("failed to fetch album: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status", resp.StatusCode).Error("Album fetch returned non-2xx status")
		return "", fmt.Errorf("album fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read album response: %w", err)
	}

	log.WithField("html_bytes", len(body)).Info("Album page fetched")
	return string(body), nil
}

// ImageFetcher downloads image bytes for classification.
type ImageFetcher struct {
	client *http.Client
	log    logrus.FieldLogger
}

// NewImageFetcher creates an image downloader with the given per-request
// timeout.
func NewImageFetcher(timeout time.Duration, logger logrus.FieldLogger) *ImageFetcher {
	return &ImageFetcher{
		client: &http.Client{Timeout: timeout},
		log:    logger.WithField("component", "image_fetcher"),
	}
}

// FetchImage GETs the given rendered-photo URL and returns the bytes along
// with the Content-Type reported by the host. A non-2xx response is a hard
// failure for this one photo; callers catch it per-photo rather than aborting
// the batch.
func (f *ImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build image request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.WithError(err).WithField("url", url).Warn("Image fetch failed")
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image bytes: %w", err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return body, mimeType, nil
}
