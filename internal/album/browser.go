package album

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
)

// BrowserFetcher fetches the album page through headless Chrome using rod.
// The album host renders its photo grid with client-side script; whenever it
// stops embedding photo data in the initial HTML response, the plain HTTP
// fetcher finds nothing and this mode becomes the workable alternative.
type BrowserFetcher struct {
	albumURL string
	timeout  time.Duration
	log      logrus.FieldLogger
}

// NewBrowserFetcher creates a headless-browser album fetcher. A fresh browser
// is launched per fetch; the cache layer calls this at most once per TTL, so
// the launch cost is acceptable.
func NewBrowserFetcher(albumURL string, timeout time.Duration, logger logrus.FieldLogger) *BrowserFetcher {
	return &BrowserFetcher{
		albumURL: albumURL,
		timeout:  timeout,
		log:      logger.WithField("component", "album_fetcher_browser"),
	}
}

// FetchAlbum renders the album page and returns its post-load HTML.
func (f *BrowserFetcher) FetchAlbum(ctx context.Context) (html string, err error) {
	log := f.log.WithField("url", f.albumURL)
	log.Info("Fetching album page via headless browser")

	path, exists := launcher.LookPath()
	if !exists {
		log.Error("Cannot find browser executable for rod")
		return "", errors.New("rod browser dependency not found")
	}
	u := launcher.New().Bin(path).MustLaunch()
	browser := rod.New().ControlURL(u)
	if err = browser.Connect(); err != nil {
		log.WithError(err).Error("Failed to connect to rod browser")
		return "", fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			log.WithError(closeErr).Error("Error closing rod browser instance")
			if err == nil {
				err = fmt.Errorf("error closing browser: %w", closeErr)
			}
		}
	}()

	var page *rod.Page
	page, err = browser.Page(proto.TargetCreateTarget{URL: f.albumURL})
	if err != nil {
		log.WithError(err).Error("Failed to create rod page")
		return "", fmt.Errorf("failed to create page: %w", err)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			log.WithError(closeErr).Error("Error closing rod page")
			if err == nil {
				err = fmt.Errorf("error closing page: %w", closeErr)
			}
		}
	}()

	pageCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(pageCtx)

	if err = page.WaitLoad(); err != nil {
		if errors.Is(pageCtx.Err(), context.DeadlineExceeded) {
			log.WithError(pageCtx.Err()).Warn("Album page load timed out")
			return "", fmt.Errorf("album fetch timed out: %w", pageCtx.Err())
		}
		log.WithError(err).Error("Failed to wait for album page load")
		return "", fmt.Errorf("failed waiting for page load: %w", err)
	}

	html, err = page.HTML()
	if err != nil {
		log.WithError(err).Error("Failed to read rendered album HTML")
		return "", fmt.Errorf("failed to read page html: %w", err)
	}

	log.WithField("html_bytes", len(html)).Info("Album page rendered")
	return html, nil
}
