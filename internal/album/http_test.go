package album

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

func TestHTTPFetcher_FetchAlbum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The album host rejects requests that do not look like a browser.
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		assert.NotEmpty(t, r.Header.Get("Accept-Language"))
		_, _ = w.Write([]byte("<html>album content</html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, 5*time.Second, testLogger())
	html, err := f.FetchAlbum(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<html>album content</html>", html)
}

func TestHTTPFetcher_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, 5*time.Second, testLogger())
	_, err := f.FetchAlbum(context.Background())
	assert.Error(t, err)
}

func TestHTTPFetcher_UnreachableHost(t *testing.T) {
	f := NewHTTPFetcher("http://127.0.0.1:1", time.Second, testLogger())
	_, err := f.FetchAlbum(context.Background())
	assert.Error(t, err)
}

func TestImageFetcher_FetchImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	f := NewImageFetcher(5*time.Second, testLogger())
	data, mimeType, err := f.FetchImage(context.Background(), srv.URL+"/photo=w512-h512")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
	assert.Equal(t, "image/png", mimeType)
}

func TestImageFetcher_MissingContentTypeDefaultsToJPEG(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte{1})
	}))
	defer srv.Close()

	f := NewImageFetcher(5*time.Second, testLogger())
	_, mimeType, err := f.FetchImage(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
}

func TestImageFetcher_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewImageFetcher(5*time.Second, testLogger())
	_, _, err := f.FetchImage(context.Background(), srv.URL)
	assert.Error(t, err)
}
