// Package server exposes the gallery over HTTP: one public read endpoint and
// an admin surface for cache busting and photo curation.
package server

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"smartgallery/internal/album"
	"smartgallery/internal/config"
	"smartgallery/internal/gallery"
	"smartgallery/internal/storage"
)

// adminKeyHeader carries the shared admin secret. Admin actions can trigger
// an expensive rate-limited rebuild, so they sit behind this trust boundary.
const adminKeyHeader = "X-Admin-Key"

// Handler holds dependencies for the HTTP handlers.
type Handler struct {
	cfg     config.Config
	cache   *gallery.Cache
	repo    storage.PhotoRepository
	fetcher album.Fetcher
	log     logrus.FieldLogger
}

// NewHandler creates the HTTP handler set.
func NewHandler(cfg config.Config, cache *gallery.Cache, repo storage.PhotoRepository, fetcher album.Fetcher, logger logrus.FieldLogger) *Handler {
	return &Handler{
		cfg:     cfg,
		cache:   cache,
		repo:    repo,
		fetcher: fetcher,
		log:     logger.WithField("component", "http_handler"),
	}
}

// Router builds the chi router with all routes and middleware registered.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Minute)) // AI rebuilds are legitimately slow

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", adminKeyHeader},
		MaxAge:         300,
	})
	r.Use(corsHandler.Handler)

	r.Get("/api/gallery", h.GetGallery)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(h.requireAdminKey)
		r.Post("/revalidate", h.Revalidate)
		r.Get("/debug", h.DebugAlbum)
		r.Route("/photos", func(r chi.Router) {
			r.Get("/", h.ListPhotos)
			r.Post("/seed", h.SeedPhotos)
			r.Put("/{photo_id}", h.UpsertPhoto)
			r.Patch("/{photo_id}/visibility", h.SetPhotoVisibility)
		})
	})

	return r
}

// requireAdminKey rejects requests whose admin key header does not match the
// configured secret. Constant-time compare keeps the key unguessable through
// timing.
func (h *Handler) requireAdminKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(adminKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.cfg.AdminKey)) != 1 {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logrus.WithError(err).Error("Error encoding JSON response")
		}
	}
}
