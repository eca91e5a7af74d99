package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"smartgallery/internal/domain"
	"smartgallery/internal/extractor"
	"smartgallery/internal/resolver"
	"smartgallery/internal/storage"
)

// GetGallery serves the current gallery records. Idempotent and safe to call
// arbitrarily often; the cache absorbs the cost. It never returns an error
// status for pipeline failures; the cache hands back fallback records
// instead, and failures are visible only in the logs.
func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	records := h.cache.Get(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"photos": records,
		"count":  len(records),
	})
}

// Revalidate busts the gallery cache so the next read rebuilds it.
func (h *Handler) Revalidate(w http.ResponseWriter, r *http.Request) {
	h.cache.Invalidate()
	h.log.Info("Gallery cache invalidated by admin request")
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Gallery cache cleared. Next read will rebuild the gallery.",
	})
}

// DebugAlbum fetches the album page and reports how each extraction pattern
// fared, for diagnosing album markup changes.
func (h *Handler) DebugAlbum(w http.ResponseWriter, r *http.Request) {
	html, err := h.fetcher.FetchAlbum(r.Context())
	if err != nil {
		h.log.WithError(err).Error("Debug album fetch failed")
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "album fetch failed: " + err.Error()})
		return
	}

	diag := extractor.Diagnose(html)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"html_length": len(html),
		"diagnostics": diag,
	})
}

// ListPhotos returns all curated photo records, including hidden ones.
func (h *Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.repo.List(r.Context(), false)
	if err != nil {
		h.log.WithError(err).Error("Failed to list photos")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list photos"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"photos": photos,
		"count":  len(photos),
	})
}

// UpsertPhoto stores or replaces curation metadata for one photo.
func (h *Handler) UpsertPhoto(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photo_id")

	var req struct {
		Category    string `json:"category"`
		Description string `json:"description"`
		Hidden      bool   `json:"hidden"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Category == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category is required"})
		return
	}

	photo := domain.Photo{
		ID:          photoID,
		Category:    domain.Category(req.Category),
		Description: req.Description,
		Hidden:      req.Hidden,
		UpdatedAt:   time.Now(),
	}
	if err := h.repo.Upsert(r.Context(), photo); err != nil {
		h.log.WithError(err).WithField("photo_id", photoID).Error("Failed to upsert photo")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save photo metadata"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"photo": photo})
}

// SetPhotoVisibility approves or hides one photo.
func (h *Handler) SetPhotoVisibility(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photo_id")

	var req struct {
		Visible bool `json:"visible"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := h.repo.SetVisible(r.Context(), photoID, req.Visible); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "photo not found"})
			return
		}
		h.log.WithError(err).WithField("photo_id", photoID).Error("Failed to update photo visibility")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update visibility"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"photo_id": photoID,
		"visible":  req.Visible,
	})
}

// SeedPhotos loads the built-in curated table into the durable store,
// pre-approving every seeded photo. Useful when switching a deployment from
// the static strategy to the store strategy.
func (h *Handler) SeedPhotos(w http.ResponseWriter, r *http.Request) {
	seeded := 0
	for id, entry := range resolver.CuratedTable() {
		photo := domain.Photo{
			ID:          id,
			Category:    entry.Category,
			Description: entry.Description,
			Hidden:      false,
			UpdatedAt:   time.Now(),
		}
		if err := h.repo.Upsert(r.Context(), photo); err != nil {
			h.log.WithError(err).WithField("photo_id", id).Error("Seed upsert failed")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "seed failed at photo " + id})
			return
		}
		seeded++
	}

	h.log.WithField("seeded", seeded).Info("Curated table seeded into photo store")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "curated table seeded",
		"seeded":  seeded,
	})
}
