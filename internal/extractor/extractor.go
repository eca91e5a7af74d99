// Package extractor pulls photo identifiers out of a scraped Google Photos
// album page. It is pure text processing with no I/O and no errors; an album
// page with no recognizable photos yields an empty result.
package extractor

import (
	"regexp"
	"strings"

	"smartgallery/internal/domain"
)

// photoHost is the image host all extracted base URLs are rebuilt against.
const photoHost = "https://lh3.googleusercontent.com/pw/"

// prefixLen is the identifier prefix length used as the join key for the
// curated metadata table. Long enough that distinct photos have not been
// observed to collide, but collisions are possible in principle.
const prefixLen = 10

// Google Photos embeds photo URLs inside JSON script blocks in three forms,
// tried in order of specificity: a full https URL, a protocol-relative URL,
// and a bare photo token inside a quoted string.
var (
	fullURLPattern     = regexp.MustCompile(`https?://lh3\.googleusercontent\.com/pw/([a-zA-Z0-9_-]+)`)
	relativeURLPattern = regexp.MustCompile(`//lh3\.googleusercontent\.com/pw/([a-zA-Z0-9_-]+)`)
	bareTokenPattern   = regexp.MustCompile(`"(AF1Qip[a-zA-Z0-9_-]{20,})"`)
)

// Extract scans raw album HTML and returns the unique photo refs it contains,
// in first-occurrence order. The source embeds photos newest-first, so the
// returned order is reverse-chronological. Malformed input is fine; absence of
// matches is reported as an empty slice, never an error.
func Extract(html string) []domain.RawPhotoRef {
	// Escaped path separators in embedded JSON strings would defeat the URL
	// patterns, so normalize them first.
	norm := strings.ReplaceAll(html, `\/`, `/`)

	for _, pattern := range []*regexp.Regexp{fullURLPattern, relativeURLPattern, bareTokenPattern} {
		refs := collect(pattern, norm)
		if len(refs) > 0 {
			return refs
		}
	}
	return nil
}

func collect(pattern *regexp.Regexp, text string) []domain.RawPhotoRef {
	var refs []domain.RawPhotoRef
	seen := make(map[string]struct{})
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		id := m[1]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		refs = append(refs, domain.RawPhotoRef{ID: id, BaseURL: photoHost + id})
	}
	return refs
}

// KeyPrefix returns the fixed-length identifier prefix used to join photos
// against the curated metadata table, whose keys were authored from truncated
// identifiers.
func KeyPrefix(id string) string {
	if len(id) <= prefixLen {
		return id
	}
	return id[:prefixLen]
}
