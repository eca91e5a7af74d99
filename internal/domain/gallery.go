package domain

import "time"

// Category is one label from the gallery's closed category set.
type Category string

// Uncategorized is the fallback label every CategorySet carries. Any
// classification result outside the set collapses to it.
const Uncategorized Category = "Uncategorized"

// CategorySet is the closed enumeration of gallery categories. The label set
// has changed between deployments, so it is configuration rather than a
// constant; Uncategorized is always a member.
type CategorySet struct {
	labels []Category
}

// NewCategorySet builds a set from the given labels. Uncategorized is always a
// member and always sorts last.
func NewCategorySet(labels ...Category) CategorySet {
	set := CategorySet{labels: make([]Category, 0, len(labels)+1)}
	for _, l := range labels {
		if l == Uncategorized || set.Contains(l) {
			continue
		}
		set.labels = append(set.labels, l)
	}
	set.labels = append(set.labels, Uncategorized)
	return set
}

// DefaultCategories returns the category set used by the production site.
func DefaultCategories() CategorySet {
	return NewCategorySet(
		"CCTV & Security",
		"Network & Fiber",
		"Software & AI",
		"On-site Work",
		"Team & Training",
	)
}

// Labels returns the members of the set, Uncategorized last.
func (s CategorySet) Labels() []Category {
	out := make([]Category, len(s.labels))
	copy(out, s.labels)
	return out
}

// Contains reports whether c is a member of the set.
func (s CategorySet) Contains(c Category) bool {
	for _, l := range s.labels {
		if l == c {
			return true
		}
	}
	return false
}

// Coerce maps an arbitrary string onto the set, returning Uncategorized for
// anything outside it.
func (s CategorySet) Coerce(raw string) Category {
	c := Category(raw)
	if s.Contains(c) {
		return c
	}
	return Uncategorized
}

// RawPhotoRef is one photo discovered in the scraped album page.
type RawPhotoRef struct {
	// ID is the opaque token extracted from the album HTML. Unique within one
	// extraction pass; not guaranteed stable across album edits.
	ID string `json:"id"`

	// BaseURL is the photo's URL template. A size suffix (e.g. "=w800") must
	// be appended before the URL is usable.
	BaseURL string `json:"base_url"`
}

// PhotoMetadata is the enrichment produced for one photo by a resolver.
type PhotoMetadata struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`

	// Visible gates public display. Resolver strategies without a visibility
	// concept always set it true.
	Visible bool `json:"visible"`
}

// GalleryRecord is one display-ready gallery entry as served to the UI.
type GalleryRecord struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
}

// Photo is the durable-store record for one curated photo. Photos default to
// hidden until an operator approves them.
type Photo struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Hidden      bool      `json:"hidden"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Metadata projects the stored record onto the resolver output contract.
func (p Photo) Metadata() PhotoMetadata {
	return PhotoMetadata{
		Category:    p.Category,
		Description: p.Description,
		Visible:     !p.Hidden,
	}
}
