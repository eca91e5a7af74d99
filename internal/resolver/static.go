package resolver

import (
	"context"

	"github.com/sirupsen/logrus"

	"smartgallery/internal/domain"
	"smartgallery/internal/extractor"
)

// CuratedEntry is one hand-authored metadata row, keyed in the table by a
// fixed-length identifier prefix.
type CuratedEntry struct {
	Category    domain.Category
	Description string
}

// StaticResolver resolves metadata from a curated offline table. A lookup
// miss does not collapse to Uncategorized: unmapped photos rotate through a
// short list of default categories by position, so an incompletely curated
// album still renders a mixed gallery instead of a monotonous one.
type StaticResolver struct {
	table      map[string]CuratedEntry
	categories domain.CategorySet
	defaults   []defaultEntry
	log        logrus.FieldLogger
}

type defaultEntry struct {
	category    domain.Category
	description string
}

// NewStaticResolver creates a curated-table resolver. A nil table falls back
// to the built-in curated set.
func NewStaticResolver(table map[string]CuratedEntry, categories domain.CategorySet, logger logrus.FieldLogger) *StaticResolver {
	if table == nil {
		table = CuratedTable()
	}
	return &StaticResolver{
		table:      table,
		categories: categories,
		defaults:   defaultRotation(categories),
		log:        logger.WithField("component", "resolver_static"),
	}
}

// defaultRotation builds the round-robin fill-in entries from the category
// set, skipping Uncategorized.
func defaultRotation(categories domain.CategorySet) []defaultEntry {
	var defaults []defaultEntry
	for _, label := range categories.Labels() {
		if label == domain.Uncategorized {
			continue
		}
		defaults = append(defaults, defaultEntry{
			category:    label,
			description: "Project work by our field team",
		})
	}
	return defaults
}

// Resolve looks the photo up by its identifier prefix; on a miss it returns
// the round-robin default for the photo's position.
func (r *StaticResolver) Resolve(ctx context.Context, ref domain.RawPhotoRef, index int) domain.PhotoMetadata {
	if entry, ok := r.table[extractor.KeyPrefix(ref.ID)]; ok {
		return domain.PhotoMetadata{
			Category:    r.categories.Coerce(string(entry.Category)),
			Description: entry.Description,
			Visible:     true,
		}
	}

	r.log.WithField("photo_id", ref.ID).Debug("No curated entry, using positional default")
	if len(r.defaults) == 0 {
		return domain.PhotoMetadata{Category: domain.Uncategorized, Visible: true}
	}
	d := r.defaults[index%len(r.defaults)]
	return domain.PhotoMetadata{
		Category:    d.category,
		Description: d.description,
		Visible:     true,
	}
}
