package extractor

import "strings"

// Diagnostics reports how each extraction pattern fared against one album
// page, for the admin debug endpoint. When the album host changes its markup
// and the gallery goes dark, this is the first thing to look at.
type Diagnostics struct {
	FullURLMatches     int      `json:"full_url_matches"`
	RelativeURLMatches int      `json:"relative_url_matches"`
	BareTokenMatches   int      `json:"bare_token_matches"`
	HostMentions       int      `json:"host_mentions"`
	SampleIDs          []string `json:"sample_ids"`
	HTMLExcerpt        string   `json:"html_excerpt"`
}

// Diagnose runs every extraction pattern over the HTML (no short-circuiting,
// unlike Extract) and returns match counts plus a small sample.
func Diagnose(html string) Diagnostics {
	norm := strings.ReplaceAll(html, `\/`, `/`)

	full := collect(fullURLPattern, norm)
	relative := collect(relativeURLPattern, norm)
	bare := collect(bareTokenPattern, norm)

	d := Diagnostics{
		FullURLMatches:     len(full),
		RelativeURLMatches: len(relative),
		BareTokenMatches:   len(bare),
		HostMentions:       strings.Count(norm, "lh3.googleusercontent"),
	}

	for _, ref := range Extract(html) {
		d.SampleIDs = append(d.SampleIDs, ref.ID)
		if len(d.SampleIDs) == 3 {
			break
		}
	}

	if idx := strings.Index(norm, "lh3.googleusercontent"); idx >= 0 {
		start := idx - 50
		if start < 0 {
			start = 0
		}
		end := idx + 200
		if end > len(norm) {
			end = len(norm)
		}
		d.HTMLExcerpt = norm[start:end]
	} else if len(norm) > 0 {
		end := 600
		if end > len(norm) {
			end = len(norm)
		}
		d.HTMLExcerpt = norm[:end]
	}

	return d
}
