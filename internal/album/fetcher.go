package album

import "context"

// Fetcher defines the interface for retrieving the public album page HTML.
// Implementations must apply their own bounded timeout; a stuck fetch must
// surface as an error rather than block the caller indefinitely.
type Fetcher interface {
	// FetchAlbum returns the raw HTML/JS text of the album page. No schema is
	// guaranteed; the extractor decides whether anything useful is in it.
	FetchAlbum(ctx context.Context) (string, error)
}
