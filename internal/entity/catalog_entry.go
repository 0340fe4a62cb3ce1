package entity

import "time"

// CatalogEntry is a locally cached copy of one external catalog item.
// Entries are created lazily on first reference and never refreshed.
type CatalogEntry struct {
	ID             string    `json:"id"`
	ExternalID     string    `json:"external_id"`
	Title          string    `json:"title"`
	AuthorsDisplay string    `json:"authors"`
	Thumbnail      string    `json:"thumbnail,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
