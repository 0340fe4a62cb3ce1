package entity

import "time"

// Reading statuses match the UI strings of the original application.
// The set is a flat choice: any status may be set from any other status.
const (
	ShelfStatusWantToRead = "Quero Ler"
	ShelfStatusReading    = "Lendo"
	ShelfStatusRead       = "Lido"
)

func ValidShelfStatus(status string) bool {
	switch status {
	case ShelfStatusWantToRead, ShelfStatusReading, ShelfStatusRead:
		return true
	default:
		return false
	}
}

type ShelfEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	CatalogEntryID string    `json:"catalog_entry_id"`
	Status         string    `json:"status"`
	CurrentPage    int       `json:"current_page"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ShelfItem is a ShelfEntry joined with its CatalogEntry for display.
type ShelfItem struct {
	ShelfEntry
	Title          string `json:"title"`
	AuthorsDisplay string `json:"authors"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}
