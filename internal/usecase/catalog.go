package usecase

import (
	"context"

	"bookaholic/internal/entity"
)

// CatalogSummary is a normalized record from the external catalog.
// Missing upstream fields are already defaulted by the client.
type CatalogSummary struct {
	ExternalID     string `json:"external_id"`
	Title          string `json:"title"`
	AuthorsDisplay string `json:"authors"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}

// CatalogClient is the outbound adapter to the external book catalog.
type CatalogClient interface {
	// Search returns up to limit summaries. An empty slice means zero
	// matches; ErrCatalogUnavailable means the service could not answer.
	Search(ctx context.Context, query string, limit int) ([]CatalogSummary, error)

	// FetchDetail returns one summary by external id. Returns ErrNotFound
	// for unknown ids and ErrCatalogUnavailable for transport failures.
	FetchDetail(ctx context.Context, externalID string) (CatalogSummary, error)
}

type CatalogEntryRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (entity.CatalogEntry, error)

	// Insert persists a new entry. When a concurrent caller already
	// inserted the same external id, the existing row wins and is
	// returned; the caller never sees a uniqueness failure.
	Insert(ctx context.Context, e *entity.CatalogEntry) (entity.CatalogEntry, error)
}
