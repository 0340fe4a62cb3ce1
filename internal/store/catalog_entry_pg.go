package store

import (
	"context"
	"errors"

	"bookaholic/internal/entity"
	"bookaholic/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogEntryPG struct {
	db *pgxpool.Pool
}

func NewCatalogEntryPG(db *pgxpool.Pool) *CatalogEntryPG {
	return &CatalogEntryPG{db: db}
}

func (r *CatalogEntryPG) GetByExternalID(ctx context.Context, externalID string) (entity.CatalogEntry, error) {
	const query = `
	SELECT id, external_id, title, authors_display, thumbnail, created_at
	FROM catalog_entries
	WHERE external_id = $1
	LIMIT 1
	`
	var e entity.CatalogEntry
	err := r.db.QueryRow(ctx, query, externalID).Scan(
		&e.ID, &e.ExternalID, &e.Title, &e.AuthorsDisplay, &e.Thumbnail, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.CatalogEntry{}, usecase.ErrNotFound
		}
		return entity.CatalogEntry{}, err
	}
	return e, nil
}

// Insert relies on the external_id uniqueness constraint to resolve the
// race where two callers fetch the same unseen id: the loser's insert
// affects no row and the winner's row is read back instead.
func (r *CatalogEntryPG) Insert(ctx context.Context, e *entity.CatalogEntry) (entity.CatalogEntry, error) {
	const insertSQL = `
	INSERT INTO catalog_entries (id, external_id, title, authors_display, thumbnail)
	VALUES (gen_random_uuid(), $1, $2, $3, $4)
	ON CONFLICT (external_id) DO NOTHING
	RETURNING id, external_id, title, authors_display, thumbnail, created_at
	`
	var inserted entity.CatalogEntry
	err := r.db.QueryRow(ctx, insertSQL, e.ExternalID, e.Title, e.AuthorsDisplay, e.Thumbnail).Scan(
		&inserted.ID, &inserted.ExternalID, &inserted.Title, &inserted.AuthorsDisplay, &inserted.Thumbnail, &inserted.CreatedAt,
	)
	if err == nil {
		return inserted, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return entity.CatalogEntry{}, err
	}
	// A racer inserted this external id first; return the existing row.
	return r.GetByExternalID(ctx, e.ExternalID)
}
