package store

import (
	"context"
	"errors"

	"bookaholic/internal/entity"
	"bookaholic/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShelfPG struct {
	db *pgxpool.Pool
}

func NewShelfPG(db *pgxpool.Pool) *ShelfPG {
	return &ShelfPG{db: db}
}

func (r *ShelfPG) AddIfAbsent(ctx context.Context, userID, catalogEntryID string) (entity.ShelfEntry, bool, error) {
	const insertSQL = `
	INSERT INTO shelf_entries (id, user_id, catalog_entry_id, status, current_page)
	VALUES (gen_random_uuid(), $1, $2, $3, 0)
	ON CONFLICT (user_id, catalog_entry_id) DO NOTHING
	RETURNING id, user_id, catalog_entry_id, status, current_page, created_at, updated_at
	`
	var entry entity.ShelfEntry
	err := r.db.QueryRow(ctx, insertSQL, userID, catalogEntryID, entity.ShelfStatusWantToRead).Scan(
		&entry.ID, &entry.UserID, &entry.CatalogEntryID, &entry.Status, &entry.CurrentPage, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err == nil {
		return entry, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return entity.ShelfEntry{}, false, err
	}

	// Pair already on the shelf; repeated adds are a no-op.
	const selectSQL = `
	SELECT id, user_id, catalog_entry_id, status, current_page, created_at, updated_at
	FROM shelf_entries
	WHERE user_id = $1 AND catalog_entry_id = $2
	LIMIT 1
	`
	err = r.db.QueryRow(ctx, selectSQL, userID, catalogEntryID).Scan(
		&entry.ID, &entry.UserID, &entry.CatalogEntryID, &entry.Status, &entry.CurrentPage, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return entity.ShelfEntry{}, false, err
	}
	return entry, false, nil
}

func (r *ShelfPG) ListForUser(ctx context.Context, userID string) ([]entity.ShelfItem, error) {
	const query = `
	SELECT se.id, se.user_id, se.catalog_entry_id, se.status, se.current_page, se.created_at, se.updated_at,
	       ce.title, ce.authors_display, ce.thumbnail
	FROM shelf_entries se
	JOIN catalog_entries ce ON ce.id = se.catalog_entry_id
	WHERE se.user_id = $1
	ORDER BY se.created_at ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.ShelfItem
	for rows.Next() {
		var item entity.ShelfItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.CatalogEntryID, &item.Status, &item.CurrentPage, &item.CreatedAt, &item.UpdatedAt,
			&item.Title, &item.AuthorsDisplay, &item.Thumbnail,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ShelfPG) UpdateProgress(ctx context.Context, entryID, requestingUserID, status string, page int) (entity.ShelfEntry, error) {
	// Existence is checked before ownership so probing an id that does
	// not exist never reveals whether another user owns it.
	const selectSQL = `
	SELECT id, user_id, catalog_entry_id, status, current_page, created_at, updated_at
	FROM shelf_entries
	WHERE id = $1
	LIMIT 1
	`
	var entry entity.ShelfEntry
	err := r.db.QueryRow(ctx, selectSQL, entryID).Scan(
		&entry.ID, &entry.UserID, &entry.CatalogEntryID, &entry.Status, &entry.CurrentPage, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ShelfEntry{}, usecase.ErrNotFound
		}
		return entity.ShelfEntry{}, err
	}
	if entry.UserID != requestingUserID {
		return entity.ShelfEntry{}, usecase.ErrNotOwner
	}
	if !entity.ValidShelfStatus(status) {
		return entity.ShelfEntry{}, usecase.ErrInvalidStatus
	}

	const updateSQL = `
	UPDATE shelf_entries
	SET status = $2, current_page = $3, updated_at = NOW()
	WHERE id = $1
	RETURNING status, current_page, updated_at
	`
	if err := r.db.QueryRow(ctx, updateSQL, entryID, status, page).Scan(&entry.Status, &entry.CurrentPage, &entry.UpdatedAt); err != nil {
		return entity.ShelfEntry{}, err
	}
	return entry, nil
}
