package usecase

import (
	"context"

	"bookaholic/internal/entity"
)

type ShelfRepository interface {
	// AddIfAbsent creates a shelf entry with default status and page for
	// the (user, catalog entry) pair, or returns the existing one.
	// created reports whether a new row was inserted.
	AddIfAbsent(ctx context.Context, userID, catalogEntryID string) (entry entity.ShelfEntry, created bool, err error)

	// ListForUser returns the user's shelf joined with catalog entries,
	// in creation order.
	ListForUser(ctx context.Context, userID string) ([]entity.ShelfItem, error)

	// UpdateProgress overwrites status and page of one entry.
	// Fails with ErrNotFound when the entry does not exist, then
	// ErrNotOwner when it belongs to someone else; the two checks are
	// made in that order so ownership is never reported for entries
	// that do not exist.
	UpdateProgress(ctx context.Context, entryID, requestingUserID, status string, page int) (entity.ShelfEntry, error)
}
