// Package shelf orchestrates the catalog-sync workflow: search the
// external catalog, cache selected entries locally and associate them
// with a user, then track per-entry reading progress.
package shelf

import (
	"context"
	"log"

	"bookaholic/internal/catalog"
	"bookaholic/internal/entity"
	"bookaholic/internal/usecase"
)

// SearchLimit caps external search results per query.
const SearchLimit = 10

// AddOutcome distinguishes a first add from a repeated one. Both are
// successful results, not errors.
type AddOutcome string

const (
	OutcomeAdded          AddOutcome = "ADDED"
	OutcomeAlreadyOnShelf AddOutcome = "ALREADY_ON_SHELF"
)

// Metrics receives shelf outcome counts. Implemented by metrics.Collector.
type Metrics interface {
	RecordShelfAdd()
}

type noopMetrics struct{}

func (noopMetrics) RecordShelfAdd() {}

type Service struct {
	cache   *catalog.Cache
	client  usecase.CatalogClient
	repo    usecase.ShelfRepository
	metrics Metrics
}

func NewService(cache *catalog.Cache, client usecase.CatalogClient, repo usecase.ShelfRepository, m Metrics) *Service {
	if m == nil {
		m = noopMetrics{}
	}
	return &Service{cache: cache, client: client, repo: repo, metrics: m}
}

// Search delegates to the catalog client. When the catalog cannot answer,
// it degrades to an empty result with unavailable=true instead of failing
// the request; zero matches is a plain empty result.
func (s *Service) Search(ctx context.Context, query string) (results []usecase.CatalogSummary, unavailable bool) {
	summaries, err := s.client.Search(ctx, query, SearchLimit)
	if err != nil {
		log.Printf("catalog search failed: query=%q error=%v", query, err)
		return nil, true
	}
	return summaries, false
}

// AddToShelf fetches (or reuses) the catalog entry for externalID and
// associates it with the user. Repeated adds are idempotent.
func (s *Service) AddToShelf(ctx context.Context, userID, externalID string) (AddOutcome, entity.ShelfEntry, error) {
	catalogEntry, err := s.cache.GetOrFetch(ctx, externalID)
	if err != nil {
		return "", entity.ShelfEntry{}, err
	}

	entry, created, err := s.repo.AddIfAbsent(ctx, userID, catalogEntry.ID)
	if err != nil {
		return "", entity.ShelfEntry{}, err
	}
	if created {
		s.metrics.RecordShelfAdd()
		return OutcomeAdded, entry, nil
	}
	return OutcomeAlreadyOnShelf, entry, nil
}

func (s *Service) ListShelf(ctx context.Context, userID string) ([]entity.ShelfItem, error) {
	return s.repo.ListForUser(ctx, userID)
}

// UpdateEntry overwrites status and page of one shelf entry. The status
// set is a flat choice: any of the three values may be set regardless of
// the current one.
func (s *Service) UpdateEntry(ctx context.Context, entryID, requestingUserID, status string, page int) (entity.ShelfEntry, error) {
	if !entity.ValidShelfStatus(status) {
		return entity.ShelfEntry{}, usecase.ErrInvalidStatus
	}
	return s.repo.UpdateProgress(ctx, entryID, requestingUserID, status, page)
}
