// Package catalog provides a read-through cache over the external book
// catalog. Entries are fetched at most once per external id and never
// refreshed: external ids are immutable keys and the metadata behind them
// is treated as static.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"bookaholic/internal/entity"
	"bookaholic/internal/usecase"
)

// Metrics receives cache outcome counts. Implemented by metrics.Collector.
type Metrics interface {
	RecordCatalogHit()
	RecordCatalogMiss()
	RecordCatalogFailure()
}

type noopMetrics struct{}

func (noopMetrics) RecordCatalogHit()     {}
func (noopMetrics) RecordCatalogMiss()    {}
func (noopMetrics) RecordCatalogFailure() {}

type Cache struct {
	repo    usecase.CatalogEntryRepository
	client  usecase.CatalogClient
	metrics Metrics
}

func NewCache(repo usecase.CatalogEntryRepository, client usecase.CatalogClient, m Metrics) *Cache {
	if m == nil {
		m = noopMetrics{}
	}
	return &Cache{repo: repo, client: client, metrics: m}
}

// GetOrFetch returns the cached entry for externalID, fetching and
// persisting it on first reference. Two concurrent first callers may both
// reach the external client; the repository's uniqueness constraint picks
// the winner and both callers get the same row.
func (c *Cache) GetOrFetch(ctx context.Context, externalID string) (entity.CatalogEntry, error) {
	cached, err := c.repo.GetByExternalID(ctx, externalID)
	if err == nil {
		c.metrics.RecordCatalogHit()
		return cached, nil
	}
	if !errors.Is(err, usecase.ErrNotFound) {
		return entity.CatalogEntry{}, fmt.Errorf("catalog cache lookup %s: %w", externalID, err)
	}

	c.metrics.RecordCatalogMiss()
	summary, err := c.client.FetchDetail(ctx, externalID)
	if err != nil {
		c.metrics.RecordCatalogFailure()
		return entity.CatalogEntry{}, err
	}

	entry := entity.CatalogEntry{
		ExternalID:     summary.ExternalID,
		Title:          summary.Title,
		AuthorsDisplay: summary.AuthorsDisplay,
		Thumbnail:      summary.Thumbnail,
	}
	return c.repo.Insert(ctx, &entry)
}
