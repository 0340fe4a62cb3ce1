// Package googlebooks implements the outbound catalog client against the
// Google Books volumes API.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookaholic/internal/usecase"

	"golang.org/x/time/rate"
)

const (
	defaultTitle   = "Título não disponível"
	defaultAuthors = "Autor desconhecido"
)

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(userAgent string, rps int, maxRetries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    "https://www.googleapis.com/books/v1",
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

// WithBaseURL points the client at a different endpoint. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type volumeInfo struct {
	Title      string   `json:"title"`
	Authors    []string `json:"authors"`
	ImageLinks struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

// searchResponse matches the volumes list endpoint.
type searchResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

func (c *Client) Search(ctx context.Context, query string, limit int) ([]usecase.CatalogSummary, error) {
	u := fmt.Sprintf("%s/volumes?q=%s&maxResults=%d", c.baseURL, url.QueryEscape(query), limit)

	var res searchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}

	// maxResults is advisory upstream; enforce the cap ourselves.
	if limit >= 0 && len(res.Items) > limit {
		res.Items = res.Items[:limit]
	}

	summaries := make([]usecase.CatalogSummary, 0, len(res.Items))
	for _, item := range res.Items {
		summaries = append(summaries, normalize(item))
	}
	return summaries, nil
}

func (c *Client) FetchDetail(ctx context.Context, externalID string) (usecase.CatalogSummary, error) {
	u := fmt.Sprintf("%s/volumes/%s", c.baseURL, url.PathEscape(externalID))

	var res volume
	if err := c.get(ctx, u, &res); err != nil {
		return usecase.CatalogSummary{}, err
	}
	if res.ID == "" {
		res.ID = externalID
	}
	return normalize(res), nil
}

// normalize maps missing upstream fields to defined defaults so absent
// metadata never turns into a fault downstream.
func normalize(v volume) usecase.CatalogSummary {
	title := v.VolumeInfo.Title
	if title == "" {
		title = defaultTitle
	}
	authors := strings.Join(v.VolumeInfo.Authors, ", ")
	if authors == "" {
		authors = defaultAuthors
	}
	return usecase.CatalogSummary{
		ExternalID:     v.ID,
		Title:          title,
		AuthorsDisplay: authors,
		Thumbnail:      v.VolumeInfo.ImageLinks.Thumbnail,
	}
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return usecase.ErrCatalogUnavailable
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return usecase.ErrCatalogUnavailable
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusNotFound {
				return usecase.ErrNotFound
			}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("%w: status code %d", usecase.ErrCatalogUnavailable, resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("%w: %v", usecase.ErrCatalogUnavailable, err)
		}
		return nil
	}
	return fmt.Errorf("%w: after %d retries: %v", usecase.ErrCatalogUnavailable, c.maxRetries, lastErr)
}
