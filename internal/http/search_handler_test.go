package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookaholic/internal/catalog"
	"bookaholic/internal/shelf"
	"bookaholic/internal/store/mocks"
	"bookaholic/internal/testutil"
	"bookaholic/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchFixture(t *testing.T) (*SearchHandler, *mocks.MockCatalogClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	entryRepo := mocks.NewMockCatalogEntryRepository(ctrl)
	client := mocks.NewMockCatalogClient(ctrl)
	shelfRepo := mocks.NewMockShelfRepository(ctrl)
	cache := catalog.NewCache(entryRepo, client, nil)
	service := shelf.NewService(cache, client, shelfRepo, nil)
	return NewSearchHandler(service), client
}

func TestSearchHandler_SearchBooks_Results(t *testing.T) {
	handler, client := newSearchFixture(t)
	client.EXPECT().
		Search(gomock.Any(), "dune", shelf.SearchLimit).
		Return([]usecase.CatalogSummary{
			{ExternalID: "X1", Title: "Dune", AuthorsDisplay: "Frank Herbert"},
		}, nil)

	w := httptest.NewRecorder()
	handler.SearchBooks(w, testutil.NewRequest(http.MethodGet, "/books/search?q=dune", nil))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	data := resp.Body["data"].([]interface{})
	assert.Len(t, data, 1)
	meta := resp.Body["meta"].(map[string]interface{})
	assert.NotContains(t, meta, "warning")
}

// Zero matches is a plain empty result: no warning, because the catalog
// did answer.
func TestSearchHandler_SearchBooks_ZeroMatchesHasNoWarning(t *testing.T) {
	handler, client := newSearchFixture(t)
	client.EXPECT().
		Search(gomock.Any(), "dune", shelf.SearchLimit).
		Return([]usecase.CatalogSummary{}, nil)

	w := httptest.NewRecorder()
	handler.SearchBooks(w, testutil.NewRequest(http.MethodGet, "/books/search?q=dune", nil))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	data, isList := resp.Body["data"].([]interface{})
	assert.True(t, isList)
	assert.Empty(t, data)
	meta := resp.Body["meta"].(map[string]interface{})
	assert.NotContains(t, meta, "warning")
}

// An outage degrades to an empty list plus a warning; the request itself
// still succeeds.
func TestSearchHandler_SearchBooks_UnavailableWarns(t *testing.T) {
	handler, client := newSearchFixture(t)
	client.EXPECT().
		Search(gomock.Any(), "dune", shelf.SearchLimit).
		Return(nil, usecase.ErrCatalogUnavailable)

	w := httptest.NewRecorder()
	handler.SearchBooks(w, testutil.NewRequest(http.MethodGet, "/books/search?q=dune", nil))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	data := resp.Body["data"].([]interface{})
	assert.Empty(t, data)
	meta := resp.Body["meta"].(map[string]interface{})
	assert.Contains(t, meta, "warning")
}

func TestSearchHandler_SearchBooks_MissingQuery(t *testing.T) {
	handler, _ := newSearchFixture(t)

	w := httptest.NewRecorder()
	handler.SearchBooks(w, testutil.NewRequest(http.MethodGet, "/books/search", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
