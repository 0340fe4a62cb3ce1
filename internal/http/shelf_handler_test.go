package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookaholic/internal/catalog"
	"bookaholic/internal/entity"
	"bookaholic/internal/httpx"
	"bookaholic/internal/shelf"
	"bookaholic/internal/store/mocks"
	"bookaholic/internal/testutil"
	"bookaholic/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shelfFixture struct {
	entryRepo *mocks.MockCatalogEntryRepository
	client    *mocks.MockCatalogClient
	shelfRepo *mocks.MockShelfRepository
	handler   *ShelfHandler
}

func newShelfFixture(t *testing.T) *shelfFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	entryRepo := mocks.NewMockCatalogEntryRepository(ctrl)
	client := mocks.NewMockCatalogClient(ctrl)
	shelfRepo := mocks.NewMockShelfRepository(ctrl)
	cache := catalog.NewCache(entryRepo, client, nil)
	service := shelf.NewService(cache, client, shelfRepo, nil)

	return &shelfFixture{
		entryRepo: entryRepo,
		client:    client,
		shelfRepo: shelfRepo,
		handler:   NewShelfHandler(service),
	}
}

func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(httpx.ContextWithUser(r.Context(), userID))
}

func TestShelfHandler_AddToShelf(t *testing.T) {
	cached := entity.CatalogEntry{ID: "ce-1", ExternalID: "X1", Title: "Dune"}

	t.Run("first add returns 201 Added", func(t *testing.T) {
		f := newShelfFixture(t)
		f.entryRepo.EXPECT().GetByExternalID(gomock.Any(), "X1").Return(cached, nil)
		f.shelfRepo.EXPECT().AddIfAbsent(gomock.Any(), "user-1", "ce-1").
			Return(entity.ShelfEntry{ID: "se-1", UserID: "user-1", CatalogEntryID: "ce-1"}, true, nil)

		w := httptest.NewRecorder()
		r := withUser(testutil.NewRequest(http.MethodPost, "/shelf", map[string]string{"external_id": "X1"}), "user-1")
		f.handler.AddToShelf(w, r)

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusCreated, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, string(shelf.OutcomeAdded), data["outcome"])
	})

	t.Run("repeated add returns 200 AlreadyOnShelf", func(t *testing.T) {
		f := newShelfFixture(t)
		f.entryRepo.EXPECT().GetByExternalID(gomock.Any(), "X1").Return(cached, nil)
		f.shelfRepo.EXPECT().AddIfAbsent(gomock.Any(), "user-1", "ce-1").
			Return(entity.ShelfEntry{ID: "se-1", UserID: "user-1", CatalogEntryID: "ce-1"}, false, nil)

		w := httptest.NewRecorder()
		r := withUser(testutil.NewRequest(http.MethodPost, "/shelf", map[string]string{"external_id": "X1"}), "user-1")
		f.handler.AddToShelf(w, r)

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, string(shelf.OutcomeAlreadyOnShelf), data["outcome"])
	})

	t.Run("unknown external id returns 404", func(t *testing.T) {
		f := newShelfFixture(t)
		f.entryRepo.EXPECT().GetByExternalID(gomock.Any(), "nope").Return(entity.CatalogEntry{}, usecase.ErrNotFound)
		f.client.EXPECT().FetchDetail(gomock.Any(), "nope").Return(usecase.CatalogSummary{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		r := withUser(testutil.NewRequest(http.MethodPost, "/shelf", map[string]string{"external_id": "nope"}), "user-1")
		f.handler.AddToShelf(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("catalog outage returns 502", func(t *testing.T) {
		f := newShelfFixture(t)
		f.entryRepo.EXPECT().GetByExternalID(gomock.Any(), "X1").Return(entity.CatalogEntry{}, usecase.ErrNotFound)
		f.client.EXPECT().FetchDetail(gomock.Any(), "X1").Return(usecase.CatalogSummary{}, usecase.ErrCatalogUnavailable)

		w := httptest.NewRecorder()
		r := withUser(testutil.NewRequest(http.MethodPost, "/shelf", map[string]string{"external_id": "X1"}), "user-1")
		f.handler.AddToShelf(w, r)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("missing external id returns 400", func(t *testing.T) {
		f := newShelfFixture(t)
		w := httptest.NewRecorder()
		r := withUser(testutil.NewRequest(http.MethodPost, "/shelf", map[string]string{}), "user-1")
		f.handler.AddToShelf(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated returns 401", func(t *testing.T) {
		f := newShelfFixture(t)
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/shelf", map[string]string{"external_id": "X1"})
		f.handler.AddToShelf(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestShelfHandler_ListShelf(t *testing.T) {
	f := newShelfFixture(t)
	items := []entity.ShelfItem{
		{
			ShelfEntry: entity.ShelfEntry{ID: "se-1", UserID: "user-1", Status: entity.ShelfStatusReading, CurrentPage: 120},
			Title:      "Dune",
		},
		{
			ShelfEntry: entity.ShelfEntry{ID: "se-2", UserID: "user-1", Status: entity.ShelfStatusWantToRead},
			Title:      "O Alquimista",
		},
	}
	f.shelfRepo.EXPECT().ListForUser(gomock.Any(), "user-1").Return(items, nil)

	w := httptest.NewRecorder()
	r := withUser(testutil.NewRequest(http.MethodGet, "/shelf", nil), "user-1")
	f.handler.ListShelf(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	data := resp.Body["data"].([]interface{})
	assert.Len(t, data, 2)
	meta := resp.Body["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["total"])
}

func TestShelfHandler_ListShelf_EmptyIsAList(t *testing.T) {
	f := newShelfFixture(t)
	f.shelfRepo.EXPECT().ListForUser(gomock.Any(), "user-1").Return(nil, nil)

	w := httptest.NewRecorder()
	r := withUser(testutil.NewRequest(http.MethodGet, "/shelf", nil), "user-1")
	f.handler.ListShelf(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	_, isList := resp.Body["data"].([]interface{})
	assert.True(t, isList, "empty shelf must serialize as [], got %v", resp.Body["data"])
}

const (
	testEntryID   = "7f9b2a1c-3d4e-4f5a-8b6c-9d0e1f2a3b4c"
	testMissingID = "11111111-2222-4333-8444-555555555555"
)

func TestShelfHandler_UpdateShelfEntry(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		userID         string
		body           map[string]interface{}
		setupMock      func(f *shelfFixture)
		expectedStatus int
	}{
		{
			name:   "success",
			path:   "/shelf/" + testEntryID,
			userID: "user-1",
			body:   map[string]interface{}{"status": entity.ShelfStatusReading, "current_page": 42},
			setupMock: func(f *shelfFixture) {
				f.shelfRepo.EXPECT().
					UpdateProgress(gomock.Any(), testEntryID, "user-1", entity.ShelfStatusReading, 42).
					Return(entity.ShelfEntry{ID: testEntryID, Status: entity.ShelfStatusReading, CurrentPage: 42}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "entry not found",
			path:   "/shelf/" + testMissingID,
			userID: "user-1",
			body:   map[string]interface{}{"status": entity.ShelfStatusRead, "current_page": 0},
			setupMock: func(f *shelfFixture) {
				f.shelfRepo.EXPECT().
					UpdateProgress(gomock.Any(), testMissingID, "user-1", entity.ShelfStatusRead, 0).
					Return(entity.ShelfEntry{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "not owner",
			path:   "/shelf/" + testEntryID,
			userID: "intruder",
			body:   map[string]interface{}{"status": entity.ShelfStatusRead, "current_page": 0},
			setupMock: func(f *shelfFixture) {
				f.shelfRepo.EXPECT().
					UpdateProgress(gomock.Any(), testEntryID, "intruder", entity.ShelfStatusRead, 0).
					Return(entity.ShelfEntry{}, usecase.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "malformed id answers not found without a store call",
			path:           "/shelf/abc",
			userID:         "user-1",
			body:           map[string]interface{}{"status": entity.ShelfStatusRead, "current_page": 0},
			setupMock:      func(*shelfFixture) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid status rejected before any store call",
			path:           "/shelf/" + testEntryID,
			userID:         "user-1",
			body:           map[string]interface{}{"status": "Relendo", "current_page": 10},
			setupMock:      func(*shelfFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative page rejected",
			path:           "/shelf/" + testEntryID,
			userID:         "user-1",
			body:           map[string]interface{}{"status": entity.ShelfStatusReading, "current_page": -5},
			setupMock:      func(*shelfFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShelfFixture(t)
			tt.setupMock(f)

			w := httptest.NewRecorder()
			r := withUser(testutil.NewRequest(http.MethodPut, tt.path, tt.body), tt.userID)
			f.handler.UpdateShelfEntry(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// The forbidden response must carry the same generic message regardless of
// why the entry is off limits.
func TestShelfHandler_UpdateShelfEntry_NotOwnerMessageIsGeneric(t *testing.T) {
	f := newShelfFixture(t)
	f.shelfRepo.EXPECT().
		UpdateProgress(gomock.Any(), testEntryID, "intruder", entity.ShelfStatusRead, 0).
		Return(entity.ShelfEntry{}, usecase.ErrNotOwner)

	w := httptest.NewRecorder()
	r := withUser(testutil.NewRequest(http.MethodPut, "/shelf/"+testEntryID, map[string]interface{}{
		"status": entity.ShelfStatusRead, "current_page": 0,
	}), "intruder")
	f.handler.UpdateShelfEntry(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusForbidden, resp.Code)
	errBody := resp.Body["error"].(map[string]interface{})
	assert.Equal(t, "Operação não permitida", errBody["message"])
	assert.NotContains(t, errBody["message"], testEntryID)
}
