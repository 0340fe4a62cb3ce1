package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookaholic/internal/entity"
	"bookaholic/internal/httpx"
	"bookaholic/internal/shelf"
	"bookaholic/internal/usecase"

	"github.com/google/uuid"
)

type ShelfHandler struct {
	service *shelf.Service
}

func NewShelfHandler(service *shelf.Service) *ShelfHandler {
	return &ShelfHandler{service: service}
}

type addToShelfReq struct {
	ExternalID string `json:"external_id" validate:"required"`
}

func (h *ShelfHandler) AddToShelf(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONErrorWithRequest(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req addToShelfReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	outcome, entry, err := h.service.AddToShelf(r.Context(), userID, req.ExternalID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Livro não encontrado no catálogo", nil)
		case errors.Is(err, usecase.ErrCatalogUnavailable):
			httpx.JSONErrorWithRequest(r, w, http.StatusBadGateway, "CATALOG_UNAVAILABLE",
				"O catálogo de livros está indisponível no momento", nil)
		default:
			httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	if outcome == shelf.OutcomeAdded {
		httpx.JSONSuccessCreatedWithRequest(r, w, map[string]any{
			"outcome": outcome,
			"entry":   entry,
		})
		return
	}
	httpx.JSONSuccessWithRequest(r, w, map[string]any{
		"outcome": outcome,
		"entry":   entry,
	}, nil)
}

func (h *ShelfHandler) ListShelf(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONErrorWithRequest(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	items, err := h.service.ListShelf(r.Context(), userID)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if items == nil {
		items = []entity.ShelfItem{}
	}

	httpx.JSONSuccessWithRequest(r, w, items, map[string]interface{}{
		"total": len(items),
	})
}

type updateShelfReq struct {
	Status      string `json:"status" validate:"required,shelf_status"`
	CurrentPage int    `json:"current_page" validate:"gte=0"`
}

func (h *ShelfHandler) UpdateShelfEntry(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONErrorWithRequest(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	entryID := strings.TrimPrefix(r.URL.Path, "/shelf/")
	if entryID == "" || strings.Contains(entryID, "/") {
		http.NotFound(w, r)
		return
	}
	// Ids are UUIDs; anything else cannot name an entry and must not
	// reach the database as a cast error.
	if _, err := uuid.Parse(entryID); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Entrada não encontrada", nil)
		return
	}

	var req updateShelfReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	entry, err := h.service.UpdateEntry(r.Context(), entryID, userID, req.Status, req.CurrentPage)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Entrada não encontrada", nil)
		case errors.Is(err, usecase.ErrNotOwner):
			// Generic message: never confirms the entry exists for
			// someone else.
			httpx.JSONErrorWithRequest(r, w, http.StatusForbidden, "FORBIDDEN", "Operação não permitida", nil)
		case errors.Is(err, usecase.ErrInvalidStatus):
			httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_STATUS", "Status de leitura inválido", nil)
		default:
			httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessWithRequest(r, w, entry, nil)
}
