package http

import (
	"net/http"
	"strings"

	"bookaholic/internal/httpx"
	"bookaholic/internal/shelf"
	"bookaholic/internal/usecase"
)

type SearchHandler struct {
	service *shelf.Service
}

func NewSearchHandler(service *shelf.Service) *SearchHandler {
	return &SearchHandler{service: service}
}

// SearchBooks answers GET /books/search?q=... with up to ten catalog
// summaries. When the catalog is unreachable the response is still 200
// with an empty list and a warning in the meta, so the page never hard
// fails on an upstream outage.
func (h *SearchHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
			[]httpx.ErrorDetail{{Field: "q", Message: "q is required"}})
		return
	}

	results, unavailable := h.service.Search(r.Context(), query)
	if results == nil {
		results = []usecase.CatalogSummary{}
	}

	meta := map[string]interface{}{
		"query": query,
		"total": len(results),
	}
	if unavailable {
		meta["warning"] = "O serviço de busca de livros está indisponível no momento. Tente novamente mais tarde."
	}

	httpx.JSONSuccessWithRequest(r, w, results, meta)
}
