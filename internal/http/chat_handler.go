package http

import (
	"encoding/json"
	"net/http"

	"bookaholic/internal/chatbot"
	"bookaholic/internal/httpx"
)

type ChatHandler struct{}

func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

type chatReq struct {
	Message string `json:"message" validate:"required"`
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	httpx.JSONSuccessWithRequest(r, w, map[string]string{
		"reply": chatbot.Reply(req.Message),
	}, nil)
}
