package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"bookaholic/internal/auth"
	"bookaholic/internal/httpx"
	"bookaholic/internal/usecase"
)

const accessTokenTTL = 24 * time.Hour

type UserHandler struct {
	service *auth.Service
	secret  string
}

func NewUserHandler(service *auth.Service, secret string) *UserHandler {
	return &UserHandler{
		service: service,
		secret:  secret,
	}
}

// Username and password limits follow the original registration form.
type registerReq struct {
	Username string `json:"username" validate:"required,min=4,max=25"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateName) {
			httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "DUPLICATE_NAME",
				"Este nome de usuário já existe. Por favor, escolha outro.", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreatedWithRequest(r, w, map[string]any{
		"id":       user.ID,
		"username": user.Username,
		"message":  "Conta criada com sucesso para " + user.Username + "!",
	})
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	// Unknown username and wrong password answer identically.
	user, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusUnauthorized, "INVALID_CREDENTIALS",
			"Falha no login. Verifique o usuário e a senha.", nil)
		return
	}

	token, err := auth.GenerateToken(h.secret, user.ID, accessTokenTTL)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessWithRequest(r, w, map[string]any{
		"access_token": token,
		"expires_in":   int(accessTokenTTL.Seconds()),
	}, nil)
}
