package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the shape of every JSON response body. Exactly one of Data
// and Error is set.
type Envelope struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Error   *ErrorBody     `json:"error,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

type ErrorBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// buildMeta merges the request id with handler-supplied meta entries.
func buildMeta(r *http.Request, extra map[string]any) map[string]any {
	requestID := RequestIDFrom(r)
	if requestID == "" && len(extra) == 0 {
		return nil
	}
	meta := make(map[string]any, len(extra)+1)
	if requestID != "" {
		meta["request_id"] = requestID
	}
	for k, v := range extra {
		meta[k] = v
	}
	return meta
}

func writeEnvelope(w http.ResponseWriter, statusCode int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(env)
}

func JSONSuccessWithRequest(r *http.Request, w http.ResponseWriter, data interface{}, extra map[string]any) {
	writeEnvelope(w, http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Meta:    buildMeta(r, extra),
	})
}

func JSONSuccessCreatedWithRequest(r *http.Request, w http.ResponseWriter, data interface{}) {
	writeEnvelope(w, http.StatusCreated, Envelope{
		Success: true,
		Data:    data,
		Meta:    buildMeta(r, nil),
	})
}

func JSONErrorWithRequest(r *http.Request, w http.ResponseWriter, statusCode int, code string, message string, details []ErrorDetail) {
	writeEnvelope(w, statusCode, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: buildMeta(r, nil),
	})
}
