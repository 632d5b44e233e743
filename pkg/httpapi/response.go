package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

// ErrNotFound is returned for unknown history ids.
var ErrNotFound = errors.New("not found")

// errInvalidRequest marks malformed request bodies and query values.
var errInvalidRequest = errors.New("invalid request")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, namegen.ErrInvalidParameter),
		errors.Is(err, namegen.ErrUnknownRule),
		errors.Is(err, namegen.ErrUnknownTransform),
		errors.Is(err, errInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), errorResponse{Error: err.Error()})
}
