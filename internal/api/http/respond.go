package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/logger"
	"givehope-backend/internal/security"
	"givehope-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// listResponse is the envelope for paginated collections.
type listResponse struct {
	Items any   `json:"items"`
	Total int32 `json:"total"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Unknown
// errors become opaque 500s so internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	var valErrs validator.ValidationErrors
	switch {
	case domain.IsValidation(err), errors.As(err, &valErrs):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "validation_error"})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Code: "unauthorized"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error(), Code: "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: "not_found"})
	case errors.Is(err, domain.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "invalid_transition"})
	case errors.Is(err, domain.ErrMatchConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "match_conflict"})
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "duplicate_email"})
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "internal"})
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Validationf("body", "invalid JSON: %v", err)
	}
	return nil
}

func pagination(r *http.Request) (page, pageSize int32) {
	page = 1
	pageSize = 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 {
		pageSize = int32(v)
	}
	return page, pageSize
}
