package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/LavaJover/shvark-country-service/internal/delivery/http/dto/country/response"
	"github.com/LavaJover/shvark-country-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps a domain error onto a status code and the common error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status, title := statusFor(kind)

	var details any
	var de *domain.Error
	if errors.As(err, &de) {
		if len(de.Fields) > 0 {
			details = de.Fields
		} else if de.Detail != "" {
			details = de.Detail
		}
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"category", kind,
			"error", err,
		)
	}

	writeJSON(w, status, response.ErrorResponse{
		Error:    title,
		Category: string(kind),
		Details:  details,
	})
}

func statusFor(kind domain.ErrorKind) (int, string) {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest, "Validation failed"
	case domain.KindNotFound:
		return http.StatusNotFound, "Resource not found"
	case domain.KindServiceUnavailable:
		return http.StatusServiceUnavailable, "External data source unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
