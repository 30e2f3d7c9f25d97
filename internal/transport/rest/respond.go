package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string           `json:"error"`
	Details []fieldErrorView `json:"details,omitempty"`
}

type fieldErrorView struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

var internalErrorBody = []byte(`{"error":"Something went wrong"}` + "\n")

// writeJSON encodes v before committing the status, so a value that cannot be
// encoded turns into a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Default().Error("encode response",
			slog.String("type", fmt.Sprintf("%T", v)),
			slog.String("error", err.Error()))
		status, body = http.StatusInternalServerError, internalErrorBody
	} else {
		body = append(body, '\n')
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a single JSON object from the request body. Unknown
// fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}

// respondError translates a service error into a status code and message.
// notFound is the endpoint-specific 404 message.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, notFound string) {
	var ve *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Email already in use")
	case errors.Is(err, domain.ErrUsernameTaken):
		writeError(w, http.StatusBadRequest, "Username already in use")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "Already exists")
	case errors.Is(err, domain.ErrInvalidResetToken):
		writeError(w, http.StatusBadRequest, "Invalid or expired token")
	case errors.Is(err, domain.ErrPasswordMismatch):
		writeError(w, http.StatusBadRequest, "Passwords do not match")
	case errors.As(err, &ve):
		details := make([]fieldErrorView, len(ve.Errors))
		for i, fe := range ve.Errors {
			details[i] = fieldErrorView{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid input", Details: details})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrLocked):
		writeError(w, http.StatusLocked, "Account is temporarily locked. Try again later")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Something went wrong")
	}
}
