package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var (
		notFound    *errs.NotFoundError
		validation  *errs.ValidationError
		invalid     *errs.InvalidDraftError
		rejected    *errs.RejectedError
		rateLimited *errs.RateLimitedError
		syntax      *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &notFound):
		log.Warn("resource not found", "error", notFound.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", notFound.Message)

	case errors.As(err, &validation):
		log.Warn("validation failed", "error", validation.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", validation.Message)

	case errors.As(err, &invalid):
		log.Warn("invalid draft", "error", invalid.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_draft", invalid.Message)

	case errors.As(err, &rejected):
		log.Warn("submission rejected", "reason", rejected.Reason)
		status := http.StatusConflict
		switch rejected.Reason {
		case errs.RejectInvalidDraft:
			status = http.StatusBadRequest
		case errs.RejectClosed:
			status = http.StatusServiceUnavailable
		}
		h.WriteError(w, r, status, string(rejected.Reason), rejected.Message)

	case errors.As(err, &rateLimited):
		log.Warn("rate limit exceeded", "error", rateLimited.Message)
		h.WriteError(w, r, http.StatusTooManyRequests, "rate_limited", rateLimited.Message)

	case errors.As(err, &syntax), errors.As(err, &typeErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		log.Warn("malformed request body", "error", err)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", "malformed request body")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
