package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/pkg/helpers"
)

func newRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/", nil).WithContext(helpers.TestCtx())
}

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", errs.NewNotFoundError("missing"), http.StatusNotFound, "not_found"},
		{"validation", errs.NewValidationError("bad"), http.StatusBadRequest, "invalid_input"},
		{"invalid draft", errs.NewInvalidDraftError("incomplete"), http.StatusBadRequest, "invalid_draft"},
		{"busy", errs.NewRejectedError(errs.RejectBusy), http.StatusConflict, "busy"},
		{"rejected invalid", errs.NewRejectedError(errs.RejectInvalidDraft), http.StatusBadRequest, "invalid_draft"},
		{"closed", errs.NewRejectedError(errs.RejectClosed), http.StatusServiceUnavailable, "closed"},
		{"rate limited", errs.NewRateLimitedError(), http.StatusTooManyRequests, "rate_limited"},
		{"wrapped", fmt.Errorf("submit: %w", errs.NewRejectedError(errs.RejectBusy)), http.StatusConflict, "busy"},
		{"syntax", &json.SyntaxError{}, http.StatusBadRequest, "invalid_input"},
		{"empty body", io.EOF, http.StatusBadRequest, "invalid_input"},
		{"truncated body", fmt.Errorf("decode: %w", io.ErrUnexpectedEOF), http.StatusBadRequest, "invalid_input"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	h := New(helpers.TestLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.HandleError(rr, newRequest(), tt.err)

			if rr.Code != tt.status {
				t.Fatalf("status = %d, want %d", rr.Code, tt.status)
			}
			var body ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Code != tt.code {
				t.Fatalf("code = %q, want %q", body.Code, tt.code)
			}
		})
	}
}

func TestWriteSuccessEnvelope(t *testing.T) {
	h := New(helpers.TestLogger())
	rr := httptest.NewRecorder()
	h.WriteSuccess(rr, newRequest(), http.StatusAccepted, map[string]string{"state": "processing"})

	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var env struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success || env.Data["state"] != "processing" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}
