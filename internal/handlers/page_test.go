package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/GregMSThompson/fraud-simulator/internal/dto"
	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/models"
	"github.com/GregMSThompson/fraud-simulator/pkg/helpers"
)

func newPageHandlers(svc *stubSimulatorService, resp *stubResponseHandler) *pageHandlers {
	return NewPageHandlers(&Deps{
		ResponseHandler: resp,
		SimulatorSvc:    svc,
		RefreshSeconds:  1,
	})
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req.WithContext(helpers.TestCtx())
}

func TestIndexRendersCurrentRecord(t *testing.T) {
	svc := &stubSimulatorService{
		state: dto.StateResponse{State: dto.StateIdle},
		transaction: dto.TransactionResponse{
			Record: models.TransactionRecord{
				ID:       "TXN-page",
				Merchant: "DevCon Coffee Co.",
				Category: helpers.Ptr("Food & Drink"),
				RiskTier: helpers.Ptr(models.RiskLow),
				Amount:   12.5,
				Location: "Austin, TX",
			},
		},
	}
	h := newPageHandlers(svc, &stubResponseHandler{})

	rr := httptest.NewRecorder()
	h.Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "TXN-page") || !strings.Contains(body, "$12.50") {
		t.Fatalf("record missing from page")
	}
	if !strings.HasPrefix(rr.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("unexpected content type %q", rr.Header().Get("Content-Type"))
	}
	if svc.profileCalls != 1 {
		t.Fatalf("profile should be rendered once")
	}
}

func TestIndexEmptyState(t *testing.T) {
	svc := &stubSimulatorService{
		state:    dto.StateResponse{State: dto.StateIdle},
		transErr: errs.NewNotFoundError("none"),
	}
	resp := &stubResponseHandler{}
	h := newPageHandlers(svc, resp)

	rr := httptest.NewRecorder()
	h.Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.handleErrorCalled {
		t.Fatalf("missing record is not an error: %v", resp.handleError)
	}
	if !strings.Contains(rr.Body.String(), "Execute a transaction to see AI agent analysis") {
		t.Fatalf("empty state missing")
	}
}

func TestIndexProcessingRefreshes(t *testing.T) {
	svc := &stubSimulatorService{state: dto.StateResponse{State: dto.StateProcessing}}
	h := newPageHandlers(svc, &stubResponseHandler{})

	rr := httptest.NewRecorder()
	h.Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rr.Body.String()
	if !strings.Contains(body, `http-equiv="refresh"`) {
		t.Fatalf("processing page should auto refresh")
	}
	if !strings.Contains(body, `<button type="submit" disabled>`) {
		t.Fatalf("trigger should be disabled while processing")
	}
}

func TestSubmitFormAppliesFieldsAndRedirects(t *testing.T) {
	svc := &stubSimulatorService{}
	h := newPageHandlers(svc, &stubResponseHandler{})

	rr := httptest.NewRecorder()
	h.SubmitForm(rr, postForm(url.Values{
		"merchant": {"DevCon Coffee Co."},
		"amount":   {"12.50"},
		"location": {"Austin, TX"},
	}))

	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/" {
		t.Fatalf("expected 303 to /, got %d %q", rr.Code, rr.Header().Get("Location"))
	}
	if svc.lastPatch == nil || helpers.Value(svc.lastPatch.Merchant) != "DevCon Coffee Co." ||
		helpers.Value(svc.lastPatch.Amount) != "12.50" || helpers.Value(svc.lastPatch.Location) != "Austin, TX" {
		t.Fatalf("unexpected patch: %+v", svc.lastPatch)
	}
	if svc.submitCalls != 1 {
		t.Fatalf("Submit called %d times, want 1", svc.submitCalls)
	}
}

func TestSubmitFormMissingFieldStaysUnset(t *testing.T) {
	svc := &stubSimulatorService{}
	h := newPageHandlers(svc, &stubResponseHandler{})

	h.SubmitForm(httptest.NewRecorder(), postForm(url.Values{"amount": {"5"}}))

	if svc.lastPatch.Merchant != nil || svc.lastPatch.Location != nil {
		t.Fatalf("fields absent from the form must not be set: %+v", svc.lastPatch)
	}
}

func TestSubmitFormRejectionIsSilent(t *testing.T) {
	svc := &stubSimulatorService{submitErr: errs.NewRejectedError(errs.RejectInvalidDraft)}
	resp := &stubResponseHandler{}
	h := newPageHandlers(svc, resp)

	rr := httptest.NewRecorder()
	h.SubmitForm(rr, postForm(url.Values{"amount": {"-5"}}))

	if resp.handleErrorCalled {
		t.Fatalf("rejection should not surface as an error page")
	}
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
}

func TestSubmitFormUnexpectedError(t *testing.T) {
	boom := errors.New("boom")
	svc := &stubSimulatorService{submitErr: boom}
	resp := &stubResponseHandler{}
	h := newPageHandlers(svc, resp)

	h.SubmitForm(httptest.NewRecorder(), postForm(url.Values{}))

	if !errors.Is(resp.handleError, boom) {
		t.Fatalf("unexpected errors should reach HandleError, got %v", resp.handleError)
	}
}
