package services

import (
	"context"
	"errors"
	"testing"

	"github.com/GregMSThompson/fraud-simulator/internal/dto"
	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/models"
	"github.com/GregMSThompson/fraud-simulator/pkg/helpers"
)

type stubWorkflow struct {
	submitted []dto.TransactionDraft
	submitErr error
	snapshot  dto.WorkflowSnapshot
	current   *models.TransactionRecord
}

func (s *stubWorkflow) Submit(_ context.Context, draft dto.TransactionDraft) error {
	s.submitted = append(s.submitted, draft)
	return s.submitErr
}

func (s *stubWorkflow) Snapshot() dto.WorkflowSnapshot { return s.snapshot }

func (s *stubWorkflow) Current() (models.TransactionRecord, bool) {
	if s.current == nil {
		return models.TransactionRecord{}, false
	}
	return *s.current, true
}

func newTestSimulator(wf *stubWorkflow) (*simulatorService, *formService) {
	form := NewFormService()
	return NewSimulatorService(form, wf, NewStaticAnalyzer()), form
}

func TestSimulatorUpdateDraftAppliesPresentFields(t *testing.T) {
	sim, form := newTestSimulator(&stubWorkflow{snapshot: dto.WorkflowSnapshot{State: dto.StateIdle}})
	ctx := helpers.TestCtx()

	state := sim.UpdateDraft(ctx, dto.DraftPatchRequest{Merchant: helpers.Ptr("Crypto Mart")})
	if state.Draft.Amount != nil || state.Draft.Location != nil {
		t.Fatalf("absent fields must stay unset: %+v", state.Draft)
	}
	if state.CanSubmit || state.SubmitEnabled {
		t.Fatalf("partial draft should not be submittable")
	}

	state = sim.UpdateDraft(ctx, dto.DraftPatchRequest{Amount: helpers.Ptr("20"), Location: helpers.Ptr("Miami, FL")})
	if !state.CanSubmit || !state.SubmitEnabled {
		t.Fatalf("complete draft with idle workflow should enable submit: %+v", state)
	}
	if helpers.Value(form.Draft().Merchant) != "Crypto Mart" {
		t.Fatalf("earlier field lost: %+v", form.Draft())
	}
}

func TestSimulatorSubmitDisabledWhileProcessing(t *testing.T) {
	wf := &stubWorkflow{snapshot: dto.WorkflowSnapshot{State: dto.StateProcessing}}
	sim, form := newTestSimulator(wf)
	form.SetMerchant("Crypto Mart")
	form.SetAmount("3")
	form.SetLocation("Singapore")

	state := sim.State()
	if !state.CanSubmit {
		t.Fatalf("draft is valid, CanSubmit should be true")
	}
	if state.SubmitEnabled {
		t.Fatalf("trigger must be disabled while processing")
	}
}

func TestSimulatorSubmitPassesDraftSnapshot(t *testing.T) {
	wf := &stubWorkflow{}
	sim, form := newTestSimulator(wf)
	form.SetMerchant("Web3 Bistro")
	form.SetAmount("45.10")
	form.SetLocation("Berlin, DE")

	resp, err := sim.Submit(helpers.TestCtx())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if resp.State != dto.StateProcessing {
		t.Fatalf("state = %s, want processing", resp.State)
	}
	if len(wf.submitted) != 1 || helpers.Value(wf.submitted[0].Amount) != "45.10" {
		t.Fatalf("workflow received wrong draft: %+v", wf.submitted)
	}
}

func TestSimulatorSubmitPropagatesRejection(t *testing.T) {
	wf := &stubWorkflow{submitErr: errs.NewRejectedError(errs.RejectBusy)}
	sim, _ := newTestSimulator(wf)

	_, err := sim.Submit(helpers.TestCtx())
	var rejected *errs.RejectedError
	if !errors.As(err, &rejected) || rejected.Reason != errs.RejectBusy {
		t.Fatalf("expected busy rejection, got %v", err)
	}
}

func TestSimulatorCurrentTransaction(t *testing.T) {
	wf := &stubWorkflow{}
	sim, _ := newTestSimulator(wf)
	ctx := helpers.TestCtx()

	_, err := sim.CurrentTransaction(ctx)
	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError with no record, got %v", err)
	}

	rec, err := BuildTransaction(coffeeDraft(), fixedClock, NewTransactionID)
	if err != nil {
		t.Fatalf("BuildTransaction: %v", err)
	}
	wf.current = &rec

	resp, err := sim.CurrentTransaction(ctx)
	if err != nil {
		t.Fatalf("CurrentTransaction returned error: %v", err)
	}
	if resp.Record.ID != rec.ID {
		t.Fatalf("record id = %q, want %q", resp.Record.ID, rec.ID)
	}
	if resp.Analysis.RiskScore != 87 || len(resp.Analysis.Agents) != 3 {
		t.Fatalf("unexpected analysis: %+v", resp.Analysis)
	}
}

func TestSimulatorResetDraft(t *testing.T) {
	sim, form := newTestSimulator(&stubWorkflow{})
	form.SetMerchant("Crypto Mart")

	state := sim.ResetDraft(helpers.TestCtx())
	if state.Draft.Merchant != nil {
		t.Fatalf("merchant should be unset after reset")
	}
}

func TestSimulatorCatalog(t *testing.T) {
	sim, _ := newTestSimulator(&stubWorkflow{})
	c := sim.Catalog()
	if len(c.Merchants) != 7 || len(c.Locations) != 8 {
		t.Fatalf("unexpected catalog sizes: %d merchants, %d locations", len(c.Merchants), len(c.Locations))
	}
}
