package services

import (
	"context"

	"github.com/GregMSThompson/fraud-simulator/internal/catalog"
	"github.com/GregMSThompson/fraud-simulator/internal/dto"
	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/models"
	"github.com/GregMSThompson/fraud-simulator/pkg/logger"
)

type draftHolder interface {
	SetMerchant(name string)
	SetAmount(text string)
	SetLocation(name string)
	CanSubmit() bool
	Draft() dto.TransactionDraft
	Reset()
}

type submissionWorkflow interface {
	Submit(ctx context.Context, draft dto.TransactionDraft) error
	Snapshot() dto.WorkflowSnapshot
	Current() (models.TransactionRecord, bool)
}

type analyzer interface {
	Analyze(ctx context.Context, rec models.TransactionRecord) models.Analysis
}

// simulatorService is the single view instance: one form feeding one workflow.
type simulatorService struct {
	form     draftHolder
	workflow submissionWorkflow
	analyzer analyzer
}

func NewSimulatorService(form draftHolder, workflow submissionWorkflow, analyzer analyzer) *simulatorService {
	return &simulatorService{
		form:     form,
		workflow: workflow,
		analyzer: analyzer,
	}
}

func (s *simulatorService) Catalog() dto.CatalogResponse {
	return dto.CatalogResponse{
		Merchants: catalog.Merchants(),
		Locations: catalog.Locations(),
	}
}

func (s *simulatorService) Profile() models.CustomerProfile {
	return catalog.Profile()
}

// UpdateDraft applies every field present in req through the form setters.
func (s *simulatorService) UpdateDraft(ctx context.Context, req dto.DraftPatchRequest) dto.StateResponse {
	log := logger.FromContext(ctx)

	if req.Merchant != nil {
		s.form.SetMerchant(*req.Merchant)
	}
	if req.Amount != nil {
		s.form.SetAmount(*req.Amount)
	}
	if req.Location != nil {
		s.form.SetLocation(*req.Location)
	}

	state := s.State()
	log.Debug("draft updated", "draft", state.Draft, "can_submit", state.CanSubmit)
	return state
}

func (s *simulatorService) ResetDraft(ctx context.Context) dto.StateResponse {
	s.form.Reset()
	logger.FromContext(ctx).Debug("draft reset")
	return s.State()
}

func (s *simulatorService) State() dto.StateResponse {
	draft := s.form.Draft()
	snap := s.workflow.Snapshot()
	canSubmit := draft.CanSubmit()
	return dto.StateResponse{
		Draft:         draft,
		CanSubmit:     canSubmit,
		State:         snap.State,
		SubmitEnabled: canSubmit && snap.State == dto.StateIdle,
		Current:       snap.Current,
	}
}

// Submit hands a snapshot of the current draft to the workflow.
func (s *simulatorService) Submit(ctx context.Context) (dto.SubmitResponse, error) {
	draft := s.form.Draft()
	if err := s.workflow.Submit(ctx, draft); err != nil {
		return dto.SubmitResponse{}, err
	}
	return dto.SubmitResponse{
		State: dto.StateProcessing,
		Draft: draft,
	}, nil
}

func (s *simulatorService) CurrentTransaction(ctx context.Context) (dto.TransactionResponse, error) {
	rec, ok := s.workflow.Current()
	if !ok {
		return dto.TransactionResponse{}, errs.NewNotFoundError("no transaction has been processed yet")
	}
	return dto.TransactionResponse{
		Record:   rec,
		Analysis: s.analyzer.Analyze(ctx, rec),
	}, nil
}
