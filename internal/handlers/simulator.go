package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/fraud-simulator/internal/dto"
	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/models"
	"github.com/GregMSThompson/fraud-simulator/internal/response"
)

type simulatorService interface {
	Catalog() dto.CatalogResponse
	Profile() models.CustomerProfile
	State() dto.StateResponse
	UpdateDraft(ctx context.Context, req dto.DraftPatchRequest) dto.StateResponse
	ResetDraft(ctx context.Context) dto.StateResponse
	Submit(ctx context.Context) (dto.SubmitResponse, error)
	CurrentTransaction(ctx context.Context) (dto.TransactionResponse, error)
}

type simulatorHandlers struct {
	ResponseHandler response.ResponseHandler
	SimulatorSvc    simulatorService
}

func NewSimulatorHandlers(deps *Deps) *simulatorHandlers {
	return &simulatorHandlers{
		ResponseHandler: deps.ResponseHandler,
		SimulatorSvc:    deps.SimulatorSvc,
	}
}

// SimulatorRoutes mounts the JSON API. submitLimit wraps the submit route.
func (h *simulatorHandlers) SimulatorRoutes(submitLimit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/catalog", h.GetCatalog)
	r.Get("/profile", h.GetProfile)
	r.Get("/state", h.GetState)
	r.Patch("/draft", h.UpdateDraft)
	r.Delete("/draft", h.ResetDraft)
	r.With(submitLimit).Post("/submit", h.Submit)
	r.Get("/transaction", h.GetTransaction)
	return r
}

func (h *simulatorHandlers) GetCatalog(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.SimulatorSvc.Catalog())
}

func (h *simulatorHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.SimulatorSvc.Profile())
}

func (h *simulatorHandlers) GetState(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.SimulatorSvc.State())
}

func (h *simulatorHandlers) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req dto.DraftPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, fmt.Errorf("decode draft patch: %w", errs.NewValidationError("malformed request body")))
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.SimulatorSvc.UpdateDraft(r.Context(), req))
}

func (h *simulatorHandlers) ResetDraft(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.SimulatorSvc.ResetDraft(r.Context()))
}

func (h *simulatorHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	resp, err := h.SimulatorSvc.Submit(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusAccepted, resp)
}

func (h *simulatorHandlers) GetTransaction(w http.ResponseWriter, r *http.Request) {
	resp, err := h.SimulatorSvc.CurrentTransaction(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
