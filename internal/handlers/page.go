package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/fraud-simulator/internal/dto"
	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/response"
	"github.com/GregMSThompson/fraud-simulator/internal/views"
	"github.com/GregMSThompson/fraud-simulator/pkg/logger"
)

type pageHandlers struct {
	ResponseHandler response.ResponseHandler
	SimulatorSvc    simulatorService
	RefreshSeconds  int
}

func NewPageHandlers(deps *Deps) *pageHandlers {
	return &pageHandlers{
		ResponseHandler: deps.ResponseHandler,
		SimulatorSvc:    deps.SimulatorSvc,
		RefreshSeconds:  deps.RefreshSeconds,
	}
}

func (h *pageHandlers) PageRoutes(submitLimit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.With(submitLimit).Post("/submit", h.SubmitForm)
	return r
}

func (h *pageHandlers) Index(w http.ResponseWriter, r *http.Request) {
	state := h.SimulatorSvc.State()
	catalog := h.SimulatorSvc.Catalog()

	model := views.PageModel{
		Merchants:      catalog.Merchants,
		Locations:      catalog.Locations,
		Draft:          state.Draft,
		Processing:     state.State == dto.StateProcessing,
		Profile:        h.SimulatorSvc.Profile(),
		RefreshSeconds: h.RefreshSeconds,
	}

	if !model.Processing {
		tx, err := h.SimulatorSvc.CurrentTransaction(r.Context())
		var notFound *errs.NotFoundError
		switch {
		case err == nil:
			model.Current = &tx.Record
			model.Analysis = &tx.Analysis
		case !errors.As(err, &notFound):
			h.ResponseHandler.HandleError(w, r, err)
			return
		}
	}

	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(views.Page(model)).ServeHTTP(w, r)
}

// SubmitForm applies the posted fields and submits. A rejected submission is
// silent on the page; it is still logged and emitted as a workflow event.
func (h *pageHandlers) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed form body"))
		return
	}

	var req dto.DraftPatchRequest
	if _, ok := r.PostForm["merchant"]; ok {
		v := r.PostForm.Get("merchant")
		req.Merchant = &v
	}
	if _, ok := r.PostForm["amount"]; ok {
		v := r.PostForm.Get("amount")
		req.Amount = &v
	}
	if _, ok := r.PostForm["location"]; ok {
		v := r.PostForm.Get("location")
		req.Location = &v
	}
	h.SimulatorSvc.UpdateDraft(r.Context(), req)

	if _, err := h.SimulatorSvc.Submit(r.Context()); err != nil {
		var rejected *errs.RejectedError
		if !errors.As(err, &rejected) {
			h.ResponseHandler.HandleError(w, r, err)
			return
		}
		logger.FromContext(r.Context()).Debug("form submission ignored", "reason", rejected.Reason)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
