package dto

import (
	"time"

	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/models"
)

type WorkflowState string

const (
	StateIdle       WorkflowState = "idle"
	StateProcessing WorkflowState = "processing"
)

type EventKind string

const (
	EventSubmissionAccepted EventKind = "submission_accepted"
	EventSubmissionRejected EventKind = "submission_rejected"
	EventRecordPublished    EventKind = "record_published"
	EventMerchantNotFound   EventKind = "merchant_not_found"
	EventBuildFailed        EventKind = "build_failed"
)

// WorkflowEvent is delivered to listeners for every observable step.
type WorkflowEvent struct {
	Kind   EventKind                 `json:"kind"`
	At     time.Time                 `json:"at"`
	Draft  *TransactionDraft         `json:"draft,omitempty"`
	Record *models.TransactionRecord `json:"record,omitempty"`
	Reason errs.RejectReason         `json:"reason,omitempty"`
	Err    error                     `json:"-"`
}

type WorkflowSnapshot struct {
	State   WorkflowState             `json:"state"`
	Current *models.TransactionRecord `json:"current,omitempty"`
}

type StateResponse struct {
	Draft         TransactionDraft          `json:"draft"`
	CanSubmit     bool                      `json:"canSubmit"`
	State         WorkflowState             `json:"state"`
	SubmitEnabled bool                      `json:"submitEnabled"`
	Current       *models.TransactionRecord `json:"current,omitempty"`
}

type SubmitResponse struct {
	State WorkflowState    `json:"state"`
	Draft TransactionDraft `json:"draft"`
}

type TransactionResponse struct {
	Record   models.TransactionRecord `json:"record"`
	Analysis models.Analysis          `json:"analysis"`
}

type CatalogResponse struct {
	Merchants []models.Merchant `json:"merchants"`
	Locations []string          `json:"locations"`
}
