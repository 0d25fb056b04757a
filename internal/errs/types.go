package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// InvalidDraftError reports a build attempted on a draft that cannot be submitted.
type InvalidDraftError struct {
	ErrorMessage
}

// MerchantNotFoundError reports a merchant name missing from the catalog.
type MerchantNotFoundError struct {
	ErrorMessage
	Name string
}

type RejectReason string

const (
	RejectBusy         RejectReason = "busy"
	RejectInvalidDraft RejectReason = "invalid_draft"
	RejectClosed       RejectReason = "closed"
)

// RejectedError is returned when a submission does not start a workflow run.
type RejectedError struct {
	ErrorMessage
	Reason RejectReason
}

type RateLimitedError struct {
	ErrorMessage
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewInvalidDraftError(message string) *InvalidDraftError {
	return &InvalidDraftError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewMerchantNotFoundError(name string) *MerchantNotFoundError {
	return &MerchantNotFoundError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("merchant %q not found", name)},
		Name:         name,
	}
}

func NewRejectedError(reason RejectReason) *RejectedError {
	var msg string
	switch reason {
	case RejectBusy:
		msg = "a transaction is already processing"
	case RejectInvalidDraft:
		msg = "merchant, amount and location are required and amount must be a non-negative number"
	case RejectClosed:
		msg = "simulator is shut down"
	default:
		msg = "submission rejected"
	}
	return &RejectedError{
		ErrorMessage: ErrorMessage{Message: msg},
		Reason:       reason,
	}
}

func NewRateLimitedError() *RateLimitedError {
	return &RateLimitedError{
		ErrorMessage: ErrorMessage{Message: "too many submissions"},
	}
}
