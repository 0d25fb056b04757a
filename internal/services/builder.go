package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/fraud-simulator/internal/catalog"
	"github.com/GregMSThompson/fraud-simulator/internal/dto"
	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/models"
	"github.com/GregMSThompson/fraud-simulator/pkg/helpers"
)

const transactionIDPrefix = "TXN-"

// NewTransactionID returns a time-ordered id; UUIDv7 keeps ids distinct
// within the same millisecond.
func NewTransactionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return transactionIDPrefix + uuid.NewString()
	}
	return transactionIDPrefix + id.String()
}

// BuildTransaction turns a submittable draft into a record. An unknown merchant
// still yields a record, with Category and RiskTier left nil.
func BuildTransaction(draft dto.TransactionDraft, now func() time.Time, newID func() string) (models.TransactionRecord, error) {
	if !draft.CanSubmit() {
		return models.TransactionRecord{}, errs.NewInvalidDraftError("draft is incomplete or has an invalid amount")
	}

	amount, err := dto.ParseAmount(*draft.Amount)
	if err != nil {
		return models.TransactionRecord{}, errs.NewInvalidDraftError(err.Error())
	}

	rec := models.TransactionRecord{
		ID:        newID(),
		Merchant:  *draft.Merchant,
		Amount:    amount,
		Location:  *draft.Location,
		CreatedAt: now().UTC().Truncate(time.Millisecond),
	}

	merchant, err := catalog.LookupMerchant(rec.Merchant)
	var notFound *errs.MerchantNotFoundError
	switch {
	case err == nil:
		rec.Category = helpers.Ptr(merchant.Category)
		rec.RiskTier = helpers.Ptr(merchant.RiskTier)
	case errors.As(err, &notFound):
		// metadata stays absent
	default:
		return models.TransactionRecord{}, err
	}

	return rec, nil
}
