package dto

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/pkg/helpers"
)

// TransactionDraft is the partially filled form. A nil field was never set;
// a pointer to "" was set to an empty value.
type TransactionDraft struct {
	Merchant *string `json:"merchant"`
	Amount   *string `json:"amount"`
	Location *string `json:"location"`
}

func (d TransactionDraft) Clone() TransactionDraft {
	return TransactionDraft{
		Merchant: helpers.Clone(d.Merchant),
		Amount:   helpers.Clone(d.Amount),
		Location: helpers.Clone(d.Location),
	}
}

// CanSubmit reports whether all fields are set and the amount is a
// non-negative number. An empty merchant or location choice names nothing in
// the catalog, so it does not count as a selection.
func (d TransactionDraft) CanSubmit() bool {
	if d.Merchant == nil || d.Amount == nil || d.Location == nil {
		return false
	}
	if *d.Merchant == "" || *d.Location == "" {
		return false
	}
	_, err := ParseAmount(*d.Amount)
	return err == nil
}

// ParseAmount parses plain decimal notation. NaN, infinities and negative
// values are rejected.
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errs.NewValidationError("amount is required")
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, errs.NewValidationError("amount must be a number")
	}
	if d.IsNegative() {
		return 0, errs.NewValidationError("amount must not be negative")
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errs.NewValidationError("amount is out of range")
	}
	return f, nil
}

// DraftPatchRequest applies only the fields present in the body.
type DraftPatchRequest struct {
	Merchant *string `json:"merchant"`
	Amount   *string `json:"amount"`
	Location *string `json:"location"`
}
