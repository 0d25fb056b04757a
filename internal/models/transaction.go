package models

import (
	"time"

	"github.com/GregMSThompson/fraud-simulator/pkg/helpers"
)

// TransactionRecord is the immutable result of one successful submission.
// Category and RiskTier are nil when the merchant was not in the catalog.
type TransactionRecord struct {
	ID        string    `json:"id"`
	Merchant  string    `json:"merchant"`
	Category  *string   `json:"category,omitempty"`
	RiskTier  *RiskTier `json:"risk,omitempty"`
	Amount    float64   `json:"amount"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"timestamp"`
}

// Clone returns a deep copy so callers cannot reach the held record.
func (r TransactionRecord) Clone() TransactionRecord {
	r.Category = helpers.Clone(r.Category)
	r.RiskTier = helpers.Clone(r.RiskTier)
	return r
}

func (r TransactionRecord) MerchantKnown() bool {
	return r.Category != nil && r.RiskTier != nil
}
