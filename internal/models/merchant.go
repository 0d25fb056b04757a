package models

type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

func (t RiskTier) Valid() bool {
	switch t {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// Merchant is static reference data; the risk tier never changes at runtime.
type Merchant struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	RiskTier RiskTier `json:"risk"`
}
