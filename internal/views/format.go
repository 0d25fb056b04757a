package views

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/GregMSThompson/fraud-simulator/internal/models"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders a dollar amount with two decimals and US grouping.
func FormatAmount(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// RiskBadgeClass maps a tier to its badge colour; unknown tiers are gray.
func RiskBadgeClass(tier *models.RiskTier) string {
	if tier == nil {
		return "badge badge-gray"
	}
	switch *tier {
	case models.RiskLow:
		return "badge badge-green"
	case models.RiskMedium:
		return "badge badge-yellow"
	case models.RiskHigh:
		return "badge badge-pink"
	default:
		return "badge badge-gray"
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}
