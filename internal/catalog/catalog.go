// Package catalog holds the read-only reference tables for the simulator:
// merchants, locations and the demo customer profile.
package catalog

import (
	"slices"

	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/models"
)

var merchants = []models.Merchant{
	{Name: "DevCon Coffee Co.", Category: "Food & Drink", RiskTier: models.RiskLow},
	{Name: "FinTech Electronics Hub", Category: "Electronics", RiskTier: models.RiskMedium},
	{Name: "Blockchain Airways", Category: "Travel", RiskTier: models.RiskHigh},
	{Name: "Crypto Mart", Category: "Groceries", RiskTier: models.RiskLow},
	{Name: "DeFi Car Rentals", Category: "Transportation", RiskTier: models.RiskHigh},
	{Name: "Smart Contract Decor", Category: "Home & Garden", RiskTier: models.RiskMedium},
	{Name: "Web3 Bistro", Category: "Restaurants", RiskTier: models.RiskMedium},
}

var locations = []string{
	"San Francisco, CA",
	"New York, NY",
	"London, UK",
	"Singapore",
	"Austin, TX",
	"Miami, FL",
	"Toronto, CA",
	"Berlin, DE",
}

var merchantsByName = func() map[string]models.Merchant {
	m := make(map[string]models.Merchant, len(merchants))
	for _, merchant := range merchants {
		m[merchant.Name] = merchant
	}
	return m
}()

// Merchants returns the merchant table in display order.
func Merchants() []models.Merchant {
	return slices.Clone(merchants)
}

// Locations returns the location table in display order.
func Locations() []string {
	return slices.Clone(locations)
}

// LookupMerchant matches name exactly, case included.
func LookupMerchant(name string) (models.Merchant, error) {
	m, ok := merchantsByName[name]
	if !ok {
		return models.Merchant{}, errs.NewMerchantNotFoundError(name)
	}
	return m, nil
}

func IsLocation(name string) bool {
	return slices.Contains(locations, name)
}
