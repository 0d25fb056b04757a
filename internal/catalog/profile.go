package catalog

import "github.com/GregMSThompson/fraud-simulator/internal/models"

// Profile returns the fixed demo customer. Every call builds a fresh value.
func Profile() models.CustomerProfile {
	return models.CustomerProfile{
		Title:       "Customer Profile & Risk Context",
		Description: "Comprehensive user data utilized by AI agents for intelligent fraud detection and behavioral analysis",
		Sections: []models.ProfileSection{
			{Title: "Customer Identity", Fields: []models.ProfileField{
				{Label: "Name", Value: "Alex Chen"},
				{Label: "Age", Value: "29"},
				{Label: "Phone", Value: "+1 (555) 987-6543"},
				{Label: "Email", Value: "alex.chen@fintech.dev"},
			}},
			{Title: "Geographic Profile", Fields: []models.ProfileField{
				{Label: "Home Address", Value: "456 Tech St, SF, CA"},
				{Label: "Current Location", Value: "San Francisco, CA"},
				{Label: "Timezone", Value: "PST (UTC-8)"},
				{Label: "Travel Status", Value: "Local"},
			}},
			{Title: "Financial Standing", Fields: []models.ProfileField{
				{Label: "Annual Income", Value: "$145,000"},
				{Label: "Credit Score", Value: "785"},
				{Label: "Account Since", Value: "2020"},
				{Label: "Account Type", Value: "FinTech Premium"},
			}},
			{Title: "Transaction Patterns", Fields: []models.ProfileField{
				{Label: "Monthly Average", Value: "$4,200"},
				{Label: "Largest Transaction", Value: "$8,500"},
				{Label: "Primary Categories", Value: "Tech, Travel"},
				{Label: "Anomaly Score", Value: "Low"},
			}},
			{Title: "Security Profile", Fields: []models.ProfileField{
				{Label: "MFA Enabled", Value: "Active"},
				{Label: "Notifications", Value: "Real-time"},
				{Label: "Last Session", Value: "1 hour ago"},
				{Label: "Risk Rating", Value: "Minimal"},
			}},
			{Title: "Recent Activity", Fields: []models.ProfileField{
				{Label: "Last Transaction", Value: "45 minutes ago"},
				{Label: "Location", Value: "San Francisco, CA"},
				{Label: "Device", Value: "MacBook Pro"},
				{Label: "Session ID", Value: "SES-2024-001"},
			}},
		},
		Notes: []string{
			"AI Context Engine: Our intelligent agents leverage this comprehensive profile data to establish behavioral baselines and detect anomalous transaction patterns in real-time.",
			"Machine learning models continuously analyze spending habits, geographic patterns, and temporal behaviors to provide accurate fraud risk assessment with 99.7% precision and sub-second response times.",
		},
	}
}
