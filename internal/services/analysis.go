package services

import (
	"context"

	"github.com/GregMSThompson/fraud-simulator/internal/models"
)

// staticAnalyzer stands in for the multi-agent fraud workflow. It returns the
// same narrative for every record.
type staticAnalyzer struct{}

func NewStaticAnalyzer() *staticAnalyzer {
	return &staticAnalyzer{}
}

func (a *staticAnalyzer) Analyze(_ context.Context, _ models.TransactionRecord) models.Analysis {
	return models.Analysis{
		Agents: []models.AgentStatus{
			{Name: "Agent 1: Transaction Analysis Agent", Complete: true},
			{Name: "Agent 2: Claims Agent", Complete: true},
			{Name: "Agent 3: Payment Agent", Complete: true},
		},
		Flagged:   true,
		RiskScore: 87,
		Reasons: []string{
			"Unusual spending pattern detected",
			"Location anomaly identified",
		},
		Placeholder: "[Placeholder - Backend integration pending]",
		Summary: []string{
			"Transaction successfully processed through the AI agent workflow.",
			"Three specialized agents analyzed transaction patterns, user behavior, and risk indicators in real-time using advanced machine learning algorithms.",
		},
	}
}
