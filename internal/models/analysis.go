package models

type AgentStatus struct {
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

// Analysis is placeholder narrative; none of it is derived from a record.
type Analysis struct {
	Agents      []AgentStatus `json:"agents"`
	Flagged     bool          `json:"flagged"`
	RiskScore   int           `json:"riskScore"`
	Reasons     []string      `json:"reasons"`
	Placeholder string        `json:"placeholder"`
	Summary     []string      `json:"summary"`
}
