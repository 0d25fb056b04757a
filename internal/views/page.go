// Package views renders the simulator page as templ components.
package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/GregMSThompson/fraud-simulator/internal/dto"
	"github.com/GregMSThompson/fraud-simulator/internal/models"
	"github.com/GregMSThompson/fraud-simulator/pkg/helpers"
)

// PageModel is everything the page needs; it is built fresh per request.
type PageModel struct {
	Merchants  []models.Merchant
	Locations  []string
	Draft      dto.TransactionDraft
	Processing bool
	Current    *models.TransactionRecord
	Analysis   *models.Analysis
	Profile    models.CustomerProfile

	// RefreshSeconds > 0 adds a meta refresh while a run is processing.
	RefreshSeconds int
}

func Page(m PageModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if m.Processing && m.RefreshSeconds > 0 {
			hw.raw(`<meta http-equiv="refresh"`)
			hw.attr("content", strconv.Itoa(m.RefreshSeconds))
			hw.raw(`>`)
		}
		hw.raw(`<title>AI Fraud Detection Platform</title></head><body><main class="container">`)
		hw.raw(`<header class="hero"><span class="pill">FinTech DevCon 2025 • Live Demo</span>`)
		hw.raw(`<h1>AI Fraud Detection Platform</h1>`)
		hw.raw(`<p>Real-time analysis and transaction monitoring with intelligent multi-agent workflows <strong>powered by Conductor OSS</strong></p></header>`)
		hw.raw(`<div class="grid">`)
		if hw.err != nil {
			return hw.err
		}
		for _, c := range []templ.Component{TransactionForm(m), ResultPanel(m)} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		hw.raw(`</div>`)
		if hw.err != nil {
			return hw.err
		}
		if err := ProfileCard(m.Profile).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</main></body></html>`)
		return hw.err
	})
}

// TransactionForm posts all three fields at once to /submit.
func TransactionForm(m PageModel) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		selectedMerchant := helpers.Value(m.Draft.Merchant)
		selectedLocation := helpers.Value(m.Draft.Location)

		hw.raw(`<section class="card" id="simulator"><h2>Transaction Simulator</h2>`)
		hw.raw(`<p>Simulate financial transactions to demonstrate AI-powered fraud detection capabilities</p>`)
		hw.raw(`<form method="post" action="/submit">`)

		hw.raw(`<label for="merchant">Select Merchant</label><select id="merchant" name="merchant" required>`)
		hw.raw(`<option value="">Choose a merchant...</option>`)
		for _, merchant := range m.Merchants {
			hw.raw(`<option`)
			hw.attr("value", merchant.Name)
			hw.flag("selected", merchant.Name == selectedMerchant)
			hw.raw(`>`)
			hw.text(merchant.Name + " (" + merchant.Category + ") · " + string(merchant.RiskTier) + " risk")
			hw.raw(`</option>`)
		}
		hw.raw(`</select>`)

		hw.raw(`<label for="amount">Transaction Amount ($)</label>`)
		hw.raw(`<input id="amount" name="amount" type="number" min="0" step="0.01" placeholder="0.00" required`)
		hw.attr("value", helpers.Value(m.Draft.Amount))
		hw.raw(`>`)

		hw.raw(`<label for="location">Transaction Location</label><select id="location" name="location" required>`)
		hw.raw(`<option value="">Choose location...</option>`)
		for _, loc := range m.Locations {
			hw.raw(`<option`)
			hw.attr("value", loc)
			hw.flag("selected", loc == selectedLocation)
			hw.raw(`>`)
			hw.text(loc)
			hw.raw(`</option>`)
		}
		hw.raw(`</select>`)

		hw.raw(`<button type="submit"`)
		hw.flag("disabled", m.Processing)
		hw.raw(`>`)
		if m.Processing {
			hw.raw(`AI Agents Analyzing...`)
		} else {
			hw.raw(`Execute Transaction`)
		}
		hw.raw(`</button></form></section>`)
		return hw.err
	})
}

// ResultPanel shows the current record with the placeholder analysis, or the
// empty state.
func ResultPanel(m PageModel) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="card" id="result"><h2>AI Agent Analysis</h2>`)

		switch {
		case m.Processing:
			hw.raw(`<p class="status">AI Agents Analyzing...</p>`)
		case m.Current == nil:
			hw.raw(`<div class="empty"><p>Execute a transaction to see AI agent analysis</p><p>Real-time fraud detection in action</p></div>`)
		default:
			rec := m.Current
			hw.raw(`<div class="record"><div class="record-head"><span>Transaction Processed</span><span`)
			hw.attr("class", RiskBadgeClass(rec.RiskTier))
			hw.raw(`>`)
			if rec.RiskTier != nil {
				hw.text(string(*rec.RiskTier) + " risk")
			} else {
				hw.raw(`unknown risk`)
			}
			hw.raw(`</span></div><dl>`)
			field(hw, "Transaction ID", rec.ID)
			field(hw, "Merchant", rec.Merchant)
			field(hw, "Amount", FormatAmount(rec.Amount))
			field(hw, "Location", rec.Location)
			field(hw, "Category", orDash(rec.Category))
			field(hw, "Timestamp", FormatTimestamp(rec.CreatedAt))
			hw.raw(`</dl></div>`)
			if m.Analysis != nil {
				analysis(hw, *m.Analysis)
			}
		}

		hw.raw(`</section>`)
		return hw.err
	})
}

func analysis(hw *htmlWriter, a models.Analysis) {
	hw.raw(`<h3>Agent Workflow Status</h3><ul class="agents">`)
	for _, agent := range a.Agents {
		hw.raw(`<li>`)
		hw.text(agent.Name)
		if agent.Complete {
			hw.raw(` ✓`)
		}
		hw.raw(`</li>`)
	}
	hw.raw(`</ul>`)

	if a.Flagged {
		hw.raw(`<div class="alert alert-fraud"><p><strong>Fraud Alert:</strong> This transaction has been flagged as potentially fraudulent.</p><p>`)
		hw.text("Risk Score: " + strconv.Itoa(a.RiskScore) + "%")
		for _, reason := range a.Reasons {
			hw.text(" • Reason: " + reason)
		}
		hw.raw(`</p><p class="muted">`)
		hw.text(a.Placeholder)
		hw.raw(`</p></div>`)
	}

	if len(a.Summary) > 0 {
		hw.raw(`<div class="alert alert-demo"><p><strong>Live Demo:</strong> `)
		hw.text(a.Summary[0])
		hw.raw(`</p>`)
		for _, line := range a.Summary[1:] {
			hw.raw(`<p>`)
			hw.text(line)
			hw.raw(`</p>`)
		}
		hw.raw(`</div>`)
	}
}

func ProfileCard(p models.CustomerProfile) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="card" id="profile"><h2>`)
		hw.text(p.Title)
		hw.raw(`</h2><p>`)
		hw.text(p.Description)
		hw.raw(`</p><div class="profile-grid">`)
		for _, section := range p.Sections {
			hw.raw(`<div class="profile-section"><h4>`)
			hw.text(section.Title)
			hw.raw(`</h4><dl>`)
			for _, f := range section.Fields {
				field(hw, f.Label, f.Value)
			}
			hw.raw(`</dl></div>`)
		}
		hw.raw(`</div>`)
		for _, note := range p.Notes {
			hw.raw(`<p class="note">`)
			hw.text(note)
			hw.raw(`</p>`)
		}
		hw.raw(`</section>`)
		return hw.err
	})
}

func field(hw *htmlWriter, label, value string) {
	hw.raw(`<dt>`)
	hw.text(label + ":")
	hw.raw(`</dt><dd>`)
	hw.text(value)
	hw.raw(`</dd>`)
}
