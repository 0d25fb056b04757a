package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/fraud-simulator/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	SimulatorSvc    simulatorService
	// RefreshSeconds controls the page auto-refresh while processing.
	RefreshSeconds int
}
