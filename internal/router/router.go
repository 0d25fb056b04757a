package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/fraud-simulator/internal/handlers"
	"github.com/GregMSThompson/fraud-simulator/internal/middleware"
)

// Limits configures the token bucket shared by both submit routes.
type Limits struct {
	SubmitPerSecond float64
	SubmitBurst     int
}

func NewRouter(deps *handlers.Deps, limits Limits) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	rl := middleware.NewRateLimitMiddleware(limits.SubmitPerSecond, limits.SubmitBurst, deps.ResponseHandler)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		deps.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	sh := handlers.NewSimulatorHandlers(deps)
	ph := handlers.NewPageHandlers(deps)

	r.Mount("/api", sh.SimulatorRoutes(rl.Limit))
	r.Mount("/", ph.PageRoutes(rl.LimitRedirect("/")))
	return r
}
