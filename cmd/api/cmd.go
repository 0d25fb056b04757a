package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GregMSThompson/fraud-simulator/internal/bootstrap"
	"github.com/GregMSThompson/fraud-simulator/internal/config"
	"github.com/GregMSThompson/fraud-simulator/internal/handlers"
	"github.com/GregMSThompson/fraud-simulator/internal/response"
	"github.com/GregMSThompson/fraud-simulator/internal/router"
	"github.com/GregMSThompson/fraud-simulator/internal/services"
)

const shutdownTimeout = 10 * time.Second

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg, err := config.New()
	exitOnError("config failed", err, slog.Default())
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// services
	formsv := services.NewFormService()
	wfsv := services.NewWorkflowService(cfg.ProcessingDelay, services.NewLogListener())
	simsv := services.NewSimulatorService(formsv, wfsv, services.NewStaticAnalyzer())

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.SimulatorSvc = simsv
	deps.RefreshSeconds = cfg.RefreshSeconds

	// router
	r := router.NewRouter(deps, router.Limits{
		SubmitPerSecond: cfg.SubmitRateLimit,
		SubmitBurst:     cfg.SubmitBurst,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		bs.Log.Info("server listening", "addr", srv.Addr, "processing_delay", cfg.ProcessingDelay)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitOnError("server start failed", err, bs.Log)
		}
	}()

	<-ctx.Done()
	bs.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		bs.Log.Error("server shutdown failed", "error", err)
	}
	wfsv.Close()
	if err := bs.Close(shutdownCtx); err != nil {
		bs.Log.Error("bootstrap close failed", "error", err)
	}
}
