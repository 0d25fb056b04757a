package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/GregMSThompson/fraud-simulator/internal/dto"
	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/services"
	"github.com/GregMSThompson/fraud-simulator/pkg/logger"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitRejected = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run submits one transaction built from args and writes the record as JSON to
// stdout. Fields whose flag was not passed stay unset.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	merchant := fs.String("merchant", "", "merchant name")
	amount := fs.String("amount", "", "transaction amount")
	location := fs.String("location", "", "transaction location")
	delay := fs.Duration("delay", services.DefaultProcessingDelay, "simulated processing delay")
	level := fs.String("log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	// stdout carries only the record
	log := logger.New(*level, func(l slog.Level) slog.Handler {
		return logger.NewCloudRunWriterHandler(l, stderr)
	})
	ctx = logger.ToContext(ctx, log)

	form := services.NewFormService()
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "merchant":
			form.SetMerchant(*merchant)
		case "amount":
			form.SetAmount(*amount)
		case "location":
			form.SetLocation(*location)
		}
	})

	wf := services.NewWorkflowService(*delay, services.NewLogListener())
	defer wf.Close()

	if err := wf.Submit(ctx, form.Draft()); err != nil {
		var rejected *errs.RejectedError
		if errors.As(err, &rejected) {
			fmt.Fprintf(stderr, "submission rejected: %s\n", rejected.Reason)
			return exitRejected
		}
		log.Error("submit failed", "error", err)
		return exitFailure
	}

	waitCtx, cancel := context.WithTimeout(ctx, *delay+5*time.Second)
	defer cancel()
	if err := wf.Wait(waitCtx); err != nil {
		log.Error("wait failed", "error", err)
		return exitFailure
	}

	rec, ok := wf.Current()
	if !ok {
		log.Error("workflow finished without a record")
		return exitFailure
	}

	out := dto.TransactionResponse{
		Record:   rec,
		Analysis: services.NewStaticAnalyzer().Analyze(ctx, rec),
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error("encode failed", "error", err)
		return exitFailure
	}
	return exitOK
}
