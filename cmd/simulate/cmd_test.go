package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/GregMSThompson/fraud-simulator/internal/dto"
)

func TestRunPrintsRecord(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-merchant", "DevCon Coffee Co.",
		"-amount", "12.50",
		"-location", "Austin, TX",
		"-delay", "0s",
	}, &stdout, &stderr)

	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, stderr.String())
	}
	var out dto.TransactionResponse
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if out.Record.Amount != 12.5 || out.Record.Category == nil || *out.Record.Category != "Food & Drink" {
		t.Fatalf("unexpected record: %+v", out.Record)
	}
}

func TestRunMissingMerchantIsRejected(t *testing.T) {
	tests := map[string][]string{
		"flag omitted":   {"-amount", "5", "-location", "Austin, TX", "-delay", "0s"},
		"empty merchant": {"-merchant", "", "-amount", "5", "-location", "Austin, TX", "-delay", "0s"},
		"empty location": {"-merchant", "Crypto Mart", "-amount", "5", "-location", "", "-delay", "0s"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), args, &stdout, &stderr)

			if code != exitRejected {
				t.Fatalf("exit = %d, want %d", code, exitRejected)
			}
			if stdout.Len() != 0 {
				t.Fatalf("no record should be printed, got %s", stdout.String())
			}
			if !strings.Contains(stderr.String(), "invalid_draft") {
				t.Fatalf("stderr = %q, want invalid_draft reason", stderr.String())
			}
		})
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-delay", "soon"}, &stdout, &stderr); code != exitFailure {
		t.Fatalf("exit = %d, want %d", code, exitFailure)
	}
}
