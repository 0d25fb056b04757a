package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/GregMSThompson/fraud-simulator/internal/dto"
	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/models"
	"github.com/GregMSThompson/fraud-simulator/pkg/logger"
)

// DefaultProcessingDelay is how long a submission stays in processing.
const DefaultProcessingDelay = 2 * time.Second

const tracerName = "github.com/GregMSThompson/fraud-simulator/internal/services"

// EventListener receives workflow events. Listeners run outside the workflow lock.
type EventListener func(ctx context.Context, ev dto.WorkflowEvent)

type stopper interface {
	Stop() bool
}

// workflowService runs the Idle -> Processing -> Idle cycle. At most one run is
// processing at a time; a submit during processing is rejected, not queued.
type workflowService struct {
	delay     time.Duration
	clockNow  func() time.Time
	afterFunc func(d time.Duration, f func()) stopper
	newID     func() string
	tracer    trace.Tracer

	mu        sync.Mutex
	listeners []EventListener
	state     dto.WorkflowState
	current   *models.TransactionRecord
	pending   stopper
	span      trace.Span
	run       uint64
	done      chan struct{}
	closed    bool
}

func NewWorkflowService(delay time.Duration, listeners ...EventListener) *workflowService {
	if delay < 0 {
		delay = 0
	}
	return &workflowService{
		delay:    delay,
		clockNow: time.Now,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
		newID:     NewTransactionID,
		tracer:    otel.Tracer(tracerName),
		listeners: listeners,
		state:     dto.StateIdle,
	}
}

// Subscribe registers an additional listener.
func (s *workflowService) Subscribe(l EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Submit starts a run for draft and returns without waiting for the delay.
// A rejected submission returns *errs.RejectedError and changes nothing.
func (s *workflowService) Submit(ctx context.Context, draft dto.TransactionDraft) error {
	draft = draft.Clone()

	s.mu.Lock()
	var reason errs.RejectReason
	switch {
	case s.closed:
		reason = errs.RejectClosed
	case s.state == dto.StateProcessing:
		reason = errs.RejectBusy
	case !draft.CanSubmit():
		reason = errs.RejectInvalidDraft
	}
	if reason != "" {
		listeners := s.listeners
		s.mu.Unlock()

		trace.SpanFromContext(ctx).AddEvent("submission rejected",
			trace.WithAttributes(attribute.String("reason", string(reason))))
		s.emit(ctx, listeners, dto.WorkflowEvent{
			Kind:   dto.EventSubmissionRejected,
			At:     s.clockNow(),
			Draft:  &draft,
			Reason: reason,
		})
		return errs.NewRejectedError(reason)
	}

	// the run outlives the request that started it
	runCtx, span := s.tracer.Start(context.WithoutCancel(ctx), "workflow.submit",
		trace.WithAttributes(
			attribute.String("merchant", *draft.Merchant),
			attribute.String("location", *draft.Location),
			attribute.String("amount", *draft.Amount),
		))

	s.run++
	run := s.run
	s.state = dto.StateProcessing
	s.current = nil
	s.span = span
	s.done = make(chan struct{})
	s.pending = s.afterFunc(s.delay, func() {
		s.complete(runCtx, run, draft)
	})
	listeners := s.listeners
	s.mu.Unlock()

	s.emit(runCtx, listeners, dto.WorkflowEvent{
		Kind:  dto.EventSubmissionAccepted,
		At:    s.clockNow(),
		Draft: &draft,
	})
	return nil
}

func (s *workflowService) complete(ctx context.Context, run uint64, draft dto.TransactionDraft) {
	s.mu.Lock()
	if s.closed || run != s.run || s.state != dto.StateProcessing {
		s.mu.Unlock()
		return
	}

	rec, err := BuildTransaction(draft, s.clockNow, s.newID)
	span := s.span
	s.span = nil
	s.pending = nil
	s.state = dto.StateIdle
	if err == nil {
		s.current = &rec
	}
	close(s.done)
	listeners := s.listeners
	s.mu.Unlock()

	at := s.clockNow()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		span.End()
		s.emit(ctx, listeners, dto.WorkflowEvent{
			Kind:  dto.EventBuildFailed,
			At:    at,
			Draft: &draft,
			Err:   fmt.Errorf("build transaction: %w", err),
		})
		return
	}

	span.SetAttributes(attribute.String("transaction.id", rec.ID))
	span.End()

	if !rec.MerchantKnown() {
		s.emit(ctx, listeners, dto.WorkflowEvent{
			Kind:   dto.EventMerchantNotFound,
			At:     at,
			Record: recordPtr(rec),
			Err:    errs.NewMerchantNotFoundError(rec.Merchant),
		})
	}
	s.emit(ctx, listeners, dto.WorkflowEvent{
		Kind:   dto.EventRecordPublished,
		At:     at,
		Record: recordPtr(rec),
	})
}

func (s *workflowService) emit(ctx context.Context, listeners []EventListener, ev dto.WorkflowEvent) {
	for _, l := range listeners {
		l(ctx, ev)
	}
}

func (s *workflowService) State() dto.WorkflowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns a copy of the most recent record, if any.
func (s *workflowService) Current() (models.TransactionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.TransactionRecord{}, false
	}
	return s.current.Clone(), true
}

func (s *workflowService) Snapshot() dto.WorkflowSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := dto.WorkflowSnapshot{State: s.state}
	if s.current != nil {
		snap.Current = recordPtr(*s.current)
	}
	return snap
}

// Wait blocks until the workflow is idle or ctx is done.
func (s *workflowService) Wait(ctx context.Context) error {
	s.mu.Lock()
	if s.state == dto.StateIdle {
		s.mu.Unlock()
		return nil
	}
	done := s.done
	s.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close abandons a pending run; an abandoned run never publishes a record.
func (s *workflowService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	if s.span != nil {
		s.span.SetStatus(codes.Error, "abandoned")
		s.span.End()
		s.span = nil
	}
	if s.state == dto.StateProcessing {
		s.state = dto.StateIdle
		close(s.done)
	}
}

func recordPtr(rec models.TransactionRecord) *models.TransactionRecord {
	c := rec.Clone()
	return &c
}

// NewLogListener writes workflow events as structured log lines.
func NewLogListener() EventListener {
	return func(ctx context.Context, ev dto.WorkflowEvent) {
		log := logger.FromContext(ctx)
		switch ev.Kind {
		case dto.EventSubmissionAccepted:
			log.Debug("submission accepted", "draft", ev.Draft)
		case dto.EventSubmissionRejected:
			log.Warn("submission rejected", "reason", ev.Reason)
		case dto.EventMerchantNotFound:
			log.Warn("merchant not in catalog, metadata left empty", "error", ev.Err)
		case dto.EventBuildFailed:
			log.Error("failed to build transaction", "error", ev.Err)
		case dto.EventRecordPublished:
			rec := ev.Record
			log.Info("transaction submitted for fraud analysis",
				"transaction_id", rec.ID,
				"merchant", rec.Merchant,
				"amount", rec.Amount,
				"location", rec.Location,
				"category", rec.Category,
				"risk", rec.RiskTier,
				"timestamp", rec.CreatedAt,
			)
		}
	}
}
