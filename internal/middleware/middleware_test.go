package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/fraud-simulator/internal/response"
	"github.com/GregMSThompson/fraud-simulator/pkg/helpers"
	"github.com/GregMSThompson/fraud-simulator/pkg/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	m := NewRateLimitMiddleware(0.001, 2, response.New(helpers.TestLogger()))
	h := m.Limit(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/submit", nil))
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent {
		t.Fatalf("burst requests should pass: %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be throttled: %v", codes)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	m := NewRateLimitMiddleware(0, 0, response.New(helpers.TestLogger()))
	h := m.Limit(okHandler())

	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/submit", nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("request %d throttled with limiting disabled", i)
		}
	}
}

func TestLoggerMiddlewareInjectsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(logger.NewCloudRunWriterHandler(slog.LevelDebug, &buf))
	m := NewLoggerMiddleware(base)

	h := chimiddleware.RequestID(m.LoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/state", nil))

	out := buf.String()
	if !strings.Contains(out, `"path":"/api/state"`) {
		t.Fatalf("request attributes missing: %s", out)
	}
	if !strings.Contains(out, `"status":418`) {
		t.Fatalf("completion line missing status: %s", out)
	}
}

func TestLimitRedirectSendsBrowserHome(t *testing.T) {
	m := NewRateLimitMiddleware(0.001, 1, response.New(helpers.TestLogger()))
	h := m.LimitRedirect("/")(okHandler())

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/submit", nil))
	if first.Code != http.StatusNoContent {
		t.Fatalf("first request = %d, want pass-through", first.Code)
	}

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/submit", nil))
	if second.Code != http.StatusSeeOther || second.Header().Get("Location") != "/" {
		t.Fatalf("throttled form post = %d %q, want 303 /", second.Code, second.Header().Get("Location"))
	}
}
