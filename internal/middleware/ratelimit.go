package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/GregMSThompson/fraud-simulator/internal/errs"
	"github.com/GregMSThompson/fraud-simulator/internal/response"
	"github.com/GregMSThompson/fraud-simulator/pkg/logger"
)

type rateLimitMiddleware struct {
	limiter         *rate.Limiter
	ResponseHandler response.ResponseHandler
}

// NewRateLimitMiddleware throttles with a token bucket shared by every route it
// wraps. perSecond <= 0 disables throttling.
func NewRateLimitMiddleware(perSecond float64, burst int, rh response.ResponseHandler) *rateLimitMiddleware {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimitMiddleware{
		limiter:         rate.NewLimiter(limit, burst),
		ResponseHandler: rh,
	}
}

func (m *rateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow() {
			m.ResponseHandler.HandleError(w, r, errs.NewRateLimitedError())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LimitRedirect shares the bucket with Limit but answers a throttled browser
// form post with a 303 to target, keeping the page flow silent.
func (m *rateLimitMiddleware) LimitRedirect(target string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.limiter.Allow() {
				logger.FromContext(r.Context()).Warn("form submission throttled", "path", r.URL.Path)
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
