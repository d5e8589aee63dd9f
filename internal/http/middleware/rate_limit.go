package middleware

import (
	"net"
	"net/http"

	"github.com/rogerio-castellano/soda-stock/internal/http/handlers"
	rl "github.com/rogerio-castellano/soda-stock/internal/http/rate_limiter"
	"github.com/rogerio-castellano/soda-stock/internal/logger"
)

// RateLimit rejects clients that exceed their token bucket with 429.
func RateLimit(limiter *rl.Limiter, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !limiter.Allow(ip) {
				if logg != nil {
					logg.Warn(logg.WithField(r.Context(), "client_ip", ip), "rate_limit.exceeded")
				}
				w.Header().Set("Retry-After", "1")
				handlers.WriteError(w, http.StatusTooManyRequests, handlers.CodeRateLimited, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
