package middleware

import (
	"log/slog"
	"net"
	"net/http"

	logctx "github.com/savelyeva-d/auth-core/internal/pkg/log"
	"github.com/savelyeva-d/auth-core/internal/ratelimit"
	"github.com/savelyeva-d/auth-core/internal/transport/http/httperr"
)

// RateLimit ограничивает частоту запросов по ключу ip+маршрут.
// Ошибка лимитера не валит запрос (fail open): недоступный Redis не должен
// останавливать вход пользователей, факт деградации пишется в лог.
func RateLimit(limiter ratelimit.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r) + ":" + r.URL.Path

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelWarn,
					"rate_limiter_degraded",
					slog.String("err", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				httperr.WriteError(w, r, httperr.ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP — адрес клиента без порта; X-Forwarded-For здесь сознательно
// не читается: заголовку нельзя доверять без знания топологии прокси.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
