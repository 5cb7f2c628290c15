// http собирает публичный REST-роутер ядра аутентификации.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/savelyeva-d/auth-core/internal/ratelimit"
	"github.com/savelyeva-d/auth-core/internal/service"
	"github.com/savelyeva-d/auth-core/internal/transport/http/handlers"
	"github.com/savelyeva-d/auth-core/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// Limiter ограничивает абуз-чувствительные эндпоинты (регистрация,
	// восстановление пароля); nil отключает лимиты.
	Limiter ratelimit.Limiter
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // per-route метрики
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	registerRoutes(root, h, svc, opts.Limiter)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service, limiter ratelimit.Limiter) {
	// Публичные эндпоинты с лимитом частоты: точки перебора и рассылки писем.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter))

		r.Post("/auth/register", h.Register)
		r.Post("/auth/password/forgot", h.ForgotPassword)
		r.Post("/auth/password/reset", h.ResetPassword)
	})

	// Публичные эндпоинты: авторизацией служат данные из тела запроса.
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
	r.Post("/auth/logout", h.Logout)
	r.Post("/auth/validate", h.Validate)
	r.Post("/auth/email/confirm", h.ConfirmEmail)
	r.Post("/auth/mfa/challenge", h.MFAChallenge)

	// Эндпоинты под валидным access-токеном.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthBearer(svc))

		r.Post("/auth/password/change", h.ChangePassword)
		r.Post("/auth/mfa/enroll", h.MFAEnroll)
		r.Post("/auth/mfa/confirm", h.MFAConfirm)
		r.Post("/auth/mfa/disable", h.MFADisable)
		r.Post("/auth/mfa/backup-codes", h.MFABackupCodes)
		r.Get("/auth/mfa/status", h.MFAStatus)
	})
}
