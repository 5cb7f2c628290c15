// httperr стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает доменную ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Незнакомая ошибка трактуется как отказ зависимости (503/unavailable):
// полные детали остаются в серверном логе, клиент получает сигнал
// «повтори позже» вместо ложного «ошибка в твоём запросе».
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/savelyeva-d/auth-core/internal/service"
)

// HTTP 423 Locked — стандартный код, но без константы в net/http.
const StatusLocked = 423

var (
	// ErrInvalidArgument — ошибка разбора входного тела запроса.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRateLimited — превышен лимит частоты запросов.
	ErrRateLimited = errors.New("rate limited")
	// ErrInternal — паника или иная программная ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// APIError — единый формат для клиента.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не послать
//     "200 OK" с телом ошибки и не маскировать баг;
//   - известные доменные ошибки маппятся по таблице ниже;
//   - всё прочее — 503/unavailable.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return response(http.StatusInternalServerError, "internal", "internal error")
	}

	switch {
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrEmptyPassword):
		return response(http.StatusBadRequest, "invalid_argument", "invalid argument")

	case errors.Is(err, service.ErrReplayDetected):
		// Отдельный код: клиент должен понять, что все его сессии отозваны.
		return response(http.StatusUnauthorized, "replay_detected", "session revoked: token reuse detected")

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrInvalidCode):
		return response(http.StatusUnauthorized, "unauthenticated", "unauthenticated")

	case errors.Is(err, service.ErrAccountLocked):
		return response(StatusLocked, "account_locked", "account temporarily locked")

	case errors.Is(err, service.ErrEmailTaken):
		return response(http.StatusConflict, "already_exists", "already exists")

	case errors.Is(err, service.ErrMFAAlreadyEnabled),
		errors.Is(err, service.ErrMFANotEnabled),
		errors.Is(err, service.ErrMFANotPending):
		return response(http.StatusConflict, "mfa_state_conflict", "mfa state conflict")

	case errors.Is(err, ErrRateLimited):
		return response(http.StatusTooManyRequests, "rate_limited", "too many requests")

	case errors.Is(err, ErrInternal):
		return response(http.StatusInternalServerError, "internal", "internal error")

	default:
		return response(http.StatusServiceUnavailable, "unavailable", "service unavailable")
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id, чтобы клиент мог репортить проблемы с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func response(status int, code, msg string) (int, ErrorResponse) {
	return status, ErrorResponse{Error: APIError{Code: code, Message: msg}}
}
