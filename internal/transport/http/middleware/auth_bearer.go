package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/savelyeva-d/auth-core/internal/service"
	"github.com/savelyeva-d/auth-core/internal/transport/http/httperr"
)

type identityKey struct{}

// TokenVerifier — срез сервисного слоя для проверки access-токена.
type TokenVerifier interface {
	ValidateAccessToken(ctx context.Context, accessToken string) (*service.Identity, error)
}

// AuthBearer проверяет Bearer access-токен и кладёт личность владельца
// в контекст запроса. Запросы без валидного токена отклоняются с 401.
func AuthBearer(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			identity, err := v.ValidateAccessToken(r.Context(), token)
			if err != nil {
				httperr.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom достаёт личность из контекста; nil — запрос не аутентифицирован.
func IdentityFrom(ctx context.Context) *service.Identity {
	identity, _ := ctx.Value(identityKey{}).(*service.Identity)
	return identity
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
