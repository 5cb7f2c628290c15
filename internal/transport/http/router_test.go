package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/savelyeva-d/auth-core/internal/config"
	"github.com/savelyeva-d/auth-core/internal/events"
	"github.com/savelyeva-d/auth-core/internal/models"
	"github.com/savelyeva-d/auth-core/internal/security"
	"github.com/savelyeva-d/auth-core/internal/service"
	"github.com/savelyeva-d/auth-core/internal/storage"
	"github.com/savelyeva-d/auth-core/mocks"
)

// Сквозные тесты REST-слоя: настоящий роутер и сервис, storage/lockout — моки.

func routerCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "router-access-secret",
		RefreshSecret:   "router-refresh-secret",
		AccessTokenTTL:  30 * time.Second,
		RefreshTokenTTL: 24 * time.Hour,
		MFAChallengeTTL: time.Minute,
		ResetTokenTTL:   time.Hour,
		VerifyTokenTTL:  24 * time.Hour,
		Issuer:          "auth-core",
		Audience:        []string{"api-gateway"},
	}
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockStorage, *mocks.MockCounter, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	lc := mocks.NewMockCounter(ctrl)

	cipher, err := security.NewCipher("")
	require.NoError(t, err)

	svc := service.New(st, lc, events.NewNop(), cipher, routerCfg(), config.MFAConfig{TOTPIssuer: "auth-core"})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(svc, Options{Logger: logger, Timeout: 5 * time.Second}), st, lc, ctrl
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	r := httptest.NewRequest(method, path, &buf)
	r.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		r.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestRouter_Register_Created(t *testing.T) {
	t.Parallel()

	h, st, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().CreateSingleUseToken(gomock.Any(), gomock.Any()).Return(nil)

	w := doJSON(t, h, http.MethodPost, "/auth/register", map[string]string{
		"tenant_id": uuid.NewString(),
		"email":     "new@example.com",
		"password":  "Abcdef1!",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, "new@example.com", resp.Email)
	_, err := uuid.Parse(resp.UserID)
	require.NoError(t, err)
}

func TestRouter_Register_MalformedBody(t *testing.T) {
	t.Parallel()

	h, _, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_argument")
}

// decodeStrict: неизвестные поля в теле отклоняются.
func TestRouter_Register_UnknownField(t *testing.T) {
	t.Parallel()

	h, _, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	w := doJSON(t, h, http.MethodPost, "/auth/register", map[string]string{
		"tenant_id": uuid.NewString(),
		"email":     "new@example.com",
		"password":  "Abcdef1!",
		"is_admin":  "true",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Register_BadTenantID(t *testing.T) {
	t.Parallel()

	h, _, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	w := doJSON(t, h, http.MethodPost, "/auth/register", map[string]string{
		"tenant_id": "not-a-uuid",
		"email":     "new@example.com",
		"password":  "Abcdef1!",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Register_EmailTaken_Conflict(t *testing.T) {
	t.Parallel()

	h, st, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	w := doJSON(t, h, http.MethodPost, "/auth/register", map[string]string{
		"tenant_id": uuid.NewString(),
		"email":     "taken@example.com",
		"password":  "Abcdef1!",
	}, nil)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "already_exists")
}

func TestRouter_Login_UnknownEmail_Unauthenticated(t *testing.T) {
	t.Parallel()

	h, st, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)

	w := doJSON(t, h, http.MethodPost, "/auth/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "Abcdef1!",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "unauthenticated")
}

func seedRouterUser(t *testing.T, password string) *models.User {
	t.Helper()

	hash, err := security.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	return &models.User{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		Email:        "user@example.com",
		Role:         "user",
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRouter_Login_Locked_423(t *testing.T) {
	t.Parallel()

	h, st, lc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	user := seedRouterUser(t, "Abcdef1!")

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	lc.EXPECT().IsLocked(gomock.Any(), user.ID).Return(true, 5*time.Minute, nil)

	w := doJSON(t, h, http.MethodPost, "/auth/login", map[string]string{
		"email":    user.Email,
		"password": "Abcdef1!",
	}, nil)

	require.Equal(t, 423, w.Code)
	require.Contains(t, w.Body.String(), "account_locked")
}

// Полный цикл через HTTP: логин выдаёт пару, access проходит валидацию.
func TestRouter_Login_Then_Validate(t *testing.T) {
	t.Parallel()

	h, st, lc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	user := seedRouterUser(t, "Abcdef1!")

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	lc.EXPECT().IsLocked(gomock.Any(), user.ID).Return(false, time.Duration(0), nil)
	lc.EXPECT().RecordSuccess(gomock.Any(), user.ID).Return(nil)
	st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	w := doJSON(t, h, http.MethodPost, "/auth/login", map[string]string{
		"email":    user.Email,
		"password": "Abcdef1!",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		UserID       string `json:"user_id"`
	}
	decodeBody(t, w, &login)
	require.NotEmpty(t, login.AccessToken)
	require.NotEmpty(t, login.RefreshToken)
	require.Equal(t, user.ID.String(), login.UserID)

	w = doJSON(t, h, http.MethodPost, "/auth/validate", map[string]string{
		"access_token": login.AccessToken,
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var validated struct {
		UserID   string `json:"user_id"`
		TenantID string `json:"tenant_id"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
	decodeBody(t, w, &validated)
	require.Equal(t, user.ID.String(), validated.UserID)
	require.Equal(t, user.TenantID.String(), validated.TenantID)
	require.Equal(t, user.Email, validated.Email)
	require.Equal(t, "user", validated.Role)
}

func TestRouter_MFAStatus_RequiresBearer(t *testing.T) {
	t.Parallel()

	h, _, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodGet, "/auth/mfa/status", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_MFAStatus_WithBearer(t *testing.T) {
	t.Parallel()

	h, st, lc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	user := seedRouterUser(t, "Abcdef1!")

	// Получаем access-токен через логин.
	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	lc.EXPECT().IsLocked(gomock.Any(), user.ID).Return(false, time.Duration(0), nil)
	lc.EXPECT().RecordSuccess(gomock.Any(), user.ID).Return(nil)
	st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	w := doJSON(t, h, http.MethodPost, "/auth/login", map[string]string{
		"email":    user.Email,
		"password": "Abcdef1!",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, w, &login)

	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)

	r := httptest.NewRequest(http.MethodGet, "/auth/mfa/status", nil)
	r.Header.Set("Authorization", "Bearer "+login.AccessToken)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var status struct {
		Enabled bool `json:"enabled"`
		Pending bool `json:"pending"`
	}
	decodeBody(t, w, &status)
	require.False(t, status.Enabled)
	require.False(t, status.Pending)
}

// deniedLimiter всегда отказывает.
type deniedLimiter struct{}

func (deniedLimiter) Allow(context.Context, string) (bool, error) { return false, nil }
func (deniedLimiter) Close() error                                { return nil }

func TestRouter_Register_RateLimited(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	lc := mocks.NewMockCounter(ctrl)

	cipher, err := security.NewCipher("")
	require.NoError(t, err)

	svc := service.New(st, lc, events.NewNop(), cipher, routerCfg(), config.MFAConfig{TOTPIssuer: "auth-core"})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewRouter(svc, Options{Logger: logger, Limiter: deniedLimiter{}})

	w := doJSON(t, h, http.MethodPost, "/auth/register", map[string]string{
		"tenant_id": uuid.NewString(),
		"email":     "new@example.com",
		"password":  "Abcdef1!",
	}, nil)

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// Логин лимитом не накрыт.
	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)

	w = doJSON(t, h, http.MethodPost, "/auth/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "Abcdef1!",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RequestID_OnResponse(t *testing.T) {
	t.Parallel()

	h, _, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{broken"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	rid := w.Header().Get("X-Request-Id")
	require.NotEmpty(t, rid)
	// request_id попадает и в тело ошибки.
	require.Contains(t, w.Body.String(), rid)
}
