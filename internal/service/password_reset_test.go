package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/savelyeva-d/auth-core/internal/config"
	"github.com/savelyeva-d/auth-core/internal/events"
	"github.com/savelyeva-d/auth-core/internal/models"
	"github.com/savelyeva-d/auth-core/internal/security"
	"github.com/savelyeva-d/auth-core/internal/storage"
	"github.com/savelyeva-d/auth-core/mocks"
)

func TestForgotPassword_OK_EmitsResetToken(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	lc := mocks.NewMockCounter(ctrl)
	pub := mocks.NewMockPublisher(ctrl)

	cipher, err := security.NewCipher("")
	require.NoError(t, err)

	svc := New(st, lc, pub, cipher, testCfg(), config.MFAConfig{TOTPIssuer: "auth-core"})

	user := activeUser(t, "Abcdef1!")

	var storedHash string
	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	st.EXPECT().CreateSingleUseToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tok *models.SingleUseToken) error {
			require.Equal(t, models.TokenKindPasswordReset, tok.Kind)
			require.Equal(t, user.ID, tok.UserID)
			storedHash = tok.TokenHash
			return nil
		})
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e events.Event) {
			require.Equal(t, events.TypePasswordResetRequested, e.Type)
			require.Equal(t, user.ID, e.UserID)

			// В событие уходит сам токен, в БД — только его хэш.
			token := e.Data["reset_token"]
			require.NotEmpty(t, token)
			require.Equal(t, security.HashToken(token), storedHash)
		})

	require.NoError(t, svc.ForgotPassword(context.Background(), user.Email))
}

func TestForgotPassword_UnknownEmail_GenericSuccess(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)

	// Отсутствие адреса неотличимо от успеха: токен не создаётся.
	require.NoError(t, svc.ForgotPassword(context.Background(), "ghost@example.com"))
}

func TestForgotPassword_MalformedEmail_GenericSuccess(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	require.NoError(t, svc.ForgotPassword(context.Background(), "not-an-email"))
}

func TestResetPassword_OK(t *testing.T) {
	t.Parallel()

	svc, st, lc, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()

	st.EXPECT().ConsumeSingleUseToken(gomock.Any(),
		security.HashToken("reset-token"), models.TokenKindPasswordReset, gomock.Any()).
		Return(userID, nil)
	st.EXPECT().UpdatePassword(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			require.True(t, security.CheckPassword(hash, "NewPass1!"))
			return nil
		})
	st.EXPECT().RevokeAllByUser(gomock.Any(), userID).Return(nil)
	lc.EXPECT().RecordSuccess(gomock.Any(), userID).Return(nil)

	require.NoError(t, svc.ResetPassword(context.Background(), "reset-token", "NewPass1!"))
}

func TestResetPassword_InvalidToken(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ConsumeSingleUseToken(gomock.Any(), gomock.Any(), models.TokenKindPasswordReset, gomock.Any()).
		Return(uuid.Nil, storage.ErrNotFound)

	err := svc.ResetPassword(context.Background(), "bad-token", "NewPass1!")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ConsumeSingleUseToken(gomock.Any(), gomock.Any(), models.TokenKindPasswordReset, gomock.Any()).
		Return(uuid.Nil, storage.ErrExpired)

	err := svc.ResetPassword(context.Background(), "old-token", "NewPass1!")
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestResetPassword_WeakPassword_BeforeConsume(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Токен не расходуется на заведомо негодном пароле.
	err := svc.ResetPassword(context.Background(), "reset-token", "weak")
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestConfirmEmail_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()

	st.EXPECT().ConsumeSingleUseToken(gomock.Any(),
		security.HashToken("verify-token"), models.TokenKindEmailVerify, gomock.Any()).
		Return(userID, nil)
	st.EXPECT().MarkEmailVerified(gomock.Any(), userID).Return(nil)

	require.NoError(t, svc.ConfirmEmail(context.Background(), "verify-token"))
}

func TestConfirmEmail_InvalidToken(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ConsumeSingleUseToken(gomock.Any(), gomock.Any(), models.TokenKindEmailVerify, gomock.Any()).
		Return(uuid.Nil, storage.ErrNotFound)

	err := svc.ConfirmEmail(context.Background(), "bad-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
