package handlers

import (
	"net/http"

	"github.com/savelyeva-d/auth-core/internal/service"
	"github.com/savelyeva-d/auth-core/internal/transport/http/httperr"
	"github.com/savelyeva-d/auth-core/internal/transport/http/middleware"
)

type mfaChallengeRequest struct {
	MFAToken string `json:"mfa_token"`
	Code     string `json:"code"`
}

type mfaCodeRequest struct {
	Code string `json:"code"`
}

type enrollResponse struct {
	Secret          string `json:"secret"`
	ProvisioningURI string `json:"provisioning_uri"`
}

type backupCodesResponse struct {
	BackupCodes []string `json:"backup_codes"`
}

type mfaStatusResponse struct {
	Enabled           bool `json:"enabled"`
	Pending           bool `json:"pending"`
	UnusedBackupCodes int  `json:"unused_backup_codes"`
}

// MFAChallenge завершает вход вторым фактором; bearer здесь не нужен —
// авторизацией служит токен челленджа из тела запроса.
func (h *Handlers) MFAChallenge(w http.ResponseWriter, r *http.Request) {
	var in mfaChallengeRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrInvalidArgument)
		return
	}

	pair, userID, err := h.svc.MFAChallenge(r.Context(), in.MFAToken, in.Code)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTokenPairResponse(pair, userID))
}

func (h *Handlers) MFAEnroll(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		httperr.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	enrollment, err := h.svc.BeginEnrollment(r.Context(), identity.UserID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, enrollResponse{
		Secret:          enrollment.Secret,
		ProvisioningURI: enrollment.ProvisioningURI,
	})
}

func (h *Handlers) MFAConfirm(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		httperr.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in mfaCodeRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrInvalidArgument)
		return
	}

	codes, err := h.svc.ConfirmEnrollment(r.Context(), identity.UserID, in.Code)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, backupCodesResponse{BackupCodes: codes})
}

func (h *Handlers) MFADisable(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		httperr.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in mfaCodeRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrInvalidArgument)
		return
	}

	if err := h.svc.Disable(r.Context(), identity.UserID, in.Code); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) MFABackupCodes(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		httperr.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in mfaCodeRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrInvalidArgument)
		return
	}

	codes, err := h.svc.RegenerateBackupCodes(r.Context(), identity.UserID, in.Code)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, backupCodesResponse{BackupCodes: codes})
}

func (h *Handlers) MFAStatus(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		httperr.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	status, err := h.svc.Status(r.Context(), identity.UserID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mfaStatusResponse{
		Enabled:           status.Enabled,
		Pending:           status.Pending,
		UnusedBackupCodes: status.UnusedBackupCodes,
	})
}
