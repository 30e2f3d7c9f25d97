package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/typespeed-backend/internal/service/recovery"
)

type recoveryService interface {
	RequestReset(ctx context.Context, email string) error
	RedeemReset(ctx context.Context, input recovery.RedeemResetInput) error
}

// RecoveryHandler serves the forgot/reset password endpoints.
type RecoveryHandler struct {
	svc recoveryService
	log *slog.Logger
}

// NewRecoveryHandler creates a RecoveryHandler.
func NewRecoveryHandler(svc recoveryService, logger *slog.Logger) *RecoveryHandler {
	return &RecoveryHandler{svc: svc, log: logger.With("handler", "recovery")}
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ForgotPassword handles POST /api/users/forgot-password.
func (h *RecoveryHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err, "")
		return
	}

	if err := h.svc.RequestReset(r.Context(), req.Email); err != nil {
		respondError(w, r, h.log, err, "No user found with this email address")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Password reset email sent successfully!"})
}

// ResetPassword handles POST /api/users/reset-password/{token}.
func (h *RecoveryHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err, "")
		return
	}

	err := h.svc.RedeemReset(r.Context(), recovery.RedeemResetInput{
		Token:           r.PathValue("token"),
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Invalid or expired token")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Password updated successfully!"})
}
