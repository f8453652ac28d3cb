package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abh6007/job-board-app/internal/usecase"
)

// RecoveryHandler exposes the credential recovery endpoints.
type RecoveryHandler struct {
	recovery *usecase.RecoveryService
}

// NewRecoveryHandler constructs RecoveryHandler.
func NewRecoveryHandler(recovery *usecase.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{recovery: recovery}
}

// GetRecoveryCode godoc
// @Summary Fetch the recovery code
// @Description Returns the single recovery code, generating it on first call. Administrators only.
// @Tags Recovery
// @Produce json
// @Success 200 {object} RecoveryCodeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/recovery-code [get]
func (h *RecoveryHandler) GetRecoveryCode(c *gin.Context) {
	code, err := h.recovery.GetOrCreateCode(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to fetch recovery code"))
		return
	}

	c.JSON(http.StatusOK, RecoveryCodeResponse{
		RecoveryCode: code.Code,
		CreatedAt:    code.CreatedAt,
	})
}

// ResetPassword godoc
// @Summary Reset a password with the recovery code
// @Description Replaces the account password when the recovery code matches. The response does not reveal which input was rejected.
// @Tags Recovery
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/reset-password [post]
func (h *RecoveryHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "username, recoveryCode, and newPassword are required"))
		return
	}

	err := h.recovery.ResetPassword(c.Request.Context(),
		strings.TrimSpace(req.Username), strings.TrimSpace(req.RecoveryCode), req.NewPassword)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrRecoveryFailed, Status: http.StatusBadRequest, Message: "invalid username or recovery code"},
			{Err: usecase.ErrWeakPassword, Status: http.StatusBadRequest, Message: "password does not meet requirements"},
		}, http.StatusInternalServerError, "failed to reset password")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "password reset"})
}
