package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abh6007/job-board-app/internal/transport/http/middleware"
	"github.com/abh6007/job-board-app/internal/usecase"
)

// SessionCookie describes how the session cookie is written to responses.
type SessionCookie struct {
	Name   string
	Domain string
	Secure bool
	MaxAge time.Duration
}

// AuthHandler exposes login, logout, and account endpoints backed by cookie
// sessions.
type AuthHandler struct {
	auth     *usecase.AuthService
	sessions *usecase.SessionService
	cookie   SessionCookie
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *usecase.AuthService, sessions *usecase.SessionService, cookie SessionCookie) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "jb_session"
	}
	if cookie.MaxAge <= 0 && sessions != nil {
		cookie.MaxAge = sessions.TTL()
	}

	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		cookie:   cookie,
	}
}

// CookieName reports the configured session cookie name.
func (h *AuthHandler) CookieName() string {
	return h.cookie.Name
}

// Login godoc
// @Summary Authenticate with username and password
// @Description Verifies credentials and opens a session delivered as an HTTP-only cookie.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "username and password are required"))
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrInvalidCredentials, Status: http.StatusUnauthorized, Message: "invalid username or password"},
		}, http.StatusInternalServerError, "authentication failed")
		return
	}

	h.writeSessionCookie(c, token, int(h.cookie.MaxAge.Seconds()))

	c.JSON(http.StatusOK, newUserResponse(*user))
}

// Logout godoc
// @Summary End the current session
// @Description Destroys the session referenced by the cookie and clears it. Safe to repeat.
// @Tags Authentication
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractSessionToken(c, h.cookie.Name)
	if token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to end session"))
			return
		}
	}

	h.writeSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

// CurrentUser godoc
// @Summary Fetch the authenticated account
// @Tags Authentication
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/user [get]
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse(c, "authentication required"))
		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Description Verifies the current password before storing the new one.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Password change request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse(c, "authentication required"))
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "newPassword is required"))
		return
	}

	err := h.auth.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		RespondWithMappedError(c, err, []ErrorCase{
			{Err: usecase.ErrWeakPassword, Status: http.StatusBadRequest, Message: "password does not meet requirements"},
			{Err: usecase.ErrPasswordMismatch, Status: http.StatusBadRequest, Message: "current password is incorrect"},
			{Err: usecase.ErrUserNotFound, Status: http.StatusNotFound, Message: "account not found"},
		}, http.StatusInternalServerError, "failed to change password")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "password changed"})
}

func (h *AuthHandler) writeSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}
