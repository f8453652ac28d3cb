package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/usecase"
)

const (
	// CurrentUserKey is the context key for the authenticated user.
	CurrentUserKey = "current_user"
	// SessionTokenKey is the context key for the raw session token.
	SessionTokenKey = "session_token"
)

// ErrorResponse matches the handlers.ErrorResponse structure
type ErrorResponse struct {
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// newErrorResponse creates an error response with trace ID
func newErrorResponse(c *gin.Context, message string) ErrorResponse {
	return ErrorResponse{
		Message: message,
		TraceID: GetTraceID(c),
	}
}

// ExtractSessionToken reads the session token from the request cookie, falling
// back to a Bearer Authorization header for non-browser clients.
func ExtractSessionToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil {
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// RequireSession resolves the session cookie and loads the owning user into
// the request context. Requests without a live session are rejected with 401.
func RequireSession(auth *usecase.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractSessionToken(c, cookieName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				newErrorResponse(c, "authentication required"))
			return
		}

		user, err := auth.Identify(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrSessionExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					newErrorResponse(c, "session expired"))
			case errors.Is(err, usecase.ErrSessionNotFound):
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					newErrorResponse(c, "authentication required"))
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					newErrorResponse(c, "authentication failed"))
			}
			return
		}

		c.Set(CurrentUserKey, user)
		c.Set(SessionTokenKey, token)

		if reqCtx := GetRequestContext(c); reqCtx != nil {
			reqCtx.UserID = user.ID
		}

		c.Next()
	}
}

// OptionalSession loads the user for a valid session but lets anonymous
// requests through. Handlers that vary output by role use it on public routes.
func OptionalSession(auth *usecase.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractSessionToken(c, cookieName)
		if token != "" {
			if user, err := auth.Identify(c.Request.Context(), token); err == nil {
				c.Set(CurrentUserKey, user)
				c.Set(SessionTokenKey, token)
				if reqCtx := GetRequestContext(c); reqCtx != nil {
					reqCtx.UserID = user.ID
				}
			}
		}

		c.Next()
	}
}

// RequireAdmin rejects authenticated non-administrators with 403. A missing
// session is still a 401, so the middleware must run after RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				newErrorResponse(c, "authentication required"))
			return
		}

		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				newErrorResponse(c, "administrator access required"))
			return
		}

		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from context (helper for handlers)
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	raw, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}

	user, ok := raw.(*domain.User)
	if !ok || user == nil {
		return nil, false
	}

	return user, true
}

// SessionToken retrieves the raw session token for the current request.
func SessionToken(c *gin.Context) string {
	raw, exists := c.Get(SessionTokenKey)
	if !exists {
		return ""
	}

	token, _ := raw.(string)
	return token
}
