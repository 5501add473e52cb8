package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/models"
	"github.com/Lukas18007/dyschool/internal/session"
)

const (
	ContextUserID    = "userID"
	ContextUserType  = "userType"
	ContextSessionID = "sessionID"
)

var errAuthRequired = httperr.BusinessError{
	Kind:     httperr.KindUnauthorized,
	Code:     "authentication_required",
	Message:  "Please sign in to continue.",
	Redirect: "/sign-in/",
}

// tokenFrom reads a Bearer token first, then the session cookie.
func tokenFrom(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		return cookie
	}
	return ""
}

func authenticate(c *gin.Context, sessions *session.Manager) (bool, error) {
	token := tokenFrom(c)
	if token == "" {
		return false, nil
	}

	s, err := sessions.Parse(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrInvalidToken) {
			return false, nil
		}
		return false, err
	}

	c.Set(ContextUserID, s.UserID)
	c.Set(ContextUserType, s.UserType)
	c.Set(ContextSessionID, s.ID)
	return true, nil
}

func AuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := authenticate(c, sessions)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		if !ok {
			httperr.Respond(c, errAuthRequired)
			return
		}
		c.Next()
	}
}

// OptionalAuth identifies the caller when it can and never rejects.
func OptionalAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _ = authenticate(c, sessions)
		c.Next()
	}
}

func RequireStudent(message string) gin.HandlerFunc {
	return requireUserType(models.UserTypeStudent, message)
}

func RequireTeacher(message string) gin.HandlerFunc {
	return requireUserType(models.UserTypeTeacher, message)
}

func requireUserType(userType, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserType) != userType {
			httperr.Respond(c, httperr.Forbidden("wrong_user_type", message, "/"))
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user, if any.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
