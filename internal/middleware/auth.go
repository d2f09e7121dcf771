package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/keitamori/miniblog/internal/constants"
	"github.com/keitamori/miniblog/internal/flash"
)

// RequireAuth checks if the user is authenticated via session. Anonymous
// callers are sent to the login page with a flash instead of a bare 401,
// since every consumer of these routes is a browser.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			flash.Add(c, flash.LevelInfo, "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// RedirectIfAuthenticated keeps the login and registration endpoints
// unreachable for callers who already have an identity.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(constants.ContextKeyUserID) != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// SessionUserID reads the identity straight from the session, for routes that
// are open to anonymous callers but render differently when logged in.
func SessionUserID(c *gin.Context) (uint64, bool) {
	session := sessions.Default(c)
	userID := session.Get(constants.ContextKeyUserID)
	if userID == nil {
		return 0, false
	}
	if v, ok := userID.(uint64); ok {
		return v, true
	}
	return 0, false
}
