package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/keitamori/miniblog/internal/flash"
	"github.com/keitamori/miniblog/internal/middleware"
	"github.com/keitamori/miniblog/internal/models"
	"github.com/keitamori/miniblog/internal/services"
)

// pageData builds the base template context: the drained flash queue plus the
// current user, if any. Draining here is what gives flash messages their
// shown-exactly-once semantics.
func pageData(c *gin.Context, authService *services.AuthService, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = flash.Take(c)
	data["CurrentUser"] = currentUser(c, authService)
	return data
}

// currentUser resolves the session identity to a User, or nil for anonymous
// callers and stale sessions.
func currentUser(c *gin.Context, authService *services.AuthService) *models.User {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		userID, ok = middleware.SessionUserID(c)
		if !ok {
			return nil
		}
	}

	user, err := authService.GetUser(userID)
	if err != nil {
		return nil
	}
	return user
}
