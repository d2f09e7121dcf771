// Package httperrors renders terminal error pages. Validation and
// authentication failures never land here; handlers recover those with a
// flash message and a redirect or re-render. Only not-found, forbidden, and
// infrastructure failures produce one of these responses.
package httperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errorTemplate = "error.html"

// respond renders the shared error template with the given status.
func respond(c *gin.Context, statusCode int, message string) {
	c.HTML(statusCode, errorTemplate, gin.H{
		"Status":  statusCode,
		"Message": message,
	})
	c.Abort()
}

// NotFound sends a 404 page.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Page not found"
	}
	respond(c, http.StatusNotFound, message)
}

// Forbidden sends a 403 page.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	respond(c, http.StatusForbidden, message)
}

// BadRequest sends a 400 page.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	respond(c, http.StatusBadRequest, message)
}

// InternalError sends a 500 page.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	respond(c, http.StatusInternalServerError, message)
}
