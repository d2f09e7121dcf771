package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/keitamori/miniblog/internal/constants"
	"github.com/keitamori/miniblog/internal/flash"
	"github.com/keitamori/miniblog/internal/httperrors"
	"github.com/keitamori/miniblog/internal/services"
)

// AuthHandler coordinates registration, login, and logout.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// ShowLogin renders the combined login/registration page.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, h.authService, nil))
}

// Login authenticates the caller and establishes a durable session.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.Login(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// One uniform message for unknown email and wrong password.
			flash.Add(c, flash.LevelDanger, "Email or password is incorrect.")
			c.HTML(http.StatusOK, "login.html", pageData(c, h.authService, nil))
			return
		}
		httperrors.InternalError(c, "")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	session.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
	})
	if err := session.Save(); err != nil {
		httperrors.InternalError(c, "Failed to save session")
		return
	}

	flash.Add(c, flash.LevelSuccess, "Logged in.")
	c.Redirect(http.StatusFound, "/")
}

// Register creates a new account. Duplicate username is reported before
// duplicate email; either way the caller lands back on the login page with a
// flash and no new row.
func (h *AuthHandler) Register(c *gin.Context) {
	_, err := h.authService.Register(services.RegisterInput{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			flash.Add(c, flash.LevelDanger, "This username is already in use.")
		case errors.Is(err, services.ErrEmailTaken):
			flash.Add(c, flash.LevelDanger, "This email address is already in use.")
		case errors.Is(err, services.ErrDuplicateUser):
			// Lost the check-then-insert race; the unique index caught it.
			flash.Add(c, flash.LevelDanger, "This username or email address is already in use.")
		default:
			httperrors.InternalError(c, "")
			return
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	flash.Add(c, flash.LevelSuccess, "Registration complete. Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// Logout clears the session unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		httperrors.InternalError(c, "Failed to log out")
		return
	}

	flash.Add(c, flash.LevelInfo, "Logged out.")
	c.Redirect(http.StatusFound, "/")
}
