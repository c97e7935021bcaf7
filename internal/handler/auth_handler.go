package handler

import (
	"errors"
	"net/http"
	"strings"

	"ratewave/internal/middleware"
	"ratewave/internal/service"
	"ratewave/internal/utils"
	"ratewave/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SetAuthMode returns a handler for the /auth* selector routes. The auth UI
// is a panel on every page; these routes just record which panel to open and
// bounce back to where the visitor was.
func (h *AuthHandler) SetAuthMode(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middleware.AuthModeCookie, mode, 300, "/", "", false, false)
		redirectBack(c)
	}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	logger.Log.Info("Signup attempt",
		zap.String("username", username),
		zap.String("ip", c.ClientIP()),
	)

	user, token, err := h.authService.Register(username, email, password, confirm)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrPasswordMismatch):
			utils.SetFlash(c, "error", "Please complete all fields and ensure passwords match.")
		case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
			utils.SetFlash(c, "error", "That username or email is already taken.")
		default:
			utils.SetFlash(c, "error", "Something went wrong. Please try again.")
		}
		c.SetCookie(middleware.AuthModeCookie, "signup", 300, "/", "", false, false)
		redirectBack(c)
		return
	}

	h.establishSession(c, token)

	logger.Log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	h.redirectAfterAuth(c)
}

// Login handles POST /login. The identifier field accepts a username or an
// email address.
func (h *AuthHandler) Login(c *gin.Context) {
	identifier := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	logger.Log.Info("Login attempt",
		zap.String("identifier", identifier),
		zap.String("ip", c.ClientIP()),
	)

	user, token, err := h.authService.Login(identifier, password)
	if err != nil {
		utils.SetFlash(c, "error", "Invalid username/email or password.")
		c.SetCookie(middleware.AuthModeCookie, "login", 300, "/", "", false, false)
		redirectBack(c)
		return
	}

	h.establishSession(c, token)

	logger.Log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	h.redirectAfterAuth(c)
}

// Logout clears the session cookie. Idempotent: logging out twice is fine.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) establishSession(c *gin.Context, token string) {
	isProduction := h.authService.IsProduction()

	c.SetSameSite(http.SameSiteLaxMode) // CSRF protection
	c.SetCookie(
		middleware.SessionCookie,
		token,
		7*24*60*60, // maxAge (7 days in seconds)
		"/",
		"",           // domain (empty = current domain)
		isProduction, // secure (HTTPS-only in production)
		true,         // httpOnly
	)
	c.SetCookie(middleware.AuthModeCookie, "", -1, "/", "", false, false)
}

// redirectAfterAuth resumes the path the visitor was originally after, when
// one was recorded, and otherwise lands on the browse page.
func (h *AuthHandler) redirectAfterAuth(c *gin.Context) {
	next, err := c.Cookie(middleware.NextCookie)
	if err == nil && next != "" {
		c.SetCookie(middleware.NextCookie, "", -1, "/", "", false, true)
		if strings.HasPrefix(next, "/") {
			c.Redirect(http.StatusSeeOther, next)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/browse")
}
