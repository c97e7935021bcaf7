package middleware

import (
	"net/http"

	"ratewave/internal/models"
	"ratewave/internal/service"
	"ratewave/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie holds the signed session token.
	SessionCookie = "session"
	// NextCookie remembers where an unauthenticated user was headed.
	NextCookie = "next_url"
	// AuthModeCookie tells templates which auth panel to show.
	AuthModeCookie = "auth_mode"

	userKey = "current_user"
)

// LoadUser resolves the session cookie to a fresh user record on every
// request. A missing or invalid cookie simply means an anonymous visitor;
// the request continues either way.
func LoadUser(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateSessionToken(tokenString, authService.SessionSecret())
		if err != nil {
			// Stale or tampered cookie: drop it and carry on anonymous.
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Next()
			return
		}

		user, err := authService.GetUserByID(claims.UserID)
		if err != nil || user == nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireLogin gates mutating routes. Unauthenticated requests are bounced
// to the auth surface with a notice, remembering the original path for the
// post-login redirect.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			utils.SetFlash(c, "error", "Please log in to continue.")
			c.SetCookie(NextCookie, c.Request.URL.Path, 300, "/", "", false, true)
			c.SetCookie(AuthModeCookie, "login", 300, "/", "", false, false)
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
