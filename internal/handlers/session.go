package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uca-prep/registration-service/internal/models"
)

const (
	sessionCookieName   = "user_session"
	sessionCookieMaxAge = 7 * 24 * 60 * 60 // one week
)

// WriteSession stores a JSON snapshot of the user as the session cookie.
// The snapshot is not signed and is not refreshed when an admin edits the
// record; it reflects the row as of login or registration.
func WriteSession(c *gin.Context, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, string(payload), sessionCookieMaxAge, "/", "", false, true)
	return nil
}

// ReadSession decodes the session cookie. A missing or undecodable cookie
// yields nil, never an error: an unreadable session is an absent session.
func ReadSession(c *gin.Context) *models.User {
	raw, err := c.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// ClearSession expires the session cookie.
func ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

// SessionMiddleware requires a decodable session cookie and puts the user
// snapshot into the context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := ReadSession(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Success: false,
				Error:   "Not logged in",
			})
			c.Abort()
			return
		}

		c.Set("session_user", user)
		c.Next()
	}
}

// OptionalSessionMiddleware puts the session user into the context when
// present. Used on the admin surface, where an absent session simply
// resolves to a non-admin caller.
func OptionalSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := ReadSession(c); user != nil {
			c.Set("session_user", user)
		}
		c.Next()
	}
}

// SessionUserFromContext returns the session snapshot, or nil when the
// request carries no session.
func SessionUserFromContext(c *gin.Context) *models.User {
	value, exists := c.Get("session_user")
	if !exists {
		return nil
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
