package middleware

import (
	"solo_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "session_id"

// SessionMiddleware ensures every request carries an opaque session identifier
// in a cookie. The identifier only keys the session store; holding one does
// not imply an active quiz.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(util.SessionCookieName)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(util.SessionCookieName, id, 0, "/", "", false, true)
		}

		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// SessionID returns the identifier set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
