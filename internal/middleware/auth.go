package middleware

import (
	"strings"

	"solo_quiz_backend/internal/config"
	"solo_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the catalog management surface with a bearer
// token issued by the admin login.
func AdminAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseAdminJWT(tokenString, cfg.Admin.JWTSecret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("admin", claims)
		c.Next()
	}
}
