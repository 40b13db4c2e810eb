package middleware

import (
	"context"
	"strings"

	"panganjawara/internal/pkg/redis"
	"panganjawara/internal/pkg/response"
	"panganjawara/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware memverifikasi JWT admin dan menyuntikkan identitasnya
// ke context. Token yang sudah di-logout ditolak lewat blacklist redis.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "token hilang atau format salah")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "token hilang atau format salah")
			c.Abort()
			return
		}

		value, err := redis.GetValue(c.Request.Context(), signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, "kesalahan tak terduga")
			c.Abort()
			return
		}
		if value != "" {
			response.Fail(c, response.Unauthorized, "token tidak valid atau kedaluwarsa")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "token tidak valid atau kedaluwarsa")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
