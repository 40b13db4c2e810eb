package middleware

import (
	"panganjawara/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckRoles meloloskan request bila peran user termasuk salah satu
// peran yang diminta.
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		hasPermission := false
		for _, required := range requiredRoles {
			if role == required {
				hasPermission = true
				break
			}
		}

		if !hasPermission {
			response.Fail(c, response.Forbidden, "tidak berwenang mengakses sumber daya ini")
			c.Abort()
			return
		}

		c.Next()
	}
}
