package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects requests whose token role is not in the allow list.
// Each order operation is owned by one role class: waiters edit carts and
// orders, kitchen/bar decide items, cashiers settle, admins reopen.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "this action is not available to your role"})
		c.Abort()
	}
}
