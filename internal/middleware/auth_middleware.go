// auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"garments-order-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Middleware que valida el token y deja el email autenticado en el contexto
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		user, err := authService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			c.Abort()
			return
		}

		c.Set("userEmail", user.Email)
		c.Next()
	}
}
