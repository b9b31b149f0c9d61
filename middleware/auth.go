package middleware

import (
	"net/http"

	"github.com/ChristelOko/BarometreHED-sub001/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware : authentification JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentification requise"})
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentification invalide"})
			return
		}

		// L'uid suit la requête dans le gin.Context
		c.Set("uid", claims.UserID)
		c.Next()
	}
}
