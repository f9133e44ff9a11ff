package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireBearer compara o bearer token com o segredo estático guardado na
// variável de ambiente indicada. Igualdade simples, sem hash nem expiração —
// cada superfície de admin tem o seu segredo próprio.
func RequireBearer(envVar string) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv(envVar)
		if secret == "" {
			log.Printf("❌ %s não configurado", envVar)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de autorização necessário"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != secret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de autorização inválido"})
			c.Abort()
			return
		}

		c.Next()
	}
}
