package admin

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"chefinho_back_end/internal/utils"
)

const adminUsername = "admin"

// Login valida usuário/senha do painel e emite o token de sessão (24h).
// A senha é o segredo compartilhado AUTH_PASSWORD, comparado por igualdade.
func Login(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "JSON inválido"})
		return
	}

	if body.Username == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username e password são obrigatórios"})
		return
	}

	validPassword := os.Getenv("AUTH_PASSWORD")
	if validPassword == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "AUTH_PASSWORD não configurado"})
		return
	}

	if body.Username != adminUsername || body.Password != validPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Credenciais inválidas"})
		return
	}

	token, expires, err := utils.GenerateAdminJWT(body.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro interno do servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"message": "Login realizado com sucesso",
		"expires": expires,
	})
}

// ValidateToken confere o token de sessão vindo no header Bearer ou no corpo.
func ValidateToken(c *gin.Context) {
	token := ""
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		token = strings.TrimPrefix(authHeader, "Bearer ")
	} else {
		var body struct {
			Token string `json:"token"`
		}
		_ = c.ShouldBindJSON(&body)
		token = body.Token
	}

	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Token não fornecido"})
		return
	}

	username, remaining, err := utils.ParseAdminJWT(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Token inválido ou expirado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":     true,
		"username":  username,
		"expiresIn": remaining.Milliseconds(),
	})
}
