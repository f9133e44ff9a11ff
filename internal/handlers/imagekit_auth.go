package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"chefinho_back_end/internal/services"
)

// ImageKitAuth emite as credenciais temporárias de upload. O arquivo sobe
// direto do browser para o CDN; aqui só sai o triple token/expire/signature.
func ImageKitAuth(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	privateKey := os.Getenv("IMAGEKIT_PRIVATE_KEY")
	if privateKey == "" {
		log.Println("❌ IMAGEKIT_PRIVATE_KEY não configurado")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
		return
	}

	creds := services.NewUploadCredentials(privateKey, os.Getenv("IMAGEKIT_PUBLIC_KEY"))
	c.JSON(http.StatusOK, creds)
}
