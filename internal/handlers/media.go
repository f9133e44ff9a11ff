package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chefinho_back_end/internal/services"
)

// UploadMedia recebe o multipart e grava no blob store. Token-gated pela
// rota; o campo kind separa image/video no prefixo da key.
func UploadMedia(c *gin.Context) {
	kind := c.PostForm("kind")
	if kind == "" {
		kind = "image"
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo não enviado"})
		return
	}

	key, err := services.UploadMedia(c.Request.Context(), kind, fileHeader)
	if err != nil {
		log.Println("❌ Erro no upload de mídia:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao enviar arquivo", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"key":     key,
		"url":     "/media/" + key,
	})
}

// ServeMedia streama o objeto com o content-type gravado e cache imutável de
// um ano (as keys carregam timestamp, nunca são reescritas).
func ServeMedia(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	body, contentType, size, err := services.FetchMedia(c.Request.Context(), key)
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	defer body.Close()

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.DataFromReader(http.StatusOK, size, contentType, body, nil)
}
