package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chefinho_back_end/internal/cache"
	"chefinho_back_end/internal/models"
)

// GetProducts devolve o catálogo inteiro do KV store. Store vazio ou fora do
// ar não derruba a página: volta o documento padrão.
func GetProducts(c *gin.Context) {
	data, err := cache.GetCatalogRaw()
	if err != nil {
		if err != cache.ErrEmpty {
			log.Println("⚠️ Erro ao ler catálogo do store:", err)
		}
		c.JSON(http.StatusOK, models.DefaultCatalog())
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}

// UpdateProducts substitui o documento inteiro do catálogo (uma escrita só)
// e carimba o updated_at. Corpo sem array de products é rejeitado sem tocar
// no store.
func UpdateProducts(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	products, ok := body["products"].([]any)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	body["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor", "details": err.Error()})
		return
	}

	if err := cache.SetCatalogRaw(data); err != nil {
		log.Println("❌ Erro ao atualizar produtos:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor", "details": err.Error()})
		return
	}

	log.Printf("Produtos atualizados com sucesso. Total: %d produtos", len(products))

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Produtos atualizados com sucesso",
		"count":      len(products),
		"updated_at": body["updated_at"],
	})
}

// GetNews devolve o blob de notícias, ou a lista vazia.
func GetNews(c *gin.Context) {
	data, err := cache.GetNewsRaw()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"items": []any{}})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// UpdateNews grava o blob de notícias como veio.
func UpdateNews(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	data, err := json.Marshal(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}

	if err := cache.SetNewsRaw(data); err != nil {
		log.Println("❌ Erro ao atualizar notícias:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
