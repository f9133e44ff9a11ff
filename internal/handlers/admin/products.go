package admin

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"chefinho_back_end/internal/services"
)

// Ordenação do painel: rank manual primeiro (nulls por último), depois os
// mais recentes.
const adminListOrder = "select=*&order=display_order.asc.nullslast&order=created_at.desc"

// Products repassa o CRUD de produtos para o Supabase com a service role key,
// espelhando o status da resposta. Um request, uma chamada — sem retry.
func Products(c *gin.Context) {
	if !services.Supabase.Ready() {
		log.Println("❌ Credenciais Supabase não configuradas")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Credenciais Supabase não configuradas"})
		return
	}

	switch c.Request.Method {
	case http.MethodGet:
		listProducts(c)
	case http.MethodPost:
		createProduct(c)
	case http.MethodPatch:
		updateProduct(c)
	case http.MethodDelete:
		deleteProduct(c)
	default:
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	}
}

// GET — lista tudo, inclusive inativos.
func listProducts(c *gin.Context) {
	resp, err := services.Supabase.Rest(c.Request.Context(), http.MethodGet, "products", adminListOrder, nil, true)
	if err != nil {
		supabaseError(c, err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		supabaseError(c, err)
		return
	}
	if resp.StatusCode >= 300 {
		downstreamError(c, resp.StatusCode, body)
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

// POST — cria o produto e devolve a linha criada.
func createProduct(c *gin.Context) {
	var productData map[string]any
	if err := c.ShouldBindJSON(&productData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := services.Supabase.Rest(c.Request.Context(), http.MethodPost, "products", "select=*", []map[string]any{productData}, true)
	if err != nil {
		supabaseError(c, err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		supabaseError(c, err)
		return
	}
	if resp.StatusCode >= 300 {
		downstreamError(c, resp.StatusCode, body)
		return
	}

	row, _ := singleRow(body)
	c.Data(http.StatusCreated, "application/json", row)
}

// PATCH — atualiza pelo id vindo no corpo.
func updateProduct(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, ok := payload["id"].(string)
	if !ok || id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID obrigatório"})
		return
	}
	delete(payload, "id")

	resp, err := services.Supabase.Rest(c.Request.Context(), http.MethodPatch, "products", "id=eq."+url.QueryEscape(id)+"&select=*", payload, true)
	if err != nil {
		supabaseError(c, err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		supabaseError(c, err)
		return
	}
	if resp.StatusCode >= 300 {
		downstreamError(c, resp.StatusCode, body)
		return
	}

	row, ok := singleRow(body)
	if !ok {
		// Nenhuma linha casou com o id: o produto já não existe.
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}
	c.Data(http.StatusOK, "application/json", row)
}

// DELETE — hard delete pelo id vindo no corpo.
func deleteProduct(c *gin.Context) {
	var payload struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID obrigatório"})
		return
	}

	resp, err := services.Supabase.Rest(c.Request.Context(), http.MethodDelete, "products", "id=eq."+url.QueryEscape(payload.ID), nil, true)
	if err != nil {
		supabaseError(c, err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		supabaseError(c, err)
		return
	}
	if resp.StatusCode >= 300 {
		downstreamError(c, resp.StatusCode, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Produto removido"})
}

// singleRow reduz a resposta em array do PostgREST para o objeto único que o
// painel espera. ok indica se veio pelo menos uma linha.
func singleRow(body []byte) ([]byte, bool) {
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return body, true
	}
	if len(rows) == 0 {
		return body, false
	}
	return rows[0], true
}

func supabaseError(c *gin.Context, err error) {
	log.Println("❌ Erro no CRUD de produtos:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
}

func downstreamError(c *gin.Context, status int, body []byte) {
	log.Printf("❌ Supabase respondeu %d: %s", status, body)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": string(body)})
}
