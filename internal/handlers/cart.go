package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chefinho_back_end/internal/cache"
	"chefinho_back_end/internal/models"
)

// GetCart devolve as linhas do carrinho com contagem e total.
func GetCart(c *gin.Context) {
	items, err := cache.GetCart(c.Param("cartId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler carrinho"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": models.CartCount(items),
		"total": models.CartTotal(items),
	})
}

// AddToCart coloca um produto do catálogo no carrinho. Produto comum já
// presente só incrementa a quantidade; item com personagem (rucoy-kks) entra
// sempre como linha nova com key própria.
func AddToCart(c *gin.Context) {
	cartID := c.Param("cartId")

	var input struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Character string `json:"character"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	catalog, err := loadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar produtos"})
		return
	}

	var product *models.Product
	for i := range catalog.Products {
		if catalog.Products[i].ID == input.ProductID && catalog.Products[i].IsActive {
			product = &catalog.Products[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}

	items, err := cache.GetCart(cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler carrinho"})
		return
	}

	if input.Character != "" {
		// Linha vinculada a personagem: nunca agrupa, mesmo com id repetido.
		items = append(items, models.CartItem{
			Key:       product.ID + ":" + uuid.NewString(),
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.RLPrice,
			Image:     product.ImageURL,
			Quantity:  input.Quantity,
			Type:      models.CartItemRucoyKKs,
			Character: input.Character,
		})
	} else {
		merged := false
		for i := range items {
			if items[i].ProductID == product.ID && items[i].Type != models.CartItemRucoyKKs {
				items[i].Quantity += input.Quantity
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, models.CartItem{
				Key:       product.ID,
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.RLPrice,
				Image:     product.ImageURL,
				Quantity:  input.Quantity,
				Type:      models.CartItemDigital,
			})
		}
	}

	if err := cache.SaveCart(cartID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar carrinho"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": models.CartCount(items),
		"total": models.CartTotal(items),
	})
}

// UpdateCartItem ajusta a quantidade de uma linha; zero ou menos remove.
func UpdateCartItem(c *gin.Context) {
	cartID := c.Param("cartId")
	key := c.Param("key")

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	items, err := cache.GetCart(cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler carrinho"})
		return
	}

	updated := []models.CartItem{}
	found := false
	for _, item := range items {
		if item.Key == key {
			found = true
			if input.Quantity <= 0 {
				continue
			}
			item.Quantity = input.Quantity
		}
		updated = append(updated, item)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado"})
		return
	}

	if err := cache.SaveCart(cartID, updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar carrinho"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": updated,
		"count": models.CartCount(updated),
		"total": models.CartTotal(updated),
	})
}

// RemoveCartItem tira uma linha do carrinho.
func RemoveCartItem(c *gin.Context) {
	cartID := c.Param("cartId")
	key := c.Param("key")

	items, err := cache.GetCart(cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler carrinho"})
		return
	}

	updated := []models.CartItem{}
	for _, item := range items {
		if item.Key != key {
			updated = append(updated, item)
		}
	}

	if err := cache.SaveCart(cartID, updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar carrinho"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": updated,
		"count": models.CartCount(updated),
		"total": models.CartTotal(updated),
	})
}

// ClearCart esvazia o carrinho de vez.
func ClearCart(c *gin.Context) {
	if err := cache.DeleteCart(c.Param("cartId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao limpar carrinho"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "count": 0, "total": 0})
}
