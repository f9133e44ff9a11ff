package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chefinho_back_end/internal/cache"
	"chefinho_back_end/internal/models"
)

const defaultPageSize = 12

// StorefrontProducts filtra o catálogo em memória (categoria exata + busca
// por substring no nome, só ativos) e pagina o resultado.
func StorefrontProducts(c *gin.Context) {
	catalog, err := loadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar produtos"})
		return
	}

	category := c.Query("category")
	search := c.Query("search")

	filtered := models.FilterProducts(catalog.Products, category, search)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	items, total, totalPages := paginate(filtered, page, limit)

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total":       total,
		"page":        page,
		"limit":       limit,
		"total_pages": totalPages,
	})
}

// StorefrontProduct devolve um produto ativo e até 4 relacionados da mesma
// categoria.
func StorefrontProduct(c *gin.Context) {
	catalog, err := loadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar produtos"})
		return
	}

	id := c.Param("id")

	var product *models.Product
	for i := range catalog.Products {
		if catalog.Products[i].ID == id && catalog.Products[i].IsActive {
			product = &catalog.Products[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}

	related := []models.Product{}
	for _, p := range catalog.Products {
		if len(related) == 4 {
			break
		}
		if p.IsActive && p.ID != product.ID && p.Category == product.Category {
			related = append(related, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"product": product, "related": related})
}

// StorefrontCatalog devolve o documento do site pronto para renderização:
// só produtos ativos e categorias inferidas das tags desconhecidas.
func StorefrontCatalog(c *gin.Context) {
	catalog, err := loadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar produtos"})
		return
	}

	active := []models.Product{}
	for _, p := range catalog.Products {
		if p.IsActive {
			active = append(active, p)
		}
	}

	catalog.Categories = models.InferCategories(catalog.Categories, active)
	catalog.Products = active

	c.JSON(http.StatusOK, catalog)
}

// loadCatalog lê o documento do KV store; vazio não é erro, cai no padrão.
func loadCatalog() (models.Catalog, error) {
	catalog, err := cache.GetCatalog()
	if err != nil && err != cache.ErrEmpty {
		log.Println("⚠️ Erro ao carregar catálogo:", err)
		return catalog, err
	}
	return catalog, nil
}

func paginate(products []models.Product, page, limit int) ([]models.Product, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	total := len(products)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start >= total {
		return []models.Product{}, total, totalPages
	}
	end := start + limit
	if end > total {
		end = total
	}
	return products[start:end], total, totalPages
}
