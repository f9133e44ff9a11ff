package handlers_test

import (
	"net/http"
	"testing"

	"chefinho_back_end/internal/models"
)

func seedStorefront(t *testing.T) {
	seedCatalog(t, []models.Product{
		{ID: "p1", Name: "Sword of Fire", Category: "itens", RLPrice: 50, IsActive: true},
		{ID: "p2", Name: "Shield", Category: "itens", RLPrice: 30, IsActive: true},
		{ID: "p3", Name: "fire staff", Category: "mage", RLPrice: 80, IsActive: true},
		{ID: "p4", Name: "Sword of Ice", Category: "itens", RLPrice: 60, IsActive: false},
	})
}

func TestStorefrontProductsFilterByNameAndCategory(t *testing.T) {
	setupRedis(t)
	seedStorefront(t)
	r := newRouter(t)

	// "fire" bate em Sword of Fire e fire staff, ignorando caixa; o inativo fica fora.
	w := doJSON(t, r, http.MethodGet, "/api/storefront/products?search=FIRE", nil, nil)
	var page struct {
		Items []models.Product `json:"items"`
		Total int              `json:"total"`
	}
	decodeBody(t, w, &page)
	if page.Total != 2 {
		t.Fatalf("search=FIRE: total = %d, esperado 2", page.Total)
	}

	// Categoria é comparação exata, não substring.
	w = doJSON(t, r, http.MethodGet, "/api/storefront/products?category=itens&search=fire", nil, nil)
	decodeBody(t, w, &page)
	if page.Total != 1 || page.Items[0].ID != "p1" {
		t.Fatalf("category+search: itens = %+v", page.Items)
	}

	w = doJSON(t, r, http.MethodGet, "/api/storefront/products?category=ite", nil, nil)
	decodeBody(t, w, &page)
	if page.Total != 0 {
		t.Fatalf("categoria parcial não deveria casar, total = %d", page.Total)
	}
}

func TestStorefrontProductsPagination(t *testing.T) {
	setupRedis(t)
	products := make([]models.Product, 0, 15)
	for i := 0; i < 15; i++ {
		products = append(products, models.Product{
			ID:       string(rune('a' + i)),
			Name:     "Produto",
			Category: "geral",
			RLPrice:  10,
			IsActive: true,
		})
	}
	seedCatalog(t, products)
	r := newRouter(t)

	var page struct {
		Items      []models.Product `json:"items"`
		Total      int              `json:"total"`
		Page       int              `json:"page"`
		TotalPages int              `json:"total_pages"`
	}

	w := doJSON(t, r, http.MethodGet, "/api/storefront/products", nil, nil)
	decodeBody(t, w, &page)
	if len(page.Items) != 12 || page.Total != 15 || page.TotalPages != 2 {
		t.Fatalf("página 1: items=%d total=%d pages=%d", len(page.Items), page.Total, page.TotalPages)
	}

	w = doJSON(t, r, http.MethodGet, "/api/storefront/products?page=2", nil, nil)
	decodeBody(t, w, &page)
	if len(page.Items) != 3 || page.Page != 2 {
		t.Fatalf("página 2: items=%d page=%d", len(page.Items), page.Page)
	}

	// Página além do fim volta vazia, nunca erro.
	w = doJSON(t, r, http.MethodGet, "/api/storefront/products?page=9", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("página 9: status = %d", w.Code)
	}
	decodeBody(t, w, &page)
	if len(page.Items) != 0 {
		t.Fatalf("página 9: esperado vazio, vieram %d", len(page.Items))
	}
}

func TestStorefrontProductDetailAndRelated(t *testing.T) {
	setupRedis(t)
	seedStorefront(t)
	r := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/storefront/products/p1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("detalhe: status = %d", w.Code)
	}
	var detail struct {
		Product models.Product   `json:"product"`
		Related []models.Product `json:"related"`
	}
	decodeBody(t, w, &detail)
	if detail.Product.ID != "p1" {
		t.Fatalf("product.id = %q", detail.Product.ID)
	}
	if len(detail.Related) != 1 || detail.Related[0].ID != "p2" {
		t.Fatalf("related = %+v, esperado só p2", detail.Related)
	}

	// Inativo some do detalhe também.
	w = doJSON(t, r, http.MethodGet, "/api/storefront/products/p4", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("produto inativo: status = %d, esperado 404", w.Code)
	}
}

func TestStorefrontCatalogOnlyActiveProducts(t *testing.T) {
	setupRedis(t)
	seedStorefront(t)
	r := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/storefront/catalog", nil, nil)
	var catalog models.Catalog
	decodeBody(t, w, &catalog)
	for _, p := range catalog.Products {
		if !p.IsActive {
			t.Fatalf("produto inativo vazou no catálogo: %q", p.ID)
		}
	}
	if len(catalog.Products) != 3 {
		t.Fatalf("produtos ativos = %d, esperado 3", len(catalog.Products))
	}
}
