package models

import "testing"

func TestFilterProducts(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "Sword of Fire", Category: "weapons", IsActive: true},
		{ID: "p2", Name: "Shield", Category: "weapons", IsActive: true},
		{ID: "p3", Name: "Fire Staff", Category: "mage", IsActive: true},
		{ID: "p4", Name: "Sword of Ice", Category: "weapons", IsActive: false},
	}

	cases := []struct {
		name     string
		category string
		search   string
		wantIDs  []string
	}{
		{"sem filtro só ativos", "", "", []string{"p1", "p2", "p3"}},
		{"categoria + busca", "weapons", "fire", []string{"p1"}},
		{"busca ignora caixa", "", "FIRE", []string{"p1", "p3"}},
		{"categoria é exata", "weap", "", nil},
		{"categoria sozinha", "mage", "", []string{"p3"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterProducts(products, tc.category, tc.search)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("vieram %d produtos, esperados %d: %+v", len(got), len(tc.wantIDs), got)
			}
			for i, want := range tc.wantIDs {
				if got[i].ID != want {
					t.Errorf("posição %d: id = %q, esperado %q", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestInferCategories(t *testing.T) {
	configured := []Category{{ID: "freefire", Name: "Free Fire"}}
	products := []Product{
		{ID: "p1", Category: "freefire", IsActive: true},
		{ID: "p2", Category: "valorant", IsActive: true},
		{ID: "p3", Category: "valorant", IsActive: true},
		{ID: "p4", Category: "", IsActive: true},
	}

	got := InferCategories(configured, products)
	if len(got) != 2 {
		t.Fatalf("categorias = %+v, esperadas 2", got)
	}
	if got[1].ID != "valorant" || got[1].Name != "Valorant" {
		t.Fatalf("categoria inferida = %+v", got[1])
	}
	if got[1].Icon == "" {
		t.Fatal("categoria inferida sem ícone")
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	if catalog.Site.Name != "Chefinho" || catalog.Site.WhatsApp != "556993450986" {
		t.Fatalf("site = %+v", catalog.Site)
	}
	if len(catalog.Categories) != 8 {
		t.Fatalf("categorias = %d, esperadas 8", len(catalog.Categories))
	}
	if catalog.Theme.Colors.Primary != "#8B5CF6" || catalog.Theme.Mode != "dark" {
		t.Fatalf("theme = %+v", catalog.Theme)
	}
	if catalog.Products == nil || len(catalog.Products) != 0 {
		t.Fatalf("products deveria ser lista vazia, veio %+v", catalog.Products)
	}
}

func TestCartTotalsAndCount(t *testing.T) {
	items := []CartItem{
		{Price: 10, Quantity: 2},
		{Price: 35, Quantity: 1},
	}
	if total := CartTotal(items); total != 55 {
		t.Fatalf("total = %v", total)
	}
	if count := CartCount(items); count != 3 {
		t.Fatalf("count = %v", count)
	}
	if CartTotal(nil) != 0 || CartCount(nil) != 0 {
		t.Fatal("carrinho vazio deveria dar zero")
	}
}
