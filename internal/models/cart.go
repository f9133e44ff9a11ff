package models

// CartItem é uma linha do carrinho. Itens comuns são agrupados por produto;
// itens "rucoy-kks" carregam o nome do personagem e nunca são agrupados,
// cada um recebe uma key própria.
type CartItem struct {
	Key       string  `json:"key"`
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
	Type      string  `json:"type"`
	Character string  `json:"character,omitempty"`
}

const (
	CartItemDigital  = "digital"
	CartItemRucoyKKs = "rucoy-kks"
)

// CartTotal soma preço x quantidade de todas as linhas.
func CartTotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CartCount soma as quantidades de todas as linhas.
func CartCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
