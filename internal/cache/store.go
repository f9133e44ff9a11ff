package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"chefinho_back_end/internal/database"
	"chefinho_back_end/internal/models"
)

// O catálogo inteiro vive em uma key só, como no KV Store original.
const (
	CatalogKey = "products"
	NewsKey    = "news"
)

var ctx = context.Background()

// ErrEmpty indica key ausente (store vazio, não é falha).
var ErrEmpty = errors.New("key vazia no store")

// GetCatalogRaw lê o blob do catálogo sem interpretar.
func GetCatalogRaw() ([]byte, error) {
	data, err := database.Redis.Get(ctx, CatalogKey).Bytes()
	if err == redis.Nil {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// GetCatalog devolve o catálogo decodificado, ou o documento padrão quando o
// store está vazio ou inacessível.
func GetCatalog() (models.Catalog, error) {
	data, err := GetCatalogRaw()
	if err != nil {
		return models.DefaultCatalog(), err
	}

	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return models.DefaultCatalog(), err
	}
	return catalog, nil
}

// SetCatalogRaw grava o blob inteiro do catálogo (uma escrita, sem TTL).
func SetCatalogRaw(data []byte) error {
	return database.Redis.Set(ctx, CatalogKey, data, 0).Err()
}

// --- Notícias ---

func GetNewsRaw() ([]byte, error) {
	data, err := database.Redis.Get(ctx, NewsKey).Bytes()
	if err == redis.Nil {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func SetNewsRaw(data []byte) error {
	return database.Redis.Set(ctx, NewsKey, data, 0).Err()
}

// --- Carrinhos ---

func cartKey(cartID string) string {
	return "cart:" + cartID
}

// GetCart lê o carrinho; carrinho inexistente volta vazio.
func GetCart(cartID string) ([]models.CartItem, error) {
	data, err := database.Redis.Get(ctx, cartKey(cartID)).Result()
	if err == redis.Nil || data == "" {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveCart persiste o carrinho sem TTL — ele sobrevive à sessão até ser
// limpo explicitamente.
func SaveCart(cartID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, cartKey(cartID), data, 0).Err()
}

func DeleteCart(cartID string) error {
	return database.Redis.Del(ctx, cartKey(cartID)).Err()
}
