package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"chefinho_back_end/internal/models"
)

// SupabaseClient fala com a REST API do Supabase (PostgREST). A anon key
// cobre as leituras públicas; a service role key passa por cima do RLS nas
// operações de admin.
type SupabaseClient struct {
	URL        string
	AnonKey    string
	ServiceKey string
	HTTP       *http.Client
}

var Supabase *SupabaseClient

func ConnectSupabase() {
	supabaseURL := os.Getenv("SUPABASE_URL")
	if supabaseURL == "" {
		log.Println("⚠️ SUPABASE_URL ausente — endpoints de produto do Supabase desabilitados")
	} else {
		log.Println("✅ Supabase configurado:", supabaseURL)
	}

	Supabase = &SupabaseClient{
		URL:        supabaseURL,
		AnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		ServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		HTTP:       &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *SupabaseClient) Ready() bool {
	return s != nil && s.URL != "" && s.ServiceKey != ""
}

// CanRead basta para as leituras públicas (anon key opcional em dev).
func (s *SupabaseClient) CanRead() bool {
	return s != nil && s.URL != ""
}

// Rest faz uma chamada crua em /rest/v1/<table> e devolve a resposta sem
// interpretar, para os handlers de admin repassarem status e corpo.
func (s *SupabaseClient) Rest(ctx context.Context, method, table, query string, body any, elevated bool) (*http.Response, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", s.URL, table)
	if query != "" {
		endpoint += "?" + query
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}

	key := s.AnonKey
	if elevated {
		key = s.ServiceKey
	}
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	return s.HTTP.Do(req)
}

// GetActiveProduct busca um produto ativo pelo id (anon key).
func (s *SupabaseClient) GetActiveProduct(ctx context.Context, id string) (*models.Product, error) {
	query := "id=eq." + url.QueryEscape(id) + "&is_active=eq.true"
	return s.fetchOne(ctx, query)
}

// FindActiveProductByImageTimestamp procura o produto cuja image_url contenha
// o timestamp extraído do nome do arquivo. Pode casar o produto errado se
// dois uploads compartilham o prefixo de timestamp; limitação aceita.
func (s *SupabaseClient) FindActiveProductByImageTimestamp(ctx context.Context, timestamp string) (*models.Product, error) {
	query := "image_url=like.*" + url.QueryEscape(timestamp) + "*&is_active=eq.true&limit=1"
	return s.fetchOne(ctx, query)
}

func (s *SupabaseClient) fetchOne(ctx context.Context, query string) (*models.Product, error) {
	resp, err := s.Rest(ctx, http.MethodGet, "products", query, nil, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("supabase respondeu %d", resp.StatusCode)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}
