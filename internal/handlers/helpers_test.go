package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"chefinho_back_end/internal/cache"
	"chefinho_back_end/internal/database"
	"chefinho_back_end/internal/models"
	"chefinho_back_end/internal/routes"
	"chefinho_back_end/internal/services"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	s := miniredis.RunT(t)
	database.Redis = redis.NewClient(&redis.Options{Addr: s.Addr()})
	return s
}

func seedCatalog(t *testing.T, products []models.Product) {
	t.Helper()
	catalog := models.DefaultCatalog()
	catalog.Products = products
	data, err := json.Marshal(catalog)
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	if err := cache.SetCatalogRaw(data); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// stubSupabase aponta o cliente global para um servidor de teste.
func stubSupabase(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	old := services.Supabase
	services.Supabase = &services.SupabaseClient{
		URL:        server.URL,
		AnonKey:    "anon-key",
		ServiceKey: "service-key",
		HTTP:       server.Client(),
	}
	t.Cleanup(func() { services.Supabase = old })
	return server
}
