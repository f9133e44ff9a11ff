package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"chefinho_back_end/internal/services"
)

func TestPreviewFallsBackToGenericCard(t *testing.T) {
	old := services.Supabase
	services.Supabase = nil
	t.Cleanup(func() { services.Supabase = old })

	r := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/p/abc123", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, preview nunca deveria falhar", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content-type = %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=3600, s-maxage=3600" {
		t.Fatalf("cache-control = %q", cc)
	}

	body := w.Body.String()
	for _, want := range []string{
		"Produto Gaming - Chefinho Gaming Store",
		"Valor negociável",
		`http-equiv="refresh" content="0;url=`,
		"/produto.html?id=abc123",
		`property="og:image"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("html sem o trecho %q", want)
		}
	}
}

func TestPreviewRendersProductFromLookup(t *testing.T) {
	stubSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "eq.p1" {
			t.Errorf("query id = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"p1","name":"Conta Free Fire","rl_price":120,"image_url":"https://cdn/x.jpg","is_active":true}]`))
	})

	r := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/p/p1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		"Conta Free Fire - Chefinho Gaming Store",
		"R$ 120.00",
		"https://cdn/x.jpg",
		"Entrega imediata via WhatsApp! 🎮",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("html sem o trecho %q", want)
		}
	}
}

func TestPreviewImageFilenameRebuildsURL(t *testing.T) {
	t.Setenv("IMAGEKIT_URL_ENDPOINT", "https://ik.imagekit.io/chefinho")

	stubSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("image_url"); got != "like.*1700000000*" {
			t.Errorf("query image_url = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	r := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/p/produtos_1700000000_foto.jpg", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	body := w.Body.String()
	// Lookup vazio: card genérico, mas a imagem vem do nome do arquivo.
	if !strings.Contains(body, "https://ik.imagekit.io/chefinho/produtos/produtos_1700000000_foto.jpg") {
		t.Errorf("html sem a URL reconstruída da imagem:\n%s", body)
	}
	if !strings.Contains(body, "Produto Gaming") {
		t.Errorf("html deveria cair no nome genérico")
	}
}
