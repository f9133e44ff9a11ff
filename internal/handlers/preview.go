package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"chefinho_back_end/internal/services"
)

// Preview serve o HTML estático com meta tags que os crawlers de link
// (WhatsApp, Telegram) leem no lugar da SPA. Falha de lookup nunca vira erro:
// sai o conteúdo genérico e o redirect segue para a página real.
func Preview(c *gin.Context) {
	id := strings.TrimSuffix(c.Param("id"), ".jpg")
	origin := siteOrigin(c)

	data := previewData{
		ProductName:  "Produto Gaming",
		ProductPrice: "Valor negociável",
		ProductID:    id,
	}

	if strings.Contains(id, "produtos_") {
		// Nome de arquivo de imagem sem extensão: a URL é reconstruída e o
		// produto vem do timestamp embutido no nome.
		data.ImageURL = services.ProductImageURL(id)

		if match := imageTimestampRe.FindStringSubmatch(id); match != nil && services.Supabase.CanRead() {
			product, err := services.Supabase.FindActiveProductByImageTimestamp(c.Request.Context(), match[1])
			if err != nil {
				log.Println("⚠️ Erro ao buscar produto por timestamp:", err)
			} else if product != nil {
				data.ProductName = product.Name
				data.ProductPrice = formatPreviewPrice(product.RLPrice)
				data.ProductID = product.ID
			}
		}
	} else if services.Supabase.CanRead() {
		product, err := services.Supabase.GetActiveProduct(c.Request.Context(), id)
		if err != nil {
			log.Println("⚠️ Erro ao buscar produto:", err)
		} else if product != nil {
			data.ProductName = product.Name
			data.ProductPrice = formatPreviewPrice(product.RLPrice)
			data.ProductID = product.ID
			data.ImageURL = product.ImageURL
		}
	}

	if data.ImageURL == "" {
		data.ImageURL = origin + "/img/chefinho.png"
	}

	data.Title = data.ProductName + " - Chefinho Gaming Store"
	data.Description = fmt.Sprintf("%s por %s. Entrega imediata via WhatsApp! 🎮", data.ProductName, data.ProductPrice)
	data.RedirectURL = origin + "/produto.html?id=" + data.ProductID

	c.Header("Cache-Control", "public, max-age=3600, s-maxage=3600")
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := previewTemplate.Execute(c.Writer, data); err != nil {
		log.Println("⚠️ Erro ao renderizar preview:", err)
	}
}

var imageTimestampRe = regexp.MustCompile(`produtos_([0-9]+)_`)

type previewData struct {
	Title        string
	Description  string
	ImageURL     string
	RedirectURL  string
	ProductName  string
	ProductPrice string
	ProductID    string
}

func formatPreviewPrice(rlPrice float64) string {
	if rlPrice > 0 {
		return fmt.Sprintf("R$ %.2f", rlPrice)
	}
	return "Valor negociável"
}

func siteOrigin(c *gin.Context) string {
	if origin := os.Getenv("SITE_ORIGIN"); origin != "" {
		return strings.TrimRight(origin, "/")
	}
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + c.Request.Host
}

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <meta name="description" content="{{.Description}}">

    <!-- Open Graph / WhatsApp / Facebook / Telegram -->
    <meta property="og:type" content="product">
    <meta property="og:url" content="{{.RedirectURL}}">
    <meta property="og:title" content="{{.Title}}">
    <meta property="og:description" content="{{.Description}}">
    <meta property="og:image" content="{{.ImageURL}}">
    <meta property="og:image:secure_url" content="{{.ImageURL}}">
    <meta property="og:image:type" content="image/jpeg">
    <meta property="og:image:width" content="1200">
    <meta property="og:image:height" content="630">
    <meta property="og:site_name" content="Chefinho Gaming Store">
    <meta property="og:locale" content="pt_BR">

    <!-- Twitter -->
    <meta name="twitter:card" content="summary_large_image">
    <meta name="twitter:title" content="{{.Title}}">
    <meta name="twitter:description" content="{{.Description}}">
    <meta name="twitter:image" content="{{.ImageURL}}">

    <!-- Redirect instantâneo para a página real -->
    <meta http-equiv="refresh" content="0;url={{.RedirectURL}}">
    <link rel="canonical" href="{{.RedirectURL}}">

    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%);
            color: white;
            display: flex;
            justify-content: center;
            align-items: center;
            min-height: 100vh;
            margin: 0;
            padding: 20px;
            box-sizing: border-box;
        }
        .card {
            background: rgba(255,255,255,0.1);
            border-radius: 20px;
            padding: 30px;
            max-width: 400px;
            text-align: center;
            backdrop-filter: blur(10px);
        }
        .card img {
            width: 100%;
            border-radius: 15px;
            margin-bottom: 20px;
        }
        .card h1 {
            font-size: 1.5rem;
            margin: 0 0 10px 0;
        }
        .card .price {
            color: #00ff88;
            font-size: 1.3rem;
            font-weight: bold;
            margin: 10px 0;
        }
        .card .loading {
            color: rgba(255,255,255,0.6);
            font-size: 0.9rem;
        }
    </style>
</head>
<body>
    <div class="card">
        <img src="{{.ImageURL}}" alt="{{.ProductName}}" onerror="this.style.display='none'">
        <h1>{{.ProductName}}</h1>
        <p class="price">{{.ProductPrice}}</p>
        <p class="loading">🎮 Chefinho Gaming Store</p>
        <p class="loading">Redirecionando...</p>
    </div>
    <script>
        setTimeout(() => {
            window.location.href = '{{.RedirectURL}}';
        }, 500);
    </script>
</body>
</html>`))
