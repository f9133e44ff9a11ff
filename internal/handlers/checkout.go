package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"chefinho_back_end/internal/cache"
	"chefinho_back_end/internal/utils"
)

// Checkout não é transação: gera a mensagem do pedido e o deep link do
// WhatsApp. Não existe registro de pedido nem pagamento.
func Checkout(c *gin.Context) {
	message, link, err := buildCheckoutLink(c)
	if err != nil {
		return // resposta já escrita
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "url": link})
}

// CheckoutQR devolve o mesmo link como QR code PNG, para mostrar na tela e
// escanear com o celular.
func CheckoutQR(c *gin.Context) {
	_, link, err := buildCheckoutLink(c)
	if err != nil {
		return
	}

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func buildCheckoutLink(c *gin.Context) (string, string, error) {
	items, err := cache.GetCart(c.Param("cartId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler carrinho"})
		return "", "", err
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seu carrinho está vazio!"})
		return "", "", errEmptyCart
	}

	message := utils.BuildOrderMessage(items)
	link := utils.WhatsAppLink(whatsappNumber(), message)
	return message, link, nil
}

func whatsappNumber() string {
	catalog, _ := loadCatalog()
	if catalog.Site.WhatsApp != "" {
		return catalog.Site.WhatsApp
	}
	if n := os.Getenv("WHATSAPP_NUMBER"); n != "" {
		return n
	}
	return "556993450986"
}

var errEmptyCart = errors.New("carrinho vazio")
