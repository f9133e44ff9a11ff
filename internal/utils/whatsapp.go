package utils

import (
	"fmt"
	"net/url"
	"strings"

	"chefinho_back_end/internal/models"
)

// BuildOrderMessage monta a mensagem do pedido que abre pré-preenchida no
// WhatsApp. KKs do Rucoy ganham uma seção própria com o nome do personagem;
// o resto sai numerado com quantidade e subtotal.
func BuildOrderMessage(items []models.CartItem) string {
	total := models.CartTotal(items)

	var rucoyItems, otherItems []models.CartItem
	for _, item := range items {
		if item.Type == models.CartItemRucoyKKs {
			rucoyItems = append(rucoyItems, item)
		} else {
			otherItems = append(otherItems, item)
		}
	}

	var b strings.Builder

	if len(rucoyItems) > 0 {
		b.WriteString("🎮 *PEDIDO - CHEFINHO GAMING STORE*\n\n")

		b.WriteString("🏆 *RUCOY ONLINE - KKs:*\n")
		for i, item := range rucoyItems {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
			fmt.Fprintf(&b, "   👤 Personagem: %s\n", item.Character)
			fmt.Fprintf(&b, "   💰 R$ %.2f\n\n", item.Price)
		}

		if len(otherItems) > 0 {
			b.WriteString("📦 *OUTROS ITENS:*\n")
			writeNumberedItems(&b, otherItems)
		}

		fmt.Fprintf(&b, "💵 *TOTAL: R$ %.2f*\n\n", total)
		b.WriteString("⚡ *INFORMAÇÕES IMPORTANTES:*\n")
		b.WriteString("• KKs Rucoy: Entrega em até 30 minutos\n")
		b.WriteString("• Confirme se os nomes dos personagens estão corretos\n")
		b.WriteString("• Você deve estar online no momento da entrega\n\n")
		b.WriteString("🔥 Quero finalizar minha compra!")
		return b.String()
	}

	b.WriteString("🎮 *PEDIDO - CHEFINHO GAMING STORE* 🎮\n\n")
	b.WriteString("📦 *ITENS SELECIONADOS:*\n")
	writeNumberedItems(&b, otherItems)
	fmt.Fprintf(&b, "💰 *TOTAL: R$ %.2f*\n\n", total)
	b.WriteString("🔥 Quero finalizar minha compra!")
	return b.String()
}

func writeNumberedItems(b *strings.Builder, items []models.CartItem) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(b, "   💰 R$ %.2f\n", item.Price)
		fmt.Fprintf(b, "   📊 Quantidade: %d\n", item.Quantity)
		fmt.Fprintf(b, "   💵 Subtotal: R$ %.2f\n\n", item.Price*float64(item.Quantity))
	}
}

// WhatsAppLink devolve o deep link do app de mensagens com o texto embutido.
func WhatsAppLink(phone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://api.whatsapp.com/send/?phone=%s&text=%s&type=phone_number&app_absent=0", phone, encoded)
}
