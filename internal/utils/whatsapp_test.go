package utils

import (
	"strings"
	"testing"

	"chefinho_back_end/internal/models"
)

func TestBuildOrderMessageOrdinaryItems(t *testing.T) {
	items := []models.CartItem{
		{Key: "p1", ProductID: "p1", Name: "Conta Free Fire", Price: 120, Quantity: 2, Type: models.CartItemDigital},
		{Key: "p2", ProductID: "p2", Name: "Robux 800", Price: 40, Quantity: 1, Type: models.CartItemDigital},
	}

	msg := BuildOrderMessage(items)

	if !strings.HasPrefix(msg, "🎮 *PEDIDO - CHEFINHO GAMING STORE* 🎮\n\n") {
		t.Fatalf("cabeçalho errado:\n%s", msg)
	}
	for _, want := range []string{
		"📦 *ITENS SELECIONADOS:*",
		"1. Conta Free Fire",
		"📊 Quantidade: 2",
		"💵 Subtotal: R$ 240.00",
		"2. Robux 800",
		"💰 *TOTAL: R$ 280.00*",
		"🔥 Quero finalizar minha compra!",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("mensagem sem %q", want)
		}
	}
	if strings.Contains(msg, "RUCOY") {
		t.Errorf("pedido sem KKs não deveria ter seção Rucoy")
	}
}

func TestBuildOrderMessageWithRucoyKKs(t *testing.T) {
	items := []models.CartItem{
		{Key: "kk1:a", ProductID: "kk1", Name: "100 KKs", Price: 35, Quantity: 1, Type: models.CartItemRucoyKKs, Character: "Chefinho"},
		{Key: "kk1:b", ProductID: "kk1", Name: "100 KKs", Price: 35, Quantity: 1, Type: models.CartItemRucoyKKs, Character: "Mago"},
		{Key: "p1", ProductID: "p1", Name: "Conta Free Fire", Price: 120, Quantity: 1, Type: models.CartItemDigital},
	}

	msg := BuildOrderMessage(items)

	if !strings.HasPrefix(msg, "🎮 *PEDIDO - CHEFINHO GAMING STORE*\n\n") {
		t.Fatalf("cabeçalho errado:\n%s", msg)
	}
	for _, want := range []string{
		"🏆 *RUCOY ONLINE - KKs:*",
		"👤 Personagem: Chefinho",
		"👤 Personagem: Mago",
		"📦 *OUTROS ITENS:*",
		"💵 *TOTAL: R$ 190.00*",
		"⚡ *INFORMAÇÕES IMPORTANTES:*",
		"• KKs Rucoy: Entrega em até 30 minutos",
		"• Você deve estar online no momento da entrega",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("mensagem sem %q", want)
		}
	}
}

func TestWhatsAppLinkEncoding(t *testing.T) {
	link := WhatsAppLink("556993450986", "Olá! Quero comprar 🎮")

	if !strings.HasPrefix(link, "https://api.whatsapp.com/send/?phone=556993450986&text=") {
		t.Fatalf("link = %q", link)
	}
	if !strings.HasSuffix(link, "&type=phone_number&app_absent=0") {
		t.Fatalf("link sem sufixo esperado: %q", link)
	}
	if strings.Contains(link, "+") {
		t.Fatalf("espaços deveriam virar %%20, não '+': %q", link)
	}
	if !strings.Contains(link, "%20") {
		t.Fatalf("link sem %%20: %q", link)
	}
}
