package models

import "strings"

// Catalog é o documento único servido ao storefront: produtos, categorias
// e configuração do site, tudo em um blob JSON.
type Catalog struct {
	Site       Site       `json:"site"`
	Theme      Theme      `json:"theme"`
	Categories []Category `json:"categories"`
	Stats      Stats      `json:"stats"`
	Contact    Contact    `json:"contact"`
	Social     Social     `json:"social"`
	Products   []Product  `json:"products"`
	UpdatedAt  string     `json:"updated_at,omitempty"`
}

type Site struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	WhatsApp    string `json:"whatsapp"`
}

type Theme struct {
	Colors ThemeColors `json:"colors"`
	Mode   string      `json:"mode"`
}

type ThemeColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Yellow    string `json:"yellow"`
	Dark      string `json:"dark"`
	Darker    string `json:"darker"`
}

type Stats struct {
	Products string `json:"products"`
	Users    string `json:"users"`
	Support  string `json:"support"`
}

type Contact struct {
	WhatsApp string       `json:"whatsapp"`
	Email    string       `json:"email"`
	Hours    ContactHours `json:"hours"`
}

type ContactHours struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

type Social struct {
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	YouTube   string `json:"youtube"`
	Twitch    string `json:"twitch"`
}

// DefaultCatalog devolve o documento padrão usado quando o store está vazio
// ou inacessível.
func DefaultCatalog() Catalog {
	return Catalog{
		Site: Site{
			Name:        "Chefinho",
			Tagline:     "Gaming Store",
			Description: "Sua loja gamer de confiança",
			WhatsApp:    "556993450986",
		},
		Theme: Theme{
			Colors: ThemeColors{
				Primary:   "#8B5CF6",
				Secondary: "#A855F7",
				Yellow:    "#FCD34D",
				Dark:      "#0F0F23",
				Darker:    "#0A0A1A",
			},
			Mode: "dark",
		},
		Categories: []Category{
			{ID: "freefire", Name: "Free Fire", Description: "Skins, Personagens, Diamantes", Icon: "fas fa-fire"},
			{ID: "mage", Name: "Rucoy Mage", Description: "Personagens Mage, Items", Icon: "fas fa-magic"},
			{ID: "kina", Name: "Rucoy Knight", Description: "Personagens Knight, Items", Icon: "fas fa-shield-alt"},
			{ID: "pally", Name: "Rucoy Paladin", Description: "Personagens Paladin, Items", Icon: "fas fa-crosshairs"},
			{ID: "supercell", Name: "Supercell Games", Description: "Clash of Clans, Clash Royale", Icon: "fas fa-crown"},
			{ID: "itens", Name: "Itens Gerais", Description: "Diversos itens para jogos", Icon: "fas fa-gem"},
			{ID: "geral", Name: "Geral", Description: "Diversos produtos", Icon: "fas fa-gamepad"},
			{ID: "roblox", Name: "Roblox", Description: "Contas e itens Roblox", Icon: "fas fa-cube"},
		},
		Stats: Stats{
			Products: "2K+",
			Users:    "10K+",
			Support:  "24/7",
		},
		Contact: Contact{
			WhatsApp: "+55 69 9345-0986",
			Email:    "contato@chefinho.com",
			Hours: ContactHours{
				Weekdays: "8h às 18h",
				Saturday: "8h às 14h",
				Sunday:   "Fechado",
			},
		},
		Social: Social{
			Instagram: "#",
			Twitter:   "#",
			YouTube:   "#",
			Twitch:    "#",
		},
		Products: []Product{},
	}
}

// FilterProducts aplica o filtro do storefront: somente produtos ativos,
// categoria com igualdade exata (quando informada) e busca por substring no
// nome, sem diferenciar maiúsculas.
func FilterProducts(products []Product, category, search string) []Product {
	out := []Product{}
	term := strings.ToLower(search)
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// InferCategories devolve categorias sintéticas para tags de categoria usadas
// por produtos mas ausentes da lista configurada.
func InferCategories(configured []Category, products []Product) []Category {
	known := make(map[string]bool, len(configured))
	for _, c := range configured {
		known[c.ID] = true
	}

	out := append([]Category{}, configured...)
	for _, p := range products {
		if p.Category == "" || known[p.Category] {
			continue
		}
		known[p.Category] = true
		out = append(out, Category{
			ID:   p.Category,
			Name: titleCase(p.Category),
			Icon: "fas fa-gamepad",
		})
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
