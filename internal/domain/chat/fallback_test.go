package chat

import (
	"strings"
	"testing"
)

func TestFallbackReplyKeywordRouting(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{
			name:     "price range from live catalog",
			message:  "Qual o preco de um filtro de ar?",
			contains: "variam de R$ 15,90 a R$ 320,00",
		},
		{
			name:     "accented price keyword",
			message:  "Quanto custa? Me fala o preço",
			contains: "variam de R$ 15,90 a R$ 320,00",
		},
		{
			name:     "delivery",
			message:  "Como funciona a entrega?",
			contains: "Entregamos em todo o Brasil com prazos de 3 a 7 dias úteis",
		},
		{
			name:     "business hours",
			message:  "Qual o horário de funcionamento?",
			contains: "segunda a sexta das 8h às 18h",
		},
		{
			name:     "catalog categories",
			message:  "Quais produtos vocês vendem?",
			contains: "Temos produtos em 3 categorias diferentes: Ignição, Baterias, Freios.",
		},
		{
			name:     "no match asks for clarification",
			message:  "asdf qwerty",
			contains: "descreva melhor sua dúvida",
		},
		{
			name:     "price wins over delivery when both match",
			message:  "qual o preco da entrega?",
			contains: "variam de R$ 15,90 a R$ 320,00",
		},
		{
			name:     "delivery wins over hours",
			message:  "entrega em horário comercial?",
			contains: "Entregamos em todo o Brasil",
		},
		{
			name:     "keyword match is case-insensitive",
			message:  "PRECO DO PNEU",
			contains: "variam de R$ 15,90 a R$ 320,00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := FallbackReply(tt.message, products)
			if !strings.Contains(reply, tt.contains) {
				t.Errorf("reply %q does not contain %q", reply, tt.contains)
			}
			if !strings.Contains(reply, "tive um problema ao processar sua pergunta") {
				t.Error("reply missing the degraded-mode apology header")
			}
			if !strings.Contains(reply, "tente novamente") {
				t.Error("reply missing the retry suggestion")
			}
		})
	}
}

func TestFallbackReplyDeterministic(t *testing.T) {
	products := testProducts()
	first := FallbackReply("qual o preco?", products)
	second := FallbackReply("qual o preco?", products)
	if first != second {
		t.Fatal("fallback must be deterministic for identical inputs")
	}
}

func TestFallbackReplyEmptyCatalog(t *testing.T) {
	reply := FallbackReply("qual o preco?", nil)
	if !strings.Contains(reply, "descreva melhor sua dúvida") {
		t.Fatalf("empty catalog should fall through to clarification, got %q", reply)
	}
}
