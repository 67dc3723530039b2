package chat

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
)

const (
	fallbackHeader = "Olá! Infelizmente tive um problema ao processar sua pergunta através da IA.\nMas posso te ajudar com informações básicas sobre nossos produtos:\n\n"
	fallbackFooter = "\n\nPara uma conversa mais completa, recarregue a página e tente novamente."

	deliveryAnswer = "Entregamos em todo o Brasil com prazos de 3 a 7 dias úteis."
	hoursAnswer    = "Funcionamos de segunda a sexta das 8h às 18h, e sábado das 9h às 13h."
	unknownAnswer  = "Por favor, descreva melhor sua dúvida e farei de tudo para ajudá-lo!"
)

// FallbackReply maps a customer message to a canned answer using the
// live catalog. Matching is case-insensitive substring search over
// keyword categories in fixed priority order: price, delivery, business
// hours, then catalog. The reply always carries the apology header and
// retry footer so the degraded outcome is visible to the customer.
func FallbackReply(userMessage string, products []catalog.Product) string {
	msg := strings.ToLower(userMessage)

	var body string
	switch {
	case strings.Contains(msg, "prec") || strings.Contains(msg, "preç") || strings.Contains(msg, "pric"):
		body = priceAnswer(products)
	case strings.Contains(msg, "entrega"):
		body = deliveryAnswer
	case strings.Contains(msg, "horas") || strings.Contains(msg, "horário"):
		body = hoursAnswer
	case strings.Contains(msg, "produto"):
		body = catalogAnswer(products)
	default:
		body = unknownAnswer
	}

	return fallbackHeader + body + fallbackFooter
}

func priceAnswer(products []catalog.Product) string {
	min, max, ok := catalog.PriceRange(products)
	if !ok {
		return unknownAnswer
	}
	return fmt.Sprintf("Nossos produtos variam de R$ %s a R$ %s. Qual produto específico você gostaria de saber o preço?",
		formatBRL(min), formatBRL(max))
}

func catalogAnswer(products []catalog.Product) string {
	categories := catalog.Categories(products)
	if len(categories) == 0 {
		return unknownAnswer
	}
	return fmt.Sprintf("Temos produtos em %d categorias diferentes: %s.",
		len(categories), strings.Join(categories, ", "))
}

// formatBRL renders a price with the Brazilian decimal comma.
func formatBRL(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
