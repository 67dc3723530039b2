package chat

import (
	"fmt"
	"strings"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
)

const personaInstructions = `Você é um assistente especializado em auto peças da loja fictícia "AutoPeças Profissional".

Você tem conhecimento sobre os seguintes produtos:
%s

INSTRUÇÕES IMPORTANTES:
1. Sempre responda em português brasileiro
2. Seja profissional, amigável e eficiente
3. Recomende produtos baseado nas necessidades do cliente
4. Informe preços e disponibilidade quando perguntado
5. Para pedidos, explique o processo
6. Se não souber algo específico, ofereça ajuda para falar com um especialista
7. Use linguagem simples e clara
8. Responda de forma concisa mas informativa`

// BuildPrompt composes the full prompt for one completion call: persona
// instructions, the serialized catalog and the current customer message.
// It is deterministic for identical inputs; prior turns are deliberately
// not folded in, histories exist for audit and reset semantics only.
func BuildPrompt(products []catalog.Product, userMessage string) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("- %s: R$ %s (%d em estoque) - %s",
			p.Name, p.Price.StringFixed(2), p.StockQuantity, p.Description))
	}

	var b strings.Builder
	fmt.Fprintf(&b, personaInstructions, strings.Join(lines, "\n"))
	b.WriteString("\n\n--- Conversa Atual ---\nCliente: ")
	b.WriteString(userMessage)
	return b.String()
}
