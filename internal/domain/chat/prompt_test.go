package chat

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 8, Name: "Vela de Ignição", Category: "Ignição", Price: decimal.RequireFromString("15.90"), StockQuantity: 300, Description: "Vela de ignição premium"},
		{ID: 5, Name: "Bateria 60Ah", Category: "Baterias", Price: decimal.RequireFromString("320.00"), StockQuantity: 95, Description: "Bateria de carro 60Ah, 12V"},
		{ID: 3, Name: "Pastilha de Freio", Category: "Freios", Price: decimal.RequireFromString("89.90"), StockQuantity: 120, Description: "Pastilha de freio com alta durabilidade"},
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	products := testProducts()

	first := BuildPrompt(products, "Qual filtro você recomenda?")
	second := BuildPrompt(products, "Qual filtro você recomenda?")
	if first != second {
		t.Fatal("identical inputs must produce byte-identical prompts")
	}
}

func TestBuildPromptLayout(t *testing.T) {
	prompt := BuildPrompt(testProducts(), "Tem bateria em estoque?")

	if !strings.Contains(prompt, `AutoPeças Profissional`) {
		t.Error("prompt missing persona identity")
	}
	if !strings.Contains(prompt, "Sempre responda em português brasileiro") {
		t.Error("prompt missing language instruction")
	}
	if !strings.Contains(prompt, "- Vela de Ignição: R$ 15.90 (300 em estoque) - Vela de ignição premium") {
		t.Error("prompt missing serialized product line")
	}

	// Products must appear in catalog order.
	vela := strings.Index(prompt, "Vela de Ignição")
	bateria := strings.Index(prompt, "Bateria 60Ah")
	if vela < 0 || bateria < 0 || vela > bateria {
		t.Error("catalog order not preserved in prompt")
	}

	if !strings.HasSuffix(prompt, "--- Conversa Atual ---\nCliente: Tem bateria em estoque?") {
		t.Errorf("prompt must end with the delimited customer message, got tail %q", prompt[len(prompt)-60:])
	}
}

func TestBuildPromptEmptyCatalog(t *testing.T) {
	prompt := BuildPrompt(nil, "oi")
	if !strings.Contains(prompt, "Cliente: oi") {
		t.Fatal("prompt must still carry the message with an empty catalog")
	}
}
