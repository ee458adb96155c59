package billing

import "fmt"

// Códigos de account_status do Meta
const (
	AccountStatusActive         = 1
	AccountStatusDisabled       = 2
	AccountStatusUnsettled      = 3
	AccountStatusPendingReview  = 7
	AccountStatusPendingClosure = 8
	AccountStatusInGracePeriod  = 9
)

var accountStatusLabels = map[int]string{
	AccountStatusActive:         "🟢 Ativa",
	AccountStatusDisabled:       "🔴 Desativada",
	AccountStatusUnsettled:      "🟠 Não Liquidada (Pagamento Pendente)",
	AccountStatusPendingReview:  "⏳ Pendente de Revisão",
	AccountStatusPendingClosure: "⏳ Pendente de Liquidação",
	AccountStatusInGracePeriod:  "📅 Em Período de Graça",
}

// StatusLabel nunca falha: códigos fora da tabela viram "Status código N"
func StatusLabel(code int) string {
	if label, ok := accountStatusLabels[code]; ok {
		return label
	}

	return fmt.Sprintf("Status código %d", code)
}
