package domain

// AccountFinancials guarda os valores monetários em centavos, como a API devolve
type AccountFinancials struct {
	Name             string `json:"name"`
	Currency         string `json:"currency"`
	BalanceCents     int64  `json:"balance_cents"`
	AmountSpentCents int64  `json:"amount_spent_cents"`
	SpendCapCents    *int64 `json:"spend_cap_cents,omitempty"`
	StatusCode       int    `json:"status_code"`
}

// FinancialReport traz os valores já convertidos para a unidade principal da moeda.
// SpendCap e Remaining ficam nil quando a conta não tem limite de gastos.
type FinancialReport struct {
	AccountID   string   `json:"account_id"`
	Name        string   `json:"name"`
	Currency    string   `json:"currency"`
	Balance     float64  `json:"balance"`
	AmountSpent float64  `json:"amount_spent"`
	SpendCap    *float64 `json:"spend_cap,omitempty"`
	Remaining   *float64 `json:"remaining,omitempty"`
	StatusCode  int      `json:"status_code"`
	StatusLabel string   `json:"status_label"`
}

func (r *FinancialReport) HasSpendCap() bool {
	return r != nil && r.SpendCap != nil && r.Remaining != nil
}
