package metadomain

// AdAccount é a resposta de /{account} com os campos financeiros.
// balance, amount_spent e spend_cap vêm em centavos.
type AdAccount struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Currency       string        `json:"currency"`
	Balance        NumericString `json:"balance"`
	AmountSpent    NumericString `json:"amount_spent"`
	SpendCap       NumericString `json:"spend_cap"`
	AccountStatus  NumericString `json:"account_status"`
	MinDailyBudget NumericString `json:"min_daily_budget"`
}
