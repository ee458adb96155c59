package metadomain

// Action é um item de "actions", "action_values" ou "cost_per_action_type"
type Action struct {
	ActionType string        `json:"action_type"`
	Value      NumericString `json:"value"`
}
