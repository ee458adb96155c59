package metadomain

// InsightRow é uma linha crua de /{object}/insights. Os campos numéricos vêm
// como texto e podem faltar dependendo do nível do objeto consultado.
type InsightRow struct {
	CampaignName  string        `json:"campaign_name"`
	AdSetName     string        `json:"adset_name"`
	AdName        string        `json:"ad_name"`
	Spend         NumericString `json:"spend"`
	Impressions   NumericString `json:"impressions"`
	Clicks        NumericString `json:"clicks"`
	CPC           NumericString `json:"cpc"`
	CPM           NumericString `json:"cpm"`
	CTR           NumericString `json:"ctr"`
	Frequency     NumericString `json:"frequency"`
	Actions       []Action      `json:"actions"`
	ActionValues  []Action      `json:"action_values"`
	CostPerAction []Action      `json:"cost_per_action_type"`
	DateStart     string        `json:"date_start"`
	DateStop      string        `json:"date_stop"`
}
