package domain

// DatePresetMaximum é o período usado quando nenhum date_preset é informado
const DatePresetMaximum = "maximum"

// ActionEntry é um item das listas "actions" e "action_values" do Meta.
// O tipo é aberto (purchase, omni_purchase, offsite_conversion.purchase, ...).
type ActionEntry struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightsRow é uma linha de insights já tipada. CPC, CPM, CTR e Frequency
// são mantidos como texto de exibição.
type InsightsRow struct {
	AdName       string        `json:"ad_name,omitempty"`
	AdSetName    string        `json:"adset_name,omitempty"`
	CampaignName string        `json:"campaign_name,omitempty"`
	Spend        float64       `json:"spend"`
	Impressions  int64         `json:"impressions"`
	Clicks       int64         `json:"clicks"`
	CPC          string        `json:"cpc"`
	CPM          string        `json:"cpm"`
	CTR          string        `json:"ctr"`
	Frequency    string        `json:"frequency"`
	Actions      []ActionEntry `json:"actions"`
	ActionValues []ActionEntry `json:"action_values"`
	DateStart    string        `json:"date_start,omitempty"`
}

// RenderedMetric é uma linha normalizada, pronta para o relatório
type RenderedMetric struct {
	DateLabel     string  `json:"date_label"`
	Name          string  `json:"name"`
	Spend         float64 `json:"spend"`
	PurchaseValue float64 `json:"purchase_value"`
	ROAS          float64 `json:"roas"`
	Impressions   int64   `json:"impressions"`
	Clicks        int64   `json:"clicks"`
	CPC           string  `json:"cpc"`
	CPM           string  `json:"cpm"`
	CTR           string  `json:"ctr"`
	Frequency     string  `json:"frequency"`
	Conversions   string  `json:"conversions"`
}

type AnalyticsReport struct {
	ObjectID        string           `json:"object_id"`
	DatePreset      string           `json:"date_preset"`
	BreakdownByTime bool             `json:"breakdown_by_time"`
	Rows            []RenderedMetric `json:"rows"`
}
