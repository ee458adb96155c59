package domain

type HierarchyLevel string

const (
	HierarchyLevelAccount  HierarchyLevel = "account"
	HierarchyLevelCampaign HierarchyLevel = "campaign"
)

// HierarchyNode representa uma campanha, conjunto de anúncios ou anúncio
type HierarchyNode struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	ParentID  string `json:"parent_id,omitempty"`
	Objective string `json:"objective,omitempty"`
}

// HierarchyView é o resultado do drill-down. No nível de conta apenas Campaigns
// é preenchido; no nível de campanha, AdSets e Ads.
type HierarchyView struct {
	Level      HierarchyLevel  `json:"level"`
	AccountID  string          `json:"account_id"`
	CampaignID string          `json:"campaign_id,omitempty"`
	Campaigns  []HierarchyNode `json:"campaigns,omitempty"`
	AdSets     []HierarchyNode `json:"adsets,omitempty"`
	Ads        []HierarchyNode `json:"ads,omitempty"`
}
