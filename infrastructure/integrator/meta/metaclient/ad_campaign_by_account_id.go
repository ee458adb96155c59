package metaclient

import (
	"net/url"

	metadomain "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/domain"
)

type ResponseAdCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetAdCampaignsByAccountID lista as campanhas da conta na ordem devolvida pela API.
// accountID já deve estar no formato act_<dígitos>.
func (c *MetaClient) GetAdCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "name,status,objective")
	params.Add("limit", structurePageLimit)

	var response ResponseAdCampaign
	if err := c.get(accountID, "campaigns", params, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []metadomain.Campaign{}, nil
	}

	return response.Data, nil
}
