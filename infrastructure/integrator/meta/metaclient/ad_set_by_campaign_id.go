package metaclient

import (
	"net/url"

	metadomain "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/domain"
)

type ResponseAdSet struct {
	Data   []metadomain.AdSet `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

func (c *MetaClient) GetAdSetsByCampaignID(campaignID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", "name,status,billing_event")
	params.Add("limit", structurePageLimit)

	var response ResponseAdSet
	if err := c.get(campaignID, "adsets", params, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []metadomain.AdSet{}, nil
	}

	return response.Data, nil
}
