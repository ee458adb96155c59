package metaclient

import (
	"net/url"

	metadomain "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/domain"
)

type ResponseAd struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

func (c *MetaClient) GetAdsByCampaignID(campaignID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", "name,status,adset_id")
	params.Add("limit", structurePageLimit)

	var response ResponseAd
	if err := c.get(campaignID, "ads", params, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []metadomain.Ad{}, nil
	}

	return response.Data, nil
}

// GetAdByID busca apenas a referência ao criativo do anúncio
func (c *MetaClient) GetAdByID(adID string) (*metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", "creative")

	var ad metadomain.Ad
	if err := c.get(adID, "", params, &ad); err != nil {
		return nil, err
	}

	return &ad, nil
}
