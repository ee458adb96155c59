package metaclient

import (
	"net/url"

	metadomain "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAdCreativeByID(creativeID string) (*metadomain.Creative, error) {
	params := url.Values{}
	params.Add("fields", "name,title,body,image_url,thumbnail_url,call_to_action_type,object_story_spec")

	var creative metadomain.Creative
	if err := c.get(creativeID, "", params, &creative); err != nil {
		return nil, err
	}

	return &creative, nil
}
