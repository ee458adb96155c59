package metaclient

import (
	"net/url"
	"strings"

	metadomain "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/domain"
)

// O Meta não devolve ROAS pronto; action_values é pedido para o cálculo local
var insightFields = []string{
	"campaign_name",
	"adset_name",
	"ad_name",
	"spend",
	"impressions",
	"clicks",
	"cpc",
	"cpm",
	"ctr",
	"frequency",
	"actions",
	"action_values",
	"cost_per_action_type",
}

type ResponseInsight struct {
	Data   []metadomain.InsightRow `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// GetInsightsByObjectID busca insights de conta, campanha, conjunto ou anúncio.
// Com BreakdownByTime a API devolve uma linha por dia (time_increment=1).
func (c *MetaClient) GetInsightsByObjectID(objectID string, params *InsightParams) ([]metadomain.InsightRow, error) {
	query := url.Values{}
	query.Add("fields", strings.Join(insightFields, ","))
	query.Add("limit", insightsPageLimit)

	if params != nil {
		if params.DatePreset != "" {
			query.Add("date_preset", params.DatePreset)
		}
		if params.BreakdownByTime {
			query.Add("time_increment", "1")
		}
	}

	var response ResponseInsight
	if err := c.get(objectID, "insights", query, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []metadomain.InsightRow{}, nil
	}

	return response.Data, nil
}
