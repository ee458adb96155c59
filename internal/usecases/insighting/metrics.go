package insighting

import (
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/pkg/utils"
)

const (
	GeneralLabel = "Geral"
	TotalLabel   = "Total"
)

const purchaseActionType = "purchase"

// PurchaseValue soma apenas action_type exatamente igual a "purchase".
// O resumo de ações usa busca parcial; aqui a comparação é exata.
func PurchaseValue(actionValues []domain.ActionEntry) float64 {
	var total float64
	for _, v := range actionValues {
		if v.ActionType == purchaseActionType {
			total += utils.ParseFloatOrZero(v.Value)
		}
	}

	return total
}

func ROAS(purchaseValue, spend float64) float64 {
	if spend <= 0 {
		return 0
	}

	return purchaseValue / spend
}

// DisplayName indica o nível do objeto consultado: anúncio, conjunto ou campanha
func DisplayName(row domain.InsightsRow) string {
	switch {
	case row.AdName != "":
		return row.AdName
	case row.AdSetName != "":
		return row.AdSetName
	case row.CampaignName != "":
		return row.CampaignName
	default:
		return GeneralLabel
	}
}

func DateLabel(row domain.InsightsRow) string {
	if row.DateStart == "" {
		return TotalLabel
	}

	return row.DateStart
}

func NormalizeRow(row domain.InsightsRow) domain.RenderedMetric {
	purchaseValue := PurchaseValue(row.ActionValues)

	return domain.RenderedMetric{
		DateLabel:     DateLabel(row),
		Name:          DisplayName(row),
		Spend:         row.Spend,
		PurchaseValue: purchaseValue,
		ROAS:          ROAS(purchaseValue, row.Spend),
		Impressions:   row.Impressions,
		Clicks:        row.Clicks,
		CPC:           row.CPC,
		CPM:           row.CPM,
		CTR:           row.CTR,
		Frequency:     row.Frequency,
		Conversions:   SummarizeActions(row.Actions),
	}
}
