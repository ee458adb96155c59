package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

func TestRenderAnalytics(t *testing.T) {
	report := &domain.AnalyticsReport{
		ObjectID:   "act_1",
		DatePreset: "last_7d",
		Rows: []domain.RenderedMetric{
			{
				DateLabel:     "2024-01-01",
				Name:          "Anúncio",
				Spend:         50,
				PurchaseValue: 150,
				ROAS:          3,
				CPC:           "1.2345",
				CTR:           "2.5",
				Conversions:   "purchase: 3",
			},
			{
				DateLabel:   TotalLabel,
				Name:        GeneralLabel,
				CPC:         "n/d",
				Conversions: NoConversionsLabel,
			},
		},
	}

	expected := "Relatório Analítico para ID act_1 (last_7d):\n" +
		"📅 2024-01-01 | Anúncio\n" +
		"  💰 Gasto: R$ 50.00 | Retorno (Value): R$ 150.00\n" +
		"  📈 ROAS: 3.00x\n" +
		"  🖱️ CPC: R$ 1.23 | CTR: 2.5%\n" +
		"  🎯 Conversões: purchase: 3\n" +
		rowSeparator +
		"📊 Total | Geral\n" +
		"  💰 Gasto: R$ 0.00 | Retorno (Value): R$ 0.00\n" +
		"  📈 ROAS: 0.00x\n" +
		"  🖱️ CPC: R$ 0.00 | CTR: 0%\n" +
		"  🎯 Conversões: Nenhuma conversão\n" +
		rowSeparator

	assert.Equal(t, expected, RenderAnalytics(report))
}

func TestRenderAnalytics_SemDados(t *testing.T) {
	assert.Equal(t, NoDataLabel, RenderAnalytics(&domain.AnalyticsReport{ObjectID: "1"}))
	assert.Equal(t, NoDataLabel, RenderAnalytics(nil))
}
