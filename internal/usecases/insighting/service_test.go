package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetAnalytics_PeriodoPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	integrator.EXPECT().GetInsights("act_1", domain.DatePresetMaximum, false).Return([]domain.InsightsRow{
		{CampaignName: "Camp", Spend: 50, DateStart: "2024-01-01"},
	}, nil)

	report, err := NewService(integrator).GetAnalytics("act_1", "", false)
	require.NoError(t, err)

	assert.Equal(t, domain.DatePresetMaximum, report.DatePreset)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, TotalLabel, report.Rows[0].DateLabel)
	assert.Equal(t, "Camp", report.Rows[0].Name)
}

func TestGetAnalytics_QuebraPorDia(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	integrator.EXPECT().GetInsights("123", "last_7d", true).Return([]domain.InsightsRow{
		{AdName: "Ad", DateStart: "2024-01-01"},
		{AdName: "Ad", DateStart: "2024-01-02"},
	}, nil)

	report, err := NewService(integrator).GetAnalytics("123", "last_7d", true)
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "2024-01-01", report.Rows[0].DateLabel)
	assert.Equal(t, "2024-01-02", report.Rows[1].DateLabel)
}

func TestGetAnalytics_ErroDaAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	apiErr := metaclient.NewAPIError(400, []byte(`{"error":{"message":"Invalid parameter"}}`))
	integrator.EXPECT().GetInsights("123", "today", false).Return(nil, apiErr)

	report, err := NewService(integrator).GetAnalytics("123", "today", false)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apiErr)
}
