package meta

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/metaclient/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetAds_ParentIDEhOAdSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetAdsByCampaignID("c1").Return([]metadomain.Ad{
		{ID: "a2", Name: "Anúncio 2", Status: "ACTIVE", AdSetID: "s9"},
		{ID: "a1", Name: "Anúncio 1", Status: "PAUSED", AdSetID: "s3"},
	}, nil)

	nodes, err := New(client).GetAds("c1")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "a2", nodes[0].ID)
	assert.Equal(t, "s9", nodes[0].ParentID)
	assert.Equal(t, "s3", nodes[1].ParentID)
}

func TestGetCampaigns_PropagaErroDaAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	apiErr := metaclient.NewAPIError(400, []byte(`{"error":{"message":"bad"}}`))
	client.EXPECT().GetAdCampaignsByAccountID("act_1").Return(nil, apiErr)

	nodes, err := New(client).GetCampaigns("act_1")
	assert.Nil(t, nodes)

	var target *metaclient.APIError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, `{"error":{"message":"bad"}}`, target.Body)
}

func TestGetInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		GetInsightsByObjectID("555", &metaclient.InsightParams{DatePreset: "last_7d", BreakdownByTime: true}).
		Return([]metadomain.InsightRow{
			{
				AdName:      "Anúncio",
				Spend:       "12.5",
				Impressions: "1000",
				Clicks:      "abc",
				CTR:         "1.2",
				Actions: []metadomain.Action{
					{ActionType: "purchase", Value: "3"},
				},
				DateStart: "2024-01-01",
			},
			{Spend: "não-numérico"},
		}, nil)

	rows, err := New(client).GetInsights("555", "last_7d", true)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 12.5, rows[0].Spend)
	assert.Equal(t, int64(1000), rows[0].Impressions)
	assert.Equal(t, int64(0), rows[0].Clicks)
	assert.Equal(t, "1.2", rows[0].CTR)
	assert.Equal(t, "purchase", rows[0].Actions[0].ActionType)
	assert.Equal(t, "3", rows[0].Actions[0].Value)
	assert.Nil(t, rows[0].ActionValues)
	assert.Equal(t, "2024-01-01", rows[0].DateStart)

	assert.Equal(t, 0.0, rows[1].Spend)
}

func TestGetCreativeIDByAdID(t *testing.T) {
	tests := []struct {
		name     string
		ad       *metadomain.Ad
		expected string
	}{
		{"anúncio com criativo", &metadomain.Ad{ID: "1", Creative: &metadomain.AdCreativeRef{ID: "cr1"}}, "cr1"},
		{"anúncio sem criativo", &metadomain.Ad{ID: "1"}, ""},
		{"resposta vazia", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			client.EXPECT().GetAdByID("1").Return(tt.ad, nil)

			id, err := New(client).GetCreativeIDByAdID("1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestFactoryCreativeDetails(t *testing.T) {
	details := FactoryCreativeDetails("cr1", &metadomain.Creative{
		Title:            "N/A",
		ThumbnailURL:     "https://img/thumb.jpg",
		CallToActionType: "SHOP_NOW",
		ObjectStorySpec: &metadomain.ObjectStorySpec{
			LinkData: &metadomain.LinkData{Name: "Título do post", Message: "Texto", Picture: "https://img/post.jpg"},
		},
	})

	assert.Equal(t, "cr1", details.ID)
	assert.Equal(t, "N/A", details.Title)
	assert.Equal(t, "SHOP_NOW", details.CTAType)
	require.NotNil(t, details.Story)
	assert.Equal(t, "Título do post", details.Story.Name)
	assert.Equal(t, "https://img/post.jpg", details.Story.Picture)

	empty := FactoryCreativeDetails("cr2", nil)
	assert.Equal(t, "cr2", empty.ID)
	assert.Nil(t, empty.Story)
}

func TestFactoryAccountFinancials(t *testing.T) {
	tests := []struct {
		name        string
		account     *metadomain.AdAccount
		expectedCap *int64
	}{
		{
			name:        "com limite de gastos",
			account:     &metadomain.AdAccount{Balance: "5000", AmountSpent: "120000", SpendCap: "500000", AccountStatus: "1"},
			expectedCap: int64Ptr(500000),
		},
		{
			name:        "sem limite de gastos",
			account:     &metadomain.AdAccount{Balance: "5000", AmountSpent: "120000", AccountStatus: "1"},
			expectedCap: nil,
		},
		{
			name:        "limite zerado é repassado para o normalizador",
			account:     &metadomain.AdAccount{SpendCap: "0", AccountStatus: "2"},
			expectedCap: int64Ptr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			financials := FactoryAccountFinancials(tt.account)
			assert.Equal(t, tt.expectedCap, financials.SpendCapCents)
		})
	}

	financials := FactoryAccountFinancials(&metadomain.AdAccount{
		Name: "Loja", Currency: "BRL", Balance: "5000", AmountSpent: "120000", AccountStatus: "3",
	})
	assert.Equal(t, "Loja", financials.Name)
	assert.Equal(t, int64(5000), financials.BalanceCents)
	assert.Equal(t, int64(120000), financials.AmountSpentCents)
	assert.Equal(t, 3, financials.StatusCode)
}

func int64Ptr(v int64) *int64 {
	return &v
}
