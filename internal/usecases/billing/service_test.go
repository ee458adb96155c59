package billing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metamocks "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving"
	resolvingmocks "github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving/mocks"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name              string
		financials        *domain.AccountFinancials
		expectedBalance   float64
		expectedSpent     float64
		expectedCap       *float64
		expectedRemaining *float64
	}{
		{
			name:            "centavos para reais",
			financials:      &domain.AccountFinancials{BalanceCents: 12345, AmountSpentCents: 100},
			expectedBalance: 123.45,
			expectedSpent:   1,
		},
		{
			name:              "com limite de gastos",
			financials:        &domain.AccountFinancials{AmountSpentCents: 150000, SpendCapCents: int64Ptr(500000)},
			expectedSpent:     1500,
			expectedCap:       floatPtr(5000),
			expectedRemaining: floatPtr(3500),
		},
		{
			name:              "restante negativo quando o gasto passou do limite",
			financials:        &domain.AccountFinancials{AmountSpentCents: 600000, SpendCapCents: int64Ptr(500000)},
			expectedSpent:     6000,
			expectedCap:       floatPtr(5000),
			expectedRemaining: floatPtr(-1000),
		},
		{
			name:          "limite zero é omitido",
			financials:    &domain.AccountFinancials{AmountSpentCents: 100, SpendCapCents: int64Ptr(0)},
			expectedSpent: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Normalize("act_1", tt.financials)

			assert.InDelta(t, tt.expectedBalance, report.Balance, 0.0001)
			assert.InDelta(t, tt.expectedSpent, report.AmountSpent, 0.0001)

			if tt.expectedCap == nil {
				assert.Nil(t, report.SpendCap)
				assert.Nil(t, report.Remaining)
				assert.False(t, report.HasSpendCap())
				return
			}

			require.True(t, report.HasSpendCap())
			assert.InDelta(t, *tt.expectedCap, *report.SpendCap, 0.0001)
			assert.InDelta(t, *tt.expectedRemaining, *report.Remaining, 0.0001)
		})
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{1, "🟢 Ativa"},
		{2, "🔴 Desativada"},
		{3, "🟠 Não Liquidada (Pagamento Pendente)"},
		{7, "⏳ Pendente de Revisão"},
		{8, "⏳ Pendente de Liquidação"},
		{9, "📅 Em Período de Graça"},
		{101, "Status código 101"},
		{0, "Status código 0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StatusLabel(tt.code))
	}
}

func TestGetAccountBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := resolvingmocks.NewMockResolver(ctrl)
	integrator := metamocks.NewMockIntegrator(ctrl)

	resolver.EXPECT().Resolve("Loja Centro").Return("act_42", nil)
	integrator.EXPECT().GetAccountFinancials("act_42").Return(&domain.AccountFinancials{
		Name:             "Loja Centro",
		BalanceCents:     12345,
		AmountSpentCents: 123456789,
		StatusCode:       1,
	}, nil)

	report, err := NewService(resolver, integrator).GetAccountBalance("Loja Centro")
	require.NoError(t, err)

	assert.Equal(t, "act_42", report.AccountID)
	assert.Equal(t, "BRL", report.Currency)
	assert.Equal(t, 123.45, report.Balance)

	expected := "💳 Financeiro da Conta: Loja Centro (act_42)\n" +
		"Status: 🟢 Ativa\n" +
		"-----------------------------------\n" +
		"💰 Balance (A Pagar/Crédito): BRL 123.45\n" +
		"📉 Total Gasto (Vitalício): BRL 1,234,567.89\n"
	rendered := RenderBalance(report)
	assert.Equal(t, expected, rendered)
	assert.NotContains(t, rendered, remainingLinePrefix)
}

func TestGetAccountBalance_ComLimite(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := resolvingmocks.NewMockResolver(ctrl)
	integrator := metamocks.NewMockIntegrator(ctrl)

	resolver.EXPECT().Resolve("act_42").Return("act_42", nil)
	integrator.EXPECT().GetAccountFinancials("act_42").Return(&domain.AccountFinancials{
		Name:             "Loja",
		Currency:         "USD",
		AmountSpentCents: 600000,
		SpendCapCents:    int64Ptr(500000),
		StatusCode:       3,
	}, nil)

	report, err := NewService(resolver, integrator).GetAccountBalance("act_42")
	require.NoError(t, err)

	rendered := RenderBalance(report)
	assert.Contains(t, rendered, "Status: 🟠 Não Liquidada (Pagamento Pendente)\n")
	assert.Contains(t, rendered, "🚧 Limite da Conta (Cap): USD 5,000.00\n")
	assert.Contains(t, rendered, remainingLinePrefix+" USD -1,000.00\n")
}

func TestGetAccountBalance_ClienteNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := resolvingmocks.NewMockResolver(ctrl)
	integrator := metamocks.NewMockIntegrator(ctrl)

	resolver.EXPECT().Resolve("ninguém").Return("", resolving.NewResolveError("ninguém"))

	report, err := NewService(resolver, integrator).GetAccountBalance("ninguém")
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, resolving.ErrAccountNotFound))
}
