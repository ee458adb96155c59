package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-navigator/internal/config"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	billingmocks "github.com/vfg2006/meta-ads-navigator/internal/usecases/billing/mocks"
	resolvingmocks "github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving/mocks"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestBalanceWatchService_checkAccounts(t *testing.T) {
	clients := []domain.Client{
		{Name: "Loja A", AccountID: "act_1"},
		{Name: "Loja B", AccountID: "act_2"},
		{Name: "Loja C", AccountID: "act_3"},
		{Name: "Loja D", AccountID: "act_4"},
	}

	tests := []struct {
		name     string
		setup    func(m *billingmocks.MockBalanceService)
		validate func(t *testing.T, alerts []BalanceAlert)
	}{
		{
			name: "Contas ativas e com folga - nenhum alerta",
			setup: func(m *billingmocks.MockBalanceService) {
				m.EXPECT().GetAccountBalance(gomock.Any()).Times(4).Return(&domain.FinancialReport{
					StatusCode: 1,
					SpendCap:   floatPtr(5000),
					Remaining:  floatPtr(3000),
				}, nil)
			},
			validate: func(t *testing.T, alerts []BalanceAlert) {
				assert.Empty(t, alerts)
			},
		},
		{
			name: "Conta inativa, conta sem folga, conta sem limite e falha na API",
			setup: func(m *billingmocks.MockBalanceService) {
				m.EXPECT().GetAccountBalance("act_1").Return(&domain.FinancialReport{
					StatusCode:  3,
					StatusLabel: "🟠 Não Liquidada (Pagamento Pendente)",
				}, nil)
				m.EXPECT().GetAccountBalance("act_2").Return(&domain.FinancialReport{
					StatusCode: 1,
					SpendCap:   floatPtr(5000),
					Remaining:  floatPtr(-20),
				}, nil)
				m.EXPECT().GetAccountBalance("act_3").Return(&domain.FinancialReport{StatusCode: 1}, nil)
				m.EXPECT().GetAccountBalance("act_4").Return(nil, metaclient.NewAPIError(500, []byte("boom")))
			},
			validate: func(t *testing.T, alerts []BalanceAlert) {
				require.Len(t, alerts, 3)

				assert.Equal(t, "act_1", alerts[0].AccountID)
				assert.Equal(t, AlertReasonInactive, alerts[0].Reason)

				assert.Equal(t, "act_2", alerts[1].AccountID)
				assert.Equal(t, AlertReasonLowRemaining, alerts[1].Reason)
				require.NotNil(t, alerts[1].Remaining)
				assert.Equal(t, -20.0, *alerts[1].Remaining)

				assert.Equal(t, "act_4", alerts[2].AccountID)
				assert.Equal(t, AlertReasonLookupFailed, alerts[2].Reason)
				assert.Contains(t, alerts[2].Error, "boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockBilling := billingmocks.NewMockBalanceService(ctrl)
			tt.setup(mockBilling)

			service := &BalanceWatchService{
				config:         BalanceWatchConfig{LowRemaining: 100},
				billingService: mockBilling,
			}

			tt.validate(t, service.checkAccounts("run1", clients))
		})
	}
}

func TestBalanceWatchService_runBalanceWatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockResolver := resolvingmocks.NewMockResolver(ctrl)
	mockBilling := billingmocks.NewMockBalanceService(ctrl)

	mockResolver.EXPECT().ListClients().Return([]domain.Client{{Name: "Loja", AccountID: "act_9"}})
	mockBilling.EXPECT().GetAccountBalance("act_9").Return(&domain.FinancialReport{
		StatusCode:  2,
		StatusLabel: "🔴 Desativada",
	}, nil)

	service := NewBalanceWatchService(mockResolver, mockBilling, &config.Config{
		BalanceWatch: config.BalanceWatch{CronSchedule: "0 8 * * *", LowRemaining: 100},
	})

	service.runBalanceWatch()

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.NotEmpty(t, status["last_run_id"])
	assert.False(t, status["last_run_completed_at"].(time.Time).IsZero())

	alerts := status["last_alerts"].([]BalanceAlert)
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertReasonInactive, alerts[0].Reason)
	assert.Equal(t, "🔴 Desativada", alerts[0].StatusLabel)
}

func TestBalanceWatchService_StartDesabilitado(t *testing.T) {
	service := NewBalanceWatchService(nil, nil, &config.Config{})

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["watch_enabled"])
}

func TestBalanceWatchService_TriggerManualSyncEmAndamento(t *testing.T) {
	service := &BalanceWatchService{watchRunning: true}

	assert.False(t, service.TriggerManualSync())
}
