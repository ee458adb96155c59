package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/internal/config"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/billing"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving"
	"github.com/vfg2006/meta-ads-navigator/pkg/utils"
)

const (
	AlertReasonInactive     = "inactive"
	AlertReasonLowRemaining = "low_remaining"
	AlertReasonLookupFailed = "lookup_failed"
)

// BalanceWatchConfig representa a configuração do monitoramento de saldo
type BalanceWatchConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	LowRemaining        float64
	WatchEnabled        bool
}

// BalanceAlert é uma conta que precisa de atenção na última execução
type BalanceAlert struct {
	AccountID   string   `json:"account_id"`
	Name        string   `json:"name"`
	Reason      string   `json:"reason"`
	StatusLabel string   `json:"status_label,omitempty"`
	Remaining   *float64 `json:"remaining,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// BalanceWatchService percorre o diretório de clientes e registra contas
// inativas ou perto do limite de gastos. Não altera nada no Meta.
type BalanceWatchService struct {
	scheduler      *gocron.Scheduler
	config         BalanceWatchConfig
	resolver       resolving.Resolver
	billingService billing.BalanceService

	watchMutex         sync.Mutex
	watchRunning       bool
	lastRunID          string
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastAlerts         []BalanceAlert
}

func NewBalanceWatchService(
	resolver resolving.Resolver,
	billingService billing.BalanceService,
	appConfig *config.Config,
) *BalanceWatchService {
	watchConfig := BalanceWatchConfig{
		CronSchedule:        appConfig.BalanceWatch.CronSchedule,
		RequestDelaySeconds: appConfig.BalanceWatch.RequestDelaySeconds,
		LowRemaining:        appConfig.BalanceWatch.LowRemaining,
		WatchEnabled:        appConfig.BalanceWatch.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         watchConfig.CronSchedule,
		"request_delay_seconds": watchConfig.RequestDelaySeconds,
		"low_remaining":         watchConfig.LowRemaining,
		"watch_enabled":         watchConfig.WatchEnabled,
	}).Info("Configuração do monitoramento de saldo carregada")

	return &BalanceWatchService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         watchConfig,
		resolver:       resolver,
		billingService: billingService,
	}
}

// Start inicia o agendador
func (s *BalanceWatchService) Start(ctx context.Context) error {
	if !s.config.WatchEnabled {
		logrus.Info("Monitoramento de saldo desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de monitoramento de saldo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runBalanceWatch()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitoramento de saldo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de monitoramento de saldo")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *BalanceWatchService) runBalanceWatch() {
	s.watchMutex.Lock()
	if s.watchRunning {
		s.watchMutex.Unlock()
		logrus.Info("Monitoramento de saldo já em andamento, ignorando")
		return
	}
	s.watchRunning = true

	runID, err := utils.GenerateID()
	if err != nil {
		runID = time.Now().Format("20060102150405")
	}
	startTime := time.Now()
	s.lastRunID = runID
	s.lastRunStartedAt = startTime
	s.watchMutex.Unlock()

	defer func() {
		s.watchMutex.Lock()
		s.watchRunning = false
		s.watchMutex.Unlock()
	}()

	clients := s.resolver.ListClients()
	if len(clients) == 0 {
		logrus.WithField("run_id", runID).Info("Nenhum cliente configurado para monitoramento de saldo")
		s.finishRun(nil)
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":  runID,
		"clients": len(clients),
	}).Info("Iniciando monitoramento de saldo")

	alerts := s.checkAccounts(runID, clients)
	s.finishRun(alerts)

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": time.Since(startTime).String(),
		"clients":  len(clients),
		"alerts":   len(alerts),
	}).Info("Monitoramento de saldo concluído")
}

func (s *BalanceWatchService) finishRun(alerts []BalanceAlert) {
	s.watchMutex.Lock()
	defer s.watchMutex.Unlock()

	s.lastAlerts = alerts
	s.lastRunCompletedAt = time.Now()
}

// checkAccounts consulta as contas uma a uma, com pausa entre as chamadas
func (s *BalanceWatchService) checkAccounts(runID string, clients []domain.Client) []BalanceAlert {
	alerts := make([]BalanceAlert, 0)

	for i, client := range clients {
		if i > 0 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		report, err := s.billingService.GetAccountBalance(client.AccountID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"run_id":     runID,
				"client":     client.Name,
				"account_id": client.AccountID,
				"error":      err.Error(),
			}).Error("Erro ao consultar saldo da conta")
			alerts = append(alerts, BalanceAlert{
				AccountID: client.AccountID,
				Name:      client.Name,
				Reason:    AlertReasonLookupFailed,
				Error:     err.Error(),
			})
			continue
		}

		alerts = append(alerts, s.evaluate(runID, client, report)...)
	}

	return alerts
}

func (s *BalanceWatchService) evaluate(runID string, client domain.Client, report *domain.FinancialReport) []BalanceAlert {
	var alerts []BalanceAlert

	fields := logrus.Fields{
		"run_id":     runID,
		"client":     client.Name,
		"account_id": client.AccountID,
	}

	if report.StatusCode != billing.AccountStatusActive {
		logrus.WithFields(fields).WithField("status", report.StatusLabel).Warn("Conta de anúncios não está ativa")
		alerts = append(alerts, BalanceAlert{
			AccountID:   client.AccountID,
			Name:        client.Name,
			Reason:      AlertReasonInactive,
			StatusLabel: report.StatusLabel,
		})
	}

	if report.HasSpendCap() && *report.Remaining < s.config.LowRemaining {
		remaining := *report.Remaining
		logrus.WithFields(fields).WithFields(logrus.Fields{
			"remaining": utils.FormatMoney(remaining),
			"currency":  report.Currency,
		}).Warn("Conta perto do limite de gastos")
		alerts = append(alerts, BalanceAlert{
			AccountID:   client.AccountID,
			Name:        client.Name,
			Reason:      AlertReasonLowRemaining,
			StatusLabel: report.StatusLabel,
			Remaining:   &remaining,
		})
	}

	return alerts
}

// TriggerManualSync inicia manualmente uma execução do monitoramento.
// Devolve false quando já existe uma execução em andamento.
func (s *BalanceWatchService) TriggerManualSync() bool {
	s.watchMutex.Lock()
	if s.watchRunning {
		s.watchMutex.Unlock()
		logrus.Info("Monitoramento de saldo já em andamento, ignorando solicitação manual")
		return false
	}
	s.watchMutex.Unlock()

	logrus.Info("Iniciando monitoramento manual de saldo")
	go s.runBalanceWatch()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *BalanceWatchService) GetStatus() map[string]any {
	s.watchMutex.Lock()
	defer s.watchMutex.Unlock()

	alerts := make([]BalanceAlert, len(s.lastAlerts))
	copy(alerts, s.lastAlerts)

	return map[string]any{
		"watch_enabled":         s.config.WatchEnabled,
		"watch_cron":            s.config.CronSchedule,
		"watch_low_remaining":   s.config.LowRemaining,
		"watch_request_delay_s": s.config.RequestDelaySeconds,
		"running":               s.watchRunning,
		"last_run_id":           s.lastRunID,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_alerts":           alerts,
	}
}
