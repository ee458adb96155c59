package billing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving"
)

// centsPerUnit é a convenção da API do Meta para valores monetários, independente da moeda
const centsPerUnit = 100.0

const defaultCurrency = "BRL"

type BalanceService interface {
	GetAccountBalance(accountIdentifier string) (*domain.FinancialReport, error)
}

type Service struct {
	resolver    resolving.Resolver
	metaService meta.Integrator
}

func NewService(resolver resolving.Resolver, metaService meta.Integrator) BalanceService {
	return &Service{
		resolver:    resolver,
		metaService: metaService,
	}
}

func (s *Service) GetAccountBalance(accountIdentifier string) (*domain.FinancialReport, error) {
	accountID, err := s.resolver.Resolve(accountIdentifier)
	if err != nil {
		return nil, err
	}

	financials, err := s.metaService.GetAccountFinancials(accountID)
	if err != nil {
		return nil, err
	}

	report := Normalize(accountID, financials)

	logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"status_code": report.StatusCode,
		"has_cap":     report.HasSpendCap(),
	}).Debug("balance: financial report built")

	return report, nil
}

// Normalize converte centavos para a unidade principal e calcula o restante
// até o limite de gastos. Limite ausente ou zero omite limite e restante.
func Normalize(accountID string, financials *domain.AccountFinancials) *domain.FinancialReport {
	if financials == nil {
		financials = &domain.AccountFinancials{}
	}

	currency := financials.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	report := &domain.FinancialReport{
		AccountID:   accountID,
		Name:        financials.Name,
		Currency:    currency,
		Balance:     centsToUnits(financials.BalanceCents),
		AmountSpent: centsToUnits(financials.AmountSpentCents),
		StatusCode:  financials.StatusCode,
		StatusLabel: StatusLabel(financials.StatusCode),
	}

	if financials.SpendCapCents != nil && *financials.SpendCapCents != 0 {
		spendCap := centsToUnits(*financials.SpendCapCents)
		remaining := spendCap - report.AmountSpent
		report.SpendCap = &spendCap
		report.Remaining = &remaining
	}

	return report
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / centsPerUnit
}
