package insighting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

type Insighter interface {
	// GetAnalytics aceita ID de conta, campanha, conjunto ou anúncio
	GetAnalytics(objectID, datePreset string, breakdownByTime bool) (*domain.AnalyticsReport, error)
}

type Service struct {
	metaService meta.Integrator
}

func NewService(metaService meta.Integrator) Insighter {
	return &Service{
		metaService: metaService,
	}
}

func (s *Service) GetAnalytics(objectID, datePreset string, breakdownByTime bool) (*domain.AnalyticsReport, error) {
	if datePreset == "" {
		datePreset = domain.DatePresetMaximum
	}

	rows, err := s.metaService.GetInsights(objectID, datePreset, breakdownByTime)
	if err != nil {
		return nil, err
	}

	report := &domain.AnalyticsReport{
		ObjectID:        objectID,
		DatePreset:      datePreset,
		BreakdownByTime: breakdownByTime,
		Rows:            make([]domain.RenderedMetric, 0, len(rows)),
	}

	for _, row := range rows {
		// sem quebra por dia o Meta ainda devolve date_start do período inteiro
		if !breakdownByTime {
			row.DateStart = ""
		}
		report.Rows = append(report.Rows, NormalizeRow(row))
	}

	logrus.WithFields(logrus.Fields{
		"object_id":   objectID,
		"date_preset": datePreset,
		"rows":        len(report.Rows),
	}).Debug("insights: analytics report built")

	return report, nil
}
