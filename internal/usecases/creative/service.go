package creative

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

// PlaceholderValue é o valor que a API usa em campos sem conteúdo
const PlaceholderValue = "N/A"

type CreativeService interface {
	GetAdCreativeDetails(adID string) (*domain.CreativeReport, error)
}

type Service struct {
	metaService meta.Integrator
}

func NewService(metaService meta.Integrator) CreativeService {
	return &Service{
		metaService: metaService,
	}
}

// GetAdCreativeDetails faz duas chamadas em sequência: o anúncio aponta para o
// criativo e só então o criativo é consultado.
func (s *Service) GetAdCreativeDetails(adID string) (*domain.CreativeReport, error) {
	creativeID, err := s.metaService.GetCreativeIDByAdID(adID)
	if err != nil {
		return nil, err
	}

	if creativeID == "" {
		logrus.WithField("ad_id", adID).Info("creative: ad has no creative reference")
		return nil, fmt.Errorf("%w: anúncio %s", ErrCreativeNotFound, adID)
	}

	details, err := s.metaService.GetCreative(creativeID)
	if err != nil {
		return nil, err
	}

	return Resolve(adID, details), nil
}

// Resolve aplica o fallback para o post vinculado (object_story_spec.link_data)
// em título, texto e imagem ausentes ou iguais a "N/A"
func Resolve(adID string, details *domain.CreativeDetails) *domain.CreativeReport {
	if details == nil {
		details = &domain.CreativeDetails{}
	}

	report := &domain.CreativeReport{
		AdID:       adID,
		CreativeID: details.ID,
		Title:      details.Title,
		Body:       details.Body,
		ImageURL:   firstPresent(details.ImageURL, details.ThumbnailURL),
		CTAType:    details.CTAType,
	}

	if story := details.Story; story != nil {
		if isMissing(report.Title) {
			report.Title = story.Name
		}
		if isMissing(report.Body) {
			report.Body = story.Message
		}
		if isMissing(report.ImageURL) {
			report.ImageURL = story.Picture
		}
	}

	return report
}

func isMissing(value string) bool {
	return value == "" || value == PlaceholderValue
}

func firstPresent(values ...string) string {
	for _, v := range values {
		if !isMissing(v) {
			return v
		}
	}

	return ""
}
