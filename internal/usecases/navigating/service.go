package navigating

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving"
	"golang.org/x/sync/errgroup"
)

type Navigator interface {
	// DrillDown lista as campanhas da conta ou, com campaignID, os conjuntos e anúncios da campanha
	DrillDown(accountIdentifier, campaignID string) (*domain.HierarchyView, error)
}

type Service struct {
	resolver    resolving.Resolver
	metaService meta.Integrator
}

func NewService(resolver resolving.Resolver, metaService meta.Integrator) Navigator {
	return &Service{
		resolver:    resolver,
		metaService: metaService,
	}
}

func (s *Service) DrillDown(accountIdentifier, campaignID string) (*domain.HierarchyView, error) {
	accountID, err := s.resolver.Resolve(accountIdentifier)
	if err != nil {
		return nil, err
	}

	if campaignID == "" {
		return s.listCampaigns(accountID)
	}

	return s.listCampaignChildren(accountID, campaignID)
}

func (s *Service) listCampaigns(accountID string) (*domain.HierarchyView, error) {
	campaigns, err := s.metaService.GetCampaigns(accountID)
	if err != nil {
		return nil, err
	}

	return &domain.HierarchyView{
		Level:     domain.HierarchyLevelAccount,
		AccountID: accountID,
		Campaigns: campaigns,
	}, nil
}

// listCampaignChildren busca conjuntos e anúncios em paralelo. Cada goroutine
// escreve só na sua variável, então a ordem das seções não depende de qual
// chamada termina primeiro.
func (s *Service) listCampaignChildren(accountID, campaignID string) (*domain.HierarchyView, error) {
	var (
		adsets []domain.HierarchyNode
		ads    []domain.HierarchyNode
		g      errgroup.Group
	)

	g.Go(func() error {
		var err error
		adsets, err = s.metaService.GetAdSets(campaignID)
		return err
	})

	g.Go(func() error {
		var err error
		ads, err = s.metaService.GetAds(campaignID)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("structure: failed to drill down campaign")
		return nil, err
	}

	return &domain.HierarchyView{
		Level:      domain.HierarchyLevelCampaign,
		AccountID:  accountID,
		CampaignID: campaignID,
		AdSets:     adsets,
		Ads:        ads,
	}, nil
}
