package meta

import (
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/pkg/utils"
)

// Integrator converte as respostas cruas da API do Meta nos tipos de domínio
type Integrator interface {
	GetCampaigns(accountID string) ([]domain.HierarchyNode, error)
	GetAdSets(campaignID string) ([]domain.HierarchyNode, error)
	GetAds(campaignID string) ([]domain.HierarchyNode, error)
	GetInsights(objectID, datePreset string, breakdownByTime bool) ([]domain.InsightsRow, error)
	GetCreativeIDByAdID(adID string) (string, error)
	GetCreative(creativeID string) (*domain.CreativeDetails, error)
	GetAccountFinancials(accountID string) (*domain.AccountFinancials, error)
}

type MetaIntegrator struct {
	Client metaclient.Client
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
	}
}

func (s *MetaIntegrator) GetCampaigns(accountID string) ([]domain.HierarchyNode, error) {
	campaigns, err := s.Client.GetAdCampaignsByAccountID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("structure: failed to get campaigns from API")
		return nil, err
	}

	nodes := make([]domain.HierarchyNode, 0, len(campaigns))
	for _, c := range campaigns {
		nodes = append(nodes, domain.HierarchyNode{
			ID:        c.ID,
			Name:      c.Name,
			Status:    c.Status,
			ParentID:  accountID,
			Objective: c.Objective,
		})
	}

	return nodes, nil
}

func (s *MetaIntegrator) GetAdSets(campaignID string) ([]domain.HierarchyNode, error) {
	adsets, err := s.Client.GetAdSetsByCampaignID(campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("structure: failed to get adsets from API")
		return nil, err
	}

	nodes := make([]domain.HierarchyNode, 0, len(adsets))
	for _, a := range adsets {
		nodes = append(nodes, domain.HierarchyNode{
			ID:       a.ID,
			Name:     a.Name,
			Status:   a.Status,
			ParentID: campaignID,
		})
	}

	return nodes, nil
}

// GetAds devolve os anúncios da campanha com o adset dono em ParentID
func (s *MetaIntegrator) GetAds(campaignID string) ([]domain.HierarchyNode, error) {
	ads, err := s.Client.GetAdsByCampaignID(campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("structure: failed to get ads from API")
		return nil, err
	}

	nodes := make([]domain.HierarchyNode, 0, len(ads))
	for _, a := range ads {
		nodes = append(nodes, domain.HierarchyNode{
			ID:       a.ID,
			Name:     a.Name,
			Status:   a.Status,
			ParentID: a.AdSetID,
		})
	}

	return nodes, nil
}

func (s *MetaIntegrator) GetInsights(objectID, datePreset string, breakdownByTime bool) ([]domain.InsightsRow, error) {
	rows, err := s.Client.GetInsightsByObjectID(objectID, &metaclient.InsightParams{
		DatePreset:      datePreset,
		BreakdownByTime: breakdownByTime,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id":   objectID,
			"date_preset": datePreset,
			"error":       err.Error(),
		}).Error("insights: failed to get insights from API")
		return nil, err
	}

	result := make([]domain.InsightsRow, 0, len(rows))
	for i := range rows {
		result = append(result, FactoryInsightsRow(&rows[i]))
	}

	logrus.WithFields(logrus.Fields{
		"object_id": objectID,
		"rows":      len(result),
	}).Debug("insights: successfully retrieved insights")

	return result, nil
}

// GetCreativeIDByAdID devolve "" quando o anúncio não tem criativo vinculado
func (s *MetaIntegrator) GetCreativeIDByAdID(adID string) (string, error) {
	ad, err := s.Client.GetAdByID(adID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Error("creative: failed to get ad from API")
		return "", err
	}

	if ad == nil || ad.Creative == nil {
		return "", nil
	}

	return ad.Creative.ID, nil
}

func (s *MetaIntegrator) GetCreative(creativeID string) (*domain.CreativeDetails, error) {
	creative, err := s.Client.GetAdCreativeByID(creativeID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"creative_id": creativeID,
			"error":       err.Error(),
		}).Error("creative: failed to get creative from API")
		return nil, err
	}

	return FactoryCreativeDetails(creativeID, creative), nil
}

func (s *MetaIntegrator) GetAccountFinancials(accountID string) (*domain.AccountFinancials, error) {
	account, err := s.Client.GetAdAccountByID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("balance: failed to get ad account from API")
		return nil, err
	}

	return FactoryAccountFinancials(account), nil
}

func FactoryInsightsRow(row *metadomain.InsightRow) domain.InsightsRow {
	return domain.InsightsRow{
		AdName:       row.AdName,
		AdSetName:    row.AdSetName,
		CampaignName: row.CampaignName,
		Spend:        parseFloatField("spend", row.Spend),
		Impressions:  parseIntField("impressions", row.Impressions),
		Clicks:       parseIntField("clicks", row.Clicks),
		CPC:          row.CPC.String(),
		CPM:          row.CPM.String(),
		CTR:          row.CTR.String(),
		Frequency:    row.Frequency.String(),
		Actions:      factoryActionEntries(row.Actions),
		ActionValues: factoryActionEntries(row.ActionValues),
		DateStart:    row.DateStart,
	}
}

func FactoryAccountFinancials(account *metadomain.AdAccount) *domain.AccountFinancials {
	if account == nil {
		return &domain.AccountFinancials{}
	}

	financials := &domain.AccountFinancials{
		Name:             account.Name,
		Currency:         account.Currency,
		BalanceCents:     parseIntField("balance", account.Balance),
		AmountSpentCents: parseIntField("amount_spent", account.AmountSpent),
		StatusCode:       int(parseIntField("account_status", account.AccountStatus)),
	}

	if !account.SpendCap.IsEmpty() {
		spendCap := parseIntField("spend_cap", account.SpendCap)
		financials.SpendCapCents = &spendCap
	}

	return financials
}

func FactoryCreativeDetails(creativeID string, creative *metadomain.Creative) *domain.CreativeDetails {
	details := &domain.CreativeDetails{ID: creativeID}
	if creative == nil {
		return details
	}

	if creative.ID != "" {
		details.ID = creative.ID
	}
	details.Title = creative.Title
	details.Body = creative.Body
	details.ImageURL = creative.ImageURL
	details.ThumbnailURL = creative.ThumbnailURL
	details.CTAType = creative.CallToActionType

	if creative.ObjectStorySpec != nil && creative.ObjectStorySpec.LinkData != nil {
		link := creative.ObjectStorySpec.LinkData
		details.Story = &domain.LinkedStory{
			Name:    link.Name,
			Message: link.Message,
			Picture: link.Picture,
		}
	}

	return details
}

func factoryActionEntries(actions []metadomain.Action) []domain.ActionEntry {
	if actions == nil {
		return nil
	}

	entries := make([]domain.ActionEntry, 0, len(actions))
	for _, a := range actions {
		entries = append(entries, domain.ActionEntry{
			ActionType: a.ActionType,
			Value:      a.Value.String(),
		})
	}

	return entries
}

// parseFloatField nunca falha: valor ausente vira 0 e valor inválido vira 0 com aviso no log
func parseFloatField(field string, value metadomain.NumericString) float64 {
	if value.IsEmpty() {
		return 0
	}

	f, ok := utils.ParseFloat(value.String())
	if !ok {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value.String(),
		}).Warn("insights: error converting value to float")
		return 0
	}

	return f
}

func parseIntField(field string, value metadomain.NumericString) int64 {
	if value.IsEmpty() {
		return 0
	}

	if _, ok := utils.ParseFloat(value.String()); !ok {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value.String(),
		}).Warn("insights: error converting value to integer")
		return 0
	}

	return value.Int64()
}
