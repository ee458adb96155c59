package metaclient

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-navigator/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tamanho fixo de página; não há paginação além da primeira página
const (
	structurePageLimit = "50"
	insightsPageLimit  = "100"
)

// InsightParams são os filtros aceitos por /{object}/insights
type InsightParams struct {
	DatePreset      string
	BreakdownByTime bool
}

type Client interface {
	GetAdCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error)
	GetAdSetsByCampaignID(campaignID string) ([]metadomain.AdSet, error)
	GetAdsByCampaignID(campaignID string) ([]metadomain.Ad, error)
	GetInsightsByObjectID(objectID string, params *InsightParams) ([]metadomain.InsightRow, error)
	GetAdByID(adID string) (*metadomain.Ad, error)
	GetAdCreativeByID(creativeID string) (*metadomain.Creative, error)
	GetAdAccountByID(accountID string) (*metadomain.AdAccount, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Meta.HTTPTimeout,
		},
	}
}

// HandleResponse lê o corpo e transforma respostas fora da faixa 2xx em *APIError.
// Não há nova tentativa: token expirado é apenas registrado no log.
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "metaclient: erro ao ler resposta")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	apiErr := NewAPIError(resp.StatusCode, body)

	fields := logrus.Fields{
		"status_code": resp.StatusCode,
	}
	if resp.Request != nil && resp.Request.URL != nil {
		fields["path"] = resp.Request.URL.Path
	}
	if apiErr.Details != nil {
		fields["meta_code"] = apiErr.Details.Error.Code
		fields["meta_subcode"] = apiErr.Details.Error.ErrorSubcode
		fields["fbtrace_id"] = apiErr.Details.Error.FBTraceID
	}

	if apiErr.IsTokenExpired() {
		logrus.WithFields(fields).Warn("metaclient: token de acesso expirado ou inválido, atualize META_ACCESS_TOKEN")
	} else {
		logrus.WithFields(fields).Error("metaclient: API do Meta respondeu com erro")
	}

	return nil, apiErr
}
