package metaclient

import (
	"net/url"

	metadomain "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/domain"
)

// GetAdAccountByID consulta o endpoint da conta (não o de insights) para obter os dados financeiros
func (c *MetaClient) GetAdAccountByID(accountID string) (*metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "name,balance,currency,amount_spent,spend_cap,account_status,min_daily_budget")

	var account metadomain.AdAccount
	if err := c.get(accountID, "", params, &account); err != nil {
		return nil, err
	}

	return &account, nil
}
