package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-navigator/internal/usecases/billing"
	"github.com/vfg2006/meta-ads-navigator/pkg/log"
)

func GetAccountBalance(service billing.BalanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := pathParam(w, r, "account")
		if !ok {
			return
		}
		log.ForContext(r.Context()).WithField("account", account).Info("balance: fetching account balance")

		report, err := service.GetAccountBalance(account)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		respond(w, r, report, billing.RenderBalance(report))
	})
}
