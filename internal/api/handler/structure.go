package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-navigator/internal/usecases/navigating"
	"github.com/vfg2006/meta-ads-navigator/pkg/log"
)

// GetStructure lista campanhas da conta ou, com ?campaign_id=, conjuntos e anúncios
func GetStructure(service navigating.Navigator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := pathParam(w, r, "account")
		if !ok {
			return
		}
		campaignID := r.URL.Query().Get("campaign_id")

		log.ForContext(r.Context()).WithFields(log.Fields{
			"account":     account,
			"campaign_id": campaignID,
		}).Info("structure: drilling down hierarchy")

		view, err := service.DrillDown(account, campaignID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		respond(w, r, view, navigating.RenderStructure(view))
	})
}
