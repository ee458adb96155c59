package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-navigator/internal/usecases/creative"
	"github.com/vfg2006/meta-ads-navigator/pkg/log"
)

func GetAdCreative(service creative.CreativeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adID, ok := pathParam(w, r, "ad_id")
		if !ok {
			return
		}
		log.ForContext(r.Context()).WithField("ad_id", adID).Info("creative: fetching creative details")

		report, err := service.GetAdCreativeDetails(adID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		respond(w, r, report, creative.RenderCreative(report))
	})
}
