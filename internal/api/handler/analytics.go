package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/meta-ads-navigator/internal/usecases/insighting"
	"github.com/vfg2006/meta-ads-navigator/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-navigator/pkg/log"
)

func GetAnalytics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		objectID, ok := pathParam(w, r, "object_id")
		if !ok {
			return
		}
		datePreset := r.URL.Query().Get("date_preset")

		breakdownByTime := false
		if raw := r.URL.Query().Get("breakdown_by_time"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"object_id":         objectID,
					"breakdown_by_time": raw,
				}).Warn("insights: invalid breakdown_by_time parameter")

				writeBadRequest(w, r, apiErrors.ErrInvalidFormat, "breakdown_by_time deve ser true ou false")
				return
			}
			breakdownByTime = parsed
		}

		logger.WithFields(log.Fields{
			"object_id":   objectID,
			"date_preset": datePreset,
		}).Info("insights: fetching analytics")

		report, err := service.GetAnalytics(objectID, datePreset, breakdownByTime)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		respond(w, r, report, insighting.RenderAnalytics(report))
	})
}
