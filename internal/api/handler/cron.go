package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/pkg/apiErrors"
)

const CronJobTypeBalanceWatch = "balance-watch"

// CronJob é o que os handlers precisam de um job agendado
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	BalanceWatch CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypeBalanceWatch:
		return s.BalanceWatch, true
	default:
		return nil, false
	}
}

// RunCronJob executa manualmente um job
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logrus.WithField("type", cronType).Info("cron: manual run requested")

		job, known := services.byType(cronType)
		if !known {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: balance-watch", nil)
			return
		}

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de monitoramento de saldo não disponível", nil)
			return
		}

		started := job.TriggerManualSync()

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em andamento"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status dos jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.BalanceWatch != nil {
			status[CronJobTypeBalanceWatch] = services.BalanceWatch.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
