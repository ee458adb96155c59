package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving"
)

// HealthcheckHandler informa quantos clientes o diretório carregou na inicialização
func HealthcheckHandler(resolver resolving.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clients := 0
		if resolver != nil {
			clients = len(resolver.ListClients())
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"clients": clients,
			"time":    time.Now().Format(time.RFC3339),
		})
	})
}
