package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving"
)

type clientsResponse struct {
	Clients []domain.Client `json:"clients"`
}

func ListClients(resolver resolving.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clients := resolver.ListClients()
		if clients == nil {
			clients = []domain.Client{}
		}

		respond(w, r, clientsResponse{Clients: clients}, resolving.RenderClients(clients))
	})
}
