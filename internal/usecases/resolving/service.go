package resolving

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

type Resolver interface {
	// Resolve converte um nome amigável em act_<dígitos>
	Resolve(identifier string) (string, error)
	ListClients() []domain.Client
}

type Service struct {
	directory *domain.ClientDirectory
}

func NewService(directory *domain.ClientDirectory) Resolver {
	return &Service{
		directory: directory,
	}
}

// Resolve devolve IDs act_ sem consultar o diretório. Para os demais, a
// primeira entrada (ordem de inserção) cujo nome aparece dentro do
// identificador vence, sem diferenciar maiúsculas de minúsculas. Nomes
// ambíguos não são reportados.
func (s *Service) Resolve(identifier string) (string, error) {
	if domain.IsAccountID(identifier) {
		return identifier, nil
	}

	lowered := strings.ToLower(identifier)
	for _, client := range s.directory.Clients() {
		if client.Name == "" {
			continue
		}

		if strings.Contains(lowered, strings.ToLower(client.Name)) {
			logrus.WithFields(logrus.Fields{
				"identifier": identifier,
				"client":     client.Name,
				"account_id": client.AccountID,
			}).Debug("resolving: identifier matched client")
			return client.AccountID, nil
		}
	}

	logrus.WithField("identifier", identifier).Info("resolving: no client matched identifier")

	return "", NewResolveError(identifier)
}

func (s *Service) ListClients() []domain.Client {
	return s.directory.Clients()
}
