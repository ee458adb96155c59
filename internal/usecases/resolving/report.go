package resolving

import (
	"fmt"
	"strings"

	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

const NoClientsLabel = "Nenhum cliente."

func RenderClients(clients []domain.Client) string {
	if len(clients) == 0 {
		return NoClientsLabel
	}

	lines := make([]string, 0, len(clients))
	for _, c := range clients {
		lines = append(lines, fmt.Sprintf("- %s: %s", c.Name, c.AccountID))
	}

	return strings.Join(lines, "\n")
}
