package insighting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

const (
	NoConversionsLabel = "Nenhuma conversão"
	OtherActionsLabel  = "Outras ações (sem prioridade)"
)

// Tipos de ação destacados no resumo. Variantes de purchase
// (omni_purchase, offsite_conversion.fb_pixel_purchase, ...) entram pela busca parcial.
var priorityActionTypes = map[string]struct{}{
	"purchase":        {},
	"lead":            {},
	"link_click":      {},
	"video_view":      {},
	"post_engagement": {},
}

func isPriorityAction(actionType string) bool {
	if _, ok := priorityActionTypes[actionType]; ok {
		return true
	}

	return strings.Contains(actionType, "purchase")
}

// foldActions agrupa por tipo: o último valor vence, mas a posição é a da
// primeira ocorrência
func foldActions(entries []domain.ActionEntry) ([]string, map[string]string) {
	order := make([]string, 0, len(entries))
	values := make(map[string]string, len(entries))

	for _, e := range entries {
		if _, seen := values[e.ActionType]; !seen {
			order = append(order, e.ActionType)
		}
		values[e.ActionType] = e.Value
	}

	return order, values
}

// SummarizeActions resume a lista de ações em "tipo: valor | tipo: valor"
func SummarizeActions(entries []domain.ActionEntry) string {
	if len(entries) == 0 {
		return NoConversionsLabel
	}

	order, values := foldActions(entries)

	results := make([]string, 0, len(order))
	for _, actionType := range order {
		if isPriorityAction(actionType) {
			results = append(results, fmt.Sprintf("%s: %s", actionType, values[actionType]))
		}
	}

	if len(results) == 0 {
		return OtherActionsLabel
	}

	return strings.Join(results, " | ")
}
