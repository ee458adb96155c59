package insighting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/pkg/utils"
)

const NoDataLabel = "Sem dados para este período/ID."

const rowSeparator = "  ------------------------------------------------\n"

func RenderAnalytics(report *domain.AnalyticsReport) string {
	if report == nil || len(report.Rows) == 0 {
		return NoDataLabel
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Relatório Analítico para ID %s (%s):\n", report.ObjectID, report.DatePreset)

	for _, m := range report.Rows {
		prefix := "📊 " + m.DateLabel
		if m.DateLabel != TotalLabel {
			prefix = "📅 " + m.DateLabel
		}

		fmt.Fprintf(&b, "%s | %s\n", prefix, m.Name)
		fmt.Fprintf(&b, "  💰 Gasto: R$ %s | Retorno (Value): R$ %s\n", utils.FormatAmount(m.Spend), utils.FormatAmount(m.PurchaseValue))
		fmt.Fprintf(&b, "  📈 ROAS: %sx\n", utils.FormatAmount(m.ROAS))
		fmt.Fprintf(&b, "  🖱️ CPC: R$ %s | CTR: %s%%\n", utils.FormatCurrency(m.CPC), displayOrZero(m.CTR))
		fmt.Fprintf(&b, "  🎯 Conversões: %s\n", m.Conversions)
		b.WriteString(rowSeparator)
	}

	return b.String()
}

func displayOrZero(value string) string {
	if value == "" {
		return "0"
	}

	return value
}
