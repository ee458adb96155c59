package billing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/pkg/utils"
)

const (
	remainingLinePrefix = "⚠️ Restante antes de travar:"
	reportSeparator     = "-----------------------------------"
)

func RenderBalance(report *domain.FinancialReport) string {
	if report == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💳 Financeiro da Conta: %s (%s)\n", report.Name, report.AccountID)
	fmt.Fprintf(&b, "Status: %s\n", report.StatusLabel)
	b.WriteString(reportSeparator + "\n")
	fmt.Fprintf(&b, "💰 Balance (A Pagar/Crédito): %s %s\n", report.Currency, utils.FormatMoney(report.Balance))
	fmt.Fprintf(&b, "📉 Total Gasto (Vitalício): %s %s\n", report.Currency, utils.FormatMoney(report.AmountSpent))

	if report.HasSpendCap() {
		fmt.Fprintf(&b, "🚧 Limite da Conta (Cap): %s %s\n", report.Currency, utils.FormatMoney(*report.SpendCap))
		fmt.Fprintf(&b, "%s %s %s\n", remainingLinePrefix, report.Currency, utils.FormatMoney(*report.Remaining))
	}

	return b.String()
}
