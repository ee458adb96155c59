package navigating

import (
	"fmt"
	"strings"

	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

const (
	adSetsHeader = "--- CONJUNTOS DE ANÚNCIOS ---"
	adsHeader    = "--- ANÚNCIOS ---"
)

func RenderStructure(view *domain.HierarchyView) string {
	if view == nil {
		return ""
	}

	var b strings.Builder

	if view.Level != domain.HierarchyLevelCampaign {
		fmt.Fprintf(&b, "Campanhas na conta %s:\n", view.AccountID)
		for _, c := range view.Campaigns {
			fmt.Fprintf(&b, "ID: %s | [%s] %s\n", c.ID, c.Status, c.Name)
		}
		return b.String()
	}

	fmt.Fprintf(&b, "Estrutura da Campanha %s:\n\n%s\n", view.CampaignID, adSetsHeader)
	for _, a := range view.AdSets {
		fmt.Fprintf(&b, "ID: %s | %s (%s)\n", a.ID, a.Name, a.Status)
	}

	fmt.Fprintf(&b, "\n%s\n", adsHeader)
	for _, a := range view.Ads {
		fmt.Fprintf(&b, "ID: %s | %s (Set: %s)\n", a.ID, a.Name, a.ParentID)
	}

	return b.String()
}
