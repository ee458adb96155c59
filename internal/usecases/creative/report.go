package creative

import (
	"fmt"
	"strings"

	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

const missingTitleLabel = "N/A (Post Existente?)"

func RenderCreative(report *domain.CreativeReport) string {
	if report == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎨 Detalhes do Criativo (ID: %s):\n", report.CreativeID)
	fmt.Fprintf(&b, "📌 Título: %s\n", valueOr(report.Title, missingTitleLabel))
	fmt.Fprintf(&b, "📝 Texto (Body): %s\n", valueOr(report.Body, PlaceholderValue))
	fmt.Fprintf(&b, "🖼️ Imagem/Thumb: %s\n", valueOr(report.ImageURL, PlaceholderValue))
	fmt.Fprintf(&b, "👉 CTA: %s\n", valueOr(report.CTAType, PlaceholderValue))

	return b.String()
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
