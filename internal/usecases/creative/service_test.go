package creative

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetAdCreativeDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	gomock.InOrder(
		integrator.EXPECT().GetCreativeIDByAdID("ad1").Return("cr1", nil),
		integrator.EXPECT().GetCreative("cr1").Return(&domain.CreativeDetails{
			ID:       "cr1",
			Title:    "Promoção",
			Body:     "Só hoje",
			ImageURL: "https://img/a.jpg",
			CTAType:  "SHOP_NOW",
		}, nil),
	)

	report, err := NewService(integrator).GetAdCreativeDetails("ad1")
	require.NoError(t, err)

	assert.Equal(t, "ad1", report.AdID)
	assert.Equal(t, "cr1", report.CreativeID)
	assert.Equal(t, "Promoção", report.Title)

	expected := "🎨 Detalhes do Criativo (ID: cr1):\n" +
		"📌 Título: Promoção\n" +
		"📝 Texto (Body): Só hoje\n" +
		"🖼️ Imagem/Thumb: https://img/a.jpg\n" +
		"👉 CTA: SHOP_NOW\n"
	assert.Equal(t, expected, RenderCreative(report))
}

func TestGetAdCreativeDetails_SemCriativo(t *testing.T) {
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockIntegrator(ctrl)

	integrator.EXPECT().GetCreativeIDByAdID("ad1").Return("", nil)

	report, err := NewService(integrator).GetAdCreativeDetails("ad1")
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, ErrCreativeNotFound))
}

func TestResolve_Fallback(t *testing.T) {
	story := &domain.LinkedStory{Name: "Título do post", Message: "Texto do post", Picture: "https://img/post.jpg"}

	tests := []struct {
		name          string
		details       *domain.CreativeDetails
		expectedTitle string
		expectedBody  string
		expectedImage string
	}{
		{
			name:          "título ausente usa o post vinculado",
			details:       &domain.CreativeDetails{ID: "cr1", Body: "Texto", ImageURL: "https://img/a.jpg", Story: story},
			expectedTitle: "Título do post",
			expectedBody:  "Texto",
			expectedImage: "https://img/a.jpg",
		},
		{
			name:          "valores N/A usam o post vinculado",
			details:       &domain.CreativeDetails{ID: "cr1", Title: "N/A", Body: "N/A", ImageURL: "N/A", Story: story},
			expectedTitle: "Título do post",
			expectedBody:  "Texto do post",
			expectedImage: "https://img/post.jpg",
		},
		{
			name:          "thumbnail antes da imagem do post",
			details:       &domain.CreativeDetails{ID: "cr1", ThumbnailURL: "https://img/thumb.jpg", Story: story},
			expectedTitle: "Título do post",
			expectedBody:  "Texto do post",
			expectedImage: "https://img/thumb.jpg",
		},
		{
			name:          "campos diretos têm prioridade",
			details:       &domain.CreativeDetails{ID: "cr1", Title: "T", Body: "B", ImageURL: "https://img/a.jpg", ThumbnailURL: "https://img/thumb.jpg", Story: story},
			expectedTitle: "T",
			expectedBody:  "B",
			expectedImage: "https://img/a.jpg",
		},
		{
			name:          "sem post vinculado",
			details:       &domain.CreativeDetails{ID: "cr1"},
			expectedTitle: "",
			expectedBody:  "",
			expectedImage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Resolve("ad1", tt.details)
			assert.Equal(t, tt.expectedTitle, report.Title)
			assert.Equal(t, tt.expectedBody, report.Body)
			assert.Equal(t, tt.expectedImage, report.ImageURL)
		})
	}
}

func TestRenderCreative_Placeholders(t *testing.T) {
	rendered := RenderCreative(&domain.CreativeReport{CreativeID: "cr1"})

	assert.Contains(t, rendered, "📌 Título: N/A (Post Existente?)\n")
	assert.Contains(t, rendered, "📝 Texto (Body): N/A\n")
	assert.Contains(t, rendered, "👉 CTA: N/A\n")
}
