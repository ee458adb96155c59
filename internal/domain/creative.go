package domain

// LinkedStory é o link_data do post vinculado (object_story_spec)
type LinkedStory struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// CreativeDetails é o criativo como veio da API; os campos de texto são opcionais
type CreativeDetails struct {
	ID           string       `json:"id"`
	Title        string       `json:"title,omitempty"`
	Body         string       `json:"body,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	ThumbnailURL string       `json:"thumbnail_url,omitempty"`
	CTAType      string       `json:"cta_type,omitempty"`
	Story        *LinkedStory `json:"story,omitempty"`
}

// CreativeReport é o criativo depois do fallback para o post vinculado
type CreativeReport struct {
	AdID       string `json:"ad_id"`
	CreativeID string `json:"creative_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	ImageURL   string `json:"image_url"`
	CTAType    string `json:"cta_type"`
}
