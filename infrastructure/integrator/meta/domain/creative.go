package metadomain

type Creative struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Title            string           `json:"title"`
	Body             string           `json:"body"`
	ImageURL         string           `json:"image_url"`
	ThumbnailURL     string           `json:"thumbnail_url"`
	CallToActionType string           `json:"call_to_action_type"`
	ObjectStorySpec  *ObjectStorySpec `json:"object_story_spec,omitempty"`
}

// ObjectStorySpec descreve o post vinculado ao criativo (dark posts e posts existentes)
type ObjectStorySpec struct {
	PageID   string    `json:"page_id"`
	LinkData *LinkData `json:"link_data,omitempty"`
}

type LinkData struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Picture string `json:"picture"`
	Link    string `json:"link"`
}
