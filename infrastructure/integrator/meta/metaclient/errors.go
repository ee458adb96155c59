package metaclient

import (
	"fmt"

	metadomain "github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/domain"
)

// APIError é uma resposta não-2xx da API do Meta. Body guarda o corpo cru,
// que é devolvido ao chamador sem alterações.
type APIError struct {
	StatusCode int
	Body       string
	Details    *metadomain.ErrorResponse
}

func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var details metadomain.ErrorResponse
	if err := json.Unmarshal(body, &details); err == nil && (details.Error.Code != 0 || details.Error.Message != "") {
		apiErr.Details = &details
	}

	return apiErr
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meta api error (status %d): %s", e.StatusCode, e.Body)
}

func (e *APIError) IsTokenExpired() bool {
	return e.Details.IsTokenExpired()
}

func (e *APIError) IsNotFound() bool {
	return e.Details.IsNotFound()
}
