package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/creative"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving"
	"github.com/vfg2006/meta-ads-navigator/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-navigator/pkg/log"
)

const (
	accountNotFoundMessage  = "Conta não encontrada."
	creativeNotFoundMessage = "Não foi possível encontrar o criativo deste anúncio."
	invalidObjectIDMessage  = "ID inválido: use act_<dígitos> ou o ID numérico do objeto."
	apiErrorPrefix          = "Erro API: "
	communicationPrefix     = "Erro de comunicação com a API do Meta: "
)

// RenderError transforma qualquer erro das operações em uma mensagem para o usuário.
// Erros da API do Meta trazem o corpo da resposta sem alteração.
func RenderError(err error) string {
	var resolveErr *resolving.ResolveError
	var apiErr *metaclient.APIError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &resolveErr):
		return fmt.Sprintf("Cliente '%s' não encontrado.", resolveErr.Identifier)
	case errors.Is(err, resolving.ErrAccountNotFound):
		return accountNotFoundMessage
	case errors.Is(err, creative.ErrCreativeNotFound):
		return creativeNotFoundMessage
	case errors.Is(err, metaclient.ErrInvalidObjectID):
		return invalidObjectIDMessage
	case errors.As(err, &apiErr):
		return apiErrorPrefix + apiErr.Body
	default:
		return communicationPrefix + err.Error()
	}
}

func errorCode(err error) string {
	var apiErr *metaclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsNotFound() {
			return apiErrors.ErrNotFound
		}
		return apiErrors.ErrExternalService
	}

	if errors.Is(err, resolving.ErrAccountNotFound) || errors.Is(err, creative.ErrCreativeNotFound) {
		return apiErrors.ErrNotFound
	}

	if errors.Is(err, metaclient.ErrInvalidObjectID) {
		return apiErrors.ErrInvalidFormat
	}

	return apiErrors.ErrCommunication
}

// writeServiceError responde no mesmo formato pedido para o resultado
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)
	message := RenderError(err)

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"code":  code,
		"error": err.Error(),
	})
	if code == apiErrors.ErrNotFound {
		logger.Info("handler: resource not found")
	} else {
		logger.Error("handler: operation failed")
	}

	if !wantsJSON(r) {
		writeText(w, apiErrors.StatusFor(code), message)
		return
	}

	var details any
	var apiErr *metaclient.APIError
	if errors.As(err, &apiErr) {
		details = map[string]any{
			"status_code": apiErr.StatusCode,
			"body":        apiErr.Body,
		}
	}

	apiErrors.WriteError(w, code, message, details)
}
