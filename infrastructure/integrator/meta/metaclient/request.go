package metaclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrInvalidObjectID indica um id que não é um id do Meta (act_123, 123, 123_456)
var ErrInvalidObjectID = errors.New("id de objeto do Meta inválido")

func isValidObjectID(id string) bool {
	if id == "" {
		return false
	}

	for _, r := range id {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_') {
			return false
		}
	}

	return true
}

// objectPath monta {id}/{edge}. O id vem do chamador e nunca pode alterar
// o caminho ou a query enviados com o token.
func objectPath(objectID, edge string) (string, error) {
	if !isValidObjectID(objectID) {
		return "", errors.Wrapf(ErrInvalidObjectID, "%q", objectID)
	}

	path := url.PathEscape(objectID)
	if edge != "" {
		path += "/" + edge
	}

	return path, nil
}

// get faz um GET em {META_URL}/{objectID}/{edge} com o token no header
// Authorization e decodifica o corpo em target
func (c *MetaClient) get(objectID, edge string, params url.Values, target interface{}) error {
	path, err := objectPath(objectID, edge)
	if err != nil {
		logrus.WithField("object_id", objectID).Warn("metaclient: rejected invalid object id")
		return err
	}

	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.Cfg.Meta.URL, "/"), path)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return errors.Wrap(err, "metaclient: erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.Meta.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao fazer a requisição")
		return errors.Wrapf(err, "metaclient: erro ao fazer a requisição para %s", path)
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, target); err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao decodificar JSON")
		return errors.Wrap(err, "metaclient: erro ao decodificar JSON")
	}

	return nil
}
