package repository

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/pkg/utils"
)

const (
	accountsTableName = "accounts"
	accountOriginMeta = "META"
)

// ClientImporter grava o diretório de clientes na tabela de contas,
// usada depois quando CLIENTS_SOURCE=postgres
type ClientImporter interface {
	ImportClients(ctx context.Context, clients []domain.Client) (int, error)
}

type clientImporter struct {
	conn postgres.Execer
}

func NewClientImporter(conn postgres.Execer) ClientImporter {
	return &clientImporter{
		conn: conn,
	}
}

// position guarda a ordem do arquivo; a leitura ordena por ela para que o
// primeiro cliente que casa na resolução seja o mesmo nas duas fontes
const addPositionColumnQuery = "ALTER TABLE accounts ADD COLUMN IF NOT EXISTS position INTEGER"

// buildUpsertClientQuery guarda o external_id sem o prefixo act_; o apelido
// recebe o nome do cliente para que a leitura devolva o mesmo nome do arquivo.
func buildUpsertClientQuery(id string, position int, client domain.Client) (string, []any, error) {
	externalID := strings.TrimPrefix(strings.TrimSpace(client.AccountID), domain.AccountIDPrefix)

	return squirrel.
		Insert(accountsTableName).
		Columns("id", "external_id", "name", "nickname", "origin", "status", "position").
		Values(id, externalID, client.Name, client.Name, accountOriginMeta, accountStatusActive, position).
		Suffix("ON CONFLICT (external_id) DO UPDATE SET nickname = EXCLUDED.nickname, status = EXCLUDED.status, position = EXCLUDED.position").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// ImportClients grava cliente a cliente; falhas individuais são logadas e não
// interrompem o restante. Retorna quantos foram gravados.
func (r *clientImporter) ImportClients(ctx context.Context, clients []domain.Client) (int, error) {
	if _, err := r.conn.ExecContext(ctx, addPositionColumnQuery); err != nil {
		return 0, err
	}

	imported := 0

	for i, client := range clients {
		if strings.TrimSpace(client.Name) == "" || strings.TrimSpace(client.AccountID) == "" {
			logrus.WithField("index", i).Warn("repository: skipping client without name or account id")
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return imported, err
		}

		query, args, err := buildUpsertClientQuery(id, i, client)
		if err != nil {
			return imported, err
		}

		if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
			logrus.WithFields(logrus.Fields{
				"name":       client.Name,
				"account_id": client.AccountID,
				"error":      err.Error(),
			}).Error("repository: failed to import client")
			continue
		}

		imported++
	}

	return imported, nil
}
