package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

const (
	accountsTable       = "accounts a"
	accountStatusActive = "ACTIVE"
	positionColumn      = "position"
)

// ClientRepository carrega o diretório de clientes a partir da tabela de contas
type ClientRepository interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type clientRepository struct {
	conn postgres.Queryer
}

func NewClientRepository(conn postgres.Queryer) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func buildPositionColumnExistsQuery() (string, []any, error) {
	return squirrel.
		Select("1").
		From("information_schema.columns").
		Where(squirrel.Eq{"table_name": accountsTableName, "column_name": positionColumn}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildListClientsQuery ordena pela posição gravada pelo import-clients, que
// é a ordem do clients.json. Contas sem posição vêm depois, por apelido.
func buildListClientsQuery(withPosition bool) (string, []any, error) {
	orderBy := []string{"a.nickname ASC", "a.name ASC"}
	if withPosition {
		orderBy = append([]string{"a.position ASC NULLS LAST"}, orderBy...)
	}

	return squirrel.
		Select("COALESCE(NULLIF(a.nickname, ''), a.name)", "a.external_id").
		From(accountsTable).
		Where(squirrel.Eq{"a.status": accountStatusActive}).
		OrderBy(orderBy...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *clientRepository) hasPositionColumn(ctx context.Context) (bool, error) {
	query, args, err := buildPositionColumnExistsQuery()
	if err != nil {
		return false, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	exists := false
	if rows.Next() {
		if err := rows.Scan(&exists); err != nil {
			return false, err
		}
	}

	return exists, rows.Err()
}

func (r *clientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	withPosition, err := r.hasPositionColumn(ctx)
	if err != nil {
		return nil, err
	}

	if !withPosition {
		logrus.Warn("repository: accounts.position ausente, ordenando clientes por apelido")
	}

	query, args, err := buildListClientsQuery(withPosition)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var name, externalID sql.NullString
		if err := rows.Scan(&name, &externalID); err != nil {
			return nil, err
		}

		client, ok := toClient(name, externalID)
		if !ok {
			logrus.WithField("name", name.String).Warn("repository: skipping account without external id")
			continue
		}

		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}

func toClient(name, externalID sql.NullString) (domain.Client, bool) {
	id := domain.NormalizeAccountID(externalID.String)
	if !externalID.Valid || id == "" {
		return domain.Client{}, false
	}

	return domain.Client{
		Name:      name.String,
		AccountID: id,
	}, true
}
