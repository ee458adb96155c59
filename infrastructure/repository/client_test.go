package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListClientsQuery(t *testing.T) {
	tests := []struct {
		name         string
		withPosition bool
		expected     string
	}{
		{
			"ordem do arquivo importado",
			true,
			"SELECT COALESCE(NULLIF(a.nickname, ''), a.name), a.external_id FROM accounts a WHERE a.status = $1 ORDER BY a.position ASC NULLS LAST, a.nickname ASC, a.name ASC",
		},
		{
			"tabela sem coluna de posição",
			false,
			"SELECT COALESCE(NULLIF(a.nickname, ''), a.name), a.external_id FROM accounts a WHERE a.status = $1 ORDER BY a.nickname ASC, a.name ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListClientsQuery(tt.withPosition)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, query)
			assert.Equal(t, []any{"ACTIVE"}, args)
		})
	}
}

func TestBuildPositionColumnExistsQuery(t *testing.T) {
	query, args, err := buildPositionColumnExistsQuery()
	require.NoError(t, err)

	assert.Equal(t, "SELECT EXISTS ( SELECT 1 FROM information_schema.columns WHERE column_name = $1 AND table_name = $2 )", query)
	assert.Equal(t, []any{"position", "accounts"}, args)
}

func TestToClient(t *testing.T) {
	tests := []struct {
		name       string
		rowName    sql.NullString
		externalID sql.NullString
		expectedID string
		expectedOK bool
	}{
		{"id sem prefixo", sql.NullString{String: "Loja", Valid: true}, sql.NullString{String: "123", Valid: true}, "act_123", true},
		{"id com prefixo", sql.NullString{String: "Loja", Valid: true}, sql.NullString{String: "act_123", Valid: true}, "act_123", true},
		{"id nulo", sql.NullString{String: "Loja", Valid: true}, sql.NullString{}, "", false},
		{"id vazio", sql.NullString{String: "Loja", Valid: true}, sql.NullString{String: " ", Valid: true}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, ok := toClient(tt.rowName, tt.externalID)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedID, client.AccountID)
		})
	}
}
