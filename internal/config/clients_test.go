package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

func TestParseClients(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []domain.Client
		wantErr bool
	}{
		{
			name:  "Mantém a ordem do arquivo",
			input: `{"Zeta": "act_3", "Acme": "act_1", "Beta": "act_2"}`,
			want: []domain.Client{
				{Name: "Zeta", AccountID: "act_3"},
				{Name: "Acme", AccountID: "act_1"},
				{Name: "Beta", AccountID: "act_2"},
			},
		},
		{
			name:  "Chave repetida mantém a posição da primeira e o valor da última",
			input: `{"Acme": "act_1", "Beta": "act_2", "Acme": "act_9"}`,
			want: []domain.Client{
				{Name: "Acme", AccountID: "act_9"},
				{Name: "Beta", AccountID: "act_2"},
			},
		},
		{
			name:  "Objeto vazio",
			input: `{}`,
			want:  []domain.Client{},
		},
		{
			name:    "Raiz não é objeto",
			input:   `["act_1"]`,
			wantErr: true,
		},
		{
			name:    "Id não textual",
			input:   `{"Acme": 123}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClients([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadClientDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clients.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Acme": "act_1", "Loja B": "act_2"}`), 0o600))

	directory, err := LoadClientDirectory(path)
	require.NoError(t, err)

	assert.Equal(t, 2, directory.Len())
	assert.Equal(t, "Acme", directory.Clients()[0].Name)
}

func TestLoadClientDirectory_ArquivoAusente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nao-existe.json")

	directory, err := LoadClientDirectory(path)

	assert.Nil(t, directory)
	assert.ErrorIs(t, err, ErrClientsFileNotFound)
	assert.Contains(t, err.Error(), path)
}
