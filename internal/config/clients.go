package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
)

const (
	ClientsSourceFile     = "file"
	ClientsSourcePostgres = "postgres"
)

var ErrClientsFileNotFound = errors.New("clients file not found")

// LoadClientDirectory lê o clients.json ({"Nome do cliente": "act_123", ...}).
// A ausência do arquivo é um erro de inicialização e a mensagem traz o caminho esperado.
func LoadClientDirectory(path string) (*domain.ClientDirectory, error) {
	expected := path
	if abs, err := filepath.Abs(path); err == nil {
		expected = abs
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: arquivo não encontrado no caminho: %s", ErrClientsFileNotFound, expected)
		}
		return nil, fmt.Errorf("config: erro ao ler arquivo de clientes %s: %w", expected, err)
	}

	clients, err := ParseClients(data)
	if err != nil {
		return nil, fmt.Errorf("config: arquivo de clientes inválido %s: %w", expected, err)
	}

	return domain.NewClientDirectory(clients), nil
}

// ParseClients decodifica o objeto JSON mantendo a ordem das chaves do arquivo.
// Chaves repetidas ficam na posição da primeira ocorrência com o valor da última.
func ParseClients(data []byte) ([]domain.Client, error) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, data)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errors.New("o diretório de clientes deve ser um objeto JSON")
	}

	clients := make([]domain.Client, 0)
	positions := make(map[string]int)

	iter.ReadObjectCB(func(it *jsoniter.Iterator, name string) bool {
		if it.WhatIsNext() != jsoniter.StringValue {
			it.ReportError("clients", fmt.Sprintf("o id do cliente %q deve ser texto", name))
			return false
		}

		accountID := it.ReadString()
		if pos, ok := positions[name]; ok {
			clients[pos].AccountID = accountID
			return true
		}

		positions[name] = len(clients)
		clients = append(clients, domain.Client{Name: name, AccountID: accountID})
		return true
	})

	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return nil, iter.Error
	}

	return clients, nil
}
