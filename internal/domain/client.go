package domain

import "strings"

// AccountIDPrefix é o prefixo canônico dos IDs de conta de anúncios do Meta
const AccountIDPrefix = "act_"

type Client struct {
	Name      string `json:"name"`
	AccountID string `json:"account_id"`
}

// ClientDirectory mapeia nomes de clientes para IDs de conta, preservando a
// ordem de inserção. Montado na inicialização e somente leitura depois disso.
type ClientDirectory struct {
	clients []Client
}

func NewClientDirectory(clients []Client) *ClientDirectory {
	cp := make([]Client, len(clients))
	copy(cp, clients)

	return &ClientDirectory{clients: cp}
}

// Clients retorna uma cópia das entradas na ordem de inserção
func (d *ClientDirectory) Clients() []Client {
	if d == nil {
		return nil
	}

	cp := make([]Client, len(d.clients))
	copy(cp, d.clients)

	return cp
}

func (d *ClientDirectory) Len() int {
	if d == nil {
		return 0
	}

	return len(d.clients)
}

// IsAccountID indica se o identificador já está no formato canônico act_<dígitos>
func IsAccountID(identifier string) bool {
	return strings.HasPrefix(identifier, AccountIDPrefix)
}

// NormalizeAccountID garante o prefixo act_ em IDs externos salvos só com dígitos
func NormalizeAccountID(externalID string) string {
	id := strings.TrimSpace(externalID)
	if id == "" || IsAccountID(id) {
		return id
	}

	return AccountIDPrefix + id
}
