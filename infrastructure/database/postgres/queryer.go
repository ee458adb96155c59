package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB usado pelos repositórios (somente leitura)
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Execer é o subconjunto usado pelas escritas
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
