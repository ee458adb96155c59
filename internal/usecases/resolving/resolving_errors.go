package resolving

import (
	"errors"
	"fmt"
)

var ErrAccountNotFound = errors.New("conta não encontrada")

// ResolveError carrega o identificador que não pôde ser resolvido
type ResolveError struct {
	Err        error
	Identifier string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: '%s'", e.Err.Error(), e.Identifier)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

func NewResolveError(identifier string) *ResolveError {
	return &ResolveError{
		Err:        ErrAccountNotFound,
		Identifier: identifier,
	}
}
