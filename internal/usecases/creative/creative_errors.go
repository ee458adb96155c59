package creative

import "errors"

var ErrCreativeNotFound = errors.New("criativo não encontrado")
