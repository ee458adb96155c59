package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// GenerateID gera IDs curtos para contas importadas e execuções de jobs
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
