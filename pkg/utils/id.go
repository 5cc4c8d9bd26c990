package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewRequestID gera um identificador curto para rastrear requisições de
// previsão nos logs e na resposta.
func NewRequestID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
