package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength     = 8
)

// NewShortID gera um identificador curto usado para rastrear consultas nos logs
func NewShortID() string {
	id, err := gonanoid.Generate(idCharacters, idLength)
	if err != nil {
		return "unknown"
	}
	return id
}
