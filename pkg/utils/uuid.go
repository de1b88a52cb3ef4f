package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera identificadores curtos para as entidades persistidas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// MustGenerateID é como GenerateID, mas entra em pânico quando o gerador falha
func MustGenerateID() string {
	id, err := GenerateID()
	if err != nil {
		panic(err)
	}
	return id
}
