package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Checksum calcula o hash BLAKE2b-256 do conteúdo em hexadecimal
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
