package reporting

import (
	"errors"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnparseable indica que a resposta do modelo não contém JSON aproveitável
var ErrUnparseable = errors.New("resposta gerada não contém JSON válido")

// ParseGenerated decodifica a resposta do modelo em T. Aceita JSON puro, JSON dentro de
// blocos de código markdown ou JSON cercado de texto.
func ParseGenerated[T any](raw string) (T, error) {
	var out T

	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return out, ErrUnparseable
	}

	if err := json.Unmarshal([]byte(candidate), &out); err == nil {
		return out, nil
	}

	extracted := extractJSON(candidate)
	if extracted == "" {
		return out, ErrUnparseable
	}

	var retry T
	if err := json.Unmarshal([]byte(extracted), &retry); err != nil {
		return out, ErrUnparseable
	}
	return retry, nil
}

// ParseOrFallback devolve o conteúdo decodificado ou o resultado de fallback e indica se houve degradação
func ParseOrFallback[T any](raw string, fallback func(raw string) T) (T, bool) {
	parsed, err := ParseGenerated[T](raw)
	if err != nil {
		return fallback(raw), true
	}
	return parsed, false
}

// extractJSON recorta do primeiro delimitador de objeto ou lista até o último correspondente
func extractJSON(s string) string {
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}

	closing := "}"
	if s[start] == '[' {
		closing = "]"
	}

	end := strings.LastIndex(s, closing)
	if end <= start {
		return ""
	}
	return s[start : end+1]
}
