package utils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts aceitos para datas ISO vindas dos clientes, do mais completo ao mais simples
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseISODateTime interpreta datas ISO 8601 com ou sem fuso horário.
// O sufixo "Z" é aceito e datas sem fuso são tratadas como UTC.
func ParseISODateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data inválido: %q", value)
}

// DaysBetween retorna a quantidade de dias inteiros entre duas datas
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
