package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

func RoundWithThreeDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*1000) / 1000
}

// FormatThousands formata o valor com separador de milhar ("45,420" ou "1,234.5")
func FormatThousands(f float64) string {
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	cents := int64(math.Round(f * 100))
	digits := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if frac := cents % 100; frac > 0 {
		b.WriteString(strings.TrimRight(fmt.Sprintf(".%02d", frac), "0"))
	}

	return sign + b.String()
}
