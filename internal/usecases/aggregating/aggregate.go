// Package aggregating reúne as reduções sobre listas de registros usadas pelos relatórios:
// somas, taxas protegidas contra divisão por zero, agrupamentos e rankings.
package aggregating

import (
	"cmp"
	"slices"
)

type Number interface {
	~int | ~int64 | ~float64
}

// Sum soma o campo de todos os registros; lista vazia resulta em zero
func Sum[T any, N Number](records []T, field func(T) N) N {
	var total N
	for _, r := range records {
		total += field(r)
	}
	return total
}

// Count conta os registros que satisfazem o predicado
func Count[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// Filter retorna um novo slice com os registros que satisfazem o predicado
func Filter[T any](records []T, pred func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Rate divide num por max(den, 1), nunca produzindo NaN ou infinito
func Rate(num, den float64) float64 {
	return num / max(den, 1)
}

// Percent é Rate multiplicado por 100
func Percent(num, den float64) float64 {
	return Rate(num, den) * 100
}

// Mean é a média do campo, zero para lista vazia
func Mean[T any, N Number](records []T, field func(T) N) float64 {
	return Rate(float64(Sum(records, field)), float64(len(records)))
}

// GroupBy agrupa preservando a ordem original dentro de cada grupo
func GroupBy[T any, K comparable](records []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, r := range records {
		k := key(r)
		groups[k] = append(groups[k], r)
	}
	return groups
}

// SortedKeys retorna as chaves do mapa em ordem crescente
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// TopN ordena de forma estável pela pontuação decrescente e mantém os n primeiros
func TopN[T any](records []T, n int, score func(T) float64) []T {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(score(b), score(a))
	})
	return truncate(sorted, n)
}

// BottomN ordena de forma estável pela pontuação crescente e mantém os n primeiros
func BottomN[T any](records []T, n int, score func(T) float64) []T {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(score(a), score(b))
	})
	return truncate(sorted, n)
}

// MaxBy retorna o primeiro registro com a maior pontuação, ou nil para lista vazia
func MaxBy[T any](records []T, score func(T) float64) *T {
	if len(records) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(records); i++ {
		if score(records[i]) > score(records[best]) {
			best = i
		}
	}
	found := records[best]
	return &found
}

// MinBy retorna o primeiro registro com a menor pontuação, ou nil para lista vazia
func MinBy[T any](records []T, score func(T) float64) *T {
	if len(records) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(records); i++ {
		if score(records[i]) < score(records[best]) {
			best = i
		}
	}
	found := records[best]
	return &found
}

// Limit trunca a lista em n itens; n <= 0 mantém tudo
func Limit[T any](records []T, n int) []T {
	if n <= 0 {
		return records
	}
	return truncate(records, n)
}

func truncate[T any](records []T, n int) []T {
	if n < 0 || n >= len(records) {
		return records
	}
	return records[:n]
}
