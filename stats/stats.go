// Package stats holds the pure aggregation helpers behind the dashboard
// summary tiles.
package stats

import "math"

// Summarize reduces a collection to counts per key.
func Summarize[T any](items []T, keyFn func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	return counts
}

// Percentage returns completed/total as a rounded integer in [0,100].
// A zero denominator yields 0, never a division error.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(completed) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
