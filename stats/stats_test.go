package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentageBounds(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0}, // never NaN or a panic
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{5, 0, 0},
	}
	for _, c := range cases {
		got := Percentage(c.completed, c.total)
		assert.Equal(t, c.want, got, "Percentage(%d, %d)", c.completed, c.total)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestPercentageExhaustiveBounds(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for completed := 0; completed <= total; completed++ {
			got := Percentage(completed, total)
			if got < 0 || got > 100 {
				t.Fatalf("Percentage(%d, %d) = %d out of range", completed, total, got)
			}
		}
	}
}

func TestSummarizeCountsByKey(t *testing.T) {
	type member struct{ status string }
	items := []member{{"complete"}, {"partial"}, {"missing"}}

	counts := Summarize(items, func(m member) string { return m.status })

	assert.Equal(t, 1, counts["complete"])
	assert.Equal(t, 1, counts["partial"])
	assert.Equal(t, 1, counts["missing"])

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 3, total)
}

func TestSummarizeEmpty(t *testing.T) {
	counts := Summarize([]string{}, func(s string) string { return s })
	assert.Empty(t, counts)
}
