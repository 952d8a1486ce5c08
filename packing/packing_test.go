package packing

import (
	"testing"

	"trekhub/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeWeightsCheckedItemsOnly(t *testing.T) {
	items := []models.PackingItem{
		{ItemID: "pk-1", Name: "Sleeping bag", WeightGrams: 1200, Count: 1},
		{ItemID: "pk-2", Name: "Water bottle", WeightGrams: 150, Count: 2},
		{ItemID: "pk-3", Name: "Down jacket", WeightGrams: 800, Count: 1},
	}
	progress := []models.PackingProgress{
		{ItemID: "pk-1", Checked: true},
		{ItemID: "pk-2", Checked: true},
		{ItemID: "pk-3", Checked: false},
	}

	s := Summarize(items, progress)

	assert.Equal(t, 3, s.TotalItems)
	assert.Equal(t, 2, s.CheckedItems)
	assert.Equal(t, 67, s.CompletionPercent)
	assert.Equal(t, 1500.0, s.CheckedWeightGrams) // 1200 + 150*2
	assert.Equal(t, 2300.0, s.TotalWeightGrams)
}

func TestSummarizeEmptyListIsZeroNotNaN(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Equal(t, 0, s.CompletionPercent)
	assert.Equal(t, 0.0, s.TotalWeightGrams)
}

func TestSummarizeUncheckedProgressRowsDoNotCount(t *testing.T) {
	items := []models.PackingItem{{ItemID: "pk-1", WeightGrams: 100, Count: 1}}
	progress := []models.PackingProgress{{ItemID: "pk-1", Checked: false, Notes: "need to buy"}}

	s := Summarize(items, progress)
	assert.Equal(t, 0, s.CheckedItems)
	assert.Equal(t, 0.0, s.CheckedWeightGrams)
}
