package production

import (
	"sort"

	"trekhub/models"
)

var phasePosition = map[string]int{
	models.PhasePreTrek:    0,
	models.PhaseDuringTrek: 1,
	models.PhasePostTrek:   2,
}

// SortStoryArc orders narrative beats by trek phase, then by explicit
// order within the phase. Stable so editors' insertion order survives
// ties.
func SortStoryArc(elements []models.StoryArcElement) []models.StoryArcElement {
	sorted := make([]models.StoryArcElement, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if phasePosition[sorted[i].Phase] != phasePosition[sorted[j].Phase] {
			return phasePosition[sorted[i].Phase] < phasePosition[sorted[j].Phase]
		}
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}
