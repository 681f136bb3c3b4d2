package consumption

import (
	"golang.org/x/exp/constraints"

	"github.com/hmoraes/supplytrack/pkg/domain/entities"
)

// MergeSort returns a new slice with records ordered ascending by key.
// The sort is stable: records with equal keys keep their relative input
// order. The input slice is left untouched. O(n log n) time, O(n)
// auxiliary space per level.
func MergeSort[K constraints.Ordered](
	records []*entities.ConsumptionRecord,
	key func(*entities.ConsumptionRecord) K,
) []*entities.ConsumptionRecord {
	if len(records) <= 1 {
		out := make([]*entities.ConsumptionRecord, len(records))
		copy(out, records)
		return out
	}
	mid := len(records) / 2
	left := MergeSort(records[:mid], key)
	right := MergeSort(records[mid:], key)
	return merge(left, right, key)
}

func merge[K constraints.Ordered](
	left, right []*entities.ConsumptionRecord,
	key func(*entities.ConsumptionRecord) K,
) []*entities.ConsumptionRecord {
	out := make([]*entities.ConsumptionRecord, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// <= keeps the left half first on ties, which is what makes
		// the sort stable.
		if key(left[i]) <= key(right[j]) {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

// QuickSort returns a new slice with records ordered ascending by key.
// The pivot is the middle element of each partition, so already-sorted
// or adversarial input degrades to O(n²). Records with equal keys end
// up contiguous but their relative input order is not preserved; use
// MergeSort when stability matters. The input slice is left untouched.
func QuickSort[K constraints.Ordered](
	records []*entities.ConsumptionRecord,
	key func(*entities.ConsumptionRecord) K,
) []*entities.ConsumptionRecord {
	if len(records) <= 1 {
		out := make([]*entities.ConsumptionRecord, len(records))
		copy(out, records)
		return out
	}

	pivot := key(records[len(records)/2])
	var less, equal, greater []*entities.ConsumptionRecord
	for _, record := range records {
		switch k := key(record); {
		case k < pivot:
			less = append(less, record)
		case k > pivot:
			greater = append(greater, record)
		default:
			equal = append(equal, record)
		}
	}

	out := make([]*entities.ConsumptionRecord, 0, len(records))
	out = append(out, QuickSort(less, key)...)
	out = append(out, equal...)
	return append(out, QuickSort(greater, key)...)
}
