package consumption

import (
	"golang.org/x/exp/constraints"

	"github.com/hmoraes/supplytrack/pkg/domain/entities"
)

// LinearSearch scans records in order and returns every record whose
// item name exactly matches name (case-sensitive). A miss is a normal
// outcome, reported as an empty result. O(n).
func LinearSearch(records []*entities.ConsumptionRecord, name entities.ItemName) []*entities.ConsumptionRecord {
	var matches []*entities.ConsumptionRecord
	for _, record := range records {
		if record.ItemName == name {
			matches = append(matches, record)
		}
	}
	return matches
}

// BinarySearchByKey bisects records looking for target. The input must
// already be sorted ascending by key; the precondition is not checked
// and an unsorted input yields meaningless results. When duplicate keys
// exist, the record returned is whichever one bisection reaches first,
// not necessarily the first in collection order. O(log n).
func BinarySearchByKey[K constraints.Ordered](
	records []*entities.ConsumptionRecord,
	key func(*entities.ConsumptionRecord) K,
	target K,
) (*entities.ConsumptionRecord, bool) {
	low, high := 0, len(records)-1
	for low <= high {
		mid := (low + high) / 2
		switch k := key(records[mid]); {
		case k == target:
			return records[mid], true
		case k < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return nil, false
}

// BinarySearch looks up a record by item name in a collection sorted
// ascending by item name.
func BinarySearch(records []*entities.ConsumptionRecord, name entities.ItemName) (*entities.ConsumptionRecord, bool) {
	return BinarySearchByKey(records, entities.ByItemName, string(name))
}
