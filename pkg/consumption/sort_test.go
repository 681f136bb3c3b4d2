package consumption

import (
	"testing"

	"github.com/hmoraes/supplytrack/pkg/domain/entities"
)

// isPermutation checks that got holds exactly the same record pointers
// as want, regardless of order.
func isPermutation(got, want []*entities.ConsumptionRecord) bool {
	if len(got) != len(want) {
		return false
	}
	counts := make(map[*entities.ConsumptionRecord]int, len(want))
	for _, record := range want {
		counts[record]++
	}
	for _, record := range got {
		counts[record]--
		if counts[record] < 0 {
			return false
		}
	}
	return true
}

func sortedAscending[K int64 | string](records []*entities.ConsumptionRecord, key func(*entities.ConsumptionRecord) K) bool {
	for i := 1; i < len(records); i++ {
		if key(records[i-1]) > key(records[i]) {
			return false
		}
	}
	return true
}

func TestMergeSort_ByQuantity(t *testing.T) {
	input := []*entities.ConsumptionRecord{
		rec("Seringa 5ml", 50, "2025-08-20", "2025-10-01"),
		rec("Gaze Estéril", 10, "2025-08-21", "2025-10-02"),
		rec("Reagente A", 50, "2025-08-22", "2025-10-03"),
		rec("Agulha Descartável", 30, "2025-08-23", "2025-10-04"),
	}

	sorted := MergeSort(input, entities.ByQuantity)

	if !isPermutation(sorted, input) {
		t.Fatal("Expected output to be a permutation of the input")
	}
	if !sortedAscending(sorted, entities.ByQuantity) {
		t.Fatal("Expected output sorted ascending by quantity")
	}

	// Stability: the two quantity-50 records keep their input order.
	if sorted[2] != input[0] || sorted[3] != input[2] {
		t.Error("Expected equal-key records to retain their relative input order")
	}
}

func TestMergeSort_InputUntouched(t *testing.T) {
	input := []*entities.ConsumptionRecord{
		rec("Seringa 5ml", 3, "2025-08-20", "2025-10-01"),
		rec("Gaze Estéril", 1, "2025-08-21", "2025-10-02"),
		rec("Reagente A", 2, "2025-08-22", "2025-10-03"),
	}
	snapshot := make([]*entities.ConsumptionRecord, len(input))
	copy(snapshot, input)

	MergeSort(input, entities.ByQuantity)

	for i := range input {
		if input[i] != snapshot[i] {
			t.Fatalf("Input slice mutated at index %d", i)
		}
	}
}

func TestMergeSort_Idempotent(t *testing.T) {
	input := []*entities.ConsumptionRecord{
		rec("Gaze Estéril", 1, "2025-08-20", "2025-10-01"),
		rec("Reagente A", 2, "2025-08-21", "2025-10-02"),
		rec("Reagente A", 2, "2025-08-22", "2025-10-03"),
		rec("Seringa 5ml", 5, "2025-08-23", "2025-10-04"),
	}

	once := MergeSort(input, entities.ByQuantity)
	twice := MergeSort(once, entities.ByQuantity)

	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("Re-sorting a sorted collection changed order at index %d", i)
		}
	}
}

func TestMergeSort_EmptyAndSingle(t *testing.T) {
	if out := MergeSort(nil, entities.ByQuantity); len(out) != 0 {
		t.Errorf("Expected empty output for empty input, got %d", len(out))
	}

	single := recs("Gaze")
	out := MergeSort(single, entities.ByQuantity)
	if len(out) != 1 || out[0] != single[0] {
		t.Error("Expected single-element input returned as-is")
	}
}

func TestQuickSort_ByExpirationDate(t *testing.T) {
	input := []*entities.ConsumptionRecord{
		rec("Seringa 5ml", 1, "2025-08-20", "2026-01-01"),
		rec("Gaze Estéril", 2, "2025-05-01", "2025-05-05"),
		rec("Reagente A", 3, "2025-08-20", "2025-12-31"),
	}

	sorted := QuickSort(input, entities.ByExpirationDate)

	if !isPermutation(sorted, input) {
		t.Fatal("Expected output to be a permutation of the input")
	}

	want := []string{"2025-05-05", "2025-12-31", "2026-01-01"}
	for i, record := range sorted {
		if got := record.ExpirationDate.Format("2006-01-02"); got != want[i] {
			t.Errorf("Position %d: expected expiration %s, got %s", i, want[i], got)
		}
	}
}

func TestQuickSort_AlreadySorted(t *testing.T) {
	input := []*entities.ConsumptionRecord{
		rec("Gaze Estéril", 1, "2025-08-20", "2025-09-01"),
		rec("Reagente A", 2, "2025-08-20", "2025-10-01"),
		rec("Seringa 5ml", 3, "2025-08-20", "2025-11-01"),
		rec("Agulha Descartável", 4, "2025-08-20", "2025-12-01"),
	}

	sorted := QuickSort(input, entities.ByExpirationDate)
	if !sortedAscending(sorted, entities.ByExpirationDate) {
		t.Fatal("Expected sorted output for already-sorted input")
	}
	// All keys are distinct here, so order must match exactly.
	for i := range input {
		if sorted[i] != input[i] {
			t.Fatalf("Already-sorted input reordered at index %d", i)
		}
	}
}

func TestQuickSort_ReverseSorted(t *testing.T) {
	input := []*entities.ConsumptionRecord{
		rec("Agulha Descartável", 40, "2025-08-20", "2025-10-01"),
		rec("Seringa 5ml", 30, "2025-08-20", "2025-10-01"),
		rec("Reagente A", 20, "2025-08-20", "2025-10-01"),
		rec("Gaze Estéril", 10, "2025-08-20", "2025-10-01"),
	}

	sorted := QuickSort(input, entities.ByQuantity)
	if !isPermutation(sorted, input) {
		t.Fatal("Expected output to be a permutation of the input")
	}
	if !sortedAscending(sorted, entities.ByQuantity) {
		t.Fatal("Expected ascending output for reverse-sorted input")
	}
}

func TestQuickSort_EqualKeysEndUpContiguous(t *testing.T) {
	input := []*entities.ConsumptionRecord{
		rec("Seringa 5ml", 5, "2025-08-20", "2025-10-01"),
		rec("Gaze Estéril", 1, "2025-08-20", "2025-10-01"),
		rec("Reagente A", 5, "2025-08-21", "2025-10-01"),
		rec("Agulha Descartável", 9, "2025-08-20", "2025-10-01"),
		rec("Reagente B", 5, "2025-08-22", "2025-10-01"),
	}

	sorted := QuickSort(input, entities.ByQuantity)
	if !sortedAscending(sorted, entities.ByQuantity) {
		t.Fatal("Expected ascending output")
	}

	// The three quantity-5 records occupy positions 1..3 in some order.
	for i := 1; i <= 3; i++ {
		if sorted[i].Quantity != 5 {
			t.Errorf("Position %d: expected quantity 5, got %d", i, sorted[i].Quantity)
		}
	}
}

func TestQuickSort_InputUntouched(t *testing.T) {
	input := []*entities.ConsumptionRecord{
		rec("Seringa 5ml", 3, "2025-08-20", "2025-10-03"),
		rec("Gaze Estéril", 1, "2025-08-21", "2025-10-01"),
		rec("Reagente A", 2, "2025-08-22", "2025-10-02"),
	}
	snapshot := make([]*entities.ConsumptionRecord, len(input))
	copy(snapshot, input)

	QuickSort(input, entities.ByExpirationDate)

	for i := range input {
		if input[i] != snapshot[i] {
			t.Fatalf("Input slice mutated at index %d", i)
		}
	}
}

func TestSort_ByItemNameEstablishesBinarySearchPrecondition(t *testing.T) {
	input := recs("Seringa", "Agulha", "Reagente A", "Luva", "Gaze")

	sorted := MergeSort(input, entities.ByItemName)
	if !sortedAscending(sorted, entities.ByItemName) {
		t.Fatal("Expected ascending item-name order")
	}

	record, found := BinarySearch(sorted, "Reagente A")
	if !found || record.ItemName != "Reagente A" {
		t.Errorf("Expected binary search hit after sorting, got %v found=%v", record, found)
	}
}
