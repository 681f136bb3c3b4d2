// Package services contains the application services built on top of
// the consumption primitives.
package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hmoraes/supplytrack/pkg/consumption"
	"github.com/hmoraes/supplytrack/pkg/domain/entities"
	"github.com/hmoraes/supplytrack/pkg/domain/repositories"
)

// ItemTotal aggregates the consumption of a single supply item.
type ItemTotal struct {
	ItemName    entities.ItemName `json:"item_name"`
	TotalQty    entities.Quantity `json:"total_qty"`
	EventCount  int               `json:"event_count"`
	AvgPerEvent decimal.Decimal   `json:"avg_per_event"`
}

// ReportingService builds consumption reports on top of a repository
type ReportingService struct {
	repo repositories.ConsumptionRepository
}

// NewReportingService creates a reporting service over the given repository
func NewReportingService(repo repositories.ConsumptionRepository) *ReportingService {
	return &ReportingService{repo: repo}
}

// TopConsumed returns the n largest consumption events, largest first.
// The underlying merge sort is stable, so the descending view lists
// later registrations first among events of equal quantity.
func (s *ReportingService) TopConsumed(n int) ([]*entities.ConsumptionRecord, error) {
	records, err := s.repo.GetRecords()
	if err != nil {
		return nil, err
	}

	sorted := consumption.MergeSort(records, entities.ByQuantity)
	top := make([]*entities.ConsumptionRecord, 0, n)
	for i := len(sorted) - 1; i >= 0 && len(top) < n; i-- {
		top = append(top, sorted[i])
	}
	return top, nil
}

// ExpiringSoon returns the n events whose consumed lot expires first
func (s *ReportingService) ExpiringSoon(n int) ([]*entities.ConsumptionRecord, error) {
	records, err := s.repo.GetRecords()
	if err != nil {
		return nil, err
	}

	sorted := consumption.QuickSort(records, entities.ByExpirationDate)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n], nil
}

// ItemTotals aggregates total quantity, event count and the exact
// average quantity per event for every supply item, ordered by total
// quantity descending (item name breaks ties for a deterministic
// report).
func (s *ReportingService) ItemTotals() ([]ItemTotal, error) {
	records, err := s.repo.GetRecords()
	if err != nil {
		return nil, err
	}

	totals := make(map[entities.ItemName]*ItemTotal)
	for _, record := range records {
		t, exists := totals[record.ItemName]
		if !exists {
			t = &ItemTotal{ItemName: record.ItemName}
			totals[record.ItemName] = t
		}
		t.TotalQty += record.Quantity
		t.EventCount++
	}

	rows := make([]ItemTotal, 0, len(totals))
	for _, t := range totals {
		t.AvgPerEvent = decimal.NewFromInt(int64(t.TotalQty)).
			Div(decimal.NewFromInt(int64(t.EventCount)))
		rows = append(rows, *t)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalQty != rows[j].TotalQty {
			return rows[i].TotalQty > rows[j].TotalQty
		}
		return rows[i].ItemName < rows[j].ItemName
	})
	return rows, nil
}

// FindItem returns every consumption event for the named item in
// registration order, via a full linear scan.
func (s *ReportingService) FindItem(name entities.ItemName) ([]*entities.ConsumptionRecord, error) {
	records, err := s.repo.GetRecords()
	if err != nil {
		return nil, err
	}
	return consumption.LinearSearch(records, name), nil
}

// FindItemFast returns one consumption event for the named item using
// binary search. The service sorts a copy by item name first, which is
// the precondition the bisection relies on.
func (s *ReportingService) FindItemFast(name entities.ItemName) (*entities.ConsumptionRecord, bool, error) {
	records, err := s.repo.GetRecords()
	if err != nil {
		return nil, false, err
	}

	sorted := consumption.MergeSort(records, entities.ByItemName)
	record, found := consumption.BinarySearch(sorted, name)
	return record, found, nil
}
