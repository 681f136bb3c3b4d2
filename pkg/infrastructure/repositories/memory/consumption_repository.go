package memory

import (
	"fmt"

	"github.com/hmoraes/supplytrack/pkg/domain/entities"
	"github.com/hmoraes/supplytrack/pkg/domain/repositories"
)

// ConsumptionRepository provides in-memory consumption record storage
type ConsumptionRepository struct {
	records []*entities.ConsumptionRecord
	byItem  map[entities.ItemName][]int
}

// NewConsumptionRepository creates a new in-memory consumption repository
func NewConsumptionRepository(expectedRecords int) *ConsumptionRepository {
	return &ConsumptionRepository{
		records: make([]*entities.ConsumptionRecord, 0, expectedRecords),
		byItem:  make(map[entities.ItemName][]int),
	}
}

// Verify interface compliance
var _ repositories.ConsumptionRepository = (*ConsumptionRepository)(nil)

// LoadRecords loads records into the repository in registration order
func (r *ConsumptionRepository) LoadRecords(records []*entities.ConsumptionRecord) error {
	for i, record := range records {
		if record == nil {
			return fmt.Errorf("record %d is nil", i)
		}
		r.AddRecord(record)
	}
	return nil
}

// AddRecord appends a record to the repository
func (r *ConsumptionRepository) AddRecord(record *entities.ConsumptionRecord) {
	r.byItem[record.ItemName] = append(r.byItem[record.ItemName], len(r.records))
	r.records = append(r.records, record)
}

// GetRecords returns all records in registration order. The returned
// slice is a copy, so callers may reorder it freely.
func (r *ConsumptionRepository) GetRecords() ([]*entities.ConsumptionRecord, error) {
	records := make([]*entities.ConsumptionRecord, len(r.records))
	copy(records, r.records)
	return records, nil
}

// GetByItem returns all records for one supply item in registration order
func (r *ConsumptionRepository) GetByItem(name entities.ItemName) ([]*entities.ConsumptionRecord, error) {
	indexes, exists := r.byItem[name]
	if !exists {
		return nil, nil
	}
	records := make([]*entities.ConsumptionRecord, 0, len(indexes))
	for _, i := range indexes {
		records = append(records, r.records[i])
	}
	return records, nil
}

// Count returns the number of stored records
func (r *ConsumptionRepository) Count() int {
	return len(r.records)
}
