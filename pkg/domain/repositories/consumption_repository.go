package repositories

import "github.com/hmoraes/supplytrack/pkg/domain/entities"

// ConsumptionRepository provides access to consumption record data
type ConsumptionRepository interface {
	LoadRecords(records []*entities.ConsumptionRecord) error
	GetRecords() ([]*entities.ConsumptionRecord, error)
	GetByItem(name entities.ItemName) ([]*entities.ConsumptionRecord, error)
	Count() int
}
