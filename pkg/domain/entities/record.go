package entities

import (
	"fmt"
	"time"
)

// ItemName identifies a supply item consumed by a diagnostic unit.
type ItemName string

// Quantity represents an integer amount of consumed units.
type Quantity int64

// ConsumptionRecord represents one consumption event for a supply item.
// Records are immutable once created; containers share them by pointer
// and only ever read the fields.
type ConsumptionRecord struct {
	ID              string    `json:"id"`
	ItemName        ItemName  `json:"item_name"`
	Quantity        Quantity  `json:"quantity"`
	ConsumptionDate time.Time `json:"consumption_date"`
	ExpirationDate  time.Time `json:"expiration_date"`
}

// NewConsumptionRecord creates a validated ConsumptionRecord
func NewConsumptionRecord(
	id string,
	name ItemName,
	qty Quantity,
	consumptionDate time.Time,
	expirationDate time.Time,
) (*ConsumptionRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("record id cannot be empty")
	}
	if string(name) == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", qty)
	}
	if consumptionDate.IsZero() {
		return nil, fmt.Errorf("consumption date cannot be zero")
	}
	if expirationDate.IsZero() {
		return nil, fmt.Errorf("expiration date cannot be zero")
	}
	if expirationDate.Before(consumptionDate) {
		return nil, fmt.Errorf("expiration date %s cannot precede consumption date %s",
			expirationDate.Format("2006-01-02"), consumptionDate.Format("2006-01-02"))
	}

	return &ConsumptionRecord{
		ID:              id,
		ItemName:        name,
		Quantity:        qty,
		ConsumptionDate: consumptionDate,
		ExpirationDate:  expirationDate,
	}, nil
}
