// Package simulation produces synthetic consumption data for a small
// diagnostic unit, standing in for the real registration feed.
package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/hmoraes/supplytrack/pkg/consumption"
	"github.com/hmoraes/supplytrack/pkg/domain/entities"
)

// baseItems mirrors the supply catalog of a small diagnostic unit.
var baseItems = []entities.ItemName{
	"Seringa 5ml",
	"Agulha Descartável",
	"Luva de Procedimento (Par)",
	"Reagente A",
	"Reagente B",
	"Tubo de Coleta (EDTA)",
	"Gaze Estéril",
}

// Generator produces synthetic consumption records from an injected
// random source, so a given seed always yields the same data set.
type Generator struct {
	rng   *rand.Rand
	start time.Time
}

// NewGenerator creates a generator seeded with the given value
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		start: time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC),
	}
}

// Generate simulates days worth of supply consumption and returns the
// records in chronological registration order. For each day it draws
// one event per catalog item: a random item, a quantity in [1,100], a
// consumption date inside the window and an expiration date 30 to 365
// days later.
func (g *Generator) Generate(days int) ([]*entities.ConsumptionRecord, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}

	records := make([]*entities.ConsumptionRecord, 0, days*len(baseItems))
	for i := 0; i < days*len(baseItems); i++ {
		consumed := g.start.AddDate(0, 0, g.rng.Intn(days))
		expires := consumed.AddDate(0, 0, 30+g.rng.Intn(336))

		record, err := entities.NewConsumptionRecord(
			uuid.NewString(),
			baseItems[g.rng.Intn(len(baseItems))],
			entities.Quantity(1+g.rng.Intn(100)),
			consumed,
			expires,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to build simulated record %d: %w", i, err)
		}
		records = append(records, record)
	}

	// The queue demo depends on chronological registration order.
	return consumption.MergeSort(records, entities.ByConsumptionDate), nil
}

// CatalogSize reports the number of supply items in the simulated catalog
func CatalogSize() int {
	return len(baseItems)
}
