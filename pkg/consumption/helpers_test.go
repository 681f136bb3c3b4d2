package consumption

import (
	"fmt"
	"time"

	"github.com/hmoraes/supplytrack/pkg/domain/entities"
)

// rec builds a test record with the given item, quantity and dates.
func rec(name string, qty int64, consumed, expires string) *entities.ConsumptionRecord {
	parse := func(value string) time.Time {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			panic(err)
		}
		return t
	}
	record, err := entities.NewConsumptionRecord(
		fmt.Sprintf("%s-%d-%s", name, qty, consumed),
		entities.ItemName(name),
		entities.Quantity(qty),
		parse(consumed),
		parse(expires),
	)
	if err != nil {
		panic(err)
	}
	return record
}

// recs builds one record per item name with fixed quantity and dates.
func recs(names ...string) []*entities.ConsumptionRecord {
	records := make([]*entities.ConsumptionRecord, 0, len(names))
	for _, name := range names {
		records = append(records, rec(name, 1, "2025-08-20", "2025-12-31"))
	}
	return records
}
