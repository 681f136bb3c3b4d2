// Package output renders consumption reports for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hmoraes/supplytrack/pkg/application/services"
	"github.com/hmoraes/supplytrack/pkg/domain/entities"
)

// Report is the renderable result of a demonstration run.
type Report struct {
	Days         int                           `json:"days"`
	Seed         int64                         `json:"seed"`
	RecordCount  int                           `json:"record_count"`
	TopConsumed  []*entities.ConsumptionRecord `json:"top_consumed"`
	ExpiringSoon []*entities.ConsumptionRecord `json:"expiring_soon"`
	ItemTotals   []services.ItemTotal          `json:"item_totals"`
}

// Config holds configuration for report rendering
type Config struct {
	Format string
	Writer io.Writer
}

// Render writes the report in the configured format
func Render(report *Report, config Config) error {
	switch config.Format {
	case "text":
		return renderText(report, config.Writer)
	case "json":
		return renderJSON(report, config.Writer)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func renderText(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "Supply Consumption Report\n")
	fmt.Fprintf(w, "=========================\n\n")
	fmt.Fprintf(w, "Simulated days: %d (seed %d, %d records)\n\n",
		report.Days, report.Seed, report.RecordCount)

	if len(report.TopConsumed) > 0 {
		fmt.Fprintf(w, "Largest consumption events:\n")
		fmt.Fprintf(w, "%-28s %-8s %-12s %-12s\n",
			"Item", "Qty", "Consumed", "Expires")
		fmt.Fprintf(w, "%-28s %-8s %-12s %-12s\n",
			"----------------------------", "--------", "------------", "------------")
		for _, record := range report.TopConsumed {
			fmt.Fprintf(w, "%-28s %-8d %-12s %-12s\n",
				record.ItemName,
				record.Quantity,
				record.ConsumptionDate.Format("2006-01-02"),
				record.ExpirationDate.Format("2006-01-02"))
		}
		fmt.Fprintln(w)
	}

	if len(report.ExpiringSoon) > 0 {
		fmt.Fprintf(w, "Lots expiring soonest:\n")
		fmt.Fprintf(w, "%-28s %-8s %-12s\n", "Item", "Qty", "Expires")
		fmt.Fprintf(w, "%-28s %-8s %-12s\n",
			"----------------------------", "--------", "------------")
		for _, record := range report.ExpiringSoon {
			fmt.Fprintf(w, "%-28s %-8d %-12s\n",
				record.ItemName,
				record.Quantity,
				record.ExpirationDate.Format("2006-01-02"))
		}
		fmt.Fprintln(w)
	}

	if len(report.ItemTotals) > 0 {
		fmt.Fprintf(w, "Consumption per item:\n")
		fmt.Fprintf(w, "%-28s %-10s %-8s %-10s\n",
			"Item", "Total", "Events", "Avg/Event")
		fmt.Fprintf(w, "%-28s %-10s %-8s %-10s\n",
			"----------------------------", "----------", "--------", "----------")
		for _, row := range report.ItemTotals {
			fmt.Fprintf(w, "%-28s %-10d %-8d %-10s\n",
				row.ItemName,
				row.TotalQty,
				row.EventCount,
				row.AvgPerEvent.StringFixed(2))
		}
		fmt.Fprintln(w)
	}

	return nil
}

func renderJSON(report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	return nil
}
