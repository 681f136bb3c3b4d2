// Package commands implements the command line entry points.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/hmoraes/supplytrack/pkg/application/services"
	"github.com/hmoraes/supplytrack/pkg/consumption"
	"github.com/hmoraes/supplytrack/pkg/domain/entities"
	"github.com/hmoraes/supplytrack/pkg/infrastructure/repositories/memory"
	"github.com/hmoraes/supplytrack/pkg/infrastructure/simulation"
	"github.com/hmoraes/supplytrack/pkg/interfaces/cli/output"
)

// Config holds configuration for the demo command
type Config struct {
	Days    int
	Seed    int64
	Format  string
	Verbose bool
	Help    bool
}

// DemoCommand walks the consumption toolkit end to end: it simulates a
// record set, then demonstrates the registration queue, the recent-query
// stack, both searches and both sort-backed reports.
type DemoCommand struct {
	config Config
	logger *zap.Logger
	out    io.Writer
}

// NewDemoCommand creates a new demo command with the given configuration
func NewDemoCommand(config Config, logger *zap.Logger, out io.Writer) *DemoCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DemoCommand{
		config: config,
		logger: logger,
		out:    out,
	}
}

// Execute runs the demo command
func (c *DemoCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if c.config.Days <= 0 {
		return fmt.Errorf("days must be positive, got %d", c.config.Days)
	}

	seed := c.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	generator := simulation.NewGenerator(seed)
	records, err := generator.Generate(c.config.Days)
	if err != nil {
		return fmt.Errorf("failed to simulate consumption data: %w", err)
	}
	c.logger.Info("simulated consumption data",
		zap.Int("days", c.config.Days),
		zap.Int64("seed", seed),
		zap.Int("records", len(records)))

	repo := memory.NewConsumptionRepository(len(records))
	if err := repo.LoadRecords(records); err != nil {
		return fmt.Errorf("failed to load records into repository: %w", err)
	}

	c.demoQueue(records)
	c.demoStack(records)

	reporting := services.NewReportingService(repo)
	if err := c.demoSearches(reporting); err != nil {
		return err
	}

	report, err := c.buildReport(reporting, seed, len(records))
	if err != nil {
		return err
	}

	return output.Render(report, output.Config{
		Format: c.config.Format,
		Writer: c.out,
	})
}

// demoQueue registers the oldest events and processes two of them in
// first-in first-out order.
func (c *DemoCommand) demoQueue(records []*entities.ConsumptionRecord) {
	queue := consumption.NewQueue()
	for _, record := range records[:min(3, len(records))] {
		queue.Register(record)
		c.logger.Info("registered consumption",
			zap.String("item", string(record.ItemName)),
			zap.Int64("quantity", int64(record.Quantity)))
	}

	for i := 0; i < 2; i++ {
		record, ok := queue.ProcessNext()
		if !ok {
			c.logger.Info("consumption queue is empty")
			break
		}
		c.logger.Info("processed consumption",
			zap.String("item", string(record.ItemName)),
			zap.Int64("quantity", int64(record.Quantity)))
	}
}

// demoStack pushes recent events, inspects the top and undoes the most
// recent registration.
func (c *DemoCommand) demoStack(records []*entities.ConsumptionRecord) {
	stack := consumption.NewStack()
	for _, record := range records[:min(4, len(records))] {
		stack.Push(record)
	}

	if top, ok := stack.PeekTop(); ok {
		c.logger.Info("most recent registration",
			zap.String("item", string(top.ItemName)))
	}
	if undone, ok := stack.PopUndo(); ok {
		c.logger.Info("undid registration",
			zap.String("item", string(undone.ItemName)),
			zap.Int64("quantity", int64(undone.Quantity)))
	} else {
		c.logger.Info("nothing to undo")
	}
	if top, ok := stack.PeekTop(); ok {
		c.logger.Info("most recent registration after undo",
			zap.String("item", string(top.ItemName)))
	}
}

func (c *DemoCommand) demoSearches(reporting *services.ReportingService) error {
	matches, err := reporting.FindItem("Reagente A")
	if err != nil {
		return fmt.Errorf("linear search failed: %w", err)
	}
	c.logger.Info("linear search",
		zap.String("item", "Reagente A"),
		zap.Int("matches", len(matches)))

	record, found, err := reporting.FindItemFast("Seringa 5ml")
	if err != nil {
		return fmt.Errorf("binary search failed: %w", err)
	}
	if found {
		c.logger.Info("binary search hit",
			zap.String("item", string(record.ItemName)),
			zap.String("id", record.ID))
	} else {
		c.logger.Info("binary search miss", zap.String("item", "Seringa 5ml"))
	}
	return nil
}

func (c *DemoCommand) buildReport(
	reporting *services.ReportingService,
	seed int64,
	recordCount int,
) (*output.Report, error) {
	top, err := reporting.TopConsumed(5)
	if err != nil {
		return nil, fmt.Errorf("failed to build top-consumed report: %w", err)
	}
	soon, err := reporting.ExpiringSoon(5)
	if err != nil {
		return nil, fmt.Errorf("failed to build expiring-soon report: %w", err)
	}
	totals, err := reporting.ItemTotals()
	if err != nil {
		return nil, fmt.Errorf("failed to build item totals: %w", err)
	}

	return &output.Report{
		Days:         c.config.Days,
		Seed:         seed,
		RecordCount:  recordCount,
		TopConsumed:  top,
		ExpiringSoon: soon,
		ItemTotals:   totals,
	}, nil
}

func (c *DemoCommand) showHelp() {
	fmt.Fprintln(c.out, "supplytrack - supply consumption data structure demo")
	fmt.Fprintln(c.out, "")
	fmt.Fprintln(c.out, "Simulates consumption records for a diagnostic unit and walks")
	fmt.Fprintln(c.out, "them through a FIFO queue, a LIFO stack, linear and binary")
	fmt.Fprintln(c.out, "search, and merge/quick sort backed reports.")
	fmt.Fprintln(c.out, "")
	fmt.Fprintln(c.out, "Usage:")
	fmt.Fprintln(c.out, "  supplytrack [-days N] [-seed N] [-format text|json] [-verbose]")
	fmt.Fprintln(c.out, "")
	fmt.Fprintln(c.out, "Environment:")
	fmt.Fprintln(c.out, "  SUPPLYTRACK_DAYS, SUPPLYTRACK_SEED, SUPPLYTRACK_FORMAT")
	fmt.Fprintln(c.out, "  (flags take precedence; an optional .env file is honored)")
}
