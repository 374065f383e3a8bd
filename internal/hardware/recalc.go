package hardware

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zulandar/hwrel/internal/bom"
	"github.com/zulandar/hwrel/internal/milhdbk217f"
	"github.com/zulandar/hwrel/internal/models"
	"gorm.io/gorm"
)

// RecalcOpts holds parameters for recalculating a subtree.
type RecalcOpts struct {
	RootID       uint
	HRMultiplier float64
	Workers      int
	// Limits defaults to milhdbk217f.DefaultStressLimits when empty.
	Limits  milhdbk217f.StressLimitTable
	Trigger string // cli, api or schedule
}

// RecalcResult is the outcome of a recalculation.
type RecalcResult struct {
	Run     models.CalculationRun
	Metrics bom.Metrics
	Totals  [6]float64
	Message string
	Tree    *bom.Tree
}

// Recalculate loads the subtree under opts.RootID, computes it, stores the
// metrics and records a CalculationRun.
func Recalculate(db *gorm.DB, opts RecalcOpts) (*RecalcResult, error) {
	tree, err := LoadTree(db, opts.RootID)
	if err != nil {
		return nil, err
	}

	limits := opts.Limits
	if limits.Len() == 0 {
		limits = milhdbk217f.DefaultStressLimits()
	}
	if opts.Trigger == "" {
		opts.Trigger = "cli"
	}

	agg := bom.NewAggregator(tree, milhdbk217f.NewDispatcher(limits), opts.HRMultiplier)
	agg.Workers = opts.Workers

	start := time.Now()
	m, msg, err := agg.CalculateHardware(int(opts.RootID))
	if err != nil {
		return nil, fmt.Errorf("hardware: calculate %d: %w", opts.RootID, err)
	}
	elapsed := time.Since(start)

	if err := SaveMetrics(db, tree); err != nil {
		return nil, err
	}

	run := models.CalculationRun{
		ID:               uuid.NewString(),
		RootID:           opts.RootID,
		Nodes:            tree.Len(),
		HazardRateActive: m.HazardRateActive,
		Message:          msg,
		DurationMS:       elapsed.Milliseconds(),
		Trigger:          opts.Trigger,
	}
	_ = tree.Walk(int(opts.RootID), func(n *bom.Node) error {
		if n.Part {
			run.Parts++
			if n.Metrics.Overstress {
				run.Overstressed++
			}
		}
		return nil
	})
	if err := db.Create(&run).Error; err != nil {
		return nil, fmt.Errorf("hardware: record calculation run: %w", err)
	}

	return &RecalcResult{
		Run:     run,
		Metrics: m,
		Totals:  m.Totals(),
		Message: msg,
		Tree:    tree,
	}, nil
}

// ListRuns returns the most recent calculation runs for rootID, newest
// first. A rootID of 0 lists runs for every root.
func ListRuns(db *gorm.DB, rootID uint, limit int) ([]models.CalculationRun, error) {
	q := db.Model(&models.CalculationRun{})
	if rootID != 0 {
		q = q.Where("root_id = ?", rootID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var runs []models.CalculationRun
	if err := q.Order("created_at DESC").Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("hardware: list runs: %w", err)
	}
	return runs, nil
}
