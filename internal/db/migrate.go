package db

import (
	"fmt"

	"github.com/zulandar/hwrel/internal/milhdbk217f"
	"github.com/zulandar/hwrel/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllModels returns every GORM model for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Hardware{},
		&models.ElectricalDesign{},
		&models.MechanicalDesign{},
		&models.MilHdbkF{},
		&models.NSWC{},
		&models.Reliability{},
		&models.StressLimit{},
		&models.CalculationRun{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// SeedStressLimits upserts StressLimit rows, typically the overrides from
// configuration.
func SeedStressLimits(db *gorm.DB, entries []milhdbk217f.StressLimit) error {
	for _, e := range entries {
		row := models.StressLimit{
			Category:    e.Category,
			Subcategory: e.Subcategory,
			Quality:     e.Quality,
			Kind:        e.Kind.String(),
			Harsh:       e.Harsh,
			Mild:        e.Mild,
		}

		result := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "category"}, {Name: "subcategory"}, {Name: "quality"}, {Name: "kind"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"harsh", "mild"}),
		}).Create(&row)
		if result.Error != nil {
			return fmt.Errorf("db: seed stress limit %d/%d/%d %s: %w",
				e.Category, e.Subcategory, e.Quality, e.Kind, result.Error)
		}
	}
	return nil
}

// LoadStressLimits returns the built-in derating table with every persisted
// override layered on top.
func LoadStressLimits(db *gorm.DB) (milhdbk217f.StressLimitTable, error) {
	var rows []models.StressLimit
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return milhdbk217f.StressLimitTable{}, fmt.Errorf("db: load stress limits: %w", err)
	}

	entries := make([]milhdbk217f.StressLimit, 0, len(rows))
	for _, r := range rows {
		kind, err := milhdbk217f.ParseStressKind(r.Kind)
		if err != nil {
			return milhdbk217f.StressLimitTable{}, fmt.Errorf("db: stress limit %d: %w", r.ID, err)
		}
		entries = append(entries, milhdbk217f.StressLimit{
			Category:    r.Category,
			Subcategory: r.Subcategory,
			Quality:     r.Quality,
			Kind:        kind,
			Limit:       milhdbk217f.Limit{Harsh: r.Harsh, Mild: r.Mild},
		})
	}
	return milhdbk217f.DefaultStressLimits().Override(entries), nil
}
