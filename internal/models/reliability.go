package models

import (
	"time"

	"github.com/zulandar/hwrel/internal/milhdbk217f"
)

// Reliability holds the prediction inputs that select a model and the
// metrics of the last calculation. Hazard rates are stored in failures per
// hour; HazardRateSpecified and HazardRateSoftware are authored in display
// units.
type Reliability struct {
	HardwareID uint `gorm:"primaryKey"`
	RevisionID uint `gorm:"default:1"`

	HazardRateTypeID     int `gorm:"default:1"`
	HazardRateMethodID   int `gorm:"default:1"`
	EnvironmentActiveID  int
	EnvironmentDormantID int
	QualityID            int
	HazardRateSpecified  float64
	MTBFSpecified        float64 `gorm:"column:mtbf_specified"`
	HazardRateSoftware   float64

	HazardRateActive      float64
	HazardRateDormant     float64
	HazardRateLogistics   float64
	HazardRateMission     float64
	MTBFLogistics         float64 `gorm:"column:mtbf_logistics"`
	MTBFMission           float64 `gorm:"column:mtbf_mission"`
	ReliabilityLogistics  float64
	ReliabilityMission    float64
	HRActiveVariance      float64 `gorm:"column:hr_active_variance"`
	HRDormantVariance     float64 `gorm:"column:hr_dormant_variance"`
	HRLogisticsVariance   float64 `gorm:"column:hr_logistics_variance"`
	HRMissionVariance     float64 `gorm:"column:hr_mission_variance"`
	MTBFLogisticsVariance float64 `gorm:"column:mtbf_logistics_variance"`
	MTBFMissionVariance   float64 `gorm:"column:mtbf_mission_variance"`
	TotalPartCount        int
	TotalCost             float64
	CostHour              float64
	CostFailure           float64
	TotalPowerDissipation float64
	Overstress            bool
	Reason                string `gorm:"type:text"`
	CalculatedAt          *time.Time
}

// ApplyTo copies the model selectors and operating environment.
func (r *Reliability) ApplyTo(a *milhdbk217f.Attributes) {
	if r == nil {
		return
	}
	a.HardwareID = int(r.HardwareID)
	a.RevisionID = int(r.RevisionID)
	a.HazardRateMethodID = r.HazardRateMethodID
	a.EnvironmentActiveID = r.EnvironmentActiveID
	a.EnvironmentDormantID = r.EnvironmentDormantID
	a.QualityID = r.QualityID
}

// StressLimit is a persisted derating limit override. Zero subcategory or
// quality match any.
type StressLimit struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Category    int     `gorm:"uniqueIndex:idx_stress_limit;not null"`
	Subcategory int     `gorm:"uniqueIndex:idx_stress_limit;default:0"`
	Quality     int     `gorm:"uniqueIndex:idx_stress_limit;default:0"`
	Kind        string  `gorm:"uniqueIndex:idx_stress_limit;size:16;not null"`
	Harsh       float64 `gorm:"not null"`
	Mild        float64 `gorm:"not null"`
}

// CalculationRun records one recalculation of a subtree.
type CalculationRun struct {
	ID               string `gorm:"primaryKey;size:36"`
	RootID           uint   `gorm:"index"`
	Nodes            int
	Parts            int
	Overstressed     int
	HazardRateActive float64
	Message          string `gorm:"type:text"`
	DurationMS       int64  `gorm:"column:duration_ms"`
	Trigger          string `gorm:"size:16;default:cli"`
	CreatedAt        time.Time
}
