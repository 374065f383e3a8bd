package hardware

import (
	"fmt"
	"time"

	"github.com/zulandar/hwrel/internal/bom"
	"github.com/zulandar/hwrel/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadTree reads rootID and all of its descendants into a BoM tree. The
// root becomes a top-level node even when it has a parent in the database.
// Stored metrics from the last calculation are loaded with each node.
func LoadTree(db *gorm.DB, rootID uint) (*bom.Tree, error) {
	root, err := Get(db, rootID)
	if err != nil {
		return nil, err
	}

	tree := bom.NewTree()
	if err := tree.Add(toNode(*root, 0)); err != nil {
		return nil, fmt.Errorf("hardware: load tree %d: %w", rootID, err)
	}

	frontier := []uint{rootID}
	for len(frontier) > 0 {
		var level []models.Hardware
		if err := preloadDesign(db).Where("parent_id IN ?", frontier).Order("id ASC").Find(&level).Error; err != nil {
			return nil, fmt.Errorf("hardware: load tree %d: %w", rootID, err)
		}
		frontier = frontier[:0]
		for _, hw := range level {
			if err := tree.Add(toNode(hw, int(*hw.ParentID))); err != nil {
				return nil, fmt.Errorf("hardware: load tree %d: %w", rootID, err)
			}
			frontier = append(frontier, hw.ID)
		}
	}
	return tree, nil
}

// toNode builds the calculation node for hw. Design records are merged in
// the order hardware, electrical, mechanical, MIL-HDBK-217F, NSWC and
// reliability.
func toNode(hw models.Hardware, parentID int) bom.Node {
	a := bom.MergeContext(&hw, hw.Electrical, hw.Mechanical, hw.MilHdbkF, hw.NSWC, hw.Reliability)
	n := bom.NewNode(int(hw.ID), parentID, hw.Part, a)
	n.Name = hw.Name
	n.RefDes = hw.RefDes
	n.CompRefDes = hw.CompRefDes
	n.CostTypeID = hw.CostTypeID
	n.Cost = hw.Cost
	n.MissionTime = hw.MissionTime

	if r := hw.Reliability; r != nil {
		if r.HazardRateTypeID != 0 {
			n.HazardRateTypeID = r.HazardRateTypeID
		}
		n.HazardRateSpecified = r.HazardRateSpecified
		n.MTBFSpecified = r.MTBFSpecified
		n.HazardRateSoftware = r.HazardRateSoftware
		n.Metrics = metricsFrom(r)
	}
	return n
}

// metricsFrom restores stored metrics. The software column holds the
// authored input, so the computed software rate starts at zero.
func metricsFrom(r *models.Reliability) bom.Metrics {
	return bom.Metrics{
		HazardRateActive:      r.HazardRateActive,
		HazardRateDormant:     r.HazardRateDormant,
		HazardRateLogistics:   r.HazardRateLogistics,
		HazardRateMission:     r.HazardRateMission,
		MTBFLogistics:         r.MTBFLogistics,
		MTBFMission:           r.MTBFMission,
		ReliabilityLogistics:  r.ReliabilityLogistics,
		ReliabilityMission:    r.ReliabilityMission,
		HRActiveVariance:      r.HRActiveVariance,
		HRDormantVariance:     r.HRDormantVariance,
		HRLogisticsVariance:   r.HRLogisticsVariance,
		HRMissionVariance:     r.HRMissionVariance,
		MTBFLogisticsVariance: r.MTBFLogisticsVariance,
		MTBFMissionVariance:   r.MTBFMissionVariance,
		TotalPartCount:        r.TotalPartCount,
		TotalCost:             r.TotalCost,
		CostHour:              r.CostHour,
		CostFailure:           r.CostFailure,
		TotalPowerDissipation: r.TotalPowerDissipation,
		Overstress:            r.Overstress,
		Reason:                r.Reason,
	}
}

// metricColumns are the reliability columns a calculation owns.
var metricColumns = []string{
	"hazard_rate_active", "hazard_rate_dormant", "hazard_rate_logistics", "hazard_rate_mission",
	"mtbf_logistics", "mtbf_mission", "reliability_logistics", "reliability_mission",
	"hr_active_variance", "hr_dormant_variance", "hr_logistics_variance", "hr_mission_variance",
	"mtbf_logistics_variance", "mtbf_mission_variance",
	"total_part_count", "total_cost", "cost_hour", "cost_failure", "total_power_dissipation",
	"overstress", "reason", "calculated_at",
}

// SaveMetrics persists the metrics of every node in tree, along with the
// MIL-HDBK-217F factors of each part. Hazard rates are stored in failures
// per hour. The software hazard rate column holds the authored input and
// is not overwritten.
func SaveMetrics(db *gorm.DB, tree *bom.Tree) error {
	now := time.Now()
	return db.Transaction(func(tx *gorm.DB) error {
		for _, root := range tree.Roots() {
			err := tree.Walk(root.ID, func(n *bom.Node) error {
				rel := reliabilityFrom(n, now)
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "hardware_id"}},
					DoUpdates: clause.AssignmentColumns(metricColumns),
				}).Create(&rel).Error; err != nil {
					return fmt.Errorf("hardware: save metrics of %d: %w", n.ID, err)
				}

				if !n.Part {
					return nil
				}
				var f models.MilHdbkF
				f.HardwareID = uint(n.ID)
				f.RevisionID = uint(n.Attributes.RevisionID)
				if f.RevisionID == 0 {
					f.RevisionID = 1
				}
				f.SetFrom(n.Attributes)
				if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&f).Error; err != nil {
					return fmt.Errorf("hardware: save factors of %d: %w", n.ID, err)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func reliabilityFrom(n *bom.Node, at time.Time) models.Reliability {
	m := n.Metrics
	revision := uint(n.Attributes.RevisionID)
	if revision == 0 {
		revision = 1
	}
	return models.Reliability{
		HardwareID:           uint(n.ID),
		RevisionID:           revision,
		HazardRateTypeID:     n.HazardRateTypeID,
		HazardRateMethodID:   n.Attributes.HazardRateMethodID,
		EnvironmentActiveID:  n.Attributes.EnvironmentActiveID,
		EnvironmentDormantID: n.Attributes.EnvironmentDormantID,
		QualityID:            n.Attributes.QualityID,
		HazardRateSpecified:  n.HazardRateSpecified,
		MTBFSpecified:        n.MTBFSpecified,
		HazardRateSoftware:   n.HazardRateSoftware,

		HazardRateActive:      m.HazardRateActive,
		HazardRateDormant:     m.HazardRateDormant,
		HazardRateLogistics:   m.HazardRateLogistics,
		HazardRateMission:     m.HazardRateMission,
		MTBFLogistics:         m.MTBFLogistics,
		MTBFMission:           m.MTBFMission,
		ReliabilityLogistics:  m.ReliabilityLogistics,
		ReliabilityMission:    m.ReliabilityMission,
		HRActiveVariance:      m.HRActiveVariance,
		HRDormantVariance:     m.HRDormantVariance,
		HRLogisticsVariance:   m.HRLogisticsVariance,
		HRMissionVariance:     m.HRMissionVariance,
		MTBFLogisticsVariance: m.MTBFLogisticsVariance,
		MTBFMissionVariance:   m.MTBFMissionVariance,
		TotalPartCount:        m.TotalPartCount,
		TotalCost:             m.TotalCost,
		CostHour:              m.CostHour,
		CostFailure:           m.CostFailure,
		TotalPowerDissipation: m.TotalPowerDissipation,
		Overstress:            m.Overstress,
		Reason:                m.Reason,
		CalculatedAt:          &at,
	}
}

// RefreshRefDes recomputes the composite reference designators of rootID
// and its descendants and stores them.
func RefreshRefDes(db *gorm.DB, rootID uint) error {
	tree, err := LoadTree(db, rootID)
	if err != nil {
		return err
	}
	if err := tree.MakeCompositeRefDes(int(rootID)); err != nil {
		return fmt.Errorf("hardware: refresh ref des of %d: %w", rootID, err)
	}

	prefix, err := parentCompRefDes(db, rootID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return tree.Walk(int(rootID), func(n *bom.Node) error {
			comp := n.CompRefDes
			if prefix != "" {
				comp = prefix + ":" + comp
			}
			if err := tx.Model(&models.Hardware{}).Where("id = ?", n.ID).Update("comp_ref_des", comp).Error; err != nil {
				return fmt.Errorf("hardware: save ref des of %d: %w", n.ID, err)
			}
			return nil
		})
	})
}

// parentCompRefDes returns the stored composite designator of id's parent,
// or "" for a root.
func parentCompRefDes(db *gorm.DB, id uint) (string, error) {
	var hw models.Hardware
	if err := db.Select("id", "parent_id").Where("id = ?", id).First(&hw).Error; err != nil {
		return "", fmt.Errorf("hardware: get %d: %w", id, err)
	}
	if hw.ParentID == nil {
		return "", nil
	}
	var parent models.Hardware
	if err := db.Select("id", "comp_ref_des").Where("id = ?", *hw.ParentID).First(&parent).Error; err != nil {
		return "", fmt.Errorf("hardware: get parent of %d: %w", id, err)
	}
	return parent.CompRefDes, nil
}
