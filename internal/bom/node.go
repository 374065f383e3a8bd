// Package bom holds the hardware Bill of Materials tree and rolls component
// predictions up through it.
package bom

import "github.com/zulandar/hwrel/internal/milhdbk217f"

// Hazard rate types.
const (
	HazardRateAssessed  = 1 // predicted, or summed from children
	HazardRateSpecified = 2
	MTBFSpecified       = 3
)

// Cost types.
const (
	CostSpecified  = 1
	CostCalculated = 2
)

// Node is one item in the BoM: a component/piece part or an assembly.
// Quantity, duty cycle and adjustment factors live in Attributes so parts
// and assemblies scale the same way.
type Node struct {
	ID         int    `json:"id"`
	ParentID   int    `json:"parent_id"`
	Part       bool   `json:"part"`
	Name       string `json:"name"`
	RefDes     string `json:"ref_des"`
	CompRefDes string `json:"comp_ref_des"`

	CostTypeID          int     `json:"cost_type_id"`
	Cost                float64 `json:"cost"`
	HazardRateTypeID    int     `json:"hazard_rate_type_id"`
	HazardRateSpecified float64 `json:"hazard_rate_specified"`
	MTBFSpecified       float64 `json:"mtbf_specified"`
	HazardRateSoftware  float64 `json:"hazard_rate_software"`
	MissionTime         float64 `json:"mission_time"`

	Attributes milhdbk217f.Attributes `json:"attributes"`
	Metrics    Metrics                `json:"metrics"`
}

// Metrics are the computed reliability, cost and power results of a node.
// Hazard rates are in failures per hour.
type Metrics struct {
	HazardRateActive    float64 `json:"hazard_rate_active"`
	HazardRateDormant   float64 `json:"hazard_rate_dormant"`
	HazardRateSoftware  float64 `json:"hazard_rate_software"`
	HazardRateLogistics float64 `json:"hazard_rate_logistics"`
	HazardRateMission   float64 `json:"hazard_rate_mission"`

	MTBFLogistics        float64 `json:"mtbf_logistics"`
	MTBFMission          float64 `json:"mtbf_mission"`
	ReliabilityLogistics float64 `json:"reliability_logistics"`
	ReliabilityMission   float64 `json:"reliability_mission"`

	// Squares of the matching rates, and the reciprocals of those squares
	// for the MTBF fields.
	HRActiveVariance      float64 `json:"hr_active_variance"`
	HRDormantVariance     float64 `json:"hr_dormant_variance"`
	HRLogisticsVariance   float64 `json:"hr_logistics_variance"`
	HRMissionVariance     float64 `json:"hr_mission_variance"`
	MTBFLogisticsVariance float64 `json:"mtbf_logistics_variance"`
	MTBFMissionVariance   float64 `json:"mtbf_mission_variance"`

	TotalPartCount        int     `json:"total_part_count"`
	TotalCost             float64 `json:"total_cost"`
	CostHour              float64 `json:"cost_hour"`
	CostFailure           float64 `json:"cost_failure"`
	TotalPowerDissipation float64 `json:"total_power_dissipation"`

	Overstress bool   `json:"overstress"`
	Reason     string `json:"reason"`
}

// NewNode returns a part or assembly with neutral scaling defaults filled
// into a.
func NewNode(id, parentID int, part bool, a milhdbk217f.Attributes) Node {
	a.HardwareID = id
	return Node{
		ID:               id,
		ParentID:         parentID,
		Part:             part,
		CostTypeID:       CostCalculated,
		HazardRateTypeID: HazardRateAssessed,
		Attributes:       neutral(a),
	}
}

// NewPart returns a component/piece part with neutral scaling defaults.
func NewPart(id, parentID int, a milhdbk217f.Attributes) Node {
	return NewNode(id, parentID, true, a)
}

// NewAssembly returns an assembly whose metrics are summed from its
// children.
func NewAssembly(id, parentID int) Node {
	return NewNode(id, parentID, false, milhdbk217f.Attributes{})
}

// Totals returns the active, dormant and software hazard rates, total cost,
// total part count and total power dissipation, in that order.
func (m Metrics) Totals() [6]float64 {
	return [6]float64{
		m.HazardRateActive,
		m.HazardRateDormant,
		m.HazardRateSoftware,
		m.TotalCost,
		float64(m.TotalPartCount),
		m.TotalPowerDissipation,
	}
}

func neutral(a milhdbk217f.Attributes) milhdbk217f.Attributes {
	if a.Quantity == 0 {
		a.Quantity = 1
	}
	if a.DutyCycle == 0 {
		a.DutyCycle = 100.0
	}
	if a.MultAdjFactor == 0 {
		a.MultAdjFactor = 1.0
	}
	return a
}
