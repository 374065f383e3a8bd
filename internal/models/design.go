package models

import "github.com/zulandar/hwrel/internal/milhdbk217f"

// ElectricalDesign holds electrical ratings, operating values and the
// selector ids the category models are keyed by.
type ElectricalDesign struct {
	HardwareID uint `gorm:"primaryKey"`
	RevisionID uint `gorm:"default:1"`

	ApplicationID   int
	ConfigurationID int
	ConstructionID  int
	ContactFormID   int
	ContactGauge    int
	ContactRatingID int
	FamilyID        int
	InsertID        int
	InsulationID    int
	LoadTypeID      int
	ManufacturingID int
	MatchingID      int
	PackageID       int
	SpecificationID int
	TechnologyID    int
	TypeID          int

	CurrentOperating   float64
	CurrentRated       float64
	PowerOperating     float64
	PowerRated         float64
	VoltageACOperating float64 `gorm:"column:voltage_ac_operating"`
	VoltageDCOperating float64 `gorm:"column:voltage_dc_operating"`
	VoltageRated       float64
	VoltageESD         float64 `gorm:"column:voltage_esd"`
	Resistance         float64
	Capacitance        float64
	FrequencyOperating float64

	NActivePins       int
	NCircuitPlanes    int
	NCycles           float64
	NElements         int
	NHandSoldered     int
	NWaveSoldered     int
	YearsInProduction float64
	Utilization       float64
	FeatureSize       float64
}

// ApplyTo copies the electrical design fields.
func (e *ElectricalDesign) ApplyTo(a *milhdbk217f.Attributes) {
	if e == nil {
		return
	}
	a.HardwareID = int(e.HardwareID)
	a.RevisionID = int(e.RevisionID)

	a.ApplicationID = e.ApplicationID
	a.ConfigurationID = e.ConfigurationID
	a.ConstructionID = e.ConstructionID
	a.ContactFormID = e.ContactFormID
	a.ContactGauge = e.ContactGauge
	a.ContactRatingID = e.ContactRatingID
	a.FamilyID = e.FamilyID
	a.InsertID = e.InsertID
	a.InsulationID = e.InsulationID
	a.LoadTypeID = e.LoadTypeID
	a.ManufacturingID = e.ManufacturingID
	a.MatchingID = e.MatchingID
	a.PackageID = e.PackageID
	a.SpecificationID = e.SpecificationID
	a.TechnologyID = e.TechnologyID
	a.TypeID = e.TypeID

	a.CurrentOperating = e.CurrentOperating
	a.CurrentRated = e.CurrentRated
	a.PowerOperating = e.PowerOperating
	a.PowerRated = e.PowerRated
	a.VoltageACOperating = e.VoltageACOperating
	a.VoltageDCOperating = e.VoltageDCOperating
	a.VoltageRated = e.VoltageRated
	a.VoltageESD = e.VoltageESD
	a.Resistance = e.Resistance
	a.Capacitance = e.Capacitance
	a.FrequencyOperating = e.FrequencyOperating

	a.NActivePins = e.NActivePins
	a.NCircuitPlanes = e.NCircuitPlanes
	a.NCycles = e.NCycles
	a.NElements = e.NElements
	a.NHandSoldered = e.NHandSoldered
	a.NWaveSoldered = e.NWaveSoldered
	a.YearsInProduction = e.YearsInProduction
	a.Utilization = e.Utilization
	a.FeatureSize = e.FeatureSize
}

// MechanicalDesign holds thermal and physical data.
type MechanicalDesign struct {
	HardwareID uint `gorm:"primaryKey"`
	RevisionID uint `gorm:"default:1"`

	TemperatureActive   float64
	TemperatureCase     float64
	TemperatureRatedMax float64
	TemperatureRatedMin float64
	ThetaJC             float64 `gorm:"column:theta_jc"`
	Area                float64
	Weight              float64
}

// ApplyTo copies the mechanical design fields.
func (m *MechanicalDesign) ApplyTo(a *milhdbk217f.Attributes) {
	if m == nil {
		return
	}
	a.HardwareID = int(m.HardwareID)
	a.RevisionID = int(m.RevisionID)
	a.TemperatureActive = m.TemperatureActive
	a.TemperatureCase = m.TemperatureCase
	a.TemperatureRatedMax = m.TemperatureRatedMax
	a.TemperatureRatedMin = m.TemperatureRatedMin
	a.ThetaJC = m.ThetaJC
	a.Area = m.Area
	a.Weight = m.Weight
}

// MilHdbkF holds the factors of the last MIL-HDBK-217F prediction.
type MilHdbkF struct {
	HardwareID uint `gorm:"primaryKey"`
	RevisionID uint `gorm:"default:1"`

	LambdaB   float64
	LambdaCyc float64
	LambdaBD  float64 `gorm:"column:lambda_bd"`
	LambdaBP  float64 `gorm:"column:lambda_bp"`
	LambdaEOS float64 `gorm:"column:lambda_eos"`
	C1        float64 `gorm:"column:c1"`
	C2        float64 `gorm:"column:c2"`
	PiA       float64
	PiC       float64
	PiCD      float64 `gorm:"column:pi_cd"`
	PiCF      float64 `gorm:"column:pi_cf"`
	PiCV      float64 `gorm:"column:pi_cv"`
	PiCYC     float64 `gorm:"column:pi_cyc"`
	PiE       float64
	PiECC     float64 `gorm:"column:pi_ecc"`
	PiF       float64
	PiI       float64
	PiK       float64
	PiL       float64
	PiM       float64
	PiMFG     float64 `gorm:"column:pi_mfg"`
	PiP       float64
	PiPT      float64 `gorm:"column:pi_pt"`
	PiQ       float64
	PiR       float64
	PiS       float64
	PiSR      float64 `gorm:"column:pi_sr"`
	PiT       float64
	PiTAPS    float64 `gorm:"column:pi_taps"`
	PiU       float64
	PiV       float64

	TemperatureJunction float64
	TemperatureHotSpot  float64
	TemperatureRise     float64
}

// ApplyTo copies the stored factors.
func (m *MilHdbkF) ApplyTo(a *milhdbk217f.Attributes) {
	if m == nil {
		return
	}
	a.HardwareID = int(m.HardwareID)
	a.RevisionID = int(m.RevisionID)
	a.LambdaB, a.LambdaCyc, a.LambdaBD, a.LambdaBP, a.LambdaEOS = m.LambdaB, m.LambdaCyc, m.LambdaBD, m.LambdaBP, m.LambdaEOS
	a.C1, a.C2 = m.C1, m.C2
	a.PiA, a.PiC, a.PiCD, a.PiCF, a.PiCV, a.PiCYC = m.PiA, m.PiC, m.PiCD, m.PiCF, m.PiCV, m.PiCYC
	a.PiE, a.PiECC, a.PiF, a.PiI, a.PiK, a.PiL = m.PiE, m.PiECC, m.PiF, m.PiI, m.PiK, m.PiL
	a.PiM, a.PiMFG, a.PiP, a.PiPT, a.PiQ, a.PiR = m.PiM, m.PiMFG, m.PiP, m.PiPT, m.PiQ, m.PiR
	a.PiS, a.PiSR, a.PiT, a.PiTAPS, a.PiU, a.PiV = m.PiS, m.PiSR, m.PiT, m.PiTAPS, m.PiU, m.PiV
	a.TemperatureJunction = m.TemperatureJunction
	a.TemperatureHotSpot = m.TemperatureHotSpot
	a.TemperatureRise = m.TemperatureRise
}

// SetFrom records the factors of a finished prediction.
func (m *MilHdbkF) SetFrom(a milhdbk217f.Attributes) {
	m.LambdaB, m.LambdaCyc, m.LambdaBD, m.LambdaBP, m.LambdaEOS = a.LambdaB, a.LambdaCyc, a.LambdaBD, a.LambdaBP, a.LambdaEOS
	m.C1, m.C2 = a.C1, a.C2
	m.PiA, m.PiC, m.PiCD, m.PiCF, m.PiCV, m.PiCYC = a.PiA, a.PiC, a.PiCD, a.PiCF, a.PiCV, a.PiCYC
	m.PiE, m.PiECC, m.PiF, m.PiI, m.PiK, m.PiL = a.PiE, a.PiECC, a.PiF, a.PiI, a.PiK, a.PiL
	m.PiM, m.PiMFG, m.PiP, m.PiPT, m.PiQ, m.PiR = a.PiM, a.PiMFG, a.PiP, a.PiPT, a.PiQ, a.PiR
	m.PiS, m.PiSR, m.PiT, m.PiTAPS, m.PiU, m.PiV = a.PiS, a.PiSR, a.PiT, a.PiTAPS, a.PiU, a.PiV
	m.TemperatureJunction = a.TemperatureJunction
	m.TemperatureHotSpot = a.TemperatureHotSpot
	m.TemperatureRise = a.TemperatureRise
}

// NSWC holds inputs for the NSWC mechanical reliability handbook. Only its
// keys take part in a MIL-HDBK-217F calculation.
type NSWC struct {
	HardwareID uint `gorm:"primaryKey"`
	RevisionID uint `gorm:"default:1"`
	Cac        float64
	Calt       float64
	Cb         float64
	Cbl        float64
}

// TableName keeps the acronym intact.
func (NSWC) TableName() string { return "nswc" }

// ApplyTo copies the shared keys.
func (n *NSWC) ApplyTo(a *milhdbk217f.Attributes) {
	if n == nil {
		return
	}
	a.HardwareID = int(n.HardwareID)
	a.RevisionID = int(n.RevisionID)
}
