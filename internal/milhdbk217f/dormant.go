package milhdbk217f

// Dormant environments.
const (
	DormantAirborne = 1
	DormantGround   = 2
	DormantNaval    = 3
	DormantSpace    = 4
)

// Dormant multiplier columns: active environment class to dormant class.
const (
	colGroundGround = iota
	colAirborneAirborne
	colAirborneGround
	colNavalNaval
	colNavalGround
	colSpaceSpace
	colSpaceGround
)

var (
	dormantIC          = [7]float64{0.08, 0.06, 0.04, 0.06, 0.05, 0.10, 0.30}
	dormantDiode       = [7]float64{0.04, 0.05, 0.01, 0.04, 0.03, 0.20, 0.80}
	dormantTransistor  = [7]float64{0.05, 0.06, 0.02, 0.05, 0.03, 0.20, 1.00}
	dormantResistor    = [7]float64{0.20, 0.06, 0.03, 0.10, 0.06, 0.50, 1.00}
	dormantCapacitor   = [7]float64{0.10, 0.10, 0.03, 0.10, 0.04, 0.20, 0.40}
	dormantInductor    = [7]float64{0.20, 0.20, 0.20, 0.30, 0.30, 0.50, 1.00}
	dormantRelay       = [7]float64{0.20, 0.20, 0.04, 0.30, 0.08, 0.40, 0.90}
	dormantSwitch      = [7]float64{0.40, 0.20, 0.10, 0.40, 0.20, 0.80, 1.00}
	dormantConnections = [7]float64{0.005, 0.005, 0.003, 0.008, 0.003, 0.02, 0.03}
)

// dormantRow returns the multiplier row for a component. Semiconductors
// other than diodes and transistors have no dormant rate.
func dormantRow(category, subcategory int) (*[7]float64, bool) {
	switch category {
	case CategoryIntegratedCircuit:
		return &dormantIC, true
	case CategorySemiconductor:
		switch {
		case subcategory >= 1 && subcategory <= 2:
			return &dormantDiode, true
		case subcategory >= 3 && subcategory <= 9:
			return &dormantTransistor, true
		}
		return nil, true
	case CategoryResistor:
		return &dormantResistor, true
	case CategoryCapacitor:
		return &dormantCapacitor, true
	case CategoryInductor:
		return &dormantInductor, true
	case CategoryRelay:
		return &dormantRelay, true
	case CategorySwitch:
		return &dormantSwitch, true
	case CategoryConnection:
		return &dormantConnections, true
	}
	return nil, false
}

func dormantColumn(active, dormant int) (int, bool) {
	switch {
	case active >= 1 && active <= 3 && dormant == DormantGround:
		return colGroundGround, true
	case active >= 6 && active <= 10 && dormant == DormantAirborne:
		return colAirborneAirborne, true
	case active >= 6 && active <= 10 && dormant == DormantGround:
		return colAirborneGround, true
	case active >= 4 && active <= 5 && dormant == DormantNaval:
		return colNavalNaval, true
	case active >= 4 && active <= 5 && dormant == DormantGround:
		return colNavalGround, true
	case active == 11 && dormant == DormantSpace:
		return colSpaceSpace, true
	case active == 11 && dormant == DormantGround:
		return colSpaceGround, true
	}
	return 0, false
}

// dormantHazardRate sets HazardRateDormant to the dormant multiplier times
// the active hazard rate. Semiconductors without a dormant row get zero
// whatever the environments.
func dormantHazardRate(a Attributes) (Attributes, string) {
	row, rowOK := dormantRow(a.CategoryID, a.SubcategoryID)
	if rowOK && row == nil {
		a.HazardRateDormant = 0
		return a, ""
	}
	col, colOK := dormantColumn(a.EnvironmentActiveID, a.EnvironmentDormantID)
	if !rowOK || !colOK {
		a.HazardRateDormant = 0
		return a, errorf("Unknown active and/or dormant environment ID for hardware item.  Hardware ID: %d, active environment ID: %d, and dormant environment ID: %d.",
			a.HardwareID, a.EnvironmentActiveID, a.EnvironmentDormantID)
	}
	a.HazardRateDormant = row[col] * a.HazardRateActive
	return a, ""
}
