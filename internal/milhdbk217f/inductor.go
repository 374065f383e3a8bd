package milhdbk217f

import (
	"math"
	"strings"
)

// Inductor subcategories.
const (
	inductorTransformer = 1
	inductorCoil        = 2
)

var inductorPartCountLambdaB = map[int]map[int][]float64{
	inductorTransformer: {
		1: {0.0035, 0.023, 0.049, 0.019, 0.065, 0.027, 0.037, 0.041, 0.052, 0.11, 0.0018, 0.053, 0.16, 2.3},
		2: {0.0071, 0.046, 0.097, 0.038, 0.13, 0.055, 0.073, 0.081, 0.10, 0.22, 0.035, 0.11, 0.31, 4.7},
		3: {0.023, 0.16, 0.35, 0.13, 0.45, 0.21, 0.27, 0.35, 0.45, 0.82, 0.011, 0.37, 1.2, 16.0},
		4: {0.028, 0.18, 0.39, 0.15, 0.52, 0.22, 0.29, 0.33, 0.42, 0.88, 0.015, 0.42, 1.2, 19.0},
	},
	inductorCoil: {
		1: {0.0017, 0.0073, 0.023, 0.0091, 0.031, 0.011, 0.015, 0.016, 0.022, 0.052, 0.00083, 0.25, 0.073, 1.1},
		2: {0.0033, 0.015, 0.046, 0.018, 0.061, 0.022, 0.03, 0.033, 0.044, 0.10, 0.0017, 0.05, 0.15, 2.2},
	},
}

var inductorPartCountPiQ = []float64{0.25, 1.0, 10.0}

// inductorInsulation holds the reference temperature and exponent for each
// insulation class.
var inductorInsulation = map[int][2]float64{
	1: {329.0, 15.6},
	2: {352.0, 14.0},
	3: {364.0, 8.7},
	4: {409.0, 10.0},
	5: {398.0, 3.8},
	6: {477.0, 8.4},
}

// inductorScale is keyed by subcategory and indexed by insulation class.
var inductorScale = map[int][]float64{
	inductorTransformer: {0.0018, 0.002, 0.0018, 0.002, 0.00125, 0.00159},
	inductorCoil:        {0.000335, 0.000379, 0.000319, 0.00035, 0.00025, 0.000317},
}

var (
	inductorTransformerPiQ = map[int][]float64{
		1: {1.5, 5.0},
		2: {3.0, 7.5},
		3: {3.0, 7.5},
		4: {3.0, 7.5},
	}
	inductorCoilPiQ = []float64{0.03, 0.1, 0.3, 1.0, 4.0, 20.0}
	inductorPiE     = map[int][]float64{
		inductorTransformer: {1.0, 6.0, 12.0, 5.0, 16.0, 6.0, 8.0, 7.0, 9.0, 24.0, 0.5, 13.0, 34.0, 610.0},
		inductorCoil:        {1.0, 4.0, 12.0, 5.0, 16.0, 5.0, 7.0, 6.0, 8.0, 24.0, 0.5, 13.0, 34.0, 610.0},
	}
)

func inductorPartCount(a Attributes) (Attributes, string) {
	a.LambdaB = at(inductorPartCountLambdaB[a.SubcategoryID][a.FamilyID], a.EnvironmentActiveID)
	a.PiQ = at(inductorPartCountPiQ, a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindInductor, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

// inductorTemperatureRise estimates the winding temperature rise from the
// radiating surface area when known, else from weight. The 2.1 input-power
// form divides by the same weight term, so it can never apply once the
// weight form is unavailable.
func inductorTemperatureRise(area, weight, power float64) float64 {
	switch {
	case area > 0:
		return 125.0 * power / area
	case weight > 0:
		return 11.5 * power / math.Pow(weight, 0.6766)
	}
	return 0
}

// inductorHotSpot returns the hot spot temperature in C.
func inductorHotSpot(active, rise float64) float64 {
	return active + 1.1*rise
}

func inductorPartStress(a Attributes) (Attributes, string) {
	var msg strings.Builder

	a.TemperatureRise = inductorTemperatureRise(a.Area, a.Weight, a.PowerOperating)
	a.TemperatureHotSpot = inductorHotSpot(a.TemperatureActive, a.TemperatureRise)

	ins, ok := inductorInsulation[a.InsulationID]
	if ok {
		a.LambdaB = at(inductorScale[a.SubcategoryID], a.InsulationID) *
			math.Exp(math.Pow((a.TemperatureHotSpot+273.0)/ins[0], ins[1]))
	} else {
		a.LambdaB = 0
	}
	a.PiE = at(inductorPiE[a.SubcategoryID], a.EnvironmentActiveID)

	switch a.SubcategoryID {
	case inductorTransformer:
		a.PiQ = at(inductorTransformerPiQ[a.FamilyID], a.QualityID)
		a.HazardRateActive = a.LambdaB * a.PiQ * a.PiE
	case inductorCoil:
		a.PiQ = at(inductorCoilPiQ, a.QualityID)
		a.PiC = 1.0
		if a.ConstructionID != 1 {
			a.PiC = 2.0
		}
		a.HazardRateActive = a.LambdaB * a.PiQ * a.PiE * a.PiC
	default:
		a.PiQ = 0
		a.HazardRateActive = 0
	}
	msg.WriteString(checkFactors(KindInductor, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE}))
	return a, msg.String()
}
