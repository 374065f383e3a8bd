package milhdbk217f

import (
	"math"
	"strings"
)

// Relay subcategories.
const (
	relayMechanical = 1
	relaySolidState = 2
)

// relayNonMIL is the quality level of commercial relays.
const relayNonMIL = 7

var relayPartCountLambdaB = map[int]map[int][]float64{
	relayMechanical: {
		1: {0.13, 0.28, 2.1, 1.1, 3.8, 1.1, 1.4, 1.9, 2.0, 7.0, 0.66, 3.5, 10.0, 0.0},
		2: {0.43, 0.89, 6.9, 3.6, 12.0, 3.4, 4.4, 6.2, 6.7, 22.0, 0.21, 11.0, 32.0, 0.0},
		3: {0.13, 0.26, 2.1, 1.1, 3.8, 1.1, 1.4, 1.9, 2.0, 7.0, 0.66, 3.5, 10.0, 0.0},
		4: {0.11, 0.23, 1.8, 0.92, 3.3, 0.96, 1.2, 2.1, 2.3, 6.5, 0.54, 3.0, 9.0, 0.0},
		5: {0.29, 0.60, 4.8, 2.4, 8.2, 2.3, 2.9, 4.1, 4.5, 15.0, 0.14, 7.6, 22.0, 0.0},
		6: {0.88, 1.8, 14.0, 7.4, 26.0, 7.1, 9.1, 13.0, 14.0, 46.0, 0.44, 24.0, 67.0, 0.0},
	},
	relaySolidState: {
		1: {0.40, 1.2, 4.8, 2.4, 6.8, 4.8, 7.6, 8.4, 13.0, 9.2, 0.16, 4.8, 13.0, 240.0},
		2: {0.40, 1.2, 4.8, 2.4, 6.8, 4.8, 7.6, 8.4, 13.0, 9.2, 0.16, 4.8, 13.0, 240.0},
		3: {0.50, 1.5, 6.0, 3.0, 8.5, 5.0, 9.5, 11.0, 16.0, 12.0, 0.20, 5.0, 17.0, 300.0},
	},
}

var relayPartCountPiQ = map[int][]float64{
	relayMechanical: {0.6, 3.0, 9.0},
	relaySolidState: {0.0, 1.0, 4.0},
}

// relayTemperatureRating holds Tref, K1 and K2 per temperature rating:
// 1 is 85C, 2 is 125C.
var relayTemperatureRating = map[int][3]float64{
	1: {352.0, 0.00555, 15.7},
	2: {377.0, 0.0054, 10.4},
}

// relayLoadStress is keyed by load type: 1 resistive, 2 inductive, 3 lamp.
var relayLoadStress = map[int]float64{1: 0.8, 2: 0.4, 3: 0.2}

var (
	relayPiC        = []float64{1.0, 1.5, 1.75, 2.0, 2.5, 3.0, 4.25, 5.5, 8.0}
	relayPiQ        = []float64{0.1, 0.3, 0.45, 0.6, 1.0, 1.5, 3.0}
	relayPiEMIL     = []float64{1.0, 2.0, 15.0, 8.0, 27.0, 7.0, 9.0, 11.0, 12.0, 46.0, 0.50, 25.0, 66.0, 0.0}
	relayPiENonMIL  = []float64{2.0, 5.0, 44.0, 24.0, 78.0, 15.0, 20.0, 28.0, 38.0, 140.0, 1.0, 72.0, 200.0, 0.0}
	relaySolidLambB = []float64{0.4, 0.5, 0.5}
	relaySolidPiQ   = []float64{1.0, 4.0}
	relaySolidPiE   = []float64{1.0, 3.0, 12.0, 6.0, 17.0, 12.0, 19.0, 21.0, 32.0, 23.0, 0.4, 12.0, 33.0, 590.0}
)

// relayPiF is keyed by contact rating, application and construction and
// holds the MIL and non-MIL application factors.
var relayPiF = map[int]map[int]map[int][2]float64{
	1: {
		1: {1: {4.0, 8.0}, 2: {6.0, 18.0}, 3: {1.0, 3.0}, 4: {4.0, 8.0}, 5: {7.0, 14.0}, 6: {7.0, 4.0}},
	},
	2: {
		1: {1: {3.0, 6.0}, 2: {5.0, 10.0}, 3: {6.0, 12.0}},
		2: {1: {5.0, 10.0}, 2: {5.0, 10.0}, 3: {2.0, 6.0}, 4: {6.0, 12.0}, 5: {100.0, 100.0}, 6: {10.0, 20.0}},
		3: {1: {10.0, 20.0}, 2: {100.0, 100.0}},
		4: {1: {6.0, 12.0}, 2: {1.0, 3.0}},
		5: {1: {25.0, 0.0}, 2: {25.0, 0.0}, 3: {6.0, 0.0}},
		6: {1: {10.0, 20.0}},
		7: {1: {9.0, 12.0}},
		8: {1: {10.0, 20.0}, 2: {5.0, 10.0}, 3: {5.0, 10.0}},
	},
	3: {
		1: {1: {20.0, 40.0}, 2: {5.0, 10.0}},
		2: {1: {3.0, 6.0}, 2: {3.0, 6.0}, 3: {1.0, 3.0}, 4: {2.0, 6.0}, 5: {3.0, 6.0}, 6: {2.0, 6.0}, 7: {2.0, 6.0}},
	},
	4: {
		1: {1: {7.0, 14.0}, 2: {12.0, 24.0}, 3: {10.0, 20.0}, 4: {5.0, 10.0}},
	},
}

func relayPartCount(a Attributes) (Attributes, string) {
	a.LambdaB = at(relayPartCountLambdaB[a.SubcategoryID][a.TypeID], a.EnvironmentActiveID)
	a.PiQ = at(relayPartCountPiQ[a.SubcategoryID], a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindRelay, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

// relayCyclingFactor depends on cycles per hour and whether the relay is
// built to a MIL specification.
func relayCyclingFactor(cycles float64, nonMIL bool) float64 {
	if !nonMIL {
		if cycles >= 1.0 {
			return cycles / 10.0
		}
		return 0.1
	}
	switch {
	case cycles > 1000.0:
		return math.Pow(cycles/100.0, 2)
	case cycles >= 10.0:
		return cycles / 10.0
	}
	return 1.0
}

func relayPartStress(a Attributes) (Attributes, string) {
	var msg strings.Builder

	switch a.SubcategoryID {
	case relayMechanical:
		rating, ok := relayTemperatureRating[a.InsulationID]
		if !ok {
			rating = relayTemperatureRating[1]
		}
		a.LambdaB = rating[1] * math.Exp(math.Pow((a.TemperatureActive+273.0)/rating[0], rating[2]))

		k, ok := relayLoadStress[a.LoadTypeID]
		if !ok {
			k = relayLoadStress[3]
		}
		a.PiL = math.Exp(math.Pow(a.CurrentRatio/k, 2))
		a.PiC = at(relayPiC, a.ContactFormID)

		nonMIL := a.QualityID == relayNonMIL
		a.PiCYC = relayCyclingFactor(a.NCycles, nonMIL)
		f, ok := relayPiF[a.ContactRatingID][a.ApplicationID][a.ConstructionID]
		if ok {
			a.PiF = f[0]
			if nonMIL {
				a.PiF = f[1]
			}
		} else {
			a.PiF = 0
		}
		a.PiQ = at(relayPiQ, a.QualityID)
		if nonMIL {
			a.PiE = at(relayPiENonMIL, a.EnvironmentActiveID)
		} else {
			a.PiE = at(relayPiEMIL, a.EnvironmentActiveID)
		}
		a.HazardRateActive = a.LambdaB * a.PiL * a.PiC * a.PiCYC * a.PiF * a.PiQ * a.PiE
		msg.WriteString(checkFactors(KindRelay, a.HardwareID,
			factor{"Base hazard rate", a.LambdaB}, factor{"piC", a.PiC}, factor{"piF", a.PiF},
			factor{"piQ", a.PiQ}, factor{"piE", a.PiE}))
	case relaySolidState:
		a.LambdaB = at(relaySolidLambB, a.TypeID)
		a.PiQ = at(relaySolidPiQ, a.QualityID)
		a.PiE = at(relaySolidPiE, a.EnvironmentActiveID)
		a.HazardRateActive = a.LambdaB * a.PiQ * a.PiE
		msg.WriteString(checkFactors(KindRelay, a.HardwareID,
			factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE}))
	default:
		a.LambdaB = 0
		a.HazardRateActive = 0
		msg.WriteString(checkFactors(KindRelay, a.HardwareID, factor{"Base hazard rate", a.LambdaB}))
	}
	return a, msg.String()
}
