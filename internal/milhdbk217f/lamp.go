package milhdbk217f

import "math"

var (
	// Keyed by application: 1 AC, 2 DC.
	lampPartCountLambdaB = map[int][]float64{
		1: {3.9, 7.8, 12.0, 12.0, 16.0, 16.0, 16.0, 19.0, 23.0, 19.0, 2.7, 16.0, 23.0, 100.0},
		2: {13.0, 26.0, 38.0, 38.0, 51.0, 51.0, 51.0, 64.0, 77.0, 64.0, 9.0, 51.0, 77.0, 350.0},
	}
	lampPiA = []float64{1.0, 3.3}
	lampPiE = []float64{1.0, 2.0, 3.0, 3.0, 4.0, 4.0, 4.0, 5.0, 6.0, 5.0, 0.7, 4.0, 6.0, 27.0}
)

func lampPartCount(a Attributes) (Attributes, string) {
	a.LambdaB = at(lampPartCountLambdaB[a.ApplicationID], a.EnvironmentActiveID)
	a.HazardRateActive = a.LambdaB
	return a, checkFactors(KindLamp, a.HardwareID, factor{"Base hazard rate", a.LambdaB})
}

func lampUtilizationFactor(u float64) float64 {
	switch {
	case u < 0.1:
		return 0.10
	case u <= 0.9:
		return 0.72
	}
	return 1.0
}

func lampPartStress(a Attributes) (Attributes, string) {
	a.LambdaB = 0.074 * math.Pow(math.Max(a.VoltageRated, 0), 1.29)
	a.PiU = lampUtilizationFactor(a.Utilization)
	a.PiA = at(lampPiA, a.ApplicationID)
	a.PiE = at(lampPiE, a.EnvironmentActiveID)
	a.HazardRateActive = a.LambdaB * a.PiU * a.PiA * a.PiE
	return a, checkFactors(KindLamp, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piU", a.PiU},
		factor{"piA", a.PiA}, factor{"piE", a.PiE})
}
