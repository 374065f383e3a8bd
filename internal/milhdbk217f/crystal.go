package milhdbk217f

import "math"

var (
	crystalPartCountLambdaB = []float64{0.032, 0.096, 0.32, 0.19, 0.51, 0.38, 0.54, 0.70, 0.90, 0.74, 0.016, 0.42, 1.0, 16.0}
	crystalPiQ              = []float64{1.0, 2.1}
	crystalPiE              = []float64{1.0, 3.0, 10.0, 6.0, 16.0, 12.0, 17.0, 22.0, 28.0, 23.0, 0.5, 13.0, 32.0, 500.0}
)

func crystalPartCount(a Attributes) (Attributes, string) {
	a.LambdaB = at(crystalPartCountLambdaB, a.EnvironmentActiveID)
	a.PiQ = at(crystalPiQ, a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindCrystal, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

// crystalPartStress uses the operating frequency in MHz.
func crystalPartStress(a Attributes) (Attributes, string) {
	a.LambdaB = 0.013 * math.Pow(math.Max(a.FrequencyOperating, 0), 0.23)
	a.PiQ = at(crystalPiQ, a.QualityID)
	a.PiE = at(crystalPiE, a.EnvironmentActiveID)
	a.HazardRateActive = a.LambdaB * a.PiQ * a.PiE
	return a, checkFactors(KindCrystal, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE})
}
