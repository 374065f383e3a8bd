package milhdbk217f

var (
	fusePartCountLambdaB = []float64{0.01, 0.02, 0.06, 0.05, 0.11, 0.09, 0.12, 0.15, 0.18, 0.18, 0.009, 0.1, 0.21, 2.3}
	fusePiE              = []float64{1.0, 2.0, 8.0, 5.0, 11.0, 9.0, 12.0, 15.0, 18.0, 16.0, 0.9, 10.0, 21.0, 230.0}
)

// Fuses carry no quality factor in either method.
func fusePartCount(a Attributes) (Attributes, string) {
	a.LambdaB = at(fusePartCountLambdaB, a.EnvironmentActiveID)
	a.HazardRateActive = a.LambdaB
	return a, checkFactors(KindFuse, a.HardwareID, factor{"Base hazard rate", a.LambdaB})
}

func fusePartStress(a Attributes) (Attributes, string) {
	a.LambdaB = 0.010
	a.PiE = at(fusePiE, a.EnvironmentActiveID)
	a.HazardRateActive = a.LambdaB * a.PiE
	return a, checkFactors(KindFuse, a.HardwareID, factor{"piE", a.PiE})
}
