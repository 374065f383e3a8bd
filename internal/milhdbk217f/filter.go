package milhdbk217f

var (
	filterPartCountLambdaB = map[int][]float64{
		1: {0.022, 0.044, 0.13, 0.088, 0.20, 0.15, 0.20, 0.24, 0.29, 0.24, 0.018, 0.15, 0.33, 2.6},
		2: {0.12, 0.24, 0.72, 0.48, 1.1, 0.84, 1.1, 1.3, 1.6, 1.3, 0.096, 0.84, 1.8, 14.0},
		3: {0.12, 0.24, 0.72, 0.48, 1.1, 0.84, 1.1, 1.3, 1.6, 1.3, 0.096, 0.84, 1.8, 14.0},
		4: {0.27, 0.54, 1.6, 1.1, 2.4, 1.9, 2.4, 3.0, 3.5, 3.0, 0.22, 1.9, 4.1, 32.0},
	}
	filterPartStressLambdaB = []float64{0.022, 0.12, 0.12, 0.27}
	filterPiQ               = []float64{1.0, 2.9}
	filterPiE               = []float64{1.0, 2.0, 6.0, 4.0, 9.0, 7.0, 9.0, 11.0, 13.0, 11.0, 0.8, 7.0, 15.0, 120.0}
)

func filterPartCount(a Attributes) (Attributes, string) {
	a.LambdaB = at(filterPartCountLambdaB[a.TypeID], a.EnvironmentActiveID)
	a.PiQ = at(filterPiQ, a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindFilter, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

func filterPartStress(a Attributes) (Attributes, string) {
	a.LambdaB = at(filterPartStressLambdaB, a.TypeID)
	a.PiQ = at(filterPiQ, a.QualityID)
	a.PiE = at(filterPiE, a.EnvironmentActiveID)
	a.HazardRateActive = a.LambdaB * a.PiQ * a.PiE
	return a, checkFactors(KindFilter, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE})
}
