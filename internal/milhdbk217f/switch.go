package milhdbk217f

var (
	switchPartCountPiQ = map[int][]float64{
		1: {1.0, 20.0},
		2: {1.0, 20.0},
		3: {1.0, 50.0},
		4: {1.0, 10.0},
		5: {1.0, 8.4},
	}
	switchPartStressPiQ = map[int][]float64{
		5: {1.0, 8.4},
	}
)

// Switches have no base hazard rate model yet, so both methods predict zero
// and say so.
func switchPartCount(a Attributes) (Attributes, string) {
	a.LambdaB = 0
	a.PiQ = at(switchPartCountPiQ[a.SubcategoryID], a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindSwitch, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

func switchPartStress(a Attributes) (Attributes, string) {
	a.LambdaB = 0
	a.PiQ = at(switchPartStressPiQ[a.SubcategoryID], a.QualityID)
	a.HazardRateActive = 0
	return a, checkFactors(KindSwitch, a.HardwareID, factor{"Base hazard rate", a.LambdaB})
}
