package milhdbk217f

// Meter subcategories.
const (
	meterElapsedTime = 1
	meterPanel       = 2
)

var (
	meterPartCountLambdaB = map[int]map[int][]float64{
		meterElapsedTime: {
			1: {10.0, 20.0, 120.0, 70.0, 180.0, 50.0, 80.0, 160.0, 250.0, 260.0, 5.0, 140.0, 380.0, 0.0},
			2: {15.0, 30.0, 180.0, 105.0, 270.0, 75.0, 120.0, 240.0, 375.0, 390.0, 7.5, 210.0, 570.0, 0.0},
			3: {40.0, 80.0, 480.0, 280.0, 720.0, 200.0, 320.0, 640.0, 1000.0, 1040.0, 20.0, 560.0, 1520.0, 0.0},
		},
		meterPanel: {
			1: {0.09, 0.36, 2.3, 1.1, 3.2, 2.5, 3.8, 5.2, 6.6, 5.4, 0.099, 5.4, 0.0, 0.0},
			2: {0.15, 0.81, 2.8, 1.8, 5.4, 4.3, 6.4, 8.9, 11.0, 9.2, 0.17, 9.2, 0.0, 0.0},
		},
	}
	meterPartCountPiQ = map[int][]float64{
		meterElapsedTime: {1.0, 1.0},
		meterPanel:       {1.0, 3.4},
	}
	meterElapsedTimeLambdaB = []float64{20.0, 30.0, 80.0}
	meterPanelPiA           = []float64{1.0, 1.7}
	meterPanelPiF           = []float64{1.0, 1.0, 2.8}
	meterPanelPiQ           = []float64{1.0, 3.4}
	meterPiE                = map[int][]float64{
		meterElapsedTime: {1.0, 2.0, 12.0, 7.0, 18.0, 5.0, 8.0, 16.0, 25.0, 26.0, 0.5, 14.0, 38.0, 0.0},
		meterPanel:       {1.0, 4.0, 25.0, 12.0, 35.0, 28.0, 42.0, 58.0, 73.0, 60.0, 1.1, 60.0, 0.0, 0.0},
	}
)

// Elapsed time meters are keyed by type, panel meters by application.
func meterPartCount(a Attributes) (Attributes, string) {
	key := a.TypeID
	if a.SubcategoryID == meterPanel {
		key = a.ApplicationID
	}
	a.LambdaB = at(meterPartCountLambdaB[a.SubcategoryID][key], a.EnvironmentActiveID)
	a.PiQ = at(meterPartCountPiQ[a.SubcategoryID], a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindMeter, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

// meterTemperatureFactor derates on the ratio of operating to rated
// temperature.
func meterTemperatureFactor(active, rated float64) float64 {
	s := ratio(active, rated)
	switch {
	case s <= 0.5:
		return 0.5
	case s <= 0.6:
		return 0.6
	case s <= 0.8:
		return 0.8
	}
	return 1.0
}

func meterPartStress(a Attributes) (Attributes, string) {
	a.PiE = at(meterPiE[a.SubcategoryID], a.EnvironmentActiveID)
	switch a.SubcategoryID {
	case meterElapsedTime:
		a.LambdaB = at(meterElapsedTimeLambdaB, a.TypeID)
		a.PiT = meterTemperatureFactor(a.TemperatureActive, a.TemperatureRatedMax)
		a.HazardRateActive = a.LambdaB * a.PiT * a.PiE
		return a, checkFactors(KindMeter, a.HardwareID,
			factor{"Base hazard rate", a.LambdaB}, factor{"piT", a.PiT}, factor{"piE", a.PiE})
	case meterPanel:
		a.LambdaB = 0.09
		a.PiA = at(meterPanelPiA, a.ApplicationID)
		a.PiF = at(meterPanelPiF, a.TypeID)
		a.PiQ = at(meterPanelPiQ, a.QualityID)
		a.HazardRateActive = a.LambdaB * a.PiA * a.PiF * a.PiQ * a.PiE
		return a, checkFactors(KindMeter, a.HardwareID,
			factor{"piA", a.PiA}, factor{"piF", a.PiF}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE})
	}
	a.LambdaB = 0
	a.HazardRateActive = 0
	return a, checkFactors(KindMeter, a.HardwareID, factor{"Base hazard rate", a.LambdaB})
}
