package milhdbk217f

var resistorDefaultResistance = map[int]float64{
	1: 1.0e6, 2: 1.0e6, 3: 100.0, 4: 1000.0, 5: 1.0e5, 6: 5000.0, 7: 5000.0, 8: 1000.0,
	9: 5000.0, 10: 5.0e4, 11: 5000.0, 12: 5000.0, 13: 2.0e5, 14: 2.0e5, 15: 2.0e5,
}

// ApplyDefaults fills unset design inputs with typical values for the
// component so that a sparsely described part still predicts a sensible
// part stress hazard rate. Set fields are left alone.
func ApplyDefaults(a Attributes) Attributes {
	if a.Quantity < 1 {
		a.Quantity = 1
	}
	if a.DutyCycle <= 0 {
		a.DutyCycle = 100.0
	}
	if a.MultAdjFactor <= 0 {
		a.MultAdjFactor = 1.0
	}

	switch KindFor(a.CategoryID, a.SubcategoryID) {
	case KindResistor:
		if a.Resistance <= 0 {
			a.Resistance = resistorDefaultResistance[a.SubcategoryID]
		}
		if a.NElements <= 0 {
			switch {
			case a.SubcategoryID == resistorFilmNetwork:
				a.NElements = 10
			case a.SubcategoryID >= 9 && a.SubcategoryID <= 15:
				a.NElements = 3
			}
		}
		if a.PowerOperating <= 0 && a.PowerRated > 0 {
			a.PowerOperating = 0.5 * a.PowerRated
		}
	case KindInductor:
		if a.TemperatureRatedMax <= 0 {
			a.TemperatureRatedMax = 130.0
			if a.SubcategoryID == inductorCoil {
				a.TemperatureRatedMax = 125.0
			}
		}
	case KindIntegratedCircuit, KindSemiconductor:
		if a.TemperatureCase <= 0 {
			a.TemperatureCase = at(semiconductorCaseTemperature, a.EnvironmentActiveID)
		}
	case KindCapacitor:
		if a.TemperatureRatedMax <= 0 {
			a.TemperatureRatedMax = capacitorDefaultRatedMax[a.SubcategoryID]
		}
	}
	return a
}
