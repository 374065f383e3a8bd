package milhdbk217f

import (
	"math"
	"strings"
)

// Resistor subcategories with distinct models.
const (
	resistorFilmNetwork = 4
	resistorWirewound   = 6
	resistorChassis     = 7
	resistorThermistor  = 8
)

// resistorSpecKey collapses the specification to the map key used by
// subcategories whose tables do not vary by specification.
func resistorSpecKey(subcategory, specification int) int {
	switch subcategory {
	case 2, resistorWirewound:
		return specification
	}
	return 0
}

func resistorPartCount(a Attributes) (Attributes, string) {
	a.LambdaB = at(resistorPartCountLambdaB[a.SubcategoryID][resistorSpecKey(a.SubcategoryID, a.SpecificationID)],
		a.EnvironmentActiveID)
	a.PiQ = at(resistorPartCountPiQ, a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindResistor, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

// resistorBaseRate evaluates the temperature and power stress model.
func resistorBaseRate(subcategory, specification int, temperature, stress float64) float64 {
	key := resistorSpecKey(subcategory, specification)
	if subcategory == resistorWirewound || subcategory == resistorChassis {
		key = 0
	}
	f, ok := resistorFactors[subcategory][key]
	tref := resistorRefTemps[subcategory][key]
	if !ok || tref <= 0 || f[3] == 0 {
		return 0
	}
	t := temperature + 273.0
	return f[0] * math.Pow(math.Exp(f[1]*(t/tref)), f[2]) *
		math.Exp(math.Pow((stress/f[3])*math.Pow(t/273.0, f[4]), f[5]))
}

// resistorResistanceFactor picks the factor for the resistance band the
// value falls in. The band is the number of breakpoints below resistance.
func resistorResistanceFactor(subcategory, specification, family int, resistance float64) float64 {
	var (
		breaks []float64
		values []float64
	)
	switch subcategory {
	case resistorWirewound:
		breaks = resistorResistanceBreaks[subcategory][specification]
		fam := resistorFamilyPiR[subcategory][specification]
		if family >= 1 && family <= len(fam) {
			values = fam[family-1]
		}
	case resistorChassis:
		breaks = resistorResistanceBreaks[subcategory][0]
		fam := resistorFamilyPiR[subcategory][specification]
		if family >= 1 && family <= len(fam) {
			values = fam[family-1]
		}
	default:
		breaks = resistorResistanceBreaks[subcategory][0]
		values = resistorPiR[subcategory]
	}
	if len(values) == 0 {
		return 0
	}
	i := bucket(breaks, resistance)
	if i >= len(values) {
		i = len(values) - 1
	}
	return values[i]
}

// resistorVoltageFactor applies to variable resistors.
func resistorVoltageFactor(subcategory int, voltageRatio float64) float64 {
	switch {
	case subcategory >= 9 && subcategory <= 12:
		return resistorPiVLow[bucket(resistorPiVBreaksLow, voltageRatio)]
	case subcategory >= 13 && subcategory <= 15:
		return resistorPiVHigh[bucket(resistorPiVBreaksHigh, voltageRatio)]
	}
	return 1.0
}

// resistorTapsFactor depends on the number of potentiometer taps.
func resistorTapsFactor(taps int) float64 {
	return math.Pow(float64(taps), 1.5)/25.0 + 0.792
}

// resistorNetworkTemperatureFactor applies to film networks, whose case
// temperature rises with power stress.
func resistorNetworkTemperatureFactor(temperature, stress float64) float64 {
	tcase := temperature + 55.0*stress
	return math.Exp(-4056.0 * (1.0/(tcase+273.0) - 1.0/298.0))
}

func resistorPartStress(a Attributes) (Attributes, string) {
	var msg strings.Builder

	switch a.SubcategoryID {
	case resistorFilmNetwork:
		a.LambdaB = resistorFilmNetworkLambdaB
	case resistorThermistor:
		a.LambdaB = at(resistorThermistorLambdaB, a.TypeID)
	default:
		a.LambdaB = resistorBaseRate(a.SubcategoryID, a.SpecificationID, a.TemperatureActive, a.PowerRatio)
	}
	a.PiQ = at(resistorPartStressPiQ[a.SubcategoryID], a.QualityID)
	a.PiE = at(resistorPiE[a.SubcategoryID], a.EnvironmentActiveID)
	msg.WriteString(checkFactors(KindResistor, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE}))

	a.HazardRateActive = a.LambdaB * a.PiQ * a.PiE
	switch a.SubcategoryID {
	case resistorFilmNetwork:
		a.PiT = resistorNetworkTemperatureFactor(a.TemperatureActive, a.PowerRatio)
		a.HazardRateActive *= a.PiT * float64(a.NElements)
		msg.WriteString(checkFactors(KindResistor, a.HardwareID, factor{"piT", a.PiT}))
	case resistorThermistor:
	case 9, 11, 13, 14, 15:
		a.PiTAPS = resistorTapsFactor(a.NElements)
		a.PiR = resistorResistanceFactor(a.SubcategoryID, a.SpecificationID, a.FamilyID, a.Resistance)
		a.PiV = resistorVoltageFactor(a.SubcategoryID, a.VoltageRatio)
		a.HazardRateActive *= a.PiTAPS * a.PiR * a.PiV
		msg.WriteString(checkFactors(KindResistor, a.HardwareID, factor{"piR", a.PiR}))
	case 10, 12:
		a.PiTAPS = resistorTapsFactor(a.NElements)
		a.PiC = at(resistorPiC[a.SubcategoryID], a.ConstructionID)
		a.PiR = resistorResistanceFactor(a.SubcategoryID, a.SpecificationID, a.FamilyID, a.Resistance)
		a.PiV = resistorVoltageFactor(a.SubcategoryID, a.VoltageRatio)
		a.HazardRateActive *= a.PiTAPS * a.PiC * a.PiR * a.PiV
		msg.WriteString(checkFactors(KindResistor, a.HardwareID, factor{"piC", a.PiC}, factor{"piR", a.PiR}))
	default:
		a.PiR = resistorResistanceFactor(a.SubcategoryID, a.SpecificationID, a.FamilyID, a.Resistance)
		a.HazardRateActive *= a.PiR
		msg.WriteString(checkFactors(KindResistor, a.HardwareID, factor{"piR", a.PiR}))
	}
	return a, msg.String()
}
