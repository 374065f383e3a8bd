package milhdbk217f

import (
	"math"
	"strings"
)

// Capacitor subcategories with distinct hazard rate models.
const (
	capacitorTantalumSolid    = 12
	capacitorTantalumNonSolid = 13
	capacitorVariableTrimmer  = 19
)

func capacitorPartCount(a Attributes) (Attributes, string) {
	key := 0
	if a.SubcategoryID == 1 {
		key = a.SpecificationID
	}
	a.LambdaB = at(capacitorPartCountLambdaB[a.SubcategoryID][key], a.EnvironmentActiveID)
	a.PiQ = at(capacitorPartCountPiQ, a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindCapacitor, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

// capacitorRefTemp returns the reference temperature for the rated maximum
// temperature, falling back to the subcategory's typical rating.
func capacitorRefTemp(subcategory int, ratedMax float64) float64 {
	if t, ok := capacitorRefTemps[ratedMax]; ok {
		return t
	}
	return capacitorRefTemps[capacitorDefaultRatedMax[subcategory]]
}

// capacitorSeriesResistanceFactor applies to solid tantalum capacitors and
// depends on the circuit resistance per applied volt.
func capacitorSeriesResistanceFactor(resistance, volts float64) float64 {
	if volts == 0 {
		return 0.066
	}
	cr := resistance / volts
	switch {
	case cr <= 0:
		return 0.066
	case cr <= 0.1:
		return 0.33
	case cr <= 0.2:
		return 0.27
	case cr <= 0.4:
		return 0.2
	case cr <= 0.6:
		return 0.13
	case cr <= 0.8:
		return 0.1
	}
	return 0.066
}

func capacitorPartStress(a Attributes) (Attributes, string) {
	var msg strings.Builder

	f := capacitorFactors[a.SubcategoryID]
	tref := capacitorRefTemp(a.SubcategoryID, a.TemperatureRatedMax)
	if tref > 0 && f[1] > 0 {
		a.LambdaB = f[0] * (math.Pow(a.VoltageRatio/f[1], f[2]) + 1.0) *
			math.Exp(f[3]*math.Pow((a.TemperatureActive+273.0)/tref, f[4]))
	} else {
		a.LambdaB = 0
	}
	a.PiCV = f[5] * math.Pow(math.Max(a.Capacitance, 0), f[6])
	a.PiQ = at(capacitorPartStressPiQ[a.SubcategoryID], a.QualityID)
	a.PiE = at(capacitorPiE[a.SubcategoryID], a.EnvironmentActiveID)
	a.PiC = capacitorPiC[a.ConstructionID]
	a.PiCF = capacitorPiCF[a.ConfigurationID]
	a.PiSR = capacitorSeriesResistanceFactor(a.Resistance, a.VoltageDCOperating+a.VoltageACOperating)

	msg.WriteString(checkFactors(KindCapacitor, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE}))

	switch a.SubcategoryID {
	case capacitorTantalumSolid:
		a.HazardRateActive = a.LambdaB * a.PiCV * a.PiQ * a.PiE * a.PiSR
		msg.WriteString(checkFactors(KindCapacitor, a.HardwareID, factor{"piCV", a.PiCV}, factor{"piC", a.PiC}))
	case capacitorTantalumNonSolid:
		a.HazardRateActive = a.LambdaB * a.PiCV * a.PiQ * a.PiE * a.PiC
		msg.WriteString(checkFactors(KindCapacitor, a.HardwareID, factor{"piCV", a.PiCV}, factor{"piC", a.PiC}))
	case 16, 17, 18:
		a.HazardRateActive = a.LambdaB * a.PiQ * a.PiE
	case capacitorVariableTrimmer:
		a.HazardRateActive = a.LambdaB * a.PiCF * a.PiQ * a.PiE
		msg.WriteString(checkFactors(KindCapacitor, a.HardwareID, factor{"piCF", a.PiCF}))
	default:
		a.HazardRateActive = a.LambdaB * a.PiCV * a.PiQ * a.PiE
		msg.WriteString(checkFactors(KindCapacitor, a.HardwareID, factor{"piCV", a.PiCV}))
	}
	return a, msg.String()
}
