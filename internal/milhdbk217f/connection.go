package milhdbk217f

import (
	"math"
	"strings"
)

func connectionPartCount(a Attributes) (Attributes, string) {
	key := 0
	if a.SubcategoryID == connectionCircular || a.SubcategoryID == connectionNonPTH {
		key = a.TypeID
	}
	a.LambdaB = at(connectionPartCountLambdaB[a.SubcategoryID][key], a.EnvironmentActiveID)
	a.PiQ = at(connectionPartCountPiQ, a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindConnection, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

// connectionContactTemperature returns the contact temperature rise for the
// operating current and wire gauge.
func connectionContactTemperature(gauge int, current float64) float64 {
	return connectionGaugeK[gauge] * math.Pow(math.Max(current, 0), 1.85)
}

// connectionMatingFactor derates on mating/unmating cycles per 1000 hours.
func connectionMatingFactor(cycles float64) float64 {
	switch {
	case cycles <= 0.05:
		return 1.0
	case cycles <= 0.5:
		return 1.5
	case cycles <= 5.0:
		return 2.0
	case cycles <= 50.0:
		return 3.0
	}
	return 4.0
}

// connectionPinFactor depends on the number of active pins.
func connectionPinFactor(pins int) float64 {
	if pins < 1 {
		return 0
	}
	return math.Exp(math.Pow(float64(pins-1)/10.0, 0.51064))
}

// connectionPlaneFactor depends on the number of circuit planes.
func connectionPlaneFactor(planes int) float64 {
	if planes > 2 {
		return 0.65 * math.Pow(float64(planes), 0.63)
	}
	return 1.0
}

func connectionPartStress(a Attributes) (Attributes, string) {
	var msg strings.Builder

	if a.SubcategoryID == connectionCircular {
		a.PiE = at(connectionCircularPiE[a.QualityID], a.EnvironmentActiveID)
	} else {
		a.PiE = at(connectionPiE[a.SubcategoryID], a.EnvironmentActiveID)
	}

	switch a.SubcategoryID {
	case connectionCircular, connectionPCBEdge:
		a.TemperatureRise = connectionContactTemperature(a.ContactGauge, a.CurrentOperating)
		t := a.TemperatureActive + a.TemperatureRise + 273.0
		class, ok := connectionInsertClass[a.TypeID][a.SpecificationID][a.InsertID]
		if ok && t > 0 {
			a.LambdaB = class.a * math.Exp(class.b/t+math.Pow(t/class.tref, class.c))
		} else {
			a.LambdaB = 0
		}
		a.PiK = connectionMatingFactor(a.NCycles)
		a.PiP = connectionPinFactor(a.NActivePins)
		a.HazardRateActive = a.LambdaB * a.PiK * a.PiP * a.PiE
		msg.WriteString(checkFactors(KindConnection, a.HardwareID,
			factor{"Base hazard rate", a.LambdaB}, factor{"piK", a.PiK}, factor{"piP", a.PiP}, factor{"piE", a.PiE}))
	case connectionICSocket:
		a.LambdaB = connectionSocketLambdaB
		a.PiP = connectionPinFactor(a.NActivePins)
		a.HazardRateActive = a.LambdaB * a.PiP * a.PiE
		msg.WriteString(checkFactors(KindConnection, a.HardwareID, factor{"piP", a.PiP}, factor{"piE", a.PiE}))
	case connectionPTH:
		a.LambdaB = at(connectionPTHLambdaB, a.TypeID)
		a.PiC = connectionPlaneFactor(a.NCircuitPlanes)
		a.PiQ = at(connectionPartStressPiQ[a.SubcategoryID], a.QualityID)
		joints := float64(a.NWaveSoldered)*a.PiC + float64(a.NHandSoldered)*(a.PiC+13.0)
		a.HazardRateActive = a.LambdaB * joints * a.PiQ * a.PiE
		msg.WriteString(checkFactors(KindConnection, a.HardwareID,
			factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE}))
	case connectionNonPTH:
		a.LambdaB = at(connectionNonPTHLambdaB, a.TypeID)
		a.PiQ = at(connectionPartStressPiQ[a.SubcategoryID], a.QualityID)
		a.HazardRateActive = a.LambdaB * a.PiQ * a.PiE
		msg.WriteString(checkFactors(KindConnection, a.HardwareID,
			factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE}))
	default:
		a.LambdaB = 0
		a.HazardRateActive = 0
		msg.WriteString(checkFactors(KindConnection, a.HardwareID, factor{"Base hazard rate", a.LambdaB}))
	}
	return a, msg.String()
}
