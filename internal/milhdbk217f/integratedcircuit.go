package milhdbk217f

import (
	"math"
	"strings"
)

// Integrated circuit subcategories with distinct models.
const (
	icLinear = 1
	icLogic  = 2
	icEEPROM = 6
	icGaAs   = 9
	icVHSIC  = 10
)

// boltzmann is Boltzmann's constant in eV/K.
const boltzmann = 8.617e-5

// icTechKey returns the technology key used by the part count and C1
// tables.
func icTechKey(subcategory, technology int) int {
	switch subcategory {
	case icLinear, icEEPROM, 7:
		return 0
	}
	return technology
}

// icBreakKey returns the technology key used by the complexity breakpoints.
func icBreakKey(subcategory, technology int) int {
	switch subcategory {
	case 3, icGaAs:
		return technology
	}
	return 0
}

// icComplexityBand returns the zero-based complexity band for the element
// count.
func icComplexityBand(subcategory, technology, elements int) int {
	return upperBound(icComplexityBreaks[subcategory][icBreakKey(subcategory, technology)], float64(elements))
}

func integratedCircuitPartCount(a Attributes) (Attributes, string) {
	if a.SubcategoryID == icVHSIC {
		a.LambdaB = 0
		a.HazardRateActive = 0
		return a, warnf("VHSIC/VLSI integrated circuits have no parts count model, hardware ID: %d.", a.HardwareID)
	}
	bands := icPartCountLambdaB[a.SubcategoryID][icTechKey(a.SubcategoryID, a.TechnologyID)]
	band := icComplexityBand(a.SubcategoryID, a.TechnologyID, a.NElements)
	if band < len(bands) {
		a.LambdaB = at(bands[band], a.EnvironmentActiveID)
	} else if len(bands) > 0 {
		a.LambdaB = at(bands[len(bands)-1], a.EnvironmentActiveID)
	} else {
		a.LambdaB = 0
	}
	a.PiQ = at(icPartCountPiQ, a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindIntegratedCircuit, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

// icDieFactor returns C1.
func icDieFactor(subcategory, technology, elements int) float64 {
	row := icDieComplexity[subcategory][icTechKey(subcategory, technology)]
	if len(row) == 0 {
		return 0
	}
	band := icComplexityBand(subcategory, technology, elements)
	if band >= len(row) {
		band = len(row) - 1
	}
	return row[band]
}

// icPackageFactor returns C2 for the package and number of functional pins.
func icPackageFactor(packageID, pins int) float64 {
	group := 5
	switch packageID {
	case 1, 2, 3:
		group = 1
	case 4:
		group = 2
	case 5:
		group = 3
	case 6:
		group = 4
	}
	f := icPackageFactors[group]
	return f[0] * math.Pow(float64(max(pins, 0)), f[1])
}

func icActivation(a Attributes) float64 {
	switch a.SubcategoryID {
	case icLogic:
		return at(icLogicEa, a.FamilyID)
	case icGaAs:
		return at(icGaAsEa, a.TypeID)
	}
	return icActivationEnergy[a.SubcategoryID]
}

// icTemperatureFactor returns piT for the junction temperature in C.
func icTemperatureFactor(subcategory int, ea, junction float64) float64 {
	tref := 296.0
	if subcategory == icGaAs {
		tref = 423.0
	}
	return 0.1 * math.Exp((-ea/boltzmann)*(1.0/(junction+273.0)-1.0/tref))
}

// icLearningFactor returns piL for the years the design has been in
// production.
func icLearningFactor(years float64) float64 {
	return 0.01 * math.Exp(5.35-0.35*years)
}

// icEEPROMCycling returns the write-cycling hazard rate of EEPROMs.
func icEEPROMCycling(a Attributes) float64 {
	const k = 8.63e-5
	tj := a.TemperatureJunction + 273.0
	n := float64(max(a.NElements, 0))
	a1 := 6.817e-6 * a.NCycles
	var a2, b1, b2 float64
	switch a.ConstructionID {
	case 1:
		b1 = math.Pow(n/16000.0, 0.5) * math.Exp((-0.15/k)*(1.0/tj-1.0/333.0))
	case 2:
		a2 = 2.3
		if a.NCycles > 300000.0 && a.NCycles <= 400000.0 {
			a2 = 1.1
		}
		b1 = math.Pow(n/64000.0, 0.25) * math.Exp((0.1/k)*(1.0/tj-1.0/303.0))
		b2 = math.Pow(n/64000.0, 0.25) * math.Exp((-0.12/k)*(1.0/tj-1.0/303.0))
	}
	ecc := icEEPROMPiECC[a.TypeID]
	cyc := a1 * b1
	if a.PiQ > 0 {
		cyc += a2 * b2 / a.PiQ
	}
	return cyc * ecc
}

func integratedCircuitPartStress(a Attributes) (Attributes, string) {
	var msg strings.Builder

	if a.TemperatureCase <= 0 {
		a.TemperatureCase = at(semiconductorCaseTemperature, a.EnvironmentActiveID)
	}
	a.TemperatureJunction = a.TemperatureCase + a.PowerOperating*a.ThetaJC
	a.PiQ = at(icPiQ, a.QualityID)
	a.PiE = at(icPiE, a.EnvironmentActiveID)
	a.PiT = icTemperatureFactor(a.SubcategoryID, icActivation(a), a.TemperatureJunction)

	if a.SubcategoryID == icVHSIC {
		return icVHSICPartStress(a)
	}

	a.C1 = icDieFactor(a.SubcategoryID, a.TechnologyID, a.NElements)
	a.C2 = icPackageFactor(a.PackageID, a.NActivePins)
	a.PiL = icLearningFactor(a.YearsInProduction)
	msg.WriteString(checkFactors(KindIntegratedCircuit, a.HardwareID,
		factor{"C1", a.C1}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE}))

	switch {
	case a.SubcategoryID >= 1 && a.SubcategoryID <= 4:
		a.HazardRateActive = (a.C1*a.PiT + a.C2*a.PiE) * a.PiQ * a.PiL
	case a.SubcategoryID >= 5 && a.SubcategoryID <= 8:
		a.LambdaCyc = 0
		if a.SubcategoryID == icEEPROM {
			a.PiECC = icEEPROMPiECC[a.TypeID]
			a.LambdaCyc = icEEPROMCycling(a)
		}
		a.HazardRateActive = (a.C1*a.PiT + a.C2*a.PiE + a.LambdaCyc) * a.PiQ * a.PiL
	case a.SubcategoryID == icGaAs:
		a.PiA = at(icGaAsPiA[a.TypeID], a.ApplicationID)
		a.HazardRateActive = (a.C1*a.PiT*a.PiA + a.C2*a.PiE) * a.PiQ * a.PiL
		msg.WriteString(checkFactors(KindIntegratedCircuit, a.HardwareID, factor{"piA", a.PiA}))
	default:
		a.HazardRateActive = 0
	}
	return a, msg.String()
}

// icVHSICPartStress predicts VHSIC/VLSI CMOS devices from die area, feature
// size and ESD susceptibility.
func icVHSICPartStress(a Attributes) (Attributes, string) {
	a.LambdaBD = 0.24
	if a.TypeID == 1 {
		a.LambdaBD = 0.16
	}
	a.PiMFG = 2.0
	if a.ManufacturingID == 1 {
		a.PiMFG = 0.55
	}
	if a.FeatureSize > 0 {
		a.PiCD = (a.Area/0.21)*math.Pow(2.0/a.FeatureSize, 2)*0.64 + 0.36
	} else {
		a.PiCD = 0
	}
	a.LambdaBP = 0.0022 + 1.72e-5*float64(a.NActivePins)
	a.PiPT = icVHSICPiPT[a.PackageID]
	a.LambdaEOS = -math.Log(1.0-0.00057*math.Exp(-0.0002*a.VoltageESD)) / 0.00876
	a.HazardRateActive = a.LambdaBD*a.PiMFG*a.PiT*a.PiCD +
		a.LambdaBP*a.PiE*a.PiQ*a.PiPT + a.LambdaEOS
	return a, checkFactors(KindIntegratedCircuit, a.HardwareID,
		factor{"piCD", a.PiCD}, factor{"piPT", a.PiPT}, factor{"piQ", a.PiQ}, factor{"piE", a.PiE})
}
