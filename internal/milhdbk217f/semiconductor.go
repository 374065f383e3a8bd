package milhdbk217f

import (
	"math"
	"strings"
)

// Semiconductor subcategories.
const (
	semiLowFreqDiode     = 1
	semiHighFreqDiode    = 2
	semiLowFreqBipolar   = 3
	semiLowFreqSiFET     = 4
	semiUnijunction      = 5
	semiHighFreqLowNoise = 6
	semiHighFreqPower    = 7
	semiHighFreqGaAsFET  = 8
	semiHighFreqSiFET    = 9
	semiThyristor        = 10
	semiOptoDetector     = 11
	semiAlphanumericDisp = 12
	semiLaserDiode       = 13
)

// semiconductorGaAsType is the high frequency diode type with its own
// quality scale.
const semiconductorGaAsType = 5

func semiconductorTypeKey(subcategory, typeID int) int {
	switch subcategory {
	case 1, 2, 3, 8, 11, 13:
		return typeID
	}
	return 0
}

func semiconductorPartCountQuality(subcategory, typeID int) []float64 {
	switch subcategory {
	case semiHighFreqDiode:
		if typeID == semiconductorGaAsType {
			return semiconductorQualityHFGaAs
		}
		return semiconductorQualityHF
	case semiLaserDiode:
		return semiconductorQualityLaser
	}
	return semiconductorQualityGeneral
}

func semiconductorPartStressQuality(subcategory, typeID int) []float64 {
	switch subcategory {
	case semiHighFreqDiode:
		if typeID == semiconductorGaAsType {
			return semiconductorQualityHFGaAs
		}
		return semiconductorQualityHF
	case semiHighFreqLowNoise, semiHighFreqPower, semiHighFreqGaAsFET, semiHighFreqSiFET:
		return semiconductorQualityRF
	case semiLaserDiode:
		return semiconductorQualityLaser
	}
	return semiconductorQualityGeneral
}

func semiconductorPiEFor(subcategory int) []float64 {
	switch subcategory {
	case semiHighFreqDiode, semiHighFreqLowNoise, semiHighFreqPower:
		return semiconductorPiEHF
	case semiHighFreqGaAsFET:
		return semiconductorPiERF
	case semiOptoDetector, semiAlphanumericDisp, semiLaserDiode:
		return semiconductorPiEOpto
	case 1, 3, 4, 5, 9, 10:
		return semiconductorPiEGeneral
	}
	return nil
}

func semiconductorPartCount(a Attributes) (Attributes, string) {
	a.LambdaB = at(semiconductorPartCountLambdaB[a.SubcategoryID][semiconductorTypeKey(a.SubcategoryID, a.TypeID)],
		a.EnvironmentActiveID)
	a.PiQ = at(semiconductorPartCountQuality(a.SubcategoryID, a.TypeID), a.QualityID)
	a.HazardRateActive = a.LambdaB * a.PiQ
	return a, checkFactors(KindSemiconductor, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piQ", a.PiQ})
}

// semiconductorBaseRate returns the stress base hazard rate. Frequency is
// in GHz and power in W for the RF models.
func semiconductorBaseRate(a Attributes) float64 {
	switch a.SubcategoryID {
	case semiHighFreqPower:
		return 0.032 * math.Exp(0.354*a.FrequencyOperating+0.00558*a.PowerOperating)
	case semiHighFreqGaAsFET:
		if a.FrequencyOperating > 1.0 && a.FrequencyOperating <= 10.0 && a.PowerOperating < 0.1 {
			return 0.052
		}
		return 0.0093 * math.Exp(0.429*a.FrequencyOperating+0.486*a.PowerOperating)
	case semiAlphanumericDisp:
		lb := 0.00043 * float64(a.NElements)
		if a.ApplicationID == 1 || a.ApplicationID == 3 {
			lb += 0.000043
		}
		return lb
	}
	if lb, ok := semiconductorLambdaB[a.SubcategoryID]; ok {
		return lb
	}
	return at(semiconductorTypeLambdaB[a.SubcategoryID], a.TypeID)
}

// semiconductorJunctionTemperature fills in default case temperature and
// thermal resistance before computing the junction temperature.
func semiconductorJunctionTemperature(a Attributes) Attributes {
	if a.TemperatureCase <= 0 {
		a.TemperatureCase = at(semiconductorCaseTemperature, a.EnvironmentActiveID)
	}
	if a.ThetaJC <= 0 {
		a.ThetaJC = at(semiconductorThetaJC, a.PackageID)
		if a.ThetaJC <= 0 {
			a.ThetaJC = 70.0
		}
	}
	a.TemperatureJunction = a.TemperatureCase + a.ThetaJC*a.PowerOperating
	return a
}

func semiconductorTemperatureFactor(a Attributes) float64 {
	arrhenius := func(ea float64) float64 {
		return math.Exp(-ea * (1.0/(a.TemperatureJunction+273.0) - 1.0/298.0))
	}
	switch a.SubcategoryID {
	case semiLowFreqDiode, semiHighFreqDiode:
		ea := at(semiconductorTempFactorByType[a.SubcategoryID], a.TypeID)
		if ea == 0 {
			return 0
		}
		return arrhenius(ea)
	case semiHighFreqPower:
		f, ok := semiconductorRFTempFactor[a.TypeID]
		if !ok {
			return 0
		}
		if a.VoltageRatio <= 0.4 {
			return f[1] * arrhenius(f[0])
		}
		return f[2] * (a.VoltageRatio - 0.35) * arrhenius(f[0])
	}
	if ea, ok := semiconductorTempFactor[a.SubcategoryID]; ok {
		return arrhenius(ea)
	}
	return 0
}

func semiconductorApplicationFactor(a Attributes) float64 {
	switch a.SubcategoryID {
	case semiHighFreqPower:
		if a.ApplicationID == 1 {
			return 7.6
		}
		return 0.06*(a.DutyCycle/100.0) + 0.4
	case semiLaserDiode:
		if a.ApplicationID == 1 {
			return 4.4
		}
		return math.Sqrt(math.Max(a.DutyCycle, 0) / 100.0)
	}
	return at(semiconductorPiA[a.SubcategoryID], a.ApplicationID)
}

func semiconductorStressFactor(a Attributes) float64 {
	vr := a.VoltageRatio
	switch a.SubcategoryID {
	case semiLowFreqDiode:
		if a.TypeID > 5 {
			return 1.0
		}
		if vr <= 0.3 {
			return 0.054
		}
		return math.Pow(vr, 2.43)
	case semiLowFreqBipolar, semiHighFreqLowNoise:
		return 0.045 * math.Exp(3.1*vr)
	case semiThyristor:
		if vr <= 0.3 {
			return 0.1
		}
		return math.Pow(vr, 1.9)
	}
	return 1.0
}

func semiconductorRatingFactor(a Attributes) float64 {
	switch a.SubcategoryID {
	case semiHighFreqDiode:
		if a.TypeID == 4 {
			if a.PowerRated <= 0 {
				return 0
			}
			return 0.326*math.Log(a.PowerRated) - 0.25
		}
		return 1.0
	case semiLowFreqBipolar, semiHighFreqLowNoise:
		if a.PowerRated < 0.1 {
			return 0.43
		}
		return math.Pow(a.PowerRated, 0.37)
	case semiThyristor:
		return math.Pow(math.Max(a.CurrentRated, 0), 0.4)
	}
	return 1.0
}

// semiconductorPowerDegradation applies to laser diodes.
func semiconductorPowerDegradation(powerRatio float64) float64 {
	if powerRatio >= 1.0 {
		return 0
	}
	return 1.0 / (2.0 * (1.0 - powerRatio))
}

func semiconductorPartStress(a Attributes) (Attributes, string) {
	var msg strings.Builder

	a = semiconductorJunctionTemperature(a)
	a.LambdaB = semiconductorBaseRate(a)
	a.PiT = semiconductorTemperatureFactor(a)
	a.PiQ = at(semiconductorPartStressQuality(a.SubcategoryID, a.TypeID), a.QualityID)
	a.PiE = at(semiconductorPiEFor(a.SubcategoryID), a.EnvironmentActiveID)
	msg.WriteString(checkFactors(KindSemiconductor, a.HardwareID,
		factor{"Base hazard rate", a.LambdaB}, factor{"piT", a.PiT},
		factor{"piQ", a.PiQ}, factor{"piE", a.PiE}))

	a.HazardRateActive = a.LambdaB * a.PiT * a.PiQ * a.PiE
	switch a.SubcategoryID {
	case semiLowFreqDiode:
		a.PiS = semiconductorStressFactor(a)
		a.PiC = at(semiconductorPiC, a.ConstructionID)
		a.HazardRateActive *= a.PiS * a.PiC
		msg.WriteString(checkFactors(KindSemiconductor, a.HardwareID, factor{"piS", a.PiS}, factor{"piC", a.PiC}))
	case semiHighFreqDiode:
		a.PiA = semiconductorApplicationFactor(a)
		a.PiR = semiconductorRatingFactor(a)
		a.HazardRateActive *= a.PiA * a.PiR
		msg.WriteString(checkFactors(KindSemiconductor, a.HardwareID, factor{"piA", a.PiA}, factor{"piR", a.PiR}))
	case semiLowFreqBipolar:
		a.PiA = semiconductorApplicationFactor(a)
		a.PiR = semiconductorRatingFactor(a)
		a.PiS = semiconductorStressFactor(a)
		a.HazardRateActive *= a.PiA * a.PiR * a.PiS
		msg.WriteString(checkFactors(KindSemiconductor, a.HardwareID,
			factor{"piA", a.PiA}, factor{"piR", a.PiR}, factor{"piS", a.PiS}))
	case semiLowFreqSiFET:
		a.PiA = semiconductorApplicationFactor(a)
		a.HazardRateActive *= a.PiA
		msg.WriteString(checkFactors(KindSemiconductor, a.HardwareID, factor{"piA", a.PiA}))
	case semiHighFreqLowNoise, semiThyristor:
		a.PiR = semiconductorRatingFactor(a)
		a.PiS = semiconductorStressFactor(a)
		a.HazardRateActive *= a.PiR * a.PiS
		msg.WriteString(checkFactors(KindSemiconductor, a.HardwareID, factor{"piR", a.PiR}, factor{"piS", a.PiS}))
	case semiHighFreqPower, semiHighFreqGaAsFET:
		a.PiA = semiconductorApplicationFactor(a)
		a.PiM = at(semiconductorPiM, a.MatchingID)
		a.HazardRateActive *= a.PiA * a.PiM
		msg.WriteString(checkFactors(KindSemiconductor, a.HardwareID, factor{"piA", a.PiA}, factor{"piM", a.PiM}))
	case semiLaserDiode:
		a.PiI = math.Pow(math.Max(a.CurrentOperating, 0), 0.68)
		a.PiA = semiconductorApplicationFactor(a)
		a.PiP = semiconductorPowerDegradation(a.PowerRatio)
		a.HazardRateActive *= a.PiI * a.PiA * a.PiP
		msg.WriteString(checkFactors(KindSemiconductor, a.HardwareID,
			factor{"piI", a.PiI}, factor{"piA", a.PiA}, factor{"piP", a.PiP}))
	}
	return a, msg.String()
}
