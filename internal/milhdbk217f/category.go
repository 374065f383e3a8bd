// Package milhdbk217f predicts component hazard rates with the MIL-HDBK-217F
// parts count and part stress models.
package milhdbk217f

// Component categories as stored on hardware records.
const (
	CategoryIntegratedCircuit = 1
	CategorySemiconductor     = 2
	CategoryResistor          = 3
	CategoryCapacitor         = 4
	CategoryInductor          = 5
	CategoryRelay             = 6
	CategorySwitch            = 7
	CategoryConnection        = 8
	CategoryMeter             = 9
	CategoryMiscellaneous     = 10
)

// Kind identifies the calculator responsible for a component.
type Kind int

// Component kinds.
const (
	KindUnknown Kind = iota
	KindIntegratedCircuit
	KindSemiconductor
	KindResistor
	KindCapacitor
	KindInductor
	KindRelay
	KindSwitch
	KindConnection
	KindMeter
	KindCrystal
	KindFilter
	KindFuse
	KindLamp
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindIntegratedCircuit: "integrated circuit",
	KindSemiconductor:     "semiconductor",
	KindResistor:          "resistor",
	KindCapacitor:         "capacitor",
	KindInductor:          "inductor",
	KindRelay:             "relay",
	KindSwitch:            "switch",
	KindConnection:        "connection",
	KindMeter:             "meter",
	KindCrystal:           "crystal",
	KindFilter:            "filter",
	KindFuse:              "fuse",
	KindLamp:              "lamp",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// KindFor maps a stored (category, subcategory) pair to a component kind.
// Category 10 fans out by subcategory; every other category maps directly.
func KindFor(categoryID, subcategoryID int) Kind {
	switch categoryID {
	case CategoryIntegratedCircuit:
		return KindIntegratedCircuit
	case CategorySemiconductor:
		return KindSemiconductor
	case CategoryResistor:
		return KindResistor
	case CategoryCapacitor:
		return KindCapacitor
	case CategoryInductor:
		return KindInductor
	case CategoryRelay:
		return KindRelay
	case CategorySwitch:
		return KindSwitch
	case CategoryConnection:
		return KindConnection
	case CategoryMeter:
		return KindMeter
	case CategoryMiscellaneous:
		switch subcategoryID {
		case 1:
			return KindCrystal
		case 2:
			return KindFilter
		case 3:
			return KindFuse
		case 4:
			return KindLamp
		}
	}
	return KindUnknown
}

// CalcFunc computes a hazard rate, returning the updated attributes and any
// diagnostic lines.
type CalcFunc func(Attributes) (Attributes, string)

// Calculator pairs the two prediction methods of one component kind.
type Calculator struct {
	PartCount  CalcFunc
	PartStress CalcFunc
}

var calculators = map[Kind]Calculator{
	KindIntegratedCircuit: {PartCount: integratedCircuitPartCount, PartStress: integratedCircuitPartStress},
	KindSemiconductor:     {PartCount: semiconductorPartCount, PartStress: semiconductorPartStress},
	KindResistor:          {PartCount: resistorPartCount, PartStress: resistorPartStress},
	KindCapacitor:         {PartCount: capacitorPartCount, PartStress: capacitorPartStress},
	KindInductor:          {PartCount: inductorPartCount, PartStress: inductorPartStress},
	KindRelay:             {PartCount: relayPartCount, PartStress: relayPartStress},
	KindSwitch:            {PartCount: switchPartCount, PartStress: switchPartStress},
	KindConnection:        {PartCount: connectionPartCount, PartStress: connectionPartStress},
	KindMeter:             {PartCount: meterPartCount, PartStress: meterPartStress},
	KindCrystal:           {PartCount: crystalPartCount, PartStress: crystalPartStress},
	KindFilter:            {PartCount: filterPartCount, PartStress: filterPartStress},
	KindFuse:              {PartCount: fusePartCount, PartStress: fusePartStress},
	KindLamp:              {PartCount: lampPartCount, PartStress: lampPartStress},
}

// CalculatorFor returns the calculator registered for a kind.
func CalculatorFor(k Kind) (Calculator, bool) {
	c, ok := calculators[k]
	return c, ok
}
