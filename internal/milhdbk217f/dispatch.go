package milhdbk217f

import "strings"

// Dispatcher runs the full prediction for one component: stress ratios,
// category calculation, dormant rate, overstress and final scaling.
// A Dispatcher is safe for concurrent use.
type Dispatcher struct {
	limits StressLimitTable
}

// NewDispatcher returns a dispatcher that derates against limits.
func NewDispatcher(limits StressLimitTable) *Dispatcher {
	return &Dispatcher{limits: limits}
}

// Limits returns the derating table in use.
func (d *Dispatcher) Limits() StressLimitTable {
	return d.limits
}

// Calculate predicts the hazard rate of a single component. It never fails;
// problems are reported as WARNING and ERROR lines in the returned message.
func (d *Dispatcher) Calculate(a Attributes) (Attributes, string) {
	var msg strings.Builder

	a.CurrentRatio = ratio(a.CurrentOperating, a.CurrentRated)
	a.PowerRatio = ratio(a.PowerOperating, a.PowerRated)
	a.VoltageRatio = ratio(a.VoltageACOperating+a.VoltageDCOperating, a.VoltageRated)

	kind := KindFor(a.CategoryID, a.SubcategoryID)
	calc, ok := CalculatorFor(kind)
	switch {
	case !ok:
		a.HazardRateActive = 0
		msg.WriteString(warnf("Unknown category ID %d and subcategory ID %d for hardware item, hardware ID: %d.",
			a.CategoryID, a.SubcategoryID, a.HardwareID))
	case a.HazardRateMethodID == MethodPartsCount:
		var m string
		a, m = calc.PartCount(a)
		msg.WriteString(m)
	case a.HazardRateMethodID == MethodPartStress:
		var m string
		a, m = calc.PartStress(a)
		msg.WriteString(m)
	default:
		a.HazardRateActive = 0
		msg.WriteString(warnf("Unknown hazard rate method ID %d for hardware item, hardware ID: %d.",
			a.HazardRateMethodID, a.HardwareID))
	}

	if v, ok := finite(a.HazardRateActive); !ok {
		a.HazardRateActive = v
		msg.WriteString(warnf("Hazard rate is not a finite number when calculating %s, hardware ID: %d.", kind, a.HardwareID))
	}

	a, m := dormantHazardRate(a)
	msg.WriteString(m)

	a = checkOverstress(a, d.limits)

	if a.MultAdjFactor <= 0 {
		msg.WriteString(warnf("Multiplicative adjustment factor is 0.0 when calculating hardware item, hardware ID: %d.", a.HardwareID))
	}
	if a.DutyCycle <= 0 {
		msg.WriteString(warnf("Duty cycle is 0.0 when calculating hardware item, hardware ID: %d.", a.HardwareID))
	}
	if a.Quantity < 1 {
		msg.WriteString(warnf("Quantity is less than 1 when calculating hardware item, hardware ID: %d.", a.HardwareID))
	}

	a.HazardRateActive = (a.HazardRateActive + a.AddAdjFactor) *
		(a.DutyCycle / 100.0) * a.MultAdjFactor * float64(a.Quantity)

	return a, msg.String()
}
