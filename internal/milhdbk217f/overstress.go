package milhdbk217f

import (
	"fmt"
	"strings"
)

// mildEnvironments lists the active environments derated with mild limits:
// ground benign, ground fixed, naval sheltered and space flight.
var mildEnvironments = map[int]bool{1: true, 2: true, 4: true, 11: true}

// IsMildEnvironment reports whether an active environment uses mild limits.
func IsMildEnvironment(env int) bool {
	return mildEnvironments[env]
}

type reasons struct {
	n int
	b strings.Builder
}

func (r *reasons) add(format string, args ...any) {
	r.n++
	fmt.Fprintf(&r.b, "%d. ", r.n)
	fmt.Fprintf(&r.b, format, args...)
	r.b.WriteString("\n")
}

// operatingTemperature returns the temperature compared against the maximum
// temperature limit, the reference temperature the delta-T margin is taken
// from, and the label used when reporting both.
func operatingTemperature(a Attributes) (op, ref float64, label string) {
	switch a.CategoryID {
	case CategoryIntegratedCircuit, CategorySemiconductor:
		return a.TemperatureJunction, a.TemperatureJunction, "Junction"
	case CategoryInductor:
		return a.TemperatureActive, a.TemperatureHotSpot, "Hot Spot"
	}
	return a.TemperatureActive, a.TemperatureRatedMax, "Maximum Rated"
}

// checkOverstress compares the stress ratios and temperatures in a against
// the derating limits and records the verdict in Overstress and Reason.
func checkOverstress(a Attributes, limits StressLimitTable) Attributes {
	harsh := !IsMildEnvironment(a.EnvironmentActiveID)
	env := "mild"
	if harsh {
		env = "harsh"
	}
	pick := func(l Limit) float64 {
		if harsh {
			return l.Harsh
		}
		return l.Mild
	}
	lookup := func(k StressKind) (float64, bool) {
		l, ok := limits.Lookup(a.CategoryID, a.SubcategoryID, a.QualityID, k)
		if !ok {
			return 0, false
		}
		return pick(l), true
	}

	var r reasons
	if limit, ok := lookup(StressCurrent); ok && a.CurrentRatio > limit {
		r.add("Operating current > %s%% rated current in %s environment.", formatLimit(limit*100), env)
	}
	if limit, ok := lookup(StressPower); ok && a.PowerRatio > limit {
		r.add("Operating power > %s%% rated power in %s environment.", formatLimit(limit*100), env)
	}

	opTemp, refTemp, label := operatingTemperature(a)
	if a.CategoryID == CategoryIntegratedCircuit {
		if a.VoltageRatio > 1.05 {
			r.add("Operating voltage > 105%% rated voltage.")
		}
		if a.VoltageRatio < 0.95 {
			r.add("Operating voltage < 95%% rated voltage.")
		}
	} else {
		if limit, ok := lookup(StressVoltage); ok && a.VoltageRatio > limit {
			r.add("Operating voltage > %s%% rated voltage in %s environment.", formatLimit(limit*100), env)
		}
		// A zero limit or an unset reference temperature disables the margin check.
		if limit, ok := lookup(StressDeltaT); ok && limit > 0 && refTemp > 0 &&
			refTemp-a.TemperatureActive <= limit {
			r.add("Operating temperature within %sC of %s temperature in %s environment.", formatLimit(limit), label, env)
		}
	}
	if limit, ok := lookup(StressMaxT); ok && limit > 0 && opTemp > limit {
		r.add("Operating temperature > %sC %s temperature limit in %s environment.", formatLimit(limit), label, env)
	}

	a.Overstress = r.n > 0
	a.Reason = r.b.String()
	return a
}
