package milhdbk217f

import "fmt"

// StressKind names one derating check.
type StressKind int

// Derating checks, in the order they are evaluated.
const (
	StressCurrent StressKind = iota + 1
	StressPower
	StressVoltage
	StressDeltaT
	StressMaxT
)

var stressKindNames = map[StressKind]string{
	StressCurrent: "current",
	StressPower:   "power",
	StressVoltage: "voltage",
	StressDeltaT:  "delta_t",
	StressMaxT:    "max_t",
}

func (k StressKind) String() string {
	return stressKindNames[k]
}

// ParseStressKind converts a config name such as "delta_t" to a StressKind.
func ParseStressKind(s string) (StressKind, error) {
	for k, name := range stressKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("milhdbk217f: unknown stress kind %q", s)
}

// Limit is a derating limit for harsh and mild environments.
type Limit struct {
	Harsh float64
	Mild  float64
}

// StressLimit is one entry of a stress limit table. Zero subcategory or
// quality act as wildcards.
type StressLimit struct {
	Category    int
	Subcategory int
	Quality     int
	Kind        StressKind
	Limit
}

type stressKey struct {
	category    int
	subcategory int
	quality     int
	kind        StressKind
}

// StressLimitTable holds derating limits keyed by category, subcategory,
// quality and check. It is immutable once built.
type StressLimitTable struct {
	limits map[stressKey]Limit
}

// NewStressLimitTable builds a table from entries. Later entries win.
func NewStressLimitTable(entries []StressLimit) StressLimitTable {
	t := StressLimitTable{limits: make(map[stressKey]Limit, len(entries))}
	for _, e := range entries {
		t.limits[stressKey{e.Category, e.Subcategory, e.Quality, e.Kind}] = e.Limit
	}
	return t
}

// Override returns a copy of t with entries layered on top.
func (t StressLimitTable) Override(entries []StressLimit) StressLimitTable {
	out := StressLimitTable{limits: make(map[stressKey]Limit, len(t.limits)+len(entries))}
	for k, v := range t.limits {
		out.limits[k] = v
	}
	for _, e := range entries {
		out.limits[stressKey{e.Category, e.Subcategory, e.Quality, e.Kind}] = e.Limit
	}
	return out
}

// Lookup finds the most specific limit for a component, falling back to
// the category-wide entry.
func (t StressLimitTable) Lookup(category, subcategory, quality int, kind StressKind) (Limit, bool) {
	for _, k := range []stressKey{
		{category, subcategory, quality, kind},
		{category, subcategory, 0, kind},
		{category, 0, quality, kind},
		{category, 0, 0, kind},
	} {
		if l, ok := t.limits[k]; ok {
			return l, true
		}
	}
	return Limit{}, false
}

// Entries returns every entry in the table.
func (t StressLimitTable) Entries() []StressLimit {
	out := make([]StressLimit, 0, len(t.limits))
	for k, v := range t.limits {
		out = append(out, StressLimit{Category: k.category, Subcategory: k.subcategory, Quality: k.quality, Kind: k.kind, Limit: v})
	}
	return out
}

// Len reports the number of entries.
func (t StressLimitTable) Len() int {
	return len(t.limits)
}

// categoryLimits lists harsh/mild pairs for current, power, voltage,
// delta T and maximum temperature.
var categoryLimits = map[int][5]Limit{
	CategoryIntegratedCircuit: {{0.8, 0.9}, {1, 1}, {1, 1}, {0, 0}, {125, 125}},
	CategorySemiconductor:     {{1, 1}, {0.7, 0.9}, {1, 1}, {0, 0}, {125, 125}},
	CategoryResistor:          {{1, 1}, {0.5, 0.9}, {1, 1}, {0, 0}, {125, 125}},
	CategoryCapacitor:         {{1, 1}, {1, 1}, {0.6, 0.9}, {10, 0}, {125, 125}},
	CategoryInductor:          {{0.6, 0.9}, {1, 1}, {0.5, 0.9}, {15, 0}, {125, 125}},
	CategoryRelay:             {{0.75, 0.9}, {1, 1}, {1, 1}, {0, 0}, {125, 125}},
	CategorySwitch:            {{0.75, 0.9}, {1, 1}, {1, 1}, {0, 0}, {125, 125}},
	CategoryConnection:        {{0.7, 0.9}, {1, 1}, {0.7, 0.9}, {25, 0}, {125, 125}},
	CategoryMeter:             {{1, 1}, {1, 1}, {1, 1}, {0, 0}, {125, 125}},
	CategoryMiscellaneous:     {{1, 1}, {1, 1}, {1, 1}, {0, 0}, {125, 125}},
}

// DefaultStressLimits returns the built-in category-wide derating limits.
func DefaultStressLimits() StressLimitTable {
	var entries []StressLimit
	for cat, limits := range categoryLimits {
		for i, l := range limits {
			entries = append(entries, StressLimit{Category: cat, Kind: StressKind(i + 1), Limit: l})
		}
	}
	return NewStressLimitTable(entries)
}
