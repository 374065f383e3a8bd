package milhdbk217f

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func neutral(a Attributes) Attributes {
	a.Quantity = 1
	a.DutyCycle = 100.0
	a.MultAdjFactor = 1.0
	return a
}

func TestCalculate_FusePartCountGroundFixed(t *testing.T) {
	d := NewDispatcher(DefaultStressLimits())
	got, _ := d.Calculate(neutral(Attributes{
		HardwareID:          1,
		CategoryID:          CategoryMiscellaneous,
		SubcategoryID:       3,
		HazardRateMethodID:  MethodPartsCount,
		EnvironmentActiveID: 2,
	}))
	if got.LambdaB != 0.02 {
		t.Errorf("LambdaB = %v, want 0.02", got.LambdaB)
	}
	if got.HazardRateActive != 0.02 {
		t.Errorf("HazardRateActive = %v, want 0.02", got.HazardRateActive)
	}
}

func TestCalculate_DormantMissReportsIDs(t *testing.T) {
	d := NewDispatcher(DefaultStressLimits())
	got, msg := d.Calculate(neutral(Attributes{
		HardwareID:           7,
		CategoryID:           CategoryCapacitor,
		SubcategoryID:        1,
		SpecificationID:      1,
		QualityID:            1,
		HazardRateMethodID:   MethodPartsCount,
		EnvironmentActiveID:  1,
		EnvironmentDormantID: DormantNaval,
	}))
	if got.HazardRateDormant != 0 {
		t.Errorf("HazardRateDormant = %v, want 0", got.HazardRateDormant)
	}
	for _, want := range []string{"ERROR: ", "Hardware ID: 7", "active environment ID: 1", "dormant environment ID: 3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestCalculate_DormantRate(t *testing.T) {
	d := NewDispatcher(DefaultStressLimits())
	got, _ := d.Calculate(neutral(Attributes{
		CategoryID:           CategoryMiscellaneous,
		SubcategoryID:        3,
		HazardRateMethodID:   MethodPartsCount,
		EnvironmentActiveID:  2,
		EnvironmentDormantID: DormantGround,
	}))
	// Fuses have no dormant multiplier.
	if got.HazardRateDormant != 0 {
		t.Errorf("fuse HazardRateDormant = %v, want 0", got.HazardRateDormant)
	}

	a, msg := dormantHazardRate(Attributes{
		CategoryID:           CategoryIntegratedCircuit,
		EnvironmentActiveID:  2,
		EnvironmentDormantID: DormantGround,
		HazardRateActive:     1.0,
	})
	if msg != "" {
		t.Errorf("unexpected message %q", msg)
	}
	if a.HazardRateDormant != 0.08 {
		t.Errorf("IC ground/ground HazardRateDormant = %v, want 0.08", a.HazardRateDormant)
	}
}

func TestDormantHazardRate_Columns(t *testing.T) {
	tests := []struct {
		active  int
		dormant int
		want    float64
	}{
		{1, DormantGround, 0.20},
		{6, DormantAirborne, 0.06},
		{8, DormantGround, 0.03},
		{4, DormantNaval, 0.10},
		{5, DormantGround, 0.06},
		{11, DormantSpace, 0.50},
		{11, DormantGround, 1.0},
	}
	for _, tt := range tests {
		a, msg := dormantHazardRate(Attributes{
			CategoryID:           CategoryResistor,
			EnvironmentActiveID:  tt.active,
			EnvironmentDormantID: tt.dormant,
			HazardRateActive:     1.0,
		})
		if msg != "" {
			t.Errorf("(%d, %d) unexpected message %q", tt.active, tt.dormant, msg)
		}
		if a.HazardRateDormant != tt.want {
			t.Errorf("(%d, %d) HazardRateDormant = %v, want %v", tt.active, tt.dormant, a.HazardRateDormant, tt.want)
		}
	}
}

func TestDormantHazardRate_Inductor(t *testing.T) {
	tests := []struct {
		active  int
		dormant int
		want    float64
	}{
		{2, DormantGround, 0.20},
		{6, DormantAirborne, 0.20},
		{9, DormantGround, 0.20},
		{4, DormantNaval, 0.30},
		{4, DormantGround, 0.30},
		{11, DormantSpace, 0.50},
		{11, DormantGround, 1.0},
	}
	for _, tt := range tests {
		a, msg := dormantHazardRate(Attributes{
			CategoryID:           CategoryInductor,
			SubcategoryID:        1,
			EnvironmentActiveID:  tt.active,
			EnvironmentDormantID: tt.dormant,
			HazardRateActive:     1.0,
		})
		if msg != "" {
			t.Errorf("(%d, %d) unexpected message %q", tt.active, tt.dormant, msg)
		}
		if a.HazardRateDormant != tt.want {
			t.Errorf("(%d, %d) HazardRateDormant = %v, want %v", tt.active, tt.dormant, a.HazardRateDormant, tt.want)
		}
	}
}

func TestDormantHazardRate_SemiconductorWithoutRow(t *testing.T) {
	for _, env := range [][2]int{{1, DormantGround}, {3, DormantAirborne}, {0, 0}} {
		a, msg := dormantHazardRate(Attributes{
			CategoryID:           CategorySemiconductor,
			SubcategoryID:        12,
			EnvironmentActiveID:  env[0],
			EnvironmentDormantID: env[1],
			HazardRateActive:     1.0,
			HazardRateDormant:    5.0,
		})
		if msg != "" {
			t.Errorf("%v unexpected message %q", env, msg)
		}
		if a.HazardRateDormant != 0 {
			t.Errorf("%v HazardRateDormant = %v, want 0", env, a.HazardRateDormant)
		}
	}

	_, msg := dormantHazardRate(Attributes{
		CategoryID:           CategorySemiconductor,
		SubcategoryID:        1,
		EnvironmentActiveID:  3,
		EnvironmentDormantID: DormantAirborne,
	})
	if !strings.HasPrefix(msg, "ERROR: Unknown active and/or dormant environment") {
		t.Errorf("diode unmapped environments message = %q", msg)
	}
}

func TestCalculate_StressRatiosDefaultToOne(t *testing.T) {
	d := NewDispatcher(DefaultStressLimits())
	got, _ := d.Calculate(neutral(Attributes{CategoryID: CategoryResistor, SubcategoryID: 1, HazardRateMethodID: MethodPartsCount}))
	if got.CurrentRatio != 1.0 || got.PowerRatio != 1.0 || got.VoltageRatio != 1.0 {
		t.Errorf("ratios = (%v, %v, %v), want all 1.0", got.CurrentRatio, got.PowerRatio, got.VoltageRatio)
	}

	got, _ = d.Calculate(neutral(Attributes{
		CategoryID:         CategoryResistor,
		SubcategoryID:      1,
		HazardRateMethodID: MethodPartsCount,
		PowerOperating:     0.25,
		PowerRated:         0.5,
		VoltageACOperating: 2.0,
		VoltageDCOperating: 3.0,
		VoltageRated:       10.0,
	}))
	if got.PowerRatio != 0.5 {
		t.Errorf("PowerRatio = %v, want 0.5", got.PowerRatio)
	}
	if got.VoltageRatio != 0.5 {
		t.Errorf("VoltageRatio = %v, want 0.5", got.VoltageRatio)
	}
}

func TestCalculate_Scaling(t *testing.T) {
	d := NewDispatcher(DefaultStressLimits())
	got, _ := d.Calculate(Attributes{
		CategoryID:          CategoryMiscellaneous,
		SubcategoryID:       3,
		HazardRateMethodID:  MethodPartsCount,
		EnvironmentActiveID: 2,
		Quantity:            3,
		DutyCycle:           50.0,
		MultAdjFactor:       2.0,
		AddAdjFactor:        0.01,
	})
	want := (0.02 + 0.01) * 0.5 * 2.0 * 3.0
	if math.Abs(got.HazardRateActive-want) > 1e-12 {
		t.Errorf("HazardRateActive = %v, want %v", got.HazardRateActive, want)
	}
}

func TestCalculate_AdjustmentWarnings(t *testing.T) {
	d := NewDispatcher(DefaultStressLimits())
	_, msg := d.Calculate(Attributes{
		HardwareID:          4,
		CategoryID:          CategoryMiscellaneous,
		SubcategoryID:       3,
		HazardRateMethodID:  MethodPartsCount,
		EnvironmentActiveID: 2,
	})
	for _, want := range []string{
		"WARNING: Multiplicative adjustment factor is 0.0 when calculating hardware item, hardware ID: 4.\n",
		"WARNING: Duty cycle is 0.0 when calculating hardware item, hardware ID: 4.\n",
		"WARNING: Quantity is less than 1 when calculating hardware item, hardware ID: 4.\n",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestCalculate_UnknownKindAndMethod(t *testing.T) {
	d := NewDispatcher(DefaultStressLimits())

	got, msg := d.Calculate(neutral(Attributes{CategoryID: 42, HazardRateMethodID: MethodPartsCount}))
	if got.HazardRateActive != 0 {
		t.Errorf("unknown category HazardRateActive = %v, want 0", got.HazardRateActive)
	}
	if !strings.Contains(msg, "Unknown category ID 42") {
		t.Errorf("message %q missing unknown category warning", msg)
	}

	got, msg = d.Calculate(neutral(Attributes{CategoryID: CategoryResistor, SubcategoryID: 1, HazardRateMethodID: 9}))
	if got.HazardRateActive != 0 {
		t.Errorf("unknown method HazardRateActive = %v, want 0", got.HazardRateActive)
	}
	if !strings.Contains(msg, "Unknown hazard rate method ID 9") {
		t.Errorf("message %q missing unknown method warning", msg)
	}
}

func TestCalculate_NeverFails(t *testing.T) {
	d := NewDispatcher(DefaultStressLimits())
	inputs := []Attributes{
		neutral(Attributes{}),
		neutral(Attributes{
			TemperatureActive:  200.0,
			CurrentOperating:   3.0,
			CurrentRated:       1.0,
			PowerOperating:     2.0,
			PowerRated:         1.0,
			VoltageDCOperating: 50.0,
			VoltageRated:       10.0,
			NElements:          5000,
			NActivePins:        40,
			NCycles:            5000.0,
			Capacitance:        1e-6,
			Resistance:         1e4,
		}),
	}
	for _, base := range inputs {
		for cat := 0; cat <= 11; cat++ {
			for sub := 0; sub <= 20; sub++ {
				for method := 0; method <= 3; method++ {
					for env := 0; env <= 15; env++ {
						for q := 0; q <= 8; q += 2 {
							a := base
							a.CategoryID = cat
							a.SubcategoryID = sub
							a.HazardRateMethodID = method
							a.EnvironmentActiveID = env
							a.QualityID = q
							a.TypeID = 1
							got, _ := d.Calculate(a)
							if math.IsNaN(got.HazardRateActive) || math.IsInf(got.HazardRateActive, 0) || got.HazardRateActive < 0 {
								t.Fatalf("cat=%d sub=%d method=%d env=%d q=%d: HazardRateActive = %v",
									cat, sub, method, env, q, got.HazardRateActive)
							}
						}
					}
				}
			}
		}
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	d := NewDispatcher(DefaultStressLimits())
	a := neutral(Attributes{
		CategoryID:          CategoryConnection,
		SubcategoryID:       1,
		HazardRateMethodID:  MethodPartStress,
		EnvironmentActiveID: 3,
		QualityID:           2,
		TypeID:              1,
		SpecificationID:     1,
		InsertID:            1,
		TemperatureActive:   32.0,
		CurrentOperating:    2.0,
		ContactGauge:        20,
		NCycles:             2.0,
		NActivePins:         20,
	})
	first, firstMsg := d.Calculate(a)
	second, secondMsg := d.Calculate(a)
	if !reflect.DeepEqual(first, second) || firstMsg != secondMsg {
		t.Error("Calculate() is not deterministic for identical input")
	}
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		cat, sub int
		want     Kind
	}{
		{1, 3, KindIntegratedCircuit},
		{2, 13, KindSemiconductor},
		{3, 1, KindResistor},
		{4, 12, KindCapacitor},
		{5, 2, KindInductor},
		{6, 1, KindRelay},
		{7, 5, KindSwitch},
		{8, 4, KindConnection},
		{9, 2, KindMeter},
		{10, 1, KindCrystal},
		{10, 2, KindFilter},
		{10, 3, KindFuse},
		{10, 4, KindLamp},
		{10, 5, KindUnknown},
		{11, 1, KindUnknown},
		{0, 0, KindUnknown},
	}
	for _, tt := range tests {
		if got := KindFor(tt.cat, tt.sub); got != tt.want {
			t.Errorf("KindFor(%d, %d) = %v, want %v", tt.cat, tt.sub, got, tt.want)
		}
	}
}

func TestCalculatorFor_AllKindsRegistered(t *testing.T) {
	for k := KindIntegratedCircuit; k <= KindLamp; k++ {
		c, ok := CalculatorFor(k)
		if !ok || c.PartCount == nil || c.PartStress == nil {
			t.Errorf("CalculatorFor(%v) not fully registered", k)
		}
	}
	if _, ok := CalculatorFor(KindUnknown); ok {
		t.Error("CalculatorFor(KindUnknown) should not be registered")
	}
}
