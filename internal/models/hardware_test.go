package models

import (
	"reflect"
	"testing"

	"github.com/zulandar/hwrel/internal/milhdbk217f"
)

func TestHardware_Fields(t *testing.T) {
	typ := reflect.TypeOf(Hardware{})

	assertGormTag(t, typ, "ID", "primaryKey")
	assertGormTag(t, typ, "ID", "autoIncrement")
	assertGormTag(t, typ, "RevisionID", "default:1")
	assertGormTag(t, typ, "ParentID", "index")
	assertGormTag(t, typ, "Name", "size:128")
	assertGormTag(t, typ, "Name", "not null")
	assertGormTag(t, typ, "Description", "type:text")
	assertGormTag(t, typ, "RefDes", "size:64")
	assertGormTag(t, typ, "CompRefDes", "size:512")
	assertGormTag(t, typ, "CategoryID", "index")
	assertGormTag(t, typ, "Quantity", "default:1")
	assertGormTag(t, typ, "DutyCycle", "default:100")
	assertGormTag(t, typ, "MultAdjFactor", "default:1")
	assertGormTag(t, typ, "CostTypeID", "default:2")

	assertFieldType(t, typ, "ID", "uint")
	assertFieldType(t, typ, "ParentID", "*uint")
	assertFieldType(t, typ, "Part", "bool")
	assertFieldType(t, typ, "CreatedAt", "time.Time")
}

func TestHardware_Relations(t *testing.T) {
	typ := reflect.TypeOf(Hardware{})

	assertGormTag(t, typ, "Parent", "foreignKey:ParentID")
	assertGormTag(t, typ, "Children", "foreignKey:ParentID")
	for _, f := range []string{"Electrical", "Mechanical", "MilHdbkF", "NSWC", "Reliability"} {
		assertGormTag(t, typ, f, "foreignKey:HardwareID")
	}

	assertFieldType(t, typ, "Parent", "*models.Hardware")
	assertFieldType(t, typ, "Children", "[]models.Hardware")
	assertFieldType(t, typ, "Electrical", "*models.ElectricalDesign")
	assertFieldType(t, typ, "Reliability", "*models.Reliability")
}

func TestDesignRecords_KeyedByHardware(t *testing.T) {
	for _, v := range []interface{}{ElectricalDesign{}, MechanicalDesign{}, MilHdbkF{}, NSWC{}, Reliability{}} {
		typ := reflect.TypeOf(v)
		assertGormTag(t, typ, "HardwareID", "primaryKey")
		assertFieldType(t, typ, "HardwareID", "uint")
		assertGormTag(t, typ, "RevisionID", "default:1")
	}
}

func TestReliability_Columns(t *testing.T) {
	typ := reflect.TypeOf(Reliability{})

	assertGormTag(t, typ, "HazardRateTypeID", "default:1")
	assertGormTag(t, typ, "HazardRateMethodID", "default:1")
	assertGormTag(t, typ, "MTBFMission", "column:mtbf_mission")
	assertGormTag(t, typ, "HRActiveVariance", "column:hr_active_variance")
	assertGormTag(t, typ, "Reason", "type:text")
	assertFieldType(t, typ, "CalculatedAt", "*time.Time")
	assertFieldType(t, typ, "TotalPartCount", "int")
}

func TestStressLimit_UniqueKey(t *testing.T) {
	typ := reflect.TypeOf(StressLimit{})

	for _, f := range []string{"Category", "Subcategory", "Quality", "Kind"} {
		assertGormTag(t, typ, f, "uniqueIndex:idx_stress_limit")
	}
	assertGormTag(t, typ, "Kind", "size:16")
	assertFieldType(t, typ, "Harsh", "float64")
}

func TestCalculationRun_Fields(t *testing.T) {
	typ := reflect.TypeOf(CalculationRun{})

	assertGormTag(t, typ, "ID", "primaryKey")
	assertGormTag(t, typ, "ID", "size:36")
	assertGormTag(t, typ, "RootID", "index")
	assertGormTag(t, typ, "Message", "type:text")
	assertGormTag(t, typ, "DurationMS", "column:duration_ms")
	assertFieldType(t, typ, "ID", "string")
}

func TestNSWC_TableName(t *testing.T) {
	if got := (NSWC{}).TableName(); got != "nswc" {
		t.Errorf("TableName = %q, want %q", got, "nswc")
	}
}

func TestApplyTo_NilRecordsAreNoops(t *testing.T) {
	var a milhdbk217f.Attributes
	var h *Hardware
	var e *ElectricalDesign
	var m *MechanicalDesign
	var f *MilHdbkF
	var n *NSWC
	var r *Reliability

	h.ApplyTo(&a)
	e.ApplyTo(&a)
	m.ApplyTo(&a)
	f.ApplyTo(&a)
	n.ApplyTo(&a)
	r.ApplyTo(&a)

	if !reflect.DeepEqual(a, milhdbk217f.Attributes{}) {
		t.Errorf("nil records changed attributes: %+v", a)
	}
}

func TestApplyTo_CopiesFields(t *testing.T) {
	var a milhdbk217f.Attributes
	(&Hardware{ID: 7, RevisionID: 1, CategoryID: 3, SubcategoryID: 1, Quantity: 2, DutyCycle: 50, MultAdjFactor: 1.5, AddAdjFactor: 0.1}).ApplyTo(&a)
	(&ElectricalDesign{HardwareID: 7, PowerOperating: 0.05, PowerRated: 0.25, Resistance: 1000}).ApplyTo(&a)
	(&MechanicalDesign{HardwareID: 7, TemperatureActive: 45, TemperatureRatedMax: 125}).ApplyTo(&a)
	(&Reliability{HardwareID: 7, HazardRateMethodID: 2, EnvironmentActiveID: 3, EnvironmentDormantID: 2, QualityID: 1}).ApplyTo(&a)

	if a.HardwareID != 7 || a.CategoryID != 3 || a.SubcategoryID != 1 {
		t.Errorf("identity = %d/%d/%d", a.HardwareID, a.CategoryID, a.SubcategoryID)
	}
	if a.Quantity != 2 || a.DutyCycle != 50 || a.MultAdjFactor != 1.5 || a.AddAdjFactor != 0.1 {
		t.Errorf("scaling = %d %v %v %v", a.Quantity, a.DutyCycle, a.MultAdjFactor, a.AddAdjFactor)
	}
	if a.PowerOperating != 0.05 || a.PowerRated != 0.25 || a.Resistance != 1000 {
		t.Errorf("electrical = %v %v %v", a.PowerOperating, a.PowerRated, a.Resistance)
	}
	if a.TemperatureActive != 45 || a.TemperatureRatedMax != 125 {
		t.Errorf("mechanical = %v %v", a.TemperatureActive, a.TemperatureRatedMax)
	}
	if a.HazardRateMethodID != 2 || a.EnvironmentActiveID != 3 || a.EnvironmentDormantID != 2 || a.QualityID != 1 {
		t.Errorf("reliability = %d %d %d %d", a.HazardRateMethodID, a.EnvironmentActiveID, a.EnvironmentDormantID, a.QualityID)
	}
}

func TestMilHdbkF_SetFromRoundTrip(t *testing.T) {
	in := milhdbk217f.Attributes{LambdaB: 0.0017, PiE: 4, PiQ: 3, PiT: 1.2, TemperatureJunction: 62.5}
	var rec MilHdbkF
	rec.SetFrom(in)

	var out milhdbk217f.Attributes
	rec.ApplyTo(&out)
	if out.LambdaB != 0.0017 || out.PiE != 4 || out.PiQ != 3 || out.PiT != 1.2 || out.TemperatureJunction != 62.5 {
		t.Errorf("factors = %+v", out)
	}
}
