package hardware

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zulandar/hwrel/internal/bom"
	"github.com/zulandar/hwrel/internal/milhdbk217f"
	"github.com/zulandar/hwrel/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Hardware{},
		&models.ElectricalDesign{},
		&models.MechanicalDesign{},
		&models.MilHdbkF{},
		&models.NSWC{},
		&models.Reliability{},
		&models.CalculationRun{},
	))
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, opts CreateOpts) *models.Hardware {
	t.Helper()
	hw, err := Create(db, opts)
	require.NoError(t, err)
	return hw
}

func fuseOpts(parent uint, refdes string) CreateOpts {
	return CreateOpts{
		ParentID:      parent,
		Part:          true,
		Name:          "Fuse " + refdes,
		RefDes:        refdes,
		CategoryID:    milhdbk217f.CategoryMiscellaneous,
		SubcategoryID: 3,
		Reliability: &models.Reliability{
			HazardRateMethodID:   milhdbk217f.MethodPartsCount,
			EnvironmentActiveID:  2,
			EnvironmentDormantID: milhdbk217f.DormantGround,
		},
	}
}

// buildBoM creates S1 -> {A1 -> {F1, F2}, A2 -> {F3}}.
func buildBoM(t *testing.T, db *gorm.DB) (root, a1, a2 *models.Hardware, fuses []*models.Hardware) {
	t.Helper()
	root = mustCreate(t, db, CreateOpts{Name: "System", RefDes: "S1"})
	a1 = mustCreate(t, db, CreateOpts{ParentID: root.ID, Name: "Board 1", RefDes: "A1"})
	a2 = mustCreate(t, db, CreateOpts{ParentID: root.ID, Name: "Board 2", RefDes: "A2"})
	fuses = []*models.Hardware{
		mustCreate(t, db, fuseOpts(a1.ID, "F1")),
		mustCreate(t, db, fuseOpts(a1.ID, "F2")),
		mustCreate(t, db, fuseOpts(a2.ID, "F3")),
	}
	return root, a1, a2, fuses
}

func TestCreate_Defaults(t *testing.T) {
	db := testDB(t)
	root := mustCreate(t, db, CreateOpts{Name: "System", RefDes: "S1"})

	got, err := Get(db, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, 100.0, got.DutyCycle)
	assert.Equal(t, 1.0, got.MultAdjFactor)
	assert.Equal(t, bom.CostCalculated, got.CostTypeID)
	assert.Equal(t, "S1", got.CompRefDes)
	assert.Nil(t, got.ParentID)

	require.NotNil(t, got.Electrical)
	require.NotNil(t, got.Mechanical)
	require.NotNil(t, got.MilHdbkF)
	require.NotNil(t, got.NSWC)
	require.NotNil(t, got.Reliability)
	assert.Equal(t, bom.HazardRateAssessed, got.Reliability.HazardRateTypeID)
}

func TestCreate_CompositeRefDesFromParent(t *testing.T) {
	db := testDB(t)
	_, a1, _, fuses := buildBoM(t, db)

	assert.Equal(t, "S1:A1", a1.CompRefDes)
	assert.Equal(t, "S1:A1:F1", fuses[0].CompRefDes)
}

func TestCreate_Validation(t *testing.T) {
	db := testDB(t)

	_, err := Create(db, CreateOpts{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hardware: invalid create options")

	_, err = Create(db, CreateOpts{Name: "x", DutyCycle: 120})
	require.Error(t, err)
}

func TestCreate_ParentNotFound(t *testing.T) {
	db := testDB(t)
	_, err := Create(db, CreateOpts{ParentID: 42, Name: "orphan"})
	require.Error(t, err)
	assert.Equal(t, "hardware: parent not found: 42", err.Error())
}

func TestCreate_PartRejectsChildren(t *testing.T) {
	db := testDB(t)
	_, _, _, fuses := buildBoM(t, db)

	_, err := Create(db, CreateOpts{ParentID: fuses[0].ID, Name: "sub", Part: false})
	require.Error(t, err)
	assert.Equal(t, "ERROR: You can not have a hardware assembly as a child of a component/piece part.", err.Error())

	_, err = Create(db, fuseOpts(fuses[0].ID, "F9"))
	require.Error(t, err)
	assert.Equal(t, "ERROR: You can not have a component/piece part as a child of another component/piece part.", err.Error())

	var ie *bom.InsertError
	assert.True(t, errors.As(err, &ie))
}

func TestGet_NotFound(t *testing.T) {
	db := testDB(t)
	_, err := Get(db, 99)
	require.Error(t, err)
	assert.Equal(t, "hardware: not found: 99", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_Filters(t *testing.T) {
	db := testDB(t)
	root, a1, _, _ := buildBoM(t, db)

	all, err := List(db, ListFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	roots, err := List(db, ListFilters{RootsOnly: true})
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, root.ID, roots[0].ID)

	parts, err := List(db, ListFilters{PartsOnly: true})
	require.NoError(t, err)
	assert.Len(t, parts, 3)

	under, err := List(db, ListFilters{ParentID: &a1.ID})
	require.NoError(t, err)
	assert.Len(t, under, 2)

	misc, err := List(db, ListFilters{CategoryID: milhdbk217f.CategoryMiscellaneous})
	require.NoError(t, err)
	assert.Len(t, misc, 3)
}

func TestGetChildren(t *testing.T) {
	db := testDB(t)
	root, a1, a2, _ := buildBoM(t, db)

	kids, err := GetChildren(db, root.ID)
	require.NoError(t, err)
	require.Len(t, kids, 2)
	assert.Equal(t, a1.ID, kids[0].ID)
	assert.Equal(t, a2.ID, kids[1].ID)

	_, err = GetChildren(db, 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hardware: parent not found: 999")
}

func TestUpdate_RoutesDesignKeys(t *testing.T) {
	db := testDB(t)
	_, _, _, fuses := buildBoM(t, db)
	id := fuses[0].ID

	err := Update(db, id, map[string]interface{}{
		"name":                        "Main fuse",
		"quantity":                    4,
		"electrical.current_rated":    2.0,
		"mechanical.temperature_case": 55.0,
		"reliability.quality_id":      2,
	})
	require.NoError(t, err)

	got, err := Get(db, id)
	require.NoError(t, err)
	assert.Equal(t, "Main fuse", got.Name)
	assert.Equal(t, 4, got.Quantity)
	assert.Equal(t, 2.0, got.Electrical.CurrentRated)
	assert.Equal(t, 55.0, got.Mechanical.TemperatureCase)
	assert.Equal(t, 2, got.Reliability.QualityID)
}

func TestUpdate_RefDesRefreshesSubtree(t *testing.T) {
	db := testDB(t)
	root, a1, a2, fuses := buildBoM(t, db)

	require.NoError(t, Update(db, a1.ID, map[string]interface{}{"ref_des": "B1"}))

	got, err := Get(db, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, "S1:B1", got.CompRefDes)
	got, err = Get(db, fuses[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "S1:B1:F1", got.CompRefDes)
	got, err = Get(db, fuses[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "S1:A2:F3", got.CompRefDes)

	require.NoError(t, Update(db, root.ID, map[string]interface{}{"ref_des": "SYS"}))

	got, err = Get(db, root.ID)
	require.NoError(t, err)
	assert.Equal(t, "SYS", got.CompRefDes)
	got, err = Get(db, a2.ID)
	require.NoError(t, err)
	assert.Equal(t, "SYS:A2", got.CompRefDes)
	got, err = Get(db, fuses[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "SYS:B1:F2", got.CompRefDes)
}

func TestUpdate_Errors(t *testing.T) {
	db := testDB(t)
	root, a1, _, _ := buildBoM(t, db)

	err := Update(db, 999, map[string]interface{}{"name": "x"})
	require.Error(t, err)
	assert.Equal(t, "hardware: not found: 999", err.Error())

	err = Update(db, a1.ID, map[string]interface{}{"parent_id": root.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent_id can not be updated")

	err = Update(db, a1.ID, map[string]interface{}{"thermal.theta": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown design record")

	err = Update(db, a1.ID, map[string]interface{}{"part": true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can not become a part")
}

func TestDelete_Cascades(t *testing.T) {
	db := testDB(t)
	root, a1, _, _ := buildBoM(t, db)

	n, err := Delete(db, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var count int64
	db.Model(&models.Hardware{}).Count(&count)
	assert.Equal(t, int64(3), count)
	db.Model(&models.Reliability{}).Count(&count)
	assert.Equal(t, int64(3), count)
	db.Model(&models.ElectricalDesign{}).Count(&count)
	assert.Equal(t, int64(3), count)

	n, err = Delete(db, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	db.Model(&models.Hardware{}).Count(&count)
	assert.Equal(t, int64(0), count)

	_, err = Delete(db, root.ID)
	require.Error(t, err)
}

func TestMove(t *testing.T) {
	db := testDB(t)
	root, a1, a2, fuses := buildBoM(t, db)

	require.NoError(t, Move(db, fuses[0].ID, a2.ID))
	got, err := Get(db, fuses[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, a2.ID, *got.ParentID)
	assert.Equal(t, "S1:A2:F1", got.CompRefDes)

	err = Move(db, root.ID, a1.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would create a cycle")

	err = Move(db, a1.ID, a1.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would create a cycle")

	err = Move(db, a1.ID, fuses[1].ID)
	require.Error(t, err)
	assert.Equal(t, "ERROR: You can not have a hardware assembly as a child of a component/piece part.", err.Error())

	require.NoError(t, Move(db, a1.ID, 0))
	got, err = Get(db, a1.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID)
	assert.Equal(t, "A1", got.CompRefDes)

	f2, err := Get(db, fuses[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "A1:F2", f2.CompRefDes)
}

func TestRefreshRefDes(t *testing.T) {
	db := testDB(t)
	root, a1, _, fuses := buildBoM(t, db)

	require.NoError(t, db.Model(&models.Hardware{}).Where("id = ?", a1.ID).Update("ref_des", "B1").Error)
	require.NoError(t, RefreshRefDes(db, root.ID))

	got, err := Get(db, fuses[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "S1:B1:F2", got.CompRefDes)
}

func TestLoadTree(t *testing.T) {
	db := testDB(t)
	root, a1, _, fuses := buildBoM(t, db)

	tree, err := LoadTree(db, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, tree.Len())

	n, ok := tree.Node(int(fuses[0].ID))
	require.True(t, ok)
	assert.True(t, n.Part)
	assert.Equal(t, int(a1.ID), n.ParentID)
	assert.Equal(t, milhdbk217f.CategoryMiscellaneous, n.Attributes.CategoryID)
	assert.Equal(t, 2, n.Attributes.EnvironmentActiveID)
	assert.Equal(t, int(fuses[0].ID), n.Attributes.HardwareID)

	sub, err := LoadTree(db, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Len())
	top, ok := sub.Node(int(a1.ID))
	require.True(t, ok)
	assert.Equal(t, 0, top.ParentID)

	_, err = LoadTree(db, 999)
	require.Error(t, err)
}

func TestRecalculate(t *testing.T) {
	db := testDB(t)
	root, a1, _, fuses := buildBoM(t, db)

	res, err := Recalculate(db, RecalcOpts{RootID: root.ID, HRMultiplier: 1.0})
	require.NoError(t, err)

	assert.InDelta(t, 0.06, res.Totals[0], 1e-12)
	assert.Equal(t, 3.0, res.Totals[4])
	assert.Contains(t, res.Message, "ERROR: Unknown active and/or dormant environment ID")

	assert.Len(t, res.Run.ID, 36)
	assert.Equal(t, 6, res.Run.Nodes)
	assert.Equal(t, 3, res.Run.Parts)
	assert.Equal(t, "cli", res.Run.Trigger)

	board, err := Get(db, a1.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.04, board.Reliability.HazardRateActive, 1e-12)
	assert.Equal(t, 2, board.Reliability.TotalPartCount)
	assert.NotNil(t, board.Reliability.CalculatedAt)

	fuse, err := Get(db, fuses[0].ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.02, fuse.Reliability.HazardRateActive, 1e-12)
	assert.Equal(t, milhdbk217f.MethodPartsCount, fuse.Reliability.HazardRateMethodID)

	runs, err := ListRuns(db, root.ID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, res.Run.ID, runs[0].ID)
}

func TestRecalculate_Idempotent(t *testing.T) {
	db := testDB(t)
	root, _, _, _ := buildBoM(t, db)

	first, err := Recalculate(db, RecalcOpts{RootID: root.ID, HRMultiplier: 1.0})
	require.NoError(t, err)
	second, err := Recalculate(db, RecalcOpts{RootID: root.ID, HRMultiplier: 1.0, Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, first.Totals, second.Totals)
	assert.NotEqual(t, first.Run.ID, second.Run.ID)
}

func TestRecalculate_SpecifiedRateAssembly(t *testing.T) {
	db := testDB(t)
	root, a1, _, _ := buildBoM(t, db)
	require.NoError(t, Update(db, a1.ID, map[string]interface{}{
		"reliability.hazard_rate_type_id":   bom.HazardRateSpecified,
		"reliability.hazard_rate_specified": 0.5,
	}))

	res, err := Recalculate(db, RecalcOpts{RootID: root.ID, HRMultiplier: 1.0})
	require.NoError(t, err)
	assert.InDelta(t, 0.52, res.Totals[0], 1e-12)
}
