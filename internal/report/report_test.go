package report

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/zulandar/hwrel/internal/bom"
	"github.com/zulandar/hwrel/internal/milhdbk217f"
)

func calculatedTree(t *testing.T) (*bom.Tree, string) {
	t.Helper()
	tree := bom.NewTree()

	sys := bom.NewAssembly(1, 0)
	sys.Name, sys.RefDes = "System", "S1"
	require.NoError(t, tree.Add(sys))

	fuse := bom.NewPart(2, 1, milhdbk217f.Attributes{
		CategoryID:           milhdbk217f.CategoryMiscellaneous,
		SubcategoryID:        3,
		HazardRateMethodID:   milhdbk217f.MethodPartsCount,
		EnvironmentActiveID:  2,
		EnvironmentDormantID: milhdbk217f.DormantGround,
	})
	fuse.Name, fuse.RefDes = "Fuse", "F1"
	require.NoError(t, tree.Add(fuse))

	require.NoError(t, tree.MakeCompositeRefDes(1))
	agg := bom.NewAggregator(tree, milhdbk217f.NewDispatcher(milhdbk217f.DefaultStressLimits()), bom.DefaultHRMultiplier)
	_, msg, err := agg.CalculateHardware(1)
	require.NoError(t, err)
	return tree, msg
}

func readWorkbook(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriteBoM_Sheets(t *testing.T) {
	tree, msg := calculatedTree(t)

	var buf bytes.Buffer
	require.NoError(t, WriteBoM(&buf, tree, bom.DefaultHRMultiplier, msg))

	f := readWorkbook(t, &buf)
	assert.Equal(t, []string{SheetBoM, SheetMessages}, f.GetSheetList())
}

func TestWriteBoM_Rows(t *testing.T) {
	tree, msg := calculatedTree(t)

	var buf bytes.Buffer
	require.NoError(t, WriteBoM(&buf, tree, bom.DefaultHRMultiplier, msg))

	f := readWorkbook(t, &buf)
	rows, err := f.GetRows(SheetBoM)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, BoMHeader, rows[0])

	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "S1", rows[1][1])
	assert.Equal(t, "System", rows[1][2])
	assert.Equal(t, "No", rows[1][3])

	assert.Equal(t, "1", rows[2][0])
	assert.Equal(t, "S1:F1", rows[2][1])
	assert.Equal(t, "Yes", rows[2][3])
	assert.Equal(t, "fuse", rows[2][4])
	active, err := strconv.ParseFloat(rows[2][6], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.02, active, 1e-9)
	assert.Equal(t, "1", rows[2][15])
}

func TestWriteBoM_Messages(t *testing.T) {
	tree, _ := calculatedTree(t)
	msg := "WARNING: piE is 0.0 when calculating fuse, hardware ID: 2.\nERROR: Unknown active and/or dormant environment ID.\n"

	var buf bytes.Buffer
	require.NoError(t, WriteBoM(&buf, tree, bom.DefaultHRMultiplier, msg))

	f := readWorkbook(t, &buf)
	rows, err := f.GetRows(SheetMessages)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, MessagesHeader, rows[0])
	assert.Equal(t, []string{"WARNING", "piE is 0.0 when calculating fuse, hardware ID: 2."}, rows[1])
	assert.Equal(t, "ERROR", rows[2][0])
}

func TestWriteBoM_EmptyTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBoM(&buf, bom.NewTree(), 0, ""))

	f := readWorkbook(t, &buf)
	rows, err := f.GetRows(SheetBoM)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSplitSeverity(t *testing.T) {
	tests := []struct {
		in, sev, text string
	}{
		{"WARNING: a", "WARNING", "a"},
		{"ERROR: b", "ERROR", "b"},
		{"plain", "INFO", "plain"},
	}
	for _, tt := range tests {
		sev, text := splitSeverity(tt.in)
		assert.Equal(t, tt.sev, sev)
		assert.Equal(t, tt.text, text)
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, "bom_12_20260304_050607.xlsx", Filename(12, at))
}
