// Package report exports a calculated BoM to an Excel workbook.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/zulandar/hwrel/internal/bom"
	"github.com/zulandar/hwrel/internal/milhdbk217f"
)

// Sheet names.
const (
	SheetBoM      = "BoM"
	SheetMessages = "Messages"
)

// BoMHeader is the header row of the BoM sheet. Hazard rates are in
// failures per hr multiplier hours; MTBF is in hours.
var BoMHeader = []string{
	"Level",
	"Ref Des",
	"Name",
	"Part",
	"Category",
	"Quantity",
	"Active HR",
	"Dormant HR",
	"Software HR",
	"Logistics HR",
	"Mission HR",
	"MTBF Logistics",
	"MTBF Mission",
	"Reliability Mission",
	"Total Cost",
	"Part Count",
	"Power",
	"Overstress",
	"Reason",
}

var bomColumnWidths = []float64{6, 24, 28, 6, 18, 9, 12, 12, 12, 12, 12, 14, 14, 12, 12, 10, 10, 10, 60}

// MessagesHeader is the header row of the Messages sheet.
var MessagesHeader = []string{"Severity", "Message"}

// Filename returns the default workbook name for a root item.
func Filename(rootID int, at time.Time) string {
	return fmt.Sprintf("bom_%d_%s.xlsx", rootID, at.Format("20060102_150405"))
}

// WriteBoM writes every node of tree, depth first from each root, and the
// calculation messages to w as an xlsx workbook.
func WriteBoM(w io.Writer, tree *bom.Tree, hrMultiplier float64, messages string) error {
	if hrMultiplier <= 0 {
		hrMultiplier = 1.0
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetBoM); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetMessages); err != nil {
		return fmt.Errorf("report: create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("report: create header style: %w", err)
	}
	overstressStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#C00000"},
	})
	if err != nil {
		return fmt.Errorf("report: create overstress style: %w", err)
	}

	if err := writeHeader(f, SheetBoM, BoMHeader, bomColumnWidths, headerStyle); err != nil {
		return err
	}
	if err := writeHeader(f, SheetMessages, MessagesHeader, []float64{10, 120}, headerStyle); err != nil {
		return err
	}

	row := 2
	for _, root := range tree.Roots() {
		err := walkDepth(tree, root, 0, func(n *bom.Node, depth int) error {
			if err := f.SetSheetRow(SheetBoM, cellName(1, row), bomRow(n, depth, hrMultiplier)); err != nil {
				return fmt.Errorf("report: write row %d: %w", row, err)
			}
			if n.Metrics.Overstress {
				start, end := cellName(1, row), cellName(len(BoMHeader), row)
				if err := f.SetCellStyle(SheetBoM, start, end, overstressStyle); err != nil {
					return fmt.Errorf("report: style row %d: %w", row, err)
				}
			}
			row++
			return nil
		})
		if err != nil {
			return err
		}
	}

	row = 2
	for _, line := range strings.Split(messages, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		severity, text := splitSeverity(line)
		if err := f.SetSheetRow(SheetMessages, cellName(1, row), &[]interface{}{severity, text}); err != nil {
			return fmt.Errorf("report: write message %d: %w", row, err)
		}
		row++
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, widths []float64, style int) error {
	for i, h := range headers {
		cell := cellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("report: set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("report: set header style: %w", err)
		}
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("report: column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("report: set column width: %w", err)
		}
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}

func walkDepth(tree *bom.Tree, n *bom.Node, depth int, fn func(*bom.Node, int) error) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, c := range tree.Children(n.ID) {
		if err := walkDepth(tree, c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

func bomRow(n *bom.Node, depth int, hrm float64) *[]interface{} {
	m := n.Metrics
	refdes := n.CompRefDes
	if refdes == "" {
		refdes = n.RefDes
	}
	category := ""
	if n.Part {
		category = milhdbk217f.KindFor(n.Attributes.CategoryID, n.Attributes.SubcategoryID).String()
	}
	return &[]interface{}{
		depth,
		refdes,
		n.Name,
		yesNo(n.Part),
		category,
		n.Attributes.Quantity,
		m.HazardRateActive * hrm,
		m.HazardRateDormant * hrm,
		m.HazardRateSoftware * hrm,
		m.HazardRateLogistics * hrm,
		m.HazardRateMission * hrm,
		m.MTBFLogistics,
		m.MTBFMission,
		m.ReliabilityMission,
		m.TotalCost,
		m.TotalPartCount,
		m.TotalPowerDissipation,
		yesNo(m.Overstress),
		strings.TrimSpace(m.Reason),
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// splitSeverity separates a "WARNING: " or "ERROR: " prefix from a
// message line.
func splitSeverity(line string) (string, string) {
	for _, sev := range []string{"WARNING", "ERROR"} {
		if rest, ok := strings.CutPrefix(line, sev+": "); ok {
			return sev, rest
		}
	}
	return "INFO", line
}
