package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zulandar/hwrel/internal/milhdbk217f"
)

// formatRate renders a per-hour hazard rate in display units.
func formatRate(perHour, hrMultiplier float64) string {
	if hrMultiplier <= 0 {
		hrMultiplier = 1.0
	}
	return strconv.FormatFloat(perHour*hrMultiplier, 'g', 6, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func categoryName(id int) string {
	switch id {
	case milhdbk217f.CategoryIntegratedCircuit:
		return "IC"
	case milhdbk217f.CategorySemiconductor:
		return "semiconductor"
	case milhdbk217f.CategoryResistor:
		return "resistor"
	case milhdbk217f.CategoryCapacitor:
		return "capacitor"
	case milhdbk217f.CategoryInductor:
		return "inductor"
	case milhdbk217f.CategoryRelay:
		return "relay"
	case milhdbk217f.CategorySwitch:
		return "switch"
	case milhdbk217f.CategoryConnection:
		return "connection"
	case milhdbk217f.CategoryMeter:
		return "meter"
	case milhdbk217f.CategoryMiscellaneous:
		return "misc"
	}
	return "-"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// parseSets turns repeated key=value flags into an update map. Values are
// typed as bool, integer or float when they parse as one.
func parseSets(sets []string) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(sets))
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q: want key=value", s)
		}
		updates[k] = parseValue(strings.TrimSpace(v))
	}
	return updates, nil
}

func parseValue(v string) interface{} {
	if v == "true" || v == "false" {
		return v == "true"
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

// printMessages writes each message line indented under a heading.
func printMessages(w io.Writer, msg string) {
	var lines []string
	for _, l := range strings.Split(msg, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "\nMessages (%d):\n", len(lines))
	for _, l := range lines {
		fmt.Fprintf(w, "  %s\n", l)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func trimNewline(s string) string {
	return strings.TrimRight(s, "\n")
}
