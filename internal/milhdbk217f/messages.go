package milhdbk217f

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// warnf formats one WARNING line.
func warnf(format string, args ...any) string {
	return "WARNING: " + fmt.Sprintf(format, args...) + "\n"
}

// errorf formats one ERROR line.
func errorf(format string, args ...any) string {
	return "ERROR: " + fmt.Sprintf(format, args...) + "\n"
}

type factor struct {
	name  string
	value float64
}

// checkFactors emits a warning for every factor that is not positive.
func checkFactors(k Kind, hardwareID int, factors ...factor) string {
	var b strings.Builder
	for _, f := range factors {
		if !(f.value > 0) {
			b.WriteString(warnf("%s is 0.0 when calculating %s, hardware ID: %d.", f.name, k, hardwareID))
		}
	}
	return b.String()
}

// formatLimit renders a limit the way it is shown in overstress reasons:
// shortest decimal form with at least one fractional digit.
func formatLimit(v float64) string {
	v = math.Round(v*1e6) / 1e6
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
