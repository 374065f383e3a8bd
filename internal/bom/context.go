package bom

import "github.com/zulandar/hwrel/internal/milhdbk217f"

// Source is a design record that contributes fields to a calculation
// context.
type Source interface {
	ApplyTo(a *milhdbk217f.Attributes)
}

// MergeContext builds the calculation context for one item by applying
// sources in order. Later sources overwrite earlier ones, shared keys such
// as the hardware and revision ids included. Nil sources are skipped.
func MergeContext(sources ...Source) milhdbk217f.Attributes {
	var a milhdbk217f.Attributes
	for _, s := range sources {
		if s == nil {
			continue
		}
		s.ApplyTo(&a)
	}
	return a
}
