package bom

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zulandar/hwrel/internal/milhdbk217f"
)

func specifiedPart(id, parentID int, rate float64) Node {
	n := NewPart(id, parentID, milhdbk217f.Attributes{})
	n.HazardRateTypeID = HazardRateSpecified
	n.HazardRateSpecified = rate
	return n
}

func fuse(id, parentID int) Node {
	return NewPart(id, parentID, milhdbk217f.Attributes{
		CategoryID:           milhdbk217f.CategoryMiscellaneous,
		SubcategoryID:        3,
		HazardRateMethodID:   milhdbk217f.MethodPartsCount,
		EnvironmentActiveID:  2,
		EnvironmentDormantID: milhdbk217f.DormantGround,
	})
}

func newAggregator(tree *Tree) *Aggregator {
	return NewAggregator(tree, milhdbk217f.NewDispatcher(milhdbk217f.DefaultStressLimits()), DefaultHRMultiplier)
}

func TestCalculateAll_TwoLeaves(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Add(NewAssembly(1, 0)))
	require.NoError(t, tree.Add(specifiedPart(2, 1, 1000.0)))
	require.NoError(t, tree.Add(specifiedPart(3, 1, 1000.0)))

	got, _ := newAggregator(tree).CalculateAll(1)
	assert.InDelta(t, 0.002, got[0], 1e-15)
	assert.Equal(t, 2.0, got[4])
}

func TestCalculateAll_FuseHazardRate(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Add(fuse(1, 0)))

	agg := newAggregator(tree)
	agg.HRMultiplier = 20.0
	got, msg := agg.CalculateAll(1)
	assert.InDelta(t, 0.001, got[0], 1e-15)
	// Fuses have no dormant multiplier, which is reported but not fatal.
	assert.Contains(t, msg, "ERROR: Unknown active and/or dormant environment ID")
	assert.Equal(t, 0.0, got[1])
}

func TestCalculateHardware_Additivity(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Add(NewAssembly(1, 0)))
	rates := []float64{12.5, 0.75, 3.0, 100.0}
	for i, r := range rates {
		require.NoError(t, tree.Add(specifiedPart(i+2, 1, r)))
	}

	agg := newAggregator(tree)
	root, _, err := agg.CalculateHardware(1)
	require.NoError(t, err)

	var sum float64
	for _, c := range tree.Children(1) {
		sum += c.Metrics.HazardRateActive
	}
	assert.InDelta(t, sum, root.HazardRateActive, 1e-15)
	assert.InDelta(t, (12.5+0.75+3.0+100.0)/1e6, root.HazardRateActive, 1e-15)
}

func TestCalculateHardware_QuantityScaling(t *testing.T) {
	build := func(qty int) Metrics {
		tree := NewTree()
		asm := NewAssembly(1, 0)
		asm.Attributes.Quantity = qty
		require.NoError(t, tree.Add(asm))
		p := specifiedPart(2, 1, 10.0)
		p.Cost = 2.5
		p.Attributes.PowerOperating = 0.25
		require.NoError(t, tree.Add(p))
		m, _, err := newAggregator(tree).CalculateHardware(1)
		require.NoError(t, err)
		return m
	}

	one := build(1)
	three := build(3)
	assert.InDelta(t, 3*one.HazardRateActive, three.HazardRateActive, 1e-15)
	assert.InDelta(t, 3*one.TotalCost, three.TotalCost, 1e-12)
	assert.Equal(t, 3*one.TotalPartCount, three.TotalPartCount)
	assert.InDelta(t, 3*one.TotalPowerDissipation, three.TotalPowerDissipation, 1e-12)
	assert.Equal(t, 7.5, three.TotalCost)
	assert.Equal(t, 0.75, three.TotalPowerDissipation)
}

func TestCalculateHardware_MTBFInverse(t *testing.T) {
	tree := NewTree()
	p := specifiedPart(1, 0, 250.0)
	p.MissionTime = 100.0
	require.NoError(t, tree.Add(p))

	m, _, err := newAggregator(tree).CalculateHardware(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.MTBFLogistics*m.HazardRateLogistics, 1e-12)
	assert.InDelta(t, math.Exp(-m.HazardRateLogistics*100.0), m.ReliabilityLogistics, 1e-15)
	assert.Equal(t, m.HazardRateActive*m.HazardRateActive, m.HRActiveVariance)

	tree = NewTree()
	require.NoError(t, tree.Add(specifiedPart(1, 0, 0)))
	m, _, err = newAggregator(tree).CalculateHardware(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.MTBFLogistics)
	assert.Equal(t, 0.0, m.MTBFLogisticsVariance)
	assert.Equal(t, 1.0, m.ReliabilityLogistics)
}

func TestCalculateHardware_MTBFSpecified(t *testing.T) {
	tree := NewTree()
	p := NewPart(1, 0, milhdbk217f.Attributes{})
	p.HazardRateTypeID = MTBFSpecified
	p.MTBFSpecified = 50000.0
	require.NoError(t, tree.Add(p))

	m, _, err := newAggregator(tree).CalculateHardware(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/50000.0, m.HazardRateActive, 1e-18)
	assert.InDelta(t, 50000.0, m.MTBFMission, 1e-6)
}

func TestCalculateHardware_Idempotent(t *testing.T) {
	tree := buildTree(t)
	for _, id := range []int{4, 5, 6} {
		n, _ := tree.Node(id)
		n.HazardRateTypeID = HazardRateSpecified
		n.HazardRateSpecified = float64(id)
	}
	agg := newAggregator(tree)

	first, _, err := agg.CalculateHardware(1)
	require.NoError(t, err)
	second, _, err := agg.CalculateHardware(1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, second.TotalPartCount)
}

func TestCalculateHardware_SpecifiedAssembly(t *testing.T) {
	tree := NewTree()
	asm := NewAssembly(1, 0)
	asm.HazardRateTypeID = HazardRateSpecified
	asm.HazardRateSpecified = 5.0
	require.NoError(t, tree.Add(asm))
	child := specifiedPart(2, 1, 1000.0)
	child.Cost = 4.0
	require.NoError(t, tree.Add(child))

	m, _, err := newAggregator(tree).CalculateHardware(1)
	require.NoError(t, err)
	assert.InDelta(t, 5.0e-6, m.HazardRateActive, 1e-18)
	assert.Equal(t, 4.0, m.TotalCost)
	assert.Equal(t, 1, m.TotalPartCount)
}

func TestCalculateHardware_CostTypes(t *testing.T) {
	tree := NewTree()
	asm := NewAssembly(1, 0)
	asm.CostTypeID = CostSpecified
	asm.Cost = 100.0
	asm.Attributes.Quantity = 2
	require.NoError(t, tree.Add(asm))
	child := specifiedPart(2, 1, 1.0)
	child.Cost = 4.0
	require.NoError(t, tree.Add(child))

	m, _, err := newAggregator(tree).CalculateHardware(1)
	require.NoError(t, err)
	assert.Equal(t, 200.0, m.TotalCost)
	assert.Equal(t, 200.0, m.CostHour)
}

func TestCalculateHardware_OverstressPropagates(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Add(NewAssembly(1, 0)))
	require.NoError(t, tree.Add(NewAssembly(2, 1)))
	require.NoError(t, tree.Add(NewPart(3, 2, milhdbk217f.Attributes{
		CategoryID:          milhdbk217f.CategoryCapacitor,
		SubcategoryID:       1,
		SpecificationID:     1,
		QualityID:           4,
		HazardRateMethodID:  milhdbk217f.MethodPartsCount,
		EnvironmentActiveID: 3,
		VoltageDCOperating:  9.0,
		VoltageRated:        10.0,
	})))

	m, _, err := newAggregator(tree).CalculateHardware(1)
	require.NoError(t, err)
	assert.True(t, m.Overstress)

	part, _ := tree.Node(3)
	assert.True(t, part.Metrics.Overstress)
	assert.Contains(t, part.Metrics.Reason, "rated voltage")
}

func TestCalculateHardware_UnknownRoot(t *testing.T) {
	agg := newAggregator(NewTree())
	_, _, err := agg.CalculateHardware(7)
	assert.ErrorIs(t, err, ErrNotFound)

	got, msg := agg.CalculateAll(7)
	assert.Equal(t, [6]float64{}, got)
	assert.True(t, strings.HasPrefix(msg, "ERROR: "))
	assert.Contains(t, msg, "7")
}

func TestCalculateHardware_ZeroMultiplier(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Add(specifiedPart(1, 0, 0.5)))
	agg := newAggregator(tree)
	agg.HRMultiplier = 0

	m, _, err := agg.CalculateHardware(1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, m.HazardRateActive)
}

func TestCalculateHardware_EmptyAssembly(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Add(NewAssembly(1, 0)))
	m, msg, err := newAggregator(tree).CalculateHardware(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.HazardRateActive)
	assert.Equal(t, 0, m.TotalPartCount)
	assert.Empty(t, msg)
}

// wideTree builds a three level tree of mixed predicted parts.
func wideTree(t *testing.T) *Tree {
	t.Helper()
	tree := NewTree()
	require.NoError(t, tree.Add(NewAssembly(1, 0)))
	id := 2
	for a := 0; a < 4; a++ {
		asmID := id
		require.NoError(t, tree.Add(NewAssembly(asmID, 1)))
		id++
		for p := 0; p < 6; p++ {
			n := NewPart(id, asmID, milhdbk217f.Attributes{
				CategoryID:           milhdbk217f.CategoryCapacitor,
				SubcategoryID:        1 + (p % 10),
				SpecificationID:      1 + (p % 2),
				QualityID:            1 + (a % 4),
				HazardRateMethodID:   milhdbk217f.MethodPartsCount,
				EnvironmentActiveID:  1 + p,
				EnvironmentDormantID: milhdbk217f.DormantGround,
				Quantity:             1 + a,
			})
			n.Cost = float64(p) + 0.5
			require.NoError(t, tree.Add(n))
			id++
		}
	}
	return tree
}

func TestCalculateHardware_ParallelMatchesSequential(t *testing.T) {
	seqTree := wideTree(t)
	seq, seqMsg, err := newAggregator(seqTree).CalculateHardware(1)
	require.NoError(t, err)

	parTree := wideTree(t)
	agg := newAggregator(parTree)
	agg.Workers = 4
	par, parMsg, err := agg.CalculateHardware(1)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
	assert.Equal(t, seqMsg, parMsg)
	require.NoError(t, seqTree.Walk(1, func(n *Node) error {
		other, ok := parTree.Node(n.ID)
		require.True(t, ok)
		assert.Equal(t, n.Metrics, other.Metrics, "node %d", n.ID)
		return nil
	}))
}
