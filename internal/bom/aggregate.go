package bom

import (
	"fmt"
	"math"
	"strings"

	"github.com/zulandar/hwrel/internal/milhdbk217f"
	"golang.org/x/sync/errgroup"
)

// DefaultHRMultiplier expresses authored hazard rates in failures per
// million hours.
const DefaultHRMultiplier = 1.0e6

// Aggregator computes metrics for a tree, predicting parts with the
// dispatcher and summing assemblies from their children.
type Aggregator struct {
	Tree       *Tree
	Dispatcher *milhdbk217f.Dispatcher
	// HRMultiplier is the scale of authored and predicted hazard rates.
	// Zero is treated as 1.0.
	HRMultiplier float64
	// Workers > 1 evaluates sibling subtrees concurrently, at most Workers
	// at a time per assembly.
	Workers int
}

// NewAggregator returns a sequential aggregator over t.
func NewAggregator(t *Tree, d *milhdbk217f.Dispatcher, hrMultiplier float64) *Aggregator {
	return &Aggregator{Tree: t, Dispatcher: d, HRMultiplier: hrMultiplier}
}

func (a *Aggregator) multiplier() float64 {
	if a.HRMultiplier <= 0 {
		return 1.0
	}
	return a.HRMultiplier
}

func (a *Aggregator) dispatcher() *milhdbk217f.Dispatcher {
	if a.Dispatcher == nil {
		a.Dispatcher = milhdbk217f.NewDispatcher(milhdbk217f.DefaultStressLimits())
	}
	return a.Dispatcher
}

// CalculateHardware recomputes id and its whole subtree and returns the
// metrics of id along with every message raised, in depth-first order.
// Each node's Metrics field is updated in place.
func (a *Aggregator) CalculateHardware(id int) (Metrics, string, error) {
	n, ok := a.Tree.Node(id)
	if !ok {
		return Metrics{}, "", fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	a.dispatcher()
	m, msg := a.calculate(n)
	return m, msg, nil
}

// CalculateAll recomputes the subtree under id and returns its active,
// dormant and software hazard rates, total cost, total part count and total
// power dissipation, in that order.
func (a *Aggregator) CalculateAll(id int) ([6]float64, string) {
	m, msg, err := a.CalculateHardware(id)
	if err != nil {
		return [6]float64{}, fmt.Sprintf("ERROR: No hardware item with ID %d in the hardware BoM.\n", id)
	}
	return m.Totals(), msg
}

type result struct {
	metrics Metrics
	msg     string
}

func (a *Aggregator) calculateChildren(children []*Node) []result {
	results := make([]result, len(children))
	if a.Workers <= 1 || len(children) < 2 {
		for i, c := range children {
			m, msg := a.calculate(c)
			results[i] = result{m, msg}
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(a.Workers)
	for i, c := range children {
		g.Go(func() error {
			m, msg := a.calculate(c)
			results[i] = result{m, msg}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// calculate runs cost, part count, power and hazard rate for n after all
// of its children have been computed. Metrics start from zero on every
// call so summed fields never accumulate across recalculations.
func (a *Aggregator) calculate(n *Node) (Metrics, string) {
	var (
		msg  strings.Builder
		m    Metrics
		kids []Metrics
	)
	hrm := a.multiplier()
	attrs := n.Attributes
	qty := float64(attrs.Quantity)

	if !n.Part {
		for _, r := range a.calculateChildren(a.Tree.Children(n.ID)) {
			kids = append(kids, r.metrics)
			msg.WriteString(r.msg)
		}
	}

	var cost, count, power float64
	for _, k := range kids {
		cost += k.TotalCost
		count += float64(k.TotalPartCount)
		power += k.TotalPowerDissipation
		if k.Overstress {
			m.Overstress = true
		}
	}

	if n.CostTypeID == CostSpecified || n.Part {
		m.TotalCost = n.Cost * qty
	} else {
		m.TotalCost = qty * cost
	}
	if n.Part {
		m.TotalPartCount = attrs.Quantity
		m.TotalPowerDissipation = attrs.PowerOperating * qty
	} else {
		m.TotalPartCount = int(math.Round(qty * count))
		m.TotalPowerDissipation = qty * power
	}

	specified := n.HazardRateTypeID == HazardRateSpecified || n.HazardRateTypeID == MTBFSpecified
	m.HazardRateSoftware = n.HazardRateSoftware / hrm
	switch {
	case n.Part:
		out, dmsg := a.Dispatcher.Calculate(attrs)
		msg.WriteString(dmsg)
		n.Attributes = out
		m.Overstress = out.Overstress
		m.Reason = out.Reason
		m.HazardRateActive = out.HazardRateActive / hrm
		if specified {
			m.HazardRateActive = specifiedRate(n, hrm)
		}
		m.HazardRateDormant = out.HazardRateDormant / hrm
	case specified:
		m.HazardRateActive = specifiedRate(n, hrm)
	case len(kids) == 0:
		// An empty assembly has nothing to assess.
	default:
		var active, dormant, software float64
		for _, k := range kids {
			active += k.HazardRateActive
			dormant += k.HazardRateDormant
			software += k.HazardRateSoftware
		}
		m.HazardRateActive = (active + attrs.AddAdjFactor/hrm) * attrs.MultAdjFactor *
			(attrs.DutyCycle / 100.0) * qty
		m.HazardRateDormant = qty * dormant
		m.HazardRateSoftware = qty * software
	}

	finish(&m, n.MissionTime)
	n.Metrics = m
	return m, msg.String()
}

// specifiedRate converts a specified hazard rate or MTBF to failures per
// hour and applies the node's adjustments.
func specifiedRate(n *Node, hrm float64) float64 {
	var rate float64
	switch n.HazardRateTypeID {
	case HazardRateSpecified:
		rate = n.HazardRateSpecified / hrm
	case MTBFSpecified:
		rate = inverse(n.MTBFSpecified)
	}
	a := n.Attributes
	return (rate + a.AddAdjFactor/hrm) * a.MultAdjFactor * (a.DutyCycle / 100.0) * float64(a.Quantity)
}

// finish derives the logistics and mission figures from the hazard rates
// and totals already in m.
func finish(m *Metrics, missionTime float64) {
	m.HazardRateLogistics = m.HazardRateActive + m.HazardRateDormant + m.HazardRateSoftware
	m.HazardRateMission = m.HazardRateActive + m.HazardRateSoftware

	m.MTBFLogistics = inverse(m.HazardRateLogistics)
	m.MTBFMission = inverse(m.HazardRateMission)
	m.ReliabilityLogistics = math.Exp(-m.HazardRateLogistics * missionTime)
	m.ReliabilityMission = math.Exp(-m.HazardRateMission * missionTime)

	m.HRActiveVariance = m.HazardRateActive * m.HazardRateActive
	m.HRDormantVariance = m.HazardRateDormant * m.HazardRateDormant
	m.HRLogisticsVariance = m.HazardRateLogistics * m.HazardRateLogistics
	m.HRMissionVariance = m.HazardRateMission * m.HazardRateMission
	m.MTBFLogisticsVariance = inverse(m.HRLogisticsVariance)
	m.MTBFMissionVariance = inverse(m.HRMissionVariance)

	m.CostHour = m.TotalCost
	if missionTime != 0 {
		m.CostHour = m.TotalCost / missionTime
	}
	m.CostFailure = m.CostHour * m.MTBFLogistics
}

// inverse returns 1/v, or 0 when v is 0.
func inverse(v float64) float64 {
	if v == 0 {
		return 0
	}
	return 1.0 / v
}
