package dcf

import (
	"math"
	"testing"
)

func TestSensitivityGridShapeAndOrder(t *testing.T) {
	last := CashFlowRow{NOPAT: 211.063387392, CumPV: 477.749866954443}
	points := SensitivityGrid(last, 0.35, 5)

	if len(points) != 42 {
		t.Fatalf("expected 42 points, got %d", len(points))
	}
	if points[0].WACC != 6 || points[0].TerminalG != 0 {
		t.Errorf("first point: expected (6, 0), got (%f, %f)", points[0].WACC, points[0].TerminalG)
	}
	if points[41].WACC != 12 || points[41].TerminalG != 2.5 {
		t.Errorf("last point: expected (12, 2.5), got (%f, %f)", points[41].WACC, points[41].TerminalG)
	}

	// wacc-major ordering, both axes ascending.
	i := 0
	for w := 6; w <= 12; w++ {
		for _, g := range []float64{0.0, 0.5, 1.0, 1.5, 2.0, 2.5} {
			if points[i].WACC != float64(w) || points[i].TerminalG != g {
				t.Fatalf("point %d: expected (%d, %.1f), got (%f, %f)", i, w, g, points[i].WACC, points[i].TerminalG)
			}
			i++
		}
	}
}

func TestSensitivityGridValues(t *testing.T) {
	// Final base year from the all-defaults horizon-5 projection.
	last := CashFlowRow{NOPAT: 211.063387392, CumPV: 477.749866954443}
	points := SensitivityGrid(last, 0.35, 5)

	want := map[[2]float64]float64{
		{6, 0.0}:  2186.37,
		{10, 2.0}: 1563.86, // matches the base enterprise value
		{12, 2.5}: 1317.67,
	}
	for _, pt := range points {
		if expected, ok := want[[2]float64{pt.WACC, pt.TerminalG}]; ok {
			if math.Abs(pt.Value-expected) > 0.005 {
				t.Errorf("cell (%g, %g): expected %f, got %f", pt.WACC, pt.TerminalG, expected, pt.Value)
			}
		}
	}
}

func TestTailValueDegenerateCellFinite(t *testing.T) {
	// wacc == terminalG must not blow up; the 1e-6 floor bounds it.
	pv := tailValue(100, 0.35, 0.06, 0.06, 5)
	if math.IsInf(pv, 0) || math.IsNaN(pv) {
		t.Fatalf("tail value not finite: %f", pv)
	}
	if pv <= 0 {
		t.Errorf("expected large positive tail value, got %f", pv)
	}
	// Bounded by fcf_next/1e-6 before discounting.
	upper := 100 * 1.06 * 0.65 * 1e6
	if pv > upper {
		t.Errorf("tail value exceeds floor bound: %f > %f", pv, upper)
	}
}

func TestSensitivityHoldsProjectedFlowsFixed(t *testing.T) {
	// Every cell shares the same cum_pv base; subtracting it must leave only
	// the discounted tail, which is positive for all grid cells.
	last := CashFlowRow{NOPAT: 150, CumPV: 400}
	for _, pt := range SensitivityGrid(last, 0.35, 5) {
		if pt.Value <= 400 {
			t.Errorf("cell (%g, %g): value %f should exceed fixed cum_pv", pt.WACC, pt.TerminalG, pt.Value)
		}
	}
}
