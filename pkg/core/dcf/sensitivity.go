package dcf

import "math"

// SensitivityPoint is one grid cell. WACC and TerminalG are in percent to
// match the workbook axes.
type SensitivityPoint struct {
	WACC      float64 `json:"wacc"`
	TerminalG float64 `json:"terminalG"`
	Value     float64 `json:"value"`
}

// Grid bounds are engine constants, not request parameters.
var (
	sensitivityWACCs   = []int{6, 7, 8, 9, 10, 11, 12}
	sensitivityGrowths = []float64{0.0, 0.5, 1.0, 1.5, 2.0, 2.5}
)

// tailValue computes the present value of the Gordon tail for one grid cell,
// with the same denominator floor as TerminalValue.
func tailValue(nopat, reinvRate, g, r float64, horizon int) float64 {
	fcfNext := nopat * (1.0 + g) * (1.0 - reinvRate)
	tv := fcfNext / math.Max(minSpread, r-g)
	return tv / math.Pow(1.0+r, float64(horizon))
}

// SensitivityGrid revalues the terminal tail over the wacc x terminalG grid,
// holding the base scenario's projected cash flows fixed: only the tail is
// recomputed per cell and added to the final cumulative present value.
// Output is wacc-major, both axes ascending, 42 points.
func SensitivityGrid(last CashFlowRow, reinvRate float64, horizon int) []SensitivityPoint {
	points := make([]SensitivityPoint, 0, len(sensitivityWACCs)*len(sensitivityGrowths))
	for _, w := range sensitivityWACCs {
		for _, gi := range sensitivityGrowths {
			pvTail := tailValue(last.NOPAT, reinvRate, gi/100.0, float64(w)/100.0, horizon)
			points = append(points, SensitivityPoint{
				WACC:      float64(w),
				TerminalG: gi,
				Value:     round2(last.CumPV + pvTail),
			})
		}
	}
	return points
}
