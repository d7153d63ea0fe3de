package dcf

import "math"

// minSpread floors the Gordon denominator. A WACC at or below the terminal
// growth rate yields a very large but finite terminal value instead of a
// division blowup or sign flip.
const minSpread = 1e-6

// TerminalValue estimates the Gordon-growth terminal value off the final
// projected year: NOPAT grows one more period at TerminalG and the
// steady-state reinvestment rate applies. Returns the terminal value and its
// present value at the end of the horizon.
func TerminalValue(last CashFlowRow, p ScenarioParams) (tv, pvTV float64) {
	nopatNext := last.NOPAT * (1.0 + p.TerminalG)
	fcfNext := nopatNext * (1.0 - p.ReinvestmentRate)
	tv = fcfNext / math.Max(minSpread, p.WACC-p.TerminalG)
	pvTV = tv / math.Pow(1.0+p.WACC, float64(p.Horizon))
	return tv, pvTV
}
