package dcf

import "math"

// CashFlowRow is one projected year. JSON names match the workbook columns.
type CashFlowRow struct {
	Year           int     `json:"year"`
	Revenue        float64 `json:"revenue"`
	EBIT           float64 `json:"ebit"`
	NOPAT          float64 `json:"nopat"`
	Reinvestment   float64 `json:"reinvestment"`
	FCF            float64 `json:"fcf"`
	DiscountFactor float64 `json:"discountFactor"`
	PVFCF          float64 `json:"pv_fcf"`
	CumPV          float64 `json:"cum_pv"`
}

// nextGrowth steps the growth rate one year toward the terminal rate.
// Convergence is monotone from either side and never overshoots.
func nextGrowth(curr, terminal, decay float64) float64 {
	if curr > terminal {
		return math.Max(terminal, curr-decay)
	}
	return math.Min(terminal, curr+decay)
}

// ProjectCashFlows runs the projection for years 1..Horizon. Revenue
// compounds off the prior year's revenue; the growth rate decays toward
// TerminalG after each emitted row. The returned slice is ordered by year
// and never mutated afterwards.
func ProjectCashFlows(p ScenarioParams) []CashFlowRow {
	rows := make([]CashFlowRow, 0, p.Horizon)
	rev := p.Revenue0
	g := p.Growth
	cum := 0.0
	for t := 1; t <= p.Horizon; t++ {
		rev *= 1.0 + g
		ebit := rev * p.EBITMargin
		nopat := ebit * (1.0 - p.TaxRate)
		reinvest := math.Max(0, nopat*p.ReinvestmentRate)
		fcf := nopat - reinvest
		df := math.Pow(1.0+p.WACC, -float64(t))
		pv := fcf * df
		cum += pv
		rows = append(rows, CashFlowRow{
			Year:           t,
			Revenue:        rev,
			EBIT:           ebit,
			NOPAT:          nopat,
			Reinvestment:   reinvest,
			FCF:            fcf,
			DiscountFactor: df,
			PVFCF:          pv,
			CumPV:          cum,
		})
		g = nextGrowth(g, p.TerminalG, p.GrowthDecay)
	}
	return rows
}
