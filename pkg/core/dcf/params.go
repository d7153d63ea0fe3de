// Package dcf implements the Mad Lab discounted cash flow engine:
// parameter normalization, year-by-year cash flow projection, Gordon-growth
// terminal values, scenario aggregation and sensitivity analysis.
//
// The engine is pure computation. It performs no I/O, holds no state between
// calls, and is safe for concurrent use.
package dcf

// ScenarioOverrides carries the raw inputs for one scenario. Rate fields
// accept percent form (10) or decimal form (0.10); nil means "use default".
type ScenarioOverrides struct {
	Revenue0         *float64 `json:"revenue0,omitempty"`
	Growth           *float64 `json:"growth,omitempty"`
	GrowthDecay      *float64 `json:"growth_decay,omitempty"`
	EBITMargin       *float64 `json:"ebit_margin,omitempty"`
	TaxRate          *float64 `json:"tax_rate,omitempty"`
	ReinvestmentRate *float64 `json:"reinvestment_rate,omitempty"`
	TerminalG        *float64 `json:"terminal_g,omitempty"`
	WACC             *float64 `json:"wacc,omitempty"`
	SharesOut        *float64 `json:"shares_out,omitempty"`
	NetDebt          *float64 `json:"net_debt,omitempty"`
	Horizon          *int     `json:"horizon,omitempty"`
}

// ScenarioParams is a fully resolved parameter set. Every rate field is in
// decimal form once NormalizeScenario has run; the struct is never mutated
// afterwards.
type ScenarioParams struct {
	Revenue0         float64
	Growth           float64
	GrowthDecay      float64
	EBITMargin       float64
	TaxRate          float64
	ReinvestmentRate float64
	TerminalG        float64
	WACC             float64
	SharesOut        float64
	NetDebt          float64
	Horizon          int
}

// Pct interprets a flexible rate input: values above 1 are treated as
// percentages (10 -> 0.10), values at or below 1 as decimals already.
// Exactly 1.0 passes through as a 100% decimal rate.
func Pct(x *float64, def float64) float64 {
	if x == nil {
		return def
	}
	if *x > 1 {
		return *x / 100.0
	}
	return *x
}

// NormalizeScenario resolves overrides into a complete parameter set.
// horizon and wacc come from the request level and act as the defaults for
// the scenario-level fields of the same name. Out-of-range values are
// accepted as-is; plausibility is the caller's concern.
func NormalizeScenario(o *ScenarioOverrides, horizon int, wacc float64) ScenarioParams {
	if o == nil {
		o = &ScenarioOverrides{}
	}
	p := ScenarioParams{
		Revenue0:         1000.0,
		Growth:           Pct(o.Growth, 0.10),
		GrowthDecay:      Pct(o.GrowthDecay, 0.02),
		EBITMargin:       Pct(o.EBITMargin, 0.20),
		TaxRate:          Pct(o.TaxRate, 0.21),
		ReinvestmentRate: Pct(o.ReinvestmentRate, 0.35),
		TerminalG:        Pct(o.TerminalG, 0.02),
		WACC:             Pct(o.WACC, wacc),
		Horizon:          horizon,
	}
	if o.Revenue0 != nil {
		p.Revenue0 = *o.Revenue0
	}
	if o.SharesOut != nil {
		p.SharesOut = *o.SharesOut
	}
	if o.NetDebt != nil {
		p.NetDebt = *o.NetDebt
	}
	if o.Horizon != nil {
		p.Horizon = *o.Horizon
	}
	if p.Horizon < 1 {
		p.Horizon = 1
	}
	return p
}
