package dcf

import "math"

// Request is the valuation request consumed from the transport layer.
// WACC accepts percent or decimal form (10 or 0.10).
type Request struct {
	Ticker    string     `json:"ticker"`
	Horizon   int        `json:"horizon"`
	WACC      *float64   `json:"wacc,omitempty"`
	Scenarios *Scenarios `json:"scenarios,omitempty"`
}

// Scenarios groups per-scenario overrides. Base is always evaluated; absent
// bull/bear scenarios are synthesized from the base enterprise value.
type Scenarios struct {
	Base *ScenarioOverrides `json:"base"`
	Bull *ScenarioOverrides `json:"bull,omitempty"`
	Bear *ScenarioOverrides `json:"bear,omitempty"`
}

// Assumptions echoes the resolved request-level inputs. WACC is in percent.
type Assumptions struct {
	Ticker  string  `json:"ticker"`
	Horizon int     `json:"horizon"`
	WACC    float64 `json:"wacc"`
	Notes   string  `json:"notes"`
}

// Result is the full valuation output. Flows holds the cash flow tables for
// the scenarios that were actually projected; synthesized bull/bear
// scenarios have no entry.
type Result struct {
	Assumptions  Assumptions              `json:"assumptions"`
	PVByScenario map[string]float64       `json:"pvByScenario"`
	Sensitivity  []SensitivityPoint       `json:"sensitivity"`
	Flows        map[string][]CashFlowRow `json:"flowsByScenario"`
}

const assumptionNotes = "Fundamentals-driven DCF using simple revenue->EBIT->NOPAT and reinvestment policy."

// Multipliers for bull/bear scenarios synthesized without a projection.
const (
	bullMultiplier = 1.20
	bearMultiplier = 0.80
)

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// scenarioEV projects one scenario and aggregates its enterprise value:
// cumulative present value of the explicit period plus the discounted
// Gordon tail.
func scenarioEV(p ScenarioParams) ([]CashFlowRow, float64) {
	rows := ProjectCashFlows(p)
	last := rows[len(rows)-1]
	_, pvTV := TerminalValue(last, p)
	return rows, last.CumPV + pvTV
}

// Valuate runs the full pipeline for one request: normalize, project each
// supplied scenario, estimate terminal values, aggregate enterprise values
// and generate the sensitivity grid anchored on the base scenario.
func Valuate(req Request) *Result {
	r := Pct(req.WACC, 0.10)
	horizon := req.Horizon
	if horizon < 1 {
		horizon = 1
	}
	sc := req.Scenarios
	if sc == nil {
		sc = &Scenarios{}
	}

	flows := make(map[string][]CashFlowRow)
	pvByScenario := make(map[string]float64)

	base := NormalizeScenario(sc.Base, horizon, r)
	baseRows, evBase := scenarioEV(base)
	flows["base"] = baseRows
	pvByScenario["base"] = round2(evBase)

	if sc.Bull != nil {
		bullRows, ev := scenarioEV(NormalizeScenario(sc.Bull, horizon, r))
		flows["bull"] = bullRows
		pvByScenario["bull"] = round2(ev)
	} else {
		pvByScenario["bull"] = round2(pvByScenario["base"] * bullMultiplier)
	}

	if sc.Bear != nil {
		bearRows, ev := scenarioEV(NormalizeScenario(sc.Bear, horizon, r))
		flows["bear"] = bearRows
		pvByScenario["bear"] = round2(ev)
	} else {
		pvByScenario["bear"] = round2(pvByScenario["base"] * bearMultiplier)
	}

	lastBase := baseRows[len(baseRows)-1]
	sensitivity := SensitivityGrid(lastBase, base.ReinvestmentRate, horizon)

	return &Result{
		Assumptions: Assumptions{
			Ticker:  req.Ticker,
			Horizon: horizon,
			WACC:    round2(r * 100.0),
			Notes:   assumptionNotes,
		},
		PVByScenario: pvByScenario,
		Sensitivity:  sensitivity,
		Flows:        flows,
	}
}
