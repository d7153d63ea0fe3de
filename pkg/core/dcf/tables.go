package dcf

// Table is a rectangular read-only view of one slice of the result, handed
// to the export collaborator. The core does not know what format or
// location the tables end up in.
type Table struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// scenarioOrder fixes the sheet and row ordering for scenario tables.
var scenarioOrder = []string{"base", "bull", "bear"}

// AssumptionsTable returns the resolved request-level inputs as key/value rows.
func (r *Result) AssumptionsTable() Table {
	return Table{
		Name:   "Assumptions",
		Header: []string{"key", "value"},
		Rows: [][]interface{}{
			{"ticker", r.Assumptions.Ticker},
			{"horizon", r.Assumptions.Horizon},
			{"wacc", r.Assumptions.WACC},
			{"notes", r.Assumptions.Notes},
		},
	}
}

// ScenarioTable returns one row per scenario with its enterprise value,
// synthesized scenarios included.
func (r *Result) ScenarioTable() Table {
	t := Table{Name: "PV", Header: []string{"scenario", "enterprise_value"}}
	for _, name := range scenarioOrder {
		if ev, ok := r.PVByScenario[name]; ok {
			t.Rows = append(t.Rows, []interface{}{name, ev})
		}
	}
	return t
}

// SensitivityTable returns the grid in long form, one row per cell.
func (r *Result) SensitivityTable() Table {
	t := Table{Name: "Sensitivity", Header: []string{"wacc", "terminalG", "value"}}
	for _, pt := range r.Sensitivity {
		t.Rows = append(t.Rows, []interface{}{pt.WACC, pt.TerminalG, pt.Value})
	}
	return t
}

// CashFlowTables returns one table per projected scenario, base first.
// Synthesized scenarios have no rows to show and are omitted.
func (r *Result) CashFlowTables() []Table {
	var tables []Table
	for _, name := range scenarioOrder {
		rows, ok := r.Flows[name]
		if !ok {
			continue
		}
		t := Table{
			Name: "CashFlows-" + name,
			Header: []string{
				"year", "revenue", "ebit", "nopat", "reinvestment",
				"fcf", "discountFactor", "pv_fcf", "cum_pv",
			},
		}
		for _, row := range rows {
			t.Rows = append(t.Rows, []interface{}{
				row.Year, row.Revenue, row.EBIT, row.NOPAT, row.Reinvestment,
				row.FCF, row.DiscountFactor, row.PVFCF, row.CumPV,
			})
		}
		tables = append(tables, t)
	}
	return tables
}
