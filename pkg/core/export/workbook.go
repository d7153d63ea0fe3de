// Package export renders a valuation result into an xlsx workbook.
// This is a best-effort boundary: callers treat any error as a missing
// artifact, never as a failure of the valuation itself.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"madlab_dcf/pkg/core/dcf"
)

// WriteWorkbook writes dcf.xlsx under a fresh per-request directory inside
// baseDir and returns the artifact path. Sheets: Assumptions, PV,
// Sensitivity, plus one CashFlows-<scenario> sheet per projected scenario.
func WriteWorkbook(baseDir string, res *dcf.Result) (string, error) {
	dir := filepath.Join(baseDir, "madlab-dcf-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	tables := []dcf.Table{res.AssumptionsTable(), res.ScenarioTable(), res.SensitivityTable()}
	tables = append(tables, res.CashFlowTables()...)

	for i, tb := range tables {
		if i == 0 {
			// Reuse the default sheet for the first table.
			if err := f.SetSheetName("Sheet1", tb.Name); err != nil {
				return "", fmt.Errorf("rename sheet %s: %w", tb.Name, err)
			}
		} else {
			if _, err := f.NewSheet(tb.Name); err != nil {
				return "", fmt.Errorf("create sheet %s: %w", tb.Name, err)
			}
		}
		if err := writeTable(f, tb); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, "dcf.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func writeTable(f *excelize.File, tb dcf.Table) error {
	header := make([]interface{}, len(tb.Header))
	for i, h := range tb.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(tb.Name, "A1", &header); err != nil {
		return fmt.Errorf("write header of %s: %w", tb.Name, err)
	}
	for i, row := range tb.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name in %s: %w", tb.Name, err)
		}
		if err := f.SetSheetRow(tb.Name, cell, &row); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+2, tb.Name, err)
		}
	}
	return nil
}
