package export

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"madlab_dcf/pkg/core/dcf"
)

func TestWriteWorkbook(t *testing.T) {
	res := dcf.Valuate(dcf.Request{Ticker: "ACME", Horizon: 5})

	path, err := WriteWorkbook(t.TempDir(), res)
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}
	if !strings.HasSuffix(path, "dcf.xlsx") {
		t.Errorf("unexpected artifact path: %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{"Assumptions", "PV", "Sensitivity", "CashFlows-base"} {
		found := false
		for _, s := range sheets {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing sheet %q in %v", want, sheets)
		}
	}

	// Synthesized scenarios get no cash flow sheet.
	for _, s := range sheets {
		if s == "CashFlows-bull" || s == "CashFlows-bear" {
			t.Errorf("unexpected sheet for synthesized scenario: %s", s)
		}
	}

	if got, _ := f.GetCellValue("PV", "A2"); got != "base" {
		t.Errorf("PV!A2: expected base, got %q", got)
	}
	if got, _ := f.GetCellValue("Assumptions", "B1"); got != "value" {
		t.Errorf("Assumptions!B1: expected value, got %q", got)
	}
}
