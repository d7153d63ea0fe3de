// Command dcf runs a single valuation offline from a request file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"madlab_dcf/pkg/core/dcf"
	"madlab_dcf/pkg/core/export"
)

var (
	reqFile string
	xlsxDir string
)

var rootCmd = &cobra.Command{
	Use:   "dcf",
	Short: "Mad Lab DCF worker CLI",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a valuation from a request JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(reqFile)
		if err != nil {
			return fmt.Errorf("read request: %w", err)
		}
		var req dcf.Request
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("parse request: %w", err)
		}

		res := dcf.Valuate(req)

		fmt.Printf("%s  horizon=%d  wacc=%.2f%%\n",
			res.Assumptions.Ticker, res.Assumptions.Horizon, res.Assumptions.WACC)
		for _, name := range []string{"base", "bull", "bear"} {
			if ev, ok := res.PVByScenario[name]; ok {
				fmt.Printf("  %-5s EV = %.2f\n", name, ev)
			}
		}
		fmt.Println("Sensitivity (wacc% / terminalG% / value):")
		for _, pt := range res.Sensitivity {
			fmt.Printf("  %4.1f  %4.1f  %12.2f\n", pt.WACC, pt.TerminalG, pt.Value)
		}

		if xlsxDir != "" {
			path, err := export.WriteWorkbook(xlsxDir, res)
			if err != nil {
				fmt.Printf("[WARNING] Workbook export failed: %v\n", err)
			} else {
				fmt.Printf("Workbook written: %s\n", path)
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&reqFile, "file", "f", "", "request JSON file")
	runCmd.Flags().StringVar(&xlsxDir, "xlsx", "", "directory for the workbook artifact")
	runCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
