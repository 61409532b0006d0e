// Package cmd implements the census CLI command tree.
// This file defines the root command and registers global persistent flags.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags holds the parsed values of all persistent (global) flags.
var globalFlags struct {
	Format      string
	Out         string
	BedCapacity int
	MaxMonthly  int
}

var rootCmd = &cobra.Command{
	Use:   "census",
	Short: "census — hospital bed-census reconciliation and reporting",
	Long: `census ingests hospital bed-census workbooks (one sheet per day) and
reconstructs a timeline of patient hospitalization events, then produces
period reports with daily occupancy and length-of-stay statistics.

Quick start:
  census report monthly jan.xlsx feb.xlsx
  census report range --start 2025-01 --end 2025-03 *.xlsx
  census ingest --format json jan.xlsx > events.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.Format, "format", "table", "output format: table, json, xlsx, pdf")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Out, "out", "", "write output to this file instead of stdout")
	rootCmd.PersistentFlags().IntVar(&globalFlags.BedCapacity, "bed-capacity", 0, "bed capacity, for occupancyRate (0 = unset, rate stays 0)")
	rootCmd.PersistentFlags().IntVar(&globalFlags.MaxMonthly, "max-monthly-reports", 0, "cap on monthly reports returned (0 = default of 36)")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(reportCmd)
}
