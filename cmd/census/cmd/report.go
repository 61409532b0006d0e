package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dopazo/hhr-census/internal/reporter"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate period reports from a set of workbooks",
}

func init() {
	reportCmd.AddCommand(reportMonthlyCmd)
	reportCmd.AddCommand(reportQuarterlyCmd)
	reportCmd.AddCommand(reportYearlyCmd)
	reportCmd.AddCommand(reportRangeCmd)
}

var reportMonthlyCmd = &cobra.Command{
	Use:   "monthly <file.xlsx> [file2.xlsx ...]",
	Short: "One report per non-empty calendar month spanned by the data",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		events, err := loadEvents(c.Context(), args)
		if err != nil {
			return err
		}
		reports := reporter.MonthlyReports(events, globalFlags.MaxMonthly, globalFlags.BedCapacity)
		if len(reports) == 0 {
			return fmt.Errorf("no events to report on")
		}
		for i := range reports {
			if err := writeReport(&reports[i]); err != nil {
				return err
			}
		}
		return nil
	},
}

var (
	quarterlyYear    int
	quarterlyQuarter int
)

var reportQuarterlyCmd = &cobra.Command{
	Use:   "quarterly <file.xlsx> [file2.xlsx ...]",
	Short: "Report for one calendar quarter",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		events, err := loadEvents(c.Context(), args)
		if err != nil {
			return err
		}
		r, ok := reporter.QuarterlyReport(events, quarterlyYear, quarterlyQuarter, globalFlags.BedCapacity)
		if !ok {
			return fmt.Errorf("no events overlap Q%d %d", quarterlyQuarter, quarterlyYear)
		}
		return writeReport(r)
	},
}

func init() {
	reportQuarterlyCmd.Flags().IntVar(&quarterlyYear, "year", time.Now().Year(), "calendar year")
	reportQuarterlyCmd.Flags().IntVar(&quarterlyQuarter, "quarter", 1, "calendar quarter (1-4)")
}

var yearlyYear int

var reportYearlyCmd = &cobra.Command{
	Use:   "yearly <file.xlsx> [file2.xlsx ...]",
	Short: "Report for one calendar year, clamped to the data's observed span",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		events, err := loadEvents(c.Context(), args)
		if err != nil {
			return err
		}
		r, ok := reporter.YearlyReport(events, yearlyYear, globalFlags.BedCapacity)
		if !ok {
			return fmt.Errorf("no events overlap %d", yearlyYear)
		}
		return writeReport(r)
	},
}

func init() {
	reportYearlyCmd.Flags().IntVar(&yearlyYear, "year", time.Now().Year(), "calendar year")
}

var (
	rangeStart string
	rangeEnd   string
)

var reportRangeCmd = &cobra.Command{
	Use:   "range <file.xlsx> [file2.xlsx ...]",
	Short: "Report for an arbitrary month range (first day of --start to last day of --end)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		start, err := parseYearMonth(rangeStart)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		end, err := parseYearMonth(rangeEnd)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}

		events, err := loadEvents(c.Context(), args)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("%s to %s", rangeStart, rangeEnd)
		r, ok := reporter.RangeReport(events, title, start, end, globalFlags.BedCapacity)
		if !ok {
			return fmt.Errorf("no events overlap %s", title)
		}
		return writeReport(r)
	},
}

func init() {
	reportRangeCmd.Flags().StringVar(&rangeStart, "start", "", "start month, YYYY-MM")
	reportRangeCmd.Flags().StringVar(&rangeEnd, "end", "", "end month, YYYY-MM")
	reportRangeCmd.MarkFlagRequired("start")
	reportRangeCmd.MarkFlagRequired("end")
}

func parseYearMonth(s string) (time.Time, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("expected YYYY-MM, got %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, err
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month in %q", s)
	}
	return time.Date(year, time.Month(month), 1, 12, 0, 0, 0, time.Local), nil
}
