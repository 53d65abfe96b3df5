package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"khata/internal/cli"
	"khata/internal/forecast"

	"github.com/spf13/cobra"
)

var (
	flagFcAllowance  float64
	flagFcSideIncome float64
	flagFcSeries     string
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project a run-out date from a daily spend series",
	Long: "A standalone forecast calculator. Give it the allowance and the daily\n" +
		"spend totals so far this month (oldest first); it reports the smoothed\n" +
		"burn rate and when the money runs out.",
	Example: `  khata forecast --allowance 8000 --series "120,80,0,210,60"`,
	RunE:    runForecast,
}

func init() {
	forecastCmd.Flags().Float64Var(&flagFcAllowance, "allowance", 8000, "Monthly allowance")
	forecastCmd.Flags().Float64Var(&flagFcSideIncome, "side-income", 0, "Extra money received this month")
	forecastCmd.Flags().StringVar(&flagFcSeries, "series", "", "Comma-separated daily spend totals, oldest first")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	series, err := parseSeries(flagFcSeries)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("--series is required, e.g. --series \"120,80,0,210\"")
	}

	var spent float64
	for _, v := range series {
		spent += v
	}

	fc := forecast.Project(flagFcAllowance, flagFcSideIncome, spent, series, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle("FORECAST"))
	fmt.Println()

	fmt.Println(cli.RenderKeyValue("Spent so far", cli.FormatMoney(spent)))
	fmt.Println(cli.RenderKeyValue("Balance", cli.FormatMoney(fc.Balance)))
	fmt.Println(cli.RenderKeyValue("Daily burn", cli.FormatMoney(fc.Burn)))
	if fc.Unbounded {
		fmt.Println(cli.RenderKeyValue("Days left", "∞ (no spend yet)"))
	} else {
		fmt.Println(cli.RenderKeyValue("Days left", strconv.Itoa(fc.DaysLeft)))
		if fc.RunoutDate != nil {
			fmt.Println(cli.RenderKeyValue("Runs out", fc.RunoutDate.Format("Mon 02 Jan")))
		}
	}
	fmt.Println()

	fmt.Printf("  Daily spend  %s\n", cli.RenderSparkline(series))
	fmt.Println()

	return nil
}

func parseSeries(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var series []float64
	for _, part := range strings.Split(raw, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad --series value %q", strings.TrimSpace(part))
		}
		if v < 0 {
			v = 0
		}
		series = append(series, v)
	}
	return series, nil
}
