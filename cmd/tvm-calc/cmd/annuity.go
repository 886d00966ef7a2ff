package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quantfold/tvm/internal/finance"
)

var (
	annuityRate float64
	annuityNper float64
	annuityPmt  float64
	annuityPv   float64
	annuityFv   float64
	annuityWhen string
)

var fvCmd = &cobra.Command{
	Use:   "fv",
	Short: "Future value of an annuity",
	Long: `Computes the value at the end of nper periods of a present amount
and a constant periodic payment, compounded at a constant rate.

Examples:
  tvm-calc fv --rate 0.075 --nper 20 --pmt -2000
  tvm-calc fv --rate 0.0025 --nper 24 --pmt -150 --pv -1500 --when begin`,
	RunE: runFv,
}

var pvCmd = &cobra.Command{
	Use:   "pv",
	Short: "Present value of an annuity",
	Long: `Computes the amount today equivalent to a future amount and a
constant periodic payment, discounted at a constant rate.

Examples:
  tvm-calc pv --rate 0.0041666 --nper 180 --pmt -500
  tvm-calc pv --rate 0.05 --nper 10 --pmt -1000 --fv 20000`,
	RunE: runPv,
}

var pmtCmd = &cobra.Command{
	Use:   "pmt",
	Short: "Constant periodic payment",
	Long: `Computes the level payment that amortizes a present value down to
a future value over nper periods.

Examples:
  tvm-calc pmt --rate 0.00625 --nper 60 --pv 55000
  tvm-calc pmt --rate 0 --nper 60 --pv 15000`,
	RunE: runPmt,
}

var nperCmd = &cobra.Command{
	Use:   "nper",
	Short: "Number of periods",
	Long: `Computes how many periods are needed for a payment stream to carry
a present value to a future value at a given rate.

Examples:
  tvm-calc nper --rate 0.00583 --pmt -2000 --pv 0 --fv 100000
  tvm-calc nper --rate 0 --pmt -100 --pv 1200`,
	RunE: runNper,
}

func init() {
	for _, c := range []*cobra.Command{fvCmd, pvCmd, pmtCmd, nperCmd} {
		rootCmd.AddCommand(c)
		c.Flags().Float64Var(&annuityRate, "rate", 0, "interest rate per period")
		c.Flags().Float64Var(&annuityPmt, "pmt", 0, "payment per period")
		c.Flags().Float64Var(&annuityPv, "pv", 0, "present value")
		c.Flags().Float64Var(&annuityFv, "fv", 0, "future value")
		c.Flags().StringVar(&annuityWhen, "when", "end", "payment timing: end or begin")
	}
	fvCmd.Flags().Float64Var(&annuityNper, "nper", 0, "number of periods")
	pvCmd.Flags().Float64Var(&annuityNper, "nper", 0, "number of periods")
	pmtCmd.Flags().Float64Var(&annuityNper, "nper", 0, "number of periods")
}

func annuityInputs() (float64, finance.When, error) {
	when, err := parseWhenFlag(annuityWhen)
	if err != nil {
		return 0, finance.End, err
	}
	return annuityRate, when, nil
}

func runFv(cmd *cobra.Command, args []string) error {
	rate, when, err := annuityInputs()
	if err != nil {
		return err
	}
	printResult(finance.NewFutureValue(rate, annuityNper, annuityPmt, annuityPv, when).Get())
	return nil
}

func runPv(cmd *cobra.Command, args []string) error {
	rate, when, err := annuityInputs()
	if err != nil {
		return err
	}
	printResult(finance.NewPresentValue(rate, annuityNper, annuityPmt, annuityFv, when).Get())
	return nil
}

func runPmt(cmd *cobra.Command, args []string) error {
	rate, when, err := annuityInputs()
	if err != nil {
		return err
	}
	printResult(finance.NewPayment(rate, annuityNper, annuityPv, annuityFv, when).Get())
	return nil
}

func runNper(cmd *cobra.Command, args []string) error {
	rate, when, err := annuityInputs()
	if err != nil {
		return err
	}
	value, err := finance.NewNumberOfPeriods(rate, annuityPmt, annuityPv, annuityFv, when).Get()
	if err != nil {
		return err
	}
	printResult(value)
	return nil
}
