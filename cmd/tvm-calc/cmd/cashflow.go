package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quantfold/tvm/internal/finance"
)

var (
	cashflowValues   string
	cashflowRate     float64
	cashflowFinance  float64
	cashflowReinvest float64
)

var npvCmd = &cobra.Command{
	Use:   "npv",
	Short: "Net present value of a cash-flow series",
	Long: `Discounts a cash-flow series at a constant rate. The first cash
flow sits at time zero and is not discounted.

Examples:
  tvm-calc npv --rate 0.05 --values=-15000,1500,2500,3500,4500,6000`,
	RunE: runNpv,
}

var irrCmd = &cobra.Command{
	Use:   "irr",
	Short: "Internal rate of return",
	Long: `Finds the discount rate at which the net present value of a
cash-flow series is zero. The series needs at least one inflow and one
outflow.

Examples:
  tvm-calc irr --values=-100,39,59,55,20`,
	RunE: runIrr,
}

var mirrCmd = &cobra.Command{
	Use:   "mirr",
	Short: "Modified internal rate of return",
	Long: `Computes the rate of return with borrowing financed at one rate
and inflows reinvested at another.

Examples:
  tvm-calc mirr --values=100,200,-50,300,-200 --finance-rate 0.05 --reinvest-rate 0.06`,
	RunE: runMirr,
}

func init() {
	for _, c := range []*cobra.Command{npvCmd, irrCmd, mirrCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringVar(&cashflowValues, "values", "", "comma-separated cash flows, time zero first")
	}
	npvCmd.Flags().Float64Var(&cashflowRate, "rate", 0, "discount rate per period")
	mirrCmd.Flags().Float64Var(&cashflowFinance, "finance-rate", 0, "rate paid on borrowed cash flows")
	mirrCmd.Flags().Float64Var(&cashflowReinvest, "reinvest-rate", 0, "rate earned on reinvested cash flows")
}

func runNpv(cmd *cobra.Command, args []string) error {
	values, err := parseValuesFlag(cashflowValues)
	if err != nil {
		return err
	}
	printResult(finance.NewNetPresentValue(values, cashflowRate).Get())
	return nil
}

func runIrr(cmd *cobra.Command, args []string) error {
	values, err := parseValuesFlag(cashflowValues)
	if err != nil {
		return err
	}
	value, err := finance.NewInternalRateOfReturn(values).Get()
	if err != nil {
		return err
	}
	printResult(value)
	return nil
}

func runMirr(cmd *cobra.Command, args []string) error {
	values, err := parseValuesFlag(cashflowValues)
	if err != nil {
		return err
	}
	value, err := finance.NewModifiedInternalRateOfReturn(values, cashflowFinance, cashflowReinvest).Get()
	if err != nil {
		return err
	}
	printResult(value)
	return nil
}
